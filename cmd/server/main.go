package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/portify/portify/adapters/event"
	httpAdapter "github.com/portify/portify/adapters/http"
	"github.com/portify/portify/adapters/media_storage"
	"github.com/portify/portify/adapters/persistence"
	authUC "github.com/portify/portify/internal/application/usecase/auth"
	certificateUC "github.com/portify/portify/internal/application/usecase/certificate"
	educationUC "github.com/portify/portify/internal/application/usecase/education"
	experienceUC "github.com/portify/portify/internal/application/usecase/experience"
	portfolioUC "github.com/portify/portify/internal/application/usecase/portfolio"
	profileUC "github.com/portify/portify/internal/application/usecase/profile"
	projectUC "github.com/portify/portify/internal/application/usecase/project"
	skillUC "github.com/portify/portify/internal/application/usecase/skill"
	"github.com/portify/portify/internal/config"
	"github.com/portify/portify/pkg/auth"
	"github.com/portify/portify/pkg/logger"
	"github.com/portify/portify/pkg/tracing"
)

func main() {
	fmt.Println("Start Portify API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	tracerProvider, err := tracing.NewTracerProvider(cfg, appLogger, "portify-api")
	if err != nil {
		log.Fatalf("FATAL: cannot init tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			appLogger.Error("failed to shut down tracer provider", err)
		}
	}()

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool)
	certificateRepo := persistence.NewPostgresCertificateRepo(dbPool)
	portfolioCache := persistence.NewRedisPortfolioCache(redisClient, cfg.Redis.CacheTTL, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize uploader: %v", err)
	}

	// Use Cases
	signupUseCase := authUC.NewSignupUseCase(userRepo, jwtSvc, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	userDetailsUseCase := authUC.NewUserDetailsUseCase(userRepo)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, portfolioCache, uploader, appLogger)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo)
	educationUseCase := educationUC.NewEducationUseCase(educationRepo)
	projectUseCase := projectUC.NewProjectUseCase(projectRepo)
	certificateUseCase := certificateUC.NewCertificateUseCase(certificateRepo)
	portfolioUseCase := portfolioUC.NewPortfolioUseCase(
		profileRepo,
		skillRepo,
		projectRepo,
		experienceRepo,
		educationRepo,
		certificateRepo,
		portfolioCache,
		portfolioCache,
		kafkaClient,
		appLogger,
	)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(signupUseCase, loginUseCase, userDetailsUseCase, cfg.Auth.TokenLifespan)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase)
	skillHandler := httpAdapter.NewSkillHandler(skillUseCase)
	experienceHandler := httpAdapter.NewExperienceHandler(experienceUseCase)
	educationHandler := httpAdapter.NewEducationHandler(educationUseCase)
	projectHandler := httpAdapter.NewProjectHandler(projectUseCase)
	certificateHandler := httpAdapter.NewCertificateHandler(certificateUseCase)
	portfolioHandler := httpAdapter.NewPortfolioHandler(portfolioUseCase)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	// Setup Gin router
	router := gin.Default()
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/signup", authHandler.Signup)
			users.POST("/login", authHandler.Login)
			users.POST("/logout", authHandler.Logout)
			users.POST("/userDetails", authMiddleware, authHandler.UserDetails)
		}

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.GET("/profile", profileHandler.GetProfile)
			private.POST("/profile", profileHandler.UpsertProfile)
			private.DELETE("/profile", profileHandler.DeleteProfile)
			private.POST("/profile/avatar", profileHandler.UploadAvatar)

			private.GET("/skills", skillHandler.ListSkills)
			private.POST("/skills", skillHandler.UpsertSkill)
			private.DELETE("/skills", skillHandler.DeleteSkill)

			private.GET("/experience", experienceHandler.ListExperience)
			private.POST("/experience", experienceHandler.UpsertExperience)
			private.DELETE("/experience", experienceHandler.DeleteExperience)

			private.GET("/education", educationHandler.ListEducation)
			private.POST("/education", educationHandler.UpsertEducation)
			private.DELETE("/education", educationHandler.DeleteEducation)

			private.GET("/projects", projectHandler.ListProjects)
			private.POST("/projects", projectHandler.UpsertProject)
			private.DELETE("/projects", projectHandler.DeleteProject)

			private.GET("/certificate", certificateHandler.ListCertificates)
			private.POST("/certificate", certificateHandler.UpsertCertificate)
			private.DELETE("/certificate", certificateHandler.DeleteCertificate)
		}

		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/portfolio", portfolioHandler.GetPortfolio)
			public.POST("/portfolio", portfolioHandler.GetPortfolioByUsername)
			public.GET("/portfolio/:slug/views", portfolioHandler.GetViews)
		}
	}

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
