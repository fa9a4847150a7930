package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	authUC "github.com/portify/portify/internal/application/usecase/auth"
	certificateUC "github.com/portify/portify/internal/application/usecase/certificate"
	educationUC "github.com/portify/portify/internal/application/usecase/education"
	experienceUC "github.com/portify/portify/internal/application/usecase/experience"
	portfolioUC "github.com/portify/portify/internal/application/usecase/portfolio"
	profileUC "github.com/portify/portify/internal/application/usecase/profile"
	projectUC "github.com/portify/portify/internal/application/usecase/project"
	skillUC "github.com/portify/portify/internal/application/usecase/skill"
	"github.com/portify/portify/internal/domain/certificate"
	"github.com/portify/portify/internal/domain/education"
	"github.com/portify/portify/internal/domain/experience"
	"github.com/portify/portify/internal/domain/portfolio"
	"github.com/portify/portify/internal/domain/profile"
	"github.com/portify/portify/internal/domain/project"
	"github.com/portify/portify/internal/domain/skill"
	"github.com/portify/portify/internal/domain/user"
	"github.com/portify/portify/pkg/apperror"
	"github.com/portify/portify/pkg/auth"
	"github.com/portify/portify/pkg/logger"
)

// In-memory stores with the same owner-scoping and error semantics as the
// Postgres adapters, so the full handler -> usecase -> store path runs in
// process.

type memUserRepo struct {
	byEmail map[string]*user.User
	byID    map[uuid.UUID]*user.User
}

func (r *memUserRepo) Save(ctx context.Context, u *user.User) error {
	if _, exists := r.byEmail[u.Email]; exists {
		return apperror.NewConflict("user", "email", u.Email)
	}
	copied := *u
	r.byEmail[u.Email] = &copied
	r.byID[u.ID] = &copied
	return nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, apperror.NewNotFound("user", email)
	}
	return u, nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, apperror.NewNotFound("user", id.String())
	}
	return u, nil
}

type memProfileRepo struct {
	byOwner map[uuid.UUID]*profile.Profile
}

func (r *memProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	for owner, existing := range r.byOwner {
		if owner != p.OwnerID && existing.Slug == p.Slug {
			return apperror.NewConflict("profile", "slug", p.Slug)
		}
	}
	if existing, ok := r.byOwner[p.OwnerID]; ok {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
		p.AvatarURL = existing.AvatarURL
	}
	copied := *p
	r.byOwner[p.OwnerID] = &copied
	return nil
}

func (r *memProfileRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	p, ok := r.byOwner[ownerID]
	if !ok {
		return nil, apperror.NewNotFound("profile", ownerID.String())
	}
	return p, nil
}

func (r *memProfileRepo) FindBySlug(ctx context.Context, slug string) (*profile.Profile, error) {
	for _, p := range r.byOwner {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("profile", slug)
}

func (r *memProfileRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) (*profile.Profile, error) {
	p, ok := r.byOwner[ownerID]
	if !ok || p.ID != id {
		return nil, apperror.NewNotFound("profile", id.String())
	}
	delete(r.byOwner, ownerID)
	return p, nil
}

func (r *memProfileRepo) SetAvatarURL(ctx context.Context, ownerID uuid.UUID, url string) (*profile.Profile, error) {
	p, ok := r.byOwner[ownerID]
	if !ok {
		return nil, apperror.NewNotFound("profile", ownerID.String())
	}
	p.AvatarURL = url
	return p, nil
}

type memSkillRepo struct {
	records map[uuid.UUID]*skill.Skill
}

func (r *memSkillRepo) Save(ctx context.Context, s *skill.Skill) error {
	copied := *s
	r.records[s.ID] = &copied
	return nil
}

func (r *memSkillRepo) Update(ctx context.Context, s *skill.Skill) (*skill.Skill, error) {
	existing, ok := r.records[s.ID]
	if !ok || existing.OwnerID != s.OwnerID {
		return nil, apperror.NewNotFound("skill", s.ID.String())
	}
	existing.Name = s.Name
	existing.Level = s.Level
	existing.UpdatedAt = s.UpdatedAt
	return existing, nil
}

func (r *memSkillRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) (*skill.Skill, error) {
	existing, ok := r.records[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, apperror.NewNotFound("skill", id.String())
	}
	delete(r.records, id)
	return existing, nil
}

func (r *memSkillRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	result := []*skill.Skill{}
	for _, s := range r.records {
		if s.OwnerID == ownerID {
			result = append(result, s)
		}
	}
	return result, nil
}

type memProjectRepo struct {
	records map[uuid.UUID]*project.Project
}

func (r *memProjectRepo) Save(ctx context.Context, p *project.Project) error {
	copied := *p
	r.records[p.ID] = &copied
	return nil
}

func (r *memProjectRepo) Update(ctx context.Context, p *project.Project) (*project.Project, error) {
	existing, ok := r.records[p.ID]
	if !ok || existing.OwnerID != p.OwnerID {
		return nil, apperror.NewNotFound("project", p.ID.String())
	}
	*existing = *p
	return existing, nil
}

func (r *memProjectRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) (*project.Project, error) {
	existing, ok := r.records[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, apperror.NewNotFound("project", id.String())
	}
	delete(r.records, id)
	return existing, nil
}

func (r *memProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	result := []*project.Project{}
	for _, p := range r.records {
		if p.OwnerID == ownerID {
			result = append(result, p)
		}
	}
	return result, nil
}

type memExperienceRepo struct {
	records map[uuid.UUID]*experience.Experience
}

func (r *memExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	copied := *e
	r.records[e.ID] = &copied
	return nil
}

func (r *memExperienceRepo) Update(ctx context.Context, e *experience.Experience) (*experience.Experience, error) {
	existing, ok := r.records[e.ID]
	if !ok || existing.OwnerID != e.OwnerID {
		return nil, apperror.NewNotFound("experience", e.ID.String())
	}
	*existing = *e
	return existing, nil
}

func (r *memExperienceRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) (*experience.Experience, error) {
	existing, ok := r.records[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, apperror.NewNotFound("experience", id.String())
	}
	delete(r.records, id)
	return existing, nil
}

func (r *memExperienceRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	result := []*experience.Experience{}
	for _, e := range r.records {
		if e.OwnerID == ownerID {
			result = append(result, e)
		}
	}
	return result, nil
}

type memEducationRepo struct {
	records map[uuid.UUID]*education.Education
}

func (r *memEducationRepo) Save(ctx context.Context, e *education.Education) error {
	copied := *e
	r.records[e.ID] = &copied
	return nil
}

func (r *memEducationRepo) Update(ctx context.Context, e *education.Education) (*education.Education, error) {
	existing, ok := r.records[e.ID]
	if !ok || existing.OwnerID != e.OwnerID {
		return nil, apperror.NewNotFound("education", e.ID.String())
	}
	*existing = *e
	return existing, nil
}

func (r *memEducationRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) (*education.Education, error) {
	existing, ok := r.records[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, apperror.NewNotFound("education", id.String())
	}
	delete(r.records, id)
	return existing, nil
}

func (r *memEducationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*education.Education, error) {
	result := []*education.Education{}
	for _, e := range r.records {
		if e.OwnerID == ownerID {
			result = append(result, e)
		}
	}
	return result, nil
}

type memCertificateRepo struct {
	records map[uuid.UUID]*certificate.Certificate
}

func (r *memCertificateRepo) Save(ctx context.Context, c *certificate.Certificate) error {
	copied := *c
	r.records[c.ID] = &copied
	return nil
}

func (r *memCertificateRepo) Update(ctx context.Context, c *certificate.Certificate) (*certificate.Certificate, error) {
	existing, ok := r.records[c.ID]
	if !ok || existing.OwnerID != c.OwnerID {
		return nil, apperror.NewNotFound("certificate", c.ID.String())
	}
	*existing = *c
	return existing, nil
}

func (r *memCertificateRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) (*certificate.Certificate, error) {
	existing, ok := r.records[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, apperror.NewNotFound("certificate", id.String())
	}
	delete(r.records, id)
	return existing, nil
}

func (r *memCertificateRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*certificate.Certificate, error) {
	result := []*certificate.Certificate{}
	for _, c := range r.records {
		if c.OwnerID == ownerID {
			result = append(result, c)
		}
	}
	return result, nil
}

type noopCache struct{}

func (noopCache) Get(ctx context.Context, slug string) (*portfolio.Portfolio, error) { return nil, nil }
func (noopCache) Set(ctx context.Context, slug string, p *portfolio.Portfolio) error { return nil }
func (noopCache) Invalidate(ctx context.Context, slugs ...string) error              { return nil }
func (noopCache) Increment(ctx context.Context, slug string) (int64, error)          { return 1, nil }
func (noopCache) Views(ctx context.Context, slug string) (int64, error)              { return 0, nil }

type APITestSuite struct {
	suite.Suite
	Router *gin.Engine
}

func (s *APITestSuite) SetupTest() {
	appLogger := logger.NewZapLogger("development")
	jwtSvc := auth.NewJWTService("api-test-secret", time.Hour)
	cache := noopCache{}

	userRepo := &memUserRepo{byEmail: map[string]*user.User{}, byID: map[uuid.UUID]*user.User{}}
	profileRepo := &memProfileRepo{byOwner: map[uuid.UUID]*profile.Profile{}}
	skillRepo := &memSkillRepo{records: map[uuid.UUID]*skill.Skill{}}
	projectRepo := &memProjectRepo{records: map[uuid.UUID]*project.Project{}}
	experienceRepo := &memExperienceRepo{records: map[uuid.UUID]*experience.Experience{}}
	educationRepo := &memEducationRepo{records: map[uuid.UUID]*education.Education{}}
	certificateRepo := &memCertificateRepo{records: map[uuid.UUID]*certificate.Certificate{}}

	signupUseCase := authUC.NewSignupUseCase(userRepo, jwtSvc, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	userDetailsUseCase := authUC.NewUserDetailsUseCase(userRepo)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, cache, nil, appLogger)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo)
	educationUseCase := educationUC.NewEducationUseCase(educationRepo)
	projectUseCase := projectUC.NewProjectUseCase(projectRepo)
	certificateUseCase := certificateUC.NewCertificateUseCase(certificateRepo)
	portfolioUseCase := portfolioUC.NewPortfolioUseCase(
		profileRepo, skillRepo, projectRepo, experienceRepo, educationRepo,
		certificateRepo, cache, cache, nil, appLogger,
	)

	authHandler := NewAuthHandler(signupUseCase, loginUseCase, userDetailsUseCase, time.Hour)
	profileHandler := NewProfileHandler(profileUseCase)
	skillHandler := NewSkillHandler(skillUseCase)
	experienceHandler := NewExperienceHandler(experienceUseCase)
	educationHandler := NewEducationHandler(educationUseCase)
	projectHandler := NewProjectHandler(projectUseCase)
	certificateHandler := NewCertificateHandler(certificateUseCase)
	portfolioHandler := NewPortfolioHandler(portfolioUseCase)

	authMiddleware := AuthMiddleware(jwtSvc)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(appLogger))

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
			public.GET("/portfolio", portfolioHandler.GetPortfolio)
			public.POST("/portfolio", portfolioHandler.GetPortfolioByUsername)
			public.GET("/portfolio/:slug/views", portfolioHandler.GetViews)
		}
	}

	s.Router = router
}

func TestAPI(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) request(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *APITestSuite) signup(name, email string) string {
	rr := s.request(http.MethodPost, "/api/users/signup", "", gin.H{
		"name": name, "email": email, "password": "hunter22",
	})
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())

	for _, c := range rr.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c.Value
		}
	}
	s.Require().FailNow("signup response did not set a session cookie")
	return ""
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("cannot decode response %q: %v", rr.Body.String(), err)
	}
	return body
}

func (s *APITestSuite) Test_Signup_SetsCookieAndLoginWorks() {
	token := s.signup("Jane Smith", "jane@example.com")
	s.NotEmpty(token)

	rr := s.request(http.MethodPost, "/api/users/login", "", gin.H{
		"email": "jane@example.com", "password": "hunter22",
	})
	s.Equal(http.StatusOK, rr.Code)

	rrBad := s.request(http.MethodPost, "/api/users/login", "", gin.H{
		"email": "jane@example.com", "password": "wrong",
	})
	s.Equal(http.StatusUnauthorized, rrBad.Code)
}

func (s *APITestSuite) Test_Signup_DuplicateEmailIsConflict() {
	s.signup("Jane Smith", "jane@example.com")

	rr := s.request(http.MethodPost, "/api/users/signup", "", gin.H{
		"name": "Other Jane", "email": "jane@example.com", "password": "hunter22",
	})
	s.Equal(http.StatusConflict, rr.Code)
}

func (s *APITestSuite) Test_UserDetails() {
	token := s.signup("Jane Smith", "jane@example.com")

	rr := s.request(http.MethodPost, "/api/users/userDetails", token, nil)
	s.Equal(http.StatusOK, rr.Code)

	body := decodeBody(s.T(), rr)
	data := body["data"].(map[string]any)
	s.Equal("jane@example.com", data["email"])
	s.NotContains(data, "passwordHash")
	s.NotContains(data, "password_hash")
}

func (s *APITestSuite) Test_ProtectedRoutesRequire401() {
	for _, path := range []string{"/api/profile", "/api/skills", "/api/experience", "/api/education", "/api/projects", "/api/certificate"} {
		rr := s.request(http.MethodGet, path, "", nil)
		s.Equal(http.StatusUnauthorized, rr.Code, path)
	}
}

func (s *APITestSuite) Test_GarbageTokenIs401() {
	rr := s.request(http.MethodGet, "/api/skills", "not-a-real-token", nil)
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *APITestSuite) Test_Skill_CRUDFlow() {
	token := s.signup("Jane Smith", "jane@example.com")

	rr := s.request(http.MethodPost, "/api/skills", token, gin.H{"skill": "Go", "level": "Advanced"})
	s.Equal(http.StatusCreated, rr.Code, rr.Body.String())
	created := decodeBody(s.T(), rr)["data"].(map[string]any)
	skillID := created["id"].(string)
	s.Equal("Go", created["skill"])

	rr = s.request(http.MethodPost, "/api/skills", token, gin.H{"_id": skillID, "skill": "Go", "level": "Intermediate"})
	s.Equal(http.StatusOK, rr.Code, rr.Body.String())
	updated := decodeBody(s.T(), rr)["data"].(map[string]any)
	s.Equal("Intermediate", updated["level"])

	rr = s.request(http.MethodGet, "/api/skills", token, nil)
	s.Equal(http.StatusOK, rr.Code)
	list := decodeBody(s.T(), rr)["data"].([]any)
	s.Len(list, 1)

	rr = s.request(http.MethodDelete, "/api/skills?skillId="+skillID, token, nil)
	s.Equal(http.StatusOK, rr.Code)

	rr = s.request(http.MethodGet, "/api/skills", token, nil)
	list = decodeBody(s.T(), rr)["data"].([]any)
	s.Empty(list)
}

func (s *APITestSuite) Test_Skill_ValidationErrors() {
	token := s.signup("Jane Smith", "jane@example.com")

	rr := s.request(http.MethodPost, "/api/skills", token, gin.H{"level": "Advanced"})
	s.Equal(http.StatusBadRequest, rr.Code)

	rr = s.request(http.MethodPost, "/api/skills", token, gin.H{"skill": "Go", "level": "Guru"})
	s.Equal(http.StatusBadRequest, rr.Code)

	// Absent level defaults instead of failing.
	rr = s.request(http.MethodPost, "/api/skills", token, gin.H{"skill": "Docker"})
	s.Equal(http.StatusCreated, rr.Code)
	created := decodeBody(s.T(), rr)["data"].(map[string]any)
	s.Equal("Beginner", created["level"])
}

func (s *APITestSuite) Test_Skill_DeleteRequiresID() {
	token := s.signup("Jane Smith", "jane@example.com")

	rr := s.request(http.MethodDelete, "/api/skills", token, nil)
	s.Equal(http.StatusBadRequest, rr.Code)

	rr = s.request(http.MethodDelete, "/api/skills?skillId=not-a-uuid", token, nil)
	s.Equal(http.StatusNotFound, rr.Code)

	rr = s.request(http.MethodDelete, "/api/skills?skillId="+uuid.NewString(), token, nil)
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *APITestSuite) Test_Skill_CrossOwnerAccessIsNotFound() {
	tokenA := s.signup("Jane Smith", "jane@example.com")
	tokenB := s.signup("John Doe", "john@example.com")

	rr := s.request(http.MethodPost, "/api/skills", tokenA, gin.H{"skill": "Go"})
	s.Require().Equal(http.StatusCreated, rr.Code)
	skillID := decodeBody(s.T(), rr)["data"].(map[string]any)["id"].(string)

	// Owner B cannot update, delete or even see owner A's record.
	rr = s.request(http.MethodPost, "/api/skills", tokenB, gin.H{"_id": skillID, "skill": "Rust"})
	s.Equal(http.StatusNotFound, rr.Code)

	rr = s.request(http.MethodDelete, "/api/skills?skillId="+skillID, tokenB, nil)
	s.Equal(http.StatusNotFound, rr.Code)

	rr = s.request(http.MethodGet, "/api/skills", tokenB, nil)
	s.Empty(decodeBody(s.T(), rr)["data"].([]any))

	rr = s.request(http.MethodGet, "/api/skills", tokenA, nil)
	s.Len(decodeBody(s.T(), rr)["data"].([]any), 1)
}

func (s *APITestSuite) Test_Experience_DateHandling() {
	token := s.signup("Jane Smith", "jane@example.com")

	rr := s.request(http.MethodPost, "/api/experience", token, gin.H{
		"company":   "Acme",
		"position":  "Engineer",
		"startDate": "2020-01-15",
	})
	s.Equal(http.StatusCreated, rr.Code, rr.Body.String())
	created := decodeBody(s.T(), rr)["data"].(map[string]any)
	s.Nil(created["endDate"])

	rr = s.request(http.MethodPost, "/api/experience", token, gin.H{
		"company":   "Acme",
		"position":  "Engineer",
		"startDate": "15/01/2020",
	})
	s.Equal(http.StatusBadRequest, rr.Code)

	rr = s.request(http.MethodPost, "/api/experience", token, gin.H{"company": "Acme"})
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Contains(decodeBody(s.T(), rr)["error"], "position")
	s.Contains(decodeBody(s.T(), rr)["error"], "startDate")
}

func (s *APITestSuite) Test_Profile_UpsertIsSingleRecord() {
	token := s.signup("Jane Smith", "jane@example.com")

	rr := s.request(http.MethodPost, "/api/profile", token, gin.H{"fullName": "Jane Smith", "title": "Engineer"})
	s.Equal(http.StatusOK, rr.Code, rr.Body.String())
	first := decodeBody(s.T(), rr)["data"].(map[string]any)
	s.Equal("jane-smith", first["slug"])

	rr = s.request(http.MethodPost, "/api/profile", token, gin.H{"fullName": "Jane Smith", "title": "Staff Engineer"})
	s.Equal(http.StatusOK, rr.Code)
	second := decodeBody(s.T(), rr)["data"].(map[string]any)
	s.Equal(first["id"], second["id"])
	s.Equal("Staff Engineer", second["title"])
}

func (s *APITestSuite) Test_Profile_MissingFullNameIs400() {
	token := s.signup("Jane Smith", "jane@example.com")

	rr := s.request(http.MethodPost, "/api/profile", token, gin.H{"title": "Engineer"})
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *APITestSuite) Test_Profile_SlugCollisionIs409() {
	tokenA := s.signup("Jane Smith", "jane@example.com")
	tokenB := s.signup("Jane Smith Too", "jane2@example.com")

	rr := s.request(http.MethodPost, "/api/profile", tokenA, gin.H{"fullName": "Jane Smith"})
	s.Require().Equal(http.StatusOK, rr.Code)

	rr = s.request(http.MethodPost, "/api/profile", tokenB, gin.H{"fullName": "Jane; Smith"})
	s.Equal(http.StatusConflict, rr.Code)
}

func (s *APITestSuite) Test_Portfolio_EndToEnd() {
	token := s.signup("Jane Smith", "jane@example.com")

	rr := s.request(http.MethodPost, "/api/profile", token, gin.H{"fullName": "Jane Smith", "title": "Engineer"})
	s.Require().Equal(http.StatusOK, rr.Code)
	rr = s.request(http.MethodPost, "/api/skills", token, gin.H{"skill": "Go", "level": "Advanced"})
	s.Require().Equal(http.StatusCreated, rr.Code)
	rr = s.request(http.MethodPost, "/api/projects", token, gin.H{
		"project": "Portfolio Site", "technologies": []string{"Go", "Postgres"},
	})
	s.Require().Equal(http.StatusCreated, rr.Code)

	// No token on the public read.
	rr = s.request(http.MethodGet, "/api/portfolio?slug=jane-smith", "", nil)
	s.Equal(http.StatusOK, rr.Code, rr.Body.String())

	body := decodeBody(s.T(), rr)
	s.Equal(true, body["success"])
	data := body["data"].(map[string]any)
	s.Equal("jane-smith", data["profile"].(map[string]any)["slug"])
	s.Len(data["skills"].([]any), 1)
	s.Len(data["projects"].([]any), 1)
	s.NotNil(data["experience"])
	s.NotNil(data["education"])
	s.NotNil(data["certificates"])
}

func (s *APITestSuite) Test_Portfolio_ByUsernameSlugifies() {
	token := s.signup("Jane Smith", "jane@example.com")
	rr := s.request(http.MethodPost, "/api/profile", token, gin.H{"fullName": "Jane Smith"})
	s.Require().Equal(http.StatusOK, rr.Code)

	rr = s.request(http.MethodPost, "/api/portfolio", "", gin.H{"username": "Jane   Smith!!"})
	s.Equal(http.StatusOK, rr.Code, rr.Body.String())
	s.Equal(true, decodeBody(s.T(), rr)["success"])
}

func (s *APITestSuite) Test_Portfolio_ErrorEnvelope() {
	rr := s.request(http.MethodGet, "/api/portfolio?slug=nobody-here", "", nil)
	s.Equal(http.StatusNotFound, rr.Code)
	body := decodeBody(s.T(), rr)
	s.Equal(false, body["success"])
	s.NotEmpty(body["message"])

	rr = s.request(http.MethodGet, "/api/portfolio", "", nil)
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal(false, decodeBody(s.T(), rr)["success"])
}

func (s *APITestSuite) Test_Portfolio_Views() {
	rr := s.request(http.MethodGet, "/api/portfolio/jane-smith/views", "", nil)
	s.Equal(http.StatusOK, rr.Code)
	data := decodeBody(s.T(), rr)["data"].(map[string]any)
	assert.Equal(s.T(), float64(0), data["views"])
}

func (s *APITestSuite) Test_Project_DeleteByQueryParam() {
	token := s.signup("Jane Smith", "jane@example.com")

	rr := s.request(http.MethodPost, "/api/projects", token, gin.H{"project": "Portfolio Site"})
	s.Require().Equal(http.StatusCreated, rr.Code)
	projectID := decodeBody(s.T(), rr)["data"].(map[string]any)["id"].(string)

	rr = s.request(http.MethodDelete, fmt.Sprintf("/api/projects?projectId=%s", projectID), token, nil)
	s.Equal(http.StatusOK, rr.Code)

	rr = s.request(http.MethodDelete, fmt.Sprintf("/api/projects?projectId=%s", projectID), token, nil)
	s.Equal(http.StatusNotFound, rr.Code)
}
