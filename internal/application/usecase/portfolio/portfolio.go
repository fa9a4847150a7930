package portfolio

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/portify/portify/internal/domain/certificate"
	"github.com/portify/portify/internal/domain/education"
	"github.com/portify/portify/internal/domain/experience"
	"github.com/portify/portify/internal/domain/portfolio"
	"github.com/portify/portify/internal/domain/profile"
	"github.com/portify/portify/internal/domain/project"
	"github.com/portify/portify/internal/domain/skill"
	"github.com/portify/portify/pkg/apperror"
	"github.com/portify/portify/pkg/logger"
	"github.com/portify/portify/pkg/slug"
)

// ViewPublisher emits one event per public portfolio hit. Implemented by the
// Kafka producer; the worker turns the stream into Redis counters.
type ViewPublisher interface {
	PublishPortfolioView(ctx context.Context, slug string) error
}

type PortfolioUseCase struct {
	profileRepo     profile.Repository
	skillRepo       skill.Repository
	projectRepo     project.Repository
	experienceRepo  experience.Repository
	educationRepo   education.Repository
	certificateRepo certificate.Repository
	cache           portfolio.Cache
	views           portfolio.ViewCounter
	publisher       ViewPublisher
	logger          logger.Logger
}

func NewPortfolioUseCase(
	profileRepo profile.Repository,
	skillRepo skill.Repository,
	projectRepo project.Repository,
	experienceRepo experience.Repository,
	educationRepo education.Repository,
	certificateRepo certificate.Repository,
	cache portfolio.Cache,
	views portfolio.ViewCounter,
	publisher ViewPublisher,
	log logger.Logger,
) *PortfolioUseCase {
	return &PortfolioUseCase{
		profileRepo:     profileRepo,
		skillRepo:       skillRepo,
		projectRepo:     projectRepo,
		experienceRepo:  experienceRepo,
		educationRepo:   educationRepo,
		certificateRepo: certificateRepo,
		cache:           cache,
		views:           views,
		publisher:       publisher,
		logger:          log,
	}
}

type GetPortfolioInput struct {
	// PublicID is either a profile slug or a display name; display names are
	// slugified before lookup so both address the same profile.
	PublicID string
}

var tracer = otel.Tracer("portfolio_usecase")

// Execute resolves the public identifier to one profile and assembles the
// full composite. The five collection reads run concurrently and the result
// is all-or-nothing: any failed read aborts the whole aggregation. No caller
// token is ever consulted here.
func (uc *PortfolioUseCase) Execute(ctx context.Context, input GetPortfolioInput) (*portfolio.Portfolio, error) {
	ctx, span := tracer.Start(ctx, "GetPortfolio")
	defer span.End()

	key := slug.Make(input.PublicID)
	if key == "" {
		return nil, apperror.NewInvalidInput("slug is required", nil)
	}
	span.SetAttributes(attribute.String("portfolio.slug", key))

	if cached, err := uc.cache.Get(ctx, key); err == nil && cached != nil {
		uc.recordView(key)
		return cached, nil
	} else if err != nil {
		uc.logger.Warn("Portfolio cache read failed", zap.String("slug", key), zap.Error(err))
	}

	prof, err := uc.profileRepo.FindBySlug(ctx, key)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	result := &portfolio.Portfolio{Profile: prof}
	ownerID := prof.OwnerID

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		result.Skills, err = uc.skillRepo.ListByOwner(gctx, ownerID)
		return
	})
	g.Go(func() (err error) {
		result.Projects, err = uc.projectRepo.ListByOwner(gctx, ownerID)
		return
	})
	g.Go(func() (err error) {
		result.Experience, err = uc.experienceRepo.ListByOwner(gctx, ownerID)
		return
	})
	g.Go(func() (err error) {
		result.Education, err = uc.educationRepo.ListByOwner(gctx, ownerID)
		return
	})
	g.Go(func() (err error) {
		result.Certificates, err = uc.certificateRepo.ListByOwner(gctx, ownerID)
		return
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := uc.cache.Set(ctx, key, result); err != nil {
		uc.logger.Warn("Portfolio cache write failed", zap.String("slug", key), zap.Error(err))
	}
	uc.recordView(key)

	return result, nil
}

func (uc *PortfolioUseCase) Views(ctx context.Context, publicID string) (int64, error) {
	key := slug.Make(publicID)
	if key == "" {
		return 0, apperror.NewInvalidInput("slug is required", nil)
	}
	return uc.views.Views(ctx, key)
}

// recordView is fire and forget: a lost event costs one view count, never a
// failed page load.
func (uc *PortfolioUseCase) recordView(key string) {
	if uc.publisher == nil {
		return
	}
	go func() {
		if err := uc.publisher.PublishPortfolioView(context.Background(), key); err != nil {
			uc.logger.Warn("Failed to publish portfolio view event", zap.String("slug", key), zap.Error(err))
		}
	}()
}
