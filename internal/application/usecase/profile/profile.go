package profile

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/portify/portify/internal/application/service"
	"github.com/portify/portify/internal/domain/portfolio"
	"github.com/portify/portify/internal/domain/profile"
	"github.com/portify/portify/pkg/apperror"
	"github.com/portify/portify/pkg/logger"
	"github.com/portify/portify/pkg/slug"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	cache       portfolio.Cache
	uploader    service.Uploader
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, cache portfolio.Cache, uploader service.Uploader, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: repo, cache: cache, uploader: uploader, logger: log}
}

func (uc *ProfileUseCase) Get(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	return uc.profileRepo.GetByOwner(ctx, ownerID)
}

type UpsertProfileInput struct {
	OwnerID  uuid.UUID
	FullName string
	Title    string
	Location string
	Bio      string
	Phone    string
	Email    string
	Linkedin string
	Github   string
	Website  string
}

// Upsert writes the caller's single profile. The slug is re-derived from
// FullName on every write so the public address tracks the display name; a
// collision with another owner's slug surfaces as Conflict from the store.
func (uc *ProfileUseCase) Upsert(ctx context.Context, input UpsertProfileInput) (*profile.Profile, error) {
	now := time.Now().UTC()
	p := &profile.Profile{
		ID:        uuid.New(),
		OwnerID:   input.OwnerID,
		FullName:  input.FullName,
		Title:     input.Title,
		Location:  input.Location,
		Bio:       input.Bio,
		Phone:     input.Phone,
		Email:     input.Email,
		Linkedin:  input.Linkedin,
		Github:    input.Github,
		Website:   input.Website,
		Slug:      slug.Make(input.FullName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	// Remember the previous slug so a rename also evicts the old cache key.
	oldSlug := ""
	if existing, err := uc.profileRepo.GetByOwner(ctx, input.OwnerID); err == nil {
		oldSlug = existing.Slug
	}

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, oldSlug, p.Slug)
	return p, nil
}

func (uc *ProfileUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) (*profile.Profile, error) {
	deleted, err := uc.profileRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, deleted.Slug)
	return deleted, nil
}

type UploadAvatarInput struct {
	OwnerID uuid.UUID
	File    io.Reader
}

func (uc *ProfileUseCase) UploadAvatar(ctx context.Context, input UploadAvatarInput) (*profile.Profile, error) {
	url, err := uc.uploader.Upload(ctx, input.File, "portify/avatars", input.OwnerID.String())
	if err != nil {
		return nil, apperror.NewInternal("failed to upload avatar", err)
	}

	p, err := uc.profileRepo.SetAvatarURL(ctx, input.OwnerID, url)
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, p.Slug)
	return p, nil
}

// Cache eviction is best effort. The entry expires on its own TTL anyway.
func (uc *ProfileUseCase) invalidate(ctx context.Context, slugs ...string) {
	if err := uc.cache.Invalidate(ctx, slugs...); err != nil {
		uc.logger.Warn("Failed to invalidate portfolio cache", zap.Strings("slugs", slugs), zap.Error(err))
	}
}
