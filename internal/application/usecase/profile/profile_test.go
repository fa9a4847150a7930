package profile

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portify/portify/internal/domain/portfolio"
	"github.com/portify/portify/internal/domain/profile"
	"github.com/portify/portify/pkg/apperror"
	"github.com/portify/portify/pkg/logger"
)

type fakeProfileRepo struct {
	byOwner map[uuid.UUID]*profile.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byOwner: make(map[uuid.UUID]*profile.Profile)}
}

func (r *fakeProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
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

func (r *fakeProfileRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	p, ok := r.byOwner[ownerID]
	if !ok {
		return nil, apperror.NewNotFound("profile", ownerID.String())
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProfileRepo) FindBySlug(ctx context.Context, slug string) (*profile.Profile, error) {
	for _, p := range r.byOwner {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFound("profile", slug)
}

func (r *fakeProfileRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) (*profile.Profile, error) {
	p, ok := r.byOwner[ownerID]
	if !ok || p.ID != id {
		return nil, apperror.NewNotFound("profile", id.String())
	}
	delete(r.byOwner, ownerID)
	return p, nil
}

func (r *fakeProfileRepo) SetAvatarURL(ctx context.Context, ownerID uuid.UUID, url string) (*profile.Profile, error) {
	p, ok := r.byOwner[ownerID]
	if !ok {
		return nil, apperror.NewNotFound("profile", ownerID.String())
	}
	p.AvatarURL = url
	copied := *p
	return &copied, nil
}

type recordingCache struct {
	invalidated []string
}

func (c *recordingCache) Get(ctx context.Context, slug string) (*portfolio.Portfolio, error) {
	return nil, nil
}

func (c *recordingCache) Set(ctx context.Context, slug string, p *portfolio.Portfolio) error {
	return nil
}

func (c *recordingCache) Invalidate(ctx context.Context, slugs ...string) error {
	c.invalidated = append(c.invalidated, slugs...)
	return nil
}

type fakeUploader struct {
	url string
}

func (u *fakeUploader) Upload(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	return u.url, nil
}

func (u *fakeUploader) Delete(ctx context.Context, publicID string) error {
	return nil
}

func newProfileUseCaseForTest() (*ProfileUseCase, *fakeProfileRepo, *recordingCache) {
	repo := newFakeProfileRepo()
	cache := &recordingCache{}
	uc := NewProfileUseCase(repo, cache, &fakeUploader{url: "https://cdn.example.com/avatar.png"}, logger.NewZapLogger("development"))
	return uc, repo, cache
}

func TestProfileUpsert_DerivesSlugFromFullName(t *testing.T) {
	uc, _, _ := newProfileUseCaseForTest()

	p, err := uc.Upsert(context.Background(), UpsertProfileInput{
		OwnerID:  uuid.New(),
		FullName: "Jane   Smith!!",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane-smith", p.Slug)
}

func TestProfileUpsert_RejectsMissingFullName(t *testing.T) {
	uc, _, _ := newProfileUseCaseForTest()

	_, err := uc.Upsert(context.Background(), UpsertProfileInput{OwnerID: uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestProfileUpsert_SlugCollisionIsConflict(t *testing.T) {
	uc, _, _ := newProfileUseCaseForTest()

	_, err := uc.Upsert(context.Background(), UpsertProfileInput{
		OwnerID:  uuid.New(),
		FullName: "Jane Smith",
	})
	require.NoError(t, err)

	_, err = uc.Upsert(context.Background(), UpsertProfileInput{
		OwnerID:  uuid.New(),
		FullName: "Jane; Smith",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestProfileUpsert_RenameEvictsOldAndNewSlug(t *testing.T) {
	uc, _, cache := newProfileUseCaseForTest()
	ownerID := uuid.New()

	_, err := uc.Upsert(context.Background(), UpsertProfileInput{
		OwnerID:  ownerID,
		FullName: "Jane Smith",
	})
	require.NoError(t, err)

	cache.invalidated = nil
	_, err = uc.Upsert(context.Background(), UpsertProfileInput{
		OwnerID:  ownerID,
		FullName: "Jane Doe",
	})
	require.NoError(t, err)

	assert.Contains(t, cache.invalidated, "jane-smith")
	assert.Contains(t, cache.invalidated, "jane-doe")
}

func TestProfileUpsert_SecondWriteKeepsSingleRecord(t *testing.T) {
	uc, repo, _ := newProfileUseCaseForTest()
	ownerID := uuid.New()

	first, err := uc.Upsert(context.Background(), UpsertProfileInput{
		OwnerID:  ownerID,
		FullName: "Jane Smith",
		Title:    "Engineer",
	})
	require.NoError(t, err)

	second, err := uc.Upsert(context.Background(), UpsertProfileInput{
		OwnerID:  ownerID,
		FullName: "Jane Smith",
		Title:    "Staff Engineer",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Staff Engineer", second.Title)
	assert.Len(t, repo.byOwner, 1)
}

func TestProfileDelete_EvictsSlug(t *testing.T) {
	uc, _, cache := newProfileUseCaseForTest()
	ownerID := uuid.New()

	p, err := uc.Upsert(context.Background(), UpsertProfileInput{
		OwnerID:  ownerID,
		FullName: "Jane Smith",
	})
	require.NoError(t, err)

	cache.invalidated = nil
	_, err = uc.Delete(context.Background(), p.ID, ownerID)
	require.NoError(t, err)
	assert.Contains(t, cache.invalidated, "jane-smith")

	_, err = uc.Get(context.Background(), ownerID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestProfileUploadAvatar_PersistsURL(t *testing.T) {
	uc, _, _ := newProfileUseCaseForTest()
	ownerID := uuid.New()

	_, err := uc.Upsert(context.Background(), UpsertProfileInput{
		OwnerID:  ownerID,
		FullName: "Jane Smith",
	})
	require.NoError(t, err)

	p, err := uc.UploadAvatar(context.Background(), UploadAvatarInput{OwnerID: ownerID})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatar.png", p.AvatarURL)
}
