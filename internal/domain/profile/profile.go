package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Profile is the single public-facing record an owner maintains. Its slug is
// derived from FullName on every write and is the lookup key for the public
// portfolio page.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	FullName  string    `json:"fullName"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Bio       string    `json:"bio"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Linkedin  string    `json:"linkedin"`
	Github    string    `json:"github"`
	Website   string    `json:"website"`
	AvatarURL string    `json:"avatarUrl"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var ErrFullNameRequired = errors.New("missing required field: fullName")

func (p *Profile) Validate() error {
	if p.FullName == "" {
		return ErrFullNameRequired
	}
	return nil
}

type Repository interface {
	// Upsert inserts or overwrites the one profile for p.OwnerID in a single
	// statement and fills p with the stored row.
	Upsert(ctx context.Context, p *Profile) error
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	FindBySlug(ctx context.Context, slug string) (*Profile, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Profile, error)
	SetAvatarURL(ctx context.Context, ownerID uuid.UUID, url string) (*Profile, error)
}
