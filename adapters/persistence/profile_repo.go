package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portify/portify/internal/domain/profile"
	"github.com/portify/portify/pkg/apperror"
)

type postgresProfileRepo struct {
	db *pgxpool.Pool
}

func NewPostgresProfileRepo(db *pgxpool.Pool) profile.Repository {
	return &postgresProfileRepo{db: db}
}

const profileColumns = `id, owner_id, full_name, title, location, bio, phone, email, linkedin, github, website, avatar_url, slug, created_at, updated_at`

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.FullName, &p.Title, &p.Location, &p.Bio,
		&p.Phone, &p.Email, &p.Linkedin, &p.Github, &p.Website,
		&p.AvatarURL, &p.Slug, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "")
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}
	return p, nil
}

// Upsert writes the one profile per owner in a single statement. The unique
// index on owner_id makes this an insert-or-overwrite; the unique index on
// slug turns a cross-owner slug collision into a Conflict.
func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (id, owner_id, full_name, title, location, bio, phone, email, linkedin, github, website, avatar_url, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		ON CONFLICT (owner_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			title = EXCLUDED.title,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			linkedin = EXCLUDED.linkedin,
			github = EXCLUDED.github,
			website = EXCLUDED.website,
			slug = EXCLUDED.slug,
			updated_at = NOW()
		RETURNING ` + profileColumns
	row := r.db.QueryRow(ctx, query,
		p.ID, p.OwnerID, p.FullName, p.Title, p.Location, p.Bio,
		p.Phone, p.Email, p.Linkedin, p.Github, p.Website,
		p.AvatarURL, p.Slug, p.UpdatedAt,
	)

	stored := &profile.Profile{}
	err := row.Scan(
		&stored.ID, &stored.OwnerID, &stored.FullName, &stored.Title, &stored.Location, &stored.Bio,
		&stored.Phone, &stored.Email, &stored.Linkedin, &stored.Github, &stored.Website,
		&stored.AvatarURL, &stored.Slug, &stored.CreatedAt, &stored.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewConflict("profile", "slug", p.Slug)
		}
		return apperror.NewInternal("failed to upsert profile", err)
	}
	*p = *stored
	return nil
}

func (r *postgresProfileRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE owner_id = $1`
	return scanProfile(r.db.QueryRow(ctx, query, ownerID))
}

func (r *postgresProfileRepo) FindBySlug(ctx context.Context, slug string) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE slug = $1`
	return scanProfile(r.db.QueryRow(ctx, query, slug))
}

func (r *postgresProfileRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*profile.Profile, error) {
	query := `DELETE FROM profiles WHERE id = $1 AND owner_id = $2 RETURNING ` + profileColumns
	return scanProfile(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *postgresProfileRepo) SetAvatarURL(ctx context.Context, ownerID uuid.UUID, url string) (*profile.Profile, error) {
	query := `UPDATE profiles SET avatar_url = $2, updated_at = NOW() WHERE owner_id = $1 RETURNING ` + profileColumns
	return scanProfile(r.db.QueryRow(ctx, query, ownerID, url))
}
