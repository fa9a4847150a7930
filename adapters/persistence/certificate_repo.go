package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portify/portify/internal/domain/certificate"
	"github.com/portify/portify/pkg/apperror"
)

type postgresCertificateRepo struct {
	db *pgxpool.Pool
}

func NewPostgresCertificateRepo(db *pgxpool.Pool) certificate.Repository {
	return &postgresCertificateRepo{db: db}
}

var psqlCertificate = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const certificateColumns = `id, owner_id, title, issuer, issue_date, description, certificate_link, created_at, updated_at`

func scanCertificate(row pgx.Row) (*certificate.Certificate, error) {
	c := &certificate.Certificate{}
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.Title, &c.Issuer, &c.IssueDate,
		&c.Description, &c.CertificateLink, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("certificate", "")
		}
		return nil, apperror.NewInternal("failed to scan certificate row", err)
	}
	return c, nil
}

func scanCertificates(rows pgx.Rows) ([]*certificate.Certificate, error) {
	defer rows.Close()
	certs := make([]*certificate.Certificate, 0)
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating certificate rows", err)
	}
	return certs, nil
}

func (r *postgresCertificateRepo) Save(ctx context.Context, c *certificate.Certificate) error {
	query := `
		INSERT INTO certificates (id, owner_id, title, issuer, issue_date, description, certificate_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.OwnerID, c.Title, c.Issuer, c.IssueDate,
		c.Description, c.CertificateLink, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save certificate", err)
	}
	return nil
}

func (r *postgresCertificateRepo) Update(ctx context.Context, c *certificate.Certificate) (*certificate.Certificate, error) {
	query := `
		UPDATE certificates SET
			title = $3, issuer = $4, issue_date = $5,
			description = $6, certificate_link = $7, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + certificateColumns
	updated, err := scanCertificate(r.db.QueryRow(ctx, query,
		c.ID, c.OwnerID, c.Title, c.Issuer, c.IssueDate, c.Description, c.CertificateLink,
	))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("certificate", c.ID.String())
		}
		return nil, err
	}
	return updated, nil
}

func (r *postgresCertificateRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*certificate.Certificate, error) {
	query := `DELETE FROM certificates WHERE id = $1 AND owner_id = $2 RETURNING ` + certificateColumns
	deleted, err := scanCertificate(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("certificate", id.String())
		}
		return nil, err
	}
	return deleted, nil
}

func (r *postgresCertificateRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*certificate.Certificate, error) {
	builder := psqlCertificate.Select(certificateColumns).
		From("certificates").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("issue_date DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list certificates query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query certificates by owner", err)
	}
	return scanCertificates(rows)
}
