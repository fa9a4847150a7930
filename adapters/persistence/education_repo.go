package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portify/portify/internal/domain/education"
	"github.com/portify/portify/pkg/apperror"
)

type postgresEducationRepo struct {
	db *pgxpool.Pool
}

func NewPostgresEducationRepo(db *pgxpool.Pool) education.Repository {
	return &postgresEducationRepo{db: db}
}

var psqlEducation = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const educationColumns = `id, owner_id, institution, degree, field_of_study, start_date, end_date, grade, created_at, updated_at`

func scanEducation(row pgx.Row) (*education.Education, error) {
	e := &education.Education{}
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Institution, &e.Degree, &e.FieldOfStudy,
		&e.StartDate, &e.EndDate, &e.Grade,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("education", "")
		}
		return nil, apperror.NewInternal("failed to scan education row", err)
	}
	return e, nil
}

func scanEducations(rows pgx.Rows) ([]*education.Education, error) {
	defer rows.Close()
	entries := make([]*education.Education, 0)
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return entries, nil
}

func (r *postgresEducationRepo) Save(ctx context.Context, e *education.Education) error {
	query := `
		INSERT INTO educations (id, owner_id, institution, degree, field_of_study, start_date, end_date, grade, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.OwnerID, e.Institution, e.Degree, e.FieldOfStudy,
		e.StartDate, e.EndDate, e.Grade,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save education", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e *education.Education) (*education.Education, error) {
	query := `
		UPDATE educations SET
			institution = $3, degree = $4, field_of_study = $5,
			start_date = $6, end_date = $7, grade = $8, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + educationColumns
	updated, err := scanEducation(r.db.QueryRow(ctx, query,
		e.ID, e.OwnerID, e.Institution, e.Degree, e.FieldOfStudy,
		e.StartDate, e.EndDate, e.Grade,
	))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("education", e.ID.String())
		}
		return nil, err
	}
	return updated, nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*education.Education, error) {
	query := `DELETE FROM educations WHERE id = $1 AND owner_id = $2 RETURNING ` + educationColumns
	deleted, err := scanEducation(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("education", id.String())
		}
		return nil, err
	}
	return deleted, nil
}

func (r *postgresEducationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*education.Education, error) {
	builder := psqlEducation.Select(educationColumns).
		From("educations").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("start_date DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list educations query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query educations by owner", err)
	}
	return scanEducations(rows)
}
