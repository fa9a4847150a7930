package education

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/portify/portify/internal/domain/education"
	"github.com/portify/portify/pkg/apperror"
)

type EducationUseCase struct {
	repo education.Repository
}

func NewEducationUseCase(r education.Repository) *EducationUseCase {
	return &EducationUseCase{repo: r}
}

type UpsertEducationInput struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Institution  string
	Degree       string
	FieldOfStudy string
	StartDate    time.Time
	EndDate      *time.Time
	Grade        string
}

func (uc *EducationUseCase) Upsert(ctx context.Context, in UpsertEducationInput) (*education.Education, bool, error) {
	now := time.Now().UTC()
	e := &education.Education{
		ID:           in.ID,
		OwnerID:      in.OwnerID,
		Institution:  in.Institution,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Grade:        in.Grade,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := e.Validate(); err != nil {
		return nil, false, apperror.NewInvalidInput(err.Error(), err)
	}

	if in.ID != uuid.Nil {
		updated, err := uc.repo.Update(ctx, e)
		if err != nil {
			return nil, false, err
		}
		return updated, false, nil
	}

	e.ID = uuid.New()
	if err := uc.repo.Save(ctx, e); err != nil {
		return nil, false, err
	}
	return e, true, nil
}

func (uc *EducationUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) (*education.Education, error) {
	return uc.repo.Delete(ctx, id, ownerID)
}

func (uc *EducationUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*education.Education, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}
