package experience

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/portify/portify/internal/domain/experience"
	"github.com/portify/portify/pkg/apperror"
)

type ExperienceUseCase struct {
	repo experience.Repository
}

func NewExperienceUseCase(r experience.Repository) *ExperienceUseCase {
	return &ExperienceUseCase{repo: r}
}

type UpsertExperienceInput struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Company     string
	Position    string
	StartDate   time.Time
	EndDate     *time.Time
	Description string
}

func (uc *ExperienceUseCase) Upsert(ctx context.Context, in UpsertExperienceInput) (*experience.Experience, bool, error) {
	now := time.Now().UTC()
	e := &experience.Experience{
		ID:          in.ID,
		OwnerID:     in.OwnerID,
		Company:     in.Company,
		Position:    in.Position,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
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

func (uc *ExperienceUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) (*experience.Experience, error) {
	return uc.repo.Delete(ctx, id, ownerID)
}

func (uc *ExperienceUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}
