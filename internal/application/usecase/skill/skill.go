package skill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/portify/portify/internal/domain/skill"
	"github.com/portify/portify/pkg/apperror"
)

type SkillUseCase struct {
	repo skill.Repository
}

func NewSkillUseCase(r skill.Repository) *SkillUseCase {
	return &SkillUseCase{repo: r}
}

type UpsertSkillInput struct {
	// ID selects an existing record to overwrite; uuid.Nil means create.
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Level   string
}

// Upsert creates a record when no id is supplied, otherwise overwrites the
// record matching (id, owner) atomically in the store. The returned bool
// reports whether a new record was created.
func (uc *SkillUseCase) Upsert(ctx context.Context, in UpsertSkillInput) (*skill.Skill, bool, error) {
	now := time.Now().UTC()
	s := &skill.Skill{
		ID:        in.ID,
		OwnerID:   in.OwnerID,
		Name:      in.Name,
		Level:     in.Level,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Validate(); err != nil {
		return nil, false, apperror.NewInvalidInput(err.Error(), err)
	}

	if in.ID != uuid.Nil {
		updated, err := uc.repo.Update(ctx, s)
		if err != nil {
			return nil, false, err
		}
		return updated, false, nil
	}

	s.ID = uuid.New()
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, false, err
	}
	return s, true, nil
}

func (uc *SkillUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) (*skill.Skill, error) {
	return uc.repo.Delete(ctx, id, ownerID)
}

func (uc *SkillUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}
