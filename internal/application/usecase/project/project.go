package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/portify/portify/internal/domain/project"
	"github.com/portify/portify/pkg/apperror"
)

type ProjectUseCase struct {
	repo project.Repository
}

func NewProjectUseCase(r project.Repository) *ProjectUseCase {
	return &ProjectUseCase{repo: r}
}

type UpsertProjectInput struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Description  string
	Technologies []string
	GithubLink   string
	LiveDemo     string
}

func (uc *ProjectUseCase) Upsert(ctx context.Context, in UpsertProjectInput) (*project.Project, bool, error) {
	now := time.Now().UTC()
	technologies := in.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	p := &project.Project{
		ID:           in.ID,
		OwnerID:      in.OwnerID,
		Name:         in.Name,
		Description:  in.Description,
		Technologies: technologies,
		GithubLink:   in.GithubLink,
		LiveDemo:     in.LiveDemo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.Validate(); err != nil {
		return nil, false, apperror.NewInvalidInput(err.Error(), err)
	}

	if in.ID != uuid.Nil {
		updated, err := uc.repo.Update(ctx, p)
		if err != nil {
			return nil, false, err
		}
		return updated, false, nil
	}

	p.ID = uuid.New()
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func (uc *ProjectUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) (*project.Project, error) {
	return uc.repo.Delete(ctx, id, ownerID)
}

func (uc *ProjectUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}
