package certificate

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/portify/portify/internal/domain/certificate"
	"github.com/portify/portify/pkg/apperror"
)

type CertificateUseCase struct {
	repo certificate.Repository
}

func NewCertificateUseCase(r certificate.Repository) *CertificateUseCase {
	return &CertificateUseCase{repo: r}
}

type UpsertCertificateInput struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Title           string
	Issuer          string
	IssueDate       time.Time
	Description     string
	CertificateLink string
}

func (uc *CertificateUseCase) Upsert(ctx context.Context, in UpsertCertificateInput) (*certificate.Certificate, bool, error) {
	now := time.Now().UTC()
	c := &certificate.Certificate{
		ID:              in.ID,
		OwnerID:         in.OwnerID,
		Title:           in.Title,
		Issuer:          in.Issuer,
		IssueDate:       in.IssueDate,
		Description:     in.Description,
		CertificateLink: in.CertificateLink,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := c.Validate(); err != nil {
		return nil, false, apperror.NewInvalidInput(err.Error(), err)
	}

	if in.ID != uuid.Nil {
		updated, err := uc.repo.Update(ctx, c)
		if err != nil {
			return nil, false, err
		}
		return updated, false, nil
	}

	c.ID = uuid.New()
	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, false, err
	}
	return c, true, nil
}

func (uc *CertificateUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) (*certificate.Certificate, error) {
	return uc.repo.Delete(ctx, id, ownerID)
}

func (uc *CertificateUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*certificate.Certificate, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}
