package certificate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"ownerId"`
	Title           string    `json:"title"`
	Issuer          string    `json:"issuer"`
	IssueDate       time.Time `json:"issueDate"`
	Description     string    `json:"description"`
	CertificateLink string    `json:"certificateLink"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (c *Certificate) Validate() error {
	var missing []string
	if c.Title == "" {
		missing = append(missing, "title")
	}
	if c.Issuer == "" {
		missing = append(missing, "issuer")
	}
	if c.IssueDate.IsZero() {
		missing = append(missing, "issueDate")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, c *Certificate) error
	Update(ctx context.Context, c *Certificate) (*Certificate, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Certificate, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Certificate, error)
}
