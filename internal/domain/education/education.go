package education

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Education struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"ownerId"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Grade        string     `json:"grade"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (e *Education) Validate() error {
	var missing []string
	if e.Institution == "" {
		missing = append(missing, "institution")
	}
	if e.Degree == "" {
		missing = append(missing, "degree")
	}
	if e.FieldOfStudy == "" {
		missing = append(missing, "fieldOfStudy")
	}
	if e.StartDate.IsZero() {
		missing = append(missing, "startDate")
	}
	if e.Grade == "" {
		missing = append(missing, "grade")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, e *Education) error
	Update(ctx context.Context, e *Education) (*Education, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Education, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Education, error)
}
