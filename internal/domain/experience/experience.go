package experience

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Validate names every missing required field at once. A nil EndDate means
// the position is still held.
func (e *Experience) Validate() error {
	var missing []string
	if e.Company == "" {
		missing = append(missing, "company")
	}
	if e.Position == "" {
		missing = append(missing, "position")
	}
	if e.StartDate.IsZero() {
		missing = append(missing, "startDate")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, e *Experience) error
	Update(ctx context.Context, e *Experience) (*Experience, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Experience, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Experience, error)
}
