package skill

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

type Skill struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Name      string    `json:"skill"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var (
	ErrNameRequired = errors.New("missing required field: skill")
	ErrBadLevel     = errors.New("level must be one of Beginner, Intermediate, Advanced")
)

func (s *Skill) Validate() error {
	if s.Name == "" {
		return ErrNameRequired
	}
	switch s.Level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return nil
	case "":
		s.Level = LevelBeginner
		return nil
	default:
		return ErrBadLevel
	}
}

type Repository interface {
	Save(ctx context.Context, s *Skill) error
	// Update overwrites the editable fields of the row matching (s.ID,
	// s.OwnerID) in one statement and returns the stored row.
	Update(ctx context.Context, s *Skill) (*Skill, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Skill, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Skill, error)
}
