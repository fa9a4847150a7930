package portfolio

import (
	"context"

	"github.com/portify/portify/internal/domain/certificate"
	"github.com/portify/portify/internal/domain/education"
	"github.com/portify/portify/internal/domain/experience"
	"github.com/portify/portify/internal/domain/profile"
	"github.com/portify/portify/internal/domain/project"
	"github.com/portify/portify/internal/domain/skill"
)

// Portfolio is the composite record served on the public page: one profile
// plus every collection its owner maintains. It is built whole or not at
// all, never partially.
type Portfolio struct {
	Profile      *profile.Profile           `json:"profile"`
	Skills       []*skill.Skill             `json:"skills"`
	Projects     []*project.Project         `json:"projects"`
	Experience   []*experience.Experience   `json:"experience"`
	Education    []*education.Education     `json:"education"`
	Certificates []*certificate.Certificate `json:"certificates"`
}

// Cache holds assembled portfolios keyed by slug. A miss is (nil, nil).
type Cache interface {
	Get(ctx context.Context, slug string) (*Portfolio, error)
	Set(ctx context.Context, slug string, p *Portfolio) error
	Invalidate(ctx context.Context, slugs ...string) error
}

// ViewCounter tracks public page views per slug.
type ViewCounter interface {
	Increment(ctx context.Context, slug string) (int64, error)
	Views(ctx context.Context, slug string) (int64, error)
}
