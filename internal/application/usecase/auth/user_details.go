package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/portify/portify/internal/domain/user"
)

type UserDetailsUseCase struct {
	userRepo user.Repository
}

func NewUserDetailsUseCase(repo user.Repository) *UserDetailsUseCase {
	return &UserDetailsUseCase{userRepo: repo}
}

// Execute returns the caller's own account record. The password hash never
// leaves the domain type's json:"-" field.
func (uc *UserDetailsUseCase) Execute(ctx context.Context, ownerID uuid.UUID) (*user.User, error) {
	return uc.userRepo.FindByID(ctx, ownerID)
}
