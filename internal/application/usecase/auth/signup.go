package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/portify/portify/internal/domain/user"
	"github.com/portify/portify/pkg/apperror"
	"github.com/portify/portify/pkg/auth"
	"github.com/portify/portify/pkg/logger"
)

type SignupUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewSignupUseCase(repo user.Repository, jwtSvc *auth.JWTService, log logger.Logger) *SignupUseCase {
	return &SignupUseCase{userRepo: repo, jwtSvc: jwtSvc, logger: log}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

type SignupOutput struct {
	User        *user.User
	AccessToken string
}

func (uc *SignupUseCase) Execute(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, apperror.NewInvalidInput(
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")), nil)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	now := time.Now().UTC()
	u := &user.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Email uniqueness is enforced by the store, not by a racy pre-check.
	if err := uc.userRepo.Save(ctx, u); err != nil {
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token after signup", err, zap.String("user_id", u.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	return &SignupOutput{User: u, AccessToken: token}, nil
}
