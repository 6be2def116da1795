package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type GetUserByIDUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewGetUserByIDUseCase(userRepo port.UserRepositoryPort) *GetUserByIDUseCase {
	return &GetUserByIDUseCase{userRepo: userRepo}
}

func (uc *GetUserByIDUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserByID",
		"user_id":  id.String(),
	})

	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed to find user", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}
