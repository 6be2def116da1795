package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type GetProfileUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewGetProfileUseCase(userRepo port.UserRepositoryPort) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetProfile",
		"user_id":  userID.String(),
	})

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository failed while finding user", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	if user == nil {
		ucLogger.Warn("Profile requested for a missing user", nil)
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}
