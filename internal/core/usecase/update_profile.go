package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type UpdateProfileUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewUpdateProfileUseCase(userRepo port.UserRepositoryPort) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, userID uuid.UUID, firstName, lastName string, phone *string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateProfile",
		"user_id":  userID.String(),
	})

	ucLogger.Info("Use case started: updating profile", nil)

	user, err := uc.userRepo.UpdateProfile(ctx, userID, firstName, lastName, phone)
	if err != nil {
		ucLogger.Error("Repository failed to update profile", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	if user == nil {
		ucLogger.Warn("Profile update for a missing user", nil)
		return nil, domain.ErrUserNotFound
	}

	ucLogger.Info("Use case finished: profile updated", nil)
	return user, nil
}
