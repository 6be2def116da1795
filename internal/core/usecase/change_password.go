package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type ChangePasswordUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewChangePasswordUseCase(userRepo port.UserRepositoryPort) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{userRepo: userRepo}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ChangePassword",
		"user_id":  userID.String(),
	})

	ucLogger.Info("Use case started: changing password", nil)

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository failed while finding user", err, nil)
		return fmt.Errorf("internal server error: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	if !user.CheckPassword(currentPassword) {
		ucLogger.Warn("Password change rejected: wrong current password", nil)
		return domain.ErrInvalidCredentials
	}

	if err := user.SetPassword(newPassword); err != nil {
		ucLogger.Error("Failed to hash new password", err, nil)
		return err
	}

	if err := uc.userRepo.UpdatePassword(ctx, userID, user.PasswordHash); err != nil {
		ucLogger.Error("Repository failed to update password", err, nil)
		return err
	}

	ucLogger.Info("Use case finished: password changed", nil)
	return nil
}
