package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type ToggleUserActiveUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewToggleUserActiveUseCase(userRepo port.UserRepositoryPort) *ToggleUserActiveUseCase {
	return &ToggleUserActiveUseCase{userRepo: userRepo}
}

func (uc *ToggleUserActiveUseCase) Execute(ctx context.Context, actorID, targetID uuid.UUID) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ToggleUserActive",
		"actor_id": actorID.String(),
		"user_id":  targetID.String(),
	})

	// Администратор не может заблокировать сам себя.
	if actorID == targetID {
		ucLogger.Warn("Self-deactivation rejected", nil)
		return nil, domain.ErrSelfModification
	}

	user, err := uc.userRepo.FindByID(ctx, targetID)
	if err != nil {
		ucLogger.Error("Repository failed to find user", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	user.IsActive = !user.IsActive
	if err := uc.userRepo.SetActive(ctx, targetID, user.IsActive); err != nil {
		ucLogger.Error("Repository failed to update user activity", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}

	ucLogger.Info("User activity toggled", port.Fields{"is_active": user.IsActive})
	return user, nil
}
