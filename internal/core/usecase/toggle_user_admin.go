package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type ToggleUserAdminUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewToggleUserAdminUseCase(userRepo port.UserRepositoryPort) *ToggleUserAdminUseCase {
	return &ToggleUserAdminUseCase{userRepo: userRepo}
}

func (uc *ToggleUserAdminUseCase) Execute(ctx context.Context, actorID, targetID uuid.UUID) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ToggleUserAdmin",
		"actor_id": actorID.String(),
		"user_id":  targetID.String(),
	})

	// Администратор не может снять роль с самого себя.
	if actorID == targetID {
		ucLogger.Warn("Self role change rejected", nil)
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

	if user.Role == domain.RoleAdmin {
		user.Role = domain.RoleUser
	} else {
		user.Role = domain.RoleAdmin
	}
	if err := uc.userRepo.SetRole(ctx, targetID, user.Role); err != nil {
		ucLogger.Error("Repository failed to update user role", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}

	ucLogger.Info("User role toggled", port.Fields{"role": user.Role})
	return user, nil
}
