package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type DeleteUserUseCase struct {
	userRepo    port.UserRepositoryPort
	fileStorage port.FileStoragePort
}

func NewDeleteUserUseCase(userRepo port.UserRepositoryPort, fileStorage port.FileStoragePort) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:    userRepo,
		fileStorage: fileStorage,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, actorID, targetID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeleteUser",
		"actor_id": actorID.String(),
		"user_id":  targetID.String(),
	})

	ucLogger.Info("Use case started: deleting user", nil)

	// Администратор не может удалить собственный аккаунт.
	if actorID == targetID {
		ucLogger.Warn("Self-deletion rejected", nil)
		return domain.ErrSelfModification
	}

	user, err := uc.userRepo.FindByID(ctx, targetID)
	if err != nil {
		ucLogger.Error("Repository failed to find user", err, nil)
		return fmt.Errorf("internal server error: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	imagePaths, err := uc.userRepo.DeleteCascading(ctx, targetID)
	if err != nil {
		ucLogger.Error("Repository failed to delete user", err, nil)
		return fmt.Errorf("internal server error: %w", err)
	}

	for _, path := range imagePaths {
		if err := uc.fileStorage.Remove(path); err != nil {
			ucLogger.Warn("Failed to remove image file", port.Fields{"image_url": path, "error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished: user deleted", port.Fields{"removed_images": len(imagePaths)})
	return nil
}
