package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type DeletePropertyUseCase struct {
	propertyRepo port.PropertyRepositoryPort
	fileStorage  port.FileStoragePort
}

func NewDeletePropertyUseCase(propertyRepo port.PropertyRepositoryPort, fileStorage port.FileStoragePort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{
		propertyRepo: propertyRepo,
		fileStorage:  fileStorage,
	}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, actorID uuid.UUID, actorRole string, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": propertyID.String(),
		"actor_id":    actorID.String(),
	})

	ucLogger.Info("Use case started: deleting property", nil)

	listing, err := uc.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Repository failed to find property", err, nil)
		return fmt.Errorf("internal server error: %w", err)
	}
	if listing == nil {
		return domain.ErrPropertyNotFound
	}

	if listing.OwnerID != actorID && actorRole != domain.RoleAdmin {
		ucLogger.Warn("Delete rejected: actor is neither owner nor admin", port.Fields{"owner_id": listing.OwnerID.String()})
		return domain.ErrForbidden
	}

	imagePaths, err := uc.propertyRepo.Delete(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Repository failed to delete property", err, nil)
		return fmt.Errorf("internal server error: %w", err)
	}

	// Файлы удаляются после коммита. Сбой здесь оставит осиротевшие файлы
	// на диске - принятая несогласованность.
	for _, path := range imagePaths {
		if err := uc.fileStorage.Remove(path); err != nil {
			ucLogger.Warn("Failed to remove image file", port.Fields{"image_url": path, "error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished: property deleted", port.Fields{"removed_images": len(imagePaths)})
	return nil
}
