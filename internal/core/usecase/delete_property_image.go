package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type DeletePropertyImageUseCase struct {
	propertyRepo port.PropertyRepositoryPort
	imageRepo    port.ImageRepositoryPort
	fileStorage  port.FileStoragePort
}

func NewDeletePropertyImageUseCase(propertyRepo port.PropertyRepositoryPort, imageRepo port.ImageRepositoryPort, fileStorage port.FileStoragePort) *DeletePropertyImageUseCase {
	return &DeletePropertyImageUseCase{
		propertyRepo: propertyRepo,
		imageRepo:    imageRepo,
		fileStorage:  fileStorage,
	}
}

func (uc *DeletePropertyImageUseCase) Execute(ctx context.Context, actorID uuid.UUID, actorRole string, propertyID, imageID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeletePropertyImage",
		"property_id": propertyID.String(),
		"image_id":    imageID.String(),
		"actor_id":    actorID.String(),
	})

	ucLogger.Info("Use case started: deleting property image", nil)

	listing, err := uc.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Repository failed to find property", err, nil)
		return fmt.Errorf("internal server error: %w", err)
	}
	if listing == nil {
		return domain.ErrPropertyNotFound
	}

	if listing.OwnerID != actorID && actorRole != domain.RoleAdmin {
		ucLogger.Warn("Image delete rejected: actor is neither owner nor admin", nil)
		return domain.ErrForbidden
	}

	// Удаление и назначение нового основного изображения идут одной
	// транзакцией, поэтому объявление не остается без основного фото.
	imageURL, err := uc.imageRepo.DeleteAndPromote(ctx, propertyID, imageID)
	if err != nil {
		if err == domain.ErrImageNotFound {
			return err
		}
		ucLogger.Error("Repository failed to delete image", err, nil)
		return fmt.Errorf("internal server error: %w", err)
	}

	if err := uc.fileStorage.Remove(imageURL); err != nil {
		ucLogger.Warn("Failed to remove image file", port.Fields{"image_url": imageURL, "error": err.Error()})
	}

	ucLogger.Info("Use case finished: image deleted", nil)
	return nil
}
