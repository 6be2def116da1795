package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
	"realnest-backend/internal/core/port/usecases_port"
)

type AddPropertyImagesUseCase struct {
	propertyRepo port.PropertyRepositoryPort
	imageRepo    port.ImageRepositoryPort
	fileStorage  port.FileStoragePort
}

func NewAddPropertyImagesUseCase(propertyRepo port.PropertyRepositoryPort, imageRepo port.ImageRepositoryPort, fileStorage port.FileStoragePort) *AddPropertyImagesUseCase {
	return &AddPropertyImagesUseCase{
		propertyRepo: propertyRepo,
		imageRepo:    imageRepo,
		fileStorage:  fileStorage,
	}
}

func (uc *AddPropertyImagesUseCase) Execute(ctx context.Context, actorID uuid.UUID, actorRole string, propertyID uuid.UUID, uploads []usecases_port.ImageUpload) ([]domain.PropertyImage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "AddPropertyImages",
		"property_id": propertyID.String(),
		"actor_id":    actorID.String(),
	})

	ucLogger.Info("Use case started: adding property images", port.Fields{"uploads": len(uploads)})

	listing, err := uc.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Repository failed to find property", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	if listing == nil {
		return nil, domain.ErrPropertyNotFound
	}

	if listing.OwnerID != actorID && actorRole != domain.RoleAdmin {
		ucLogger.Warn("Adding images rejected: actor is neither owner nor admin", nil)
		return nil, domain.ErrForbidden
	}

	hasPrimary, err := uc.imageRepo.HasPrimary(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Repository failed to check for primary image", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}

	existingHashes, err := uc.imageRepo.Phashes(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Repository failed to load image hashes", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	seen := make(map[uint64]struct{}, len(existingHashes))
	for _, h := range existingHashes {
		if h != 0 {
			seen[h] = struct{}{}
		}
	}

	now := time.Now().UTC()
	added := make([]domain.PropertyImage, 0, len(uploads))
	for _, upload := range uploads {
		stored, err := uc.fileStorage.SaveImage(ctx, upload.FileName, upload.Content)
		if err != nil {
			ucLogger.Error("Failed to store uploaded image", err, port.Fields{"file_name": upload.FileName})
			uc.removeStoredFiles(ucLogger, added)
			return nil, fmt.Errorf("failed to store image: %w", err)
		}

		// Перцептивный дубликат уже загруженной картинки - молча пропускаем.
		if _, dup := seen[stored.Phash]; dup && stored.Phash != 0 {
			ucLogger.Warn("Skipping perceptual duplicate image", port.Fields{"file_name": upload.FileName})
			if err := uc.fileStorage.Remove(stored.URL); err != nil {
				ucLogger.Warn("Failed to remove duplicate image file", port.Fields{"image_url": stored.URL, "error": err.Error()})
			}
			continue
		}
		if stored.Phash != 0 {
			seen[stored.Phash] = struct{}{}
		}

		// Основным становится только первое изображение объявления вообще.
		isPrimary := !hasPrimary && len(added) == 0
		added = append(added, domain.PropertyImage{
			ID:         uuid.New(),
			PropertyID: propertyID,
			ImageURL:   stored.URL,
			IsPrimary:  isPrimary,
			Phash:      stored.Phash,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	if len(added) == 0 {
		ucLogger.Info("Use case finished: all uploads were duplicates", nil)
		return added, nil
	}

	if err := uc.imageRepo.Add(ctx, added); err != nil {
		ucLogger.Error("Repository failed to insert images", err, nil)
		uc.removeStoredFiles(ucLogger, added)
		return nil, fmt.Errorf("internal server error: %w", err)
	}

	ucLogger.Info("Use case finished: images added", port.Fields{"added": len(added)})
	return added, nil
}

func (uc *AddPropertyImagesUseCase) removeStoredFiles(logger port.LoggerPort, images []domain.PropertyImage) {
	for _, img := range images {
		if err := uc.fileStorage.Remove(img.ImageURL); err != nil {
			logger.Warn("Failed to clean up stored image after error", port.Fields{"image_url": img.ImageURL, "error": err.Error()})
		}
	}
}
