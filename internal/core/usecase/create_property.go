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

type CreatePropertyUseCase struct {
	propertyRepo port.PropertyRepositoryPort
	fileStorage  port.FileStoragePort
}

func NewCreatePropertyUseCase(propertyRepo port.PropertyRepositoryPort, fileStorage port.FileStoragePort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		propertyRepo: propertyRepo,
		fileStorage:  fileStorage,
	}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, input usecases_port.CreatePropertyInput, uploads []usecases_port.ImageUpload) (*domain.PropertyListing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateProperty",
		"owner_id": input.OwnerID.String(),
		"title":    input.Title,
	})

	ucLogger.Info("Use case started: creating property", port.Fields{"uploads": len(uploads)})

	now := time.Now().UTC()
	property := &domain.Property{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		Type:         input.Type,
		PropertyType: input.PropertyType,
		Price:        input.Price,
		Area:         input.Area,
		Rooms:        input.Rooms,
		Bathrooms:    input.Bathrooms,
		Address:      input.Address,
		District:     input.District,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		ContactPhone: input.ContactPhone,
		ContactEmail: input.ContactEmail,
		Status:       domain.StatusActive,
		YearBuilt:    input.YearBuilt,
		OwnerID:      input.OwnerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	property.ObjectHash = domain.ObjectHashFor(property)

	// Защита от дубликатов: такое же объявление этого пользователя уже есть.
	exists, err := uc.propertyRepo.ExistsByObjectHash(ctx, input.OwnerID, property.ObjectHash)
	if err != nil {
		ucLogger.Error("Repository failed while checking for duplicate listing", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	if exists {
		ucLogger.Warn("Duplicate listing detected by object hash", port.Fields{"object_hash": property.ObjectHash})
		return nil, domain.ErrDuplicateListing
	}

	// Файлы сохраняем до транзакции; если вставка не удастся, подчищаем диск.
	images := make([]domain.PropertyImage, 0, len(uploads))
	for i, upload := range uploads {
		stored, err := uc.fileStorage.SaveImage(ctx, upload.FileName, upload.Content)
		if err != nil {
			ucLogger.Error("Failed to store uploaded image", err, port.Fields{"file_name": upload.FileName})
			uc.removeStoredFiles(ucLogger, images)
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
		images = append(images, domain.PropertyImage{
			ID:         uuid.New(),
			PropertyID: property.ID,
			ImageURL:   stored.URL,
			IsPrimary:  i == 0, // первое изображение - основное
			Phash:      stored.Phash,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	if err := uc.propertyRepo.CreateWithImages(ctx, property, images); err != nil {
		ucLogger.Error("Repository failed to create property", err, nil)
		uc.removeStoredFiles(ucLogger, images)
		return nil, fmt.Errorf("internal server error: %w", err)
	}

	ucLogger.Info("Use case finished: property created", port.Fields{"property_id": property.ID.String()})
	return &domain.PropertyListing{Property: *property, Images: images}, nil
}

func (uc *CreatePropertyUseCase) removeStoredFiles(logger port.LoggerPort, images []domain.PropertyImage) {
	for _, img := range images {
		if err := uc.fileStorage.Remove(img.ImageURL); err != nil {
			logger.Warn("Failed to clean up stored image after error", port.Fields{"image_url": img.ImageURL, "error": err.Error()})
		}
	}
}
