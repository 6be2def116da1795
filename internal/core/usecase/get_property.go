package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type GetPropertyUseCase struct {
	propertyRepo port.PropertyRepositoryPort
}

func NewGetPropertyUseCase(propertyRepo port.PropertyRepositoryPort) *GetPropertyUseCase {
	return &GetPropertyUseCase{propertyRepo: propertyRepo}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.PropertyListing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetProperty",
		"property_id": id.String(),
	})

	listing, err := uc.propertyRepo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed to find property", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	if listing == nil {
		ucLogger.Warn("Property not found", nil)
		return nil, domain.ErrPropertyNotFound
	}

	return listing, nil
}
