package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type GetUserPropertiesUseCase struct {
	propertyRepo port.PropertyRepositoryPort
}

func NewGetUserPropertiesUseCase(propertyRepo port.PropertyRepositoryPort) *GetUserPropertiesUseCase {
	return &GetUserPropertiesUseCase{propertyRepo: propertyRepo}
}

func (uc *GetUserPropertiesUseCase) Execute(ctx context.Context, ownerID uuid.UUID, limit, offset int) (domain.Page[domain.PropertyListing], error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserProperties",
		"owner_id": ownerID.String(),
	})

	items, totalCount, err := uc.propertyRepo.FindByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		ucLogger.Error("Repository failed to find user properties", err, nil)
		return domain.Page[domain.PropertyListing]{}, fmt.Errorf("internal server error: %w", err)
	}

	return domain.NewPage(items, totalCount, limit, offset), nil
}
