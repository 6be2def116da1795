package usecase

import (
	"context"
	"fmt"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type FindPropertiesUseCase struct {
	propertyRepo port.PropertyRepositoryPort
}

func NewFindPropertiesUseCase(propertyRepo port.PropertyRepositoryPort) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{propertyRepo: propertyRepo}
}

func (uc *FindPropertiesUseCase) Execute(ctx context.Context, filters domain.PropertyFilters, limit, offset int) (domain.Page[domain.PropertyListing], error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindProperties",
		"limit":    limit,
		"offset":   offset,
	})

	items, totalCount, err := uc.propertyRepo.Find(ctx, filters, limit, offset)
	if err != nil {
		ucLogger.Error("Repository failed to find properties", err, nil)
		return domain.Page[domain.PropertyListing]{}, fmt.Errorf("internal server error: %w", err)
	}

	ucLogger.Debug("Properties found", port.Fields{"count": len(items), "total": totalCount})
	return domain.NewPage(items, totalCount, limit, offset), nil
}
