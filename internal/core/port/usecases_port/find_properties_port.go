package usecases_port

import (
	"context"

	"realnest-backend/internal/core/domain"
)

type FindPropertiesUseCasePort interface {
	Execute(ctx context.Context, filters domain.PropertyFilters, limit, offset int) (domain.Page[domain.PropertyListing], error)
}
