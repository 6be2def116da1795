package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

type GetUserPropertiesUseCasePort interface {
	Execute(ctx context.Context, ownerID uuid.UUID, limit, offset int) (domain.Page[domain.PropertyListing], error)
}
