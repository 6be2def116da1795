package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

type GetPropertyUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.PropertyListing, error)
}
