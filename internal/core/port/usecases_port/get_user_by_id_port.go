package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

type GetUserByIDUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
