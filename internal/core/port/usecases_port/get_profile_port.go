package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

type GetProfileUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}
