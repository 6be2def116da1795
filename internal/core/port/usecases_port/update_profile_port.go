package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

type UpdateProfileUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, firstName, lastName string, phone *string) (*domain.User, error)
}
