package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

type ToggleUserAdminUseCasePort interface {
	Execute(ctx context.Context, actorID, targetID uuid.UUID) (*domain.User, error)
}
