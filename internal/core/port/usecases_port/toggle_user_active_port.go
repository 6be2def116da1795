package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

type ToggleUserActiveUseCasePort interface {
	// actorID нужен для защиты от блокировки собственного аккаунта.
	Execute(ctx context.Context, actorID, targetID uuid.UUID) (*domain.User, error)
}
