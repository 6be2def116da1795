package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

type MarkContactReadUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error)
}
