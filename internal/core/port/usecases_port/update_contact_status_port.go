package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

type UpdateContactStatusUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID, status string) (*domain.ContactMessage, error)
}
