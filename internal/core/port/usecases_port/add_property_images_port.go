package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

type AddPropertyImagesUseCasePort interface {
	Execute(ctx context.Context, actorID uuid.UUID, actorRole string, propertyID uuid.UUID, uploads []ImageUpload) ([]domain.PropertyImage, error)
}
