package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type DeletePropertyImageUseCasePort interface {
	Execute(ctx context.Context, actorID uuid.UUID, actorRole string, propertyID, imageID uuid.UUID) error
}
