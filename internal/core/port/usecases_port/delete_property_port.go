package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type DeletePropertyUseCasePort interface {
	Execute(ctx context.Context, actorID uuid.UUID, actorRole string, propertyID uuid.UUID) error
}
