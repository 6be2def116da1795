package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type DeleteUserUseCasePort interface {
	Execute(ctx context.Context, actorID, targetID uuid.UUID) error
}
