package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type ChangePasswordUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}
