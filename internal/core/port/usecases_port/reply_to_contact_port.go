package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

type ReplyToContactUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID, replyText string) (*domain.ContactMessage, error)
}
