package usecases_port

import (
	"context"

	"realnest-backend/internal/core/domain"
)

// SendContactMessageInput - данные формы обратной связи.
type SendContactMessageInput struct {
	Name    string
	Email   string
	Phone   *string
	Subject string
	Message string
}

type SendContactMessageUseCasePort interface {
	Execute(ctx context.Context, input SendContactMessageInput) (*domain.ContactMessage, error)
}
