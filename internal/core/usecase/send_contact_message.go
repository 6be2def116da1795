package usecase

import (
	"context"
	"fmt"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
	"realnest-backend/internal/core/port/usecases_port"
)

type SendContactMessageUseCase struct {
	contactRepo port.ContactRepositoryPort
}

func NewSendContactMessageUseCase(contactRepo port.ContactRepositoryPort) *SendContactMessageUseCase {
	return &SendContactMessageUseCase{contactRepo: contactRepo}
}

func (uc *SendContactMessageUseCase) Execute(ctx context.Context, input usecases_port.SendContactMessageInput) (*domain.ContactMessage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SendContactMessage",
		"email":    input.Email,
	})

	ucLogger.Info("Use case started: saving contact message", nil)

	message := domain.NewContactMessage(input.Name, input.Email, input.Phone, input.Subject, input.Message)
	if err := uc.contactRepo.Create(ctx, message); err != nil {
		ucLogger.Error("Repository failed to save contact message", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}

	ucLogger.Info("Use case finished: contact message saved", port.Fields{"message_id": message.ID.String()})
	return message, nil
}
