package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type GetContactMessageUseCase struct {
	contactRepo port.ContactRepositoryPort
}

func NewGetContactMessageUseCase(contactRepo port.ContactRepositoryPort) *GetContactMessageUseCase {
	return &GetContactMessageUseCase{contactRepo: contactRepo}
}

func (uc *GetContactMessageUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetContactMessage",
		"message_id": id.String(),
	})

	message, err := uc.contactRepo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed to find contact message", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	if message == nil {
		return nil, domain.ErrContactNotFound
	}

	return message, nil
}
