package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type MarkContactReadUseCase struct {
	contactRepo port.ContactRepositoryPort
}

func NewMarkContactReadUseCase(contactRepo port.ContactRepositoryPort) *MarkContactReadUseCase {
	return &MarkContactReadUseCase{contactRepo: contactRepo}
}

func (uc *MarkContactReadUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "MarkContactRead",
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

	// "responded" не откатывается назад к "read".
	if !message.CanTransitionTo(domain.ContactStatusRead) {
		return message, nil
	}

	if err := uc.contactRepo.UpdateStatus(ctx, id, domain.ContactStatusRead); err != nil {
		ucLogger.Error("Repository failed to update contact status", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	message.Status = domain.ContactStatusRead

	return message, nil
}
