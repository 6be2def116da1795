package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type UpdateContactStatusUseCase struct {
	contactRepo port.ContactRepositoryPort
}

func NewUpdateContactStatusUseCase(contactRepo port.ContactRepositoryPort) *UpdateContactStatusUseCase {
	return &UpdateContactStatusUseCase{contactRepo: contactRepo}
}

func (uc *UpdateContactStatusUseCase) Execute(ctx context.Context, id uuid.UUID, status string) (*domain.ContactMessage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateContactStatus",
		"message_id": id.String(),
		"status":     status,
	})

	if !domain.IsValidContactStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	message, err := uc.contactRepo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed to find contact message", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	if message == nil {
		return nil, domain.ErrContactNotFound
	}

	if !message.CanTransitionTo(status) {
		ucLogger.Warn("Contact status transition rejected", port.Fields{"current": message.Status})
		return nil, domain.ErrInvalidStatus
	}

	if err := uc.contactRepo.UpdateStatus(ctx, id, status); err != nil {
		ucLogger.Error("Repository failed to update contact status", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	message.Status = status

	ucLogger.Info("Contact status updated", nil)
	return message, nil
}
