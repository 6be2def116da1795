package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type DeleteContactMessageUseCase struct {
	contactRepo port.ContactRepositoryPort
}

func NewDeleteContactMessageUseCase(contactRepo port.ContactRepositoryPort) *DeleteContactMessageUseCase {
	return &DeleteContactMessageUseCase{contactRepo: contactRepo}
}

func (uc *DeleteContactMessageUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "DeleteContactMessage",
		"message_id": id.String(),
	})

	deleted, err := uc.contactRepo.Delete(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed to delete contact message", err, nil)
		return fmt.Errorf("internal server error: %w", err)
	}
	if !deleted {
		return domain.ErrContactNotFound
	}

	ucLogger.Info("Contact message deleted", nil)
	return nil
}
