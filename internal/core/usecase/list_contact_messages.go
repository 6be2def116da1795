package usecase

import (
	"context"
	"fmt"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type ListContactMessagesUseCase struct {
	contactRepo port.ContactRepositoryPort
}

func NewListContactMessagesUseCase(contactRepo port.ContactRepositoryPort) *ListContactMessagesUseCase {
	return &ListContactMessagesUseCase{contactRepo: contactRepo}
}

func (uc *ListContactMessagesUseCase) Execute(ctx context.Context, search, status string, limit, offset int) (domain.Page[domain.ContactMessage], error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListContactMessages",
		"status":   status,
	})

	if status != "" && !domain.IsValidContactStatus(status) {
		return domain.Page[domain.ContactMessage]{}, domain.ErrInvalidStatus
	}

	items, totalCount, err := uc.contactRepo.List(ctx, search, status, limit, offset)
	if err != nil {
		ucLogger.Error("Repository failed to list contact messages", err, nil)
		return domain.Page[domain.ContactMessage]{}, fmt.Errorf("internal server error: %w", err)
	}

	return domain.NewPage(items, totalCount, limit, offset), nil
}
