package usecases_port

import (
	"context"

	"realnest-backend/internal/core/domain"
)

type ListContactMessagesUseCasePort interface {
	Execute(ctx context.Context, search, status string, limit, offset int) (domain.Page[domain.ContactMessage], error)
}
