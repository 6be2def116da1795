package usecases_port

import (
	"context"

	"realnest-backend/internal/core/domain"
)

type ListUsersUseCasePort interface {
	Execute(ctx context.Context, search string, limit, offset int) (domain.Page[domain.User], error)
}
