package usecases_port

import (
	"context"

	"realnest-backend/internal/core/domain"
)

type LoginUserUseCasePort interface {
	Execute(ctx context.Context, email, password string) (*domain.User, string, error)
}
