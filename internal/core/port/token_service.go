package port

import (
	"context"
	"time"

	"realnest-backend/internal/core/domain"
)

// TokenServicePort - контракт для выдачи и проверки bearer-токенов.
type TokenServicePort interface {
	GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
}
