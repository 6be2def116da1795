package usecases_port

import (
	"context"

	"realnest-backend/internal/core/domain"
)

// RegisterUserInput - данные формы регистрации.
type RegisterUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     *string
}

type RegisterUserUseCasePort interface {
	// Execute возвращает созданного пользователя и подписанный токен.
	Execute(ctx context.Context, input RegisterUserInput) (*domain.User, string, error)
}
