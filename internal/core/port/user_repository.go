package port

import (
	"context"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

// UserRepositoryPort - контракт хранилища пользователей.
// Find* возвращают (nil, nil), если пользователь не найден.
type UserRepositoryPort interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// List отдает страницу пользователей; search ищется по имени/фамилии/email.
	List(ctx context.Context, search string, limit, offset int) ([]domain.User, int, error)

	UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName string, phone *string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetActive(ctx context.Context, id uuid.UUID, isActive bool) error
	SetRole(ctx context.Context, id uuid.UUID, role string) error

	// DeleteCascading удаляет пользователя в транзакции. Каскад БД удаляет
	// его объявления и записи изображений; возвращается список файловых
	// путей изображений, которые нужно убрать с диска после коммита.
	DeleteCascading(ctx context.Context, id uuid.UUID) ([]string, error)
}
