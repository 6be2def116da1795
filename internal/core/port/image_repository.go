package port

import (
	"context"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

// ImageRepositoryPort - контракт хранилища изображений объявлений.
type ImageRepositoryPort interface {
	// Add вставляет пачку изображений одного объявления в транзакции.
	Add(ctx context.Context, images []domain.PropertyImage) error

	HasPrimary(ctx context.Context, propertyID uuid.UUID) (bool, error)

	// Phashes - перцептивные хэши уже загруженных изображений объявления.
	Phashes(ctx context.Context, propertyID uuid.UUID) ([]uint64, error)

	FindByID(ctx context.Context, propertyID, imageID uuid.UUID) (*domain.PropertyImage, error)

	// DeleteAndPromote в одной транзакции удаляет изображение и, если оно
	// было основным, атомарно назначает основным самое старое из оставшихся.
	// Возвращает файловый путь удаленного изображения.
	DeleteAndPromote(ctx context.Context, propertyID, imageID uuid.UUID) (string, error)
}
