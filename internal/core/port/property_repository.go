package port

import (
	"context"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

// PropertyRepositoryPort - контракт хранилища объявлений.
type PropertyRepositoryPort interface {
	// Find строит динамический WHERE по заданным фильтрам (плюс неявный
	// status = 'active') и возвращает страницу объявлений с владельцем и
	// картинками, а также общее число строк по тем же фильтрам.
	Find(ctx context.Context, filters domain.PropertyFilters, limit, offset int) ([]domain.PropertyListing, int, error)

	// FindByID возвращает объявление любого статуса. (nil, nil) если не найдено.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.PropertyListing, error)

	// FindByOwner - объявления пользователя любого статуса, постранично.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.PropertyListing, int, error)

	// CreateWithImages вставляет объявление и его изображения в одной транзакции.
	CreateWithImages(ctx context.Context, property *domain.Property, images []domain.PropertyImage) error

	Update(ctx context.Context, property *domain.Property) error

	// Delete удаляет объявление (записи изображений уходят каскадом) и
	// возвращает файловые пути изображений для очистки диска после коммита.
	Delete(ctx context.Context, id uuid.UUID) ([]string, error)

	// ExistsByObjectHash - есть ли у пользователя активное объявление
	// с таким же хэшем ключевых полей (защита от дубликатов).
	ExistsByObjectHash(ctx context.Context, ownerID uuid.UUID, objectHash string) (bool, error)

	// FindComparables - сопоставимые активные объявления для оценщика:
	// тот же тип и район, площадь в диапазоне, опционально точное число комнат.
	FindComparables(ctx context.Context, propertyType, district string, areaMin, areaMax float64, rooms *int) ([]domain.Comparable, error)

	// DistinctDistricts - уникальные районы существующих объявлений.
	DistinctDistricts(ctx context.Context) ([]string, error)
}
