package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

// ContactRepositoryPort - контракт хранилища контактных сообщений.
// Find* возвращают (nil, nil), если сообщение не найдено.
type ContactRepositoryPort interface {
	Create(ctx context.Context, message *domain.ContactMessage) error

	// List - страница сообщений; search ищется по имени/email/теме/тексту,
	// status фильтрует по статусу (пустая строка - все).
	List(ctx context.Context, search, status string, limit, offset int) ([]domain.ContactMessage, int, error)

	FindByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	SaveReply(ctx context.Context, id uuid.UUID, reply string, repliedAt time.Time) error
	// Delete возвращает false, если сообщения с таким id не было.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
