package domain

import (
	"time"

	"github.com/google/uuid"
)

// Статусы контактного сообщения. Переходы монотонные: new -> read -> responded.
const (
	ContactStatusNew       = "new"
	ContactStatusRead      = "read"
	ContactStatusResponded = "responded"
)

// ContactMessage - анонимное сообщение с формы обратной связи.
type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     *string
	Subject   string
	Message   string
	Status    string
	Reply     *string
	RepliedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewContactMessage создает сообщение в начальном статусе "new".
func NewContactMessage(name, email string, phone *string, subject, message string) *ContactMessage {
	now := time.Now().UTC()
	return &ContactMessage{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Subject:   subject,
		Message:   message,
		Status:    ContactStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func IsValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusResponded:
		return true
	}
	return false
}

// contactStatusRank задает порядок статусов для проверки монотонности.
var contactStatusRank = map[string]int{
	ContactStatusNew:       0,
	ContactStatusRead:      1,
	ContactStatusResponded: 2,
}

// CanTransitionTo проверяет, что статус двигается только вперед.
// Повторная установка того же статуса допустима (идемпотентность mark-read).
func (m *ContactMessage) CanTransitionTo(status string) bool {
	to, ok := contactStatusRank[status]
	if !ok {
		return false
	}
	return to >= contactStatusRank[m.Status]
}
