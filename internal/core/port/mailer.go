package port

import (
	"context"

	"realnest-backend/internal/core/domain"
)

// MailerPort - контракт отправки почты. Единственное письмо в системе -
// ответ администратора на контактное сообщение.
type MailerPort interface {
	SendContactReply(ctx context.Context, message *domain.ContactMessage, replyText string) error
}
