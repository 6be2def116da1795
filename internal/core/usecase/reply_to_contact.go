package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type ReplyToContactUseCase struct {
	contactRepo port.ContactRepositoryPort
	mailer      port.MailerPort
}

func NewReplyToContactUseCase(contactRepo port.ContactRepositoryPort, mailer port.MailerPort) *ReplyToContactUseCase {
	return &ReplyToContactUseCase{
		contactRepo: contactRepo,
		mailer:      mailer,
	}
}

func (uc *ReplyToContactUseCase) Execute(ctx context.Context, id uuid.UUID, replyText string) (*domain.ContactMessage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ReplyToContact",
		"message_id": id.String(),
	})

	ucLogger.Info("Use case started: replying to contact message", nil)

	message, err := uc.contactRepo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed to find contact message", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	if message == nil {
		return nil, domain.ErrContactNotFound
	}

	repliedAt := time.Now().UTC()
	if err := uc.contactRepo.SaveReply(ctx, id, replyText, repliedAt); err != nil {
		ucLogger.Error("Repository failed to save reply", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}

	message.Status = domain.ContactStatusResponded
	message.Reply = &replyText
	message.RepliedAt = &repliedAt

	// Письмо отправляем в лучшем случае: ответ уже сохранен, сбой SMTP
	// не откатывает статус.
	if uc.mailer != nil {
		if err := uc.mailer.SendContactReply(ctx, message, replyText); err != nil {
			ucLogger.Warn("Failed to send reply email", port.Fields{"email": message.Email, "error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished: reply saved", nil)
	return message, nil
}
