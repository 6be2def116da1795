package smtp

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

// Mailer - отправка ответов на контактные сообщения через SMTP.
type Mailer struct {
	client *mail.Client
	from   string
}

// Config - параметры SMTP-подключения.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func NewMailer(cfg Config) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host cannot be empty")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("SMTP sender address cannot be empty")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &Mailer{client: client, from: cfg.From}, nil
}

// SendContactReply отправляет автору сообщения письмо с ответом администратора.
func (m *Mailer) SendContactReply(ctx context.Context, message *domain.ContactMessage, replyText string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	mailLogger := logger.WithFields(port.Fields{
		"component":  "Mailer",
		"method":     "SendContactReply",
		"message_id": message.ID.String(),
		"email":      message.Email,
	})

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := msg.To(message.Email); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	msg.Subject("Re: " + message.Subject)
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Hello %s,\n\n%s\n\n---\nYour original message:\n%s\n",
		message.Name, replyText, message.Message,
	))

	mailLogger.Info("Sending reply email.", nil)
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		mailLogger.Error("Failed to send reply email", err, nil)
		return fmt.Errorf("failed to send reply email: %w", err)
	}

	mailLogger.Info("Reply email sent.", nil)
	return nil
}
