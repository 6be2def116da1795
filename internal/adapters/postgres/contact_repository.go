package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

const contactColumns = `id, name, email, phone, subject, message, status, reply, replied_at, created_at, updated_at`

// ContactRepository - реализация ContactRepositoryPort для PostgreSQL.
type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) (*ContactRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ContactRepository{pool: pool}, nil
}

func scanContact(row pgx.Row) (*domain.ContactMessage, error) {
	var m domain.ContactMessage
	err := row.Scan(
		&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message,
		&m.Status, &m.Reply, &m.RepliedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ContactRepository) Create(ctx context.Context, message *domain.ContactMessage) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "ContactRepository",
		"method":     "Create",
		"message_id": message.ID.String(),
	})

	query := `INSERT INTO contact_messages (id, name, email, phone, subject, message, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	repoLogger.Debug("Executing query to create contact message.", nil)
	_, err := r.pool.Exec(ctx, query,
		message.ID, message.Name, message.Email, message.Phone, message.Subject,
		message.Message, message.Status, message.CreatedAt, message.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to create contact message", err, port.Fields{"query": query})
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	return nil
}

// List - страница сообщений, новые первыми. Поиск без учета регистра
// по имени, email, теме и тексту.
func (r *ContactRepository) List(ctx context.Context, search, status string, limit, offset int) ([]domain.ContactMessage, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ContactRepository",
		"method":    "List",
	})

	conditions := []string{}
	args := []interface{}{}
	argId := 1
	if search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR email ILIKE $%d OR subject ILIKE $%d OR message ILIKE $%d)",
			argId, argId, argId, argId))
		args = append(args, "%"+search+"%")
		argId++
	}
	if status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argId))
		args = append(args, status)
		argId++
	}
	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + conditions[0]
		for _, c := range conditions[1:] {
			whereClause += " AND " + c
		}
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM contact_messages %s`, whereClause)
	var totalCount int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count contact messages", err, port.Fields{"query": countQuery})
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM contact_messages %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		contactColumns, whereClause, argId, argId+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query contact messages", err, port.Fields{"query": query})
		return nil, 0, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.ContactMessage
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, *m)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error during contact messages iteration: %w", err)
	}

	return messages, totalCount, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_messages WHERE id = $1`

	m, err := scanContact(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find contact message: %w", err)
	}
	return m, nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE contact_messages SET status = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update contact status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

// SaveReply записывает текст ответа и переводит сообщение в "responded".
func (r *ContactRepository) SaveReply(ctx context.Context, id uuid.UUID, reply string, repliedAt time.Time) error {
	query := `UPDATE contact_messages
	          SET reply = $2, replied_at = $3, status = 'responded', updated_at = NOW()
	          WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, reply, repliedAt)
	if err != nil {
		return fmt.Errorf("failed to save reply: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete contact message: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
