package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

// Схема приложения. Частичный уникальный индекс на property_images
// гарантирует не больше одного основного изображения на объявление.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		phone VARCHAR(30),
		role VARCHAR(20) NOT NULL DEFAULT 'user',
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS properties (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		type VARCHAR(10) NOT NULL,
		property_type VARCHAR(20) NOT NULL,
		price NUMERIC(14, 2) NOT NULL,
		area NUMERIC(10, 2) NOT NULL,
		rooms INTEGER,
		bathrooms INTEGER,
		address VARCHAR(255) NOT NULL,
		district VARCHAR(100) NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		contact_phone VARCHAR(30) NOT NULL,
		contact_email VARCHAR(255),
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		year_built INTEGER,
		object_hash VARCHAR(64) NOT NULL,
		owner_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS property_images (
		id UUID PRIMARY KEY,
		property_id UUID NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
		image_url VARCHAR(500) NOT NULL,
		is_primary BOOLEAN NOT NULL DEFAULT false,
		phash BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(30),
		subject VARCHAR(255) NOT NULL,
		message TEXT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'new',
		reply TEXT,
		replied_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_owner_id ON properties(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_status ON properties(status)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_object_hash ON properties(owner_id, object_hash)`,
	`CREATE INDEX IF NOT EXISTS idx_property_images_property_id ON property_images(property_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_property_primary_image
		ON property_images(property_id) WHERE is_primary`,
	`CREATE INDEX IF NOT EXISTS idx_contact_messages_status ON contact_messages(status)`,
}

// InitSchema накатывает схему идемпотентно при старте приложения.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	logger := contextkeys.LoggerFromContext(ctx)
	schemaLogger := logger.WithFields(port.Fields{"component": "Schema"})

	schemaLogger.Info("Applying database schema", nil)
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			schemaLogger.Error("Failed to apply schema statement", err, port.Fields{"statement": stmt})
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	schemaLogger.Info("Database schema is up to date", nil)
	return nil
}

// EnsureAdmin создает администратора по умолчанию, если пользователя с таким
// email еще нет. Пароль задается конфигурацией и хэшируется как обычно.
func EnsureAdmin(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	seedLogger := logger.WithFields(port.Fields{"component": "Schema", "email": email})

	var exists bool
	err := pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if exists {
		return nil
	}

	admin, err := domain.NewUser("Admin", "Admin", email, password, nil)
	if err != nil {
		return fmt.Errorf("failed to build admin user: %w", err)
	}
	admin.Role = domain.RoleAdmin

	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, first_name, last_name, email, password_hash, phone, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (email) DO NOTHING`,
		admin.ID, admin.FirstName, admin.LastName, admin.Email, admin.PasswordHash,
		admin.Phone, admin.Role, admin.IsActive, admin.CreatedAt, admin.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	seedLogger.Info("Default admin user created", nil)
	return nil
}
