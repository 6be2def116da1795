package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

const userColumns = `id, first_name, last_name, email, password_hash, phone, role, is_active, created_at, updated_at`

// UserRepository - реализация UserRepositoryPort для PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &UserRepository{pool: pool}, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create создает нового пользователя в БД.
// Конфликт по email транслируется в domain.ErrEmailInUse.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "Create",
		"user_id":   user.ID.String(),
		"email":     user.Email,
	})

	query := `INSERT INTO users (id, first_name, last_name, email, password_hash, phone, role, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	repoLogger.Debug("Executing query to create user.", nil)
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.Phone, user.Role, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			repoLogger.Warn("Unique constraint violation on email.", nil)
			return domain.ErrEmailInUse
		}
		repoLogger.Error("Failed to create user", err, port.Fields{"query": query})
		return fmt.Errorf("failed to create user: %w", err)
	}

	repoLogger.Debug("User created successfully.", nil)
	return nil
}

// FindByEmail находит пользователя по email.
// Возвращает (nil, nil), если пользователь не найден.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "FindByEmail",
		"email":     email,
	})

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	repoLogger.Debug("Executing query to find user by email.", nil)
	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		repoLogger.Error("Failed to find user by email", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return user, nil
}

// FindByID - аналогично FindByEmail.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "FindByID",
		"user_id":   id.String(),
	})

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	repoLogger.Debug("Executing query to find user by ID.", nil)
	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		repoLogger.Error("Failed to find user by ID", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}

	return user, nil
}

// List отдает страницу пользователей, новые первыми. Поиск идет по имени,
// фамилии и email без учета регистра.
func (r *UserRepository) List(ctx context.Context, search string, limit, offset int) ([]domain.User, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "List",
	})

	whereClause := ""
	args := []interface{}{}
	argId := 1
	if search != "" {
		whereClause = fmt.Sprintf("WHERE first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d", argId, argId, argId)
		args = append(args, "%"+search+"%")
		argId++
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM users %s`, whereClause)
	var totalCount int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count users", err, port.Fields{"query": countQuery})
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM users %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		userColumns, whereClause, argId, argId+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query users", err, port.Fields{"query": query})
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *user)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error during users iteration: %w", err)
	}

	return users, totalCount, nil
}

// UpdateProfile обновляет имя, фамилию и телефон.
// Возвращает (nil, nil), если пользователя нет.
func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName string, phone *string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "UpdateProfile",
		"user_id":   id.String(),
	})

	query := `UPDATE users SET first_name = $2, last_name = $3, phone = $4, updated_at = NOW()
	          WHERE id = $1 RETURNING ` + userColumns

	repoLogger.Debug("Executing query to update profile.", nil)
	user, err := scanUser(r.pool.QueryRow(ctx, query, id, firstName, lastName, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		repoLogger.Error("Failed to update profile", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "UpdatePassword",
		"user_id":   id.String(),
	})

	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		repoLogger.Error("Failed to update password", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "SetActive",
		"user_id":   id.String(),
	})

	query := `UPDATE users SET is_active = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, isActive)
	if err != nil {
		repoLogger.Error("Failed to update user activity", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update user activity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetRole(ctx context.Context, id uuid.UUID, role string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "SetRole",
		"user_id":   id.String(),
	})

	query := `UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, role)
	if err != nil {
		repoLogger.Error("Failed to update user role", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update user role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// DeleteCascading удаляет пользователя в одной транзакции. Записи объявлений
// и изображений убирает каскад БД; пути файлов изображений собираются до
// удаления и возвращаются вызывающему для очистки диска после коммита.
func (r *UserRepository) DeleteCascading(ctx context.Context, id uuid.UUID) ([]string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "DeleteCascading",
		"user_id":   id.String(),
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx,
		`SELECT pi.image_url FROM property_images pi
		 JOIN properties p ON p.id = pi.property_id
		 WHERE p.owner_id = $1`, id)
	if err != nil {
		repoLogger.Error("Failed to collect image paths", err, nil)
		return nil, fmt.Errorf("failed to collect image paths: %w", err)
	}
	var imagePaths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan image path: %w", err)
		}
		imagePaths = append(imagePaths, path)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during image paths iteration: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		repoLogger.Error("Failed to delete user", err, nil)
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrUserNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Debug("User deleted with cascade.", port.Fields{"image_paths": len(imagePaths)})
	return imagePaths, nil
}
