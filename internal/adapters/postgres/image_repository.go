package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

// ImageRepository - реализация ImageRepositoryPort для PostgreSQL.
type ImageRepository struct {
	pool *pgxpool.Pool
}

func NewImageRepository(pool *pgxpool.Pool) (*ImageRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ImageRepository{pool: pool}, nil
}

// insertImages вставляет пачку изображений внутри уже открытой транзакции.
// phash хранится как bigint, поэтому uint64 переводится в int64 бит в бит.
func insertImages(ctx context.Context, tx pgx.Tx, images []domain.PropertyImage) error {
	for _, img := range images {
		_, err := tx.Exec(ctx,
			`INSERT INTO property_images (id, property_id, image_url, is_primary, phash, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			img.ID, img.PropertyID, img.ImageURL, img.IsPrimary, int64(img.Phash), img.CreatedAt, img.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert image: %w", err)
		}
	}
	return nil
}

func (r *ImageRepository) Add(ctx context.Context, images []domain.PropertyImage) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ImageRepository",
		"method":    "Add",
	})

	if len(images) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insertImages(ctx, tx, images); err != nil {
		repoLogger.Error("Failed to insert images", err, nil)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Debug("Images inserted.", port.Fields{"count": len(images)})
	return nil
}

func (r *ImageRepository) HasPrimary(ctx context.Context, propertyID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM property_images WHERE property_id = $1 AND is_primary)`,
		propertyID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check primary image: %w", err)
	}
	return exists, nil
}

func (r *ImageRepository) Phashes(ctx context.Context, propertyID uuid.UUID) ([]uint64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT phash FROM property_images WHERE property_id = $1`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query image hashes: %w", err)
	}
	defer rows.Close()

	var hashes []uint64
	for rows.Next() {
		var h int64
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("failed to scan image hash: %w", err)
		}
		hashes = append(hashes, uint64(h))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during image hashes iteration: %w", err)
	}

	return hashes, nil
}

func (r *ImageRepository) FindByID(ctx context.Context, propertyID, imageID uuid.UUID) (*domain.PropertyImage, error) {
	var img domain.PropertyImage
	var phash int64
	err := r.pool.QueryRow(ctx,
		`SELECT id, property_id, image_url, is_primary, phash, created_at, updated_at
		 FROM property_images WHERE id = $1 AND property_id = $2`,
		imageID, propertyID,
	).Scan(&img.ID, &img.PropertyID, &img.ImageURL, &img.IsPrimary, &phash, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find image: %w", err)
	}
	img.Phash = uint64(phash)
	return &img, nil
}

// DeleteAndPromote удаляет изображение и, если оно было основным,
// в той же транзакции делает основным самое старое из оставшихся.
// Возвращает файловый путь удаленного изображения.
func (r *ImageRepository) DeleteAndPromote(ctx context.Context, propertyID, imageID uuid.UUID) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "ImageRepository",
		"method":      "DeleteAndPromote",
		"property_id": propertyID.String(),
		"image_id":    imageID.String(),
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var imageURL string
	var wasPrimary bool
	err = tx.QueryRow(ctx,
		`DELETE FROM property_images WHERE id = $1 AND property_id = $2
		 RETURNING image_url, is_primary`,
		imageID, propertyID,
	).Scan(&imageURL, &wasPrimary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrImageNotFound
		}
		repoLogger.Error("Failed to delete image", err, nil)
		return "", fmt.Errorf("failed to delete image: %w", err)
	}

	if wasPrimary {
		_, err = tx.Exec(ctx,
			`UPDATE property_images SET is_primary = true, updated_at = NOW()
			 WHERE id = (
			     SELECT id FROM property_images
			     WHERE property_id = $1
			     ORDER BY created_at ASC, id ASC
			     LIMIT 1
			 )`, propertyID)
		if err != nil {
			repoLogger.Error("Failed to promote replacement primary image", err, nil)
			return "", fmt.Errorf("failed to promote primary image: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Debug("Image deleted.", port.Fields{"was_primary": wasPrimary})
	return imageURL, nil
}
