package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

const propertyColumns = `p.id, p.title, p.description, p.type, p.property_type, p.price, p.area,
	p.rooms, p.bathrooms, p.address, p.district, p.latitude, p.longitude,
	p.contact_phone, p.contact_email, p.status, p.year_built, p.object_hash,
	p.owner_id, p.created_at, p.updated_at`

// PropertyRepository - реализация PropertyRepositoryPort для PostgreSQL.
type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) (*PropertyRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyRepository{pool: pool}, nil
}

// Find отдает страницу активных объявлений по фильтрам каталога.
// К каждому объявлению подгружаются его изображения и публичные
// данные владельца.
func (r *PropertyRepository) Find(ctx context.Context, filters domain.PropertyFilters, limit, offset int) ([]domain.PropertyListing, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyRepository",
		"method":    "Find",
	})

	whereClause, args := applyFilters(filters)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM properties p %s`, whereClause)
	var totalCount int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count properties", err, port.Fields{"query": countQuery})
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s, u.first_name, u.last_name, u.email
		FROM properties p
		JOIN users u ON u.id = p.owner_id
		%s
		%s
		LIMIT $%d OFFSET $%d`,
		propertyColumns, whereClause, orderClause(filters.SortBy, filters.SortOrder),
		len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	listings, err := r.queryListings(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": query})
		return nil, 0, err
	}

	return listings, totalCount, nil
}

// FindByID - одно объявление любой видимости; (nil, nil), если его нет.
func (r *PropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.PropertyListing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "FindByID",
		"property_id": id.String(),
	})

	query := fmt.Sprintf(`SELECT %s, u.first_name, u.last_name, u.email
		FROM properties p
		JOIN users u ON u.id = p.owner_id
		WHERE p.id = $1`, propertyColumns)

	listings, err := r.queryListings(ctx, query, id)
	if err != nil {
		repoLogger.Error("Failed to query property", err, port.Fields{"query": query})
		return nil, err
	}
	if len(listings) == 0 {
		return nil, nil
	}
	return &listings[0], nil
}

// FindByOwner - страница объявлений пользователя, включая неактивные.
func (r *PropertyRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.PropertyListing, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyRepository",
		"method":    "FindByOwner",
		"owner_id":  ownerID.String(),
	})

	countQuery := `SELECT COUNT(*) FROM properties p WHERE p.owner_id = $1`
	var totalCount int
	if err := r.pool.QueryRow(ctx, countQuery, ownerID).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count owner properties", err, nil)
		return nil, 0, fmt.Errorf("failed to count owner properties: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s, u.first_name, u.last_name, u.email
		FROM properties p
		JOIN users u ON u.id = p.owner_id
		WHERE p.owner_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3`, propertyColumns)

	listings, err := r.queryListings(ctx, query, ownerID, limit, offset)
	if err != nil {
		repoLogger.Error("Failed to query owner properties", err, port.Fields{"query": query})
		return nil, 0, err
	}

	return listings, totalCount, nil
}

// queryListings выполняет запрос по объявлениям с владельцем и дочитывает
// изображения одним запросом на всю страницу.
func (r *PropertyRepository) queryListings(ctx context.Context, query string, args ...interface{}) ([]domain.PropertyListing, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var listings []domain.PropertyListing
	for rows.Next() {
		var p domain.Property
		var owner domain.OwnerInfo
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Type, &p.PropertyType, &p.Price, &p.Area,
			&p.Rooms, &p.Bathrooms, &p.Address, &p.District, &p.Latitude, &p.Longitude,
			&p.ContactPhone, &p.ContactEmail, &p.Status, &p.YearBuilt, &p.ObjectHash,
			&p.OwnerID, &p.CreatedAt, &p.UpdatedAt,
			&owner.FirstName, &owner.LastName, &owner.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		listings = append(listings, domain.PropertyListing{Property: p, Owner: &owner})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during properties iteration: %w", err)
	}

	if err := r.attachImages(ctx, listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *PropertyRepository) attachImages(ctx context.Context, listings []domain.PropertyListing) error {
	if len(listings) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(listings))
	index := make(map[uuid.UUID]int, len(listings))
	for i := range listings {
		ids[i] = listings[i].ID
		index[listings[i].ID] = i
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, property_id, image_url, is_primary, phash, created_at, updated_at
		 FROM property_images
		 WHERE property_id = ANY($1)
		 ORDER BY is_primary DESC, created_at ASC`, ids)
	if err != nil {
		return fmt.Errorf("failed to query property images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var img domain.PropertyImage
		var phash int64
		if err := rows.Scan(&img.ID, &img.PropertyID, &img.ImageURL, &img.IsPrimary, &phash, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan property image: %w", err)
		}
		img.Phash = uint64(phash)
		if i, ok := index[img.PropertyID]; ok {
			listings[i].Images = append(listings[i].Images, img)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("error during images iteration: %w", err)
	}
	return nil
}

// CreateWithImages вставляет объявление и его изображения в одной транзакции.
func (r *PropertyRepository) CreateWithImages(ctx context.Context, property *domain.Property, images []domain.PropertyImage) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "CreateWithImages",
		"property_id": property.ID.String(),
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO properties (id, title, description, type, property_type, price, area,
		rooms, bathrooms, address, district, latitude, longitude, contact_phone, contact_email,
		status, year_built, object_hash, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

	repoLogger.Debug("Executing query to insert property.", nil)
	_, err = tx.Exec(ctx, query,
		property.ID, property.Title, property.Description, property.Type, property.PropertyType,
		property.Price, property.Area, property.Rooms, property.Bathrooms, property.Address,
		property.District, property.Latitude, property.Longitude, property.ContactPhone,
		property.ContactEmail, property.Status, property.YearBuilt, property.ObjectHash,
		property.OwnerID, property.CreatedAt, property.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to insert property", err, port.Fields{"query": query})
		return fmt.Errorf("failed to insert property: %w", err)
	}

	if err := insertImages(ctx, tx, images); err != nil {
		repoLogger.Error("Failed to insert property images", err, nil)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Debug("Property created.", port.Fields{"images": len(images)})
	return nil
}

func (r *PropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "Update",
		"property_id": property.ID.String(),
	})

	query := `UPDATE properties SET title = $2, description = $3, type = $4, property_type = $5,
		price = $6, area = $7, rooms = $8, bathrooms = $9, address = $10, district = $11,
		latitude = $12, longitude = $13, contact_phone = $14, contact_email = $15,
		status = $16, year_built = $17, object_hash = $18, updated_at = $19
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		property.ID, property.Title, property.Description, property.Type, property.PropertyType,
		property.Price, property.Area, property.Rooms, property.Bathrooms, property.Address,
		property.District, property.Latitude, property.Longitude, property.ContactPhone,
		property.ContactEmail, property.Status, property.YearBuilt, property.ObjectHash,
		property.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to update property", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

// Delete удаляет объявление; записи изображений убирает каскад БД.
// Возвращает файловые пути изображений для очистки диска после коммита.
func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) ([]string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "Delete",
		"property_id": id.String(),
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `SELECT image_url FROM property_images WHERE property_id = $1`, id)
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

	tag, err := tx.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		repoLogger.Error("Failed to delete property", err, nil)
		return nil, fmt.Errorf("failed to delete property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrPropertyNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return imagePaths, nil
}

// ExistsByObjectHash проверяет, есть ли у пользователя объявление с таким же
// хэшем ключевых полей. Неактивные объявления тоже считаются.
func (r *PropertyRepository) ExistsByObjectHash(ctx context.Context, ownerID uuid.UUID, objectHash string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM properties WHERE owner_id = $1 AND object_hash = $2)`,
		ownerID, objectHash,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check object hash: %w", err)
	}
	return exists, nil
}

// FindComparables - активные объявления того же типа и района с площадью
// в заданных границах; по ним считается средняя цена за м².
func (r *PropertyRepository) FindComparables(ctx context.Context, propertyType, district string, areaMin, areaMax float64, rooms *int) ([]domain.Comparable, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyRepository",
		"method":    "FindComparables",
	})

	qb := newQueryBuilder()
	qb.addCondition("%s = $%d", "p.property_type", propertyType)
	qb.addCondition("%s = $%d", "p.district", district)
	qb.AddFloatFilter("p.area", &areaMin, &areaMax)
	if rooms != nil {
		qb.addCondition("%s = $%d", "p.rooms", *rooms)
	}
	whereClause, args := qb.build()

	query := fmt.Sprintf(`SELECT p.price, p.area FROM properties p %s LIMIT 50`, whereClause)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query comparables", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query comparables: %w", err)
	}
	defer rows.Close()

	var comparables []domain.Comparable
	for rows.Next() {
		var c domain.Comparable
		if err := rows.Scan(&c.Price, &c.Area); err != nil {
			return nil, fmt.Errorf("failed to scan comparable: %w", err)
		}
		comparables = append(comparables, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during comparables iteration: %w", err)
	}

	return comparables, nil
}

// DistinctDistricts - уникальные районы активных объявлений.
func (r *PropertyRepository) DistinctDistricts(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT district FROM properties
		 WHERE status = 'active' AND district <> ''
		 ORDER BY district ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query districts: %w", err)
	}
	defer rows.Close()

	var districts []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan district: %w", err)
		}
		districts = append(districts, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during districts iteration: %w", err)
	}

	return districts, nil
}
