package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

// StatsRepository - агрегатные запросы для панели администратора.
type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) (*StatsRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &StatsRepository{pool: pool}, nil
}

func (r *StatsRepository) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "StatsRepository",
		"method":    "DashboardStats",
	})

	var stats domain.DashboardStats

	query := `SELECT
		(SELECT COUNT(*) FROM users),
		(SELECT COUNT(*) FROM properties),
		(SELECT COUNT(*) FROM contact_messages WHERE status = 'new'),
		(SELECT COUNT(*) FROM users WHERE created_at >= NOW() - INTERVAL '30 days'),
		(SELECT COUNT(*) FROM properties WHERE created_at >= NOW() - INTERVAL '30 days')`

	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.UserCount,
		&stats.PropertyCount,
		&stats.NewMessagesCount,
		&stats.NewUsersLast30d,
		&stats.NewPropsLast30d,
	)
	if err != nil {
		repoLogger.Error("Failed to collect counters", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to collect counters: %w", err)
	}

	byType, err := r.countByKey(ctx,
		`SELECT property_type, COUNT(*) FROM properties GROUP BY property_type ORDER BY COUNT(*) DESC`)
	if err != nil {
		repoLogger.Error("Failed to group properties by type", err, nil)
		return nil, err
	}
	stats.PropertiesByType = byType

	topDistricts, err := r.countByKey(ctx,
		`SELECT district, COUNT(*) FROM properties
		 WHERE district <> '' GROUP BY district ORDER BY COUNT(*) DESC LIMIT 5`)
	if err != nil {
		repoLogger.Error("Failed to group properties by district", err, nil)
		return nil, err
	}
	stats.TopDistricts = topDistricts

	return &stats, nil
}

func (r *StatsRepository) countByKey(ctx context.Context, query string) ([]domain.CountByKey, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query grouping: %w", err)
	}
	defer rows.Close()

	var result []domain.CountByKey
	for rows.Next() {
		var item domain.CountByKey
		if err := rows.Scan(&item.Key, &item.Count); err != nil {
			return nil, fmt.Errorf("failed to scan grouping row: %w", err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during grouping iteration: %w", err)
	}

	return result, nil
}
