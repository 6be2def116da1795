package port

import (
	"context"

	"realnest-backend/internal/core/domain"
)

// StatsRepositoryPort - агрегатные запросы для панели администратора.
type StatsRepositoryPort interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
