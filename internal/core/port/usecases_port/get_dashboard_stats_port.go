package usecases_port

import (
	"context"

	"realnest-backend/internal/core/domain"
)

type GetDashboardStatsUseCasePort interface {
	Execute(ctx context.Context) (*domain.DashboardStats, error)
}
