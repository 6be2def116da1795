package usecase

import (
	"context"
	"fmt"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type GetDashboardStatsUseCase struct {
	statsRepo port.StatsRepositoryPort
}

func NewGetDashboardStatsUseCase(statsRepo port.StatsRepositoryPort) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{statsRepo: statsRepo}
}

func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*domain.DashboardStats, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetDashboardStats"})

	stats, err := uc.statsRepo.DashboardStats(ctx)
	if err != nil {
		ucLogger.Error("Repository failed to collect dashboard stats", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}

	return stats, nil
}
