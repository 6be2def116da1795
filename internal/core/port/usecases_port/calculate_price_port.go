package usecases_port

import (
	"context"

	"realnest-backend/internal/core/domain"
)

type CalculatePriceUseCasePort interface {
	Execute(ctx context.Context, req domain.EstimateRequest) (*domain.EstimateResult, error)
}
