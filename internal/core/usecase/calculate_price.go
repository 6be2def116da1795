package usecase

import (
	"context"
	"math/rand"
	"time"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type CalculatePriceUseCase struct {
	propertyRepo port.PropertyRepositoryPort
	randFn       func() float64
	nowFn        func() time.Time
}

func NewCalculatePriceUseCase(propertyRepo port.PropertyRepositoryPort) *CalculatePriceUseCase {
	return &CalculatePriceUseCase{
		propertyRepo: propertyRepo,
		// Фактор "рыночного шума" в пределах 0.9..1.1.
		randFn: func() float64 { return 0.9 + rand.Float64()*0.2 },
		nowFn:  time.Now,
	}
}

func (uc *CalculatePriceUseCase) Execute(ctx context.Context, req domain.EstimateRequest) (*domain.EstimateResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":      "CalculatePrice",
		"property_type": req.PropertyType,
		"district":      req.District,
	})

	ucLogger.Info("Use case started: calculating price estimate", nil)

	// Аналоги: тот же тип и район, площадь в пределах +-20%.
	var comparables []domain.Comparable
	if req.PropertyType != domain.PropertyTypeLand {
		areaMin := req.Area * 0.8
		areaMax := req.Area * 1.2
		found, err := uc.propertyRepo.FindComparables(ctx, req.PropertyType, req.District, areaMin, areaMax, req.Rooms)
		if err != nil {
			// Оценка деградирует к базовым ставкам, а не падает.
			ucLogger.Warn("Failed to load comparable listings, falling back to base rates", port.Fields{"error": err.Error()})
		} else {
			comparables = found
		}
	}

	result := domain.EstimatePrice(req, comparables, uc.nowFn().Year(), uc.randFn())

	ucLogger.Info("Use case finished: price estimated", port.Fields{
		"price":            result.Price,
		"used_comparables": result.UsedComparable,
	})
	return &result, nil
}
