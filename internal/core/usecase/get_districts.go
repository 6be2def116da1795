package usecase

import (
	"context"

	"realnest-backend/internal/constants"
	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/port"
)

type GetDistrictsUseCase struct {
	propertyRepo port.PropertyRepositoryPort
}

func NewGetDistrictsUseCase(propertyRepo port.PropertyRepositoryPort) *GetDistrictsUseCase {
	return &GetDistrictsUseCase{propertyRepo: propertyRepo}
}

// Execute отдает справочник районов, дополненный районами из активных
// объявлений. База недоступна - остается статический список.
func (uc *GetDistrictsUseCase) Execute(ctx context.Context) ([]string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetDistricts"})

	seen := make(map[string]struct{}, len(constants.DefaultDistricts))
	districts := make([]string, 0, len(constants.DefaultDistricts))
	for _, d := range constants.DefaultDistricts {
		seen[d] = struct{}{}
		districts = append(districts, d)
	}

	fromDB, err := uc.propertyRepo.DistinctDistricts(ctx)
	if err != nil {
		ucLogger.Warn("Failed to load districts from repository, using defaults", port.Fields{"error": err.Error()})
		return districts, nil
	}
	for _, d := range fromDB {
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			districts = append(districts, d)
		}
	}

	return districts, nil
}
