package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realnest-backend/internal/core/domain"
)

func fixedEstimator(repo *fakePropertyRepo) *CalculatePriceUseCase {
	uc := NewCalculatePriceUseCase(repo)
	uc.randFn = func() float64 { return 1.0 }
	uc.nowFn = func() time.Time { return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC) }
	return uc
}

func TestCalculatePriceUseCase_UsesComparables(t *testing.T) {
	repo := &fakePropertyRepo{comparables: []domain.Comparable{
		{Price: 25_000_000, Area: 50},
		{Price: 27_000_000, Area: 54},
	}}
	uc := fixedEstimator(repo)

	result, err := uc.Execute(context.Background(), domain.EstimateRequest{
		PropertyType: domain.PropertyTypeApartment,
		District:     "Есиль",
		Area:         50,
		Condition:    domain.ConditionGood,
	})

	require.NoError(t, err)
	assert.True(t, result.UsedComparable)
	assert.Equal(t, int64(25_000_000), result.Price)
}

func TestCalculatePriceUseCase_FallsBackWhenRepoFails(t *testing.T) {
	repo := &fakePropertyRepo{compErr: errors.New("connection refused")}
	uc := fixedEstimator(repo)

	result, err := uc.Execute(context.Background(), domain.EstimateRequest{
		PropertyType: domain.PropertyTypeApartment,
		District:     "Алматы",
		Area:         60,
		Condition:    domain.ConditionGood,
	})

	// Ошибка базы не валит оценку: считаем по статическим ставкам.
	require.NoError(t, err)
	assert.False(t, result.UsedComparable)
	assert.Equal(t, int64(27_000_000), result.Price)
}

func TestCalculatePriceUseCase_LandSkipsComparables(t *testing.T) {
	repo := &fakePropertyRepo{compErr: errors.New("must not be called")}
	uc := fixedEstimator(repo)

	result, err := uc.Execute(context.Background(), domain.EstimateRequest{
		PropertyType: domain.PropertyTypeLand,
		District:     "Есиль",
		Area:         1000,
	})

	require.NoError(t, err)
	assert.False(t, result.UsedComparable)
	assert.Equal(t, int64(29_750_000), result.Price)
}

func TestCalculatePriceUseCase_DefaultRandomFactorRange(t *testing.T) {
	uc := NewCalculatePriceUseCase(&fakePropertyRepo{})

	for i := 0; i < 100; i++ {
		factor := uc.randFn()
		assert.GreaterOrEqual(t, factor, 0.9)
		assert.LessOrEqual(t, factor, 1.1)
	}
}
