package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimatePrice_FromComparables(t *testing.T) {
	req := EstimateRequest{
		PropertyType: PropertyTypeApartment,
		District:     "Есиль",
		Area:         50,
		Condition:    ConditionGood,
	}
	comparables := []Comparable{
		{Price: 25_000_000, Area: 50},
		{Price: 27_000_000, Area: 54},
	}

	result := EstimatePrice(req, comparables, 2026, 1.0)

	// Средняя цена за м² у обоих аналогов 500 000.
	assert.Equal(t, int64(25_000_000), result.Price)
	assert.Equal(t, int64(500_000), result.PricePerSq)
	assert.Equal(t, int64(22_500_000), result.Range.Min)
	assert.Equal(t, int64(27_500_000), result.Range.Max)
	assert.True(t, result.UsedComparable)
}

func TestEstimatePrice_ConditionAdjustment(t *testing.T) {
	comparables := []Comparable{{Price: 25_000_000, Area: 50}}

	tests := []struct {
		condition string
		expected  int64
	}{
		{ConditionGood, 25_000_000},
		{ConditionExcellent, 28_750_000},
		{ConditionNeedsRepair, 20_000_000},
		{ConditionConstruction, 17_500_000},
	}

	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			req := EstimateRequest{
				PropertyType: PropertyTypeApartment,
				District:     "Есиль",
				Area:         50,
				Condition:    tt.condition,
			}
			result := EstimatePrice(req, comparables, 2026, 1.0)
			assert.Equal(t, tt.expected, result.Price)
		})
	}
}

func TestEstimatePrice_AgeAdjustment(t *testing.T) {
	comparables := []Comparable{{Price: 25_000_000, Area: 50}}
	currentYear := 2026

	tests := []struct {
		name      string
		yearBuilt int
		expected  int64
	}{
		{"new building", 2025, 27_500_000},
		{"under five years", 2023, 26_250_000},
		{"under ten years", 2018, 25_000_000},
		{"under twenty years", 2010, 22_500_000},
		{"old building", 1995, 20_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year := tt.yearBuilt
			req := EstimateRequest{
				PropertyType: PropertyTypeApartment,
				District:     "Есиль",
				Area:         50,
				Condition:    ConditionGood,
				YearBuilt:    &year,
			}
			result := EstimatePrice(req, comparables, currentYear, 1.0)
			assert.Equal(t, tt.expected, result.Price)
		})
	}
}

func TestEstimatePrice_BaseRatesFallback(t *testing.T) {
	req := EstimateRequest{
		PropertyType: PropertyTypeApartment,
		District:     "Алматы",
		Area:         60,
		Condition:    ConditionExcellent,
	}

	result := EstimatePrice(req, nil, 2026, 1.0)

	// 450 000 за м² × 60 м² × 1.15 (excellent).
	assert.Equal(t, int64(31_050_000), result.Price)
	assert.False(t, result.UsedComparable)
}

func TestEstimatePrice_UnknownDistrictUsesDefaultRate(t *testing.T) {
	req := EstimateRequest{
		PropertyType: PropertyTypeApartment,
		District:     "Несуществующий",
		Area:         10,
		Condition:    ConditionGood,
	}

	result := EstimatePrice(req, nil, 2026, 1.0)
	assert.Equal(t, int64(4_500_000), result.Price)
}

func TestEstimatePrice_Land(t *testing.T) {
	req := EstimateRequest{
		PropertyType: PropertyTypeLand,
		District:     "Есиль",
		Area:         1000, // 10 соток
		Condition:    ConditionGood,
	}
	// Наличие аналогов для земли не учитывается.
	comparables := []Comparable{{Price: 25_000_000, Area: 50}}

	result := EstimatePrice(req, comparables, 2026, 1.0)

	// 3 500 000 за сотку × 10 соток × 0.85 (крупный участок).
	assert.Equal(t, int64(29_750_000), result.Price)
	assert.False(t, result.UsedComparable)
}

func TestEstimatePrice_RandomFactorApplied(t *testing.T) {
	req := EstimateRequest{
		PropertyType: PropertyTypeApartment,
		District:     "Есиль",
		Area:         50,
		Condition:    ConditionGood,
	}
	comparables := []Comparable{{Price: 25_000_000, Area: 50}}

	low := EstimatePrice(req, comparables, 2026, 0.9)
	high := EstimatePrice(req, comparables, 2026, 1.1)

	assert.Equal(t, int64(22_500_000), low.Price)
	assert.Equal(t, int64(27_500_000), high.Price)
}

func TestEstimatePrice_RoundsToThousand(t *testing.T) {
	req := EstimateRequest{
		PropertyType: PropertyTypeApartment,
		District:     "Есиль",
		Area:         47,
		Condition:    ConditionGood,
	}
	comparables := []Comparable{{Price: 25_123_456, Area: 50}}

	result := EstimatePrice(req, comparables, 2026, 1.0)
	assert.Zero(t, result.Price%1000)
}

func TestIsValidCondition(t *testing.T) {
	assert.True(t, IsValidCondition(ConditionGood))
	assert.True(t, IsValidCondition(ConditionConstruction))
	assert.False(t, IsValidCondition("renovated"))
	assert.False(t, IsValidCondition(""))
}
