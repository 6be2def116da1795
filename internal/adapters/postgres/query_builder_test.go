package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"realnest-backend/internal/core/domain"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestApplyFilters_Empty(t *testing.T) {
	where, args := applyFilters(domain.PropertyFilters{})

	assert.Equal(t, "WHERE p.status = 'active'", where)
	assert.Empty(t, args)
}

func TestApplyFilters_AllFilters(t *testing.T) {
	filters := domain.PropertyFilters{
		DealType:     "sale",
		PropertyType: "apartment",
		District:     "Есиль",
		Rooms:        intPtr(2),
		PriceMin:     floatPtr(10_000_000),
		PriceMax:     floatPtr(40_000_000),
		AreaMin:      floatPtr(40),
		AreaMax:      floatPtr(90),
	}

	where, args := applyFilters(filters)

	assert.Equal(t,
		"WHERE p.status = 'active' AND p.type = $1 AND p.property_type = $2 AND p.district = $3 AND p.rooms = $4 AND p.price >= $5 AND p.price <= $6 AND p.area >= $7 AND p.area <= $8",
		where)
	assert.Equal(t, []interface{}{"sale", "apartment", "Есиль", 2, 10_000_000.0, 40_000_000.0, 40.0, 90.0}, args)
}

func TestApplyFilters_PlaceholdersStayAligned(t *testing.T) {
	// Пропуск части фильтров не должен сдвигать нумерацию аргументов.
	filters := domain.PropertyFilters{
		District: "Алматы",
		PriceMax: floatPtr(20_000_000),
	}

	where, args := applyFilters(filters)

	assert.Equal(t, "WHERE p.status = 'active' AND p.district = $1 AND p.price <= $2", where)
	assert.Equal(t, []interface{}{"Алматы", 20_000_000.0}, args)
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		expected  string
	}{
		{"default", "", "", "ORDER BY p.created_at DESC"},
		{"price asc", "price", "asc", "ORDER BY p.price ASC"},
		{"price asc uppercase", "price", "ASC", "ORDER BY p.price ASC"},
		{"area desc", "area", "desc", "ORDER BY p.area DESC"},
		{"unknown column falls back", "password_hash", "asc", "ORDER BY p.created_at ASC"},
		{"injection attempt ignored", "price; DROP TABLE users", "desc", "ORDER BY p.created_at DESC"},
		{"unknown direction defaults to desc", "price", "sideways", "ORDER BY p.price DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, orderClause(tt.sortBy, tt.sortOrder))
		})
	}
}
