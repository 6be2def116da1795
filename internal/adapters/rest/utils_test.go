package rest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 10, 0},
		{"explicit page and limit", "?page=3&limit=20", 20, 40},
		{"limit above maximum ignored", "?limit=1000", 10, 0},
		{"zero limit ignored", "?limit=0", 10, 0},
		{"negative page ignored", "?page=-1", 10, 0},
		{"garbage values ignored", "?page=abc&limit=xyz", 10, 0},
		{"max limit accepted", "?page=2&limit=100", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/properties"+tt.query, nil)
			limit, offset := GetPagination(r)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
