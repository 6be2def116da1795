package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name        string
		totalCount  int
		limit       int
		offset      int
		wantPages   int
		wantCurrent int
	}{
		{"first page", 25, 10, 0, 3, 1},
		{"middle page", 25, 10, 10, 3, 2},
		{"last partial page", 25, 10, 20, 3, 3},
		{"exact division", 20, 10, 10, 2, 2},
		{"empty result", 0, 10, 0, 0, 1},
		{"single item", 1, 10, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage([]int{}, tt.totalCount, tt.limit, tt.offset)
			assert.Equal(t, tt.totalCount, page.TotalCount)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.wantCurrent, page.CurrentPage)
		})
	}
}

func TestNewPage_GuardsZeroLimit(t *testing.T) {
	page := NewPage([]string{"a"}, 5, 0, 0)
	assert.Equal(t, 5, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
}
