package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset int
		wantLimit  int
	}{
		{"defaults", 0, 0, 0, defaultPageSize},
		{"second page", 2, 5, 5, 5},
		{"negative values", -3, -1, 0, defaultPageSize},
		{"oversized page", 1, 1000, 0, maxPageSize},
		{"huge page number", math.MaxInt, maxPageSize, (maxPage - 1) * maxPageSize, maxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := pageBounds(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
			assert.GreaterOrEqual(t, offset, 0)
			assert.LessOrEqual(t, offset, math.MaxInt32)
		})
	}
}
