package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageOffset(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		page       int
		wantPage   int
		wantOffset int
	}{
		{"Zero", 0, 1, 0},
		{"Negative", -3, 1, 0},
		{"First", 1, 1, 0},
		{"Third", 3, 3, 20},
		{"At Max", MaxPage, MaxPage, (MaxPage - 1) * FeedPageSize},
		{"Past Max", MaxPage + 1, MaxPage, (MaxPage - 1) * FeedPageSize},
		{"Max Int", math.MaxInt, MaxPage, (MaxPage - 1) * FeedPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			page, offset := pageOffset(tt.page)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantOffset, offset)
			assert.GreaterOrEqual(t, offset, 0)
		})
	}
}
