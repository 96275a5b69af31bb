package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		requested  int
		size       int
		totalItems int64
		wantNumber int
		wantPages  int
		wantOffset int
		wantNext   bool
		wantPrev   bool
	}{
		{"first page of 13 items", 1, 10, 13, 1, 2, 0, true, false},
		{"second page of 13 items", 2, 10, 13, 2, 2, 10, false, true},
		{"page beyond range clamps to last", 99, 10, 13, 2, 2, 10, false, true},
		{"page below range clamps to first", 0, 10, 13, 1, 2, 0, true, false},
		{"negative page clamps to first", -5, 10, 13, 1, 2, 0, true, false},
		{"empty set still has one page", 1, 10, 0, 1, 1, 0, false, false},
		{"exact multiple of page size", 2, 10, 20, 2, 2, 10, false, true},
		{"single full page", 1, 10, 10, 1, 1, 0, false, false},
		{"middle page", 2, 5, 12, 2, 3, 5, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.requested, tt.size, tt.totalItems)
			assert.Equal(t, tt.wantNumber, p.Number)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantOffset, p.Offset())
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
			assert.Equal(t, tt.totalItems, p.TotalItems)
		})
	}
}

func TestNew_Deterministic(t *testing.T) {
	a := New(3, 10, 45)
	b := New(3, 10, 45)
	assert.Equal(t, a, b)
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"1", 1},
		{"7", 7},
		{"0", 1},
		{"-2", 1},
		{"abc", 1},
		{"2.5", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePage(tt.raw), "raw=%q", tt.raw)
	}
}
