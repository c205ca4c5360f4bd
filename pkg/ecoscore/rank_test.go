package ecoscore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRank_WithTies(t *testing.T) {
	t.Parallel()

	population := []int{50, 200, 200, 10}

	// 3 users strictly greater than 10 -> rank 4.
	assert.Equal(t, 4, Rank(10, population))
	// Tied users share a rank.
	assert.Equal(t, 1, Rank(200, population))
	assert.Equal(t, 3, Rank(50, population))
}

func TestRank_EmptyPopulation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Rank(0, nil))
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total, page, limit int
		want               Pagination
	}{
		{95, 1, 50, Pagination{Current: 1, Pages: 2, Total: 95, HasNext: true, HasPrev: false}},
		{95, 2, 50, Pagination{Current: 2, Pages: 2, Total: 95, HasNext: false, HasPrev: true}},
		{100, 2, 50, Pagination{Current: 2, Pages: 2, Total: 100, HasNext: false, HasPrev: true}},
		{0, 1, 50, Pagination{Current: 1, Pages: 0, Total: 0, HasNext: false, HasPrev: false}},
		{10, 0, 0, Pagination{Current: 1, Pages: 10, Total: 10, HasNext: true, HasPrev: false}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Paginate(tt.total, tt.page, tt.limit), "total=%d page=%d limit=%d", tt.total, tt.page, tt.limit)
	}
}

func TestMonthWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 15, 13, 45, 0, 0, time.UTC)
	start, end := MonthWindow(now)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthWindow_DecemberRollover(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)
	start, end := MonthWindow(now)
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthWindow_LeapFebruary(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC)
	start, end := MonthWindow(now)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthWindow_KeepsLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+5", 5*3600)
	now := time.Date(2025, time.June, 10, 1, 0, 0, 0, loc)
	start, _ := MonthWindow(now)
	assert.Equal(t, loc, start.Location())
}
