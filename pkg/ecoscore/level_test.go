package ecoscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLevel_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		points int
		want   Level
	}{
		{0, Beginner},
		{499, Beginner},
		{500, EcoWarrior},
		{1999, EcoWarrior},
		{2000, GreenChampion},
		{4999, GreenChampion},
		{5000, PlanetGuardian},
		{9999, PlanetGuardian},
		{10000, EarthHero},
		{1_000_000, EarthHero},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveLevel(tt.points), "points=%d", tt.points)
	}
}

func TestResolveLevel_Monotonic(t *testing.T) {
	t.Parallel()

	order := map[Level]int{}
	for i, l := range Levels() {
		order[l] = i
	}

	prev := ResolveLevel(0)
	for p := 1; p <= 12000; p++ {
		cur := ResolveLevel(p)
		assert.GreaterOrEqual(t, order[cur], order[prev], "level dropped at points=%d", p)
		prev = cur
	}
}

func TestResolveLevel_NoHysteresis(t *testing.T) {
	t.Parallel()

	// Crossing down re-resolves, the badge is never sticky.
	assert.Equal(t, EcoWarrior, ResolveLevel(510))
	assert.Equal(t, Beginner, ResolveLevel(480))
}
