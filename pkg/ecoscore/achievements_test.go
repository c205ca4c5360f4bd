package ecoscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func achievementNames(defs []AchievementDef) []string {
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	return names
}

func TestEvaluateAchievements_Thresholds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		points int
		want   []string
	}{
		{0, []string{}},
		{99, []string{}},
		{100, []string{"First Century"}},
		{300, []string{"First Century"}},
		{500, []string{"First Century", "Eco Warrior"}},
		{1000, []string{"First Century", "Eco Warrior", "Green Champion"}},
		{5000, []string{"First Century", "Eco Warrior", "Green Champion", "Planet Guardian"}},
	}

	for _, tt := range tests {
		got := EvaluateAchievements(tt.points, nil)
		assert.Equal(t, tt.want, achievementNames(got), "points=%d", tt.points)
	}
}

func TestEvaluateAchievements_Idempotent(t *testing.T) {
	t.Parallel()

	first := EvaluateAchievements(1200, nil)
	require.Len(t, first, 3)

	second := EvaluateAchievements(1200, achievementNames(first))
	assert.Empty(t, second)
}

func TestEvaluateAchievements_SkipsHeld(t *testing.T) {
	t.Parallel()

	got := EvaluateAchievements(600, []string{"First Century"})
	assert.Equal(t, []string{"Eco Warrior"}, achievementNames(got))
}

func TestEvaluateAchievements_FirstCenturyScenario(t *testing.T) {
	t.Parallel()

	// 0 points + a 300-point tree-planting action crosses the 100 threshold.
	got := EvaluateAchievements(300, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "First Century", got[0].Name)
	assert.NotEmpty(t, got[0].Icon)
	assert.NotEmpty(t, got[0].Description)
}
