package ecoscore

// AchievementDef is a one-time badge granted when cumulative points cross a
// fixed threshold.
type AchievementDef struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	MinPoints   int    `json:"minPoints"`
}

var achievementDefs = [...]AchievementDef{
	{
		Name:        "First Century",
		Description: "Earned your first 100 eco points!",
		Icon:        "🏆",
		MinPoints:   100,
	},
	{
		Name:        "Eco Warrior",
		Description: "Reached 500 eco points - you're making a difference!",
		Icon:        "⚔️",
		MinPoints:   500,
	},
	{
		Name:        "Green Champion",
		Description: "Amazing! You've earned 1000 eco points!",
		Icon:        "🏅",
		MinPoints:   1000,
	},
	{
		Name:        "Planet Guardian",
		Description: "Incredible! 5000 eco points - you're a true planet guardian!",
		Icon:        "🌍",
		MinPoints:   5000,
	},
}

// EvaluateAchievements returns the threshold badges met by totalPoints that
// are not already in existingNames. Idempotent: a second call with the same
// state returns nothing. The caller persists the result.
func EvaluateAchievements(totalPoints int, existingNames []string) []AchievementDef {
	held := make(map[string]bool, len(existingNames))
	for _, name := range existingNames {
		held[name] = true
	}

	var earned []AchievementDef
	for _, def := range achievementDefs {
		if totalPoints >= def.MinPoints && !held[def.Name] {
			earned = append(earned, def)
		}
	}
	return earned
}
