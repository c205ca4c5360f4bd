package ecoscore

// Level is one of the five ordered badges derived purely from cumulative
// points. The stored string on a user is always ResolveLevel of the current
// total; it is never set independently.
type Level string

const (
	Beginner       Level = "Beginner"
	EcoWarrior     Level = "Eco-Warrior"
	GreenChampion  Level = "Green Champion"
	PlanetGuardian Level = "Planet Guardian"
	EarthHero      Level = "Earth Hero"
)

type levelThreshold struct {
	min   int
	level Level
}

// Descending so the first threshold <= totalPoints wins.
var levelThresholds = [...]levelThreshold{
	{10000, EarthHero},
	{5000, PlanetGuardian},
	{2000, GreenChampion},
	{500, EcoWarrior},
	{0, Beginner},
}

// ResolveLevel maps a point total to its tier. No hysteresis: dropping below
// a threshold drops the level.
func ResolveLevel(totalPoints int) Level {
	for _, t := range levelThresholds {
		if totalPoints >= t.min {
			return t.level
		}
	}
	return Beginner
}

// Levels lists the tiers in ascending order.
func Levels() []Level {
	return []Level{Beginner, EcoWarrior, GreenChampion, PlanetGuardian, EarthHero}
}
