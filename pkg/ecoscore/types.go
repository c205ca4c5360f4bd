package ecoscore

import "fmt"

// ActionType is the closed set of eco-action categories. Adding a category
// means adding it here, to actionTypeNames, and to the catalog, otherwise
// Parse/lookups fail loudly.
type ActionType int

const (
	Recycling ActionType = iota
	EnergySaving
	WaterConservation
	SustainableTransportation
	GreenPurchase
	WasteReduction
	Composting
	TreePlanting
	EducationAwareness
	Other
)

var actionTypeNames = [...]string{
	Recycling:                 "Recycling",
	EnergySaving:              "Energy Saving",
	WaterConservation:         "Water Conservation",
	SustainableTransportation: "Sustainable Transportation",
	GreenPurchase:             "Green Purchase",
	WasteReduction:            "Waste Reduction",
	Composting:                "Composting",
	TreePlanting:              "Tree Planting",
	EducationAwareness:        "Education/Awareness",
	Other:                     "Other",
}

func (t ActionType) String() string {
	if t < 0 || int(t) >= len(actionTypeNames) {
		return "Unknown"
	}
	return actionTypeNames[t]
}

// ParseActionType rejects anything outside the fixed set. Callers must treat
// the error as a validation failure, never substitute a default.
func ParseActionType(s string) (ActionType, error) {
	for i, name := range actionTypeNames {
		if name == s {
			return ActionType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action type %q", s)
}

// ActionTypes lists every category in declaration order.
func ActionTypes() []ActionType {
	types := make([]ActionType, len(actionTypeNames))
	for i := range types {
		types[i] = ActionType(i)
	}
	return types
}

// Impact is the five-field environmental-savings estimate attached to an
// action. Units: kg CO2, dollars, liters, kWh, kg waste.
type Impact struct {
	CO2Saved     float64 `bson:"co2Saved" json:"co2Saved"`
	MoneySaved   float64 `bson:"moneySaved" json:"moneySaved"`
	WaterSaved   float64 `bson:"waterSaved" json:"waterSaved"`
	EnergySaved  float64 `bson:"energySaved" json:"energySaved"`
	WasteReduced float64 `bson:"wasteReduced" json:"wasteReduced"`
}

// ActionTypeInfo carries the fixed per-category reference data: a suggested
// base point value and the per-unit impact multipliers.
type ActionTypeInfo struct {
	BasePoints  int    `json:"basePoints"`
	Description string `json:"description"`
	Multipliers Impact `json:"impactMultipliers"`
}

var catalog = map[ActionType]ActionTypeInfo{
	Recycling: {
		BasePoints:  50,
		Description: "Recycling items like plastic, paper, glass, or electronics",
		Multipliers: Impact{CO2Saved: 0.5, WasteReduced: 1},
	},
	EnergySaving: {
		BasePoints:  75,
		Description: "Using energy-efficient appliances, LED bulbs, or reducing energy consumption",
		Multipliers: Impact{CO2Saved: 2, EnergySaved: 1, MoneySaved: 0.1},
	},
	WaterConservation: {
		BasePoints:  60,
		Description: "Installing water-saving devices, fixing leaks, or reducing water usage",
		Multipliers: Impact{WaterSaved: 1, MoneySaved: 0.005},
	},
	SustainableTransportation: {
		BasePoints:  100,
		Description: "Walking, biking, public transport, carpooling, or electric vehicles",
		Multipliers: Impact{CO2Saved: 5, MoneySaved: 0.2},
	},
	GreenPurchase: {
		BasePoints:  80,
		Description: "Buying eco-friendly, organic, or locally sourced products",
		Multipliers: Impact{CO2Saved: 1},
	},
	WasteReduction: {
		BasePoints:  70,
		Description: "Reducing single-use items, reusing materials, or minimizing waste",
		Multipliers: Impact{WasteReduced: 1, CO2Saved: 0.3},
	},
	Composting: {
		BasePoints:  90,
		Description: "Composting organic waste to reduce landfill impact",
		Multipliers: Impact{WasteReduced: 2, CO2Saved: 1},
	},
	TreePlanting: {
		BasePoints:  200,
		Description: "Planting trees or supporting reforestation efforts",
		Multipliers: Impact{CO2Saved: 20},
	},
	EducationAwareness: {
		BasePoints:  40,
		Description: "Teaching others about sustainability or participating in eco-education",
	},
	Other: {
		BasePoints:  50,
		Description: "Other eco-friendly actions not covered in the main categories",
	},
}

// Info returns the catalog entry for t.
func Info(t ActionType) ActionTypeInfo {
	return catalog[t]
}

// Hard bounds on per-action points. The catalog's base points are a
// suggestion only; callers may submit anything inside these bounds.
const (
	MinActionPoints = 1
	MaxActionPoints = 1000
)
