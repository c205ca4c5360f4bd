package ecoscore

// ComputeImpact scales the per-unit multipliers of t by quantity. A quantity
// below 1 is treated as 1 (callers validate, but a zero value must not zero
// out the impact). Categories without multipliers yield an all-zero Impact.
func ComputeImpact(t ActionType, quantity int) Impact {
	if quantity < 1 {
		quantity = 1
	}
	q := float64(quantity)
	m := catalog[t].Multipliers
	return Impact{
		CO2Saved:     m.CO2Saved * q,
		MoneySaved:   m.MoneySaved * q,
		WaterSaved:   m.WaterSaved * q,
		EnergySaved:  m.EnergySaved * q,
		WasteReduced: m.WasteReduced * q,
	}
}

// Add returns the field-wise sum of a and b.
func (a Impact) Add(b Impact) Impact {
	return Impact{
		CO2Saved:     a.CO2Saved + b.CO2Saved,
		MoneySaved:   a.MoneySaved + b.MoneySaved,
		WaterSaved:   a.WaterSaved + b.WaterSaved,
		EnergySaved:  a.EnergySaved + b.EnergySaved,
		WasteReduced: a.WasteReduced + b.WasteReduced,
	}
}

// IsZero reports whether every field is zero, i.e. the caller supplied no
// explicit impact and the per-type table should be used instead.
func (a Impact) IsZero() bool {
	return a == Impact{}
}
