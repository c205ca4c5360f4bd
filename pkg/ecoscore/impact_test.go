package ecoscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeImpact_ScalesLinearly(t *testing.T) {
	t.Parallel()

	for _, typ := range ActionTypes() {
		unit := ComputeImpact(typ, 1)
		for _, q := range []int{2, 3, 10} {
			got := ComputeImpact(typ, q)
			f := float64(q)
			assert.Equal(t, unit.CO2Saved*f, got.CO2Saved, "%s co2 q=%d", typ, q)
			assert.Equal(t, unit.MoneySaved*f, got.MoneySaved, "%s money q=%d", typ, q)
			assert.Equal(t, unit.WaterSaved*f, got.WaterSaved, "%s water q=%d", typ, q)
			assert.Equal(t, unit.EnergySaved*f, got.EnergySaved, "%s energy q=%d", typ, q)
			assert.Equal(t, unit.WasteReduced*f, got.WasteReduced, "%s waste q=%d", typ, q)
		}
	}
}

func TestComputeImpact_KnownMultipliers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Impact{CO2Saved: 60}, ComputeImpact(TreePlanting, 3))
	assert.Equal(t, Impact{CO2Saved: 1, WasteReduced: 2}, ComputeImpact(Recycling, 2))
	assert.Equal(t, Impact{CO2Saved: 2, EnergySaved: 1, MoneySaved: 0.1}, ComputeImpact(EnergySaving, 1))
	assert.Equal(t, Impact{WaterSaved: 4, MoneySaved: 0.02}, ComputeImpact(WaterConservation, 4))
	assert.Equal(t, Impact{CO2Saved: 2, WasteReduced: 4}, ComputeImpact(Composting, 2))
}

func TestComputeImpact_QuantityDefaultsToOne(t *testing.T) {
	t.Parallel()

	unit := ComputeImpact(SustainableTransportation, 1)
	assert.Equal(t, unit, ComputeImpact(SustainableTransportation, 0))
	assert.Equal(t, unit, ComputeImpact(SustainableTransportation, -5))
}

func TestComputeImpact_ZeroImpactCategories(t *testing.T) {
	t.Parallel()

	assert.True(t, ComputeImpact(EducationAwareness, 100).IsZero())
	assert.True(t, ComputeImpact(Other, 100).IsZero())
}

func TestParseActionType(t *testing.T) {
	t.Parallel()

	for _, typ := range ActionTypes() {
		got, err := ParseActionType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	_, err := ParseActionType("Jaywalking")
	require.Error(t, err)
	_, err = ParseActionType("")
	require.Error(t, err)
	_, err = ParseActionType("recycling") // case matters
	require.Error(t, err)
}

func TestCatalog_BasePointsWithinHardBounds(t *testing.T) {
	t.Parallel()

	for _, typ := range ActionTypes() {
		info := Info(typ)
		assert.GreaterOrEqual(t, info.BasePoints, MinActionPoints, "%s", typ)
		assert.LessOrEqual(t, info.BasePoints, MaxActionPoints, "%s", typ)
		assert.NotEmpty(t, info.Description, "%s", typ)
	}
}

func TestImpact_Add(t *testing.T) {
	t.Parallel()

	a := Impact{CO2Saved: 1, WaterSaved: 2}
	b := Impact{CO2Saved: 3, WasteReduced: 4}
	assert.Equal(t, Impact{CO2Saved: 4, WaterSaved: 2, WasteReduced: 4}, a.Add(b))
}
