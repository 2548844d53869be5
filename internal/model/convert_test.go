package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wtsight/armorcalc/pkg/core"
)

func testCoreVehicle() core.Vehicle {
	return core.Vehicle{
		VehicleID:     "germ_leopard_2a4",
		Name:          "leopard_2a4",
		LocalizedName: "Leopard 2A4",
		Nation:        "germany",
		Rank:          7,
		BattleRating:  9.7,
		VehicleType:   "medium_tank",
		Stats: []core.VehicleStats{
			{Mode: "realistic", Battles: 120000, WinRate: 54.2, AvgKillsPerSpawn: 1.1},
		},
		Ammunition: []core.Ammunition{
			{
				Name:                 "DM33",
				Material:             "tungsten",
				Caliber:              120,
				Mass:                 7.2,
				MuzzleVelocity:       1650,
				PenetratorLength:     470,
				PenetratorDiameter:   26,
				ReferencePenetration: 470,
			},
		},
	}
}

func TestVehicleRoundTrip(t *testing.T) {
	original := testCoreVehicle()

	back := VehicleToCore(VehicleFromCore(original))

	assert.Equal(t, original, back)
}

func TestAmmunitionFromCore_PreservesRaw(t *testing.T) {
	a := testCoreVehicle().Ammunition[0]

	row := AmmunitionFromCore(a)

	var decoded core.Ammunition
	require.NoError(t, json.Unmarshal(row.Raw, &decoded))
	assert.Equal(t, a, decoded)
}

func TestCurveFromCore(t *testing.T) {
	c := core.ComputedCurve{
		VehicleID:  "germ_leopard_2a4",
		Ammunition: "DM33",
		Mode:       core.ModePerforation,
		Material:   core.MaterialTungsten,
		Obliquity:  60,
		Points: []core.CurvePoint{
			{Distance: 0, EquivalentPenetration: 270, BasePenetration: 467, ImpactVelocity: 1650},
			{Distance: 50, EquivalentPenetration: 269, BasePenetration: 465, ImpactVelocity: 1644},
			{Distance: 100, EquivalentPenetration: 268, BasePenetration: 463, ImpactVelocity: 1638},
		},
	}

	row, err := CurveFromCore(c)
	require.NoError(t, err)

	assert.Equal(t, "perforation", row.Mode)
	assert.Equal(t, "tungsten", row.Material)
	assert.Equal(t, 60.0, row.Obliquity)

	seq := row.Line.Coordinates()
	require.Equal(t, 3, seq.Length())
	assert.Equal(t, 0.0, seq.Get(0).X)
	assert.Equal(t, 270.0, seq.Get(0).Y)
	assert.Equal(t, 100.0, seq.Get(2).X)
	assert.Equal(t, 268.0, seq.Get(2).Y)

	var points []core.CurvePoint
	require.NoError(t, json.Unmarshal(row.Points, &points))
	assert.Equal(t, c.Points, points)
}

func TestCurveFromCore_RejectsShortCurves(t *testing.T) {
	c := core.ComputedCurve{
		VehicleID:  "a",
		Ammunition: "b",
		Points: []core.CurvePoint{
			{Distance: 0, EquivalentPenetration: 400},
		},
	}

	_, err := CurveFromCore(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "need at least 2")
}
