package model

import (
	"encoding/json"
	"fmt"

	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/wtsight/armorcalc/pkg/core"
)

// VehicleFromCore maps a dataset record onto the database schema.
func VehicleFromCore(v core.Vehicle) Vehicle {
	out := Vehicle{
		VehicleID:     v.VehicleID,
		Name:          v.Name,
		LocalizedName: v.LocalizedName,
		Nation:        v.Nation,
		Rank:          v.Rank,
		BattleRating:  v.BattleRating,
		VehicleType:   v.VehicleType,
	}
	for _, s := range v.Stats {
		out.Stats = append(out.Stats, VehicleStats{
			Mode:             s.Mode,
			Battles:          s.Battles,
			WinRate:          s.WinRate,
			AvgKillsPerSpawn: s.AvgKillsPerSpawn,
		})
	}
	for _, a := range v.Ammunition {
		out.Ammunition = append(out.Ammunition, AmmunitionFromCore(a))
	}
	return out
}

// AmmunitionFromCore maps one round onto the database schema, preserving the
// source record as raw JSON.
func AmmunitionFromCore(a core.Ammunition) Ammunition {
	raw, _ := json.Marshal(a)
	return Ammunition{
		Name:                 a.Name,
		Material:             a.Material,
		Caliber:              a.Caliber,
		Mass:                 a.Mass,
		MuzzleVelocity:       a.MuzzleVelocity,
		DragCoefficient:      a.DragCoefficient,
		PenetratorLength:     a.PenetratorLength,
		PenetratorDiameter:   a.PenetratorDiameter,
		FrustumLength:        a.FrustumLength,
		FrustumTipDiameter:   a.FrustumTipDiameter,
		PenetratorDensity:    a.PenetratorDensity,
		PenetratorHardness:   a.PenetratorHardness,
		ReferencePenetration: a.ReferencePenetration,
		Raw:                  raw,
	}
}

// VehicleToCore maps a database row back to the dataset record shape.
func VehicleToCore(v Vehicle) core.Vehicle {
	out := core.Vehicle{
		VehicleID:     v.VehicleID,
		Name:          v.Name,
		LocalizedName: v.LocalizedName,
		Nation:        v.Nation,
		Rank:          v.Rank,
		BattleRating:  v.BattleRating,
		VehicleType:   v.VehicleType,
	}
	for _, s := range v.Stats {
		out.Stats = append(out.Stats, core.VehicleStats{
			Mode:             s.Mode,
			Battles:          s.Battles,
			WinRate:          s.WinRate,
			AvgKillsPerSpawn: s.AvgKillsPerSpawn,
		})
	}
	for _, a := range v.Ammunition {
		out.Ammunition = append(out.Ammunition, core.Ammunition{
			Name:                 a.Name,
			Material:             a.Material,
			Caliber:              a.Caliber,
			Mass:                 a.Mass,
			MuzzleVelocity:       a.MuzzleVelocity,
			DragCoefficient:      a.DragCoefficient,
			PenetratorLength:     a.PenetratorLength,
			PenetratorDiameter:   a.PenetratorDiameter,
			FrustumLength:        a.FrustumLength,
			FrustumTipDiameter:   a.FrustumTipDiameter,
			PenetratorDensity:    a.PenetratorDensity,
			PenetratorHardness:   a.PenetratorHardness,
			ReferencePenetration: a.ReferencePenetration,
		})
	}
	return out
}

// CurveFromCore maps a computed curve onto the database schema. The curve
// needs at least two valid samples to form a polyline.
func CurveFromCore(c core.ComputedCurve) (PenetrationCurve, error) {
	if len(c.Points) < 2 {
		return PenetrationCurve{}, fmt.Errorf("curve for %s/%s has %d points, need at least 2",
			c.VehicleID, c.Ammunition, len(c.Points))
	}

	flat := make([]float64, 0, len(c.Points)*2)
	for _, p := range c.Points {
		flat = append(flat, p.Distance, p.EquivalentPenetration)
	}
	line := geom.NewLineString(geom.NewSequence(flat, geom.DimXY))

	points, err := json.Marshal(c.Points)
	if err != nil {
		return PenetrationCurve{}, fmt.Errorf("marshalling curve points: %w", err)
	}

	return PenetrationCurve{
		Mode:      c.Mode.String(),
		Material:  c.Material.String(),
		Obliquity: c.Obliquity,
		Line:      line,
		Points:    points,
	}, nil
}
