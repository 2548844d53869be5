// Package params turns an upstream ammunition record into a fully resolved
// calculation request. The handoff is one-directional: nothing computed
// downstream ever flows back into the record.
package params

import (
	"log/slog"

	"github.com/wtsight/armorcalc/internal/curve"
	"github.com/wtsight/armorcalc/pkg/core"
)

// Defaults substituted for fields the ammunition record leaves at zero.
// They describe a generic modern APFSDS round against standard plate.
const (
	DefaultPenetratorDensity = 17200.0 // kg/m³
	DefaultCaliber           = 27.0    // mm
	DefaultMuzzleVelocity    = 1737.0  // m/s
	DefaultMass              = 4.2     // kg
	DefaultDragCoefficient   = 0.843
	DefaultTargetDensity     = 7850.0 // kg/m³
	DefaultTargetHardness    = 260.0  // BHN
	DefaultObliquity         = 0.0    // degrees, NATO
)

// Source builds calculation requests from ammunition records. Its only
// dependency is a logger.
type Source struct {
	logger *slog.Logger
}

// NewSource creates a parameter source.
func NewSource(logger *slog.Logger) *Source {
	return &Source{logger: logger}
}

// FromAmmunition resolves an ammunition record into a request, filling the
// documented defaults for absent fields. The record's reference penetration
// is intentionally ignored here; it is display-only data.
func (s *Source) FromAmmunition(a core.Ammunition) curve.Request {
	material, err := core.ParseMaterial(a.Material)
	if err != nil && s.logger != nil {
		s.logger.Debug("unknown material in ammo record, assuming tungsten",
			"ammo", a.Name, "material", a.Material)
	}

	diameter := a.PenetratorDiameter
	if diameter == 0 {
		diameter = a.Caliber
	}
	if diameter == 0 {
		diameter = DefaultCaliber
	}

	req := curve.Request{
		Geometry: core.PenetratorGeometry{
			Length:             a.PenetratorLength,
			Diameter:           diameter,
			FrustumLength:      a.FrustumLength,
			FrustumTipDiameter: a.FrustumTipDiameter,
			Density:            orDefault(a.PenetratorDensity, DefaultPenetratorDensity),
			Hardness:           a.PenetratorHardness,
		},
		Material: material,
		Mode:     core.ModePerforation,
		Target: core.TargetProperties{
			Density:   DefaultTargetDensity,
			Hardness:  DefaultTargetHardness,
			Obliquity: DefaultObliquity,
		},
		Ballistics: core.ProjectileBallistics{
			MuzzleVelocity:  orDefault(a.MuzzleVelocity, DefaultMuzzleVelocity),
			Mass:            orDefault(a.Mass, DefaultMass),
			Caliber:         orDefault(a.Caliber, DefaultCaliber),
			DragCoefficient: orDefault(a.DragCoefficient, DefaultDragCoefficient),
		},
	}
	return req
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
