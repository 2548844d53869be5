// Package lanz implements the Lanz-Odermatt semi-empirical penetration
// equations for long-rod kinetic penetrators against rolled homogeneous
// armor. Four (material, mode) combinations are calibrated; DU and steel
// against semi-infinite targets are explicitly unsupported.
//
// The model is a pure function: no state is kept between calls and every
// problem with the input is reported inside the Result rather than as an
// error return.
package lanz

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/wtsight/armorcalc/pkg/core"
)

// Model evaluates the penetration equations. The zero dependencies beyond a
// logger make it safe to share across any number of goroutines.
type Model struct {
	logger *slog.Logger
}

// New creates a penetration model.
func New(logger *slog.Logger) *Model {
	return &Model{logger: logger}
}

// Compute evaluates penetration for the given rod, material, mode and target
// at the given impact velocity (km/s).
//
// The base value is always evaluated at 0° obliquity; converting it to an
// oblique-impact equivalent is the slope-effect table's job. The target
// obliquity is consulted here only to bound validity in perforation mode.
func (m *Model) Compute(
	g core.PenetratorGeometry,
	material core.PenetratorMaterial,
	mode core.CalculationMode,
	target core.TargetProperties,
	velocity float64,
) core.Result {
	res := core.Result{
		Mode:          mode,
		Material:      material,
		WorkingLength: g.WorkingLength(),
		AspectRatio:   g.AspectRatio(),
	}

	fail := func(kind core.ErrorKind, format string, args ...any) {
		res.Errors = append(res.Errors, core.ValidationError{
			Kind:    kind,
			Message: fmt.Sprintf(format, args...),
		})
	}

	// geometry
	if g.Length <= 0 {
		fail(core.ErrGeometry, "penetrator length must be positive, got %g mm", g.Length)
	}
	if g.Diameter <= 0 {
		fail(core.ErrGeometry, "penetrator diameter must be positive, got %g mm", g.Diameter)
	}
	if g.FrustumTipDiameter > g.Diameter {
		fail(core.ErrGeometry, "frustum tip diameter %g mm exceeds body diameter %g mm",
			g.FrustumTipDiameter, g.Diameter)
	}
	if res.AspectRatio < 4 {
		fail(core.ErrGeometry, "aspect ratio %.2f below model validity bound of 4", res.AspectRatio)
	}

	// target plate
	if target.Density < targetDensityMin || target.Density > targetDensityMax {
		fail(core.ErrMaterialBounds, "target density %g kg/m³ outside [%g, %g]",
			target.Density, targetDensityMin, targetDensityMax)
	}
	if mode == core.ModePerforation && target.Obliquity > maxPerforationObliquity {
		fail(core.ErrObliquityBound, "obliquity %g° exceeds %g° perforation limit",
			target.Obliquity, maxPerforationObliquity)
	}

	c, supported := lookup(material, mode)
	if !supported {
		fail(core.ErrUnsupportedCombination,
			"%s penetrators are not modeled in %s mode", material, mode)
		return res
	}

	if !c.PenetratorDensity.contains(g.Density) {
		fail(core.ErrMaterialBounds, "%s penetrator density %g kg/m³ outside (%g, %g)",
			material, g.Density, c.PenetratorDensity.Min, c.PenetratorDensity.Max)
	}
	if !c.TargetHardness.contains(target.Hardness) {
		fail(core.ErrMaterialBounds, "target hardness %g BHN outside (%g, %g)",
			target.Hardness, c.TargetHardness.Min, c.TargetHardness.Max)
	}
	if c.PenetratorHardness != nil && !c.PenetratorHardness.contains(g.Hardness) {
		fail(core.ErrMaterialBounds, "penetrator hardness %g BHN outside (%g, %g)",
			g.Hardness, c.PenetratorHardness.Min, c.PenetratorHardness.Max)
	}

	lwd := res.AspectRatio
	hardnessTerm := c.effectiveHardness(g, target, lwd)

	if g.Density > 0 {
		res.MinErosionVelocity = c.minErosionVelocity(g, target, lwd)
		if velocity < res.MinErosionVelocity {
			fail(core.ErrErosion,
				"impact velocity %.3f km/s below erosion threshold %.3f km/s",
				velocity, res.MinErosionVelocity)
		}
	}

	if len(res.Errors) > 0 {
		return res
	}

	elwd := 1 / math.Tanh(b0+b1*lwd)
	edens := math.Sqrt(g.Density / target.Density)
	expTerm := math.Exp(-hardnessTerm / (g.Density * velocity * velocity))

	pen := c.A * res.WorkingLength * elwd * edens * expTerm
	if c.HasObliquityTerm {
		// The perforation equation carries its own cos^m obliquity term.
		// The base value is evaluated head-on; oblique display values come
		// from the slope-effect conversion instead.
		pen *= math.Pow(math.Cos(baseObliquityRad), obliquityExp)
	}
	res.Penetration = pen

	if m.logger != nil {
		m.logger.Debug("computed penetration",
			"material", material.String(),
			"mode", mode.String(),
			"velocity", velocity,
			"penetration", pen)
	}
	return res
}

// effectiveHardness is the target-resistance term of the exponential:
// (C0 + C1·λ)·BHNt for tungsten and DU, SteelC0·BHNt^K·BHNp^N for steel.
func (c coefficients) effectiveHardness(g core.PenetratorGeometry, target core.TargetProperties, lwd float64) float64 {
	if c.Material == core.MaterialSteel {
		return c.SteelC0 * math.Pow(target.Hardness, c.K) * math.Pow(g.Hardness, c.N)
	}
	return (c.C0 + c.C1*lwd) * target.Hardness
}

// minErosionVelocity is the threshold below which the rod erodes instead of
// penetrating coherently.
//
// The DU branch deliberately reuses the tungsten perforation C0/C1 here while
// using its own constants in the penetration formula. This mismatch is kept
// from the original calculator; the intended DU threshold is ambiguous
// without the underlying derivation.
func (c coefficients) minErosionVelocity(g core.PenetratorGeometry, target core.TargetProperties, lwd float64) float64 {
	hard := c.effectiveHardness(g, target, lwd)
	if c.Material == core.MaterialDU {
		hard = tungstenPerforation.effectiveHardness(g, target, lwd)
	}
	return math.Sqrt(hard/g.Density) / c.MinVelocityDivisor
}
