// pkg/core/penetrator.go
package core

import "fmt"

// PenetratorMaterial identifies the long-rod penetrator alloy family.
type PenetratorMaterial int

const (
	MaterialTungsten PenetratorMaterial = iota
	MaterialDU
	MaterialSteel
)

func (m PenetratorMaterial) String() string {
	switch m {
	case MaterialTungsten:
		return "tungsten"
	case MaterialDU:
		return "du"
	case MaterialSteel:
		return "steel"
	default:
		return fmt.Sprintf("material(%d)", int(m))
	}
}

// ParseMaterial parses a material name as found in ammo records and CLI flags.
func ParseMaterial(s string) (PenetratorMaterial, error) {
	switch s {
	case "tungsten", "wha", "WHA":
		return MaterialTungsten, nil
	case "du", "DU", "uranium":
		return MaterialDU, nil
	case "steel":
		return MaterialSteel, nil
	default:
		return MaterialTungsten, fmt.Errorf("unknown penetrator material: %q", s)
	}
}

// CalculationMode selects the target-thickness regime of the penetration
// equations: perforation of a finite plate, or penetration into a
// semi-infinite block.
type CalculationMode int

const (
	ModePerforation CalculationMode = iota
	ModePenetration
)

func (m CalculationMode) String() string {
	switch m {
	case ModePerforation:
		return "perforation"
	case ModePenetration:
		return "penetration"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode parses a calculation mode name.
func ParseMode(s string) (CalculationMode, error) {
	switch s {
	case "perforation":
		return ModePerforation, nil
	case "penetration", "semi-infinite":
		return ModePenetration, nil
	default:
		return ModePerforation, fmt.Errorf("unknown calculation mode: %q", s)
	}
}

// PenetratorGeometry describes a kinetic penetrator rod.
// Lengths and diameters are in mm, density in kg/m³, hardness in BHN.
// Hardness is only meaningful for steel rods.
type PenetratorGeometry struct {
	Length             float64 `json:"length"`
	Diameter           float64 `json:"diameter"`
	FrustumLength      float64 `json:"frustumLength"`
	FrustumTipDiameter float64 `json:"frustumTipDiameter"`
	Density            float64 `json:"density"`
	Hardness           float64 `json:"hardness"`
}

// WorkingLength returns the effective penetrating length in mm: the total rod
// length minus the non-working part of the nose frustum. The frustum
// contributes its volume-equivalent cylinder length (1+r+r²)/3 of itself,
// where r is the tip/body diameter ratio.
func (g PenetratorGeometry) WorkingLength() float64 {
	if g.Diameter == 0 {
		return g.Length
	}
	r := g.FrustumTipDiameter / g.Diameter
	return g.Length - g.FrustumLength*(1-(1+r*(1+r))/3)
}

// AspectRatio returns working length over diameter. The penetration equations
// are only calibrated for ratios of 4 and above.
func (g PenetratorGeometry) AspectRatio() float64 {
	if g.Diameter == 0 {
		return 0
	}
	return g.WorkingLength() / g.Diameter
}
