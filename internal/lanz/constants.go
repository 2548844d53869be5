package lanz

import "github.com/wtsight/armorcalc/pkg/core"

// Shared fit constants of the Lanz-Odermatt equations. These are the
// published calibration values and are not tunable.
const (
	b0 = 0.283
	b1 = 0.0656
	// obliquity exponent m in cos^m
	obliquityExp = -0.224
)

// Admissible rolled homogeneous armor plate density range (kg/m³).
const (
	targetDensityMin = 7700.0
	targetDensityMax = 8000.0
)

// maxPerforationObliquity bounds the NATO obliquity in perforation mode.
const maxPerforationObliquity = 75.0

// baseObliquityRad is the impact angle the base penetration value is
// evaluated at. Angle-dependent display values are derived from it through
// the slope-effect table, not inside the formula.
const baseObliquityRad = 0.0

// bound is an exclusive admissible range.
type bound struct {
	Min, Max float64
}

func (b bound) contains(v float64) bool {
	return v > b.Min && v < b.Max
}

// coefficients holds the calibration of one supported (material, mode)
// combination.
type coefficients struct {
	Material core.PenetratorMaterial
	Mode     core.CalculationMode

	// A is the leading scaling factor.
	A float64

	// C0/C1 parameterize the effective hardness term for tungsten and DU:
	// (C0 + C1·λ)·BHNt. Unused for steel.
	C0, C1 float64

	// Steel uses a power-law hardness term SteelC0·BHNt^K·BHNp^N instead.
	SteelC0, K, N float64

	// MinVelocityDivisor scales the erosion threshold; the semi-infinite
	// regime tolerates lower velocities than plate perforation.
	MinVelocityDivisor float64

	// HasObliquityTerm reports whether cos^m enters the product. The
	// semi-infinite equation targets an unobliqued block and carries none.
	HasObliquityTerm bool

	PenetratorDensity  bound
	TargetHardness     bound
	PenetratorHardness *bound // steel rods only
}

var (
	tungstenPerforation = coefficients{
		Material:           core.MaterialTungsten,
		Mode:               core.ModePerforation,
		A:                  0.994,
		C0:                 134.5,
		C1:                 -0.148,
		MinVelocityDivisor: 1.5,
		HasObliquityTerm:   true,
		PenetratorDensity:  bound{16500, 19300},
		TargetHardness:     bound{150, 500},
	}

	tungstenPenetration = coefficients{
		Material:           core.MaterialTungsten,
		Mode:               core.ModePenetration,
		A:                  0.921,
		C0:                 138,
		C1:                 -0.100,
		MinVelocityDivisor: 1.8,
		HasObliquityTerm:   false,
		PenetratorDensity:  bound{16500, 19300},
		TargetHardness:     bound{200, 600},
	}

	duPerforation = coefficients{
		Material:           core.MaterialDU,
		Mode:               core.ModePerforation,
		A:                  0.825,
		C0:                 90.0,
		C1:                 -0.0849,
		MinVelocityDivisor: 1.5,
		HasObliquityTerm:   true,
		PenetratorDensity:  bound{16500, 19100},
		TargetHardness:     bound{150, 500},
	}

	steelPerforation = coefficients{
		Material:           core.MaterialSteel,
		Mode:               core.ModePerforation,
		A:                  1.104,
		SteelC0:            9874.0,
		K:                  0.3598,
		N:                  -0.2342,
		MinVelocityDivisor: 1.5,
		HasObliquityTerm:   true,
		PenetratorDensity:  bound{7700, 8500},
		TargetHardness:     bound{120, 550},
		PenetratorHardness: &bound{200, 750},
	}
)

// lookup resolves the coefficient set for a (material, mode) combination.
// The second return is false for the two combinations the model does not
// cover: DU and steel against semi-infinite targets.
func lookup(material core.PenetratorMaterial, mode core.CalculationMode) (coefficients, bool) {
	switch {
	case material == core.MaterialTungsten && mode == core.ModePerforation:
		return tungstenPerforation, true
	case material == core.MaterialTungsten && mode == core.ModePenetration:
		return tungstenPenetration, true
	case material == core.MaterialDU && mode == core.ModePerforation:
		return duPerforation, true
	case material == core.MaterialSteel && mode == core.ModePerforation:
		return steelPerforation, true
	default:
		return coefficients{}, false
	}
}
