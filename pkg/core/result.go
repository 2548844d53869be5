// pkg/core/result.go
package core

// ErrorKind classifies a single validation failure.
type ErrorKind int

const (
	ErrGeometry ErrorKind = iota
	ErrMaterialBounds
	ErrObliquityBound
	ErrErosion
	ErrUnsupportedCombination
)

func (k ErrorKind) String() string {
	switch k {
	case ErrGeometry:
		return "geometry"
	case ErrMaterialBounds:
		return "materialBounds"
	case ErrObliquityBound:
		return "obliquityBound"
	case ErrErosion:
		return "erosion"
	case ErrUnsupportedCombination:
		return "unsupportedCombination"
	default:
		return "unknown"
	}
}

// ValidationError is one accumulated problem with a calculation request.
// The model never fails a call outright; every violation found is collected
// so a caller can display all of them at once.
type ValidationError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// Result is the outcome of one penetration evaluation. It is a pure value,
// freshly constructed on every call.
//
// Penetration is 0 whenever Errors is non-empty. WorkingLength and
// AspectRatio are purely geometric and are reported even when the
// calculation itself is invalid.
type Result struct {
	Penetration        float64            `json:"penetration"`   // mm
	Mode               CalculationMode    `json:"mode"`
	Material           PenetratorMaterial `json:"material"`
	WorkingLength      float64            `json:"workingLength"` // mm
	AspectRatio        float64            `json:"aspectRatio"`
	MinErosionVelocity float64            `json:"minErosionVelocity"` // km/s
	Errors             []ValidationError  `json:"errors,omitempty"`
}

// Valid reports whether the calculation produced a usable penetration value.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}
