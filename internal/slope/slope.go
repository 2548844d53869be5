// Package slope converts a 0°-obliquity penetration value into the
// angle-indexed equivalent the game displays on its stat card. The
// conversion is an empirical multiplier table over the normal angle
// (90° minus NATO obliquity), independent of the penetration equations'
// own physical obliquity term.
package slope

// Entry pairs a normal angle in degrees with its penetration multiplier.
type Entry struct {
	Angle      float64
	Multiplier float64
}

// Table is the fixed conversion curve, monotonically decreasing from 20.0 at
// 0° to 1.0 at 90°. It is calibration data, not generated.
var Table = []Entry{
	{0, 20.0},
	{10, 5.3},
	{20, 2.4},
	{30, 1.73},
	{50, 1.305},
	{70, 1.064},
	{90, 1.0},
}

// MultiplierAtNormalAngle linearly interpolates the table, clamping below 0°
// and above 90°.
func MultiplierAtNormalAngle(angle float64) float64 {
	if angle <= Table[0].Angle {
		return Table[0].Multiplier
	}
	last := Table[len(Table)-1]
	if angle >= last.Angle {
		return last.Multiplier
	}
	for i := 1; i < len(Table); i++ {
		lo, hi := Table[i-1], Table[i]
		if angle <= hi.Angle {
			t := (angle - lo.Angle) / (hi.Angle - lo.Angle)
			return lo.Multiplier + t*(hi.Multiplier-lo.Multiplier)
		}
	}
	return last.Multiplier
}

// EquivalentPenetration converts a head-on penetration value (mm) to the
// displayed equivalent at the given NATO obliquity. Zero obliquity is the
// identity case.
func EquivalentPenetration(penAtZero, natoObliquity float64) float64 {
	if natoObliquity <= 0 {
		return penAtZero
	}
	return penAtZero / MultiplierAtNormalAngle(90-natoObliquity)
}
