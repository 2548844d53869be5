// Package ballistics models muzzle-velocity decay over range as pure
// exponential drag at sea level. It is a one-dimensional straight-line
// approximation: no gravity drop, lift or yaw.
package ballistics

import "math"

// airDensity is the fixed sea-level value (kg/m³).
const airDensity = 1.225

// VelocityAtDistance returns the remaining velocity (m/s) after distanceM
// meters of flight. caliberMM is the diameter used for the drag reference
// area.
func VelocityAtDistance(v0, distanceM, massKg, caliberMM, cx float64) float64 {
	if massKg <= 0 || caliberMM <= 0 {
		return v0
	}
	area := math.Pi * math.Pow(caliberMM/2000, 2)
	k := cx * airDensity * area / (2 * massKg)
	return v0 * math.Exp(-k*distanceM)
}
