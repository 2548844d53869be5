// pkg/core/curve.go
package core

// TableDistances are the fixed sample distances (m) of the stat-card angle
// table, matching the in-game presentation.
var TableDistances = []float64{10, 100, 500, 1000, 1500, 2000, 2500, 3000}

// TableAngles are the fixed NATO obliquity columns (degrees) of the stat-card
// angle table.
var TableAngles = []float64{0, 30, 60}

// CurvePoint is one sample of a penetration-vs-distance curve.
type CurvePoint struct {
	Distance              float64 `json:"distance"`              // m
	EquivalentPenetration float64 `json:"equivalentPenetration"` // mm, slope-effect converted
	BasePenetration       float64 `json:"basePenetration"`       // mm at 0° obliquity
	ImpactVelocity        float64 `json:"impactVelocity"`        // m/s
}

// AngleRow is one distance row of the angle table. Penetration values are
// aligned with TableAngles; a single impact velocity applies to the whole
// row.
type AngleRow struct {
	Distance       float64    `json:"distance"`
	ImpactVelocity float64    `json:"impactVelocity"`
	Penetration    [3]float64 `json:"penetration"`
}

// AngleTable mirrors the in-game distance × angle penetration card.
// Rows whose evaluation was invalid are omitted.
type AngleTable struct {
	Rows []AngleRow `json:"rows"`
}

// ComputedCurve groups a distance curve with the identity of the ammunition
// it was computed for, ready to hand to a storage backend.
type ComputedCurve struct {
	VehicleID  string             `json:"vehicleId"`
	Ammunition string             `json:"ammunition"`
	Mode       CalculationMode    `json:"mode"`
	Material   PenetratorMaterial `json:"material"`
	Obliquity  float64            `json:"obliquity"`
	Points     []CurvePoint       `json:"points"`
}
