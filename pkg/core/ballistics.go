// pkg/core/ballistics.go
package core

// ProjectileBallistics carries the parameters of the muzzle-velocity decay
// model. It feeds curve generation only; the penetration equations never see
// it.
type ProjectileBallistics struct {
	MuzzleVelocity  float64 `json:"muzzleVelocity"`  // m/s
	Mass            float64 `json:"mass"`            // kg, full projectile
	Caliber         float64 `json:"caliber"`         // mm, diameter used for drag area
	DragCoefficient float64 `json:"dragCoefficient"` // Cx, dimensionless
}
