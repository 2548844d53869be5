// pkg/core/target.go
package core

// TargetProperties describes the armor plate being attacked.
// Obliquity uses the NATO convention: degrees from head-on impact,
// 0 = impact along the plate normal, 90 = parallel to the plate.
type TargetProperties struct {
	Density   float64 `json:"density"`  // kg/m³, rolled homogeneous armor is 7700-8000
	Hardness  float64 `json:"hardness"` // BHN
	Obliquity float64 `json:"obliquity"`
}
