// pkg/core/vehicle.go
package core

// Vehicle is one record of the merged vehicle dataset. The merge itself
// happens upstream; this is the shape the calculator consumes.
type Vehicle struct {
	VehicleID     string         `json:"id"` // datamine id, e.g. "germ_leopard_2a4"
	Name          string         `json:"name"`
	LocalizedName string         `json:"localized_name"`
	Nation        string         `json:"nation"`
	Rank          int            `json:"rank"`
	BattleRating  float64        `json:"battle_rating"`
	VehicleType   string         `json:"vehicle_type"`
	Stats         []VehicleStats `json:"stats,omitempty"`
	Ammunition    []Ammunition   `json:"ammunition,omitempty"`
}

// VehicleStats holds per-game-mode aggregate player statistics.
type VehicleStats struct {
	Mode             string  `json:"mode"` // arcade, realistic, simulator
	Battles          int     `json:"battles"`
	WinRate          float64 `json:"win_rate"`
	AvgKillsPerSpawn float64 `json:"avg_kills_per_spawn"`
}

// Ammunition is one round of a vehicle's main armament. Zero-valued numeric
// fields mean "unknown"; the parameter source substitutes documented defaults
// for them. ReferencePenetration is the value the upstream source claims and
// is carried for display only; it never feeds the model.
type Ammunition struct {
	Name                 string  `json:"name"`
	Material             string  `json:"material"`
	Caliber              float64 `json:"caliber"`         // mm
	Mass                 float64 `json:"mass"`            // kg
	MuzzleVelocity       float64 `json:"muzzle_velocity"` // m/s
	DragCoefficient      float64 `json:"cx"`
	PenetratorLength     float64 `json:"penetrator_length"`   // mm
	PenetratorDiameter   float64 `json:"penetrator_diameter"` // mm
	FrustumLength        float64 `json:"frustum_length"`      // mm
	FrustumTipDiameter   float64 `json:"frustum_tip_diameter"`
	PenetratorDensity    float64 `json:"penetrator_density"` // kg/m³
	PenetratorHardness   float64 `json:"penetrator_hardness"`
	ReferencePenetration float64 `json:"reference_penetration"` // mm
}
