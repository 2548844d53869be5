package model

import (
	"time"

	geom "github.com/peterstace/simplefeatures/geom"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is the list of structs representing tables in the schema.
var DatabaseModels = []interface{}{
	&Vehicle{},
	&VehicleStats{},
	&Ammunition{},
	&PenetrationCurve{},
}

// Vehicle is one merged dataset record.
type Vehicle struct {
	gorm.Model
	VehicleID     string  `json:"id" gorm:"uniqueIndex;size:64"` // datamine id
	Name          string  `json:"name" gorm:"size:64"`
	LocalizedName string  `json:"localizedName" gorm:"size:128"`
	Nation        string  `json:"nation" gorm:"size:32"`
	Rank          int     `json:"rank"`
	BattleRating  float64 `json:"battleRating"`
	VehicleType   string  `json:"vehicleType" gorm:"size:32"`

	Stats      []VehicleStats `json:"stats"`
	Ammunition []Ammunition   `json:"ammunition"`
}

func (*Vehicle) TableName() string {
	return "vehicles"
}

// VehicleStats is one per-game-mode stat row of a vehicle.
type VehicleStats struct {
	ID               uint    `json:"id" gorm:"primarykey"`
	VehicleRef       uint    `json:"vehicleRef" gorm:"index:idx_stats_vehicle"`
	Vehicle          Vehicle `gorm:"foreignkey:VehicleRef;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Mode             string  `json:"mode" gorm:"size:16"` // arcade, realistic, simulator
	Battles          int     `json:"battles"`
	WinRate          float64 `json:"winRate"`
	AvgKillsPerSpawn float64 `json:"avgKillsPerSpawn"`
}

func (*VehicleStats) TableName() string {
	return "vehicle_stats"
}

// Ammunition is one round of a vehicle's main armament. Raw carries the
// source record untouched so later extraction fixes don't need a re-fetch.
type Ammunition struct {
	ID         uint    `json:"id" gorm:"primarykey"`
	VehicleRef uint    `json:"vehicleRef" gorm:"index:idx_ammo_vehicle"`
	Vehicle    Vehicle `gorm:"foreignkey:VehicleRef;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	Name                 string  `json:"name" gorm:"size:64"`
	Material             string  `json:"material" gorm:"size:16"`
	Caliber              float64 `json:"caliber"`
	Mass                 float64 `json:"mass"`
	MuzzleVelocity       float64 `json:"muzzleVelocity"`
	DragCoefficient      float64 `json:"cx"`
	PenetratorLength     float64 `json:"penetratorLength"`
	PenetratorDiameter   float64 `json:"penetratorDiameter"`
	FrustumLength        float64 `json:"frustumLength"`
	FrustumTipDiameter   float64 `json:"frustumTipDiameter"`
	PenetratorDensity    float64 `json:"penetratorDensity"`
	PenetratorHardness   float64 `json:"penetratorHardness"`
	ReferencePenetration float64 `json:"referencePenetration"`

	Raw datatypes.JSON `json:"raw"`
}

func (*Ammunition) TableName() string {
	return "ammunition"
}

// PenetrationCurve persists one computed distance curve. Line is the
// (distance, equivalent penetration) polyline; Points keeps the full sample
// tuples as JSON.
type PenetrationCurve struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	CreatedAt     time.Time  `json:"createdAt"`
	AmmunitionRef uint       `json:"ammunitionRef" gorm:"index:idx_curve_ammo"`
	Ammunition    Ammunition `gorm:"foreignkey:AmmunitionRef;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	Mode      string  `json:"mode" gorm:"size:16"`
	Material  string  `json:"material" gorm:"size:16"`
	Obliquity float64 `json:"obliquity"`

	Line   geom.LineString `json:"line"`
	Points datatypes.JSON  `json:"points"`
}

func (*PenetrationCurve) TableName() string {
	return "penetration_curves"
}
