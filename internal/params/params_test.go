package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wtsight/armorcalc/internal/params"
	"github.com/wtsight/armorcalc/pkg/core"
)

func TestFromAmmunition_EmptyRecordGetsDefaults(t *testing.T) {
	source := params.NewSource(nil)

	req := source.FromAmmunition(core.Ammunition{Name: "unknown round"})

	assert.Equal(t, params.DefaultCaliber, req.Geometry.Diameter)
	assert.Equal(t, params.DefaultPenetratorDensity, req.Geometry.Density)
	assert.Equal(t, params.DefaultMuzzleVelocity, req.Ballistics.MuzzleVelocity)
	assert.Equal(t, params.DefaultMass, req.Ballistics.Mass)
	assert.Equal(t, params.DefaultDragCoefficient, req.Ballistics.DragCoefficient)
	assert.Equal(t, params.DefaultTargetDensity, req.Target.Density)
	assert.Equal(t, params.DefaultTargetHardness, req.Target.Hardness)
	assert.Equal(t, params.DefaultObliquity, req.Target.Obliquity)

	// unparseable material falls back to tungsten
	assert.Equal(t, core.MaterialTungsten, req.Material)
	assert.Equal(t, core.ModePerforation, req.Mode)
}

func TestFromAmmunition_RecordValuesPassThrough(t *testing.T) {
	source := params.NewSource(nil)

	req := source.FromAmmunition(core.Ammunition{
		Name:               "DM53",
		Material:           "tungsten",
		Caliber:            120,
		Mass:               8.35,
		MuzzleVelocity:     1670,
		DragCoefficient:    0.62,
		PenetratorLength:   570,
		PenetratorDiameter: 24,
		PenetratorDensity:  17600,
	})

	assert.Equal(t, 570.0, req.Geometry.Length)
	assert.Equal(t, 24.0, req.Geometry.Diameter)
	assert.Equal(t, 17600.0, req.Geometry.Density)
	assert.Equal(t, 1670.0, req.Ballistics.MuzzleVelocity)
	assert.Equal(t, 8.35, req.Ballistics.Mass)
	assert.Equal(t, 120.0, req.Ballistics.Caliber)
	assert.Equal(t, 0.62, req.Ballistics.DragCoefficient)
	assert.Equal(t, core.MaterialTungsten, req.Material)
}

func TestFromAmmunition_DiameterFallsBackToCaliber(t *testing.T) {
	source := params.NewSource(nil)

	req := source.FromAmmunition(core.Ammunition{
		Name:    "M900",
		Caliber: 105,
	})

	// no dedicated penetrator diameter recorded, the caliber stands in
	assert.Equal(t, 105.0, req.Geometry.Diameter)
}

func TestFromAmmunition_MaterialParsing(t *testing.T) {
	source := params.NewSource(nil)

	req := source.FromAmmunition(core.Ammunition{Name: "M829", Material: "du"})
	assert.Equal(t, core.MaterialDU, req.Material)

	req = source.FromAmmunition(core.Ammunition{Name: "3BM22", Material: "steel"})
	assert.Equal(t, core.MaterialSteel, req.Material)
}

func TestFromAmmunition_ReferencePenetrationIgnored(t *testing.T) {
	source := params.NewSource(nil)

	with := source.FromAmmunition(core.Ammunition{Name: "a", ReferencePenetration: 600})
	without := source.FromAmmunition(core.Ammunition{Name: "a"})

	assert.Equal(t, without, with)
}
