package slope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wtsight/armorcalc/internal/slope"
)

func TestMultiplierAtNormalAngle_TablePoints(t *testing.T) {
	for _, e := range slope.Table {
		assert.InDelta(t, e.Multiplier, slope.MultiplierAtNormalAngle(e.Angle), 1e-9,
			"angle %v", e.Angle)
	}
}

func TestMultiplierAtNormalAngle_Interpolation(t *testing.T) {
	// midway between (20, 2.4) and (30, 1.73)
	assert.InDelta(t, 2.065, slope.MultiplierAtNormalAngle(25), 1e-9)

	// midway between (50, 1.305) and (70, 1.064)
	assert.InDelta(t, 1.1845, slope.MultiplierAtNormalAngle(60), 1e-9)
}

func TestMultiplierAtNormalAngle_Clamping(t *testing.T) {
	assert.Equal(t, 20.0, slope.MultiplierAtNormalAngle(-15))
	assert.Equal(t, 1.0, slope.MultiplierAtNormalAngle(120))
}

func TestMultiplierAtNormalAngle_MonotoneDecreasing(t *testing.T) {
	prev := slope.MultiplierAtNormalAngle(0)
	for angle := 1.0; angle <= 90; angle++ {
		cur := slope.MultiplierAtNormalAngle(angle)
		assert.LessOrEqual(t, cur, prev, "angle %v", angle)
		prev = cur
	}
}

func TestEquivalentPenetration(t *testing.T) {
	// zero obliquity is the identity
	assert.Equal(t, 466.0, slope.EquivalentPenetration(466, 0))

	// 60° NATO obliquity maps to the 30° normal-angle entry
	assert.InDelta(t, 466.0/1.73, slope.EquivalentPenetration(466, 60), 1e-9)

	// 30° NATO obliquity interpolates the normal angle at 60°
	assert.InDelta(t, 466.0/1.1845, slope.EquivalentPenetration(466, 30), 1e-9)

	// steeper impacts always display less
	assert.Less(t, slope.EquivalentPenetration(466, 60), slope.EquivalentPenetration(466, 30))
}
