package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wtsight/armorcalc/pkg/core"
)

func TestWorkingLength_CylindricalRod(t *testing.T) {
	g := core.PenetratorGeometry{Length: 570, Diameter: 27}

	// no frustum means the full rod length works
	assert.Equal(t, 570.0, g.WorkingLength())
	assert.InDelta(t, 21.111, g.AspectRatio(), 0.001)
}

func TestWorkingLength_FrustumReducesLength(t *testing.T) {
	full := core.PenetratorGeometry{Length: 570, Diameter: 27}
	tipped := core.PenetratorGeometry{
		Length:             570,
		Diameter:           27,
		FrustumLength:      60,
		FrustumTipDiameter: 9,
	}

	assert.Less(t, tipped.WorkingLength(), full.WorkingLength())

	// r = 9/27 = 1/3, averaged cross-section factor (1+r+r²)/3 = 13/27
	expected := 570 - 60*(1-13.0/27.0)
	assert.InDelta(t, expected, tipped.WorkingLength(), 1e-9)
}

func TestWorkingLength_DegenerateFrustumIsIdentity(t *testing.T) {
	g := core.PenetratorGeometry{
		Length:             400,
		Diameter:           22,
		FrustumLength:      50,
		FrustumTipDiameter: 22,
	}

	// a frustum as wide as the body removes nothing
	assert.InDelta(t, 400.0, g.WorkingLength(), 1e-9)
}

func TestParseMaterial(t *testing.T) {
	tests := []struct {
		input   string
		want    core.PenetratorMaterial
		wantErr bool
	}{
		{"tungsten", core.MaterialTungsten, false},
		{"wha", core.MaterialTungsten, false},
		{"du", core.MaterialDU, false},
		{"uranium", core.MaterialDU, false},
		{"steel", core.MaterialSteel, false},
		{"", core.MaterialTungsten, true},
		{"ceramic", core.MaterialTungsten, true},
	}

	for _, tt := range tests {
		got, err := core.ParseMaterial(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			require.NoError(t, err, "input %q", tt.input)
		}
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseMode(t *testing.T) {
	m, err := core.ParseMode("perforation")
	require.NoError(t, err)
	assert.Equal(t, core.ModePerforation, m)

	m, err = core.ParseMode("penetration")
	require.NoError(t, err)
	assert.Equal(t, core.ModePenetration, m)

	_, err = core.ParseMode("piercing")
	assert.Error(t, err)
}

func TestResultValid(t *testing.T) {
	res := core.Result{Penetration: 450}
	assert.True(t, res.Valid())

	res.Errors = append(res.Errors, core.ValidationError{
		Kind: core.ErrGeometry, Message: "bad rod",
	})
	assert.False(t, res.Valid())
}
