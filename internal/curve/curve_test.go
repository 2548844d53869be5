package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wtsight/armorcalc/internal/curve"
	"github.com/wtsight/armorcalc/pkg/core"
)

func testRequest() curve.Request {
	return curve.Request{
		Geometry: core.PenetratorGeometry{
			Length:   570,
			Diameter: 27,
			Density:  17200,
		},
		Material: core.MaterialTungsten,
		Mode:     core.ModePerforation,
		Target: core.TargetProperties{
			Density:  7850,
			Hardness: 260,
		},
		Ballistics: core.ProjectileBallistics{
			MuzzleVelocity:  1737,
			Mass:            4.2,
			Caliber:         27,
			DragCoefficient: 0.843,
		},
	}
}

func newGenerator(t *testing.T) *curve.Generator {
	t.Helper()
	g, err := curve.New(nil)
	require.NoError(t, err)
	return g
}

func TestDistanceCurve_FullSampling(t *testing.T) {
	g := newGenerator(t)

	points := g.DistanceCurve(testRequest())

	// every sample of a healthy round is valid
	require.Len(t, points, curve.DefaultSteps+1)
	assert.Equal(t, 0.0, points[0].Distance)
	assert.Equal(t, 4000.0, points[len(points)-1].Distance)
	assert.Equal(t, 1737.0, points[0].ImpactVelocity)
}

func TestDistanceCurve_MonotoneDecay(t *testing.T) {
	g := newGenerator(t)

	points := g.DistanceCurve(testRequest())
	require.NotEmpty(t, points)

	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i].ImpactVelocity, points[i-1].ImpactVelocity, "sample %d", i)
		assert.Less(t, points[i].BasePenetration, points[i-1].BasePenetration, "sample %d", i)
	}
}

func TestDistanceCurve_ZeroObliquityIsIdentity(t *testing.T) {
	g := newGenerator(t)

	points := g.DistanceCurve(testRequest())
	require.NotEmpty(t, points)

	for _, p := range points {
		assert.Equal(t, p.BasePenetration, p.EquivalentPenetration)
	}
}

func TestDistanceCurve_ObliquityScalesEquivalent(t *testing.T) {
	g := newGenerator(t)

	req := testRequest()
	req.Target.Obliquity = 60

	points := g.DistanceCurve(req)
	require.NotEmpty(t, points)

	for _, p := range points {
		// 60° NATO maps to the 30° normal-angle multiplier of 1.73
		assert.InDelta(t, p.BasePenetration/1.73, p.EquivalentPenetration, 1e-9)
	}
}

func TestDistanceCurve_DropsErodedSamples(t *testing.T) {
	g := newGenerator(t)

	// slow round: drops below the erosion threshold (~940 m/s) within range
	req := testRequest()
	req.Ballistics.MuzzleVelocity = 1000

	points := g.DistanceCurve(req)

	require.NotEmpty(t, points)
	assert.Less(t, len(points), curve.DefaultSteps+1)
	assert.Less(t, points[len(points)-1].Distance, 1000.0)
}

func TestDistanceCurve_AllInvalidYieldsEmpty(t *testing.T) {
	g := newGenerator(t)

	req := testRequest()
	req.Geometry.Length = -5

	points := g.DistanceCurve(req)
	assert.Empty(t, points)
}

func TestDistanceCurve_CustomSampling(t *testing.T) {
	g := newGenerator(t)

	req := testRequest()
	req.MaxDistance = 2000
	req.Steps = 10

	points := g.DistanceCurve(req)

	require.Len(t, points, 11)
	assert.Equal(t, 200.0, points[1].Distance)
	assert.Equal(t, 2000.0, points[10].Distance)
}

func TestDistanceCurve_Deterministic(t *testing.T) {
	g := newGenerator(t)

	a := g.DistanceCurve(testRequest())
	b := g.DistanceCurve(testRequest())
	assert.Equal(t, a, b)
}

func TestAngleTable_Shape(t *testing.T) {
	g := newGenerator(t)

	table := g.AngleTable(testRequest())

	require.Len(t, table.Rows, len(core.TableDistances))
	for i, row := range table.Rows {
		assert.Equal(t, core.TableDistances[i], row.Distance)

		// 0° column carries the unconverted value, steeper columns shrink
		assert.Greater(t, row.Penetration[0], row.Penetration[1])
		assert.Greater(t, row.Penetration[1], row.Penetration[2])
	}
}

func TestAngleTable_RowConsistency(t *testing.T) {
	g := newGenerator(t)
	req := testRequest()

	table := g.AngleTable(req)
	require.NotEmpty(t, table.Rows)

	for _, row := range table.Rows {
		res := g.Evaluate(req, row.ImpactVelocity)
		require.True(t, res.Valid())
		assert.InDelta(t, res.Penetration, row.Penetration[0], 1e-9,
			"distance %v", row.Distance)
		assert.InDelta(t, res.Penetration/1.73, row.Penetration[2], 1e-9,
			"distance %v", row.Distance)
	}
}

func TestAngleTable_DropsErodedRows(t *testing.T) {
	g := newGenerator(t)

	req := testRequest()
	req.Ballistics.MuzzleVelocity = 1000

	table := g.AngleTable(req)

	// rows past the erosion point disappear instead of reading zero
	require.NotEmpty(t, table.Rows)
	assert.Less(t, len(table.Rows), len(core.TableDistances))
	for _, row := range table.Rows {
		assert.Greater(t, row.Penetration[0], 0.0)
	}
}

func TestEvaluate_MuzzleBaseline(t *testing.T) {
	g := newGenerator(t)

	res := g.Evaluate(testRequest(), 1737)

	require.True(t, res.Valid(), "errors: %v", res.Errors)
	assert.InDelta(t, 466.3, res.Penetration, 1.0)
}
