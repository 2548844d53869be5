// Package curve composes the penetration model, the ballistic decay model
// and the slope-effect conversion into the two presentations the stat card
// needs: penetration over distance at a fixed obliquity, and the distance ×
// angle table.
package curve

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/wtsight/armorcalc/internal/ballistics"
	"github.com/wtsight/armorcalc/internal/lanz"
	"github.com/wtsight/armorcalc/internal/slope"
	"github.com/wtsight/armorcalc/pkg/core"
)

// Default sampling of the distance curve.
const (
	DefaultMaxDistance = 4000.0
	DefaultSteps       = 80
)

// Request is one fully resolved calculation input. Target.Obliquity is the
// configured display obliquity; the model itself is always evaluated
// head-on.
type Request struct {
	Geometry   core.PenetratorGeometry
	Material   core.PenetratorMaterial
	Mode       core.CalculationMode
	Target     core.TargetProperties
	Ballistics core.ProjectileBallistics

	// MaxDistance (m) and Steps control distance-curve sampling; zero values
	// select the defaults.
	MaxDistance float64
	Steps       int
}

// Generator produces penetration curves and angle tables. It is stateless
// between calls and safe for concurrent use.
type Generator struct {
	model  *lanz.Model
	logger *slog.Logger

	curves   metric.Int64Counter
	samples  metric.Int64Counter
	duration metric.Float64Histogram
}

// New creates a Generator. Metrics use the global OTel meter, which is a
// no-op unless a provider is installed.
func New(logger *slog.Logger) (*Generator, error) {
	g := &Generator{
		model:  lanz.New(logger),
		logger: logger,
	}

	m := meter()
	var err error

	g.curves, err = m.Int64Counter(
		"curve.generated",
		metric.WithDescription("Number of distance curves generated"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating curve counter: %w", err)
	}

	g.samples, err = m.Int64Counter(
		"curve.samples",
		metric.WithDescription("Number of valid curve samples produced"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sample counter: %w", err)
	}

	g.duration, err = m.Float64Histogram(
		"curve.duration",
		metric.WithDescription("Curve generation duration"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return g, nil
}

// Evaluate runs a single penetration calculation at the given impact
// velocity (m/s), head-on. The request's configured obliquity is still
// bound-checked by the model.
func (g *Generator) Evaluate(req Request, impactVelocityMS float64) core.Result {
	return g.model.Compute(req.Geometry, req.Material, req.Mode, req.Target, impactVelocityMS/1000)
}

// DistanceCurve samples penetration over [0, MaxDistance]. Samples whose
// evaluation is invalid are dropped, so the result may be shorter than
// Steps+1. Recomputation with identical input yields identical output.
func (g *Generator) DistanceCurve(req Request) []core.CurvePoint {
	start := time.Now()

	maxDist := req.MaxDistance
	if maxDist <= 0 {
		maxDist = DefaultMaxDistance
	}
	steps := req.Steps
	if steps <= 0 {
		steps = DefaultSteps
	}

	headOn := req.Target
	headOn.Obliquity = 0

	points := make([]core.CurvePoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		dist := maxDist * float64(i) / float64(steps)
		v := ballistics.VelocityAtDistance(
			req.Ballistics.MuzzleVelocity, dist,
			req.Ballistics.Mass, req.Ballistics.Caliber, req.Ballistics.DragCoefficient,
		)
		res := g.model.Compute(req.Geometry, req.Material, req.Mode, headOn, v/1000)
		if !res.Valid() {
			continue
		}
		points = append(points, core.CurvePoint{
			Distance:              dist,
			EquivalentPenetration: slope.EquivalentPenetration(res.Penetration, req.Target.Obliquity),
			BasePenetration:       res.Penetration,
			ImpactVelocity:        v,
		})
	}

	g.record(req, len(points), time.Since(start))
	return points
}

// AngleTable evaluates the fixed stat-card distance × angle grid. One model
// evaluation per distance row is reused across the angle columns: within a
// row the impact velocity is constant and only the slope-effect conversion
// varies.
func (g *Generator) AngleTable(req Request) core.AngleTable {
	headOn := req.Target
	headOn.Obliquity = 0

	var table core.AngleTable
	for _, dist := range core.TableDistances {
		v := ballistics.VelocityAtDistance(
			req.Ballistics.MuzzleVelocity, dist,
			req.Ballistics.Mass, req.Ballistics.Caliber, req.Ballistics.DragCoefficient,
		)
		res := g.model.Compute(req.Geometry, req.Material, req.Mode, headOn, v/1000)
		if !res.Valid() {
			continue
		}

		row := core.AngleRow{Distance: dist, ImpactVelocity: v}
		for i, angle := range core.TableAngles {
			row.Penetration[i] = slope.EquivalentPenetration(res.Penetration, angle)
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func (g *Generator) record(req Request, samples int, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("material", req.Material.String()),
		attribute.String("mode", req.Mode.String()),
	)
	ctx := context.Background()
	g.curves.Add(ctx, 1, attrs)
	g.samples.Add(ctx, int64(samples), attrs)
	g.duration.Record(ctx, float64(elapsed.Microseconds())/1000.0, attrs)

	if g.logger != nil {
		g.logger.Debug("generated distance curve",
			"material", req.Material.String(),
			"mode", req.Mode.String(),
			"samples", samples,
			"elapsed", elapsed)
	}
}
