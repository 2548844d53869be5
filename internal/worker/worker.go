// Package worker runs batch curve computation over the whole dataset on a
// bounded goroutine pool. The calculation core is stateless, so workers
// share one Generator without coordination.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/wtsight/armorcalc/internal/curve"
	"github.com/wtsight/armorcalc/internal/params"
	"github.com/wtsight/armorcalc/internal/queue"
	"github.com/wtsight/armorcalc/internal/storage"
	"github.com/wtsight/armorcalc/pkg/core"
)

// Job is one ammunition round to compute a curve for.
type Job struct {
	VehicleID string
	Ammo      core.Ammunition
}

// Dependencies holds everything the pool needs.
type Dependencies struct {
	Generator *curve.Generator
	Source    *params.Source
	Backend   storage.Backend
	Logger    *slog.Logger

	// Overrides applied on top of the per-ammo resolved request.
	Target      core.TargetProperties
	MaxDistance float64
	Steps       int
}

// Pool computes penetration curves concurrently.
type Pool struct {
	deps    Dependencies
	workers int
}

// NewPool creates a pool with the given worker count (minimum 1).
func NewPool(deps Dependencies, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{deps: deps, workers: workers}
}

// Run drains the job queue. It returns the number of curves computed and
// the number of jobs skipped because no valid sample was produced. Run
// stops early when ctx is cancelled.
func (p *Pool) Run(ctx context.Context, jobs *queue.Queue[Job]) (computed, skipped int) {
	var done, dropped atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				job, ok := jobs.Pop()
				if !ok {
					return
				}
				if p.process(job) {
					done.Add(1)
				} else {
					dropped.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	return int(done.Load()), int(dropped.Load())
}

func (p *Pool) process(job Job) bool {
	req := p.deps.Source.FromAmmunition(job.Ammo)
	req.Target = p.deps.Target
	req.MaxDistance = p.deps.MaxDistance
	req.Steps = p.deps.Steps

	points := p.deps.Generator.DistanceCurve(req)
	if len(points) == 0 {
		if p.deps.Logger != nil {
			p.deps.Logger.Warn("no valid samples for round, skipping",
				"vehicle", job.VehicleID, "ammo", job.Ammo.Name)
		}
		return false
	}

	err := p.deps.Backend.SaveCurve(&core.ComputedCurve{
		VehicleID:  job.VehicleID,
		Ammunition: job.Ammo.Name,
		Mode:       req.Mode,
		Material:   req.Material,
		Obliquity:  req.Target.Obliquity,
		Points:     points,
	})
	if err != nil {
		if p.deps.Logger != nil {
			p.deps.Logger.Error("failed to save curve",
				"vehicle", job.VehicleID, "ammo", job.Ammo.Name, "error", err)
		}
		return false
	}
	return true
}
