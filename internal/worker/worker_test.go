package worker_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wtsight/armorcalc/internal/curve"
	"github.com/wtsight/armorcalc/internal/params"
	"github.com/wtsight/armorcalc/internal/queue"
	"github.com/wtsight/armorcalc/internal/storage/memory"
	"github.com/wtsight/armorcalc/internal/worker"
	"github.com/wtsight/armorcalc/pkg/core"
)

func testDeps(t *testing.T) (worker.Dependencies, *memory.Backend) {
	t.Helper()

	gen, err := curve.New(nil)
	require.NoError(t, err)

	backend := memory.New(memory.Config{})
	return worker.Dependencies{
		Generator: gen,
		Source:    params.NewSource(nil),
		Backend:   backend,
		Target: core.TargetProperties{
			Density:  7850,
			Hardness: 260,
		},
		MaxDistance: 2000,
		Steps:       10,
	}, backend
}

func validAmmo(name string) core.Ammunition {
	return core.Ammunition{
		Name:             name,
		Material:         "tungsten",
		Caliber:          120,
		Mass:             8.35,
		MuzzleVelocity:   1670,
		PenetratorLength: 570,
	}
}

func TestPool_ComputesAllJobs(t *testing.T) {
	deps, backend := testDeps(t)

	jobs := queue.New[worker.Job]()
	for i := 0; i < 20; i++ {
		jobs.Push(worker.Job{
			VehicleID: fmt.Sprintf("vehicle_%d", i),
			Ammo:      validAmmo("DM33"),
		})
	}

	pool := worker.NewPool(deps, 4)
	computed, skipped := pool.Run(context.Background(), jobs)

	assert.Equal(t, 20, computed)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 20, backend.CurveCount())
	assert.Equal(t, 0, jobs.Len())
}

func TestPool_SkipsInvalidRounds(t *testing.T) {
	deps, backend := testDeps(t)

	// a stubby rod fails the aspect ratio bound at every distance
	bad := validAmmo("short rod")
	bad.PenetratorLength = 100
	bad.PenetratorDiameter = 120

	jobs := queue.New[worker.Job]()
	jobs.Push(
		worker.Job{VehicleID: "a", Ammo: validAmmo("DM33")},
		worker.Job{VehicleID: "b", Ammo: bad},
	)

	pool := worker.NewPool(deps, 2)
	computed, skipped := pool.Run(context.Background(), jobs)

	assert.Equal(t, 1, computed)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 1, backend.CurveCount())
}

func TestPool_MinimumOneWorker(t *testing.T) {
	deps, backend := testDeps(t)

	jobs := queue.New[worker.Job]()
	jobs.Push(worker.Job{VehicleID: "a", Ammo: validAmmo("DM33")})

	pool := worker.NewPool(deps, 0)
	computed, _ := pool.Run(context.Background(), jobs)

	assert.Equal(t, 1, computed)
	assert.Equal(t, 1, backend.CurveCount())
}

func TestPool_CancelledContextStopsEarly(t *testing.T) {
	deps, _ := testDeps(t)

	jobs := queue.New[worker.Job]()
	for i := 0; i < 100; i++ {
		jobs.Push(worker.Job{VehicleID: fmt.Sprintf("v%d", i), Ammo: validAmmo("DM33")})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := worker.NewPool(deps, 4)
	computed, skipped := pool.Run(ctx, jobs)

	assert.Equal(t, 0, computed+skipped)
	assert.Equal(t, 100, jobs.Len())
}

func TestPool_EmptyQueue(t *testing.T) {
	deps, _ := testDeps(t)

	pool := worker.NewPool(deps, 4)
	computed, skipped := pool.Run(context.Background(), queue.New[worker.Job]())

	assert.Equal(t, 0, computed)
	assert.Equal(t, 0, skipped)
}
