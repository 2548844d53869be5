// internal/storage/memory/memory.go
package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/wtsight/armorcalc/pkg/core"
)

// Config holds memory backend settings.
type Config struct {
	// OutputDir, when non-empty, receives a JSON export of all computed
	// curves on Close.
	OutputDir string
}

// Backend stores the vehicle dataset and computed curves in memory.
type Backend struct {
	cfg Config

	mu       sync.RWMutex
	vehicles map[string]*core.Vehicle // keyed by VehicleID
	order    []string                 // insertion order for stable listing
	curves   []core.ComputedCurve
}

// New creates a new memory backend.
func New(cfg Config) *Backend {
	return &Backend{
		cfg:      cfg,
		vehicles: make(map[string]*core.Vehicle),
	}
}

// Init initializes the backend.
func (b *Backend) Init() error {
	return nil
}

// Close exports collected curves if an output directory is configured.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cfg.OutputDir == "" || len(b.curves) == 0 {
		return nil
	}
	return b.exportJSON()
}

// UpsertVehicle inserts or replaces a dataset record.
func (b *Backend) UpsertVehicle(v *core.Vehicle) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.vehicles[v.VehicleID]; !exists {
		b.order = append(b.order, v.VehicleID)
	}
	cp := *v
	b.vehicles[v.VehicleID] = &cp
	return nil
}

// GetVehicle looks up a vehicle by its dataset id.
func (b *Backend) GetVehicle(vehicleID string) (core.Vehicle, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.vehicles[vehicleID]
	if !ok {
		return core.Vehicle{}, false, nil
	}
	return *v, true, nil
}

// ListVehicles returns all records in insertion order.
func (b *Backend) ListVehicles() ([]core.Vehicle, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]core.Vehicle, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.vehicles[id])
	}
	return out, nil
}

// SaveCurve records a computed curve.
func (b *Backend) SaveCurve(c *core.ComputedCurve) error {
	if len(c.Points) == 0 {
		return fmt.Errorf("refusing to save empty curve for %s/%s", c.VehicleID, c.Ammunition)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.curves = append(b.curves, *c)
	return nil
}

// CurveCount returns the number of curves collected so far.
func (b *Backend) CurveCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.curves)
}

// exportJSON writes all collected curves to a timestamped file.
// Caller holds the lock.
func (b *Backend) exportJSON() error {
	if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	path := filepath.Join(
		b.cfg.OutputDir,
		fmt.Sprintf("curves.%s.json", time.Now().Format("20060102_150405")),
	)
	data, err := json.MarshalIndent(b.curves, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling curves: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing curve export: %w", err)
	}
	return nil
}
