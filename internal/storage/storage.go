// internal/storage/storage.go
package storage

import "github.com/wtsight/armorcalc/pkg/core"

// Backend is the data-access object the calculator is handed: it holds the
// merged vehicle dataset and receives computed curves. Implementations must
// be safe for concurrent use.
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Dataset
	UpsertVehicle(v *core.Vehicle) error
	GetVehicle(vehicleID string) (core.Vehicle, bool, error)
	ListVehicles() ([]core.Vehicle, error)

	// Computed output
	SaveCurve(c *core.ComputedCurve) error
}
