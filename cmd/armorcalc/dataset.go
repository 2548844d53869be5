package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wtsight/armorcalc/pkg/core"
)

// LoadVehicles reads the merged vehicle dataset produced by the upstream
// data pipeline.
func LoadVehicles(path string) ([]core.Vehicle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}

	var vehicles []core.Vehicle
	if err := json.Unmarshal(data, &vehicles); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}

	return vehicles, nil
}
