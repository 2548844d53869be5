package cache

import (
	"sync"

	"github.com/wtsight/armorcalc/pkg/core"
)

// VehicleCache keeps dataset records in memory once loaded from storage so
// interactive recomputation doesn't re-read the backend on every parameter
// change.
type VehicleCache struct {
	m        sync.RWMutex
	vehicles map[string]core.Vehicle
}

func NewVehicleCache() *VehicleCache {
	return &VehicleCache{
		vehicles: make(map[string]core.Vehicle),
	}
}

func (c *VehicleCache) Reset() {
	c.m.Lock()
	defer c.m.Unlock()
	c.vehicles = make(map[string]core.Vehicle)
}

func (c *VehicleCache) Set(v core.Vehicle) {
	c.m.Lock()
	defer c.m.Unlock()
	c.vehicles[v.VehicleID] = v
}

func (c *VehicleCache) Get(vehicleID string) (core.Vehicle, bool) {
	c.m.RLock()
	defer c.m.RUnlock()
	v, ok := c.vehicles[vehicleID]
	return v, ok
}

// GetAmmunition finds a named round on a cached vehicle.
func (c *VehicleCache) GetAmmunition(vehicleID, ammoName string) (core.Ammunition, bool) {
	c.m.RLock()
	defer c.m.RUnlock()
	v, ok := c.vehicles[vehicleID]
	if !ok {
		return core.Ammunition{}, false
	}
	for _, a := range v.Ammunition {
		if a.Name == ammoName {
			return a, true
		}
	}
	return core.Ammunition{}, false
}

func (c *VehicleCache) Len() int {
	c.m.RLock()
	defer c.m.RUnlock()
	return len(c.vehicles)
}
