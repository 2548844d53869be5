// Package gormstorage persists the vehicle dataset and computed curves
// through GORM, against Postgres or the SQLite fallback.
package gormstorage

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wtsight/armorcalc/internal/database"
	"github.com/wtsight/armorcalc/internal/model"
	"github.com/wtsight/armorcalc/pkg/core"
)

// Backend implements storage over a relational database.
type Backend struct {
	dbm *database.Manager
	log zerolog.Logger
}

// New creates a gorm-backed storage backend.
func New(dbm *database.Manager, log zerolog.Logger) *Backend {
	return &Backend{dbm: dbm, log: log}
}

// Init connects and migrates the schema.
func (b *Backend) Init() error {
	return b.dbm.Connect()
}

// Close releases the database connection.
func (b *Backend) Close() error {
	return b.dbm.Close()
}

// UpsertVehicle inserts or replaces a dataset record together with its stats
// and ammunition rows.
func (b *Backend) UpsertVehicle(v *core.Vehicle) error {
	row := model.VehicleFromCore(*v)

	var existing model.Vehicle
	err := b.dbm.DB.Where("vehicle_id = ?", v.VehicleID).First(&existing).Error
	if err == nil {
		// replace children wholesale; the dataset is the source of truth
		row.ID = existing.ID
		if err := b.dbm.DB.Where("vehicle_ref = ?", existing.ID).Delete(&model.VehicleStats{}).Error; err != nil {
			return fmt.Errorf("clearing stats for %s: %w", v.VehicleID, err)
		}
		if err := b.dbm.DB.Where("vehicle_ref = ?", existing.ID).Delete(&model.Ammunition{}).Error; err != nil {
			return fmt.Errorf("clearing ammunition for %s: %w", v.VehicleID, err)
		}
	}

	if err := b.dbm.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("upserting vehicle %s: %w", v.VehicleID, err)
	}
	return nil
}

// GetVehicle looks up a vehicle and its children by dataset id.
func (b *Backend) GetVehicle(vehicleID string) (core.Vehicle, bool, error) {
	var row model.Vehicle
	err := b.dbm.DB.Preload("Stats").Preload("Ammunition").
		Where("vehicle_id = ?", vehicleID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Vehicle{}, false, nil
		}
		return core.Vehicle{}, false, fmt.Errorf("loading vehicle %s: %w", vehicleID, err)
	}
	return model.VehicleToCore(row), true, nil
}

// ListVehicles returns all dataset records.
func (b *Backend) ListVehicles() ([]core.Vehicle, error) {
	var rows []model.Vehicle
	if err := b.dbm.DB.Preload("Stats").Preload("Ammunition").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	out := make([]core.Vehicle, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.VehicleToCore(r))
	}
	return out, nil
}

// SaveCurve persists a computed curve, linked to its ammunition row when the
// vehicle and round are present in the dataset.
func (b *Backend) SaveCurve(c *core.ComputedCurve) error {
	row, err := model.CurveFromCore(*c)
	if err != nil {
		return err
	}

	var vehicle model.Vehicle
	if err := b.dbm.DB.Where("vehicle_id = ?", c.VehicleID).First(&vehicle).Error; err == nil {
		var ammo model.Ammunition
		if err := b.dbm.DB.Where("vehicle_ref = ? AND name = ?", vehicle.ID, c.Ammunition).
			First(&ammo).Error; err == nil {
			row.AmmunitionRef = ammo.ID
		}
	}

	if err := b.dbm.DB.Create(&row).Error; err != nil {
		return fmt.Errorf("saving curve for %s/%s: %w", c.VehicleID, c.Ammunition, err)
	}
	return nil
}
