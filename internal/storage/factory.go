// internal/storage/factory.go
package storage

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wtsight/armorcalc/internal/config"
	"github.com/wtsight/armorcalc/internal/database"
	gormstorage "github.com/wtsight/armorcalc/internal/storage/gorm"
	"github.com/wtsight/armorcalc/internal/storage/memory"
)

// NewBackend creates a storage backend based on configuration.
// "sqlite" and "postgres" both use the gorm backend; which database ends up
// serving is the database manager's fallback decision.
func NewBackend(storageType string, log zerolog.Logger) (Backend, error) {
	switch storageType {
	case "memory":
		return memory.New(memory.Config{
			OutputDir: config.GetString("storage.memory.outputDir"),
		}), nil
	case "sqlite", "postgres":
		return gormstorage.New(database.NewManager(log), log), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", storageType)
	}
}
