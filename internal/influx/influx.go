package influx

import (
	"context"
	"errors"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	influxdb2_api "github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// CalcPerformanceBucket receives calculation timing points.
const CalcPerformanceBucket = "calc_performance"

// Manager handles the InfluxDB connection and writes.
type Manager struct {
	Client  influxdb2.Client
	Writer  influxdb2_api.WriteAPI
	IsValid bool
	Logger  zerolog.Logger
}

// NewManager creates a new InfluxDB manager.
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{
		IsValid: false,
		Logger:  log,
	}
}

// Connect establishes a connection to InfluxDB. When the server is
// unreachable the manager stays valid=false and all writes become no-ops.
func (m *Manager) Connect() error {
	if !viper.GetBool("influx.enabled") {
		return errors.New("influx.enabled is false")
	}

	m.Client = influxdb2.NewClientWithOptions(
		fmt.Sprintf(
			"%s://%s:%s",
			viper.GetString("influx.protocol"),
			viper.GetString("influx.host"),
			viper.GetString("influx.port"),
		),
		viper.GetString("influx.token"),
		influxdb2.DefaultOptions().
			SetBatchSize(500).
			SetFlushInterval(1000),
	)

	running, err := m.Client.Ping(context.Background())
	if err != nil || !running {
		m.IsValid = false
		m.Logger.Warn().Msg("InfluxDB unreachable, calc metrics disabled")
		return nil
	}

	m.IsValid = true
	m.Writer = m.Client.WriteAPI(viper.GetString("influx.org"), CalcPerformanceBucket)
	m.Logger.Info().Msg("InfluxDB client initialized")
	return nil
}

// WriteCalcPerformance records one curve computation.
func (m *Manager) WriteCalcPerformance(vehicleID, ammo string, samples int, elapsed time.Duration) {
	if !m.IsValid {
		return
	}
	p := influxdb2.NewPoint(
		"curve_generation",
		map[string]string{
			"vehicle": vehicleID,
			"ammo":    ammo,
		},
		map[string]interface{}{
			"samples":   samples,
			"elapsedUs": elapsed.Microseconds(),
		},
		time.Now(),
	)
	m.Writer.WritePoint(p)
}

// Close flushes and shuts down the client.
func (m *Manager) Close() {
	if m.Client == nil {
		return
	}
	if m.Writer != nil {
		m.Writer.Flush()
	}
	m.Client.Close()
}
