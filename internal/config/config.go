package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// SqliteConfig holds SQLite storage backend settings.
type SqliteConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// MemoryConfig holds in-memory/JSON storage backend settings.
type MemoryConfig struct {
	OutputDir string `json:"outputDir" mapstructure:"outputDir"`
}

// CalculatorConfig holds the calculation parameters used when the caller
// does not override them.
type CalculatorConfig struct {
	MaxDistance     float64
	Steps           int
	TargetObliquity float64
	TargetDensity   float64
	TargetHardness  float64
}

// Load reads configuration from the JSON config file and sets default
// values. configDir is the directory containing the config file.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./armorcalc-logs")

	viper.SetDefault("dataset.vehiclesFile", "./data/processed/vehicles.json")

	viper.SetDefault("storage.type", "memory")
	viper.SetDefault("storage.memory.outputDir", "./curves")
	viper.SetDefault("storage.sqlite.path", "./armorcalc.db")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "armorcalc")

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.token", "")
	viper.SetDefault("influx.org", "armorcalc-metrics")

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetDefault("calculator.maxDistance", 4000.0)
	viper.SetDefault("calculator.steps", 80)
	viper.SetDefault("calculator.targetObliquity", 0.0)
	viper.SetDefault("calculator.targetDensity", 7850.0)
	viper.SetDefault("calculator.targetHardness", 260.0)

	viper.SetDefault("workers", 4)

	viper.SetConfigName("armorcalc.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetCalculator returns the configured calculation defaults.
func GetCalculator() CalculatorConfig {
	return CalculatorConfig{
		MaxDistance:     viper.GetFloat64("calculator.maxDistance"),
		Steps:           viper.GetInt("calculator.steps"),
		TargetObliquity: viper.GetFloat64("calculator.targetObliquity"),
		TargetDensity:   viper.GetFloat64("calculator.targetDensity"),
		TargetHardness:  viper.GetFloat64("calculator.targetHardness"),
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a duration config value.
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
