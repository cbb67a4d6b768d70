package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/officerdemo/internal/flagx"
	"github.com/dmitrijs2005/officerdemo/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON configuration file. Durations
// use timex.Duration so both "9s" and integer nanoseconds are accepted.
// Pointer and zero-valued fields that are absent leave the current value
// untouched.
type JsonConfig struct {
	DatabaseDriver      string         `json:"database_driver"`
	DatabaseDSN         string         `json:"database_dsn"`
	RunMigrations       *bool          `json:"run_migrations"`
	AstroBaseURL        string         `json:"astro_base_url"`
	AstroRequestTimeout timex.Duration `json:"astro_request_timeout"`
	AstroAsyncTimeout   timex.Duration `json:"astro_async_timeout"`
	MetricsAddr         string         `json:"metrics_addr"`
	LogLevel            string         `json:"log_level"`
}

// parseJson loads configuration values from the JSON file given with -c or
// -config. Without the flag nothing is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.DatabaseDriver != "" {
		config.DatabaseDriver = c.DatabaseDriver
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.RunMigrations != nil {
		config.RunMigrations = *c.RunMigrations
	}
	if c.AstroBaseURL != "" {
		config.AstroBaseURL = c.AstroBaseURL
	}
	if c.AstroRequestTimeout.Duration != 0 {
		config.AstroRequestTimeout = c.AstroRequestTimeout.Duration
	}
	if c.AstroAsyncTimeout.Duration != 0 {
		config.AstroAsyncTimeout = c.AstroAsyncTimeout.Duration
	}
	if c.MetricsAddr != "" {
		config.MetricsAddr = c.MetricsAddr
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
