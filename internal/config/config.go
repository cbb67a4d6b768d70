// Package config handles configuration for the demo application,
// including defaults, a .env/environment layer, a JSON overlay, and
// command-line flags.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/officerdemo/internal/astro"
	"github.com/dmitrijs2005/officerdemo/internal/dbx"
	"github.com/dmitrijs2005/officerdemo/internal/logging"
)

// Config holds runtime settings.
//
// Fields:
//   - DatabaseDriver: database/sql driver name, "pgx" or "sqlite".
//   - DatabaseDSN: connection string for DatabaseDriver.
//   - RunMigrations: apply the embedded baseline schema at startup.
//   - AstroBaseURL: root of the "people in space" API.
//   - AstroRequestTimeout: transport timeout for blocking calls.
//   - AstroAsyncTimeout: ceiling for the bounded asynchronous call.
//   - MetricsAddr: listen address for /metrics; empty disables it.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DatabaseDriver      string
	DatabaseDSN         string
	RunMigrations       bool
	AstroBaseURL        string
	AstroRequestTimeout time.Duration
	AstroAsyncTimeout   time.Duration
	MetricsAddr         string
	LogLevel            string
}

// LoadDefaults populates Config with development defaults: an embedded
// SQLite file and the public API.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = dbx.DriverSQLite
	c.DatabaseDSN = "file:officers.db?cache=shared"
	c.RunMigrations = true
	c.AstroBaseURL = astro.DefaultBaseURL
	c.AstroRequestTimeout = astro.DefaultRequestTimeout
	c.AstroAsyncTimeout = astro.DefaultAsyncTimeout
	c.MetricsAddr = ""
	c.LogLevel = "info"
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case dbx.DriverPostgres, dbx.DriverSQLite:
	default:
		return fmt.Errorf("config: database driver %q: must be %q or %q", c.DatabaseDriver, dbx.DriverPostgres, dbx.DriverSQLite)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("config: database dsn is empty")
	}
	if c.AstroBaseURL == "" {
		return fmt.Errorf("config: astro base url is empty")
	}
	if c.AstroRequestTimeout <= 0 {
		return fmt.Errorf("config: astro request timeout must be positive, got %s", c.AstroRequestTimeout)
	}
	if c.AstroAsyncTimeout <= 0 {
		return fmt.Errorf("config: astro async timeout must be positive, got %s", c.AstroAsyncTimeout)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then environment
// variables (optionally seeded from a .env file), then an optional JSON
// file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
