package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/officerdemo/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvDatabaseDriver = "OFFICERS_DB_DRIVER"
	EnvDatabaseDSN    = "OFFICERS_DB_DSN"
	EnvAstroBaseURL   = "ASTRO_BASE_URL"
)

const defaultEnvFile = ".env"

// parseEnv overlays values from the process environment. Before reading it,
// the dotenv file named by -e/-env is loaded; without the flag ".env" in the
// working directory is loaded when it exists. Variables already set in the
// environment are never overwritten by the file.
//
// An explicitly requested file that cannot be loaded makes parseEnv panic.
func parseEnv(config *Config) {
	file := flagx.EnvFile(os.Args[1:])

	switch {
	case file != "":
		if err := godotenv.Load(file); err != nil {
			panic(err)
		}
	default:
		if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	if v, ok := os.LookupEnv(EnvDatabaseDriver); ok && v != "" {
		config.DatabaseDriver = v
	}
	if v, ok := os.LookupEnv(EnvDatabaseDSN); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(EnvAstroBaseURL); ok && v != "" {
		config.AstroBaseURL = v
	}
}
