// Package migrations embeds the baseline officers schema for each supported
// dialect, in goose format.
package migrations

import (
	"embed"

	"github.com/dmitrijs2005/officerdemo/internal/dbx"
)

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

// Dir returns the directory inside Migrations holding the schema for driver.
func Dir(driver string) (string, bool) {
	switch driver {
	case dbx.DriverPostgres:
		return "postgres", true
	case dbx.DriverSQLite:
		return "sqlite", true
	default:
		return "", false
	}
}
