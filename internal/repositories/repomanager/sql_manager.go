// Package repomanager provides a concrete RepositoryManager for the SQL
// stores, wiring together repository constructors and the baseline schema
// (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/officerdemo/internal/common"
	"github.com/dmitrijs2005/officerdemo/internal/dbx"
	"github.com/dmitrijs2005/officerdemo/internal/migrations"
	"github.com/dmitrijs2005/officerdemo/internal/repositories/officers"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

// SQLRepositoryManager vends SQL-backed repository implementations and
// exposes a schema hook.
type SQLRepositoryManager struct{}

// Officers returns an officers.Repository bound to the provided DBTX, which
// may be the pool or a transaction.
func (m *SQLRepositoryManager) Officers(db dbx.DBTX) officers.Repository {
	return officers.NewSQLRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

var gooseDialects = map[string]string{
	dbx.DriverPostgres: "postgres",
	dbx.DriverSQLite:   "sqlite3",
}

// RunMigrations applies the embedded schema matching the handle's driver.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sqlx.DB) error {
	dir, ok := migrations.Dir(db.DriverName())
	if !ok {
		return fmt.Errorf("%w: %q", common.ErrUnknownDriver, db.DriverName())
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(gooseDialects[db.DriverName()]); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := gooseUpContext(ctx, db.DB, dir); err != nil {
		return err
	}
	return nil
}

// NewSQLRepositoryManager constructs a SQL-backed RepositoryManager.
func NewSQLRepositoryManager() RepositoryManager {
	return &SQLRepositoryManager{}
}
