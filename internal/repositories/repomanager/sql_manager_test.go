package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/officerdemo/internal/common"
	"github.com/dmitrijs2005/officerdemo/internal/dbx"
	"github.com/dmitrijs2005/officerdemo/internal/models"
	"github.com/dmitrijs2005/officerdemo/internal/repositories/officers"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T, driver string) *sqlx.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, driver)
}

func stubGoose(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = fn
	t.Cleanup(func() { gooseUpContext = orig })
}

func TestNewSQLRepositoryManager_ReturnsInterface(t *testing.T) {
	var _ RepositoryManager = NewSQLRepositoryManager()
}

func TestOfficers_ReturnsSQLRepository(t *testing.T) {
	m := &SQLRepositoryManager{}
	repo := m.Officers(newMockDB(t, dbx.DriverPostgres))

	require.NotNil(t, repo)
	_, ok := repo.(*officers.SQLRepository)
	assert.True(t, ok)
}

func TestRunMigrations_PicksDirectoryPerDriver(t *testing.T) {
	tests := []struct {
		driver string
		dir    string
	}{
		{driver: dbx.DriverPostgres, dir: "postgres"},
		{driver: dbx.DriverSQLite, dir: "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			var gotDir string
			stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
				gotDir = dir
				if len(opts) != 0 {
					return errors.New("unexpected opts")
				}
				return nil
			})

			m := &SQLRepositoryManager{}
			require.NoError(t, m.RunMigrations(context.Background(), newMockDB(t, tt.driver)))
			assert.Equal(t, tt.dir, gotDir)
		})
	}
}

func TestRunMigrations_Error(t *testing.T) {
	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	})

	m := &SQLRepositoryManager{}
	err := m.RunMigrations(context.Background(), newMockDB(t, dbx.DriverPostgres))
	require.EqualError(t, err, "boom")
}

func TestRunMigrations_UnknownDriver(t *testing.T) {
	m := &SQLRepositoryManager{}
	err := m.RunMigrations(context.Background(), newMockDB(t, "mysql"))
	assert.ErrorIs(t, err, common.ErrUnknownDriver)
}

func TestRunMigrations_SQLiteSchemaIsUsable(t *testing.T) {
	db, err := dbx.Open(dbx.DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	m := &SQLRepositoryManager{}
	ctx := context.Background()
	require.NoError(t, m.RunMigrations(ctx, db))
	// idempotent
	require.NoError(t, m.RunMigrations(ctx, db))

	repo := m.Officers(db)
	saved, err := repo.Save(ctx, models.NewOfficer(models.RankCaptain, "Jane", "Doe"))
	require.NoError(t, err)
	assert.Positive(t, saved.ID)

	_, err = repo.Save(ctx, models.Officer{Rank: "CABIN_BOY", FirstName: "Jim", LastName: "Hawkins"})
	assert.ErrorIs(t, err, common.ErrStorage, "rank check constraint must be installed")
}
