package repomanager

import (
	"context"

	"github.com/dmitrijs2005/officerdemo/internal/dbx"
	"github.com/dmitrijs2005/officerdemo/internal/repositories/officers"
	"github.com/jmoiron/sqlx"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sqlx.DB) error
	Officers(db dbx.DBTX) officers.Repository
}
