package officers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/officerdemo/internal/common"
	"github.com/dmitrijs2005/officerdemo/internal/dbx"
	"github.com/dmitrijs2005/officerdemo/internal/metrics"
	"github.com/dmitrijs2005/officerdemo/internal/models"
	"github.com/jmoiron/sqlx"
)

// SQLRepository is a Repository over PostgreSQL or SQLite. Queries are
// written with "?" placeholders and rebound for the handle's driver.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func storageError(err error) error {
	return fmt.Errorf("%w: %w", common.ErrStorage, err)
}

func (r *SQLRepository) Save(ctx context.Context, officer models.Officer) (saved models.Officer, err error) {
	defer metrics.ObserveStoreOp("save", time.Now(), &err)

	query := r.db.Rebind(
		`INSERT INTO officers (rank, first_name, last_name)
		 VALUES (?, ?, ?)
		 RETURNING id`)

	var id int64
	err = r.db.QueryRowxContext(ctx, query, officer.Rank, officer.FirstName, officer.LastName).Scan(&id)
	if err != nil {
		return models.Officer{}, storageError(err)
	}

	return models.Officer{
		ID:        id,
		Rank:      officer.Rank,
		FirstName: officer.FirstName,
		LastName:  officer.LastName,
	}, nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (officer models.Officer, found bool, err error) {
	defer metrics.ObserveStoreOp("find_by_id", time.Now(), &err)

	query := r.db.Rebind(
		`SELECT id, rank, first_name, last_name FROM officers
		 WHERE id = ?`)

	err = sqlx.GetContext(ctx, r.db, &officer, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Officer{}, false, nil
		}
		return models.Officer{}, false, storageError(err)
	}

	return officer, true, nil
}

func (r *SQLRepository) FindAll(ctx context.Context) (result []models.Officer, err error) {
	defer metrics.ObserveStoreOp("find_all", time.Now(), &err)

	query := `SELECT id, rank, first_name, last_name FROM officers`

	result = []models.Officer{}
	if err = sqlx.SelectContext(ctx, r.db, &result, query); err != nil {
		return nil, storageError(err)
	}

	return result, nil
}

func (r *SQLRepository) Count(ctx context.Context) (n int64, err error) {
	defer metrics.ObserveStoreOp("count", time.Now(), &err)

	if err = sqlx.GetContext(ctx, r.db, &n, `SELECT COUNT(*) FROM officers`); err != nil {
		return 0, storageError(err)
	}

	return n, nil
}

func (r *SQLRepository) Delete(ctx context.Context, officer models.Officer) (err error) {
	defer metrics.ObserveStoreOp("delete", time.Now(), &err)

	query := r.db.Rebind(`DELETE FROM officers WHERE id = ?`)

	if _, err = r.db.ExecContext(ctx, query, officer.ID); err != nil {
		return storageError(err)
	}

	return nil
}

func (r *SQLRepository) ExistsByID(ctx context.Context, id int64) (exists bool, err error) {
	defer metrics.ObserveStoreOp("exists_by_id", time.Now(), &err)

	query := r.db.Rebind(`SELECT EXISTS (SELECT 1 FROM officers WHERE id = ?)`)

	if err = sqlx.GetContext(ctx, r.db, &exists, query, id); err != nil {
		return false, storageError(err)
	}

	return exists, nil
}

func (r *SQLRepository) FindAllByLastNameAndRank(ctx context.Context, lastName string, rank models.Rank) (result []models.Officer, err error) {
	defer metrics.ObserveStoreOp("find_by_last_name_and_rank", time.Now(), &err)

	query := r.db.Rebind(
		`SELECT id, rank, first_name, last_name FROM officers
		 WHERE last_name = ? AND rank = ?`)

	result = []models.Officer{}
	if err = sqlx.SelectContext(ctx, r.db, &result, query, lastName, rank); err != nil {
		return nil, storageError(err)
	}

	return result, nil
}
