// Package officers implements the officer store: CRUD over the officers
// table, one round trip per call, no caching.
package officers

import (
	"context"

	"github.com/dmitrijs2005/officerdemo/internal/models"
)

// Repository describes CRUD and query operations for Officer records.
//
// Failures reaching the store or violating its constraints are reported as
// common.ErrStorage. A missing record is not an error.
type Repository interface {
	// Save inserts officer, ignoring its ID, and returns a copy carrying the
	// store-assigned ID.
	Save(ctx context.Context, officer models.Officer) (models.Officer, error)

	// FindByID returns the officer and true, or a zero value and false when
	// no row has that id.
	FindByID(ctx context.Context, id int64) (models.Officer, bool, error)

	// FindAll returns every officer. Order is not specified.
	FindAll(ctx context.Context) ([]models.Officer, error)

	Count(ctx context.Context) (int64, error)

	// Delete removes the row with officer.ID. Deleting a missing row is a no-op.
	Delete(ctx context.Context, officer models.Officer) error

	ExistsByID(ctx context.Context, id int64) (bool, error)

	FindAllByLastNameAndRank(ctx context.Context, lastName string, rank models.Rank) ([]models.Officer, error)
}
