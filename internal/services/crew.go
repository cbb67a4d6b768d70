package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/officerdemo/internal/dbx"
	"github.com/dmitrijs2005/officerdemo/internal/logging"
	"github.com/dmitrijs2005/officerdemo/internal/models"
	"github.com/dmitrijs2005/officerdemo/internal/repositories/repomanager"
	"github.com/jmoiron/sqlx"
)

// DefaultRoster is the sample crew loaded into an empty store.
var DefaultRoster = []models.Officer{
	models.NewOfficer(models.RankCaptain, "James", "Kirk"),
	models.NewOfficer(models.RankCaptain, "Jean-Luc", "Picard"),
	models.NewOfficer(models.RankCaptain, "Benjamin", "Sisko"),
	models.NewOfficer(models.RankCaptain, "Kathryn", "Janeway"),
	models.NewOfficer(models.RankCaptain, "Jonathan", "Archer"),
}

// CrewService manages the officer roster.
type CrewService struct {
	db          *sqlx.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

// NewCrewService constructs a CrewService over db.
func NewCrewService(db *sqlx.DB, m repomanager.RepositoryManager, logger logging.Logger) *CrewService {
	return &CrewService{db: db, repomanager: m, logger: logger}
}

// SeedIfEmpty inserts roster when the officers table is empty and returns
// how many officers were inserted. The check and the inserts share one
// transaction, so a failure leaves the table untouched.
func (s *CrewService) SeedIfEmpty(ctx context.Context, roster []models.Officer) (int, error) {
	inserted := 0

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Officers(tx)

		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		for _, o := range roster {
			if _, err := repo.Save(ctx, o); err != nil {
				return fmt.Errorf("error saving %s %s: %w", o.FirstName, o.LastName, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed crew: %w", err)
	}

	if inserted > 0 {
		s.logger.Info(ctx, "crew seeded", "officers", inserted)
	}
	return inserted, nil
}

// Roster returns every stored officer.
func (s *CrewService) Roster(ctx context.Context) ([]models.Officer, error) {
	return s.repomanager.Officers(s.db).FindAll(ctx)
}

// Captains returns officers with the given last name holding the rank of captain.
func (s *CrewService) Captains(ctx context.Context, lastName string) ([]models.Officer, error) {
	return s.repomanager.Officers(s.db).FindAllByLastNameAndRank(ctx, lastName, models.RankCaptain)
}
