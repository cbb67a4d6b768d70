// Package app wires the application together: it builds the store handle,
// the HTTP client and the services once at startup and runs the demo.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/officerdemo/internal/astro"
	"github.com/dmitrijs2005/officerdemo/internal/common"
	"github.com/dmitrijs2005/officerdemo/internal/config"
	"github.com/dmitrijs2005/officerdemo/internal/dbx"
	"github.com/dmitrijs2005/officerdemo/internal/logging"
	"github.com/dmitrijs2005/officerdemo/internal/metrics"
	"github.com/dmitrijs2005/officerdemo/internal/repositories/officers"
	"github.com/dmitrijs2005/officerdemo/internal/repositories/repomanager"
	"github.com/dmitrijs2005/officerdemo/internal/services"
	"github.com/jmoiron/sqlx"
)

const (
	pingTimeout     = 5 * time.Second
	shutdownTimeout = 5 * time.Second
)

// App is the set of handles created at startup. They are immutable and
// shared by every caller.
type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sqlx.DB
	repomanager repomanager.RepositoryManager

	Officers officers.Repository
	Astro    *services.AstroService
	Crew     *services.CrewService
}

// NewApp builds the application from c, logging to stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(c.LogLevel, logOut)
	if err != nil {
		return nil, err
	}

	db, err := dbx.Open(c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w: %w", common.ErrStorage, err)
	}

	rm := repomanager.NewSQLRepositoryManager()
	if c.RunMigrations {
		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("db migrations error: %w", err)
		}
	}

	client := astro.New(astro.Config{
		BaseURL: c.AstroBaseURL,
		Timeout: c.AstroRequestTimeout,
	}, logger)

	logger.Info(ctx, "app initialised",
		"driver", c.DatabaseDriver,
		"astro_base_url", client.BaseURL(),
		"migrations", c.RunMigrations,
	)

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		repomanager: rm,
		Officers:    rm.Officers(db),
		Astro:       services.NewAstroService(client, c),
		Crew:        services.NewCrewService(db, rm, logger),
	}, nil
}

// Close releases the store handle.
func (app *App) Close() error {
	return app.db.Close()
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// serveMetrics exposes /metrics on ln until ctx is done.
func (app *App) serveMetrics(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "metrics listening", "addr", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run seeds the store and exercises every service once. With a metrics
// address configured it keeps serving /metrics until ctx is cancelled or a
// termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var (
		wg         sync.WaitGroup
		metricsErr error
	)

	if app.config.MetricsAddr != "" {
		ln, err := net.Listen("tcp", app.config.MetricsAddr)
		if err != nil {
			return fmt.Errorf("metrics listen: %w", err)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := app.serveMetrics(ctx, ln); err != nil {
				metricsErr = err
				app.logger.Error(ctx, err.Error())
				cancelFunc()
			}
		}()
	}

	if err := app.runDemo(ctx); err != nil {
		cancelFunc()
		wg.Wait()
		return err
	}

	if app.config.MetricsAddr != "" {
		<-ctx.Done()
	}

	wg.Wait()

	app.logger.Info(context.Background(), "app stopped")
	return metricsErr
}

// runDemo seeds the roster, prints it, and calls the astro API in every
// mode. Astro failures are logged, store failures abort.
func (app *App) runDemo(ctx context.Context) error {
	seeded, err := app.Crew.SeedIfEmpty(ctx, services.DefaultRoster)
	if err != nil {
		return err
	}

	roster, err := app.Crew.Roster(ctx)
	if err != nil {
		return err
	}
	app.logger.Info(ctx, "roster", "seeded", seeded, "officers", len(roster))
	for _, o := range roster {
		app.logger.Info(ctx, "officer", "id", o.ID, "rank", o.Rank, "first_name", o.FirstName, "last_name", o.LastName)
	}

	if raw, err := app.Astro.GetPeopleInSpace(ctx); err != nil {
		app.logger.Warn(ctx, "people in space (raw) failed", "error", err)
	} else {
		app.logger.Debug(ctx, "people in space (raw)", "body", raw)
	}

	if resp, err := app.Astro.GetAstroResponse(ctx); err != nil {
		app.logger.Warn(ctx, "people in space failed", "error", err)
	} else {
		app.logger.Info(ctx, "people in space", "number", resp.Number, "names", resp.Names())
	}

	if resp, err := app.Astro.GetAstroResponseAsync(ctx); err != nil {
		app.logger.Warn(ctx, "people in space (async) failed", "error", err)
	} else {
		app.logger.Info(ctx, "people in space (async)", "number", resp.Number, "message", resp.Message)
	}

	return nil
}
