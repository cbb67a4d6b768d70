package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/officerdemo/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-r string   database driver ("pgx" or "sqlite")
//	-d string   database DSN
//	-m bool     apply the baseline schema (use -m=false to disable)
//	-u string   astro API base URL
//	-t int      astro request timeout, seconds
//	-w int      astro async wait ceiling, seconds
//	-p string   metrics listen address (e.g. ":9090")
//	-l string   log level
//
// The arguments are first filtered with flagx.FilterArgs so flags owned by
// other layers (-c, -e) do not make parsing fail.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-r", "-d", "-m", "-u", "-t", "-w", "-p", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDriver, "r", config.DatabaseDriver, "database driver (pgx or sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.BoolVar(&config.RunMigrations, "m", config.RunMigrations, "apply baseline schema on startup")
	fs.StringVar(&config.AstroBaseURL, "u", config.AstroBaseURL, "astro API base URL")

	requestTimeout := fs.Int("t", int(config.AstroRequestTimeout.Seconds()), "astro request timeout (in seconds)")
	asyncTimeout := fs.Int("w", int(config.AstroAsyncTimeout.Seconds()), "astro async wait ceiling (in seconds)")

	fs.StringVar(&config.MetricsAddr, "p", config.MetricsAddr, "metrics listen address, empty to disable")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only explicit flags override, so sub-second values from JSON survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AstroRequestTimeout = time.Duration(*requestTimeout) * time.Second
		case "w":
			config.AstroAsyncTimeout = time.Duration(*asyncTimeout) * time.Second
		}
	})
}
