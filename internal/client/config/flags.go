package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/goldtrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API (default from Config)
//	-d int      price history lookback in days (default from Config)
//	-t string   token file path (default from Config)
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend API")
	fs.IntVar(&cfg.HistoryDays, "d", cfg.HistoryDays, "price history lookback (in days)")
	fs.StringVar(&cfg.TokenFile, "t", cfg.TokenFile, "token file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
