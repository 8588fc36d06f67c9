package config

import (
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/goldtrack/internal/filex"
)

// Config holds runtime settings for the GoldTrack CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API. Injected here so
//     there is exactly one place the endpoint lives.
//   - HistoryDays: lookback window for the gold price history, in days.
//   - ToastDuration: how long transient confirmations stay visible.
//   - TokenFile: path of the plain-text file holding the bearer token.
type Config struct {
	ServerBaseURL string
	HistoryDays   int
	ToastDuration time.Duration
	TokenFile     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5000"
	c.HistoryDays = 30
	c.ToastDuration = 2 * time.Second

	if dir, err := filex.StateDir("goldtrack"); err == nil {
		c.TokenFile = filepath.Join(dir, "token")
	} else {
		c.TokenFile = "goldtrack_token"
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), the environment (including a
// .env file), and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
