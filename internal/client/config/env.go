package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; unlike a missing -c file
// its absence is not an error. Recognized variables:
//
//	GOLDTRACK_SERVER_URL    base URL of the backend API
//	GOLDTRACK_HISTORY_DAYS  price history lookback in days
//	GOLDTRACK_TOKEN_FILE    token file path
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("GOLDTRACK_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("GOLDTRACK_HISTORY_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			cfg.HistoryDays = days
		}
	}
	if v := os.Getenv("GOLDTRACK_TOKEN_FILE"); v != "" {
		cfg.TokenFile = v
	}
}
