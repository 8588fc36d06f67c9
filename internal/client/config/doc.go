// Package config loads runtime configuration for the GoldTrack CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, optionally read from a .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP API
//	-d int      price history lookback (days)
//	-t string   token file path
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "2s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://localhost:5000",
//	  "history_days": 30,
//	  "toast_duration": "2s",
//	  "token_file": "/home/me/.config/goldtrack/token"
//	}
package config
