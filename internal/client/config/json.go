package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/goldtrack/internal/flagx"
	"github.com/dmitrijs2005/goldtrack/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the toast duration either as a string
// like "2s" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JsonConfig struct {
	ServerBaseURL string         `json:"server_base_url"`
	HistoryDays   int            `json:"history_days"`
	ToastDuration timex.Duration `json:"toast_duration"`
	TokenFile     string         `json:"token_file"`
}

// parseJson overlays Config with values loaded from a JSON file named by
// the -c/-config flags. Absent flag means no JSON is loaded. Fields left
// at their zero value in the file keep the current Config value. Panics on
// read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.HistoryDays > 0 {
		cfg.HistoryDays = jc.HistoryDays
	}
	if jc.ToastDuration.Duration > 0 {
		cfg.ToastDuration = time.Duration(jc.ToastDuration.Duration)
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
}
