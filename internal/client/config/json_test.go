package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goldtrack.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := writeConfigFile(t, `{
		"server_base_url": "http://api.example.com",
		"history_days": 14,
		"toast_duration": "5s"
	}`)
	os.Args = []string{"cmd", "-c", path}

	var c Config
	c.LoadDefaults()
	tokenFile := c.TokenFile
	parseJson(&c)

	assert.Equal(t, "http://api.example.com", c.ServerBaseURL)
	assert.Equal(t, 14, c.HistoryDays)
	assert.Equal(t, 5*time.Second, c.ToastDuration)
	assert.Equal(t, tokenFile, c.TokenFile, "unset fields keep defaults")
}

func TestParseJson_NoFileFlagIsNoop(t *testing.T) {
	os.Args = []string{"cmd"}

	var c Config
	c.LoadDefaults()
	before := c
	parseJson(&c)

	assert.Equal(t, before, c)
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	os.Args = []string{"cmd", "-c", filepath.Join(t.TempDir(), "absent.json")}

	var c Config
	c.LoadDefaults()
	require.Panics(t, func() { parseJson(&c) })
}
