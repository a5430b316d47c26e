package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 500*time.Millisecond, cfg.Storage.Debounce())
	assert.True(t, cfg.Storage.SeedDemo)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Calendar.Enabled)
	assert.Equal(t, "primary", cfg.Calendar.Name)
	assert.Equal(t, 5*time.Second, cfg.Weather.Timeout())
	assert.Equal(t, 25, cfg.Focus.Minutes)
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	require.NoError(t, WriteDefault(path))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `storage:
  path: /tmp/prodo-test.db
  debounce_ms: 50
weather:
  share_location: true
  latitude: 52.52
  longitude: 13.41
focus:
  minutes: 50
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/prodo-test.db", cfg.Storage.Path)
	assert.Equal(t, 50*time.Millisecond, cfg.Storage.Debounce())
	assert.True(t, cfg.Weather.ShareLocation)
	assert.InDelta(t, 52.52, cfg.Weather.Latitude, 0.0001)
	assert.Equal(t, 50, cfg.Focus.Minutes)

	// Untouched sections keep their defaults
	assert.Equal(t, 5, cfg.Focus.BreakMinutes)
	assert.Equal(t, "primary", cfg.Calendar.Name)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PRODO_STORAGE_PATH", "/tmp/env.db")
	t.Setenv("PRODO_CALENDAR_ENABLED", "true")
	t.Setenv("PRODO_LOG_LEVEL", "debug")

	cfg, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env.db", cfg.Storage.Path)
	assert.True(t, cfg.Calendar.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [oops"), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
