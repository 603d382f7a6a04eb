package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, "titanic.csv", cfg.Dataset.Path)
	assert.False(t, cfg.Dataset.Watch)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `server:
  listen: ":9191"
dataset:
  path: /data/titanic.csv
  watch: true
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9191", cfg.Server.Listen)
	assert.Equal(t, "/data/titanic.csv", cfg.Dataset.Path)
	assert.True(t, cfg.Dataset.Watch)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Absent fields keep their defaults.
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MAIDEN_LISTEN", ":7777")
	t.Setenv("MAIDEN_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Server.Listen)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "titanic.csv", cfg.Dataset.Path)
}
