package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HYDROCALC_ADDR", ":9999")
	t.Setenv("HYDROCALC_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched fields keep their defaults.
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7070\"\nlog_level: warn\n"), 0o600))
	t.Setenv("HYDROCALC_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "warn", cfg.LogLevel)

	// Environment beats the file.
	t.Setenv("HYDROCALC_ADDR", ":6060")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Addr)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("HYDROCALC_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("HYDROCALC_ADDR", "")
	// An explicitly empty addr fails validation.
	_, err := Load()
	assert.Error(t, err)
}
