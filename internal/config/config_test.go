package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/trip/internal/model"
)

func TestDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join("/tmp/xdg", AppName), cfg.Storage.DataDir)
	assert.Equal(t, model.StorageKey, cfg.Storage.Key)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, filepath.Join("/tmp/xdg", AppName, LogName), cfg.Logger.File)
	assert.Equal(t, filepath.Join("/tmp/xdg", AppName, DBFileName), cfg.Storage.DBPath())
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TRIP_DATA_DIR", dir)
	t.Setenv("TRIP_BACKEND", "sqlite")
	t.Setenv("TRIP_THEME", "dark")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Storage.DataDir)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: memory\n  key: test-key\nlog:\n  level: debug\n"), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "test-key", cfg.Storage.Key)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestInvalidBackend(t *testing.T) {
	t.Setenv("TRIP_BACKEND", "redis")
	_, err := Load(New(), "")
	assert.ErrorContains(t, err, "storage backend")
}

func TestInvalidTheme(t *testing.T) {
	t.Setenv("TRIP_THEME", "neon")
	_, err := Load(New(), "")
	assert.ErrorContains(t, err, "ui theme")
}

func TestDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("TRIP_BACKEND=sqlite\nTRIP_DATA_DIR="+dir+"\n"), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// godotenv never overrides the environment, so start with both unset.
	// Setenv first so the test restores whatever was there before.
	for _, k := range []string{"TRIP_BACKEND", "TRIP_DATA_DIR"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, dir, cfg.Storage.DataDir)
}
