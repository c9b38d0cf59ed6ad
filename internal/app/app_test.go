package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/trip/internal/config"
	"github.com/idilsaglam/trip/internal/itinerary"
	"github.com/idilsaglam/trip/internal/model"
)

func cfgFor(t *testing.T, backend string) *config.Config {
	t.Helper()
	return &config.Config{
		Storage: config.StorageConfig{Backend: backend, DataDir: t.TempDir(), Key: model.StorageKey},
	}
}

func TestOpenPersistsAcrossSessions(t *testing.T) {
	for _, backend := range []string{config.BackendJSON, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := cfgFor(t, backend)

			a, err := Open(cfg, nil)
			require.NoError(t, err)
			a.Store.Add(itinerary.Draft{Day: model.Friday24, Name: "Airport pickup", Time: "10:00"})
			a.Store.SetDark(true)
			require.NoError(t, a.Close())

			b, err := Open(cfg, nil)
			require.NoError(t, err)
			defer b.Close()
			assert.Len(t, b.Store.Activities(), 2)
			assert.True(t, b.Dark())
		})
	}
}

func TestMemoryBackendStartsFresh(t *testing.T) {
	cfg := cfgFor(t, config.BackendMemory)
	a, err := Open(cfg, nil)
	require.NoError(t, err)
	defer a.Close()
	assert.Equal(t, model.DefaultActivities(), a.Store.Activities())
}

func TestThemeOverride(t *testing.T) {
	cfg := cfgFor(t, config.BackendMemory)
	cfg.UI.Theme = "dark"
	a, err := Open(cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	assert.True(t, a.Dark())
	assert.False(t, a.Store.IsDark())
}

func TestSavedAt(t *testing.T) {
	a, err := Open(cfgFor(t, config.BackendJSON), nil)
	require.NoError(t, err)
	defer a.Close()

	_, ok := a.SavedAt()
	assert.False(t, ok, "Init does not write")

	a.Store.SetDark(true)
	ts, ok := a.SavedAt()
	require.True(t, ok)
	assert.False(t, ts.IsZero())
}
