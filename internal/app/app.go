// Package app wires configuration, logging, storage and the itinerary store
// for both the CLI and the TUI.
package app

import (
	"fmt"
	"time"

	"github.com/idilsaglam/trip/internal/config"
	"github.com/idilsaglam/trip/internal/itinerary"
	"github.com/idilsaglam/trip/internal/logger"
	"github.com/idilsaglam/trip/internal/store"
	"github.com/idilsaglam/trip/internal/store/jsonstore"
	"github.com/idilsaglam/trip/internal/store/sqlitestore"
)

// App holds state for one session.
type App struct {
	Config *config.Config
	Log    *logger.Logger
	Store  *itinerary.Store

	persist *store.Persistence
	closers []func() error
}

// Open builds the backend named in cfg, creates the itinerary store and
// initializes it from storage.
func Open(cfg *config.Config, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}
	a := &App{Config: cfg, Log: log}

	backend, err := a.openBackend()
	if err != nil {
		return nil, err
	}
	a.persist = store.NewPersistence(backend, cfg.Storage.Key, log)
	a.Store = itinerary.New(a.persist)
	a.Store.Init()

	log.WithComponent("app").Infow("session started",
		"backend", cfg.Storage.Backend,
		"key", cfg.Storage.Key,
		"activities", len(a.Store.Activities()),
	)
	return a, nil
}

func (a *App) openBackend() (store.Backend, error) {
	s := a.Config.Storage
	switch s.Backend {
	case config.BackendMemory:
		return store.NewMemoryBackend(), nil
	case config.BackendSQLite:
		db, err := sqlitestore.Open(s.DBPath())
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		return db, nil
	default:
		js, err := jsonstore.New(s.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open json store: %w", err)
		}
		return js, nil
	}
}

// Dark reports whether the dark theme applies, honoring a forced ui.theme.
func (a *App) Dark() bool {
	switch a.Config.UI.Theme {
	case "dark":
		return true
	case "light":
		return false
	}
	return a.Store.IsDark()
}

// SavedAt reports when the itinerary was last written, if the backend knows.
func (a *App) SavedAt() (time.Time, bool) { return a.persist.SavedAt() }

// Close releases the backend and flushes the log.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.Log.Close()
	return first
}
