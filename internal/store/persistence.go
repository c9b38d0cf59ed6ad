package store

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/idilsaglam/trip/internal/logger"
	"github.com/idilsaglam/trip/internal/model"
)

// Snapshot is a decoded blob. Nil fields were absent (or null) in storage.
type Snapshot struct {
	Activities []model.Activity `json:"activities"`
	IsDark     *bool            `json:"isDark"`
}

// Persistence adapts a Backend to the load/save contract: reads fall back to
// "nothing stored" and writes are fire-and-forget. Failures only reach the log.
type Persistence struct {
	backend Backend
	key     string
	log     *logger.Logger
}

// NewPersistence binds backend to key. A nil log discards messages.
func NewPersistence(backend Backend, key string, log *logger.Logger) *Persistence {
	if key == "" {
		key = model.StorageKey
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Persistence{backend: backend, key: key, log: log.WithComponent("persistence")}
}

// Key is the storage key the blob lives under.
func (p *Persistence) Key() string { return p.key }

// Load reads the stored blob. It reports false on a missing key, a backend
// error or malformed JSON.
func (p *Persistence) Load() (Snapshot, bool) {
	b, err := p.backend.Get(p.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			p.log.Debugw("no stored state", "key", p.key)
		} else {
			p.log.WithError(err).Warnw("read failed, using defaults", "key", p.key)
		}
		return Snapshot{}, false
	}
	var s Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		p.log.WithError(err).Warnw("malformed state, using defaults", "key", p.key)
		return Snapshot{}, false
	}
	return s, true
}

// Save writes state under the key. Errors are logged and dropped.
func (p *Persistence) Save(state model.PersistedState) {
	if state.Activities == nil {
		state.Activities = []model.Activity{}
	}
	b, err := json.Marshal(state)
	if err != nil {
		p.log.WithError(err).Errorw("encode failed")
		return
	}
	if err := p.backend.Put(p.key, b); err != nil {
		p.log.WithError(err).Errorw("write failed, change not persisted", "key", p.key)
		return
	}
	p.log.Debugw("saved", "key", p.key, "activities", len(state.Activities), "isDark", state.IsDark)
}

// SavedAt reports when the blob was last written. It is false when nothing
// is stored or the backend does not track write times.
func (p *Persistence) SavedAt() (time.Time, bool) {
	st, ok := p.backend.(Stamped)
	if !ok {
		return time.Time{}, false
	}
	ts, err := st.UpdatedAt(p.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			p.log.WithError(err).Debugw("write time unavailable", "key", p.key)
		}
		return time.Time{}, false
	}
	return ts, true
}
