// Package store persists the itinerary as one JSON blob under a fixed key,
// the way a browser keeps it in local storage.
package store

import (
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned by a Backend when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Backend is a minimal key-value store holding raw blobs.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// Stamped is implemented by backends that know when a key was last written.
type Stamped interface {
	UpdatedAt(key string) (time.Time, error)
}

// MemoryBackend keeps blobs in process memory. Nothing survives a restart.
type MemoryBackend struct {
	mu   sync.Mutex
	data map[string][]byte
	// PutErr, when set, is returned by every Put (simulates a full disk).
	PutErr error
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: map[string][]byte{}}
}

func (m *MemoryBackend) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (m *MemoryBackend) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil {
		return m.PutErr
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

var _ Backend = (*MemoryBackend)(nil)
