package sqlitestore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/trip/internal/model"
	"github.com/idilsaglam/trip/internal/store"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "trip.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("close failed: %v", err)
		}
	})
	return s
}

func TestGetMissing(t *testing.T) {
	s := openTemp(t)
	_, err := s.Get("nope")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.UpdatedAt("nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPutOverwrites(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.Put("k", []byte("one")))
	require.NoError(t, s.Put("k", []byte("two")))

	b, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "two", string(b))

	ts, err := s.UpdatedAt("k")
	require.NoError(t, err)
	assert.False(t, ts.IsZero())
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.db")
	s, err := Open(path)
	require.NoError(t, err)
	p := store.NewPersistence(s, model.StorageKey, nil)
	want := model.PersistedState{Activities: model.DefaultActivities()}
	p.Save(want)
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	snap, ok := store.NewPersistence(s2, model.StorageKey, nil).Load()
	require.True(t, ok)
	assert.Equal(t, want.Activities, snap.Activities)
	require.NotNil(t, snap.IsDark)
	assert.False(t, *snap.IsDark)
}
