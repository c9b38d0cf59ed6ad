package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trip.log")
	l, err := New(Config{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)

	l.WithComponent("test").Infow("hello", "n", 1)
	l.Close()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"component":"test"`)
	assert.Contains(t, string(b), `"msg":"hello"`)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	l := Nop()
	l.WithComponent("x").Errorw("ignored")
	l.Close()
}

func TestWithErrorAddsField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.log")
	l, err := New(Config{Level: "info", Format: "json", File: path})
	require.NoError(t, err)

	l.WithError(errors.New("disk full")).Warnw("write failed")
	l.Close()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"error":"disk full"`)
}
