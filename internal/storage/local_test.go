package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmai/taskboard/internal/storage"
)

func openLocal(t *testing.T) *storage.Local {
	t.Helper()

	l, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestSetAndGet(t *testing.T) {
	l := openLocal(t)

	require.NoError(t, l.Set("key", "value"))

	value, ok, err := l.Get("key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value", value)
}

func TestGetMissingKey(t *testing.T) {
	l := openLocal(t)

	value, ok, err := l.Get("absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSetOverwrites(t *testing.T) {
	l := openLocal(t)

	require.NoError(t, l.Set("key", "first"))
	require.NoError(t, l.Set("key", "second"))

	value, ok, err := l.Get("key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", value)
}

func TestDelete(t *testing.T) {
	l := openLocal(t)

	require.NoError(t, l.Set("key", "value"))
	require.NoError(t, l.Delete("key"))

	_, ok, err := l.Get("key")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is a no-op.
	assert.NoError(t, l.Delete("key"))
}

func TestSize(t *testing.T) {
	l := openLocal(t)

	size, err := l.Size("absent")
	require.NoError(t, err)
	assert.Zero(t, size)

	require.NoError(t, l.Set("key", "hello"))

	size, err = l.Size("key")
	require.NoError(t, err)
	assert.Equal(t, 5, size)
}

func TestOpenOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	l, err := storage.Open(path)
	require.NoError(t, err)

	assert.Equal(t, path, l.Path())
	require.NoError(t, l.Set("key", "value"))
	require.NoError(t, l.Close())

	// Data survives reopening.
	l2, err := storage.Open(path)
	require.NoError(t, err)
	defer l2.Close()

	value, ok, err := l2.Get("key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value", value)
}
