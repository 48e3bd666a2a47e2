package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-ticketing/internal/storage"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := storage.NewFileStore(filepath.Join(t.TempDir(), "bookings.json"))
	data, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestFileStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "bookings.json")
	s := storage.NewFileStore(path)

	require.NoError(t, s.Save([]byte(`[{"id":"b1"}]`)))

	data, ok, err := s.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"b1"}]`, string(data))
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	s := storage.NewFileStore(path)

	require.NoError(t, s.Save([]byte("first")))
	require.NoError(t, s.Save([]byte("second")))

	data, ok, err := s.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", string(data))
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := storage.NewFileStore(filepath.Join(dir, "bookings.json"))
	require.NoError(t, s.Save([]byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bookings.json", entries[0].Name())
}
