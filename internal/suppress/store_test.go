package suppress

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(id, target string, status Status) Entry {
	return Entry{
		ID:      id,
		Target:  target,
		Kind:    KindRunKey,
		Prior:   State{Existed: true, Value: "v", Detail: "HKCU"},
		Created: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		Status:  status,
	}
}

func TestStoreAppendAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.jsonl")
	s, err := OpenJSONLStore(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Append(testEntry("a", "Updater", StatusActive)))
	require.NoError(t, s.Append(testEntry("b", "Other", StatusActive)))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, State{Existed: true, Value: "v", Detail: "HKCU"}, got[0].Prior)
}

func TestStoreUpdateSupersedes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.jsonl")
	s, err := OpenJSONLStore(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Append(testEntry("a", "Updater", StatusActive)))
	require.NoError(t, s.Update(testEntry("a", "Updater", StatusReverted)))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	// Last record per id wins; first-appearance order is kept.
	assert.Equal(t, StatusReverted, got[0].Status)
}

func TestStoreReopenSeesHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.jsonl")
	s, err := OpenJSONLStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Append(testEntry("a", "Updater", StatusActive)))
	require.NoError(t, s.Close())

	s2, err := OpenJSONLStore(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	// Reopen appends, never truncates.
	require.NoError(t, s2.Append(testEntry("b", "Other", StatusActive)))
	got, err = s2.Load()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStoreSkipsDamagedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.jsonl")
	s, err := OpenJSONLStore(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Append(testEntry("a", "Updater", StatusActive)))
	// Torn final write after a crash.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(`{"id":"b","targ`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestStoreMissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "log.jsonl")
	s, err := OpenJSONLStore(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStoreClosedRejectsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.jsonl")
	s, err := OpenJSONLStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.Error(t, s.Append(testEntry("a", "x", StatusActive)))
}
