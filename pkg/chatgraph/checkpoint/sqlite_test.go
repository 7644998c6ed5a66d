package checkpoint

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSQLiteStore creates a store backed by a temp file.
func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "checkpoints.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// TestSQLiteStore_SaveLoad tests the basic round trip.
func TestSQLiteStore_SaveLoad(t *testing.T) {
	store := newTestSQLiteStore(t)

	require.NoError(t, store.Save("run-1", "classify", []byte("state-a")))

	data, err := store.Load("run-1", "classify")
	require.NoError(t, err)
	assert.Equal(t, []byte("state-a"), data)
}

// TestSQLiteStore_Load_NotFound tests missing checkpoint lookup.
func TestSQLiteStore_Load_NotFound(t *testing.T) {
	store := newTestSQLiteStore(t)

	_, err := store.Load("no-run", "no-node")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestSQLiteStore_Save_Overwrites tests upsert with sequence bump.
func TestSQLiteStore_Save_Overwrites(t *testing.T) {
	store := newTestSQLiteStore(t)

	require.NoError(t, store.Save("run-1", "a", []byte("old")))
	require.NoError(t, store.Save("run-1", "a", []byte("new")))

	data, err := store.Load("run-1", "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)

	infos, err := store.List("run-1")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, 2, infos[0].Sequence) // Updated rows get a fresh sequence
}

// TestSQLiteStore_List tests sequence-ordered listing.
func TestSQLiteStore_List(t *testing.T) {
	store := newTestSQLiteStore(t)

	require.NoError(t, store.Save("run-1", "classify", []byte("1")))
	require.NoError(t, store.Save("run-1", "advisor", []byte("22")))
	require.NoError(t, store.Save("run-2", "other", []byte("x")))

	infos, err := store.List("run-1")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "classify", infos[0].NodeID)
	assert.Equal(t, "advisor", infos[1].NodeID)
	assert.Equal(t, "run-1", infos[0].RunID)
	assert.False(t, infos[0].Timestamp.IsZero())
}

// TestSQLiteStore_DeleteRun tests whole-run removal.
func TestSQLiteStore_DeleteRun(t *testing.T) {
	store := newTestSQLiteStore(t)

	require.NoError(t, store.Save("run-1", "a", []byte("x")))
	require.NoError(t, store.Save("run-1", "b", []byte("y")))
	require.NoError(t, store.DeleteRun("run-1"))

	infos, err := store.List("run-1")
	require.NoError(t, err)
	assert.Empty(t, infos)
}

// TestSQLiteStore_Persistence tests reopening the same database file.
func TestSQLiteStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoints.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save("run-1", "a", []byte("survives")))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	data, err := reopened.Load("run-1", "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("survives"), data)
}

// TestSQLiteStore_Closed tests operations after Close.
func TestSQLiteStore_Closed(t *testing.T) {
	store := newTestSQLiteStore(t)
	require.NoError(t, store.Close())

	assert.ErrorIs(t, store.Save("r", "n", []byte("x")), ErrStoreClosed)
	_, err := store.Load("r", "n")
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.NoError(t, store.Close()) // Idempotent
}
