package checkpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemoryStore_SaveLoad tests the basic round trip.
func TestMemoryStore_SaveLoad(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Save("run-1", "classify", []byte("state-a")))

	data, err := store.Load("run-1", "classify")
	require.NoError(t, err)
	assert.Equal(t, []byte("state-a"), data)
}

// TestMemoryStore_Load_NotFound tests missing checkpoint lookup.
func TestMemoryStore_Load_NotFound(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	_, err := store.Load("no-run", "no-node")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save("run-1", "a", []byte("x")))
	_, err = store.Load("run-1", "other-node")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestMemoryStore_Save_Overwrites tests overwrite semantics.
func TestMemoryStore_Save_Overwrites(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Save("run-1", "a", []byte("old")))
	require.NoError(t, store.Save("run-1", "a", []byte("new")))

	data, err := store.Load("run-1", "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
	assert.Equal(t, 1, store.Len())
}

// TestMemoryStore_List tests sequence-ordered listing.
func TestMemoryStore_List(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Save("run-1", "classify", []byte("1")))
	require.NoError(t, store.Save("run-1", "joke_teller", []byte("22")))
	require.NoError(t, store.Save("run-2", "other", []byte("x")))

	infos, err := store.List("run-1")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "classify", infos[0].NodeID)
	assert.Equal(t, 1, infos[0].Sequence)
	assert.Equal(t, "joke_teller", infos[1].NodeID)
	assert.Equal(t, 2, infos[1].Sequence)
	assert.Equal(t, int64(2), infos[1].Size)
}

// TestMemoryStore_List_EmptyRun tests that unknown runs list empty, not error.
func TestMemoryStore_List_EmptyRun(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	infos, err := store.List("never-ran")
	require.NoError(t, err)
	assert.Empty(t, infos)
}

// TestMemoryStore_Delete tests single checkpoint removal.
func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Save("run-1", "a", []byte("x")))
	require.NoError(t, store.Delete("run-1", "a"))

	_, err := store.Load("run-1", "a")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting something that doesn't exist is not an error.
	assert.NoError(t, store.Delete("run-1", "ghost"))
}

// TestMemoryStore_DeleteRun tests whole-run removal.
func TestMemoryStore_DeleteRun(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Save("run-1", "a", []byte("x")))
	require.NoError(t, store.Save("run-1", "b", []byte("y")))
	require.NoError(t, store.Save("run-2", "a", []byte("z")))

	require.NoError(t, store.DeleteRun("run-1"))

	infos, err := store.List("run-1")
	require.NoError(t, err)
	assert.Empty(t, infos)
	assert.Equal(t, 1, store.Len())
}

// TestMemoryStore_Closed tests operations after Close.
func TestMemoryStore_Closed(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Close())

	assert.ErrorIs(t, store.Save("r", "n", nil), ErrStoreClosed)
	_, err := store.Load("r", "n")
	assert.ErrorIs(t, err, ErrStoreClosed)
	_, err = store.List("r")
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, store.Delete("r", "n"), ErrStoreClosed)
	assert.ErrorIs(t, store.DeleteRun("r"), ErrStoreClosed)
}

// TestMemoryStore_DataIsolation tests that stored bytes are copies.
func TestMemoryStore_DataIsolation(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	data := []byte("original")
	require.NoError(t, store.Save("run-1", "a", data))
	data[0] = 'X' // Caller mutates after save

	loaded, err := store.Load("run-1", "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), loaded)

	loaded[0] = 'Y' // Mutating the loaded copy
	again, err := store.Load("run-1", "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}
