package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibelist/internal/store"
)

// exerciseBackend checks the Backend contract shared by every implementation.
func exerciseBackend(t *testing.T, b store.Backend) {
	t.Helper()

	_, ok, err := b.Get("tasks")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Put("tasks", []byte("first")))
	got, ok, err := b.Get("tasks")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "first", string(got))

	require.NoError(t, b.Put("tasks", []byte("second")))
	got, _, err = b.Get("tasks")
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	_, ok, err = b.Get("other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryBackend(t *testing.T) {
	exerciseBackend(t, store.NewMemoryBackend())
}

func TestFileBackend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	b, err := store.NewFileBackend(dir)
	require.NoError(t, err)

	exerciseBackend(t, b)

	info, err := os.Stat(b.Path("tasks"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileBackend_RejectsEmptyDir(t *testing.T) {
	_, err := store.NewFileBackend(" ")
	assert.Error(t, err)
}

func TestFileBackend_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := store.NewFileBackend(dir)
	require.NoError(t, err)
	st, err := store.New(first, "", nil)
	require.NoError(t, err)
	require.True(t, st.Save(sampleTasks()).OK())

	second, err := store.NewFileBackend(dir)
	require.NoError(t, err)
	st, err = store.New(second, "", nil)
	require.NoError(t, err)

	res := st.Load()
	assert.Equal(t, store.LoadOK, res.Status)
	assert.Equal(t, sampleTasks(), res.Tasks)
}

func TestSQLiteBackend(t *testing.T) {
	b, err := store.OpenSQLite(filepath.Join(t.TempDir(), "vibelist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	exerciseBackend(t, b)
}

func TestSQLiteBackend_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vibelist.db")

	b, err := store.OpenSQLite(path)
	require.NoError(t, err)
	st, err := store.New(b, "", nil)
	require.NoError(t, err)
	require.True(t, st.Save(sampleTasks()).OK())
	require.NoError(t, b.Close())

	b, err = store.OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	st, err = store.New(b, "", nil)
	require.NoError(t, err)

	res := st.Load()
	assert.Equal(t, store.LoadOK, res.Status)
	assert.Equal(t, sampleTasks(), res.Tasks)
}

func TestOpenSQLite_RequiresPath(t *testing.T) {
	_, err := store.OpenSQLite("")
	assert.Error(t, err)
}
