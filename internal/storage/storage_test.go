package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backendContract exercises the Get/Put/Delete contract shared by all
// implementations.
func backendContract(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()

	_, err := b.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Put(ctx, "store.json", `{"version":1}`))
	value, err := b.Get(ctx, "store.json")
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, value)

	// Whole-value overwrite.
	require.NoError(t, b.Put(ctx, "store.json", `{"version":1,"items":[]}`))
	value, err = b.Get(ctx, "store.json")
	require.NoError(t, err)
	assert.Equal(t, `{"version":1,"items":[]}`, value)

	require.NoError(t, b.Delete(ctx, "store.json"))
	_, err = b.Get(ctx, "store.json")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is idempotent.
	require.NoError(t, b.Delete(ctx, "store.json"))
}

func TestMemoryBackend(t *testing.T) {
	b := NewMemoryBackend()
	defer func() { _ = b.Close() }()
	backendContract(t, b)
}

func TestFileBackend(t *testing.T) {
	b, err := NewFileBackend(filepath.Join(t.TempDir(), "stores"))
	require.NoError(t, err)
	defer func() { _ = b.Close() }()
	backendContract(t, b)
}

func TestFileBackend_SanitizesKeys(t *testing.T) {
	b, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, b.Put(ctx, "a/b c:d.json", "value"))
	got, err := b.Get(ctx, "a/b c:d.json")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestSQLiteBackend(t *testing.T) {
	b, err := NewSQLiteBackend(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	defer func() { _ = b.Close() }()
	backendContract(t, b)
}

func TestOpen_DSNSelection(t *testing.T) {
	b, err := Open("")
	require.NoError(t, err)
	assert.IsType(t, &MemoryBackend{}, b)

	b, err = Open("memory")
	require.NoError(t, err)
	assert.IsType(t, &MemoryBackend{}, b)

	b, err = Open("file://" + t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &FileBackend{}, b)

	b, err = Open(filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteBackend{}, b)
	_ = b.Close()
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "memory", Describe(""))
	assert.Equal(t, "memory", Describe("memory"))
	assert.Equal(t, "postgres", Describe("postgres://localhost/rag"))
	assert.Equal(t, "file", Describe("file:///var/lib/rag"))
	assert.Contains(t, Describe("data.db"), "sqlite")
}
