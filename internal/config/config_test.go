package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "vector_store.json", cfg.StoreKey)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.APIKey)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_key: sk-test
store_dsn: file:///var/lib/rag
store_key: custom.json
chunk_size: 256
mock_dimension: 64
addr: ":9090"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "file:///var/lib/rag", cfg.StoreDSN)
	assert.Equal(t, "custom.json", cfg.StoreKey)
	assert.Equal(t, 256, cfg.ChunkSize)
	assert.Equal(t, 64, cfg.MockDimension)
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store_key: from_file.json\n"), 0o644))

	t.Setenv("RAGSTORE_STORE_KEY", "from_env.json")
	t.Setenv("RAGSTORE_MOCK", "true")
	t.Setenv("RAGSTORE_CHUNK_SIZE", "128")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_env.json", cfg.StoreKey)
	assert.True(t, cfg.Mock)
	assert.Equal(t, 128, cfg.ChunkSize)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
