package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration for the server and CLI.
type Config struct {
	// Provider settings. An empty or placeholder APIKey selects the
	// deterministic mock provider.
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	ChatModel      string `yaml:"chat_model"`
	EmbeddingModel string `yaml:"embedding_model"`
	Mock           bool   `yaml:"mock"`
	MockDimension  int    `yaml:"mock_dimension"`

	// Store settings. StoreDSN selects the storage backend; StoreKey is
	// the document key within it.
	StoreDSN string `yaml:"store_dsn"`
	StoreKey string `yaml:"store_key"`

	// Chunking defaults for ingestion.
	ChunkSize    int `yaml:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap"`

	// HTTP listen address.
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		StoreKey: "vector_store.json",
		Addr:     ":8080",
	}
}

// Load builds the configuration in precedence order: defaults, then the
// YAML file at path (skipped when path is empty or the file is absent),
// then RAGSTORE_* environment variables. A .env file is loaded first so
// its values are visible as environment overrides.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Missing config file is fine; env and defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if cfg.StoreKey == "" {
		cfg.StoreKey = "vector_store.json"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	envString("RAGSTORE_API_KEY", &cfg.APIKey)
	envString("RAGSTORE_BASE_URL", &cfg.BaseURL)
	envString("RAGSTORE_CHAT_MODEL", &cfg.ChatModel)
	envString("RAGSTORE_EMBEDDING_MODEL", &cfg.EmbeddingModel)
	envBool("RAGSTORE_MOCK", &cfg.Mock)
	envInt("RAGSTORE_MOCK_DIMENSION", &cfg.MockDimension)
	envString("RAGSTORE_STORE_DSN", &cfg.StoreDSN)
	envString("RAGSTORE_STORE_KEY", &cfg.StoreKey)
	envInt("RAGSTORE_CHUNK_SIZE", &cfg.ChunkSize)
	envInt("RAGSTORE_CHUNK_OVERLAP", &cfg.ChunkOverlap)
	envString("RAGSTORE_ADDR", &cfg.Addr)
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envBool(key string, dst *bool) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
