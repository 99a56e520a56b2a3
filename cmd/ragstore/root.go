package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contextlab/ragstore/internal/config"
	"github.com/contextlab/ragstore/internal/engine"
	"github.com/contextlab/ragstore/internal/provider"
	"github.com/contextlab/ragstore/internal/storage"
	"github.com/contextlab/ragstore/internal/vectorstore"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "ragstore",
	Short: "Retrieval-augmented store and query engine",
	Long: `ragstore ingests text into a versioned JSON vector store and answers
questions over it with hybrid semantic and keyword retrieval.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
}

// app bundles the wired components behind one Close.
type app struct {
	cfg     config.Config
	backend storage.Backend
	engine  *engine.Engine
	prov    provider.Provider
}

func (a *app) Close() {
	_ = a.prov.Close()
	_ = a.backend.Close()
}

// buildApp loads configuration and wires backend, provider and engine.
func buildApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	backend, err := storage.Open(cfg.StoreDSN)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	providerCfg := provider.Config{
		APIKey:         cfg.APIKey,
		BaseURL:        cfg.BaseURL,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: cfg.EmbeddingModel,
		Mock:           cfg.Mock,
		MockDimension:  cfg.MockDimension,
	}
	prov := provider.New(providerCfg)

	store := vectorstore.New(backend, cfg.StoreKey)
	e := engine.New(store, prov, engine.Options{
		ChunkSize:    cfg.ChunkSize,
		ChunkOverlap: cfg.ChunkOverlap,
		MockMode:     providerCfg.UseMock(),
	})

	return &app{cfg: cfg, backend: backend, engine: e, prov: prov}, nil
}
