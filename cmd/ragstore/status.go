package main

import (
	"github.com/spf13/cobra"

	"github.com/contextlab/ragstore/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show vector store status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.Close()

	status, err := app.engine.Status(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Printf("store key: %s\n", status.StoreKey)
	cmd.Printf("backend:   %s\n", storage.Describe(app.cfg.StoreDSN))
	cmd.Printf("provider:  %s\n", app.prov.Name())
	if !status.Exists {
		cmd.Println("exists:    false")
		return nil
	}
	cmd.Println("exists:    true")
	cmd.Printf("dimension: %d\n", status.Dimension)
	cmd.Printf("items:     %d\n", status.Items)
	return nil
}
