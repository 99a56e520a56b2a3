package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/contextlab/ragstore/internal/engine"
)

var (
	ingestFile     string
	ingestMetadata string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [text]",
	Short: "Ingest text into the vector store",
	Long: `Chunks and embeds text into the vector store. Text is taken from the
argument, from --file, or from stdin when neither is given. Ingesting
the same text twice is a no-op.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestFile, "file", "f", "", "read text from file")
	ingestCmd.Flags().StringVarP(&ingestMetadata, "metadata", "m", "", "metadata as a JSON object")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	var text string
	switch {
	case len(args) == 1:
		text = args[0]
	case ingestFile != "":
		data, err := os.ReadFile(ingestFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", ingestFile, err)
		}
		text = string(data)
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	var metadata map[string]any
	if ingestMetadata != "" {
		if err := json.Unmarshal([]byte(ingestMetadata), &metadata); err != nil {
			return fmt.Errorf("parse metadata: %w", err)
		}
	}

	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.engine.Ingest(cmd.Context(), text, metadata, engine.IngestOptions{})
	if err != nil {
		return err
	}

	cmd.Printf("added: %d, skipped: %d\n", result.Added, result.Skipped)
	return nil
}
