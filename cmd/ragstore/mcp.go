package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/contextlab/ragstore/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.Close()

	// stdout carries the MCP protocol; logs go to stderr.
	log.SetOutput(os.Stderr)
	log.Printf("ragstore MCP server v%s, listening on stdio...", version)

	return mcp.NewServer(app.engine).Serve(cmd.Context())
}
