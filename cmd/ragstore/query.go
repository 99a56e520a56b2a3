package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contextlab/ragstore/pkg/types"
)

var (
	queryMode      string
	queryTopK      int
	queryThreshold float64
	queryStrict    bool
	queryJSON      bool
)

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Query the vector store",
	Long: `Runs hybrid retrieval for the question and prints the answer, or the
retained documents when --mode none is selected.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryMode, "mode", "", "answer mode: none, extractive or llm")
	queryCmd.Flags().IntVarP(&queryTopK, "top-k", "k", 0, "semantic, keyword and hybrid top-K at once")
	queryCmd.Flags().Float64Var(&queryThreshold, "threshold", -1, "minimum retained score (0.0-1.0)")
	queryCmd.Flags().BoolVar(&queryStrict, "strict", false, "filter on the semantic score alone")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output the full result as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.Close()

	opts := types.QueryOptions{AnswerMode: queryMode}
	if cmd.Flags().Changed("top-k") {
		opts.TopK = &queryTopK
	}
	if cmd.Flags().Changed("threshold") {
		opts.SimilarityThreshold = &queryThreshold
	}
	if cmd.Flags().Changed("strict") {
		opts.Strict = &queryStrict
	}

	result, err := app.engine.Query(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}

	if queryJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if result.UsedConfig.AnswerMode == types.AnswerModeNone {
		if len(result.Documents) == 0 {
			cmd.Println("No documents found.")
			return nil
		}
		for i, doc := range result.Documents {
			cmd.Printf("[%d] score=%.3f semantic=%.3f keyword=%.3f\n", i+1, doc.Score, doc.SemanticScore, doc.KeywordScore)
			cmd.Println(doc.Text)
			cmd.Println()
		}
		return nil
	}

	cmd.Println(result.Answer)
	return nil
}
