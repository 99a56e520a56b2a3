package engine

import "github.com/contextlab/ragstore/pkg/types"

// Retrieval defaults applied when a query leaves a knob unset.
const (
	DefaultSimilarityThreshold = 0.35
	DefaultSemanticTopK        = 8
	DefaultKeywordTopK         = 8
	DefaultHybridTopK          = 6
	DefaultTemperature         = 0.7
)

// Hybrid score weights. Semantic similarity dominates; keyword overlap
// breaks ties and rescues exact-term matches with weak embeddings.
const (
	semanticWeight = 0.8
	keywordWeight  = 0.2
)

// ResolveConfig fills a caller's query options with defaults. A bare
// TopK fans out to the three per-stage K values; each K is floored to 1
// so a zero or negative request cannot silence a retrieval stage.
func ResolveConfig(opts types.QueryOptions) types.QueryConfig {
	cfg := types.QueryConfig{
		SimilarityThreshold: DefaultSimilarityThreshold,
		SemanticTopK:        DefaultSemanticTopK,
		KeywordTopK:         DefaultKeywordTopK,
		HybridTopK:          DefaultHybridTopK,
		Strict:              false,
		AnswerMode:          types.NormalizeAnswerMode(opts.AnswerMode),
		Temperature:         DefaultTemperature,
		SystemPrompt:        DefaultSystemPrompt,
	}

	if opts.TopK != nil {
		cfg.SemanticTopK = *opts.TopK
		cfg.KeywordTopK = *opts.TopK
		cfg.HybridTopK = *opts.TopK
	}
	if opts.SemanticTopK != nil {
		cfg.SemanticTopK = *opts.SemanticTopK
	}
	if opts.KeywordTopK != nil {
		cfg.KeywordTopK = *opts.KeywordTopK
	}
	if opts.HybridTopK != nil {
		cfg.HybridTopK = *opts.HybridTopK
	}
	if opts.SimilarityThreshold != nil {
		cfg.SimilarityThreshold = *opts.SimilarityThreshold
	}
	if opts.Strict != nil {
		cfg.Strict = *opts.Strict
	}
	if opts.Temperature != nil {
		cfg.Temperature = *opts.Temperature
	}
	if opts.SystemPrompt != nil {
		cfg.SystemPrompt = *opts.SystemPrompt
	}

	cfg.SemanticTopK = max(cfg.SemanticTopK, 1)
	cfg.KeywordTopK = max(cfg.KeywordTopK, 1)
	cfg.HybridTopK = max(cfg.HybridTopK, 1)

	return cfg
}
