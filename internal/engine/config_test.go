package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/contextlab/ragstore/pkg/types"
)

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool       { return &v }

func TestResolveConfig_Defaults(t *testing.T) {
	cfg := ResolveConfig(types.QueryOptions{})

	assert.Equal(t, DefaultSimilarityThreshold, cfg.SimilarityThreshold)
	assert.Equal(t, DefaultSemanticTopK, cfg.SemanticTopK)
	assert.Equal(t, DefaultKeywordTopK, cfg.KeywordTopK)
	assert.Equal(t, DefaultHybridTopK, cfg.HybridTopK)
	assert.False(t, cfg.Strict)
	assert.Equal(t, types.AnswerModeLLM, cfg.AnswerMode)
	assert.Equal(t, DefaultTemperature, cfg.Temperature)
	assert.Equal(t, DefaultSystemPrompt, cfg.SystemPrompt)
}

func TestResolveConfig_TopKFanOut(t *testing.T) {
	cfg := ResolveConfig(types.QueryOptions{TopK: intPtr(3)})
	assert.Equal(t, 3, cfg.SemanticTopK)
	assert.Equal(t, 3, cfg.KeywordTopK)
	assert.Equal(t, 3, cfg.HybridTopK)

	// Per-stage values beat the fan-out.
	cfg = ResolveConfig(types.QueryOptions{TopK: intPtr(3), KeywordTopK: intPtr(20)})
	assert.Equal(t, 3, cfg.SemanticTopK)
	assert.Equal(t, 20, cfg.KeywordTopK)
	assert.Equal(t, 3, cfg.HybridTopK)
}

func TestResolveConfig_FloorsKValues(t *testing.T) {
	cfg := ResolveConfig(types.QueryOptions{
		SemanticTopK: intPtr(0),
		KeywordTopK:  intPtr(-5),
		HybridTopK:   intPtr(0),
	})
	assert.Equal(t, 1, cfg.SemanticTopK)
	assert.Equal(t, 1, cfg.KeywordTopK)
	assert.Equal(t, 1, cfg.HybridTopK)
}

func TestResolveConfig_AnswerModeSynonyms(t *testing.T) {
	assert.Equal(t, types.AnswerModeNone, ResolveConfig(types.QueryOptions{AnswerMode: "documents"}).AnswerMode)
	assert.Equal(t, types.AnswerModeLLM, ResolveConfig(types.QueryOptions{AnswerMode: "answer"}).AnswerMode)
	assert.Equal(t, types.AnswerModeExtractive, ResolveConfig(types.QueryOptions{AnswerMode: "extractive"}).AnswerMode)
	assert.Equal(t, types.AnswerModeLLM, ResolveConfig(types.QueryOptions{AnswerMode: "bogus"}).AnswerMode)
}

func TestResolveConfig_Overrides(t *testing.T) {
	cfg := ResolveConfig(types.QueryOptions{
		SimilarityThreshold: floatPtr(0.1),
		Strict:              boolPtr(true),
		Temperature:         floatPtr(0),
	})
	assert.Equal(t, 0.1, cfg.SimilarityThreshold)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 0.0, cfg.Temperature)
}
