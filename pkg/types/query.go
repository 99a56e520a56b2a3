package types

// AnswerMode selects how a query result is synthesized into an answer.
type AnswerMode string

const (
	// AnswerModeNone returns the ranked documents without an answer.
	AnswerModeNone AnswerMode = "none"
	// AnswerModeExtractive builds an answer from the top document without
	// calling the chat model.
	AnswerModeExtractive AnswerMode = "extractive"
	// AnswerModeLLM generates an answer with the chat model using the
	// retained documents as context.
	AnswerModeLLM AnswerMode = "llm"
)

// NormalizeAnswerMode maps request synonyms onto the canonical modes.
// "documents" is an alias for none and "answer" an alias for llm; an
// unrecognized or empty value falls back to llm.
func NormalizeAnswerMode(raw string) AnswerMode {
	switch raw {
	case "none", "documents":
		return AnswerModeNone
	case "extractive":
		return AnswerModeExtractive
	case "llm", "answer", "":
		return AnswerModeLLM
	default:
		return AnswerModeLLM
	}
}

// QueryOptions are the caller-supplied query parameters. Pointer fields
// distinguish "not set" from an explicit zero; unset fields take the
// engine defaults. TopK, when set, expands to the three per-stage K
// values unless those are individually specified.
type QueryOptions struct {
	SimilarityThreshold *float64 `json:"similarityThreshold,omitempty"`
	SemanticTopK        *int     `json:"semanticTopK,omitempty"`
	KeywordTopK         *int     `json:"keywordTopK,omitempty"`
	HybridTopK          *int     `json:"hybridTopK,omitempty"`
	TopK                *int     `json:"topK,omitempty"`
	Strict              *bool    `json:"strict,omitempty"`
	AnswerMode          string   `json:"answerMode,omitempty"`
	Temperature         *float64 `json:"temperature,omitempty"`
	SystemPrompt        *string  `json:"systemPrompt,omitempty"`
}

// QueryConfig is the fully resolved query configuration. It is echoed
// back in every result so callers can introspect the applied defaults.
type QueryConfig struct {
	SimilarityThreshold float64    `json:"similarityThreshold"`
	SemanticTopK        int        `json:"semanticTopK"`
	KeywordTopK         int        `json:"keywordTopK"`
	HybridTopK          int        `json:"hybridTopK"`
	Strict              bool       `json:"strict"`
	AnswerMode          AnswerMode `json:"answerMode"`
	Temperature         float64    `json:"temperature"`
	SystemPrompt        string     `json:"systemPrompt"`
}
