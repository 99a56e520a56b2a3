package provider

import (
	"context"
	"fmt"
	"strings"
)

// DefaultMockDimension is the embedding width of the mock provider when
// none is configured.
const DefaultMockDimension = 256

const mockContextSnippetLimit = 800

// MockProvider is a fully deterministic offline provider: embeddings
// are derived from the input bytes and chat answers are templated. It
// never touches the network.
type MockProvider struct {
	dimension int
}

// NewMock creates a mock provider with the given embedding dimension;
// values below 1 take DefaultMockDimension.
func NewMock(dimension int) *MockProvider {
	if dimension < 1 {
		dimension = DefaultMockDimension
	}
	return &MockProvider{dimension: dimension}
}

// Embed maps the input's bytes cyclically onto a fixed-length vector
// with values in [-1, 1]. The same text and dimension always produce
// the same vector.
func (m *MockProvider) Embed(_ context.Context, text string) ([]float64, error) {
	data := []byte(text)
	vector := make([]float64, m.dimension)
	for i := range vector {
		var b byte
		if len(data) > 0 {
			b = data[i%len(data)]
		}
		vector[i] = float64(b)/255*2 - 1
	}
	return vector, nil
}

// Chat returns a deterministic templated answer that embeds the context
// snippet and question extracted from the user message.
func (m *MockProvider) Chat(_ context.Context, _, user string, _ float64) (string, error) {
	contextBlock, question := splitPromptSections(user)

	snippet := contextBlock
	if runes := []rune(snippet); len(runes) > mockContextSnippetLimit {
		snippet = string(runes[:mockContextSnippetLimit])
	}

	return fmt.Sprintf(
		"[mock] question: %s\n\navailable context:\n%s\n\nconfigure an API key to get a model-generated answer.",
		question, snippet,
	), nil
}

// splitPromptSections extracts the context and question blocks from a
// user message shaped as "Context:\n...\n\nQuestion:\n...\n\nAnswer:".
func splitPromptSections(user string) (contextBlock, question string) {
	const (
		contextLabel  = "Context:\n"
		questionLabel = "\n\nQuestion:\n"
		answerLabel   = "\n\nAnswer:"
	)

	rest := user
	if i := strings.Index(rest, contextLabel); i >= 0 {
		rest = rest[i+len(contextLabel):]
	}
	if i := strings.Index(rest, questionLabel); i >= 0 {
		contextBlock = strings.TrimSpace(rest[:i])
		rest = rest[i+len(questionLabel):]
	}
	if i := strings.Index(rest, answerLabel); i >= 0 {
		question = strings.TrimSpace(rest[:i])
	} else {
		question = strings.TrimSpace(rest)
	}
	return contextBlock, question
}

// Name implements Provider.
func (m *MockProvider) Name() string {
	return NameMock
}

// Close implements Provider.
func (m *MockProvider) Close() error {
	return nil
}
