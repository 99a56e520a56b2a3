package provider

import "context"

// Provider names reported by Name.
const (
	NameOpenAI = "openai"
	NameMock   = "mock"
)

// Provider turns text into an embedding vector and generates chat
// completions. Errors are surfaced unmodified; callers own any retry
// policy.
type Provider interface {
	// Embed returns the embedding vector for text.
	Embed(ctx context.Context, text string) ([]float64, error)

	// Chat generates a completion from a system and user message.
	Chat(ctx context.Context, system, user string, temperature float64) (string, error)

	// Name identifies the implementation.
	Name() string

	// Close releases any resources held by the provider.
	Close() error
}

// Config selects and configures the provider implementation.
type Config struct {
	APIKey         string
	BaseURL        string
	ChatModel      string
	EmbeddingModel string

	// Mock forces the deterministic offline provider. It is also
	// selected automatically when no API key is configured.
	Mock          bool
	MockDimension int

	// CacheSize bounds the live provider's embedding cache; 0 uses the
	// default.
	CacheSize int
}

// UseMock reports whether the configuration resolves to the mock
// provider: explicitly requested, or no usable API key.
func (c Config) UseMock() bool {
	return c.Mock || c.APIKey == "" || c.APIKey == "your_api_key"
}

// New creates a provider from the configuration.
func New(cfg Config) Provider {
	if cfg.UseMock() {
		return NewMock(cfg.MockDimension)
	}
	return NewOpenAI(cfg)
}
