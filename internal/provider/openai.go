package provider

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/contextlab/ragstore/pkg/types"
)

const (
	// DefaultBaseURL is the OpenAI-compatible API root used when none
	// is configured.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultChatModel and DefaultEmbeddingModel are used when the
	// configuration leaves the model names empty.
	DefaultChatModel      = "gpt-4"
	DefaultEmbeddingModel = "text-embedding-3-small"

	// DefaultCacheSize bounds the embedding LRU cache.
	DefaultCacheSize = 10000

	requestTimeout = 60 * time.Second
)

// OpenAIProvider talks to any OpenAI-compatible embeddings and
// chat-completions API over HTTP.
type OpenAIProvider struct {
	apiKey         string
	baseURL        string
	chatModel      string
	embeddingModel string
	httpClient     *http.Client
	cache          *lru.Cache[string, []float64]
}

// NewOpenAI creates a live provider. Missing base URL and model names
// take the package defaults.
func NewOpenAI(cfg Config) *OpenAIProvider {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	chatModel := cfg.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	embeddingModel := cfg.EmbeddingModel
	if embeddingModel == "" {
		embeddingModel = DefaultEmbeddingModel
	}

	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, []float64](cacheSize)
	if err != nil {
		cache, _ = lru.New[string, []float64](DefaultCacheSize)
	}

	return &OpenAIProvider{
		apiKey:         cfg.APIKey,
		baseURL:        baseURL,
		chatModel:      chatModel,
		embeddingModel: embeddingModel,
		httpClient:     &http.Client{Timeout: requestTimeout},
		cache:          cache,
	}
}

type embeddingsResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

type chatCompletionsResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Embed calls the embeddings endpoint and extracts the first returned
// vector. Identical texts are served from an LRU cache keyed by content
// hash.
func (p *OpenAIProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	key := contentKey(text)
	if cached, ok := p.cache.Get(key); ok {
		vector := make([]float64, len(cached))
		copy(vector, cached)
		return vector, nil
	}

	body, err := json.Marshal(map[string]any{
		"model": p.embeddingModel,
		"input": text,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal embeddings request: %w", err)
	}

	resp, err := p.post(ctx, "/embeddings", body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &types.RequestError{Op: "embeddings", Status: resp.StatusCode}
	}

	var parsed embeddingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode embeddings response: %w", types.ErrMalformedResponse)
	}
	if len(parsed.Data) == 0 || len(parsed.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("embeddings response missing vector: %w", types.ErrMalformedResponse)
	}

	vector := parsed.Data[0].Embedding
	p.cache.Add(key, vector)

	result := make([]float64, len(vector))
	copy(result, vector)
	return result, nil
}

// Chat calls the chat-completions endpoint with a system and user
// message and returns the completion content verbatim.
func (p *OpenAIProvider) Chat(ctx context.Context, system, user string, temperature float64) (string, error) {
	body, err := json.Marshal(map[string]any{
		"model":       p.chatModel,
		"temperature": temperature,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	resp, err := p.post(ctx, "/chat/completions", body)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &types.RequestError{Op: "chat", Status: resp.StatusCode}
	}

	var parsed chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", types.ErrMalformedResponse)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == nil {
		return "", fmt.Errorf("chat response missing message content: %w", types.ErrMalformedResponse)
	}

	return *parsed.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api call: %w", err)
	}
	return resp, nil
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string {
	return NameOpenAI
}

// Close implements Provider.
func (p *OpenAIProvider) Close() error {
	p.httpClient.CloseIdleConnections()
	return nil
}

// contentKey computes the cache key for a text.
func contentKey(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}
