package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contextlab/ragstore/pkg/types"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAI(Config{APIKey: "test-key", BaseURL: srv.URL})
}

func TestOpenAIEmbed_ExtractsFirstVector(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req["input"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"embedding": []float64{0.1, 0.2, 0.3}},
				{"embedding": []float64{9, 9, 9}},
			},
		})
	})

	vec, err := p.Embed(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, vec)
}

func TestOpenAIEmbed_NonSuccessStatus(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := p.Embed(context.Background(), "hello")
	var reqErr *types.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "embeddings", reqErr.Op)
	assert.Equal(t, http.StatusTooManyRequests, reqErr.Status)
}

func TestOpenAIEmbed_MissingVector(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	_, err := p.Embed(context.Background(), "hello")
	assert.True(t, errors.Is(err, types.ErrMalformedResponse))
}

func TestOpenAIEmbed_CachesByContent(t *testing.T) {
	var calls atomic.Int32
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float64{1, 2}}},
		})
	})

	ctx := context.Background()
	first, err := p.Embed(ctx, "same text")
	require.NoError(t, err)
	second, err := p.Embed(ctx, "same text")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())

	// Mutating a returned vector must not poison the cache.
	first[0] = 99
	third, err := p.Embed(ctx, "same text")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, third)
}

func TestOpenAIChat_ReturnsContent(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var req struct {
			Temperature float64 `json:"temperature"`
			Messages    []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.InDelta(t, 0.4, req.Temperature, 1e-9)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "the answer"}},
			},
		})
	})

	answer, err := p.Chat(context.Background(), "sys", "usr", 0.4)
	require.NoError(t, err)
	assert.Equal(t, "the answer", answer)
}

func TestOpenAIChat_NonSuccessStatus(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := p.Chat(context.Background(), "sys", "usr", 0.7)
	var reqErr *types.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "chat", reqErr.Op)
	assert.Equal(t, http.StatusBadGateway, reqErr.Status)
}

func TestOpenAIChat_MissingContent(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{}}},
		})
	})

	_, err := p.Chat(context.Background(), "sys", "usr", 0.7)
	assert.True(t, errors.Is(err, types.ErrMalformedResponse))
}
