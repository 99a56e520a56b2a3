package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEmbed_Deterministic(t *testing.T) {
	m := NewMock(64)
	ctx := context.Background()

	a, err := m.Embed(ctx, "watermelon")
	require.NoError(t, err)
	b, err := m.Embed(ctx, "watermelon")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestMockEmbed_ValueRange(t *testing.T) {
	m := NewMock(128)
	vec, err := m.Embed(context.Background(), "some text with bytes")
	require.NoError(t, err)
	for _, v := range vec {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestMockEmbed_DistinctInputsDiffer(t *testing.T) {
	m := NewMock(32)
	ctx := context.Background()
	a, _ := m.Embed(ctx, "alpha")
	b, _ := m.Embed(ctx, "omega")
	assert.NotEqual(t, a, b)
}

func TestMockEmbed_EmptyText(t *testing.T) {
	m := NewMock(8)
	vec, err := m.Embed(context.Background(), "")
	require.NoError(t, err)
	for _, v := range vec {
		assert.Equal(t, -1.0, v)
	}
}

func TestMockEmbed_DefaultDimension(t *testing.T) {
	m := NewMock(0)
	vec, err := m.Embed(context.Background(), "x")
	require.NoError(t, err)
	assert.Len(t, vec, DefaultMockDimension)
}

func TestMockChat_EmbedsQuestionAndContext(t *testing.T) {
	m := NewMock(16)
	user := "Context:\n# Document 1\nwatermelons are sweet\n\nQuestion:\nwhat is sweet?\n\nAnswer:"

	answer, err := m.Chat(context.Background(), "system prompt", user, 0.7)
	require.NoError(t, err)
	assert.Contains(t, answer, "what is sweet?")
	assert.Contains(t, answer, "watermelons are sweet")
}

func TestMockChat_Deterministic(t *testing.T) {
	m := NewMock(16)
	user := "Context:\nctx\n\nQuestion:\nq\n\nAnswer:"
	a, _ := m.Chat(context.Background(), "s", user, 0.1)
	b, _ := m.Chat(context.Background(), "s", user, 0.9)
	assert.Equal(t, a, b)
}

func TestNew_SelectsMockWithoutKey(t *testing.T) {
	p := New(Config{})
	assert.Equal(t, NameMock, p.Name())

	p = New(Config{APIKey: "your_api_key"})
	assert.Equal(t, NameMock, p.Name())

	p = New(Config{APIKey: "sk-real", Mock: true})
	assert.Equal(t, NameMock, p.Name())
}

func TestNew_SelectsOpenAIWithKey(t *testing.T) {
	p := New(Config{APIKey: "sk-real"})
	assert.Equal(t, NameOpenAI, p.Name())
	assert.NoError(t, p.Close())
}
