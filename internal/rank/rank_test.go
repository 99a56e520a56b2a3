package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine_IdenticalVectors(t *testing.T) {
	v := []float64{0.5, -0.25, 1.0}
	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
}

func TestCosine_OrthogonalUnitVectors(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{0, 1}
	assert.InDelta(t, 0.0, Cosine(a, b), 1e-9)
}

func TestCosine_OppositeVectors(t *testing.T) {
	a := []float64{1, 1}
	b := []float64{-1, -1}
	assert.InDelta(t, -1.0, Cosine(a, b), 1e-9)
}

func TestCosine_ZeroVectorIsZeroNotNaN(t *testing.T) {
	zero := []float64{0, 0, 0}
	other := []float64{1, 2, 3}
	got := Cosine(zero, other)
	assert.Equal(t, 0.0, got)
	assert.Equal(t, 0.0, Cosine(zero, zero))
	assert.False(t, got != got, "must not be NaN")
}

func TestCosine_LengthMismatch(t *testing.T) {
	assert.Equal(t, 0.0, Cosine([]float64{1, 2}, []float64{1, 2, 3}))
}

func TestTokens_LatinRuns(t *testing.T) {
	tokens := Tokens("Hello, World! go2 x")
	assert.Equal(t, []string{"hello", "world", "go2"}, tokens)
}

func TestTokens_DropsShortAndDuplicates(t *testing.T) {
	tokens := Tokens("a go go b go")
	assert.Equal(t, []string{"go"}, tokens)
}

func TestTokens_CJKBigrams(t *testing.T) {
	tokens := Tokens("西瓜很甜")
	assert.Equal(t, []string{"西瓜", "瓜很", "很甜"}, tokens)
}

func TestTokens_SingleCJKCharDropped(t *testing.T) {
	// A length-1 CJK run produces a single-character token, which the
	// minimum-length filter then drops.
	assert.Empty(t, Tokens("瓜"))
}

func TestTokens_MixedScripts(t *testing.T) {
	tokens := Tokens("watermelon 西瓜 juice")
	assert.Contains(t, tokens, "watermelon")
	assert.Contains(t, tokens, "juice")
	assert.Contains(t, tokens, "西瓜")
}

func TestKeywordScore_FullMatch(t *testing.T) {
	assert.InDelta(t, 1.0, KeywordScore("brown fox", "the quick brown fox"), 1e-9)
}

func TestKeywordScore_PartialMatch(t *testing.T) {
	score := KeywordScore("brown cat", "the quick brown fox")
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestKeywordScore_NoQueryTokens(t *testing.T) {
	assert.Equal(t, 0.0, KeywordScore("!!! ??", "anything at all"))
	assert.Equal(t, 0.0, KeywordScore("", "anything"))
}

func TestKeywordScore_CJKOverlap(t *testing.T) {
	score := KeywordScore("西瓜", "西瓜很甜")
	require.InDelta(t, 1.0, score, 1e-9)
}
