package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/contextlab/ragstore/pkg/types"
)

func TestBuildExtractiveAnswer_TopicOnly(t *testing.T) {
	docs := []types.RetrievalDocument{{Text: `{"topic":"watermelon"}`}}
	assert.Equal(t, "Recommended: watermelon", buildExtractiveAnswer(docs))
}

func TestBuildExtractiveAnswer_PlainTextTruncated(t *testing.T) {
	long := strings.Repeat("水", extractiveSnippetLimit+50)
	docs := []types.RetrievalDocument{{Text: long}}

	got := buildExtractiveAnswer(docs)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Len(t, []rune(got), extractiveSnippetLimit+3)
}

func TestBuildExtractiveAnswer_ShortTextVerbatim(t *testing.T) {
	docs := []types.RetrievalDocument{{Text: "  just a sentence  "}}
	assert.Equal(t, "just a sentence", buildExtractiveAnswer(docs))
}

func TestBuildExtractiveAnswer_Empty(t *testing.T) {
	assert.Equal(t, UnknownAnswer, buildExtractiveAnswer(nil))
	assert.Equal(t, UnknownAnswer, buildExtractiveAnswer([]types.RetrievalDocument{{Text: "   "}}))
}

func TestBuildContext_NumbersAndMetadata(t *testing.T) {
	docs := []types.RetrievalDocument{
		{Text: "first", Metadata: map[string]any{"source": "a"}},
		{Text: "second"},
	}
	got := buildContext(docs)
	assert.Equal(t, "# Document 1\nfirst\nmetadata: {\"source\":\"a\"}\n\n# Document 2\nsecond", got)
}
