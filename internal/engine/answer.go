package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/contextlab/ragstore/pkg/types"
)

// UnknownAnswer is returned when no document survives retrieval and the
// answer mode still requires an answer.
const UnknownAnswer = "I don't know"

// DefaultSystemPrompt keeps the chat model grounded in the retrieved
// context instead of its own knowledge.
const DefaultSystemPrompt = "You are a retrieval-augmented assistant. " +
	"Answer the question using only the provided context. " +
	"If the context does not contain the answer, reply \"I don't know\"."

const extractiveSnippetLimit = 800

// buildContext renders the retained documents as numbered blocks for the
// chat prompt. Metadata rides along as one JSON line when present.
func buildContext(docs []types.RetrievalDocument) string {
	blocks := make([]string, 0, len(docs))
	for i, doc := range docs {
		block := fmt.Sprintf("# Document %d\n%s", i+1, doc.Text)
		if len(doc.Metadata) > 0 {
			if meta, err := json.Marshal(doc.Metadata); err == nil {
				block += "\nmetadata: " + string(meta)
			}
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}

// buildUserPrompt assembles the single user message sent to the chat
// model. The mock provider parses these labels back out, so the layout
// is load-bearing.
func buildUserPrompt(contextText, question string) string {
	return fmt.Sprintf("Context:\n%s\n\nQuestion:\n%s\n\nAnswer:", contextText, question)
}

// buildExtractiveAnswer derives an answer from the top document without
// a chat call. A document whose text is a JSON object with topic or
// description fields becomes a short recommendation; anything else is
// returned verbatim, truncated to a readable length.
func buildExtractiveAnswer(docs []types.RetrievalDocument) string {
	if len(docs) == 0 {
		return UnknownAnswer
	}
	text := strings.TrimSpace(docs[0].Text)
	if text == "" {
		return UnknownAnswer
	}

	var record struct {
		Topic       string `json:"topic"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal([]byte(text), &record); err == nil {
		switch {
		case record.Topic != "" && record.Description != "":
			return fmt.Sprintf("Recommended: %s\n\nReason: %s", record.Topic, record.Description)
		case record.Topic != "":
			return fmt.Sprintf("Recommended: %s", record.Topic)
		}
	}

	runes := []rune(text)
	if len(runes) > extractiveSnippetLimit {
		return string(runes[:extractiveSnippetLimit]) + "..."
	}
	return text
}
