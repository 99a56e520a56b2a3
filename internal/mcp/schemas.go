package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// ingestTool returns the tool definition for rag_ingest
func ingestTool() mcp.Tool {
	return mcp.Tool{
		Name:        "rag_ingest",
		Description: "Chunk, embed and store text in the vector store. Re-ingesting the same text is a no-op.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Text to ingest",
				},
				"metadata": map[string]interface{}{
					"type":        "object",
					"description": "Optional metadata attached to every chunk of this text",
				},
				"chunk_size": map[string]interface{}{
					"type":        "integer",
					"description": "Chunk window size in characters",
					"minimum":     1,
				},
				"chunk_overlap": map[string]interface{}{
					"type":        "integer",
					"description": "Characters shared between adjacent chunks",
					"minimum":     0,
				},
			},
			Required: []string{"text"},
		},
	}
}

// queryTool returns the tool definition for rag_query
func queryTool() mcp.Tool {
	return mcp.Tool{
		Name:        "rag_query",
		Description: "Retrieve relevant documents for a question and optionally synthesize an answer",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question to answer from the stored documents",
				},
				"answer_mode": map[string]interface{}{
					"type":        "string",
					"description": "How to synthesize the answer: none returns documents only, extractive derives it from the top document, llm asks the chat model",
					"enum":        []string{"none", "extractive", "llm"},
					"default":     "llm",
				},
				"top_k": map[string]interface{}{
					"type":        "integer",
					"description": "Sets semantic, keyword and hybrid top-K at once",
					"minimum":     1,
				},
				"similarity_threshold": map[string]interface{}{
					"type":        "number",
					"description": "Minimum score a document needs to be retained (0.0-1.0)",
					"minimum":     0.0,
					"maximum":     1.0,
				},
				"strict": map[string]interface{}{
					"type":        "boolean",
					"description": "Filter on the semantic score alone instead of the hybrid score",
					"default":     false,
				},
			},
			Required: []string{"question"},
		},
	}
}

// statusTool returns the tool definition for rag_status
func statusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "rag_status",
		Description: "Report whether the vector store exists, its embedding dimension and item count",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// resetTool returns the tool definition for rag_reset
func resetTool() mcp.Tool {
	return mcp.Tool{
		Name:        "rag_reset",
		Description: "Delete the vector store document",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
