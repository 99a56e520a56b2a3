package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/contextlab/ragstore/internal/engine"
	"github.com/contextlab/ragstore/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
)

// handleIngest handles the rag_ingest tool invocation
func (s *Server) handleIngest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	text, ok := args["text"].(string)
	if !ok || text == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "text parameter is required", map[string]interface{}{
			"param":  "text",
			"reason": "missing or empty",
		})
	}

	metadata, _ := args["metadata"].(map[string]interface{})
	var opts engine.IngestOptions
	if v, ok := args["chunk_size"].(float64); ok {
		size := int(v)
		opts.ChunkSize = &size
	}
	if v, ok := args["chunk_overlap"].(float64); ok {
		overlap := int(v)
		opts.ChunkOverlap = &overlap
	}

	result, err := s.engine.Ingest(ctx, text, metadata, opts)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "ingest failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"added":   result.Added,
		"skipped": result.Skipped,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleQuery handles the rag_query tool invocation
func (s *Server) handleQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	question, ok := args["question"].(string)
	if !ok || question == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "question parameter is required", map[string]interface{}{
			"param":  "question",
			"reason": "missing or empty",
		})
	}

	var opts types.QueryOptions
	opts.AnswerMode = getStringDefault(args, "answer_mode", "")
	if v, ok := args["top_k"].(float64); ok {
		k := int(v)
		opts.TopK = &k
	}
	if v, ok := args["similarity_threshold"].(float64); ok {
		opts.SimilarityThreshold = &v
	}
	if v, ok := args["strict"].(bool); ok {
		opts.Strict = &v
	}

	result, err := s.engine.Query(ctx, question, opts)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "query failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"documents":  result.Documents,
		"usedConfig": result.UsedConfig,
	}
	if result.Answer != "" {
		response["answer"] = result.Answer
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleStatus handles the rag_status tool invocation
func (s *Server) handleStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := s.engine.Status(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "status failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"exists":    status.Exists,
		"dimension": status.Dimension,
		"items":     status.Items,
		"storeKey":  status.StoreKey,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleReset handles the rag_reset tool invocation
func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.engine.Reset(ctx); err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "reset failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{"ok": true})), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
