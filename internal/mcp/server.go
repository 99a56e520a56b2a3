package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/contextlab/ragstore/internal/engine"
)

const (
	// ServerName is the MCP server name
	ServerName = "ragstore"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp    *server.MCPServer
	engine *engine.Engine
}

// NewServer creates a new MCP server over the given engine
func NewServer(e *engine.Engine) *Server {
	s := &Server{
		mcp:    server.NewMCPServer(ServerName, ServerVersion),
		engine: e,
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(ingestTool(), s.handleIngest)
	s.mcp.AddTool(queryTool(), s.handleQuery)
	s.mcp.AddTool(statusTool(), s.handleStatus)
	s.mcp.AddTool(resetTool(), s.handleReset)
}
