// Package mcp exposes the retrieval engine as an MCP server over stdio.
//
// Four tools are registered:
//
//	rag_ingest  chunk and embed text into the vector store
//	rag_query   hybrid retrieval with optional answer synthesis
//	rag_status  report store existence, dimension and item count
//	rag_reset   delete the vector store document
//
// Tool responses are indented JSON wrapped in a text content block.
package mcp
