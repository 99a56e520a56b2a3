// Package engine implements the retrieval pipeline over a vector store:
// idempotent chunk ingestion, hybrid semantic plus keyword retrieval, and
// answer synthesis in none, extractive, and llm modes.
package engine
