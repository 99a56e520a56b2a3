// Package types defines the shared data model for the RAG engine:
// stored items, the persisted store document, retrieval documents,
// query configuration, and the error taxonomy surfaced to callers.
package types
