// Package chunker splits raw text into overlapping fixed-size windows.
// Chunks are the atomic unit of embedding, deduplication, and retrieval,
// so the boundary policy here is load-bearing: re-ingesting the same
// text must reproduce the same chunks byte for byte.
package chunker
