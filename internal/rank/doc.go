// Package rank provides the scoring primitives for hybrid retrieval:
// cosine similarity over embeddings and token-overlap keyword scoring.
package rank
