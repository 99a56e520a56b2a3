package types

import (
	"errors"
	"fmt"
)

// Domain errors surfaced unmodified to callers. The engine performs no
// internal retry or partial-failure recovery.
var (
	// ErrInvalidFormat indicates the persisted store document failed
	// version or shape validation on load. The store is treated as
	// corrupt, never silently discarded.
	ErrInvalidFormat = errors.New("invalid vector store format")

	// ErrMalformedResponse indicates the provider returned success but
	// an unusable body shape.
	ErrMalformedResponse = errors.New("malformed provider response")
)

// DimensionMismatchError is raised on ingest or query when a freshly
// computed embedding's width disagrees with the store's established
// dimension. Both widths are carried so the caller can decide whether
// to rebuild the store.
type DimensionMismatchError struct {
	Store int
	Got   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: store=%d, got=%d", e.Store, e.Got)
}

// RequestError reports a provider-side transport or upstream failure,
// identified by the operation ("embeddings" or "chat") and the upstream
// HTTP status.
type RequestError struct {
	Op     string
	Status int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s request failed: status %d", e.Op, e.Status)
}
