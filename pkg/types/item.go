package types

import "time"

// StoreVersion is the only persisted document format version understood
// by this engine. Loading any other version fails with ErrInvalidFormat.
const StoreVersion = 1

// StoredItem is one ingested chunk. Items are created only by ingestion
// and never mutated afterwards.
type StoredItem struct {
	ID          string         `json:"id"`
	Text        string         `json:"text"`
	Metadata    map[string]any `json:"metadata"`
	Embedding   []float64      `json:"embedding"`
	CreatedAt   time.Time      `json:"createdAt"`
	ContentHash string         `json:"contentHash"`
}

// StoreDocument is the whole persisted vector store: a versioned,
// dimension-checked, insertion-ordered collection of items. It is read
// and written as a single JSON value through the storage backend.
//
// Dimension 0 means unset; the first ingested embedding defines it.
type StoreDocument struct {
	Version   int          `json:"version"`
	Dimension int          `json:"dimension"`
	Items     []StoredItem `json:"items"`
}

// NewStoreDocument returns an empty store document with an unset dimension.
func NewStoreDocument() *StoreDocument {
	return &StoreDocument{
		Version:   StoreVersion,
		Dimension: 0,
		Items:     []StoredItem{},
	}
}
