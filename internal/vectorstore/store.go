package vectorstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/contextlab/ragstore/internal/storage"
	"github.com/contextlab/ragstore/pkg/types"
)

// Store addresses one vector store document under a fixed backend key.
//
// The per-key lock only serializes writers within this process; writers
// in separate processes must use distinct store keys.
type Store struct {
	backend storage.Backend
	key     string
	lock    *sync.Mutex
}

// New creates a store bound to key in the given backend.
func New(backend storage.Backend, key string) *Store {
	return &Store{
		backend: backend,
		key:     key,
		lock:    keyLocks.lockFor(key),
	}
}

// Key returns the backend key the store document lives under.
func (s *Store) Key() string {
	return s.key
}

// Lock acquires the store's key mutex. Callers mutating the document
// must hold it across the whole load-modify-save sequence.
func (s *Store) Lock() {
	s.lock.Lock()
}

// Unlock releases the store's key mutex.
func (s *Store) Unlock() {
	s.lock.Unlock()
}

// Load reads and validates the store document. A missing document
// returns (nil, nil); a present but unparsable or wrong-version
// document fails with types.ErrInvalidFormat.
func (s *Store) Load(ctx context.Context) (*types.StoreDocument, error) {
	raw, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load store %q: %w", s.key, err)
	}

	var doc types.StoreDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("parse store %q: %w", s.key, types.ErrInvalidFormat)
	}
	if doc.Version != types.StoreVersion || doc.Items == nil {
		return nil, fmt.Errorf("store %q version=%d: %w", s.key, doc.Version, types.ErrInvalidFormat)
	}

	return &doc, nil
}

// Save writes the whole document back under the store key.
func (s *Store) Save(ctx context.Context, doc *types.StoreDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store %q: %w", s.key, err)
	}
	if err := s.backend.Put(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("save store %q: %w", s.key, err)
	}
	return nil
}

// Delete removes the whole document. Deleting an absent store is not
// an error.
func (s *Store) Delete(ctx context.Context) error {
	if err := s.backend.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("delete store %q: %w", s.key, err)
	}
	return nil
}
