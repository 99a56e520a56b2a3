// Package vectorstore persists the versioned vector store document as
// one JSON value in a storage backend. The document is always read and
// written whole; a per-key mutex serializes load-modify-save sequences
// so concurrent in-process callers cannot lose updates.
package vectorstore
