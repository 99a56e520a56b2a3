// Package storage provides the pluggable key-value backend the vector
// store persists through. Backends hold opaque text values under string
// keys and are interchangeable: an in-memory map, one file per key, a
// SQLite kv table, or a PostgreSQL kv table, selected from a DSN.
package storage
