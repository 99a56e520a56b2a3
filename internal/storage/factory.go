package storage

import (
	"fmt"
	"strings"
)

// Open selects a backend from a DSN:
//
//	""            in-memory map
//	"memory"      in-memory map
//	"postgres://" PostgreSQL kv table (also "postgresql://")
//	"file://DIR"  one file per key under DIR
//	anything else SQLite database at that path
func Open(dsn string) (Backend, error) {
	switch {
	case dsn == "" || dsn == "memory":
		return NewMemoryBackend(), nil
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		return NewPostgresBackend(dsn)
	case strings.HasPrefix(dsn, "file://"):
		return NewFileBackend(strings.TrimPrefix(dsn, "file://"))
	default:
		return NewSQLiteBackend(dsn)
	}
}

// Describe names the backend kind a DSN resolves to, for logs and
// health reporting.
func Describe(dsn string) string {
	switch {
	case dsn == "" || dsn == "memory":
		return "memory"
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		return "postgres"
	case strings.HasPrefix(dsn, "file://"):
		return "file"
	default:
		return fmt.Sprintf("sqlite (%s driver)", DriverName)
	}
}
