package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

// FileBackend stores each key as one file under a root directory.
type FileBackend struct {
	root string
}

// NewFileBackend creates a file backend rooted at dir, creating the
// directory if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &FileBackend{root: dir}, nil
}

// Get implements Backend.
func (f *FileBackend) Get(_ context.Context, key string) (string, error) {
	data, err := os.ReadFile(f.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read %q: %w", key, err)
	}
	return string(data), nil
}

// Put implements Backend.
func (f *FileBackend) Put(_ context.Context, key, value string) error {
	if err := os.WriteFile(f.pathFor(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// Delete implements Backend.
func (f *FileBackend) Delete(_ context.Context, key string) error {
	err := os.Remove(f.pathFor(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Close implements Backend.
func (f *FileBackend) Close() error {
	return nil
}

// pathFor maps a key onto a safe file name under the root. Characters
// outside [a-zA-Z0-9_.-] collapse to underscores.
func (f *FileBackend) pathFor(key string) string {
	return filepath.Join(f.root, unsafeKeyChars.ReplaceAllString(key, "_"))
}
