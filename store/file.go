package store

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// FileStore is a MemStore loaded from a file and flushed back to it.
type FileStore struct {
	MemStore
	path string
}

// Open reads path into a file-backed store.
func Open(path string, log *zap.Logger) (*FileStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	fs := &FileStore{path: path}
	fs.MemStore = *NewMemStore(data, log)
	return fs, nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string { return f.path }

// Flush writes the current text to disk and clears the unsaved-changes flag.
func (f *FileStore) Flush() error {
	text := append([]byte(nil), f.text...)
	if len(text) > 0 && text[len(text)-1] != '\n' {
		text = append(text, '\n')
	}
	if err := os.WriteFile(f.path, text, 0o644); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	f.dirty = false
	f.log.Info("document written",
		zap.String("path", f.path),
		zap.Int("bytes", len(text)))
	return nil
}
