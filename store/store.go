// Package store provides document stores for the nodelens core: an in-memory
// store and a file-backed store used by the CLI. Both standardize JSON with
// comments and trailing commas at the boundary, so the core only ever sees
// plain JSON (valid or not).
package store

import (
	"github.com/tailscale/hujson"
	"go.uber.org/zap"
)

// MemStore holds a document text and its unsaved-changes flag in memory. All
// access happens on a single goroutine, matching the editor's event loop; the
// document is replaced whole, never mutated incrementally.
type MemStore struct {
	text  []byte
	dirty bool
	log   *zap.Logger
}

// NewMemStore wraps data in a store. JSONC input is standardized; anything
// hujson rejects is kept as-is for the core to report. log may be nil.
func NewMemStore(data []byte, log *zap.Logger) *MemStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &MemStore{text: standardize(data), log: log}
}

func (m *MemStore) DocumentText() []byte { return m.text }

func (m *MemStore) SetDocumentText(text []byte, dirty bool) {
	m.text = text
	m.dirty = dirty
	m.log.Debug("document replaced",
		zap.Int("bytes", len(text)),
		zap.Bool("dirty", dirty))
}

// Dirty reports whether the document has unsaved changes.
func (m *MemStore) Dirty() bool { return m.dirty }

func standardize(data []byte) []byte {
	std, err := hujson.Standardize(data)
	if err != nil {
		return data
	}
	return std
}
