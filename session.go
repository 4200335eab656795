package nodelens

import (
	"github.com/brunoga/deep"
	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store supplies the authoritative document text and receives rewritten text
// together with an unsaved-changes flag. Implementations own persistence and
// change notification; the core only reads and atomically replaces whole
// documents.
type Store interface {
	DocumentText() []byte
	SetDocumentText(text []byte, dirty bool)
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(log *zap.Logger) SessionOption {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithEditOptions forwards options to the ApplyEdits calls the session makes.
func WithEditOptions(opts ...EditOption) SessionOption {
	return func(s *Session) { s.editOpts = append(s.editOpts, opts...) }
}

// Session owns the transient working copy of a node's rows while an edit
// panel is open. Edits accumulate in the copy and reach the document only on
// Save; Cancel restores the copy from the node's authoritative rows. One
// session is active per node at a time and everything runs on the caller's
// goroutine, so there is no locking here.
type Session struct {
	store    Store
	node     Node
	rows     []Row
	editing  bool
	log      *zap.Logger
	editOpts []EditOption
}

// NewSession opens an edit session over node. The node's rows are deep-copied
// so edits to nested values cannot leak into the node before a save.
func NewSession(store Store, node Node, opts ...SessionOption) *Session {
	s := &Session{store: store, node: node, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.rows = copyRows(node.Rows)
	return s
}

func copyRows(rows []Row) []Row {
	out, err := deep.Copy(rows)
	if err != nil {
		// Row values decoded from JSON always copy; anything else falls back
		// to a fresh slice sharing the values.
		out = append([]Row(nil), rows...)
	}
	return out
}

// Node returns the session's node.
func (s *Session) Node() Node { return s.node }

// Rows returns the working copy of the node's rows.
func (s *Session) Rows() []Row { return s.rows }

// Editing reports whether the working copy has pending edits.
func (s *Session) Editing() bool { return s.editing }

// SetRow replaces the working row at index i, keeping its stable identity.
func (s *Session) SetRow(i int, row Row) {
	if i < 0 || i >= len(s.rows) {
		return
	}
	row.ID = s.rows[i].ID
	s.rows[i] = row
	s.editing = true
}

// AddRow appends a new working row.
func (s *Session) AddRow(row Row) {
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	s.rows = append(s.rows, row)
	s.editing = true
}

// Normalize renders the node's authoritative rows in their canonical display
// form.
func (s *Session) Normalize() string { return Normalize(s.node.Rows) }

// Locator renders the node's path.
func (s *Session) Locator() string { return s.node.Path.Locator() }

// Preview returns the document text before and after the pending edit,
// without committing anything.
func (s *Session) Preview() (before, after []byte, err error) {
	before = s.store.DocumentText()
	after, err = ApplyEdits(before, s.node.Path, s.node.Rows, s.rows, s.editOpts...)
	if err != nil {
		return nil, nil, err
	}
	return before, after, nil
}

// MergePatch summarizes the pending edit as an RFC 7386 merge patch against
// the current document.
func (s *Session) MergePatch() ([]byte, error) {
	before, after, err := s.Preview()
	if err != nil {
		return nil, err
	}
	if len(before) == 0 {
		before = []byte("{}")
	}
	return jsonpatch.CreateMergePatch(before, after)
}

// Save applies the working rows to the document and writes the result back
// through the store with the unsaved-changes flag set, leaving edit mode. On
// failure nothing is written, the session stays in edit mode, and the
// document store is untouched.
func (s *Session) Save() error {
	text, err := ApplyEdits(s.store.DocumentText(), s.node.Path, s.node.Rows, s.rows, s.editOpts...)
	if err != nil {
		s.log.Warn("node edit not applied",
			zap.String("node", s.node.ID),
			zap.String("path", s.Locator()),
			zap.Error(err))
		return err
	}
	s.store.SetDocumentText(text, true)
	if node, err := NodeAt(text, s.node.Path); err == nil {
		s.node.Rows = node.Rows
	} else {
		s.node.Rows = copyRows(s.rows)
	}
	s.rows = copyRows(s.node.Rows)
	s.editing = false
	s.log.Info("node edit applied",
		zap.String("node", s.node.ID),
		zap.String("path", s.Locator()),
		zap.Int("rows", len(s.rows)))
	return nil
}

// Cancel discards the working copy and restores it from the node's
// authoritative rows. The document is unaffected.
func (s *Session) Cancel() {
	s.rows = copyRows(s.node.Rows)
	s.editing = false
}
