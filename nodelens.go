// Package nodelens inspects and edits single nodes of a JSON document
// addressed by structural paths. Edits are applied against a freshly parsed
// copy and the document is re-serialized whole, so everything outside the
// addressed node keeps its structure and key order.
package nodelens

import (
	"encoding/json"
	"fmt"

	gyaml "github.com/goccy/go-yaml"
)

// Document is a parsed JSON value. Objects decode into ordered maps so a
// read-modify-write cycle preserves the original key order.
type Document struct {
	root any
}

// Parse reads JSON text into a Document. Empty input yields an empty object
// document; any other input must be valid JSON.
func Parse(data []byte) (*Document, error) {
	if len(data) == 0 {
		return &Document{root: gyaml.MapSlice{}}, nil
	}
	// Strict validity gate: the ordered decoder below accepts a superset of
	// JSON, but an invalid document must never be rewritten.
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &ParseError{Err: err}
	}
	var root any
	if err := gyaml.UnmarshalWithOptions(data, &root, gyaml.UseOrderedMap()); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &Document{root: root}, nil
}

// Root returns the document's top-level value.
func (d *Document) Root() any { return d.root }

// Resolve walks path into the document, falling back to the root when the
// path does not resolve. See Resolve for the fallback contract.
func (d *Document) Resolve(path Path) any { return Resolve(d.root, path) }

// keyString renders an object key for comparison and output. JSON keys are
// strings, but ordered-map items carry them as any.
func keyString(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
