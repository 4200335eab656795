package nodelens

import (
	"errors"
	"fmt"
)

// ErrPathNotFound is reported by strict path resolution when a segment does
// not exist in the document.
var ErrPathNotFound = errors.New("nodelens: path not found")

// ParseError reports that document text is not valid JSON. When it occurs no
// edit has been applied and the document store is left untouched.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("nodelens: document is not valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
