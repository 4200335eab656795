package nodelens

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	gyaml "github.com/goccy/go-yaml"
)

// Segment addresses one step into a document: an object key or an array
// index. Exactly one of Field and Index is set.
type Segment struct {
	Field *string
	Index *int
}

// Key returns an object-key segment.
func Key(k string) Segment { return Segment{Field: &k} }

// Index returns an array-index segment.
func Index(i int) Segment { return Segment{Index: &i} }

// Path is a root-relative sequence of segments. The empty path addresses the
// document root.
type Path []Segment

// Locator renders the path as a query-style locator string: "$" for the
// root, then one bracketed step per segment, e.g. $["customer"][0].
func (p Path) Locator() string {
	if len(p) == 0 {
		return "$"
	}
	var b strings.Builder
	b.WriteByte('$')
	for _, seg := range p {
		switch {
		case seg.Field != nil:
			q, _ := json.Marshal(*seg.Field)
			b.WriteByte('[')
			b.Write(q)
			b.WriteByte(']')
		case seg.Index != nil:
			fmt.Fprintf(&b, "[%d]", *seg.Index)
		}
	}
	return b.String()
}

// ParseLocator parses a locator string back into a Path. It accepts the
// bracketed form produced by Locator plus a bare ".field" shorthand, so
// $["customer"][0] and $.customer[0] address the same node.
func ParseLocator(s string) (Path, error) {
	if len(s) == 0 || s[0] != '$' {
		return nil, fmt.Errorf("nodelens: locator %q should start with '$'", s)
	}
	var p Path
	rest := s[1:]
	for len(rest) > 0 {
		switch rest[0] {
		case '.':
			rest = rest[1:]
			end := strings.IndexAny(rest, ".[")
			field := rest
			if end >= 0 {
				field, rest = rest[:end], rest[end:]
			} else {
				rest = ""
			}
			if field == "" {
				return nil, fmt.Errorf("nodelens: empty field in locator %q", s)
			}
			p = append(p, Key(field))
		case '[':
			rest = rest[1:]
			if len(rest) == 0 {
				return nil, fmt.Errorf("nodelens: unterminated '[' in locator %q", s)
			}
			if rest[0] == '"' {
				j := 1
				for j < len(rest) && rest[j] != '"' {
					if rest[j] == '\\' {
						j++
					}
					j++
				}
				if j >= len(rest) {
					return nil, fmt.Errorf("nodelens: unterminated string in locator %q", s)
				}
				field, err := strconv.Unquote(rest[:j+1])
				if err != nil {
					return nil, fmt.Errorf("nodelens: bad key in locator %q: %w", s, err)
				}
				rest = rest[j+1:]
				if len(rest) == 0 || rest[0] != ']' {
					return nil, fmt.Errorf("nodelens: expected ']' in locator %q", s)
				}
				rest = rest[1:]
				p = append(p, Key(field))
				continue
			}
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("nodelens: expected ']' in locator %q", s)
			}
			idx, err := strconv.Atoi(rest[:end])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("nodelens: bad index %q in locator %q", rest[:end], s)
			}
			rest = rest[end+1:]
			p = append(p, Index(idx))
		default:
			return nil, fmt.Errorf("nodelens: expected '.' or '[' in locator %q", s)
		}
	}
	return p, nil
}

// Resolve walks path into root one segment at a time: object key lookup for
// field segments, array index lookup for index segments. An empty path
// returns root. A segment that does not resolve also returns root, which
// keeps a save against a stale path from failing outright; use ResolveStrict
// to surface the miss instead.
func Resolve(root any, path Path) any {
	v, err := ResolveStrict(root, path)
	if err != nil {
		return root
	}
	return v
}

// ResolveStrict is the resolvable-path-or-fail variant of Resolve. The error
// wraps ErrPathNotFound and names the locator.
func ResolveStrict(root any, path Path) (any, error) {
	cur := root
	for _, seg := range path {
		next, ok := descend(cur, seg)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path.Locator())
		}
		cur = next
	}
	return cur, nil
}

func descend(v any, seg Segment) (any, bool) {
	switch {
	case seg.Field != nil:
		switch t := v.(type) {
		case gyaml.MapSlice:
			for _, item := range t {
				if keyString(item.Key) == *seg.Field {
					return item.Value, true
				}
			}
		case map[string]any:
			val, ok := t[*seg.Field]
			return val, ok
		}
	case seg.Index != nil:
		if arr, ok := v.([]any); ok {
			if i := *seg.Index; 0 <= i && i < len(arr) {
				return arr[i], true
			}
		}
	}
	return nil, false
}
