package nodelens

import (
	"sort"
	"strconv"

	gyaml "github.com/goccy/go-yaml"
)

// EditOption configures ApplyEdits.
type EditOption func(*editConfig)

type editConfig struct {
	strict bool
	indent int
}

// WithStrictPaths makes an unresolvable edit path an error instead of
// silently retargeting the document root.
func WithStrictPaths() EditOption {
	return func(c *editConfig) { c.strict = true }
}

// WithIndent overrides the 2-space indentation of the rewritten document.
func WithIndent(n int) EditOption {
	return func(c *editConfig) { c.indent = n }
}

// ApplyEdits resolves the object addressed by path inside data, writes the
// edited rows into it against their pre-edit originals, and returns the whole
// document re-serialized. Empty data is treated as an empty object; any other
// invalid input fails with *ParseError and nothing else. Rows are matched to
// their originals by ID when both sides carry one, by position otherwise.
//
// Per row: keyless rows are skipped, the value is coerced to the row's
// declared type, and a changed key removes the pre-edit key before the new
// one is written, so a rename never leaves the stale key behind.
func ApplyEdits(data []byte, path Path, original, edited []Row, opts ...EditOption) ([]byte, error) {
	cfg := editConfig{indent: 2}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if _, err := ResolveStrict(doc.root, path); err != nil {
		if cfg.strict {
			return nil, err
		}
		path = nil // stale path: the edit lands on the root
	}

	doc.root = setAtPath(doc.root, path, func(target any) any {
		return applyRows(target, original, edited)
	})
	return doc.MarshalIndent(cfg.indent)
}

// setAtPath rebuilds the containers along path so the updated target value is
// reattached to its parent; resolving first and mutating the result would
// lose appends made to a nested slice.
func setAtPath(v any, path Path, fn func(any) any) any {
	if len(path) == 0 {
		return fn(v)
	}
	seg := path[0]
	switch t := v.(type) {
	case gyaml.MapSlice:
		if seg.Field != nil {
			for i := range t {
				if keyString(t[i].Key) == *seg.Field {
					t[i].Value = setAtPath(t[i].Value, path[1:], fn)
					return t
				}
			}
		}
	case map[string]any:
		if seg.Field != nil {
			if sub, ok := t[*seg.Field]; ok {
				t[*seg.Field] = setAtPath(sub, path[1:], fn)
			}
			return t
		}
	case []any:
		if seg.Index != nil {
			if i := *seg.Index; 0 <= i && i < len(t) {
				t[i] = setAtPath(t[i], path[1:], fn)
			}
			return t
		}
	}
	return v
}

func applyRows(target any, original, edited []Row) any {
	tgt, ok := target.(gyaml.MapSlice)
	if !ok {
		if m, isMap := target.(map[string]any); isMap {
			tgt = orderedFromMap(m)
		} else if !hasKeyedRow(edited) {
			// Nothing to write into a non-object target; leave it alone.
			return target
		} else {
			// Writing keyed fields into a scalar or array replaces it with an
			// object, the same way a missing mapping is created on demand.
			tgt = gyaml.MapSlice{}
		}
	}
	for i, row := range edited {
		if row.Key == "" {
			continue
		}
		orig := matchOriginal(original, row, i)
		val := coerce(row, orig)
		if orig != nil && orig.Key != "" && orig.Key != row.Key {
			tgt = deleteKey(tgt, orig.Key)
		}
		tgt = setKey(tgt, row.Key, val)
	}
	return tgt
}

// matchOriginal finds the pre-edit row for an edited row: by stable identity
// when the edited row carries one, by position otherwise. An identified row
// with no identified original is a new field.
func matchOriginal(original []Row, edited Row, idx int) *Row {
	if edited.ID != "" {
		for i := range original {
			if original[i].ID == edited.ID {
				return &original[i]
			}
		}
		for i := range original {
			if original[i].ID != "" {
				return nil
			}
		}
	}
	if idx < len(original) {
		return &original[idx]
	}
	return nil
}

// coerce interprets an edited value according to the row's declared type.
// Container rows pass their value through untouched; they are display
// placeholders and never edited as leaf values.
func coerce(row Row, original *Row) any {
	switch row.Type {
	case NullType:
		return nil
	case BoolType:
		return valueText(row.Value) == "true"
	case NumberType:
		text := valueText(row.Value)
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f
		}
		if original != nil {
			// Unparseable number: keep the pre-edit value instead of NaN.
			return original.Value
		}
		return row.Value
	case ObjectType, ArrayType:
		return row.Value
	default:
		return valueText(row.Value)
	}
}

func hasKeyedRow(rows []Row) bool {
	for _, row := range rows {
		if row.Key != "" {
			return true
		}
	}
	return false
}

func deleteKey(ms gyaml.MapSlice, key string) gyaml.MapSlice {
	out := make(gyaml.MapSlice, 0, len(ms))
	for _, item := range ms {
		if keyString(item.Key) != key {
			out = append(out, item)
		}
	}
	return out
}

func setKey(ms gyaml.MapSlice, key string, val any) gyaml.MapSlice {
	for i := range ms {
		if keyString(ms[i].Key) == key {
			ms[i].Value = val
			return ms
		}
	}
	return append(ms, gyaml.MapItem{Key: key, Value: val})
}

func orderedFromMap(m map[string]any) gyaml.MapSlice {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ms := make(gyaml.MapSlice, 0, len(m))
	for _, k := range keys {
		ms = append(ms, gyaml.MapItem{Key: k, Value: m[k]})
	}
	return ms
}
