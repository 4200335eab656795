package nodelens

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	gyaml "github.com/goccy/go-yaml"
)

// Marshal re-serializes the document with 2-space indentation.
func (d *Document) Marshal() ([]byte, error) {
	return d.MarshalIndent(2)
}

// MarshalIndent re-serializes the document with the given indent width,
// keeping object keys in their decoded order.
func (d *Document) MarshalIndent(indent int) ([]byte, error) {
	return MarshalValue(d.root, indent)
}

// MarshalValue serializes any value produced by Parse or Resolve as indented
// JSON. The standard encoder cannot keep ordered-map keys in order, so
// containers are walked here and only leaves are delegated to it.
func MarshalValue(v any, indent int) ([]byte, error) {
	if indent < 0 {
		indent = 0
	}
	var buf bytes.Buffer
	if err := appendValue(&buf, v, "", strings.Repeat(" ", indent)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendValue(buf *bytes.Buffer, v any, pad, indent string) error {
	switch t := v.(type) {
	case gyaml.MapSlice:
		return appendObject(buf, t, pad, indent)
	case map[string]any:
		// Unordered input, e.g. values built by callers with the standard
		// decoder. Sorted for deterministic output.
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		ms := make(gyaml.MapSlice, 0, len(t))
		for _, k := range keys {
			ms = append(ms, gyaml.MapItem{Key: k, Value: t[k]})
		}
		return appendObject(buf, ms, pad, indent)
	case []any:
		if len(t) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		inner := pad + indent
		for i, item := range t {
			buf.WriteString(inner)
			if err := appendValue(buf, item, inner, indent); err != nil {
				return err
			}
			if i < len(t)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(pad)
		buf.WriteByte(']')
		return nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}
}

func appendObject(buf *bytes.Buffer, ms gyaml.MapSlice, pad, indent string) error {
	if len(ms) == 0 {
		buf.WriteString("{}")
		return nil
	}
	buf.WriteString("{\n")
	inner := pad + indent
	for i, item := range ms {
		buf.WriteString(inner)
		key, err := json.Marshal(keyString(item.Key))
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteString(": ")
		if err := appendValue(buf, item.Value, inner, indent); err != nil {
			return err
		}
		if i < len(ms)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(pad)
	buf.WriteByte('}')
	return nil
}
