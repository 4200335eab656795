package nodelens

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	gyaml "github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

// FieldType tags how a row's raw value is interpreted and rendered. Only the
// leaf types are editable; array and object rows are display placeholders.
type FieldType int

const (
	NullType FieldType = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
)

func (t FieldType) String() string {
	s, ok := map[FieldType]string{
		NullType:   "null",
		NumberType: "number",
		StringType: "string",
		BoolType:   "boolean",
		ObjectType: "object",
		ArrayType:  "array",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t FieldType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *FieldType) UnmarshalText(d []byte) error {
	tt, ok := map[string]FieldType{
		"null":    NullType,
		"number":  NumberType,
		"string":  StringType,
		"boolean": BoolType,
		"object":  ObjectType,
		"array":   ArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("nodelens: unrecognized field type %q", d)
	}
	*t = tt
	return nil
}

// IsLeaf reports whether the type holds a direct scalar value rather than a
// container.
func (t FieldType) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

// TypeOf tags a decoded JSON value.
func TypeOf(v any) FieldType {
	switch v.(type) {
	case nil:
		return NullType
	case bool:
		return BoolType
	case string:
		return StringType
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return NumberType
	case gyaml.MapSlice, map[string]any:
		return ObjectType
	case []any:
		return ArrayType
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return ArrayType
	case reflect.Map, reflect.Struct:
		return ObjectType
	default:
		return StringType
	}
}

// Row is one editable field of a node: key, raw value, declared type. A row
// with an empty key represents an unnamed value, i.e. the node's value is
// itself a scalar. ID is a stable identity assigned when the row list is
// built so edits can be matched back to it even after reordering.
type Row struct {
	ID    string
	Key   string
	Value any
	Type  FieldType
}

// Text returns the row value's textual form, the way it appears in an edit
// field: strings unquoted, other scalars as their literal text.
func (r Row) Text() string {
	return valueText(r.Value)
}

// RowsOf flattens a node value into its field rows. Objects yield one row
// per field; any other value is a single unnamed row.
func RowsOf(v any) []Row {
	switch t := v.(type) {
	case gyaml.MapSlice:
		rows := make([]Row, 0, len(t))
		for _, item := range t {
			rows = append(rows, Row{
				ID:    uuid.NewString(),
				Key:   keyString(item.Key),
				Value: item.Value,
				Type:  TypeOf(item.Value),
			})
		}
		return rows
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		rows := make([]Row, 0, len(t))
		for _, k := range keys {
			rows = append(rows, Row{
				ID:    uuid.NewString(),
				Key:   k,
				Value: t[k],
				Type:  TypeOf(t[k]),
			})
		}
		return rows
	}
	return []Row{{ID: uuid.NewString(), Value: v, Type: TypeOf(v)}}
}

// Normalize converts a row list into its canonical display form: "{}" for an
// empty list, the bare value text for a single unnamed row, otherwise an
// indented JSON object holding only the keyed scalar rows. Container rows
// and keyless rows are dropped from the display, not from the node.
func Normalize(rows []Row) string {
	if len(rows) == 0 {
		return "{}"
	}
	if len(rows) == 1 && rows[0].Key == "" {
		return valueText(rows[0].Value)
	}
	obj := gyaml.MapSlice{}
	for _, row := range rows {
		if !row.Type.IsLeaf() || row.Key == "" {
			continue
		}
		obj = append(obj, gyaml.MapItem{Key: row.Key, Value: row.Value})
	}
	out, err := MarshalValue(obj, 2)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// valueText renders a value the way a text input would hold it: strings as
// themselves, other scalars as their JSON literal. Containers hold ordered-map
// nodes the standard encoder would render as Key/Value structs, so they go
// through the order-preserving serializer.
func valueText(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case gyaml.MapSlice, map[string]any, []any:
		out, err := MarshalValue(t, 2)
		if err != nil {
			return "{}"
		}
		return string(out)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}
