package nodelens

import (
	"encoding/json"
	"testing"
)

func TestMarshalPreservesKeyOrder(t *testing.T) {
	in := `{"z":1,"a":{"y":true,"b":null},"m":[1,"two"]}`
	doc := mustParse(t, in)
	out, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{
  "z": 1,
  "a": {
    "y": true,
    "b": null
  },
  "m": [
    1,
    "two"
  ]
}`
	if string(out) != want {
		t.Fatalf("Marshal output:\n%s\nwant:\n%s", out, want)
	}
}

func TestMarshalScalarRoots(t *testing.T) {
	cases := []struct{ in, want string }{
		{`"x"`, `"x"`},
		{`42`, `42`},
		{`true`, `true`},
		{`null`, `null`},
		{`{}`, `{}`},
		{`[]`, `[]`},
	}
	for _, c := range cases {
		doc := mustParse(t, c.in)
		out, err := doc.Marshal()
		if err != nil {
			t.Fatalf("Marshal(%q): %v", c.in, err)
		}
		if string(out) != c.want {
			t.Fatalf("Marshal(%q) = %q, want %q", c.in, out, c.want)
		}
	}
}

func TestMarshalIndentWidth(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	out, err := doc.MarshalIndent(4)
	if err != nil {
		t.Fatalf("MarshalIndent: %v", err)
	}
	want := "{\n    \"a\": 1\n}"
	if string(out) != want {
		t.Fatalf("MarshalIndent = %q, want %q", out, want)
	}
}

func TestMarshalEscapesStrings(t *testing.T) {
	doc := mustParse(t, `{"a":"line\nbreak \"quoted\""}`)
	out, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !json.Valid(out) {
		t.Fatalf("output is not valid JSON:\n%s", out)
	}
	var back map[string]any
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if back["a"] != "line\nbreak \"quoted\"" {
		t.Fatalf("round trip value = %q", back["a"])
	}
}

func TestMarshalValueUnorderedMapIsDeterministic(t *testing.T) {
	v := map[string]any{"b": 2, "a": 1}
	out, err := MarshalValue(v, 2)
	if err != nil {
		t.Fatalf("MarshalValue: %v", err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": 2\n}"
	if string(out) != want {
		t.Fatalf("MarshalValue = %q, want %q", out, want)
	}
}
