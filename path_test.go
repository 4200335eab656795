package nodelens

import (
	"errors"
	"testing"
)

func TestLocatorRoot(t *testing.T) {
	if got := (Path{}).Locator(); got != "$" {
		t.Fatalf("empty path locator = %q, want %q", got, "$")
	}
	if got := (Path)(nil).Locator(); got != "$" {
		t.Fatalf("nil path locator = %q, want %q", got, "$")
	}
}

func TestLocatorSegments(t *testing.T) {
	p := Path{Key("customer"), Index(0)}
	want := `$["customer"][0]`
	if got := p.Locator(); got != want {
		t.Fatalf("locator = %q, want %q", got, want)
	}
}

func TestLocatorQuotesSpecialKeys(t *testing.T) {
	p := Path{Key(`a"b`)}
	want := `$["a\"b"]`
	if got := p.Locator(); got != want {
		t.Fatalf("locator = %q, want %q", got, want)
	}
}

func TestParseLocatorRoundTrip(t *testing.T) {
	for _, locator := range []string{
		"$",
		`$["customer"][0]`,
		`$["a"]["b"]["c"]`,
		`$[0][1][2]`,
		`$["a\"b"]`,
	} {
		p, err := ParseLocator(locator)
		if err != nil {
			t.Fatalf("ParseLocator(%q): %v", locator, err)
		}
		if got := p.Locator(); got != locator {
			t.Fatalf("round trip of %q gave %q", locator, got)
		}
	}
}

func TestParseLocatorDotShorthand(t *testing.T) {
	p, err := ParseLocator("$.customer[0].name")
	if err != nil {
		t.Fatalf("ParseLocator: %v", err)
	}
	want := `$["customer"][0]["name"]`
	if got := p.Locator(); got != want {
		t.Fatalf("locator = %q, want %q", got, want)
	}
}

func TestParseLocatorErrors(t *testing.T) {
	for _, locator := range []string{
		"",
		"customer",
		"$[",
		`$["a`,
		`$["a"`,
		"$[x]",
		"$[-1]",
		"$.",
	} {
		if _, err := ParseLocator(locator); err == nil {
			t.Fatalf("ParseLocator(%q) succeeded, want error", locator)
		}
	}
}

func TestResolveEmptyPathReturnsRoot(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	if got := Resolve(doc.Root(), nil); !sameValue(t, got, doc.Root()) {
		t.Fatalf("empty path did not resolve to root")
	}
}

func TestResolveDescends(t *testing.T) {
	doc := mustParse(t, `{"a":{"b":[10,20]}}`)
	got := Resolve(doc.Root(), Path{Key("a"), Key("b"), Index(1)})
	if text := valueText(got); text != "20" {
		t.Fatalf("resolved value = %q, want %q", text, "20")
	}
}

func TestResolveFallsBackToRoot(t *testing.T) {
	doc := mustParse(t, `{"a":{"b":1}}`)
	for _, path := range []Path{
		{Key("missing")},
		{Key("a"), Key("missing")},
		{Key("a"), Index(0)},
		{Index(5)},
	} {
		got := Resolve(doc.Root(), path)
		if !sameValue(t, got, doc.Root()) {
			t.Fatalf("path %s did not fall back to root", path.Locator())
		}
	}
}

func TestResolveStrictMissing(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	_, err := ResolveStrict(doc.Root(), Path{Key("missing")})
	if !errors.Is(err, ErrPathNotFound) {
		t.Fatalf("err = %v, want ErrPathNotFound", err)
	}
}

func mustParse(t *testing.T, text string) *Document {
	t.Helper()
	doc, err := Parse([]byte(text))
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return doc
}

// sameValue compares two resolved values by their serialized form; decoded
// container types are not directly comparable.
func sameValue(t *testing.T, a, b any) bool {
	t.Helper()
	av, err := MarshalValue(a, 0)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	bv, err := MarshalValue(b, 0)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(av) == string(bv)
}
