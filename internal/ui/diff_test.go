package ui

import (
	"strings"
	"testing"
)

func TestRenderDiff(t *testing.T) {
	before := "{\n  \"a\": 1\n}"
	after := "{\n  \"a\": 2\n}"
	diff := RenderDiff(before, after)

	if !strings.Contains(diff, `- `+`  "a": 1`) {
		t.Fatalf("missing removed line:\n%s", diff)
	}
	if !strings.Contains(diff, `+ `+`  "a": 2`) {
		t.Fatalf("missing added line:\n%s", diff)
	}
	if !strings.Contains(diff, "  {") {
		t.Fatalf("missing context line:\n%s", diff)
	}
}

func TestRenderDiffEqualTexts(t *testing.T) {
	text := "{\n  \"a\": 1\n}"
	diff := RenderDiff(text, text)
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
			t.Fatalf("equal texts produced changes:\n%s", diff)
		}
	}
}
