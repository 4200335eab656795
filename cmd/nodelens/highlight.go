package main

import (
	"strings"

	"github.com/fatih/color"
)

var (
	keyColor     = color.New(color.FgCyan)
	stringColor  = color.New(color.FgGreen)
	literalColor = color.New(color.FgYellow)
	locatorColor = color.New(color.FgBlue, color.Bold)
)

// highlightJSON colors an indented JSON text line by line: keys cyan, string
// values green, other literals yellow. Color output is globally gated by
// color.NoColor, so this is safe for piped output.
func highlightJSON(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		pad := line[:len(line)-len(trimmed)]
		if key, rest, ok := splitKey(trimmed); ok {
			lines[i] = pad + keyColor.Sprint(key) + ": " + highlightScalar(rest)
			continue
		}
		lines[i] = pad + highlightScalar(trimmed)
	}
	return strings.Join(lines, "\n")
}

// splitKey splits a `"key": value` line into its quoted key and the rest.
func splitKey(line string) (key, rest string, ok bool) {
	if !strings.HasPrefix(line, `"`) {
		return "", "", false
	}
	end := closingQuote(line)
	if end < 0 || !strings.HasPrefix(line[end+1:], ": ") {
		return "", "", false
	}
	return line[:end+1], line[end+3:], true
}

func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

func highlightScalar(s string) string {
	body := strings.TrimSuffix(s, ",")
	suffix := s[len(body):]
	switch {
	case body == "" || body == "{" || body == "}" || body == "[" || body == "]" || body == "{}" || body == "[]":
		return s
	case strings.HasPrefix(body, `"`):
		return stringColor.Sprint(body) + suffix
	default:
		return literalColor.Sprint(body) + suffix
	}
}
