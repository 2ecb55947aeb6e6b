// Package lexer implements the §4.A preprocessing pass: stripping optional
// line-number prefixes and comments, and dropping blank lines, while
// preserving source order.
package lexer

import "strings"

// Line pairs a preprocessed logical line with the 1-based line number it
// came from in the original source, so later passes can report accurate
// positions even after blank lines are dropped.
type Line struct {
	Number int
	Text   string
}

// Preprocess strips a leading decimal line-number prefix and a trailing
// ';' comment from each input line, trims whitespace, and drops lines that
// end up empty. Preprocessing is idempotent: running it again over its own
// output returns the same lines (testable property §8-7).
func Preprocess(source string) []Line {
	rawLines := strings.Split(source, "\n")

	out := make([]Line, 0, len(rawLines))
	for i, raw := range rawLines {
		text := stripLineNumber(raw)
		if idx := strings.IndexByte(text, ';'); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		out = append(out, Line{Number: i + 1, Text: text})
	}
	return out
}

// stripLineNumber removes a leading run of decimal digits followed by
// whitespace, if present.
func stripLineNumber(s string) string {
	trimmed := strings.TrimLeft(s, " \t")

	i := 0
	for i < len(trimmed) && trimmed[i] >= '0' && trimmed[i] <= '9' {
		i++
	}
	if i == 0 {
		return s
	}
	rest := trimmed[i:]
	if rest == "" {
		// The entire (trimmed) line is digits with no trailing content;
		// not a line-number prefix followed by a statement.
		return s
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return s
	}
	return strings.TrimLeft(rest, " \t")
}
