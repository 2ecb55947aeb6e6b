package lexer_test

import (
	"testing"

	"github.com/dgrest/sicxe-asm/internal/lexer"
)

func TestPreprocessStripsLineNumbersAndComments(t *testing.T) {
	src := "10        LDA     #5      ; load 5\n20        RSUB\n   \n30        END\n"
	lines := lexer.Preprocess(src)

	want := []string{"LDA     #5", "RSUB", "END"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %+v", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i].Text != w {
			t.Errorf("line %d: expected %q, got %q", i, w, lines[i].Text)
		}
	}
}

func TestPreprocessDropsBlankLines(t *testing.T) {
	src := "COPY START 1000\n\n   \n; a comment on its own\nEND\n"
	lines := lexer.Preprocess(src)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %+v", len(lines), lines)
	}
}

func TestPreprocessIsIdempotent(t *testing.T) {
	src := "5 LABEL LDA #5 ; comment\n10 RSUB\n"
	first := lexer.Preprocess(src)

	var rebuilt string
	for _, l := range first {
		rebuilt += l.Text + "\n"
	}
	second := lexer.Preprocess(rebuilt)

	if len(first) != len(second) {
		t.Fatalf("idempotence broken: %d vs %d lines", len(first), len(second))
	}
	for i := range first {
		if first[i].Text != second[i].Text {
			t.Errorf("line %d differs: %q vs %q", i, first[i].Text, second[i].Text)
		}
	}
}

func TestPreprocessPreservesLabelThatLooksLikeANumberPrefix(t *testing.T) {
	// "100" alone on a line, with no trailing statement, is a bare label,
	// not a line-number prefix (there is nothing after it to strip to).
	lines := lexer.Preprocess("100\n")
	if len(lines) != 1 || lines[0].Text != "100" {
		t.Fatalf("expected bare label to survive, got %+v", lines)
	}
}
