package parser_test

import (
	"testing"

	"github.com/dgrest/sicxe-asm/internal/parser"
)

func TestParseOperandModes(t *testing.T) {
	cases := []struct {
		raw     string
		mode    parser.Mode
		indexed bool
		value   string
	}{
		{"#5", parser.Immediate, false, "5"},
		{"@RETADR", parser.Indirect, false, "RETADR"},
		{"BUFFER,X", parser.Simple, true, "BUFFER"},
		{"#5,X", parser.Immediate, true, "5"},
		{"ALPHA", parser.Simple, false, "ALPHA"},
		{"", parser.Simple, false, ""},
	}

	for _, c := range cases {
		got := parser.ParseOperand(c.raw)
		if got.Mode != c.mode || got.Indexed != c.indexed || got.Value != c.value {
			t.Errorf("ParseOperand(%q) = %+v, want mode=%v indexed=%v value=%q", c.raw, got, c.mode, c.indexed, c.value)
		}
	}
}

func TestParseNumberDecimalThenHex(t *testing.T) {
	if v, ok := parser.ParseNumber("10"); !ok || v != 10 {
		t.Fatalf("expected decimal 10, got %d ok=%v", v, ok)
	}
	if v, ok := parser.ParseNumber("1F"); !ok || v != 0x1F {
		t.Fatalf("expected hex fallback 0x1F, got %d ok=%v", v, ok)
	}
	if _, ok := parser.ParseNumber("NOTANUMBER"); ok {
		t.Fatalf("expected failure for non-numeric operand")
	}
}

func TestParseHexOnly(t *testing.T) {
	if v, ok := parser.ParseHex("1000"); !ok || v != 0x1000 {
		t.Fatalf("expected hex 0x1000, got %d ok=%v", v, ok)
	}
	if v, ok := parser.ParseHex("100"); !ok || v != 0x100 {
		t.Fatalf("expected hex 0x100, got %d ok=%v", v, ok)
	}
}

func TestByteLiteralBytesChar(t *testing.T) {
	got, ok := parser.ByteLiteralBytes("C'EOF'")
	if !ok {
		t.Fatalf("expected ok")
	}
	want := []byte{'E', 'O', 'F'}
	if string(got) != string(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestByteLiteralBytesHex(t *testing.T) {
	got, ok := parser.ByteLiteralBytes("X'F1'")
	if !ok || len(got) != 1 || got[0] != 0xF1 {
		t.Fatalf("got %v ok=%v", got, ok)
	}
}

func TestByteLiteralBytesOddHexPadded(t *testing.T) {
	got, ok := parser.ByteLiteralBytes("X'ABC'")
	if !ok {
		t.Fatalf("expected ok")
	}
	want := []byte{0xAB, 0xC0}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestByteLiteralLengthMatchesBytes(t *testing.T) {
	n, ok := parser.ByteLiteralLength("C'EOF'")
	if !ok || n != 3 {
		t.Fatalf("got %d ok=%v", n, ok)
	}
	n, ok = parser.ByteLiteralLength("X'ABC'")
	if !ok || n != 2 {
		t.Fatalf("got %d ok=%v", n, ok)
	}
}
