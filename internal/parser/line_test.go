package parser_test

import (
	"testing"

	"github.com/dgrest/sicxe-asm/internal/asmerr"
	"github.com/dgrest/sicxe-asm/internal/parser"
)

func mustParse(t *testing.T, raw string) *parser.ParsedLine {
	t.Helper()
	pl, err := parser.ParseLine(asmerr.Position{File: "t.asm", Line: 1}, raw)
	if err != nil {
		t.Fatalf("ParseLine(%q): %v", raw, err)
	}
	return pl
}

func TestParseLineBareOpcode(t *testing.T) {
	pl := mustParse(t, "       LDA   #5")
	if pl.Label != "" || pl.Mnemonic != "LDA" || pl.Operand != "#5" || pl.Extended {
		t.Fatalf("unexpected parse: %+v", pl)
	}
}

func TestParseLineLabelAndOpcode(t *testing.T) {
	pl := mustParse(t, "COPY   START 1000")
	if pl.Label != "COPY" || pl.Mnemonic != "START" || pl.Operand != "1000" {
		t.Fatalf("unexpected parse: %+v", pl)
	}
}

func TestParseLineLabelOnly(t *testing.T) {
	pl := mustParse(t, "LOOP")
	if pl.Label != "LOOP" || pl.HasOp {
		t.Fatalf("unexpected parse: %+v", pl)
	}
}

func TestParseLineExtendedFormat(t *testing.T) {
	pl := mustParse(t, "       +LDA  BUFFER,X")
	if !pl.Extended || pl.Mnemonic != "LDA" || pl.Operand != "BUFFER,X" {
		t.Fatalf("unexpected parse: %+v", pl)
	}
}

func TestParseLineCommaOperandNormalized(t *testing.T) {
	pl := mustParse(t, "       STA    ALPHA ,  X")
	if pl.Operand != "ALPHA,X" {
		t.Fatalf("expected normalized operand, got %q", pl.Operand)
	}
}

func TestParseLineQuotedOperandPreservesSpacing(t *testing.T) {
	pl := mustParse(t, "MSG    BYTE   C'HELLO WORLD'")
	if pl.Operand != "C'HELLO WORLD'" {
		t.Fatalf("unexpected operand: %q", pl.Operand)
	}
}

func TestParseLineUnterminatedQuoteIsFatal(t *testing.T) {
	_, err := parser.ParseLine(asmerr.Position{File: "t.asm", Line: 1}, "MSG    BYTE   C'HELLO")
	if err == nil {
		t.Fatalf("expected error for unterminated quote")
	}
	asmErr, ok := err.(*asmerr.Error)
	if !ok {
		t.Fatalf("expected *asmerr.Error, got %T", err)
	}
	if asmErr.Kind != asmerr.InvalidOperandSyntax {
		t.Fatalf("unexpected error kind: %v", asmErr.Kind)
	}
}

func TestParseLineDirectiveIsNotALabel(t *testing.T) {
	pl := mustParse(t, "       RESW  1")
	if pl.Label != "" || pl.Mnemonic != "RESW" || pl.Operand != "1" {
		t.Fatalf("unexpected parse: %+v", pl)
	}
}
