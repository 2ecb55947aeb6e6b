package parser_test

import (
	"testing"

	"github.com/dgrest/sicxe-asm/internal/asmerr"
	"github.com/dgrest/sicxe-asm/internal/parser"
)

func TestSymbolTableDefineAndLookup(t *testing.T) {
	st := parser.NewSymbolTable()
	pos := asmerr.Position{File: "t.asm", Line: 1}
	if err := st.Define("COPY", 0x1000, pos); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	addr, ok := st.Lookup("COPY")
	if !ok || addr != 0x1000 {
		t.Fatalf("got %06X ok=%v", addr, ok)
	}
}

func TestSymbolTableDuplicateDefinition(t *testing.T) {
	st := parser.NewSymbolTable()
	pos := asmerr.Position{File: "t.asm", Line: 1}
	if err := st.Define("COPY", 0x1000, pos); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := st.Define("COPY", 0x2000, asmerr.Position{File: "t.asm", Line: 5})
	if err == nil {
		t.Fatalf("expected duplicate symbol error")
	}
	if err.Kind != asmerr.DuplicateSymbol {
		t.Fatalf("unexpected kind: %v", err.Kind)
	}
}

func TestSymbolTableNamesSorted(t *testing.T) {
	st := parser.NewSymbolTable()
	pos := asmerr.Position{}
	_ = st.Define("ZEBRA", 0, pos)
	_ = st.Define("ALPHA", 1, pos)
	_ = st.Define("MID", 2, pos)

	names := st.Names()
	want := []string{"ALPHA", "MID", "ZEBRA"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v want %v", names, want)
		}
	}
}
