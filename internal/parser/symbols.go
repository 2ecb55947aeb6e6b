package parser

import (
	"sort"

	"github.com/dgrest/sicxe-asm/internal/asmerr"
)

// Symbol is a single symbol-table entry: a name bound to a resolved
// address, together with the position of its defining label (§3).
type Symbol struct {
	Name    string
	Address uint32
	Pos     asmerr.Position
}

// SymbolTable maps label names to symbols. Per §4.B, labels are
// case-preserving and compare case-sensitively once stored: keys are the
// label text exactly as written.
type SymbolTable struct {
	symbols map[string]*Symbol
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

// Define binds name to addr at pos. It returns a DuplicateSymbol error if
// name is already defined (§3 invariant: duplicate definition is fatal).
func (st *SymbolTable) Define(name string, addr uint32, pos asmerr.Position) *asmerr.Error {
	if existing, ok := st.symbols[name]; ok {
		return asmerr.New(pos, asmerr.DuplicateSymbol,
			"symbol \""+name+"\" already defined at "+existing.Pos.String())
	}
	st.symbols[name] = &Symbol{Name: name, Address: addr, Pos: pos}
	return nil
}

// Lookup returns the symbol's address and whether it is defined.
func (st *SymbolTable) Lookup(name string) (uint32, bool) {
	sym, ok := st.symbols[name]
	if !ok {
		return 0, false
	}
	return sym.Address, true
}

// Names returns every defined symbol name in sorted order (§6: symbTable.txt
// is sorted by symbol).
func (st *SymbolTable) Names() []string {
	names := make([]string, 0, len(st.symbols))
	for name := range st.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of defined symbols.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}
