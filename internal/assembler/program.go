// Package assembler implements the two-pass SIC/XE assembly core: Pass 1
// address assignment, Pass 2 instruction encoding, and the glue that
// feeds both from a shared parsed-line stream.
package assembler

import (
	"github.com/dgrest/sicxe-asm/internal/asmerr"
	"github.com/dgrest/sicxe-asm/internal/lexer"
	"github.com/dgrest/sicxe-asm/internal/parser"
)

// Metadata is the program's name, start address, length, and entry point.
type Metadata struct {
	Name      string
	StartAddr uint32
	Length    uint32
	// EntryPoint is left at zero by Pass1; the resolved entry point is
	// reported in Pass2Result.EntryPoint.
	EntryPoint uint32
}

// ParseProgram preprocesses and line-parses source text into the ordered
// statement stream both passes walk.
func ParseProgram(filename, source string) ([]*parser.ParsedLine, error) {
	lines := lexer.Preprocess(source)
	out := make([]*parser.ParsedLine, 0, len(lines))
	for _, l := range lines {
		pos := asmerr.Position{File: filename, Line: l.Number}
		pl, err := parser.ParseLine(pos, l.Text)
		if err != nil {
			return nil, err
		}
		out = append(out, pl)
	}
	return out, nil
}
