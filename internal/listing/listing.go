// Package listing renders the §6 output artifacts: the preprocessed
// intermediate file, the Pass 1 and Pass 2 listings, the symbol table, and
// the HTME object program.
package listing

import (
	"fmt"
	"strings"

	"github.com/dgrest/sicxe-asm/internal/assembler"
	"github.com/dgrest/sicxe-asm/internal/lexer"
	"github.com/dgrest/sicxe-asm/internal/parser"
	"github.com/dgrest/sicxe-asm/internal/record"
)

// Intermediate renders the preprocessed source: one statement per line, no
// comments, no line numbers.
func Intermediate(lines []lexer.Line) string {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n") + "\n"
}

// Pass1 renders `AAAA <original>` per statement, AAAA a 4-hex-digit
// location.
func Pass1(entries []assembler.Listing1Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%04X %s\n", e.Addr, rawOf(e.Line))
	}
	return sb.String()
}

// SymbolTable renders the header, column names, a dashed rule, then
// `name\tAAAA` lines sorted by symbol (§6).
func SymbolTable(symbols *parser.SymbolTable) string {
	var sb strings.Builder
	sb.WriteString("Symbol Table:\n")
	sb.WriteString("Symbol\tAddress\n")
	sb.WriteString("------\t-------\n")
	for _, name := range symbols.Names() {
		addr, _ := symbols.Lookup(name)
		fmt.Fprintf(&sb, "%s\t%04X\n", name, addr)
	}
	return sb.String()
}

// Pass2 renders `AAAA <original, padded-to-30> <hex object code>` per
// statement that reaches Pass 2.
func Pass2(entries []assembler.Listing2Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		raw := rawOf(e.Line)
		if len(raw) < 30 {
			raw += strings.Repeat(" ", 30-len(raw))
		}
		object := ""
		if len(e.Object) > 0 {
			object = fmt.Sprintf("%X", e.Object)
		}
		fmt.Fprintf(&sb, "%04X %s %s\n", e.Addr, raw, object)
	}
	return sb.String()
}

// ObjectProgram renders the HTME object program: one H line, the T lines
// in emission order, the M lines, and one E line, fields separated by `^`.
func ObjectProgram(meta assembler.Metadata, p2 *assembler.Pass2Result) string {
	var sb strings.Builder
	sb.WriteString(record.FormatHeader(meta.Name, meta.StartAddr, meta.Length))
	sb.WriteString("\n")
	for _, r := range p2.TextRecords {
		sb.WriteString(r.Format())
		sb.WriteString("\n")
	}
	for _, m := range p2.Modifications {
		sb.WriteString(m.Format())
		sb.WriteString("\n")
	}
	sb.WriteString(record.FormatEnd(p2.EntryPoint))
	sb.WriteString("\n")
	return sb.String()
}

func rawOf(pl *parser.ParsedLine) string {
	if pl == nil {
		return ""
	}
	return pl.Raw
}
