package assembler

import (
	"github.com/dgrest/sicxe-asm/internal/asmerr"
	"github.com/dgrest/sicxe-asm/internal/logging"
	"github.com/dgrest/sicxe-asm/internal/parser"
	"github.com/dgrest/sicxe-asm/internal/record"
)

// Listing2Entry is one line of the Pass 2 listing.
type Listing2Entry struct {
	Addr   uint32
	Line   *parser.ParsedLine
	Object []byte // emitted object bytes, nil when the line emits nothing
}

// Pass2Result is the output of Pass 2: the listing, the flushed object
// records, and the resolved entry point.
type Pass2Result struct {
	Listing       []Listing2Entry
	TextRecords   []record.TextRecord
	Modifications []record.Modification
	EntryPoint    uint32
	Warnings      *asmerr.List
}

// Encoder carries Pass 2's mutable state (LOCCTR, BASE) and the record
// builder across a single run as struct fields rather than package
// globals.
type Encoder struct {
	symbols *parser.SymbolTable
	builder *record.Builder
	locctr  uint32
	base    *uint32
}

// NewEncoder creates an Encoder bound to a completed Pass 1 symbol table.
func NewEncoder(symbols *parser.SymbolTable) *Encoder {
	return &Encoder{symbols: symbols, builder: record.NewBuilder()}
}

// Run walks the parsed-line stream a second time, re-initializing LOCCTR
// and BASE, and emits object bytes per line using the symbol table and the
// current BASE value.
func (e *Encoder) Run(lines []*parser.ParsedLine, meta Metadata) (*Pass2Result, error) {
	e.locctr = meta.StartAddr
	e.base = nil

	entryPoint := meta.StartAddr
	warnings := &asmerr.List{}
	var listing []Listing2Entry

	for _, pl := range lines {
		if !pl.HasOp && pl.Label == "" {
			continue
		}

		if pl.Mnemonic == "START" {
			if pl.Operand != "" {
				if v, ok := parser.ParseHex(pl.Operand); ok {
					e.locctr = uint32(v)
				}
			}
			listing = append(listing, Listing2Entry{Addr: e.locctr, Line: pl})
			continue
		}

		currentAddr := e.locctr

		if pl.Mnemonic == "END" {
			if pl.Operand != "" {
				ep, err := e.resolveAddressOperand(pl.Pos, pl.Operand)
				if err != nil {
					return nil, err
				}
				entryPoint = ep
			}
			listing = append(listing, Listing2Entry{Addr: currentAddr, Line: pl})
			break
		}

		if !pl.HasOp {
			listing = append(listing, Listing2Entry{Addr: currentAddr, Line: pl})
			continue
		}

		objectBytes, err := e.encodeLine(pl, currentAddr, warnings)
		if err != nil {
			return nil, err
		}

		if len(objectBytes) > 0 {
			e.builder.Emit(currentAddr, objectBytes)
		}

		listing = append(listing, Listing2Entry{Addr: currentAddr, Line: pl, Object: objectBytes})
		logging.Log.Printf("pass2: %-6s addr=%06X bytes=%X", pl.Mnemonic, currentAddr, objectBytes)
	}

	e.builder.Flush()

	return &Pass2Result{
		Listing:       listing,
		TextRecords:   e.builder.Records(),
		Modifications: e.builder.Modifications(),
		EntryPoint:    entryPoint,
		Warnings:      warnings,
	}, nil
}

// encodeLine dispatches one statement to its directive or format encoder,
// advancing LOCCTR identically to Pass 1.
func (e *Encoder) encodeLine(pl *parser.ParsedLine, currentAddr uint32, warnings *asmerr.List) ([]byte, error) {
	switch pl.Mnemonic {
	case "WORD":
		return e.encodeWordDirective(pl)
	case "RESW":
		return e.encodeReserve(pl, 3)
	case "RESB":
		return e.encodeReserve(pl, 1)
	case "BYTE":
		return e.encodeByteDirective(pl)
	case "BASE":
		return nil, e.encodeBaseDirective(pl)
	case "NOBASE":
		e.base = nil
		return nil, nil
	}

	info, ok := parser.Opcodes[pl.Mnemonic]
	if !ok {
		return nil, asmerr.New(pl.Pos, asmerr.UnknownOpcode, "unknown opcode: "+pl.Mnemonic)
	}

	if pl.Extended {
		e.locctr += 4
		return e.encodeFormat4(info, pl, currentAddr)
	}

	switch info.Format {
	case parser.Format1:
		e.locctr++
		return []byte{info.Byte}, nil
	case parser.Format2:
		e.locctr += 2
		return e.encodeFormat2(info, pl)
	default:
		e.locctr += 3
		return e.encodeFormat3(info, pl, currentAddr, warnings)
	}
}

// resolveAddressOperand resolves an operand that names either a symbol or
// a literal number (used for BASE's operand and END's entry-point operand).
func (e *Encoder) resolveAddressOperand(pos asmerr.Position, operand string) (uint32, error) {
	if addr, ok := e.symbols.Lookup(operand); ok {
		return addr, nil
	}
	if n, ok := parser.ParseNumber(operand); ok {
		return uint32(n), nil
	}
	return 0, asmerr.New(pos, asmerr.UndefinedSymbol, "undefined symbol: "+operand)
}
