package assembler

import (
	"github.com/dgrest/sicxe-asm/internal/asmerr"
	"github.com/dgrest/sicxe-asm/internal/logging"
	"github.com/dgrest/sicxe-asm/internal/parser"
)

// Listing1Entry is one line of the Pass 1 listing.
type Listing1Entry struct {
	Addr uint32
	Line *parser.ParsedLine
}

// Pass1Result is everything Pass 1 hands to Pass 2 and the I/O shell.
type Pass1Result struct {
	Symbols *parser.SymbolTable
	Meta    Metadata
	Listing []Listing1Entry
}

// Pass1 walks the parsed-line stream once, assigning LOCCTR, populating
// the symbol table, and recording a location-annotated listing.
func Pass1(lines []*parser.ParsedLine) (*Pass1Result, error) {
	symbols := parser.NewSymbolTable()
	var locctr uint32
	var startAddr uint32
	var programName string
	var listing []Listing1Entry

	for _, pl := range lines {
		if !pl.HasOp && pl.Label == "" {
			continue
		}

		if pl.Mnemonic == "START" {
			if pl.Operand != "" {
				v, ok := parser.ParseHex(pl.Operand)
				if !ok {
					return nil, asmerr.New(pl.Pos, asmerr.InvalidDirectiveOperand,
						"invalid START operand: "+pl.Operand)
				}
				startAddr = uint32(v)
				locctr = startAddr
			}
			if pl.Label != "" {
				programName = pl.Label
				if err := symbols.Define(pl.Label, startAddr, pl.Pos); err != nil {
					return nil, err
				}
			}
			listing = append(listing, Listing1Entry{Addr: locctr, Line: pl})
			continue
		}

		currentLocctr := locctr

		if pl.Label != "" {
			if err := symbols.Define(pl.Label, currentLocctr, pl.Pos); err != nil {
				return nil, err
			}
		}

		if !pl.HasOp {
			listing = append(listing, Listing1Entry{Addr: currentLocctr, Line: pl})
			continue
		}

		if pl.Mnemonic == "END" {
			listing = append(listing, Listing1Entry{Addr: currentLocctr, Line: pl})
			break
		}

		size, err := pass1LineSize(pl)
		if err != nil {
			return nil, err
		}
		locctr += size

		listing = append(listing, Listing1Entry{Addr: currentLocctr, Line: pl})
		logging.Log.Printf("pass1: %-6s addr=%06X size=%d", pl.Mnemonic, currentLocctr, size)
	}

	return &Pass1Result{
		Symbols: symbols,
		Meta: Metadata{
			Name:      programName,
			StartAddr: startAddr,
			Length:    locctr - startAddr,
		},
		Listing: listing,
	}, nil
}

// pass1LineSize computes how far LOCCTR advances for one non-START,
// non-END statement.
func pass1LineSize(pl *parser.ParsedLine) (uint32, error) {
	switch pl.Mnemonic {
	case "WORD":
		return 3, nil

	case "RESW":
		n, ok := parser.ParseNumber(pl.Operand)
		if !ok {
			return 0, asmerr.New(pl.Pos, asmerr.InvalidDirectiveOperand, "invalid RESW operand: "+pl.Operand)
		}
		return uint32(n) * 3, nil

	case "RESB":
		n, ok := parser.ParseNumber(pl.Operand)
		if !ok {
			return 0, asmerr.New(pl.Pos, asmerr.InvalidDirectiveOperand, "invalid RESB operand: "+pl.Operand)
		}
		return uint32(n), nil

	case "BYTE":
		n, ok := parser.ByteLiteralLength(pl.Operand)
		if !ok {
			return 0, asmerr.New(pl.Pos, asmerr.InvalidDirectiveOperand, "invalid BYTE operand: "+pl.Operand)
		}
		return uint32(n), nil

	case "BASE", "NOBASE":
		return 0, nil
	}

	if pl.Extended {
		if _, ok := parser.Opcodes[pl.Mnemonic]; !ok {
			return 0, asmerr.New(pl.Pos, asmerr.UnknownOpcode, "unknown opcode: +"+pl.Mnemonic)
		}
		return 4, nil
	}

	info, ok := parser.Opcodes[pl.Mnemonic]
	if !ok {
		return 0, asmerr.New(pl.Pos, asmerr.UnknownOpcode, "unknown opcode: "+pl.Mnemonic)
	}
	switch info.Format {
	case parser.Format1:
		return 1, nil
	case parser.Format2:
		return 2, nil
	default:
		return 3, nil
	}
}
