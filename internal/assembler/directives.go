package assembler

import (
	"github.com/dgrest/sicxe-asm/internal/asmerr"
	"github.com/dgrest/sicxe-asm/internal/parser"
)

// encodeWordDirective emits a WORD's 3-byte two's-complement value and
// advances LOCCTR by 3.
func (e *Encoder) encodeWordDirective(pl *parser.ParsedLine) ([]byte, error) {
	n, ok := parser.ParseNumber(pl.Operand)
	if !ok {
		return nil, asmerr.New(pl.Pos, asmerr.InvalidDirectiveOperand, "invalid WORD operand: "+pl.Operand)
	}
	e.locctr += 3
	v := uint32(n) & 0xFFFFFF
	return []byte{byte(v >> 16), byte(v >> 8), byte(v)}, nil
}

// encodeReserve handles RESB (unit=1) and RESW (unit=3): no bytes are
// emitted, LOCCTR advances by count*unit, and any open Text record is
// flushed since reserved storage breaks address contiguity.
func (e *Encoder) encodeReserve(pl *parser.ParsedLine, unit uint32) ([]byte, error) {
	n, ok := parser.ParseNumber(pl.Operand)
	if !ok {
		return nil, asmerr.New(pl.Pos, asmerr.InvalidDirectiveOperand, "invalid "+pl.Mnemonic+" operand: "+pl.Operand)
	}
	e.locctr += uint32(n) * unit
	e.builder.Flush()
	return nil, nil
}

// encodeByteDirective emits a BYTE literal's raw bytes (C'...' as ASCII,
// X'...' as packed hex) and advances LOCCTR by their length.
func (e *Encoder) encodeByteDirective(pl *parser.ParsedLine) ([]byte, error) {
	bytes, ok := parser.ByteLiteralBytes(pl.Operand)
	if !ok {
		return nil, asmerr.New(pl.Pos, asmerr.InvalidDirectiveOperand, "invalid BYTE operand: "+pl.Operand)
	}
	e.locctr += uint32(len(bytes))
	return bytes, nil
}

// encodeBaseDirective resolves BASE's operand (a symbol or a literal
// number) and sets the current base register for subsequent base-relative
// displacement selection.
func (e *Encoder) encodeBaseDirective(pl *parser.ParsedLine) error {
	addr, err := e.resolveAddressOperand(pl.Pos, pl.Operand)
	if err != nil {
		return err
	}
	e.base = &addr
	return nil
}
