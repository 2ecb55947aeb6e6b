package assembler

import (
	"github.com/dgrest/sicxe-asm/internal/asmerr"
	"github.com/dgrest/sicxe-asm/internal/parser"
)

// encodeFormat4 computes the n/i/x flags and 20-bit target address for an
// extended-format instruction. Unlike format 3, the target address
// is used directly with no PC- or base-relative selection. A symbol
// reference under Simple or Indirect addressing produces a length-5
// modification record at currentAddr+1; immediate symbol references and
// numeric literals do not.
func (e *Encoder) encodeFormat4(info parser.OpcodeInfo, pl *parser.ParsedLine, currentAddr uint32) ([]byte, error) {
	if pl.Operand == "" {
		return buildFormat4(info.Byte, 1, 1, 0, 0), nil
	}

	op := parser.ParseOperand(pl.Operand)
	n, i := modeFlags(op.Mode)
	x := 0
	if op.Indexed {
		x = 1
	}

	if num, ok := parser.ParseNumber(op.Value); ok {
		return buildFormat4(info.Byte, n, i, x, uint32(num)&0xFFFFF), nil
	}

	addr, ok := e.symbols.Lookup(op.Value)
	if !ok {
		return nil, asmerr.New(pl.Pos, asmerr.UndefinedSymbol, "undefined symbol: "+op.Value)
	}

	if op.Mode == parser.Simple || op.Mode == parser.Indirect {
		e.builder.AddModification(currentAddr+1, 5)
	}

	return buildFormat4(info.Byte, n, i, x, addr&0xFFFFF), nil
}

// buildFormat4 assembles the four object bytes. BASE/PC flags are always
// 0 and the extended bit e is always 1.
func buildFormat4(opcodeByte byte, n, i, x int, ta uint32) []byte {
	b0 := opcodeByte | byte(n<<1) | byte(i)
	nibble := byte((x << 3) | 1)
	t := ta & 0xFFFFF
	b1 := (nibble << 4) | byte((t>>16)&0xF)
	b2 := byte((t >> 8) & 0xFF)
	b3 := byte(t & 0xFF)
	return []byte{b0, b1, b2, b3}
}
