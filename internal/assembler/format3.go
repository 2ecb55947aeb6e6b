package assembler

import (
	"github.com/dgrest/sicxe-asm/internal/asmerr"
	"github.com/dgrest/sicxe-asm/internal/parser"
)

// encodeFormat3 computes the n/i/x/b/p flags and the 12-bit displacement
// for a format-3 instruction. Displacement selection tries PC-relative
// first, then base-relative (if BASE is set), and finally falls back to a
// direct value that may not fit the addressing hardware; that fallback
// surfaces as a DisplacementOutOfRange warning rather than aborting
// assembly.
func (e *Encoder) encodeFormat3(info parser.OpcodeInfo, pl *parser.ParsedLine, currentAddr uint32, warnings *asmerr.List) ([]byte, error) {
	if pl.Operand == "" {
		return buildFormat3(info.Byte, 1, 1, 0, 0, 0, 0), nil
	}

	op := parser.ParseOperand(pl.Operand)
	n, i := modeFlags(op.Mode)
	x := 0
	if op.Indexed {
		x = 1
	}

	if num, ok := parser.ParseNumber(op.Value); ok {
		disp := uint32(num) & 0xFFF
		return buildFormat3(info.Byte, n, i, x, 0, 0, disp), nil
	}

	addr, ok := e.symbols.Lookup(op.Value)
	if !ok {
		return nil, asmerr.New(pl.Pos, asmerr.UndefinedSymbol, "undefined symbol: "+op.Value)
	}

	b, p, disp, inRange := e.selectDisplacement(addr, currentAddr)
	if !inRange {
		warnings.AddWarning(&asmerr.Warning{
			Pos:     pl.Pos,
			Kind:    asmerr.DisplacementOutOfRange,
			Message: "displacement out of range for " + op.Value + "; falling back to direct addressing",
		})
		disp = addr & 0xFFF
	}

	return buildFormat3(info.Byte, n, i, x, b, p, disp), nil
}

// selectDisplacement applies the PC-relative-then-base-relative rule:
// PC-relative wins when the offset from the next instruction fits in
// [-2048, 2047]; otherwise base-relative wins when BASE is set and the
// offset from BASE fits in [0, 4095]. The final bool reports whether
// either mode applied.
func (e *Encoder) selectDisplacement(targetAddr, currentAddr uint32) (b, p int, disp uint32, inRange bool) {
	pcDisp := int64(targetAddr) - int64(currentAddr+3)
	if pcDisp >= -2048 && pcDisp <= 2047 {
		return 0, 1, uint32(pcDisp) & 0xFFF, true
	}

	if e.base != nil {
		baseDisp := int64(targetAddr) - int64(*e.base)
		if baseDisp >= 0 && baseDisp <= 4095 {
			return 1, 0, uint32(baseDisp), true
		}
	}

	return 0, 0, 0, false
}

// modeFlags maps an addressing mode to its n,i flag pair.
func modeFlags(m parser.Mode) (n, i int) {
	switch m {
	case parser.Immediate:
		return 0, 1
	case parser.Indirect:
		return 1, 0
	default:
		return 1, 1
	}
}

// buildFormat3 assembles the three object bytes from the opcode and flags.
func buildFormat3(opcodeByte byte, n, i, x, b, p int, disp uint32) []byte {
	b0 := opcodeByte | byte(n<<1) | byte(i)
	nibble := byte((x << 3) | (b << 2) | (p << 1))
	d := disp & 0xFFF
	b1 := (nibble << 4) | byte((d>>8)&0xF)
	b2 := byte(d & 0xFF)
	return []byte{b0, b1, b2}
}
