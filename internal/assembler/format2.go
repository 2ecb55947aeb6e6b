package assembler

import (
	"strings"

	"github.com/dgrest/sicxe-asm/internal/asmerr"
	"github.com/dgrest/sicxe-asm/internal/parser"
)

// encodeFormat2 packs a format-2 instruction's one or two register operands
// into [opcode, (r1<<4)|r2]. A missing register defaults to 0.
func (e *Encoder) encodeFormat2(info parser.OpcodeInfo, pl *parser.ParsedLine) ([]byte, error) {
	r1, r2 := 0, 0

	if pl.Operand != "" {
		parts := strings.Split(pl.Operand, ",")

		v1, err := lookupRegister(pl.Pos, parts[0])
		if err != nil {
			return nil, err
		}
		r1 = v1

		if len(parts) > 1 {
			v2, err := lookupRegister(pl.Pos, parts[1])
			if err != nil {
				return nil, err
			}
			r2 = v2
		}
	}

	return []byte{info.Byte, byte((r1 << 4) | r2)}, nil
}

func lookupRegister(pos asmerr.Position, name string) (int, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	v, ok := parser.Registers[name]
	if !ok {
		return 0, asmerr.New(pos, asmerr.InvalidRegister, "invalid register: "+name)
	}
	return v, nil
}
