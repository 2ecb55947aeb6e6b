package parser

import (
	"regexp"
	"strings"

	"github.com/dgrest/sicxe-asm/internal/asmerr"
)

// ParsedLine is the decomposition of one preprocessed logical line (§3):
// an optional label, optional opcode, and optional operand, all
// independently optional except that an opcode-less, label-less line
// cannot occur here (blank lines are dropped upstream by the lexer).
type ParsedLine struct {
	Pos      asmerr.Position
	Label    string // case-preserving
	Mnemonic string // uppercase, without a leading '+'
	Extended bool   // true when the source had a '+' prefix (format 4)
	HasOp    bool   // true when Mnemonic was present at all
	Operand  string // whitespace-normalized remainder
	Raw      string
}

var commaSpaceRE = regexp.MustCompile(`\s*,\s*`)

// ParseLine decomposes one preprocessed line per the §4.B disambiguation
// rule, applied to the first token t0:
//  1. Uppercase t0. If it is a known opcode/directive (bare, or `+`-prefixed
//     with the remainder a known opcode), t0 is the opcode and there is no
//     label.
//  2. Otherwise t0 is the label; if a second token exists, it becomes the
//     opcode.
func ParseLine(pos asmerr.Position, raw string) (*ParsedLine, error) {
	tokens, err := tokenize(raw, pos)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return &ParsedLine{Pos: pos, Raw: raw}, nil
	}

	pl := &ParsedLine{Pos: pos, Raw: raw}

	first := tokens[0]
	firstUpper := strings.ToUpper(first.text)

	var operandStart int
	switch {
	case IsOpcodeToken(firstUpper):
		pl.HasOp = true
		operandStart = first.end
		setMnemonic(pl, firstUpper)

	case len(tokens) > 1:
		pl.Label = first.text
		second := tokens[1]
		pl.HasOp = true
		operandStart = second.end
		setMnemonic(pl, strings.ToUpper(second.text))

	default:
		pl.Label = first.text
		operandStart = first.end
	}

	if operandStart < len(raw) {
		pl.Operand = normalizeOperand(raw[operandStart:])
	}

	return pl, nil
}

func setMnemonic(pl *ParsedLine, upper string) {
	if strings.HasPrefix(upper, "+") {
		pl.Extended = true
		pl.Mnemonic = upper[1:]
	} else {
		pl.Mnemonic = upper
	}
}

func normalizeOperand(s string) string {
	s = strings.TrimSpace(s)
	return commaSpaceRE.ReplaceAllString(s, ",")
}
