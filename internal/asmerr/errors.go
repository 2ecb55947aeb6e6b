// Package asmerr defines the typed error and warning values the assembler
// raises, along with their source position.
package asmerr

import (
	"fmt"
	"strings"
)

// Position locates a logical line in the original source file.
type Position struct {
	File string
	Line int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("line %d", p.Line)
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Kind categorizes the error kinds of §7.
type Kind int

const (
	DuplicateSymbol Kind = iota
	UnknownOpcode
	InvalidDirectiveOperand
	InvalidRegister
	UndefinedSymbol
	DisplacementOutOfRange
	InvalidOperandSyntax
)

func (k Kind) String() string {
	switch k {
	case DuplicateSymbol:
		return "DuplicateSymbol"
	case UnknownOpcode:
		return "UnknownOpcode"
	case InvalidDirectiveOperand:
		return "InvalidDirectiveOperand"
	case InvalidRegister:
		return "InvalidRegister"
	case UndefinedSymbol:
		return "UndefinedSymbol"
	case DisplacementOutOfRange:
		return "DisplacementOutOfRange"
	case InvalidOperandSyntax:
		return "InvalidOperandSyntax"
	default:
		return "Unknown"
	}
}

// Error is a fatal assembly error tied to a source position.
type Error struct {
	Pos     Position
	Kind    Kind
	Message string
	Context string // raw source line, when available
	Wrapped error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message))
	if e.Context != "" {
		sb.WriteString(fmt.Sprintf("\n    %s", e.Context))
	}
	return sb.String()
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// New creates an *Error with no source context.
func New(pos Position, kind Kind, message string) *Error {
	return &Error{Pos: pos, Kind: kind, Message: message}
}

// NewWithContext creates an *Error carrying the raw source line.
func NewWithContext(pos Position, kind Kind, message, context string) *Error {
	return &Error{Pos: pos, Kind: kind, Message: message, Context: context}
}

// Wrap wraps err with positional context, unless it is already an *Error.
func Wrap(pos Position, kind Kind, err error) *Error {
	if err == nil {
		return nil
	}
	if existing, ok := err.(*Error); ok {
		return existing
	}
	return &Error{Pos: pos, Kind: kind, Message: err.Error(), Wrapped: err}
}

// Warning is a non-fatal diagnostic (§7: DisplacementOutOfRange falls back
// to direct addressing but still surfaces a warning).
type Warning struct {
	Pos     Position
	Kind    Kind
	Message string
}

func (w *Warning) String() string {
	return fmt.Sprintf("%s: warning: %s: %s", w.Pos, w.Kind, w.Message)
}

// List collects errors and warnings accumulated over an assembly run.
type List struct {
	Errors   []*Error
	Warnings []*Warning
}

func (l *List) AddError(err *Error) {
	l.Errors = append(l.Errors, err)
}

func (l *List) AddWarning(w *Warning) {
	l.Warnings = append(l.Warnings, w)
}

func (l *List) HasErrors() bool {
	return len(l.Errors) > 0
}

func (l *List) Error() string {
	var sb strings.Builder
	for _, e := range l.Errors {
		sb.WriteString(e.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// PrintWarnings renders accumulated warnings, one per line.
func (l *List) PrintWarnings() string {
	var sb strings.Builder
	for _, w := range l.Warnings {
		sb.WriteString(w.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
