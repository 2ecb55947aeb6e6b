// Package record implements the object-record builder: it packs emitted
// object bytes into address-contiguous Text records capped at 30 bytes,
// flushing on reservation directives or address discontinuity, and
// renders Header/Text/Modification/End records in HTME format.
package record

import "fmt"

// MaxTextBytes is the Text record payload cap.
const MaxTextBytes = 30

// TextRecord is a single flushed Text record: a contiguous run of object
// bytes starting at Start.
type TextRecord struct {
	Start uint32
	Bytes []byte
}

// Modification is a relocation entry: the loader must adjust a HalfByte
// half-byte field at Addr when the program is placed at a non-zero load
// address. Always length 5 for format-4 address fields.
type Modification struct {
	Addr     uint32
	HalfByte int
}

// Builder accumulates emitted bytes into Text records. It models an
// explicit Closed|Open{start, bytes} state machine: every emit is a
// transition, and flush is total.
type Builder struct {
	open    bool
	start   uint32
	buffer  []byte
	records []TextRecord
	mods    []Modification
}

// NewBuilder returns an empty builder with no open record.
func NewBuilder() *Builder {
	return &Builder{}
}

// Emit appends bytes at address addr. If the builder has an open record,
// addr is the address immediately following its last byte, and appending
// would not exceed the 30-byte cap, the bytes are appended to that record;
// otherwise the open record (if any) is flushed and a new one is opened at
// addr.
func (b *Builder) Emit(addr uint32, bytes []byte) {
	if len(bytes) == 0 {
		return
	}

	contiguous := b.open && addr == b.start+uint32(len(b.buffer))
	fits := len(b.buffer)+len(bytes) <= MaxTextBytes

	if contiguous && fits {
		b.buffer = append(b.buffer, bytes...)
		return
	}

	b.Flush()
	b.open = true
	b.start = addr
	b.buffer = append([]byte(nil), bytes...)
}

// Flush closes any open record, appending it to Records(). It is a no-op
// when no record is open. Callers must flush on RESB/RESW and at end of
// input.
func (b *Builder) Flush() {
	if b.open && len(b.buffer) > 0 {
		b.records = append(b.records, TextRecord{Start: b.start, Bytes: b.buffer})
	}
	b.open = false
	b.buffer = nil
	b.start = 0
}

// AddModification records a relocation entry.
func (b *Builder) AddModification(addr uint32, halfBytes int) {
	b.mods = append(b.mods, Modification{Addr: addr, HalfByte: halfBytes})
}

// Records returns the Text records flushed so far, in emission order.
func (b *Builder) Records() []TextRecord {
	return b.records
}

// Modifications returns the accumulated Modification records.
func (b *Builder) Modifications() []Modification {
	return b.mods
}

// FormatHeader renders the Header record: H^name(6, space-padded)^start(6
// hex)^length(6 hex).
func FormatHeader(name string, start, length uint32) string {
	if len(name) > 6 {
		name = name[:6]
	}
	for len(name) < 6 {
		name += " "
	}
	return fmt.Sprintf("H^%s^%06X^%06X", name, start, length)
}

// Format renders a Text record: T^start(6 hex)^byteCount(2 hex)^hex bytes.
func (r TextRecord) Format() string {
	hexBytes := fmt.Sprintf("%X", r.Bytes)
	return fmt.Sprintf("T^%06X^%02X^%s", r.Start, len(r.Bytes), hexBytes)
}

// Format renders a Modification record: M^address(6 hex)^halfByteLen(2 hex).
func (m Modification) Format() string {
	return fmt.Sprintf("M^%06X^%02X", m.Addr, m.HalfByte)
}

// FormatEnd renders the End record: E^entryPoint(6 hex).
func FormatEnd(entryPoint uint32) string {
	return fmt.Sprintf("E^%06X", entryPoint)
}
