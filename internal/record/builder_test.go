package record_test

import (
	"testing"

	"github.com/dgrest/sicxe-asm/internal/record"
	"github.com/stretchr/testify/require"
)

func TestBuilderSegmentsOnByteCap(t *testing.T) {
	b := record.NewBuilder()
	addr := uint32(0)
	for i := 0; i < 62; i++ {
		b.Emit(addr, []byte{0xAA})
		addr++
	}
	b.Flush()

	recs := b.Records()
	require.Len(t, recs, 3)
	require.Equal(t, 30, len(recs[0].Bytes))
	require.Equal(t, uint32(0), recs[0].Start)
	require.Equal(t, 30, len(recs[1].Bytes))
	require.Equal(t, uint32(30), recs[1].Start)
	require.Equal(t, 2, len(recs[2].Bytes))
	require.Equal(t, uint32(60), recs[2].Start)
}

func TestBuilderFlushesOnDiscontinuity(t *testing.T) {
	b := record.NewBuilder()
	b.Emit(0x1000, []byte{0x01, 0x00, 0x05})
	b.Emit(0x1010, []byte{0x4F, 0x00, 0x00}) // gap: not contiguous
	b.Flush()

	recs := b.Records()
	require.Len(t, recs, 2)
	require.Equal(t, uint32(0x1000), recs[0].Start)
	require.Equal(t, uint32(0x1010), recs[1].Start)
}

func TestFormatHeaderPadsName(t *testing.T) {
	got := record.FormatHeader("COPY", 0x1000, 0x0006)
	require.Equal(t, "H^COPY  ^001000^000006", got)
}

func TestFormatTextRecord(t *testing.T) {
	r := record.TextRecord{Start: 0x001000, Bytes: []byte{0x01, 0x00, 0x05, 0x4F, 0x00, 0x00}}
	require.Equal(t, "T^001000^06^0100054F0000", r.Format())
}

func TestFormatModificationAndEnd(t *testing.T) {
	m := record.Modification{Addr: 0x000101, HalfByte: 5}
	require.Equal(t, "M^000101^05", m.Format())
	require.Equal(t, "E^001000", record.FormatEnd(0x001000))
}
