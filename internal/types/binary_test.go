// File: internal/types/binary_test.go
package types

import (
	"bytes"
	"testing"
)

func TestBinaryReader(t *testing.T) {
	data := []byte{
		0x01,
		0x02, 0x03,
		0x04, 0x05, 0x06, 0x07,
		0xAA, 0xBB,
	}
	br := NewBinaryReader(data)

	if got := br.ReadUint8(); got != 0x01 {
		t.Errorf("ReadUint8 = %#x; want 0x01", got)
	}
	if got := br.ReadUint16(); got != 0x0302 {
		t.Errorf("ReadUint16 = %#x; want 0x0302", got)
	}
	if got := br.ReadUint32(); got != 0x07060504 {
		t.Errorf("ReadUint32 = %#x; want 0x07060504", got)
	}
	if got := br.ReadBytes(2); !bytes.Equal(got, []byte{0xAA, 0xBB}) {
		t.Errorf("ReadBytes = % X; want AA BB", got)
	}
	if br.Err() != nil {
		t.Errorf("Err = %v; want nil", br.Err())
	}
	if br.Remaining() != 0 || br.Offset() != len(data) {
		t.Errorf("Remaining = %d, Offset = %d; want 0, %d", br.Remaining(), br.Offset(), len(data))
	}
}

func TestBinaryReaderStickyError(t *testing.T) {
	br := NewBinaryReader([]byte{0x01})
	if got := br.ReadUint32(); got != 0 {
		t.Errorf("short ReadUint32 = %#x; want 0", got)
	}
	if br.Err() == nil {
		t.Fatal("Err = nil after out-of-bounds read")
	}
	// Subsequent reads keep returning zero values.
	if got := br.ReadUint8(); got != 0 {
		t.Errorf("ReadUint8 after error = %#x; want 0", got)
	}
}

func TestBinaryWriter(t *testing.T) {
	bw := NewBinaryWriter(16)
	bw.WriteUint8(0x01)
	bw.WriteUint16(0x0302)
	bw.WriteUint32(0x07060504)
	bw.WriteBytes([]byte{0xAA})

	want := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0xAA}
	if got := bw.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("Bytes = % X; want % X", got, want)
	}
	if bw.Len() != len(want) {
		t.Errorf("Len = %d; want %d", bw.Len(), len(want))
	}
}

func TestBinaryReadWriteGUID(t *testing.T) {
	g := MustParseGUID("ABCDEF12-3456-7890-ABCD-EF1234567890")
	bw := NewBinaryWriter(GUIDLen)
	bw.WriteGUID(g)
	br := NewBinaryReader(bw.Bytes())
	if got := br.ReadGUID(); got != g {
		t.Errorf("ReadGUID = %v; want %v", got, g)
	}
}
