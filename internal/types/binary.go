// File: internal/types/binary.go
package types

import (
	"encoding/binary"
	"fmt"
)

// BinaryReader helps with reading little-endian binary data from an
// in-memory buffer. Reads past the end set a sticky error instead of
// panicking, so decode code can run a sequence of reads and check the
// error once.
type BinaryReader struct {
	data []byte
	off  int
	err  error
}

// NewBinaryReader creates a binary reader over data. The reader does
// not copy data; callers must not mutate it while reading.
func NewBinaryReader(data []byte) *BinaryReader {
	return &BinaryReader{data: data}
}

// Err returns the first out-of-bounds error encountered, if any.
func (br *BinaryReader) Err() error {
	return br.err
}

// Offset returns the number of bytes consumed so far.
func (br *BinaryReader) Offset() int {
	return br.off
}

// Remaining returns the number of unread bytes.
func (br *BinaryReader) Remaining() int {
	if br.off > len(br.data) {
		return 0
	}
	return len(br.data) - br.off
}

func (br *BinaryReader) take(n int) []byte {
	if br.err != nil {
		return nil
	}
	if br.Remaining() < n {
		br.err = fmt.Errorf("unexpected end of data: need %d bytes at offset %d, have %d", n, br.off, br.Remaining())
		return nil
	}
	b := br.data[br.off : br.off+n]
	br.off += n
	return b
}

// ReadUint8 reads a uint8.
func (br *BinaryReader) ReadUint8() uint8 {
	b := br.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// ReadUint16 reads a little-endian uint16.
func (br *BinaryReader) ReadUint16() uint16 {
	b := br.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// ReadUint32 reads a little-endian uint32.
func (br *BinaryReader) ReadUint32() uint32 {
	b := br.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// ReadUint64 reads a little-endian uint64.
func (br *BinaryReader) ReadUint64() uint64 {
	b := br.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// ReadGUID reads an EFI mixed-endian GUID.
func (br *BinaryReader) ReadGUID() GUID {
	b := br.take(GUIDLen)
	if b == nil {
		return GUID{}
	}
	return ReadGUID(b)
}

// ReadBytes reads a copy of the next length bytes.
func (br *BinaryReader) ReadBytes(length int) []byte {
	b := br.take(length)
	if b == nil {
		return nil
	}
	out := make([]byte, length)
	copy(out, b)
	return out
}

// BinaryWriter builds a little-endian binary buffer.
type BinaryWriter struct {
	buf []byte
}

// NewBinaryWriter creates an empty writer, optionally pre-sizing the
// underlying buffer.
func NewBinaryWriter(capacity int) *BinaryWriter {
	return &BinaryWriter{buf: make([]byte, 0, capacity)}
}

// Bytes returns the accumulated buffer.
func (bw *BinaryWriter) Bytes() []byte {
	return bw.buf
}

// Len returns the number of bytes written so far.
func (bw *BinaryWriter) Len() int {
	return len(bw.buf)
}

// WriteUint8 appends a uint8.
func (bw *BinaryWriter) WriteUint8(v uint8) {
	bw.buf = append(bw.buf, v)
}

// WriteUint16 appends a little-endian uint16.
func (bw *BinaryWriter) WriteUint16(v uint16) {
	bw.buf = binary.LittleEndian.AppendUint16(bw.buf, v)
}

// WriteUint32 appends a little-endian uint32.
func (bw *BinaryWriter) WriteUint32(v uint32) {
	bw.buf = binary.LittleEndian.AppendUint32(bw.buf, v)
}

// WriteUint64 appends a little-endian uint64.
func (bw *BinaryWriter) WriteUint64(v uint64) {
	bw.buf = binary.LittleEndian.AppendUint64(bw.buf, v)
}

// WriteGUID appends an EFI mixed-endian GUID.
func (bw *BinaryWriter) WriteGUID(g GUID) {
	bw.buf = append(bw.buf, g[:]...)
}

// WriteBytes appends raw bytes.
func (bw *BinaryWriter) WriteBytes(b []byte) {
	bw.buf = append(bw.buf, b...)
}
