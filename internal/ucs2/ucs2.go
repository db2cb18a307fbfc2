// File: internal/ucs2/ucs2.go

// Package ucs2 converts between Go strings and the NUL-terminated
// UCS-2LE strings used throughout EFI structures. The firmware string
// type is genuine UCS-2, not UTF-16: each character is exactly one
// 16-bit little-endian code unit and there are no surrogate pairs.
package ucs2

import (
	"encoding/binary"
	"errors"
	"unicode/utf16"
)

var (
	// ErrUnterminated is returned when no NUL code unit is found
	// within the supplied buffer.
	ErrUnterminated = errors.New("ucs2: string is not NUL-terminated")

	// ErrOddLength is returned when the buffer ends in the middle of
	// a code unit.
	ErrOddLength = errors.New("ucs2: truncated code unit")
)

// replacementChar substitutes characters outside the Basic
// Multilingual Plane, which UCS-2 cannot represent.
const replacementChar = 0xFFFD

// Encode converts s to a NUL-terminated UCS-2LE byte sequence.
func Encode(s string) []byte {
	out := make([]byte, 0, EncodedLen(s))
	for _, r := range s {
		if r > 0xFFFF || utf16.IsSurrogate(r) {
			r = replacementChar
		}
		out = binary.LittleEndian.AppendUint16(out, uint16(r))
	}
	return binary.LittleEndian.AppendUint16(out, 0)
}

// EncodedLen returns the encoded size of s in bytes, including the
// NUL terminator.
func EncodedLen(s string) int {
	n := 2 // terminator
	for range s {
		n += 2
	}
	return n
}

// Decode reads a NUL-terminated UCS-2LE string from the start of b.
// It returns the decoded string and the number of bytes consumed,
// including the terminator. Decoding fails if the buffer ends before
// a NUL code unit is seen.
func Decode(b []byte) (string, int, error) {
	var units []uint16
	for off := 0; ; off += 2 {
		if off+2 > len(b) {
			if off < len(b) {
				return "", 0, ErrOddLength
			}
			return "", 0, ErrUnterminated
		}
		u := binary.LittleEndian.Uint16(b[off : off+2])
		if u == 0 {
			return string(utf16.Decode(units)), off + 2, nil
		}
		units = append(units, u)
	}
}

// DecodeAll decodes b as UCS-2LE without requiring a terminator,
// stopping early at the first NUL if one is present. Used for
// fixed-size description fields that may or may not be padded.
func DecodeAll(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", ErrOddLength
	}
	var units []uint16
	for off := 0; off < len(b); off += 2 {
		u := binary.LittleEndian.Uint16(b[off : off+2])
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units)), nil
}
