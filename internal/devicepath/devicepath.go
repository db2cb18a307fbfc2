// File: internal/devicepath/devicepath.go

// Package devicepath implements the EFI device path codec: validation
// and length computation over the packed binary node chain, and
// bidirectional conversion between the binary form and the canonical
// textual form (e.g. "PciRoot(0x0)/Pci(0x1,0x2)/Ata(0x0)").
//
// A device path is a sequence of nodes, each carrying a 4-byte header
// (type, subtype, 16-bit little-endian total length including the
// header) and a kind-specific payload, terminated by an
// end-of-entire-path node. The conversion layer is driven by a
// per-kind registry so that node kinds stay independent of each other.
package devicepath

import (
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-efiboot/internal/types"
)

var (
	// ErrMalformed is wrapped by all binary-level validation errors.
	ErrMalformed = errors.New("malformed device path")

	// ErrSyntax is wrapped by all text-level parse errors.
	ErrSyntax = errors.New("invalid device path text")
)

// End is the end-of-entire-path node. Appended to every chain the
// codec produces; also the minimal valid device path on its own.
func End() []byte {
	return []byte{types.TypeEnd, types.EndSubTypeEntire, types.EndNodeLen, 0x00}
}

// nodeHeader reads the node header at b[off:]. ok is false when fewer
// than NodeHeaderLen bytes remain.
func nodeHeader(b []byte, off int) (typ, sub uint8, length int, ok bool) {
	if off < 0 || off+types.NodeHeaderLen > len(b) {
		return 0, 0, 0, false
	}
	typ = b[off]
	sub = b[off+1]
	length = int(b[off+2]) | int(b[off+3])<<8
	return typ, sub, length, true
}

// Valid reports whether b starts with a well-formed device path chain.
//
// The walk rejects any node whose declared length is smaller than the
// node header, or which extends past the supplied buffer. When
// maxLen > 0 the chain must additionally fit within maxLen bytes and
// reach an end-of-entire-path node inside that bound; with maxLen <= 0
// the buffer's own length is the only bound (trusted-length callers).
func Valid(b []byte, maxLen int) bool {
	limit := len(b)
	if maxLen > 0 && maxLen < limit {
		limit = maxLen
	}

	off := 0
	for {
		typ, sub, length, ok := nodeHeader(b, off)
		if !ok || off+types.NodeHeaderLen > limit {
			return false
		}
		if length < types.NodeHeaderLen || off+length > limit {
			return false
		}
		off += length
		if typ == types.TypeEnd && sub == types.EndSubTypeEntire {
			return true
		}
	}
}

// Len returns the encoded length in bytes of the first complete chain
// in b, up to and including its end-of-entire-path node. Trailing
// bytes beyond the first chain are ignored; callers holding several
// concatenated chains advance by the returned length and repeat.
// Returns 0 if the chain is malformed.
func Len(b []byte) int {
	off := 0
	for {
		typ, sub, length, ok := nodeHeader(b, off)
		if !ok || length < types.NodeHeaderLen || off+length > len(b) {
			return 0
		}
		off += length
		if typ == types.TypeEnd && sub == types.EndSubTypeEntire {
			return off
		}
	}
}

// Split cuts a packed file-path-list region into its constituent
// chains. Every byte of the region must belong to a valid chain and
// at least one chain must be present.
func Split(region []byte) ([][]byte, error) {
	var paths [][]byte
	remaining := region
	for len(remaining) > 0 {
		if !Valid(remaining, len(remaining)) {
			return nil, fmt.Errorf("%w: invalid chain at offset %d of path list", ErrMalformed, len(region)-len(remaining))
		}
		n := Len(remaining)
		path := make([]byte, n)
		copy(path, remaining[:n])
		paths = append(paths, path)
		remaining = remaining[n:]
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: empty path list", ErrMalformed)
	}
	return paths, nil
}

// maxNodePayload is the largest payload one node can carry: the
// length field is 16 bits and includes the 4-byte header.
const maxNodePayload = 0xFFFF - types.NodeHeaderLen

// appendNode appends a node with the given type, subtype and payload,
// filling in the length field. Callers with variable-length payloads
// must bound them to maxNodePayload first.
func appendNode(dst []byte, typ, sub uint8, payload []byte) []byte {
	length := types.NodeHeaderLen + len(payload)
	dst = append(dst, typ, sub, byte(length), byte(length>>8))
	return append(dst, payload...)
}
