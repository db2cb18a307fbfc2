// File: internal/types/guid.go
package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GUID is an EFI GUID in its on-wire byte order: the first three
// groups are little-endian, the final eight bytes are stored as-is.
// This differs from RFC 4122 UUIDs, which are fully big-endian; the
// textual form is identical.
type GUID [16]byte

// GUIDLen is the encoded size of a GUID.
const GUIDLen = 16

// EFIGlobalVariable is the vendor GUID owning the Boot####, Driver####,
// SysPrep#### and *Order variables.
var EFIGlobalVariable = MustParseGUID("8BE4DF61-93CA-11D2-AA0D-00E098032B8C")

// ParseGUID parses the canonical 8-4-4-4-12 textual form into an EFI
// mixed-endian GUID. Case is ignored.
func ParseGUID(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, fmt.Errorf("invalid GUID %q: %w", s, err)
	}
	return GUIDFromUUID(u), nil
}

// MustParseGUID is ParseGUID for compile-time constants; it panics on
// malformed input.
func MustParseGUID(s string) GUID {
	g, err := ParseGUID(s)
	if err != nil {
		panic(err)
	}
	return g
}

// GUIDFromUUID converts a big-endian RFC 4122 UUID to the EFI wire
// representation.
func GUIDFromUUID(u uuid.UUID) GUID {
	var g GUID
	g[0], g[1], g[2], g[3] = u[3], u[2], u[1], u[0]
	g[4], g[5] = u[5], u[4]
	g[6], g[7] = u[7], u[6]
	copy(g[8:], u[8:])
	return g
}

// UUID converts the EFI wire representation back to an RFC 4122 UUID.
func (g GUID) UUID() uuid.UUID {
	var u uuid.UUID
	u[0], u[1], u[2], u[3] = g[3], g[2], g[1], g[0]
	u[4], u[5] = g[5], g[4]
	u[6], u[7] = g[7], g[6]
	copy(u[8:], g[8:])
	return u
}

// String returns the canonical uppercase textual form used in device
// path text. Note that efivarfs filenames use the lowercase form; the
// store lowercases as needed.
func (g GUID) String() string {
	return strings.ToUpper(g.UUID().String())
}

// ReadGUID decodes a GUID from the start of b, which must be at least
// GUIDLen bytes.
func ReadGUID(b []byte) GUID {
	var g GUID
	copy(g[:], b[:GUIDLen])
	return g
}

// PutGUID encodes g at the start of b, which must be at least GUIDLen
// bytes.
func PutGUID(b []byte, g GUID) {
	copy(b[:GUIDLen], g[:])
}
