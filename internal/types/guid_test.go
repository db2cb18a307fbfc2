// File: internal/types/guid_test.go
package types

import (
	"bytes"
	"testing"
)

func TestParseGUIDWireOrder(t *testing.T) {
	g, err := ParseGUID("8BE4DF61-93CA-11D2-AA0D-00E098032B8C")
	if err != nil {
		t.Fatalf("ParseGUID returned error: %v", err)
	}
	// First three groups little-endian, rest as written.
	want := []byte{
		0x61, 0xDF, 0xE4, 0x8B,
		0xCA, 0x93,
		0xD2, 0x11,
		0xAA, 0x0D, 0x00, 0xE0, 0x98, 0x03, 0x2B, 0x8C,
	}
	if !bytes.Equal(g[:], want) {
		t.Errorf("wire bytes = % X; want % X", g[:], want)
	}
}

func TestGUIDString(t *testing.T) {
	const text = "8BE4DF61-93CA-11D2-AA0D-00E098032B8C"
	g := MustParseGUID(text)
	if got := g.String(); got != text {
		t.Errorf("String = %q; want %q", got, text)
	}
	// Case-insensitive parse.
	lower, err := ParseGUID("8be4df61-93ca-11d2-aa0d-00e098032b8c")
	if err != nil {
		t.Fatalf("ParseGUID returned error: %v", err)
	}
	if lower != g {
		t.Error("lowercase text parsed to a different GUID")
	}
}

func TestGUIDUUIDRoundTrip(t *testing.T) {
	g := MustParseGUID("ABCDEF12-3456-7890-ABCD-EF1234567890")
	if back := GUIDFromUUID(g.UUID()); back != g {
		t.Errorf("UUID round trip = %v; want %v", back, g)
	}
}

func TestReadPutGUID(t *testing.T) {
	g := MustParseGUID("ABCDEF12-3456-7890-ABCD-EF1234567890")
	buf := make([]byte, GUIDLen)
	PutGUID(buf, g)
	if got := ReadGUID(buf); got != g {
		t.Errorf("ReadGUID(PutGUID) = %v; want %v", got, g)
	}
}

func TestEISAPnPID(t *testing.T) {
	if got := EISAPnPID(0x0A03); got != 0x0A0341D0 {
		t.Errorf("EISAPnPID(0x0A03) = %#X; want 0x0A0341D0", got)
	}
	if PNPIDPCIRoot != 0x0A0341D0 {
		t.Errorf("PNPIDPCIRoot = %#X; want 0x0A0341D0", PNPIDPCIRoot)
	}
}

func TestParseGUIDRejectsGarbage(t *testing.T) {
	if _, err := ParseGUID("not-a-guid"); err == nil {
		t.Error("ParseGUID accepted malformed input")
	}
}
