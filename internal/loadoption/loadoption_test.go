// File: internal/loadoption/loadoption_test.go
package loadoption

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/deploymenttheory/go-efiboot/internal/devicepath"
	"github.com/deploymenttheory/go-efiboot/internal/ucs2"
)

func hdPath(t *testing.T) []byte {
	t.Helper()
	path, err := devicepath.FromText("PciRoot(0x0)/Pci(0x1,0x2)/Ata(0x0)")
	if err != nil {
		t.Fatalf("building device path: %v", err)
	}
	return path
}

// hdOption builds the "Hard disk" record: attributes, path list
// length, UCS-2 description, one chain, two bytes of optional data.
func hdOption(t *testing.T) []byte {
	t.Helper()
	path := hdPath(t)
	var buf []byte
	buf = binary.LittleEndian.AppendUint32(buf, 0x00000001)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(path)))
	buf = append(buf, ucs2.Encode("Hard disk")...)
	buf = append(buf, path...)
	return append(buf, 0xDE, 0xAD)
}

func TestDecode(t *testing.T) {
	o, err := Decode(hdOption(t))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if o.Attributes() != 1 {
		t.Errorf("Attributes = %#x; want 0x1", o.Attributes())
	}
	if !o.Active() {
		t.Error("Active = false; want true")
	}
	if o.Description() != "Hard disk" {
		t.Errorf("Description = %q; want %q", o.Description(), "Hard disk")
	}
	if o.PathCount() != 1 {
		t.Fatalf("PathCount = %d; want 1", o.PathCount())
	}
	if !bytes.Equal(o.Path(0), hdPath(t)) {
		t.Errorf("Path(0) = % X; want % X", o.Path(0), hdPath(t))
	}
	if !bytes.Equal(o.OptionalData(), []byte{0xDE, 0xAD}) {
		t.Errorf("OptionalData = % X; want DE AD", o.OptionalData())
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	encoded := hdOption(t)
	o, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got := o.Encode(); !bytes.Equal(got, encoded) {
		t.Errorf("Encode = % X; want % X", got, encoded)
	}
}

func TestDecodeRejectsTampered(t *testing.T) {
	base := hdOption(t)
	tamper := func(mutate func([]byte) []byte) []byte {
		buf := append([]byte{}, base...)
		return mutate(buf)
	}

	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty buffer", nil},
		{"below header size", base[:5]},
		{"path list length one too large", tamper(func(b []byte) []byte {
			binary.LittleEndian.PutUint16(b[4:6], binary.LittleEndian.Uint16(b[4:6])+1)
			return b
		})},
		{"path list length one too small", tamper(func(b []byte) []byte {
			binary.LittleEndian.PutUint16(b[4:6], binary.LittleEndian.Uint16(b[4:6])-1)
			return b
		})},
		{"path list length zero", tamper(func(b []byte) []byte {
			binary.LittleEndian.PutUint16(b[4:6], 0)
			return b
		})},
		{"path list length past buffer end", tamper(func(b []byte) []byte {
			binary.LittleEndian.PutUint16(b[4:6], 0xFFFF)
			return b
		})},
		{"unterminated description", base[:10]},
		{"corrupted end node length", tamper(func(b []byte) []byte {
			b[len(b)-3] = 0x05 // End node length byte
			return b
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.buf); !errors.Is(err, ErrMalformed) {
				t.Errorf("Decode error = %v; want ErrMalformed", err)
			}
		})
	}
}

func TestDecodeWithoutOptionalData(t *testing.T) {
	base := hdOption(t)
	o, err := Decode(base[:len(base)-2])
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(o.OptionalData()) != 0 {
		t.Errorf("OptionalData = % X; want empty", o.OptionalData())
	}
}

func TestNew(t *testing.T) {
	t.Run("requires a path", func(t *testing.T) {
		if _, err := New(1, "X", nil, nil); !errors.Is(err, ErrMalformed) {
			t.Errorf("New error = %v; want ErrMalformed", err)
		}
	})

	t.Run("rejects an invalid chain", func(t *testing.T) {
		if _, err := New(1, "X", [][]byte{{0x01, 0x02}}, nil); !errors.Is(err, ErrMalformed) {
			t.Errorf("New error = %v; want ErrMalformed", err)
		}
	})

	t.Run("rejects a chain with trailing bytes", func(t *testing.T) {
		path := append(hdPath(t), 0x00)
		if _, err := New(1, "X", [][]byte{path}, nil); !errors.Is(err, ErrMalformed) {
			t.Errorf("New error = %v; want ErrMalformed", err)
		}
	})
}

func TestActiveBit(t *testing.T) {
	o, err := New(0, "X", [][]byte{devicepath.End()}, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if o.Active() {
		t.Error("new option with zero attributes reports active")
	}
	o.SetActive(true)
	if !o.Active() || o.Attributes() != 1 {
		t.Errorf("after SetActive(true): active=%v attributes=%#x", o.Active(), o.Attributes())
	}
	o.SetActive(false)
	if o.Active() || o.Attributes() != 0 {
		t.Errorf("after SetActive(false): active=%v attributes=%#x", o.Active(), o.Attributes())
	}
}

func TestDeepCopies(t *testing.T) {
	path := hdPath(t)
	o, err := New(1, "X", [][]byte{path}, []byte{0x01})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	path[0] = 0xEE
	if o.Path(0)[0] == 0xEE {
		t.Error("option aliases the caller's path buffer")
	}

	got := o.Path(0)
	got[0] = 0xDD
	if o.Path(0)[0] == 0xDD {
		t.Error("Path return value aliases internal state")
	}

	data := o.OptionalData()
	data[0] = 0x99
	if o.OptionalData()[0] == 0x99 {
		t.Error("OptionalData return value aliases internal state")
	}
}

func TestEncodeRecomputesPathListLength(t *testing.T) {
	o, err := Decode(hdOption(t))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	second := devicepath.End()
	if err := o.SetPaths([][]byte{o.Path(0), second}); err != nil {
		t.Fatalf("SetPaths returned error: %v", err)
	}
	encoded := o.Encode()
	wantLen := len(hdPath(t)) + len(second)
	if got := binary.LittleEndian.Uint16(encoded[4:6]); int(got) != wantLen {
		t.Errorf("encoded path list length = %d; want %d", got, wantLen)
	}

	back, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode of re-encoded option returned error: %v", err)
	}
	if back.PathCount() != 2 {
		t.Errorf("PathCount after round trip = %d; want 2", back.PathCount())
	}
}
