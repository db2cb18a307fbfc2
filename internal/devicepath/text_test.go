// File: internal/devicepath/text_test.go
package devicepath

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// TestTextRoundTrip feeds canonical full-form texts through both
// directions of the codec.
func TestTextRoundTrip(t *testing.T) {
	texts := []string{
		"PciRoot(0x0)",
		"Acpi(0x12345678,0x1)",
		"PciRoot(0x0)/Pci(0x1,0x2)/Ata(Primary,Master,0x0)",
		"PciRoot(0x0)/Pci(0x1F,0x2)/Sata(0x0,0xFFFF,0x0)",
		"Usb(0x1,0x0)",
		"MAC(00A0C9112233,0x1)",
		"IPv4(1.2.3.4,TCP,DHCP,5.6.7.8,9.10.11.12,255.255.255.0)",
		"IPv6(::1,UDP,0x0,2001:db8::1,0x40,fe80::1)",
		"NVMe(0x1,00-11-22-33-44-55-66-77)",
		"Uri(http://example.com/boot.efi)",
		"HD(1,GPT,ABCDEF12-3456-7890-ABCD-EF1234567890,0x800,0x100000)",
		"HD(1,MBR,0x12345678,0x3F,0x1000)",
		"CDROM(0x1,0x800,0x1000)",
		"VenMedia(ABCDEF12-3456-7890-ABCD-EF1234567890,010203)",
		"Fv(ABCDEF12-3456-7890-ABCD-EF1234567890)",
		"FvFile(ABCDEF12-3456-7890-ABCD-EF1234567890)",
		"BBS(0x2,Network Card,0x1)",
		"Path(0x1,0x4,DEADBEEF)",
		"\\EFI\\BOOT\\BOOTX64.EFI",
		"PciRoot(0x0)/Pci(0x2,0x0)/\\EFI\\fedora\\shimx64.efi",
	}
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			path, err := FromText(text)
			if err != nil {
				t.Fatalf("FromText returned error: %v", err)
			}
			if !Valid(path, len(path)) {
				t.Fatal("FromText produced an invalid chain")
			}
			got, err := ToText(path, false, false)
			if err != nil {
				t.Fatalf("ToText returned error: %v", err)
			}
			if got != text {
				t.Errorf("round trip = %q; want %q", got, text)
			}
		})
	}
}

func TestFromTextWire(t *testing.T) {
	path, err := FromText("PciRoot(0x0)/Pci(0x1,0x2)/Ata(0x0)")
	if err != nil {
		t.Fatalf("FromText returned error: %v", err)
	}
	if !bytes.Equal(path, acpiPciAta) {
		t.Errorf("FromText = % X; want % X", path, acpiPciAta)
	}
}

func TestFromTextCaseInsensitive(t *testing.T) {
	path, err := FromText("pciroot(0x0)/PCI(0x1,0x2)/ata(0x0)")
	if err != nil {
		t.Fatalf("FromText returned error: %v", err)
	}
	if !bytes.Equal(path, acpiPciAta) {
		t.Errorf("case-insensitive FromText = % X; want % X", path, acpiPciAta)
	}
}

func TestFromTextErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty text", ""},
		{"only separators", "///"},
		{"wrong argument count", "Pci(0x1)"},
		{"bad number", "PciRoot(zero)"},
		{"bad controller keyword", "Ata(Tertiary,Master,0x0)"},
		{"bad partition format", "HD(1,APM,0x0,0x0,0x0)"},
		{"bad guid", "Fv(not-a-guid)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromText(tt.text); !errors.Is(err, ErrSyntax) {
				t.Errorf("FromText(%q) error = %v; want ErrSyntax", tt.text, err)
			}
		})
	}
}

// TestFromTextOversizedNode covers tokens whose payload would not fit
// in the 16-bit node length field; the length must never wrap.
func TestFromTextOversizedNode(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"uri", "Uri(http://example.com/" + strings.Repeat("a", 70000) + ")"},
		{"file path", "\\EFI\\" + strings.Repeat("a", 40000) + ".EFI"},
		{"raw payload", "Path(0x1,0x4," + strings.Repeat("AB", 66000) + ")"},
		{"bbs description", "BBS(0x2," + strings.Repeat("a", 70000) + ",0x1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := FromText(tt.text)
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("FromText error = %v; want ErrSyntax", err)
			}
			if path != nil {
				t.Errorf("FromText returned %d bytes alongside the error", len(path))
			}
		})
	}
}

func TestToTextDisplayOnly(t *testing.T) {
	tests := []struct {
		full string
		want string
	}{
		{"Ata(Primary,Master,0x0)", "Ata(0x0)"},
		{"IPv4(1.2.3.4,TCP,DHCP,5.6.7.8,9.10.11.12,255.255.255.0)", "IPv4(1.2.3.4)"},
		{"IPv6(::1,UDP,0x0,2001:db8::1,0x40,fe80::1)", "IPv6(::1)"},
		{"HD(1,GPT,ABCDEF12-3456-7890-ABCD-EF1234567890,0x800,0x100000)", "HD(1,GPT,ABCDEF12-3456-7890-ABCD-EF1234567890)"},
		{"BBS(0x2,Network Card,0x1)", "BBS(0x2,Network Card)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			path, err := FromText(tt.full)
			if err != nil {
				t.Fatalf("FromText returned error: %v", err)
			}
			got, err := ToText(path, true, false)
			if err != nil {
				t.Fatalf("ToText returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToText(displayOnly) = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestToTextMultiInstance(t *testing.T) {
	var path []byte
	path = append(path, appendNode(nil, 0x04, 0x04, []byte{'A', 0, 0, 0})...)
	path = append(path, 0x7F, 0x01, 0x04, 0x00) // end of this instance
	path = append(path, appendNode(nil, 0x04, 0x04, []byte{'B', 0, 0, 0})...)
	path = append(path, End()...)

	got, err := ToText(path, false, false)
	if err != nil {
		t.Fatalf("ToText returned error: %v", err)
	}
	if got != "A,B" {
		t.Errorf("ToText = %q; want %q", got, "A,B")
	}
}

func TestToTextUnknownNode(t *testing.T) {
	path := appendNode(nil, 0x03, 0x7E, []byte{0xDE, 0xAD})
	path = append(path, End()...)
	got, err := ToText(path, false, false)
	if err != nil {
		t.Fatalf("ToText returned error: %v", err)
	}
	if got != "Path(0x3,0x7E,DEAD)" {
		t.Errorf("ToText = %q; want %q", got, "Path(0x3,0x7E,DEAD)")
	}
}

func TestToTextInvalidChain(t *testing.T) {
	if _, err := ToText(acpiPciAta[:10], false, false); !errors.Is(err, ErrMalformed) {
		t.Errorf("ToText error = %v; want ErrMalformed", err)
	}
}

func TestPlausible(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"ordinary chain", "PciRoot(0x0)/Pci(0x1,0x2)/Ata(0x0)", true},
		{"plain file path", "\\EFI\\BOOT\\BOOTX64.EFI", true},
		{"mistyped node name", "Scsi(0x0,0x0)", false},
		{"mistyped node after real nodes", "PciRoot(0x0)/Floppy(0x1)", false},
		{"parentheses inside a real file name", "\\EFI\\tools (backup)\\run.efi", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := FromText(tt.text)
			if err != nil {
				t.Fatalf("FromText returned error: %v", err)
			}
			if got := Plausible(path); got != tt.want {
				t.Errorf("Plausible(%q) = %v; want %v", tt.text, got, tt.want)
			}
		})
	}
}
