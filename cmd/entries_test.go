// File: cmd/entries_test.go
package cmd

import (
	"testing"

	"github.com/deploymenttheory/go-efiboot/internal/bootmgr"
)

func TestParseID(t *testing.T) {
	order := []uint16{3, 0, 7}

	tests := []struct {
		name    string
		id      string
		want    int
		wantErr bool
	}{
		{"variable name", "Boot0007", 7, false},
		{"variable name hex digits", "BootABCD", 0xABCD, false},
		{"first position", "0", 3, false},
		{"last position", "-1", 7, false},
		{"negative from end", "-3", 3, false},
		{"position past end", "3", 0, true},
		{"negative past start", "-4", 0, true},
		{"wrong family prefix", "Driver0001", 0, true},
		{"short name", "Boot001", 0, true},
		{"bad hex digits", "BootZZZZ", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseID(bootmgr.TypeBoot, order, tt.id)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseID(%q) succeeded; want error", tt.id)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseID(%q) returned error: %v", tt.id, err)
			}
			if got != tt.want {
				t.Errorf("parseID(%q) = %d; want %d", tt.id, got, tt.want)
			}
		})
	}
}

func TestOrderEditing(t *testing.T) {
	t.Run("orderPosition", func(t *testing.T) {
		order := []uint16{3, 0, 7}
		if got := orderPosition(order, 7); got != 2 {
			t.Errorf("orderPosition = %d; want 2", got)
		}
		if got := orderPosition(order, 5); got != -1 {
			t.Errorf("orderPosition of absent index = %d; want -1", got)
		}
	})

	t.Run("removeIndex drops every occurrence", func(t *testing.T) {
		order := []uint16{3, 0, 3, 7}
		got := removeIndex(order, 3)
		if len(got) != 2 || got[0] != 0 || got[1] != 7 {
			t.Errorf("removeIndex = %v; want [0 7]", got)
		}
	})

	t.Run("moveIndex", func(t *testing.T) {
		tests := []struct {
			name  string
			order []uint16
			index int
			pos   int
			want  []uint16
		}{
			{"to front", []uint16{3, 0, 7}, 7, 0, []uint16{7, 3, 0}},
			{"to middle", []uint16{3, 0, 7}, 7, 1, []uint16{3, 7, 0}},
			{"to end via -1", []uint16{3, 0, 7}, 3, -1, []uint16{0, 7, 3}},
			{"second to last", []uint16{3, 0, 7}, 3, -2, []uint16{0, 3, 7}},
			{"absent index is inserted", []uint16{3, 0}, 7, 1, []uint16{3, 7, 0}},
			{"duplicates collapse", []uint16{3, 7, 3, 0}, 3, 0, []uint16{3, 7, 0}},
		}
		for _, tt := range tests {
			got := moveIndex(tt.order, tt.index, tt.pos)
			if len(got) != len(tt.want) {
				t.Errorf("%s: moveIndex = %v; want %v", tt.name, got, tt.want)
				continue
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("%s: moveIndex = %v; want %v", tt.name, got, tt.want)
					break
				}
			}
		}
	})

	t.Run("insertIndex clamps the position", func(t *testing.T) {
		got := insertIndex([]uint16{1, 2}, 99, 5)
		if len(got) != 3 || got[2] != 5 {
			t.Errorf("insertIndex = %v; want [1 2 5]", got)
		}
		got = insertIndex([]uint16{1, 2}, 0, 5)
		if len(got) != 3 || got[0] != 5 {
			t.Errorf("insertIndex = %v; want [5 1 2]", got)
		}
	})
}
