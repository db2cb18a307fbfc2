// File: cmd/entries.go

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deploymenttheory/go-efiboot/internal/bootmgr"
)

// parseID resolves a command-line entry id to a variable index. Two
// forms are accepted: a full variable name for the active family
// ("Boot0001"), or a position in the order list, where negative
// positions count back from the end (-1 is the last entry).
func parseID(t bootmgr.Type, order []uint16, id string) (int, error) {
	if rest, ok := strings.CutPrefix(id, t.String()); ok && len(rest) == 4 {
		index, err := strconv.ParseUint(rest, 16, 16)
		if err != nil {
			return 0, fmt.Errorf("bad variable name %q", id)
		}
		return int(index), nil
	}
	pos, err := strconv.Atoi(id)
	if err != nil {
		return 0, fmt.Errorf("bad entry id %q", id)
	}
	if pos < 0 {
		pos += len(order)
	}
	if pos < 0 || pos >= len(order) {
		return 0, fmt.Errorf("position %s is outside the order list (%d entries)", id, len(order))
	}
	return int(order[pos]), nil
}

// orderPosition returns the first position of index in order, or -1.
func orderPosition(order []uint16, index int) int {
	for i, v := range order {
		if int(v) == index {
			return i
		}
	}
	return -1
}

// removeIndex drops every occurrence of index from order.
func removeIndex(order []uint16, index int) []uint16 {
	out := order[:0]
	for _, v := range order {
		if int(v) != index {
			out = append(out, v)
		}
	}
	return out
}

// moveIndex places index at position pos in order, removing any
// occurrences it already has. Negative positions count back from the
// end of the resulting list (-1 is last), matching parseID.
func moveIndex(order []uint16, index, pos int) []uint16 {
	order = removeIndex(order, index)
	if pos < 0 {
		pos += len(order) + 1
	}
	return insertIndex(order, pos, index)
}

// insertIndex places index at position pos, clamped to the list.
func insertIndex(order []uint16, pos, index int) []uint16 {
	if pos < 0 {
		pos = 0
	}
	if pos > len(order) {
		pos = len(order)
	}
	order = append(order, 0)
	copy(order[pos+1:], order[pos:])
	order[pos] = uint16(index)
	return order
}
