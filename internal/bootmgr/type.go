// File: internal/bootmgr/type.go

package bootmgr

import (
	"fmt"
	"strings"
)

// Type selects which family of load option variables a manager
// operates on. Each family has its own numbered entry variables and
// its own order variable.
type Type int

const (
	TypeBoot Type = iota
	TypeDriver
	TypeSysPrep
)

func (t Type) String() string {
	switch t {
	case TypeBoot:
		return "Boot"
	case TypeDriver:
		return "Driver"
	case TypeSysPrep:
		return "SysPrep"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// VarName returns the entry variable name for index, e.g. "Boot0001".
// The index is rendered as exactly four uppercase hex digits.
func (t Type) VarName(index int) string {
	return fmt.Sprintf("%s%04X", t, index)
}

// OrderName returns the order variable name, e.g. "BootOrder".
func (t Type) OrderName() string {
	return t.String() + "Order"
}

// ParseType maps a case-insensitive family name to its Type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "boot":
		return TypeBoot, nil
	case "driver":
		return TypeDriver, nil
	case "sysprep":
		return TypeSysPrep, nil
	}
	return 0, fmt.Errorf("unknown load option type %q", s)
}
