// File: internal/bootmgr/entry.go

package bootmgr

import (
	"fmt"

	"github.com/deploymenttheory/go-efiboot/internal/devicepath"
	"github.com/deploymenttheory/go-efiboot/internal/loadoption"
	"github.com/deploymenttheory/go-efiboot/internal/types"
)

// IndexAuto marks an entry that has not been assigned a variable
// index yet. Save picks the lowest free index when it encounters it.
const IndexAuto = -1

// Entry is a load option bound to a variable family and index. It
// tracks whether it has diverged from what the store holds, so Save
// can skip untouched entries.
type Entry struct {
	typ      Type
	index    int
	opt      *loadoption.LoadOption
	modified bool

	pathText []string
}

// NewEntry creates a fresh, unsaved entry. The description must be
// non-empty and at least one device path is required. The entry
// starts active, with no index assigned, and is marked modified so
// Save will write it.
func NewEntry(t Type, description string, paths [][]byte, optionalData []byte) (*Entry, error) {
	if description == "" {
		return nil, fmt.Errorf("load option description must not be empty")
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("load option needs at least one device path")
	}
	opt, err := loadoption.New(types.LoadOptionActive, description, paths, optionalData)
	if err != nil {
		return nil, err
	}
	return &Entry{typ: t, index: IndexAuto, opt: opt, modified: true}, nil
}

// entryFromOption wraps an option decoded from the store. The entry
// starts clean.
func entryFromOption(t Type, index int, opt *loadoption.LoadOption) *Entry {
	return &Entry{typ: t, index: index, opt: opt}
}

func (e *Entry) Type() Type { return e.typ }

// Index returns the assigned variable index, or IndexAuto.
func (e *Entry) Index() int { return e.index }

// SetIndex pins the entry to a specific variable index.
func (e *Entry) SetIndex(index int) error {
	if index < 0 || index > 0xFFFF {
		return fmt.Errorf("index %d out of range", index)
	}
	e.index = index
	e.modified = true
	return nil
}

// VarName returns the entry's variable name. It panics if no index
// has been assigned yet.
func (e *Entry) VarName() string {
	if e.index == IndexAuto {
		panic("bootmgr: VarName on unassigned entry")
	}
	return e.typ.VarName(e.index)
}

// Modified reports whether the entry differs from the stored form.
func (e *Entry) Modified() bool { return e.modified }

func (e *Entry) Attributes() uint32 { return e.opt.Attributes() }

func (e *Entry) SetAttributes(attrs uint32) {
	e.opt.SetAttributes(attrs)
	e.modified = true
}

func (e *Entry) Active() bool { return e.opt.Active() }

func (e *Entry) SetActive(active bool) {
	e.opt.SetActive(active)
	e.modified = true
}

func (e *Entry) Description() string { return e.opt.Description() }

func (e *Entry) SetDescription(description string) error {
	if description == "" {
		return fmt.Errorf("load option description must not be empty")
	}
	e.opt.SetDescription(description)
	e.modified = true
	return nil
}

func (e *Entry) PathCount() int { return e.opt.PathCount() }

// Path returns a copy of the i'th device path.
func (e *Entry) Path(i int) []byte { return e.opt.Path(i) }

func (e *Entry) Paths() [][]byte { return e.opt.Paths() }

func (e *Entry) SetPaths(paths [][]byte) error {
	if len(paths) == 0 {
		return fmt.Errorf("load option needs at least one device path")
	}
	if err := e.opt.SetPaths(paths); err != nil {
		return err
	}
	e.pathText = nil
	e.modified = true
	return nil
}

func (e *Entry) SetPath(i int, path []byte) error {
	if err := e.opt.SetPath(i, path); err != nil {
		return err
	}
	e.pathText = nil
	e.modified = true
	return nil
}

// PathText returns the canonical text form of the i'th device path.
// Results are cached until the paths change.
func (e *Entry) PathText(i int) (string, error) {
	if i < 0 || i >= e.opt.PathCount() {
		return "", fmt.Errorf("path index %d out of range", i)
	}
	if e.pathText == nil {
		e.pathText = make([]string, e.opt.PathCount())
	}
	if e.pathText[i] == "" {
		text, err := devicepath.ToText(e.opt.Path(i), false, false)
		if err != nil {
			return "", err
		}
		e.pathText[i] = text
	}
	return e.pathText[i], nil
}

func (e *Entry) OptionalData() []byte { return e.opt.OptionalData() }

func (e *Entry) SetOptionalData(data []byte) {
	e.opt.SetOptionalData(data)
	e.modified = true
}

// Encode serializes the underlying load option.
func (e *Entry) Encode() []byte { return e.opt.Encode() }
