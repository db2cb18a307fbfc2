// File: internal/bootmgr/manager.go

// Package bootmgr manages EFI load option entries and their order
// variables on top of a variable store.
package bootmgr

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/deploymenttheory/go-efiboot/internal/efivars"
	"github.com/deploymenttheory/go-efiboot/internal/loadoption"
)

// ErrNoFreeIndex is returned when every index in a variable family is
// already taken.
var ErrNoFreeIndex = errors.New("no free load option index")

// Manager reads and writes entries and order variables through a
// Store.
type Manager struct {
	store efivars.Store
	log   *logrus.Logger
}

// NewManager creates a manager over store.
func NewManager(store efivars.Store, log *logrus.Logger) *Manager {
	if log == nil {
		log = logrus.New()
	}
	return &Manager{store: store, log: log}
}

// Load reads and decodes one entry. efivars.ErrNotFound passes
// through when the variable is absent.
func (m *Manager) Load(t Type, index int) (*Entry, error) {
	name := t.VarName(index)
	data, err := m.store.Read(name)
	if err != nil {
		if errors.Is(err, efivars.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	opt, err := loadoption.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	return entryFromOption(t, index, opt), nil
}

// LoadAll loads every entry listed in the order variable, in order.
// An absent order variable yields an empty list. Any entry that fails
// to load or decode aborts the whole call.
func (m *Manager) LoadAll(t Type) ([]*Entry, error) {
	order, err := m.Order(t)
	if err != nil {
		return nil, err
	}
	entries := make([]*Entry, 0, len(order))
	for _, index := range order {
		e, err := m.Load(t, int(index))
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Exists reports whether the entry variable for index is present.
func (m *Manager) Exists(t Type, index int) bool {
	return m.store.Exists(t.VarName(index))
}

// AutoIndex returns the lowest index whose entry variable does not
// exist yet.
func (m *Manager) AutoIndex(t Type) (int, error) {
	for index := 0; index <= 0xFFFF; index++ {
		if !m.store.Exists(t.VarName(index)) {
			return index, nil
		}
	}
	return 0, ErrNoFreeIndex
}

// Save writes the entry's variable. Unmodified entries are left
// alone. An unassigned entry gets the lowest free index first. The
// modified flag is cleared only after the write succeeds.
func (m *Manager) Save(e *Entry) error {
	if !e.modified {
		return nil
	}
	if e.index == IndexAuto {
		index, err := m.AutoIndex(e.typ)
		if err != nil {
			return err
		}
		e.index = index
	}
	name := e.VarName()
	m.log.WithFields(logrus.Fields{"variable": name, "description": e.Description()}).Debug("saving entry")
	if err := m.store.Write(name, e.Encode()); err != nil {
		return fmt.Errorf("saving %s: %w", name, err)
	}
	e.modified = false
	return nil
}

// SaveAll saves every entry and then rewrites the order variable to
// list them in the given sequence. All entries must belong to family
// t; the check runs before anything is written.
func (m *Manager) SaveAll(t Type, entries []*Entry) error {
	for _, e := range entries {
		if e.typ != t {
			return fmt.Errorf("entry %q is a %s option, not %s", e.Description(), e.typ, t)
		}
	}
	for _, e := range entries {
		if err := m.Save(e); err != nil {
			return err
		}
	}
	order := make([]uint16, len(entries))
	for i, e := range entries {
		order[i] = uint16(e.index)
	}
	return m.SetOrder(t, order)
}

// Delete removes the entry's variable. The order variable is not
// touched; callers that want the index gone from the order rewrite it
// themselves.
func (m *Manager) Delete(e *Entry) error {
	if e.index == IndexAuto {
		return fmt.Errorf("entry %q has no index", e.Description())
	}
	name := e.VarName()
	m.log.WithField("variable", name).Debug("deleting entry")
	if err := m.store.Delete(name); err != nil {
		return fmt.Errorf("deleting %s: %w", name, err)
	}
	return nil
}

// Order returns the indexes in the family's order variable. An absent
// variable yields an empty slice.
func (m *Manager) Order(t Type) ([]uint16, error) {
	name := t.OrderName()
	data, err := m.store.Read(name)
	if err != nil {
		if errors.Is(err, efivars.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("reading %s: odd length %d", name, len(data))
	}
	order := make([]uint16, len(data)/2)
	for i := range order {
		order[i] = binary.LittleEndian.Uint16(data[2*i:])
	}
	return order, nil
}

// SetOrder rewrites the family's order variable.
func (m *Manager) SetOrder(t Type, order []uint16) error {
	name := t.OrderName()
	data := make([]byte, 2*len(order))
	for i, index := range order {
		binary.LittleEndian.PutUint16(data[2*i:], index)
	}
	m.log.WithFields(logrus.Fields{"variable": name, "entries": len(order)}).Debug("writing order")
	if err := m.store.Write(name, data); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
