// File: internal/efivars/memstore.go
package efivars

import "sort"

// MemStore is an in-memory Store used by tests and dry runs.
type MemStore struct {
	vars map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{vars: make(map[string][]byte)}
}

// Read returns a copy of the named variable's data.
func (s *MemStore) Read(name string) ([]byte, error) {
	data, ok := s.vars[name]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write stores a copy of data under name.
func (s *MemStore) Write(name string, data []byte) error {
	owned := make([]byte, len(data))
	copy(owned, data)
	s.vars[name] = owned
	return nil
}

// Delete removes the named variable.
func (s *MemStore) Delete(name string) error {
	if _, ok := s.vars[name]; !ok {
		return ErrNotFound
	}
	delete(s.vars, name)
	return nil
}

// Exists reports whether the named variable is present.
func (s *MemStore) Exists(name string) bool {
	_, ok := s.vars[name]
	return ok
}

// Names returns the sorted variable names currently stored.
func (s *MemStore) Names() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
