package enumtab

import (
	"errors"
	"fmt"
)

// Enumeration lookup errors.
var (
	ErrUnknownTable  = errors.New("unknown enum table")
	ErrLabelNotFound = errors.New("label not found")
)

// OrdinalRangeError reports an ordinal outside a table's valid range.
type OrdinalRangeError struct {
	Table   string
	Ordinal int
	Len     int
}

// Error implements the error interface.
func (e *OrdinalRangeError) Error() string {
	return fmt.Sprintf("enum table %q: ordinal %d out of range (table has %d labels)", e.Table, e.Ordinal, e.Len)
}

// Set is an immutable registry of enumeration tables keyed by ID.
type Set struct {
	tables map[ID]*Table
	order  []ID
}

// NewSet creates a set from the given tables. Returns an error on a
// duplicate table ID.
func NewSet(tables ...*Table) (*Set, error) {
	s := &Set{
		tables: make(map[ID]*Table, len(tables)),
		order:  make([]ID, 0, len(tables)),
	}
	for _, t := range tables {
		if _, dup := s.tables[t.id]; dup {
			return nil, fmt.Errorf("enum table ID %d registered twice (%q)", t.id, t.name)
		}
		s.tables[t.id] = t
		s.order = append(s.order, t.id)
	}
	return s, nil
}

// Lookup returns the table with the given ID.
func (s *Set) Lookup(id ID) (*Table, error) {
	t, ok := s.tables[id]
	if !ok {
		return nil, fmt.Errorf("enum table ID %d: %w", id, ErrUnknownTable)
	}
	return t, nil
}

// OrdinalOf resolves a label to its ordinal in the given table.
// Matching is case-insensitive and exact.
func (s *Set) OrdinalOf(id ID, label string) (int, error) {
	t, err := s.Lookup(id)
	if err != nil {
		return 0, err
	}
	return t.Ordinal(label)
}

// LabelOf resolves an ordinal to its label in the given table.
func (s *Set) LabelOf(id ID, ordinal int) (string, error) {
	t, err := s.Lookup(id)
	if err != nil {
		return "", err
	}
	return t.Label(ordinal)
}

// Len returns the number of registered tables.
func (s *Set) Len() int {
	return len(s.tables)
}

// Tables returns the tables in registration order.
func (s *Set) Tables() []*Table {
	out := make([]*Table, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.tables[id])
	}
	return out
}
