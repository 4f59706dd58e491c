package enumtab

import (
	"fmt"
	"strings"
)

// ID identifies an enumeration table within a Set.
type ID uint8

// Table is an immutable ordered list of labels indexed by ordinal.
type Table struct {
	id     ID
	name   string
	labels []string
	byName map[string]int
}

// NewTable creates a table from the given labels. The label at index i
// has ordinal i. Returns an error if two labels collide under
// case-insensitive comparison, or if the table is empty.
func NewTable(id ID, name string, labels ...string) (*Table, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("enum table %q: no labels", name)
	}

	byName := make(map[string]int, len(labels))
	for i, label := range labels {
		key := strings.ToLower(label)
		if prev, dup := byName[key]; dup {
			return nil, fmt.Errorf("enum table %q: label %q at ordinal %d collides with ordinal %d", name, label, i, prev)
		}
		byName[key] = i
	}

	return &Table{
		id:     id,
		name:   name,
		labels: labels,
		byName: byName,
	}, nil
}

// MustTable is like NewTable but panics on error. Intended for
// declaring built-in tables, where a bad table is a build defect.
func MustTable(id ID, name string, labels ...string) *Table {
	t, err := NewTable(id, name, labels...)
	if err != nil {
		panic(err)
	}
	return t
}

// ID returns the table identifier.
func (t *Table) ID() ID {
	return t.id
}

// Name returns the table name, used in diagnostics and listings.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of labels. Valid ordinals are 0..Len()-1.
func (t *Table) Len() int {
	return len(t.labels)
}

// Labels returns the labels in ordinal order. The returned slice must
// not be modified.
func (t *Table) Labels() []string {
	return t.labels
}

// Ordinal returns the ordinal for a label, case-insensitive exact match.
func (t *Table) Ordinal(label string) (int, error) {
	ord, ok := t.byName[strings.ToLower(label)]
	if !ok {
		return 0, fmt.Errorf("enum table %q: label %q: %w", t.name, label, ErrLabelNotFound)
	}
	return ord, nil
}

// Label returns the label for an ordinal.
func (t *Table) Label(ordinal int) (string, error) {
	if ordinal < 0 || ordinal >= len(t.labels) {
		return "", &OrdinalRangeError{Table: t.name, Ordinal: ordinal, Len: len(t.labels)}
	}
	return t.labels[ordinal], nil
}
