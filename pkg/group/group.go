// Package group models configuration groups: fixed-size blocks of
// memory, each holding one struct-shaped set of related settings. A
// group exists either once system-wide or once per tuning profile.
//
// The settings core never touches raw addresses; each group instance is
// exposed as a byte-slice window into the group's backing block.
package group

import (
	"errors"
	"fmt"
)

// ErrUnknownGroup is returned when a group ID is not registered.
var ErrUnknownGroup = errors.New("unknown configuration group")

// ID identifies a configuration group.
type ID uint8

// Scope describes how many instances of a group exist and how an
// instance is selected.
type Scope uint8

const (
	// ScopeGlobal means one instance exists system-wide.
	ScopeGlobal Scope = 0

	// ScopeProfile means one instance exists per PID tuning profile,
	// selected by the active profile index.
	ScopeProfile Scope = 1

	// ScopeRateProfile means one instance exists per rate profile,
	// selected by the active rate profile index.
	ScopeRateProfile Scope = 2
)

// String returns the scope name.
func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "GLOBAL"
	case ScopeProfile:
		return "PROFILE"
	case ScopeRateProfile:
		return "RATE_PROFILE"
	default:
		return "UNKNOWN"
	}
}

// Layout declares the shape of a configuration group: its instance size
// in bytes, how many instances exist, and the scope that selects among
// them. Layouts are fixed at build time.
type Layout struct {
	// ID is the group identifier.
	ID ID

	// Name is the group name, used in diagnostics.
	Name string

	// Size is the size of one instance in bytes. This is also the
	// stride between instances of a multi-instance group.
	Size int

	// Count is the number of instances. Must be 1 for ScopeGlobal.
	Count int

	// Scope selects among instances.
	Scope Scope
}

// Validate checks the layout declaration.
func (l Layout) Validate() error {
	if l.Size <= 0 {
		return fmt.Errorf("group %q: size %d invalid", l.Name, l.Size)
	}
	if l.Count <= 0 {
		return fmt.Errorf("group %q: instance count %d invalid", l.Name, l.Count)
	}
	if l.Scope == ScopeGlobal && l.Count != 1 {
		return fmt.Errorf("group %q: global scope requires exactly 1 instance, got %d", l.Name, l.Count)
	}
	return nil
}

// block is one group's backing memory: Count instances of Size bytes.
type block struct {
	layout Layout
	data   []byte
}

// Set owns the live backing memory for a collection of configuration
// groups. Construction allocates zeroed blocks; resetting to defaults
// is the configuration subsystem's job, not the Set's.
//
// The Set itself is not safe for concurrent writers; callers must
// serialize writes to a given group.
type Set struct {
	blocks map[ID]*block
	order  []ID
}

// NewSet allocates backing memory for the given layouts.
func NewSet(layouts ...Layout) (*Set, error) {
	s := &Set{
		blocks: make(map[ID]*block, len(layouts)),
		order:  make([]ID, 0, len(layouts)),
	}
	for _, l := range layouts {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.blocks[l.ID]; dup {
			return nil, fmt.Errorf("group ID %d registered twice (%q)", l.ID, l.Name)
		}
		s.blocks[l.ID] = &block{
			layout: l,
			data:   make([]byte, l.Size*l.Count),
		}
		s.order = append(s.order, l.ID)
	}
	return s, nil
}

// Layout returns the layout for a group ID.
func (s *Set) Layout(id ID) (Layout, error) {
	b, ok := s.blocks[id]
	if !ok {
		return Layout{}, fmt.Errorf("group ID %d: %w", id, ErrUnknownGroup)
	}
	return b.layout, nil
}

// Instance returns the byte window for one instance of a group.
// index must be in 0..Count-1.
func (s *Set) Instance(id ID, index int) ([]byte, error) {
	b, ok := s.blocks[id]
	if !ok {
		return nil, fmt.Errorf("group ID %d: %w", id, ErrUnknownGroup)
	}
	if index < 0 || index >= b.layout.Count {
		return nil, fmt.Errorf("group %q: instance %d out of range (count %d)", b.layout.Name, index, b.layout.Count)
	}
	start := index * b.layout.Size
	return b.data[start : start+b.layout.Size : start+b.layout.Size], nil
}

// Layouts returns the registered layouts in registration order.
func (s *Set) Layouts() []Layout {
	out := make([]Layout, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.blocks[id].layout)
	}
	return out
}
