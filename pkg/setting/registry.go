package setting

import (
	"fmt"
	"strings"

	"github.com/aeroset/aeroset-go/pkg/enumtab"
	"github.com/aeroset/aeroset-go/pkg/group"
)

// Registry is the ordered, immutable collection of setting descriptors.
// It is constructed once at startup and thereafter read-only, so it may
// be shared by reference across any number of concurrent readers.
type Registry struct {
	settings []*Setting
	byName   map[string]*Setting
	enums    *enumtab.Set
	layouts  map[group.ID]group.Layout
}

// RegistryOption configures registry construction.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	capabilities map[Capability]bool
}

// WithCapabilities sets the enabled capability set. Defs requiring a
// capability not in the set are skipped, not registered. Without this
// option every def is registered.
func WithCapabilities(caps ...Capability) RegistryOption {
	return func(o *registryOptions) {
		o.capabilities = make(map[Capability]bool, len(caps))
		for _, c := range caps {
			o.capabilities[c] = true
		}
	}
}

// NewRegistry builds the registry from declaration rows. All
// build-integrity checks run here and any failure is returned as an
// error; callers must treat a construction error as fatal, since it
// means the declaration tables were edited inconsistently.
//
// Checks performed:
//   - every def's group resolves to a declared layout
//   - field offset plus storage width lies within the group's size
//   - names are unique under case-insensitive comparison
//   - range constraints are representable in the field's storage type
//   - every enumeration reference resolves in the enum table set
//   - every default value satisfies its constraint
func NewRegistry(defs []Def, enums *enumtab.Set, layouts []group.Layout, opts ...RegistryOption) (*Registry, error) {
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		byName:  make(map[string]*Setting),
		enums:   enums,
		layouts: make(map[group.ID]group.Layout, len(layouts)),
	}
	for _, l := range layouts {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.layouts[l.ID]; dup {
			return nil, fmt.Errorf("group ID %d declared twice (%q)", l.ID, l.Name)
		}
		r.layouts[l.ID] = l
	}

	for _, def := range defs {
		if !enabled(def.Requires, o.capabilities) {
			continue
		}

		layout, ok := r.layouts[def.Group]
		if !ok {
			return nil, fmt.Errorf("setting %q: group ID %d: %w", def.Name, def.Group, group.ErrUnknownGroup)
		}

		width := def.Type.Width()
		if def.Offset < 0 || def.Offset+width > layout.Size {
			return nil, fmt.Errorf("setting %q: field [%d..%d) exceeds group %q size %d",
				def.Name, def.Offset, def.Offset+width, layout.Name, layout.Size)
		}

		key := strings.ToLower(def.Name)
		if prev, dup := r.byName[key]; dup {
			return nil, fmt.Errorf("setting name %q collides with %q", def.Name, prev.name)
		}

		if err := checkConstraint(def, enums); err != nil {
			return nil, err
		}

		s := &Setting{
			name:       def.Name,
			storage:    def.Type,
			scope:      layout.Scope,
			constraint: def.Constraint,
			groupID:    def.Group,
			offset:     def.Offset,
			defValue:   def.Default,
		}
		if err := r.Validate(s, def.Default); err != nil {
			return nil, fmt.Errorf("setting %q: default value rejected: %w", def.Name, err)
		}
		r.byName[key] = s
		r.settings = append(r.settings, s)
	}

	return r, nil
}

// enabled reports whether all required capabilities are in the enabled
// set. A nil enabled set means everything is enabled.
func enabled(requires []Capability, caps map[Capability]bool) bool {
	if caps == nil {
		return true
	}
	for _, c := range requires {
		if !caps[c] {
			return false
		}
	}
	return true
}

// checkConstraint verifies a def's constraint at construction time.
func checkConstraint(def Def, enums *enumtab.Set) error {
	if table, isEnum := def.Constraint.EnumTable(); isEnum {
		tbl, err := enums.Lookup(table)
		if err != nil {
			return fmt.Errorf("setting %q: %w", def.Name, err)
		}
		if int64(tbl.Len()-1) > def.Type.Max() {
			return fmt.Errorf("setting %q: enum table %q has %d entries, too many for %s",
				def.Name, tbl.Name(), tbl.Len(), def.Type)
		}
		return nil
	}

	min, max, _ := def.Constraint.Bounds()
	if min > max {
		return fmt.Errorf("setting %q: range [%d..%d] inverted", def.Name, min, max)
	}
	if min < def.Type.Min() || max > def.Type.Max() {
		return fmt.Errorf("setting %q: range [%d..%d] not representable in %s",
			def.Name, min, max, def.Type)
	}
	return nil
}

// Find resolves a setting name to its descriptor. Matching is
// case-insensitive and exact against the full name; there is no prefix
// or fuzzy matching.
func (r *Registry) Find(name string) (*Setting, error) {
	s, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownSetting)
	}
	return s, nil
}

// Settings returns all registered descriptors in declaration order.
// The returned slice must not be modified.
func (r *Registry) Settings() []*Setting {
	return r.settings
}

// Count returns the number of registered settings.
func (r *Registry) Count() int {
	return len(r.settings)
}

// Enums returns the enumeration table set the registry was built with.
func (r *Registry) Enums() *enumtab.Set {
	return r.enums
}

// Layout returns the declared layout of a group referenced by the
// registry.
func (r *Registry) Layout(id group.ID) (group.Layout, error) {
	l, ok := r.layouts[id]
	if !ok {
		return group.Layout{}, fmt.Errorf("group ID %d: %w", id, group.ErrUnknownGroup)
	}
	return l, nil
}

// Validate checks a candidate value against a setting's constraint.
// Range bounds are inclusive and compared with the signedness of the
// setting's storage type. Enumeration candidates are always treated as
// ordinals, never label text. Out-of-range values are rejected, never
// clamped.
func (r *Registry) Validate(s *Setting, value int64) error {
	if table, isEnum := s.constraint.EnumTable(); isEnum {
		// The table resolved at construction time; a failure here
		// means the registry was built inconsistently.
		tbl, err := r.enums.Lookup(table)
		if err != nil {
			return fmt.Errorf("setting %q: %w", s.name, err)
		}
		if value < 0 || value >= int64(tbl.Len()) {
			return &OrdinalError{Setting: s.name, Value: value, TableLen: tbl.Len()}
		}
		return nil
	}

	min, max, _ := s.constraint.Bounds()
	if value < min || value > max {
		return &RangeError{Setting: s.name, Value: value, Min: min, Max: max}
	}
	return nil
}
