package setting

import (
	"github.com/aeroset/aeroset-go/pkg/group"
)

// Capability names a build/runtime feature that gates the registration
// of settings. The full declaration set is always representable; the
// enabled capability set chosen at registry construction decides which
// settings are registered.
type Capability string

// Def is one declaration-time settings table row. Defs carry no scope:
// scope is a property of the owning group and is derived from its
// layout during registry construction.
type Def struct {
	// Name is the operator-facing setting name, unique
	// (case-insensitive) across the whole table.
	Name string

	// Type is the storage type of the backing field.
	Type StorageType

	// Constraint restricts legal values.
	Constraint Constraint

	// Group is the owning configuration group.
	Group group.ID

	// Offset is the byte offset of the backing field within one
	// instance of the group.
	Offset int

	// Default is the value the setting resets to. Must satisfy the
	// constraint; checked at registry construction.
	Default int64

	// Requires lists capabilities that must all be enabled for this
	// setting to be registered. Empty means always registered.
	Requires []Capability
}

// Setting is one resolved, immutable descriptor. The full set of
// Settings is the registry's schema and does not change at runtime.
type Setting struct {
	name       string
	storage    StorageType
	scope      group.Scope
	constraint Constraint
	groupID    group.ID
	offset     int
	defValue   int64
}

// Name returns the setting name.
func (s *Setting) Name() string { return s.name }

// Type returns the storage type.
func (s *Setting) Type() StorageType { return s.storage }

// Scope returns the scope class, derived from the owning group.
func (s *Setting) Scope() group.Scope { return s.scope }

// Constraint returns the value constraint.
func (s *Setting) Constraint() Constraint { return s.constraint }

// Group returns the owning configuration group ID.
func (s *Setting) Group() group.ID { return s.groupID }

// Offset returns the byte offset of the backing field within one group
// instance.
func (s *Setting) Offset() int { return s.offset }

// Default returns the value the setting resets to.
func (s *Setting) Default() int64 { return s.defValue }
