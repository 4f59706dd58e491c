package setting

import (
	"encoding/binary"
	"fmt"

	"github.com/aeroset/aeroset-go/pkg/group"
)

// NoProfile is passed as the profile index when accessing a global
// setting. Global settings ignore any supplied index; scoped settings
// reject NoProfile with ErrProfileRequired.
const NoProfile = -1

// Accessor binds a registry to live configuration group memory and
// performs typed field access. Multi-byte fields are little-endian.
//
// The accessor holds no mutable state of its own; the mutable state is
// the group memory, and callers must serialize concurrent writes to a
// given group.
type Accessor struct {
	reg    *Registry
	groups *group.Set
}

// NewAccessor creates an accessor over the given group memory. Every
// group layout the registry was built against must be present in the
// set with the same declared shape.
func NewAccessor(reg *Registry, groups *group.Set) (*Accessor, error) {
	for _, s := range reg.Settings() {
		declared, err := reg.Layout(s.groupID)
		if err != nil {
			return nil, err
		}
		live, err := groups.Layout(s.groupID)
		if err != nil {
			return nil, fmt.Errorf("setting %q: %w", s.name, err)
		}
		if live.Size != declared.Size || live.Count != declared.Count || live.Scope != declared.Scope {
			return nil, fmt.Errorf("group %q: live layout %+v does not match declared %+v",
				declared.Name, live, declared)
		}
	}
	return &Accessor{reg: reg, groups: groups}, nil
}

// Registry returns the registry the accessor was built with.
func (a *Accessor) Registry() *Registry {
	return a.reg
}

// Read retrieves the current value of a setting, sign- or zero-extended
// to int64 per the storage type.
func (a *Accessor) Read(s *Setting, profile int) (int64, error) {
	field, err := a.field(s, profile)
	if err != nil {
		return 0, err
	}

	switch s.storage {
	case TypeUint8:
		return int64(field[0]), nil
	case TypeInt8:
		return int64(int8(field[0])), nil
	case TypeUint16:
		return int64(binary.LittleEndian.Uint16(field)), nil
	default:
		return int64(int16(binary.LittleEndian.Uint16(field))), nil
	}
}

// Write validates value against the setting's constraint and stores it,
// narrowed to the field's exact byte width. Validation always runs
// here, so a caller that skips Registry.Validate cannot corrupt
// storage.
func (a *Accessor) Write(s *Setting, profile int, value int64) error {
	if err := a.reg.Validate(s, value); err != nil {
		return err
	}

	field, err := a.field(s, profile)
	if err != nil {
		return err
	}

	switch s.storage {
	case TypeUint8, TypeInt8:
		field[0] = byte(value)
	default:
		binary.LittleEndian.PutUint16(field, uint16(value))
	}
	return nil
}

// ApplyDefaults writes every registered setting's default value to
// every instance of its owning group. Defaults were validated at
// registry construction, so this cannot fail on a consistent build.
func (a *Accessor) ApplyDefaults() error {
	for _, s := range a.reg.Settings() {
		layout, err := a.groups.Layout(s.groupID)
		if err != nil {
			return fmt.Errorf("setting %q: %w", s.name, err)
		}
		if s.scope == group.ScopeGlobal {
			if err := a.Write(s, NoProfile, s.defValue); err != nil {
				return err
			}
			continue
		}
		for i := 0; i < layout.Count; i++ {
			if err := a.Write(s, i, s.defValue); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadLabel reads the current value and, for enumeration-constrained
// settings, resolves it to its label. Range-constrained settings get
// the decimal representation.
func (a *Accessor) ReadLabel(s *Setting, profile int) (string, error) {
	v, err := a.Read(s, profile)
	if err != nil {
		return "", err
	}
	if table, isEnum := s.constraint.EnumTable(); isEnum {
		return a.reg.Enums().LabelOf(table, int(v))
	}
	return fmt.Sprintf("%d", v), nil
}

// field resolves the storage location of a setting's backing field as a
// byte window of exactly the field's width. This is the only place
// width-indexed raw access occurs.
func (a *Accessor) field(s *Setting, profile int) ([]byte, error) {
	layout, err := a.groups.Layout(s.groupID)
	if err != nil {
		return nil, fmt.Errorf("setting %q: %w", s.name, err)
	}

	index := 0
	if s.scope != group.ScopeGlobal {
		if profile == NoProfile {
			return nil, fmt.Errorf("setting %q (scope %s): %w", s.name, s.scope, ErrProfileRequired)
		}
		if profile < 0 || profile >= layout.Count {
			return nil, &ProfileRangeError{Setting: s.name, Index: profile, Count: layout.Count}
		}
		index = profile
	}

	instance, err := a.groups.Instance(s.groupID, index)
	if err != nil {
		return nil, fmt.Errorf("setting %q: %w", s.name, err)
	}

	width := s.storage.Width()
	return instance[s.offset : s.offset+width : s.offset+width], nil
}
