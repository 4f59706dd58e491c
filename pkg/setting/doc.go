// Package setting implements the typed parameter registry: the schema
// describing every externally configurable setting, how to validate a
// proposed value, and how to locate the storage field that holds the
// live value.
//
// # Model
//
// Each setting is described by an immutable descriptor with three
// orthogonal closed sets:
//
//   - StorageType: the fixed-width integer type of the backing field
//     (u8/i8/u16/i16), which fixes the byte width and the signedness
//     used for comparisons.
//   - group.Scope: whether the owning configuration group exists once
//     system-wide or once per (rate) profile. Scope is derived from the
//     owning group's layout, never declared per setting.
//   - Constraint: either an inclusive numeric range or a reference to
//     an enumeration table whose ordinals are the legal values.
//
// # Usage
//
// A Registry is built once from declarations and is read-only
// thereafter:
//
//	reg, err := setting.NewRegistry(defs, enums, layouts)
//	s, err := reg.Find("gyro_sync_denom")
//	err = reg.Validate(s, 8)
//
// An Accessor binds the registry to live group memory and performs
// width-aware reads and writes:
//
//	acc, err := setting.NewAccessor(reg, groups)
//	err = acc.Write(s, setting.NoProfile, 8)
//	v, err := acc.Read(s, setting.NoProfile)
//
// Write validates internally before storing, so a caller that skips
// Validate cannot corrupt storage; Validate exists separately so the
// command layer can check a candidate before committing.
//
// Registry construction performs the build-integrity checks: duplicate
// names, fields extending past their group's declared size, and
// enumeration references that do not resolve all fail construction.
// These indicate the declaration tables were edited inconsistently and
// are fatal, not recoverable.
package setting
