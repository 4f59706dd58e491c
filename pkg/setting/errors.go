package setting

import (
	"errors"
	"fmt"
)

// Lookup errors: the caller supplied a name or ID not present in the
// schema. Surfaced to the caller, never retried.
var (
	// ErrUnknownSetting is returned by Find for an unregistered name.
	ErrUnknownSetting = errors.New("unknown setting")
)

// Access errors: the caller misused the scope contract.
var (
	// ErrProfileRequired is returned when a profile-scoped setting is
	// accessed without a profile index.
	ErrProfileRequired = errors.New("profile index required")
)

// RangeError reports a candidate value outside a setting's inclusive
// range constraint. The bounds are carried so the command layer can
// report the legal range to the operator.
type RangeError struct {
	Setting string
	Value   int64
	Min     int64
	Max     int64
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("setting %q: value %d out of range [%d..%d]", e.Setting, e.Value, e.Min, e.Max)
}

// OrdinalError reports a candidate value that is not a valid ordinal of
// a setting's enumeration table.
type OrdinalError struct {
	Setting  string
	Value    int64
	TableLen int
}

// Error implements the error interface.
func (e *OrdinalError) Error() string {
	return fmt.Sprintf("setting %q: value %d is not a valid ordinal (table has %d entries)", e.Setting, e.Value, e.TableLen)
}

// ProfileRangeError reports a profile index outside the owning group's
// instance count.
type ProfileRangeError struct {
	Setting string
	Index   int
	Count   int
}

// Error implements the error interface.
func (e *ProfileRangeError) Error() string {
	return fmt.Sprintf("setting %q: profile index %d out of range (count %d)", e.Setting, e.Index, e.Count)
}
