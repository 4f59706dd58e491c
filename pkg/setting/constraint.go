package setting

import (
	"fmt"

	"github.com/aeroset/aeroset-go/pkg/enumtab"
)

// constraintKind selects the constraint variant.
type constraintKind uint8

const (
	constraintRange constraintKind = iota
	constraintEnum
)

// Constraint restricts the legal values of a setting. It is a tagged
// variant: either an inclusive numeric range or an enumeration table
// reference — exactly one, never both, never neither. The zero value
// is Range(0, 0).
type Constraint struct {
	kind  constraintKind
	min   int64
	max   int64
	table enumtab.ID
}

// Range returns a constraint accepting min <= v <= max, both inclusive.
func Range(min, max int64) Constraint {
	return Constraint{kind: constraintRange, min: min, max: max}
}

// Enum returns a constraint accepting exactly the ordinals of the
// referenced enumeration table.
func Enum(table enumtab.ID) Constraint {
	return Constraint{kind: constraintEnum, table: table}
}

// IsEnum returns true for enumeration constraints.
func (c Constraint) IsEnum() bool {
	return c.kind == constraintEnum
}

// Bounds returns the inclusive range bounds. ok is false for
// enumeration constraints.
func (c Constraint) Bounds() (min, max int64, ok bool) {
	if c.kind != constraintRange {
		return 0, 0, false
	}
	return c.min, c.max, true
}

// EnumTable returns the referenced enumeration table ID. ok is false
// for range constraints.
func (c Constraint) EnumTable() (enumtab.ID, bool) {
	if c.kind != constraintEnum {
		return 0, false
	}
	return c.table, true
}

// String returns a short description for diagnostics.
func (c Constraint) String() string {
	if c.kind == constraintEnum {
		return fmt.Sprintf("enum(table %d)", c.table)
	}
	return fmt.Sprintf("range[%d..%d]", c.min, c.max)
}
