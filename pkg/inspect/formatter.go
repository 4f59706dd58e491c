// Package inspect formats settings for human-readable display.
//
// It renders current values with enumeration labels resolved, shows
// constraints the way an operator expects to read them (a numeric
// range or a list of choices), and computes diffs against defaults.
package inspect

import (
	"fmt"
	"strings"

	"github.com/aeroset/aeroset-go/pkg/enumtab"
	"github.com/aeroset/aeroset-go/pkg/setting"
)

// Formatter formats settings output.
type Formatter struct {
	// ShowMetadata includes type and scope information
	ShowMetadata bool

	// ShowConstraints includes the allowed range or choice list
	ShowConstraints bool
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata:    true,
		ShowConstraints: true,
	}
}

// FormatValue formats a stored value for display. Enumerated settings
// render their label; numeric settings render the decimal value.
func FormatValue(s *setting.Setting, enums *enumtab.Set, value int64) string {
	if table, isEnum := s.Constraint().EnumTable(); isEnum {
		label, err := enums.LabelOf(table, int(value))
		if err == nil {
			return label
		}
		// Stored ordinal has no label. Should not happen for
		// validated storage, but render something useful.
		return fmt.Sprintf("ordinal(%d)", value)
	}
	return fmt.Sprintf("%d", value)
}

// FormatConstraint formats a constraint for display.
// Ranges render as "min - max", enumerations as their choice list.
func FormatConstraint(s *setting.Setting, enums *enumtab.Set) string {
	if min, max, ok := s.Constraint().Bounds(); ok {
		return fmt.Sprintf("%d - %d", min, max)
	}

	id, _ := s.Constraint().EnumTable()
	table, err := enums.Lookup(id)
	if err != nil {
		return "?"
	}

	labels := make([]string, table.Len())
	for i := 0; i < table.Len(); i++ {
		label, _ := table.Label(i)
		labels[i] = label
	}
	return strings.Join(labels, ", ")
}

// Row represents one formatted setting for display.
type Row struct {
	Name       string
	Value      string
	Type       string
	Scope      string
	Constraint string
}

// FormatTable formats rows as an aligned listing.
func (f *Formatter) FormatTable(rows []Row) string {
	if len(rows) == 0 {
		return "  (no settings)"
	}

	nameWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Name) > nameWidth {
			nameWidth = len(row.Name)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("  %-*s = %-*s", nameWidth, row.Name, valueWidth, row.Value))
		if f.ShowMetadata {
			sb.WriteString(fmt.Sprintf("  [%s, %s]", row.Type, row.Scope))
		}
		if f.ShowConstraints && row.Constraint != "" {
			sb.WriteString(fmt.Sprintf("  (%s)", row.Constraint))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
