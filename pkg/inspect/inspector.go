package inspect

import (
	"strings"

	"github.com/aeroset/aeroset-go/pkg/group"
	"github.com/aeroset/aeroset-go/pkg/setting"
)

// Inspector reads live settings and produces display rows.
type Inspector struct {
	acc *setting.Accessor
}

// NewInspector creates an Inspector over the given accessor.
func NewInspector(acc *setting.Accessor) *Inspector {
	return &Inspector{acc: acc}
}

// instanceFor selects the storage instance a setting reads from, given
// the active profile and rate profile indices.
func instanceFor(s *setting.Setting, profile, rateProfile int) int {
	switch s.Scope() {
	case group.ScopeProfile:
		return profile
	case group.ScopeRateProfile:
		return rateProfile
	default:
		return setting.NoProfile
	}
}

// Get returns the display row for a single setting.
func (in *Inspector) Get(name string, profile, rateProfile int) (Row, error) {
	reg := in.acc.Registry()

	s, err := reg.Find(name)
	if err != nil {
		return Row{}, err
	}
	return in.row(s, profile, rateProfile)
}

// List returns display rows for all settings, in declaration order.
// An optional prefix filters by setting name.
func (in *Inspector) List(prefix string, profile, rateProfile int) ([]Row, error) {
	reg := in.acc.Registry()

	var rows []Row
	for _, s := range reg.Settings() {
		if prefix != "" && !strings.HasPrefix(s.Name(), strings.ToLower(prefix)) {
			continue
		}
		row, err := in.row(s, profile, rateProfile)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (in *Inspector) row(s *setting.Setting, profile, rateProfile int) (Row, error) {
	reg := in.acc.Registry()

	value, err := in.acc.Read(s, instanceFor(s, profile, rateProfile))
	if err != nil {
		return Row{}, err
	}

	return Row{
		Name:       s.Name(),
		Value:      FormatValue(s, reg.Enums(), value),
		Type:       s.Type().String(),
		Scope:      s.Scope().String(),
		Constraint: FormatConstraint(s, reg.Enums()),
	}, nil
}

// Change records one setting whose value differs from its default.
type Change struct {
	// Name is the setting name.
	Name string

	// Current is the stored value, formatted for display.
	Current string

	// Default is the default value, formatted for display.
	Default string
}

// Diff returns the settings whose values differ from their defaults,
// read through the active profile and rate profile indices.
func (in *Inspector) Diff(profile, rateProfile int) ([]Change, error) {
	reg := in.acc.Registry()

	var changes []Change
	for _, s := range reg.Settings() {
		value, err := in.acc.Read(s, instanceFor(s, profile, rateProfile))
		if err != nil {
			return nil, err
		}
		if value == s.Default() {
			continue
		}
		changes = append(changes, Change{
			Name:    s.Name(),
			Current: FormatValue(s, reg.Enums(), value),
			Default: FormatValue(s, reg.Enums(), s.Default()),
		})
	}
	return changes, nil
}
