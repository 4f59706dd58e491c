// Package catalog holds the concrete settings schema: the enumeration
// tables, configuration group layouts, and settings declaration table,
// plus the startup wiring that assembles them into a checked registry
// with live group memory.
//
// Everything in this package is data; the interpreting logic lives in
// pkg/setting, pkg/enumtab and pkg/group.
package catalog

import (
	"fmt"

	"github.com/aeroset/aeroset-go/pkg/enumtab"
	"github.com/aeroset/aeroset-go/pkg/group"
	"github.com/aeroset/aeroset-go/pkg/setting"
)

// Options configures catalog construction.
type Options struct {
	// Capabilities is the enabled capability set. Nil means
	// DefaultCapabilities().
	Capabilities []setting.Capability

	// ProfileCount is the number of PID profiles, 1..MaxProfileCount.
	// Zero means MaxProfileCount.
	ProfileCount int

	// RateProfileCount is the number of rate profiles,
	// 1..MaxRateProfileCount. Zero means MaxRateProfileCount.
	RateProfileCount int
}

// System is a fully constructed settings system: the checked registry,
// the live group memory with defaults applied, and the accessor
// binding the two.
type System struct {
	Registry *setting.Registry
	Enums    *enumtab.Set
	Groups   *group.Set
	Accessor *setting.Accessor
}

// New builds the settings system. All registry consistency checks run
// here; an error means the declaration tables are inconsistent and
// must abort startup.
func New(opts Options) (*System, error) {
	if opts.Capabilities == nil {
		opts.Capabilities = DefaultCapabilities()
	}
	if opts.ProfileCount == 0 {
		opts.ProfileCount = MaxProfileCount
	}
	if opts.RateProfileCount == 0 {
		opts.RateProfileCount = MaxRateProfileCount
	}
	if opts.ProfileCount < 1 || opts.ProfileCount > MaxProfileCount {
		return nil, fmt.Errorf("profile count %d out of range 1..%d", opts.ProfileCount, MaxProfileCount)
	}
	if opts.RateProfileCount < 1 || opts.RateProfileCount > MaxRateProfileCount {
		return nil, fmt.Errorf("rate profile count %d out of range 1..%d", opts.RateProfileCount, MaxRateProfileCount)
	}

	enums, err := newEnumSet()
	if err != nil {
		return nil, err
	}

	layouts := Layouts(opts.ProfileCount, opts.RateProfileCount)

	reg, err := setting.NewRegistry(Defs(), enums, layouts,
		setting.WithCapabilities(opts.Capabilities...))
	if err != nil {
		return nil, fmt.Errorf("building settings registry: %w", err)
	}

	groups, err := group.NewSet(layouts...)
	if err != nil {
		return nil, fmt.Errorf("allocating group memory: %w", err)
	}

	acc, err := setting.NewAccessor(reg, groups)
	if err != nil {
		return nil, fmt.Errorf("binding accessor: %w", err)
	}
	if err := acc.ApplyDefaults(); err != nil {
		return nil, fmt.Errorf("applying defaults: %w", err)
	}

	return &System{
		Registry: reg,
		Enums:    enums,
		Groups:   groups,
		Accessor: acc,
	}, nil
}

// newEnumSet registers the enumeration tables, guarding against the
// declared ID space and the table list drifting apart.
func newEnumSet() (*enumtab.Set, error) {
	tables := enumTables()
	if len(tables) != int(tableCount) {
		return nil, fmt.Errorf("enum table list has %d entries, ID space declares %d", len(tables), int(tableCount))
	}
	for i, t := range tables {
		if t.ID() != enumtab.ID(i) {
			return nil, fmt.Errorf("enum table %q registered at position %d but declares ID %d", t.Name(), i, t.ID())
		}
	}
	return enumtab.NewSet(tables...)
}
