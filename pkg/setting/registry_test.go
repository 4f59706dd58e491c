package setting

import (
	"errors"
	"testing"

	"github.com/aeroset/aeroset-go/pkg/enumtab"
	"github.com/aeroset/aeroset-go/pkg/group"
)

// Test fixture IDs. Kept small and local; the real declaration data
// lives in pkg/catalog.
const (
	tableOffOn     enumtab.ID = 0
	tableAlignment enumtab.ID = 1

	groupGyro    group.ID = 1
	groupProfile group.ID = 2
	groupRates   group.ID = 3
)

func testEnums(t *testing.T) *enumtab.Set {
	t.Helper()
	set, err := enumtab.NewSet(
		enumtab.MustTable(tableOffOn, "off_on", "OFF", "ON"),
		enumtab.MustTable(tableAlignment, "alignment",
			"DEFAULT", "CW0", "CW90", "CW180", "CW270",
			"CW0FLIP", "CW90FLIP", "CW180FLIP", "CW270FLIP"),
	)
	if err != nil {
		t.Fatalf("building enum set: %v", err)
	}
	return set
}

func testLayouts() []group.Layout {
	return []group.Layout{
		{ID: groupGyro, Name: "gyro", Size: 16, Count: 1, Scope: group.ScopeGlobal},
		{ID: groupProfile, Name: "pid_profile", Size: 64, Count: 3, Scope: group.ScopeProfile},
		{ID: groupRates, Name: "rate_profile", Size: 24, Count: 6, Scope: group.ScopeRateProfile},
	}
}

func testDefs() []Def {
	return []Def{
		{Name: "gyro_sync_denom", Type: TypeUint8, Constraint: Range(1, 32), Group: groupGyro, Offset: 0, Default: 1},
		{Name: "align_gyro", Type: TypeUint8, Constraint: Enum(tableAlignment), Group: groupGyro, Offset: 1},
		{Name: "gyro_notch1_hz", Type: TypeUint16, Constraint: Range(0, 16000), Group: groupGyro, Offset: 2},
		{Name: "acc_trim_pitch", Type: TypeInt16, Constraint: Range(-300, 300), Group: groupGyro, Offset: 4},
		{Name: "p_pitch", Type: TypeUint8, Constraint: Range(0, 200), Group: groupProfile, Offset: 4, Default: 58},
		{Name: "rc_rate", Type: TypeUint8, Constraint: Range(1, 255), Group: groupRates, Offset: 0, Default: 100},
	}
}

func testRegistry(t *testing.T, opts ...RegistryOption) *Registry {
	t.Helper()
	reg, err := NewRegistry(testDefs(), testEnums(t), testLayouts(), opts...)
	if err != nil {
		t.Fatalf("building registry: %v", err)
	}
	return reg
}

func TestRegistryFindRoundTrip(t *testing.T) {
	reg := testRegistry(t)

	// Every registered descriptor is found under its own name.
	for _, s := range reg.Settings() {
		found, err := reg.Find(s.Name())
		if err != nil {
			t.Fatalf("Find(%q) failed: %v", s.Name(), err)
		}
		if found != s {
			t.Errorf("Find(%q) returned a different descriptor", s.Name())
		}
	}
}

func TestRegistryFindCaseInsensitive(t *testing.T) {
	reg := testRegistry(t)

	s, err := reg.Find("GYRO_SYNC_DENOM")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if s.Name() != "gyro_sync_denom" {
		t.Errorf("expected gyro_sync_denom, got %s", s.Name())
	}
}

func TestRegistryFindUnknown(t *testing.T) {
	reg := testRegistry(t)

	_, err := reg.Find("no_such_setting")
	if !errors.Is(err, ErrUnknownSetting) {
		t.Errorf("expected ErrUnknownSetting, got %v", err)
	}

	// Exact match only: a prefix must not resolve.
	if _, err := reg.Find("gyro_sync"); !errors.Is(err, ErrUnknownSetting) {
		t.Errorf("expected ErrUnknownSetting for prefix, got %v", err)
	}
}

func TestRegistryDeclarationOrder(t *testing.T) {
	reg := testRegistry(t)

	defs := testDefs()
	settings := reg.Settings()
	if len(settings) != len(defs) {
		t.Fatalf("expected %d settings, got %d", len(defs), len(settings))
	}
	for i, s := range settings {
		if s.Name() != defs[i].Name {
			t.Errorf("position %d: expected %s, got %s", i, defs[i].Name, s.Name())
		}
	}
	if reg.Count() != len(defs) {
		t.Errorf("Count() = %d, want %d", reg.Count(), len(defs))
	}
}

func TestRegistryScopeDerivedFromGroup(t *testing.T) {
	reg := testRegistry(t)

	cases := map[string]group.Scope{
		"gyro_sync_denom": group.ScopeGlobal,
		"p_pitch":         group.ScopeProfile,
		"rc_rate":         group.ScopeRateProfile,
	}
	for name, want := range cases {
		s, err := reg.Find(name)
		if err != nil {
			t.Fatalf("Find(%q) failed: %v", name, err)
		}
		if s.Scope() != want {
			t.Errorf("%s: scope %s, want %s", name, s.Scope(), want)
		}
	}
}

func TestRegistryRejectsDuplicateNames(t *testing.T) {
	defs := append(testDefs(),
		Def{Name: "Gyro_Sync_Denom", Type: TypeUint8, Constraint: Range(0, 1), Group: groupGyro, Offset: 6})
	_, err := NewRegistry(defs, testEnums(t), testLayouts())
	if err == nil {
		t.Fatal("expected error for case-insensitive duplicate name")
	}
}

func TestRegistryRejectsFieldPastGroupEnd(t *testing.T) {
	defs := []Def{
		// 2-byte field starting at offset 15 of a 16-byte group.
		{Name: "bad_field", Type: TypeUint16, Constraint: Range(0, 1), Group: groupGyro, Offset: 15},
	}
	_, err := NewRegistry(defs, testEnums(t), testLayouts())
	if err == nil {
		t.Fatal("expected error for field extending past group size")
	}
}

func TestRegistryRejectsUnknownGroup(t *testing.T) {
	defs := []Def{
		{Name: "orphan", Type: TypeUint8, Constraint: Range(0, 1), Group: 99, Offset: 0},
	}
	_, err := NewRegistry(defs, testEnums(t), testLayouts())
	if !errors.Is(err, group.ErrUnknownGroup) {
		t.Errorf("expected ErrUnknownGroup, got %v", err)
	}
}

func TestRegistryRejectsUnresolvedEnumRef(t *testing.T) {
	// A descriptor referencing a table missing from the set must fail
	// at construction, not at first use.
	defs := []Def{
		{Name: "dangling", Type: TypeUint8, Constraint: Enum(42), Group: groupGyro, Offset: 0},
	}
	_, err := NewRegistry(defs, testEnums(t), testLayouts())
	if !errors.Is(err, enumtab.ErrUnknownTable) {
		t.Errorf("expected ErrUnknownTable, got %v", err)
	}
}

func TestRegistryRejectsUnrepresentableRange(t *testing.T) {
	cases := []struct {
		name string
		def  Def
	}{
		{"U8TooWide", Def{Name: "a", Type: TypeUint8, Constraint: Range(0, 300), Group: groupGyro, Offset: 0}},
		{"U8Negative", Def{Name: "b", Type: TypeUint8, Constraint: Range(-1, 10), Group: groupGyro, Offset: 0}},
		{"Inverted", Def{Name: "c", Type: TypeInt16, Constraint: Range(5, -5), Group: groupGyro, Offset: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRegistry([]Def{tc.def}, testEnums(t), testLayouts()); err == nil {
				t.Error("expected construction error")
			}
		})
	}
}

func TestRegistryRejectsInvalidDefault(t *testing.T) {
	defs := []Def{
		{Name: "bad_default", Type: TypeUint8, Constraint: Range(1, 32), Group: groupGyro, Offset: 0, Default: 0},
	}
	_, err := NewRegistry(defs, testEnums(t), testLayouts())
	if err == nil {
		t.Fatal("expected error for default outside range")
	}
}

func TestRegistryCapabilityGating(t *testing.T) {
	defs := append(testDefs(),
		Def{Name: "mag_declination", Type: TypeInt16, Constraint: Range(-18000, 18000),
			Group: groupGyro, Offset: 8, Requires: []Capability{"mag"}},
		Def{Name: "gps_provider", Type: TypeUint8, Constraint: Enum(tableOffOn),
			Group: groupGyro, Offset: 10, Requires: []Capability{"gps"}},
	)

	t.Run("AllEnabledWithoutOption", func(t *testing.T) {
		reg, err := NewRegistry(defs, testEnums(t), testLayouts())
		if err != nil {
			t.Fatalf("NewRegistry failed: %v", err)
		}
		if reg.Count() != len(defs) {
			t.Errorf("expected %d settings, got %d", len(defs), reg.Count())
		}
	})

	t.Run("GatedByCapabilitySet", func(t *testing.T) {
		reg, err := NewRegistry(defs, testEnums(t), testLayouts(), WithCapabilities("mag"))
		if err != nil {
			t.Fatalf("NewRegistry failed: %v", err)
		}
		if _, err := reg.Find("mag_declination"); err != nil {
			t.Errorf("mag_declination should be registered: %v", err)
		}
		if _, err := reg.Find("gps_provider"); !errors.Is(err, ErrUnknownSetting) {
			t.Errorf("gps_provider should not be registered, got %v", err)
		}
	})
}
