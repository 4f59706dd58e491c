package inspect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroset/aeroset-go/pkg/catalog"
	"github.com/aeroset/aeroset-go/pkg/setting"
)

func newSystem(t *testing.T) *catalog.System {
	t.Helper()

	sys, err := catalog.New(catalog.Options{})
	require.NoError(t, err)
	return sys
}

func TestFormatValue(t *testing.T) {
	sys := newSystem(t)

	t.Run("RangeValue", func(t *testing.T) {
		s, err := sys.Registry.Find("gyro_sync_denom")
		require.NoError(t, err)

		assert.Equal(t, "8", FormatValue(s, sys.Enums, 8))
	})

	t.Run("EnumLabel", func(t *testing.T) {
		s, err := sys.Registry.Find("align_gyro")
		require.NoError(t, err)

		assert.Equal(t, "DEFAULT", FormatValue(s, sys.Enums, 0))
		assert.Equal(t, "CW90", FormatValue(s, sys.Enums, 2))
	})

	t.Run("EnumOrdinalWithoutLabel", func(t *testing.T) {
		s, err := sys.Registry.Find("align_gyro")
		require.NoError(t, err)

		assert.Equal(t, "ordinal(99)", FormatValue(s, sys.Enums, 99))
	})
}

func TestFormatConstraint(t *testing.T) {
	sys := newSystem(t)

	t.Run("Range", func(t *testing.T) {
		s, err := sys.Registry.Find("gyro_sync_denom")
		require.NoError(t, err)

		assert.Equal(t, "1 - 32", FormatConstraint(s, sys.Enums))
	})

	t.Run("Enum", func(t *testing.T) {
		s, err := sys.Registry.Find("align_gyro")
		require.NoError(t, err)

		got := FormatConstraint(s, sys.Enums)
		assert.True(t, strings.HasPrefix(got, "DEFAULT, CW0, CW90"), "got %q", got)
	})
}

func TestInspectorGet(t *testing.T) {
	sys := newSystem(t)
	in := NewInspector(sys.Accessor)

	row, err := in.Get("gyro_sync_denom", 0, 0)
	require.NoError(t, err)

	assert.Equal(t, "gyro_sync_denom", row.Name)
	assert.Equal(t, "1", row.Value)
	assert.Equal(t, "uint8", row.Type)
	assert.Equal(t, "GLOBAL", row.Scope)
	assert.Equal(t, "1 - 32", row.Constraint)
}

func TestInspectorGetUnknown(t *testing.T) {
	sys := newSystem(t)
	in := NewInspector(sys.Accessor)

	_, err := in.Get("no_such_setting", 0, 0)
	assert.ErrorIs(t, err, setting.ErrUnknownSetting)
}

func TestInspectorList(t *testing.T) {
	sys := newSystem(t)
	in := NewInspector(sys.Accessor)

	rows, err := in.List("", 0, 0)
	require.NoError(t, err)
	assert.Len(t, rows, sys.Registry.Count())
}

func TestInspectorListPrefix(t *testing.T) {
	sys := newSystem(t)
	in := NewInspector(sys.Accessor)

	rows, err := in.List("gyro_", 0, 0)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	for _, row := range rows {
		assert.True(t, strings.HasPrefix(row.Name, "gyro_"), "unexpected row %q", row.Name)
	}
}

func TestInspectorListReadsActiveProfile(t *testing.T) {
	sys := newSystem(t)
	in := NewInspector(sys.Accessor)

	s, err := sys.Registry.Find("rc_rate")
	require.NoError(t, err)
	require.NoError(t, sys.Accessor.Write(s, 2, 150))

	row, err := in.Get("rc_rate", 0, 2)
	require.NoError(t, err)
	assert.Equal(t, "150", row.Value)

	row, err = in.Get("rc_rate", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "100", row.Value)
}

func TestInspectorDiff(t *testing.T) {
	sys := newSystem(t)
	in := NewInspector(sys.Accessor)

	changes, err := in.Diff(0, 0)
	require.NoError(t, err)
	assert.Empty(t, changes, "fresh system should match defaults")

	gyro, err := sys.Registry.Find("gyro_sync_denom")
	require.NoError(t, err)
	require.NoError(t, sys.Accessor.Write(gyro, setting.NoProfile, 8))

	align, err := sys.Registry.Find("align_gyro")
	require.NoError(t, err)
	require.NoError(t, sys.Accessor.Write(align, setting.NoProfile, 2))

	changes, err = in.Diff(0, 0)
	require.NoError(t, err)
	require.Len(t, changes, 2)

	byName := make(map[string]Change)
	for _, c := range changes {
		byName[c.Name] = c
	}

	assert.Equal(t, "8", byName["gyro_sync_denom"].Current)
	assert.Equal(t, "1", byName["gyro_sync_denom"].Default)
	assert.Equal(t, "CW90", byName["align_gyro"].Current)
	assert.Equal(t, "DEFAULT", byName["align_gyro"].Default)
}

func TestInspectorDiffPerProfile(t *testing.T) {
	sys := newSystem(t)
	in := NewInspector(sys.Accessor)

	s, err := sys.Registry.Find("rc_rate")
	require.NoError(t, err)
	require.NoError(t, sys.Accessor.Write(s, 1, 180))

	changes, err := in.Diff(0, 0)
	require.NoError(t, err)
	assert.Empty(t, changes)

	changes, err = in.Diff(0, 1)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "rc_rate", changes[0].Name)
}

func TestFormatTable(t *testing.T) {
	f := NewFormatter()

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "  (no settings)", f.FormatTable(nil))
	})

	t.Run("Aligned", func(t *testing.T) {
		out := f.FormatTable([]Row{
			{Name: "gyro_sync_denom", Value: "1", Type: "uint8", Scope: "GLOBAL", Constraint: "1 - 32"},
			{Name: "rc_rate", Value: "100", Type: "uint8", Scope: "RATE_PROFILE", Constraint: "1 - 255"},
		})

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "gyro_sync_denom")
		assert.Contains(t, lines[0], "[uint8, GLOBAL]")
		assert.Contains(t, lines[0], "(1 - 32)")
		assert.Contains(t, lines[1], "rc_rate")
	})

	t.Run("MetadataSuppressed", func(t *testing.T) {
		plain := &Formatter{}
		out := plain.FormatTable([]Row{
			{Name: "rc_rate", Value: "100", Type: "uint8", Scope: "RATE_PROFILE"},
		})
		assert.NotContains(t, out, "[uint8")
	})
}
