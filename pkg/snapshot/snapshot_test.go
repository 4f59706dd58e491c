package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroset/aeroset-go/pkg/auditlog"
	"github.com/aeroset/aeroset-go/pkg/catalog"
	"github.com/aeroset/aeroset-go/pkg/setting"
)

func newSystem(t *testing.T) *catalog.System {
	t.Helper()

	sys, err := catalog.New(catalog.Options{})
	require.NoError(t, err)
	return sys
}

func mustFind(t *testing.T, sys *catalog.System, name string) *setting.Setting {
	t.Helper()

	s, err := sys.Registry.Find(name)
	require.NoError(t, err)
	return s
}

func TestCaptureCoversAllSettings(t *testing.T) {
	sys := newSystem(t)

	snap, err := Capture(sys.Accessor)
	require.NoError(t, err)

	assert.Equal(t, FormatVersion, snap.Version)
	assert.NotEmpty(t, snap.ID)
	assert.False(t, snap.SavedAt.IsZero())

	// Every setting appears at least once; scoped settings appear
	// once per profile instance, so entries >= settings.
	assert.GreaterOrEqual(t, len(snap.Entries), sys.Registry.Count())

	seen := make(map[string]bool)
	for _, entry := range snap.Entries {
		seen[entry.Name] = true
	}
	for _, s := range sys.Registry.Settings() {
		assert.True(t, seen[s.Name()], "setting %s missing from snapshot", s.Name())
	}
}

func TestCaptureScopedEntriesPerProfile(t *testing.T) {
	sys := newSystem(t)

	s := mustFind(t, sys, "p_pitch")
	layout, err := sys.Registry.Layout(s.Group())
	require.NoError(t, err)
	require.Greater(t, layout.Count, 1)

	snap, err := Capture(sys.Accessor)
	require.NoError(t, err)

	var profiles []int
	for _, entry := range snap.Entries {
		if entry.Name == "p_pitch" {
			require.NotNil(t, entry.Profile)
			profiles = append(profiles, *entry.Profile)
		}
	}
	require.Len(t, profiles, layout.Count)
	for i, p := range profiles {
		assert.Equal(t, i, p)
	}
}

func TestApplyRoundTrip(t *testing.T) {
	source := newSystem(t)

	gyro := mustFind(t, source, "gyro_sync_denom")
	pitch := mustFind(t, source, "p_pitch")
	require.NoError(t, source.Accessor.Write(gyro, setting.NoProfile, 8))
	require.NoError(t, source.Accessor.Write(pitch, 1, 77))

	snap, err := Capture(source.Accessor)
	require.NoError(t, err)

	target := newSystem(t)
	report, err := Apply(snap, target.Accessor, auditlog.NoopLogger{})
	require.NoError(t, err)

	assert.True(t, report.Clean(), "skipped: %v", report.Skipped)
	assert.Equal(t, len(snap.Entries), report.Applied)

	got, err := target.Accessor.Read(mustFind(t, target, "gyro_sync_denom"), setting.NoProfile)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got)

	got, err = target.Accessor.Read(mustFind(t, target, "p_pitch"), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(77), got)
}

func TestApplySkipsUnknownSettings(t *testing.T) {
	sys := newSystem(t)

	snap, err := Capture(sys.Accessor)
	require.NoError(t, err)
	snap.Entries = append(snap.Entries, Entry{Name: "no_such_setting", Value: 1})

	report, err := Apply(snap, sys.Accessor, auditlog.NoopLogger{})
	require.NoError(t, err)

	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "no_such_setting", report.Skipped[0].Entry.Name)
	assert.Equal(t, len(snap.Entries)-1, report.Applied)
}

func TestApplySkipsOutOfRangeValues(t *testing.T) {
	sys := newSystem(t)

	gyro := mustFind(t, sys, "gyro_sync_denom")
	before, err := sys.Accessor.Read(gyro, setting.NoProfile)
	require.NoError(t, err)

	snap := &Snapshot{
		Version: FormatVersion,
		ID:      "test",
		Entries: []Entry{{Name: "gyro_sync_denom", Value: 33}},
	}

	report, err := Apply(snap, sys.Accessor, auditlog.NoopLogger{})
	require.NoError(t, err)

	require.Len(t, report.Skipped, 1)
	assert.Equal(t, 0, report.Applied)

	// Rejected entries never modify the stored value.
	after, err := sys.Accessor.Read(gyro, setting.NoProfile)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestApplyRejectsUnknownVersion(t *testing.T) {
	sys := newSystem(t)

	snap := &Snapshot{Version: 99}
	_, err := Apply(snap, sys.Accessor, auditlog.NoopLogger{})
	assert.Error(t, err)
}

func TestApplyAuditsEachEntry(t *testing.T) {
	sys := newSystem(t)

	snap := &Snapshot{
		Version: FormatVersion,
		ID:      "test",
		Entries: []Entry{
			{Name: "gyro_sync_denom", Value: 4},
			{Name: "gyro_sync_denom", Value: 99},
		},
	}

	var events []auditlog.Event
	recorder := recorderFunc(func(e auditlog.Event) { events = append(events, e) })

	_, err := Apply(snap, sys.Accessor, recorder)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, auditlog.OutcomeApplied, events[0].Outcome)
	assert.Equal(t, auditlog.OriginSnapshot, events[0].Origin)
	assert.Equal(t, auditlog.OutcomeRejected, events[1].Outcome)
	assert.NotEmpty(t, events[1].Reason)
}

type recorderFunc func(auditlog.Event)

func (f recorderFunc) Log(e auditlog.Event) { f(e) }

func TestEncodeDecode(t *testing.T) {
	sys := newSystem(t)

	snap, err := Capture(sys.Accessor)
	require.NoError(t, err)

	data, err := Encode(snap)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, snap.ID, decoded.ID)
	assert.Equal(t, snap.Version, decoded.Version)
	require.Len(t, decoded.Entries, len(snap.Entries))
	assert.Equal(t, snap.Entries[0], decoded.Entries[0])
}

func TestEncodeDeterministic(t *testing.T) {
	sys := newSystem(t)

	snap, err := Capture(sys.Accessor)
	require.NoError(t, err)

	first, err := Encode(snap)
	require.NoError(t, err)
	second, err := Encode(snap)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStore(t *testing.T) {
	t.Run("SaveAndLoad", func(t *testing.T) {
		sys := newSystem(t)
		store := NewStore(filepath.Join(t.TempDir(), "settings.snap"))

		snap, err := Capture(sys.Accessor)
		require.NoError(t, err)
		require.NoError(t, store.Save(snap))

		loaded, err := store.Load()
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, snap.ID, loaded.ID)
		assert.Len(t, loaded.Entries, len(snap.Entries))
	})

	t.Run("LoadMissing", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "missing.snap"))

		loaded, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("SaveCreatesParentDir", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "nested", "dir", "settings.snap"))

		require.NoError(t, store.Save(&Snapshot{Version: FormatVersion, ID: "test"}))

		loaded, err := store.Load()
		require.NoError(t, err)
		require.NotNil(t, loaded)
	})

	t.Run("Clear", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "settings.snap"))

		require.NoError(t, store.Save(&Snapshot{Version: FormatVersion, ID: "test"}))
		require.NoError(t, store.Clear())

		loaded, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, loaded)

		// Clearing a missing file is not an error.
		require.NoError(t, store.Clear())
	})
}
