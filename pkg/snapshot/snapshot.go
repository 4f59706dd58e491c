package snapshot

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aeroset/aeroset-go/pkg/auditlog"
	"github.com/aeroset/aeroset-go/pkg/group"
	"github.com/aeroset/aeroset-go/pkg/setting"
)

// FormatVersion is the current version of the snapshot format.
const FormatVersion = 1

// Snapshot is a point-in-time copy of all settings values.
type Snapshot struct {
	// Version is the snapshot format version.
	Version int `cbor:"1,keyasint"`

	// ID uniquely identifies this snapshot.
	ID string `cbor:"2,keyasint"`

	// SavedAt is when the snapshot was captured.
	SavedAt time.Time `cbor:"3,keyasint"`

	// Entries holds one value per setting and profile instance, in
	// registry declaration order.
	Entries []Entry `cbor:"4,keyasint"`
}

// Entry is one captured setting value.
type Entry struct {
	// Name is the setting name.
	Name string `cbor:"1,keyasint"`

	// Profile is the profile index for scoped settings; nil for
	// global settings.
	Profile *int `cbor:"2,keyasint,omitempty"`

	// Value is the stored value.
	Value int64 `cbor:"3,keyasint"`
}

// Skip records one snapshot entry that could not be restored.
type Skip struct {
	// Entry is the entry that was skipped.
	Entry Entry

	// Reason describes why the entry was not applied.
	Reason string
}

// Report summarizes the outcome of a snapshot restore.
type Report struct {
	// Applied is the number of entries written successfully.
	Applied int

	// Skipped lists entries that were not applied and why.
	Skipped []Skip
}

// Clean returns true if every entry was applied.
func (r *Report) Clean() bool {
	return len(r.Skipped) == 0
}

// Capture records the current value of every registered setting.
// Scoped settings produce one entry per profile instance.
func Capture(acc *setting.Accessor) (*Snapshot, error) {
	reg := acc.Registry()

	snap := &Snapshot{
		Version: FormatVersion,
		ID:      uuid.NewString(),
		SavedAt: time.Now().UTC(),
	}

	for _, s := range reg.Settings() {
		layout, err := reg.Layout(s.Group())
		if err != nil {
			return nil, err
		}

		if s.Scope() == group.ScopeGlobal {
			value, err := acc.Read(s, setting.NoProfile)
			if err != nil {
				return nil, fmt.Errorf("capturing %s: %w", s.Name(), err)
			}
			snap.Entries = append(snap.Entries, Entry{Name: s.Name(), Value: value})
			continue
		}

		for i := 0; i < layout.Count; i++ {
			value, err := acc.Read(s, i)
			if err != nil {
				return nil, fmt.Errorf("capturing %s[%d]: %w", s.Name(), i, err)
			}
			idx := i
			snap.Entries = append(snap.Entries, Entry{Name: s.Name(), Profile: &idx, Value: value})
		}
	}

	return snap, nil
}

// Apply restores snapshot entries into live storage.
//
// Every entry is validated independently. Unknown settings and
// rejected values are collected in the report and skipped; valid
// entries are still applied. Values are never clamped.
//
// Each attempt is recorded through the audit logger with origin
// SNAPSHOT. Pass auditlog.NoopLogger to disable auditing.
func Apply(snap *Snapshot, acc *setting.Accessor, audit auditlog.Logger) (*Report, error) {
	if snap.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d (want %d)", snap.Version, FormatVersion)
	}

	reg := acc.Registry()
	report := &Report{}

	for _, entry := range snap.Entries {
		s, err := reg.Find(entry.Name)
		if err != nil {
			report.Skipped = append(report.Skipped, Skip{Entry: entry, Reason: err.Error()})
			continue
		}

		profile := setting.NoProfile
		if entry.Profile != nil {
			profile = *entry.Profile
		}

		event := auditlog.Event{
			Timestamp: time.Now().UTC(),
			Setting:   entry.Name,
			Origin:    auditlog.OriginSnapshot,
			Profile:   entry.Profile,
			NewValue:  entry.Value,
		}
		if old, err := acc.Read(s, profile); err == nil {
			event.OldValue = old
		}

		if err := acc.Write(s, profile, entry.Value); err != nil {
			event.Outcome = auditlog.OutcomeRejected
			event.Reason = err.Error()
			audit.Log(event)
			report.Skipped = append(report.Skipped, Skip{Entry: entry, Reason: err.Error()})
			continue
		}

		event.Outcome = auditlog.OutcomeApplied
		audit.Log(event)
		report.Applied++
	}

	return report, nil
}
