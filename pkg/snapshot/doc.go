// Package snapshot provides capture and restore of settings values.
//
// A snapshot records every registered setting as a name/value pair,
// one entry per profile instance for scoped settings. Snapshots are
// serialized as deterministic CBOR so identical configurations produce
// identical files.
//
// Restoring a snapshot validates every entry against the live
// registry. Entries naming unknown settings or carrying out-of-range
// values are skipped and reported; they are never clamped or partially
// applied. This makes snapshots safe to move between builds with
// different capability sets.
package snapshot
