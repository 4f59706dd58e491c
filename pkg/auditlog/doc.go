// Package auditlog provides a machine-readable trace of settings
// mutations.
//
// This package defines the Logger interface and Event type for
// capturing every accepted or rejected settings write. It is separate
// from operational logging (slog) — the audit trail is a complete
// record an operator or support tool can replay to see how a
// configuration diverged.
//
// # Basic Usage
//
// Consumers configure auditing by providing a Logger implementation:
//
//	// For development: log to console via slog
//	audit := auditlog.NewSlogAdapter(slog.Default())
//
//	// For persistence: append to a binary file
//	audit, _ := auditlog.NewFileLogger("/var/lib/aeroset/changes.alog")
//
//	// Both: use MultiLogger
//	audit := auditlog.NewMultiLogger(
//	    auditlog.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Audit files are a concatenation of CBOR-encoded events with integer
// keys, extension .alog. Reader streams them back, optionally
// filtered.
package auditlog
