package auditlog

// Logger is the interface consumers implement to receive audit events.
// Pass NoopLogger to disable auditing.
type Logger interface {
	// Log records an audit event. Implementations must be thread-safe.
	Log(event Event)
}

// NoopLogger discards all events. Use when auditing is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
