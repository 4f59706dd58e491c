package auditlog

import (
	"context"
	"log/slog"
)

// SlogAdapter writes audit events to an slog.Logger.
// Useful for development when you want to see settings changes in
// console output.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter that writes to the given
// slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Applied writes log at Info,
// rejected writes at Warn.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("setting", event.Setting),
		slog.String("outcome", event.Outcome.String()),
		slog.String("origin", event.Origin.String()),
		slog.Int64("old_value", event.OldValue),
		slog.Int64("new_value", event.NewValue),
	}
	if event.Profile != nil {
		attrs = append(attrs, slog.Int("profile", *event.Profile))
	}
	if event.Reason != "" {
		attrs = append(attrs, slog.String("reason", event.Reason))
	}

	level := slog.LevelInfo
	if event.Outcome == OutcomeRejected {
		level = slog.LevelWarn
	}
	a.logger.LogAttrs(context.Background(), level, "setting change", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
