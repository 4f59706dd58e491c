package auditlog

import "time"

// Outcome classifies how a settings operation ended.
type Outcome uint8

const (
	// OutcomeApplied indicates the write was validated and stored.
	OutcomeApplied Outcome = 0

	// OutcomeRejected indicates the candidate value failed validation.
	OutcomeRejected Outcome = 1

	// OutcomeReset indicates the setting was reset to its default.
	OutcomeReset Outcome = 2
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "APPLIED"
	case OutcomeRejected:
		return "REJECTED"
	case OutcomeReset:
		return "RESET"
	default:
		return "UNKNOWN"
	}
}

// Origin identifies what initiated a settings operation.
type Origin uint8

const (
	// OriginOperator indicates an interactive command.
	OriginOperator Origin = 0

	// OriginSnapshot indicates a snapshot restore.
	OriginSnapshot Origin = 1

	// OriginStartup indicates startup defaults being applied.
	OriginStartup Origin = 2
)

// String returns the origin name.
func (o Origin) String() string {
	switch o {
	case OriginOperator:
		return "OPERATOR"
	case OriginSnapshot:
		return "SNAPSHOT"
	case OriginStartup:
		return "STARTUP"
	default:
		return "UNKNOWN"
	}
}

// Event records one settings mutation attempt.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// Setting is the setting name.
	Setting string `cbor:"2,keyasint"`

	// Outcome classifies the result.
	Outcome Outcome `cbor:"3,keyasint"`

	// Origin identifies what initiated the operation.
	Origin Origin `cbor:"4,keyasint"`

	// Profile is the profile index for scoped settings; nil for
	// global settings.
	Profile *int `cbor:"5,keyasint,omitempty"`

	// OldValue is the stored value before the operation.
	OldValue int64 `cbor:"6,keyasint"`

	// NewValue is the candidate value. For rejected writes this is
	// the value that was refused; the stored value is unchanged.
	NewValue int64 `cbor:"7,keyasint"`

	// Reason carries the validation error text for rejected writes.
	Reason string `cbor:"8,keyasint,omitempty"`
}
