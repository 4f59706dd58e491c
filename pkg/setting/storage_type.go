package setting

import "math"

// StorageType is the fixed-width integer type of a setting's backing
// field. It determines the byte width read/written and the signedness
// used when comparing against range bounds.
type StorageType uint8

const (
	// TypeUint8 is an unsigned 8-bit field.
	TypeUint8 StorageType = 0

	// TypeInt8 is a signed 8-bit field.
	TypeInt8 StorageType = 1

	// TypeUint16 is an unsigned 16-bit field.
	TypeUint16 StorageType = 2

	// TypeInt16 is a signed 16-bit field.
	TypeInt16 StorageType = 3
)

// String returns the storage type name.
func (t StorageType) String() string {
	switch t {
	case TypeUint8:
		return "uint8"
	case TypeInt8:
		return "int8"
	case TypeUint16:
		return "uint16"
	case TypeInt16:
		return "int16"
	default:
		return "unknown"
	}
}

// Width returns the field width in bytes.
func (t StorageType) Width() int {
	switch t {
	case TypeUint8, TypeInt8:
		return 1
	default:
		return 2
	}
}

// Signed returns true for signed storage types.
func (t StorageType) Signed() bool {
	return t == TypeInt8 || t == TypeInt16
}

// Min returns the smallest value representable in the storage type.
func (t StorageType) Min() int64 {
	switch t {
	case TypeInt8:
		return math.MinInt8
	case TypeInt16:
		return math.MinInt16
	default:
		return 0
	}
}

// Max returns the largest value representable in the storage type.
func (t StorageType) Max() int64 {
	switch t {
	case TypeUint8:
		return math.MaxUint8
	case TypeInt8:
		return math.MaxInt8
	case TypeUint16:
		return math.MaxUint16
	default:
		return math.MaxInt16
	}
}
