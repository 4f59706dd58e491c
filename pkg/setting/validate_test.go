package setting

import (
	"errors"
	"testing"
)

func TestValidateRangeBounds(t *testing.T) {
	reg := testRegistry(t)
	s, err := reg.Find("gyro_sync_denom") // u8, range [1..32]
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	cases := []struct {
		value int64
		ok    bool
	}{
		{0, false},
		{1, true},
		{32, true},
		{33, false},
	}
	for _, tc := range cases {
		err := reg.Validate(s, tc.value)
		if tc.ok && err != nil {
			t.Errorf("Validate(%d): unexpected error %v", tc.value, err)
		}
		if !tc.ok {
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Errorf("Validate(%d): expected RangeError, got %v", tc.value, err)
				continue
			}
			if rangeErr.Min != 1 || rangeErr.Max != 32 {
				t.Errorf("Validate(%d): bounds [%d..%d], want [1..32]", tc.value, rangeErr.Min, rangeErr.Max)
			}
		}
	}
}

func TestValidateSignedRange(t *testing.T) {
	reg := testRegistry(t)
	s, err := reg.Find("acc_trim_pitch") // i16, range [-300..300]
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	for _, v := range []int64{-300, -1, 0, 300} {
		if err := reg.Validate(s, v); err != nil {
			t.Errorf("Validate(%d): unexpected error %v", v, err)
		}
	}
	for _, v := range []int64{-301, 301} {
		var rangeErr *RangeError
		if !errors.As(reg.Validate(s, v), &rangeErr) {
			t.Errorf("Validate(%d): expected RangeError", v)
		}
	}
}

func TestValidateEnumOrdinals(t *testing.T) {
	reg := testRegistry(t)
	s, err := reg.Find("align_gyro") // enum over 9-label alignment table
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	if err := reg.Validate(s, 0); err != nil {
		t.Errorf("Validate(0): unexpected error %v", err)
	}
	if err := reg.Validate(s, 8); err != nil {
		t.Errorf("Validate(8): unexpected error %v", err)
	}

	for _, v := range []int64{9, -1} {
		var ordErr *OrdinalError
		if !errors.As(reg.Validate(s, v), &ordErr) {
			t.Errorf("Validate(%d): expected OrdinalError", v)
			continue
		}
		if ordErr.TableLen != 9 {
			t.Errorf("Validate(%d): table len %d, want 9", v, ordErr.TableLen)
		}
	}
}

func TestValidateNeverClamps(t *testing.T) {
	reg := testRegistry(t)
	groups := testGroups(t)
	acc, err := NewAccessor(reg, groups)
	if err != nil {
		t.Fatalf("NewAccessor failed: %v", err)
	}

	s, _ := reg.Find("gyro_sync_denom")
	if err := acc.Write(s, NoProfile, 8); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// A rejected write leaves the stored value untouched; it is never
	// truncated to the nearest bound.
	if err := acc.Write(s, NoProfile, 100); err == nil {
		t.Fatal("expected rejection for out-of-range write")
	}
	v, err := acc.Read(s, NoProfile)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if v != 8 {
		t.Errorf("stored value changed to %d after rejected write, want 8", v)
	}
}
