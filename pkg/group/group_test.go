package group

import (
	"errors"
	"testing"
)

func TestSetInstanceWindows(t *testing.T) {
	set, err := NewSet(
		Layout{ID: 1, Name: "gyro", Size: 16, Count: 1, Scope: ScopeGlobal},
		Layout{ID: 2, Name: "pid_profile", Size: 64, Count: 3, Scope: ScopeProfile},
	)
	if err != nil {
		t.Fatalf("NewSet failed: %v", err)
	}

	t.Run("GlobalInstance", func(t *testing.T) {
		win, err := set.Instance(1, 0)
		if err != nil {
			t.Fatalf("Instance failed: %v", err)
		}
		if len(win) != 16 {
			t.Errorf("expected 16-byte window, got %d", len(win))
		}
	})

	t.Run("ProfileInstancesAreDisjoint", func(t *testing.T) {
		w0, err := set.Instance(2, 0)
		if err != nil {
			t.Fatalf("Instance(0) failed: %v", err)
		}
		w2, err := set.Instance(2, 2)
		if err != nil {
			t.Fatalf("Instance(2) failed: %v", err)
		}

		w0[4] = 0xAA
		if w2[4] != 0 {
			t.Error("write to instance 0 leaked into instance 2")
		}
		w2[4] = 0xBB
		if w0[4] != 0xAA {
			t.Error("write to instance 2 leaked into instance 0")
		}
	})

	t.Run("InstanceOutOfRange", func(t *testing.T) {
		if _, err := set.Instance(2, 3); err == nil {
			t.Error("expected error for instance index 3 of 3")
		}
		if _, err := set.Instance(2, -1); err == nil {
			t.Error("expected error for negative instance index")
		}
	})

	t.Run("UnknownGroup", func(t *testing.T) {
		_, err := set.Instance(99, 0)
		if !errors.Is(err, ErrUnknownGroup) {
			t.Errorf("expected ErrUnknownGroup, got %v", err)
		}
	})

	t.Run("Layout", func(t *testing.T) {
		l, err := set.Layout(2)
		if err != nil {
			t.Fatalf("Layout failed: %v", err)
		}
		if l.Size != 64 || l.Count != 3 || l.Scope != ScopeProfile {
			t.Errorf("unexpected layout: %+v", l)
		}
	})
}

func TestNewSetRejectsBadLayouts(t *testing.T) {
	cases := []struct {
		name   string
		layout Layout
	}{
		{"ZeroSize", Layout{ID: 1, Name: "z", Size: 0, Count: 1, Scope: ScopeGlobal}},
		{"ZeroCount", Layout{ID: 1, Name: "z", Size: 8, Count: 0, Scope: ScopeProfile}},
		{"GlobalMultiInstance", Layout{ID: 1, Name: "z", Size: 8, Count: 2, Scope: ScopeGlobal}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewSet(tc.layout); err == nil {
				t.Error("expected layout validation error")
			}
		})
	}
}

func TestNewSetRejectsDuplicateID(t *testing.T) {
	_, err := NewSet(
		Layout{ID: 1, Name: "a", Size: 8, Count: 1, Scope: ScopeGlobal},
		Layout{ID: 1, Name: "b", Size: 8, Count: 1, Scope: ScopeGlobal},
	)
	if err == nil {
		t.Fatal("expected error for duplicate group ID")
	}
}

func TestScopeString(t *testing.T) {
	if ScopeGlobal.String() != "GLOBAL" ||
		ScopeProfile.String() != "PROFILE" ||
		ScopeRateProfile.String() != "RATE_PROFILE" {
		t.Error("unexpected scope names")
	}
	if Scope(9).String() != "UNKNOWN" {
		t.Error("expected UNKNOWN for invalid scope")
	}
}
