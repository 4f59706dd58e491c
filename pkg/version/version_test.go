package version

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Release
		wantErr bool
	}{
		{"1.0.0", Release{1, 0, 0}, false},
		{"2.14.3", Release{2, 14, 3}, false},
		{"1.0", Release{}, true},
		{"1.0.0.0", Release{}, true},
		{"a.b.c", Release{}, true},
		{"1..0", Release{}, true},
		{"", Release{}, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCurrentParses(t *testing.T) {
	if _, err := Parse(Current); err != nil {
		t.Fatalf("Current %q does not parse: %v", Current, err)
	}
}

func TestString(t *testing.T) {
	r := Release{1, 2, 3}
	if got := r.String(); got != "1.2.3" {
		t.Errorf("String() = %q, want 1.2.3", got)
	}
}

func TestCompatible(t *testing.T) {
	a := Release{1, 0, 0}
	b := Release{1, 9, 5}
	c := Release{2, 0, 0}

	if !a.Compatible(b) {
		t.Error("same major versions should be compatible")
	}
	if a.Compatible(c) {
		t.Error("different major versions should not be compatible")
	}
}
