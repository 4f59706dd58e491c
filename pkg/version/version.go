// Package version identifies the library and its snapshot format.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the library version.
const Current = "1.0.0"

// Release represents a parsed "major.minor.patch" version.
type Release struct {
	Major uint16
	Minor uint16
	Patch uint16
}

// Parse parses a "major.minor.patch" version string.
func Parse(s string) (Release, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Release{}, fmt.Errorf("invalid version %q: expected major.minor.patch", s)
	}

	nums := make([]uint16, 3)
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 16)
		if err != nil || part == "" {
			return Release{}, fmt.Errorf("invalid version %q: bad component %q", s, part)
		}
		nums[i] = uint16(n)
	}

	return Release{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String returns the version as "major.minor.patch".
func (r Release) String() string {
	return fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Patch)
}

// Compatible returns true if the other release has the same major
// version. Snapshot files written by a compatible release can be
// restored.
func (r Release) Compatible(other Release) bool {
	return r.Major == other.Major
}
