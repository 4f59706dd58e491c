package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aeroset/aeroset-go/pkg/catalog"
	"github.com/aeroset/aeroset-go/pkg/setting"
)

// RawStationConfig represents a station configuration loaded from YAML.
type RawStationConfig struct {
	// Capabilities lists enabled capability names. Empty means the
	// default capability set.
	Capabilities []string `yaml:"capabilities"`

	// Profiles is the number of tuning profiles (0 = maximum).
	Profiles int `yaml:"profiles"`

	// RateProfiles is the number of rate profiles (0 = maximum).
	RateProfiles int `yaml:"rate_profiles"`

	// SnapshotPath is where settings snapshots are saved.
	SnapshotPath string `yaml:"snapshot_path"`

	// AuditPath is where the settings audit log is written.
	AuditPath string `yaml:"audit_path"`
}

// ParseStationConfig parses a station configuration from YAML bytes.
func ParseStationConfig(data []byte) (*RawStationConfig, error) {
	var cfg RawStationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing station config: %w", err)
	}
	return &cfg, nil
}

// LoadStationConfig loads and parses a station configuration file.
func LoadStationConfig(path string) (*RawStationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseStationConfig(data)
}

// CatalogOptions converts the raw config into catalog options,
// rejecting unknown capability names.
func (c *RawStationConfig) CatalogOptions() (catalog.Options, error) {
	opts := catalog.Options{
		ProfileCount:     c.Profiles,
		RateProfileCount: c.RateProfiles,
	}

	if len(c.Capabilities) == 0 {
		return opts, nil
	}

	known := make(map[setting.Capability]bool)
	for _, capability := range catalog.AllCapabilities() {
		known[capability] = true
	}

	for _, name := range c.Capabilities {
		capability := setting.Capability(name)
		if !known[capability] {
			return catalog.Options{}, fmt.Errorf("unknown capability %q", name)
		}
		opts.Capabilities = append(opts.Capabilities, capability)
	}
	return opts, nil
}
