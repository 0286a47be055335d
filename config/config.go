// Package config loads engine tuning from a YAML file. Values land in the
// engine as plain durations and thresholds; nothing here is consulted at
// poll time.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable values for the poll loop and the approximate
// content-scan heuristics.
type Config struct {
	// FocusIntervalMS is the fast poll interval for focus changes.
	FocusIntervalMS int `yaml:"focus_interval_ms"`

	// ScanIntervalMS is the slow poll interval for passive content scans.
	ScanIntervalMS int `yaml:"scan_interval_ms"`

	// ScrollAnnounceCap is the display width at which long content is cut
	// off on first announcement.
	ScrollAnnounceCap int `yaml:"scroll_announce_cap"`

	// PanelGrowthMin is the minimum growth of concatenated panel text
	// before a passive re-announcement is queued.
	PanelGrowthMin int `yaml:"panel_growth_min"`

	// DialogDenylist adds non-content dialog names that must never be
	// announced, on top of the built-in list.
	DialogDenylist []string `yaml:"dialog_denylist"`
}

// Default returns the shipped defaults.
func Default() Config {
	return Config{
		FocusIntervalMS:   120,
		ScanIntervalMS:    600,
		ScrollAnnounceCap: 500,
		PanelGrowthMin:    50,
	}
}

// Load reads a YAML config file, applying defaults for absent fields. A
// missing file returns the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.FocusIntervalMS <= 0 {
		return fmt.Errorf("focus_interval_ms must be positive, got %d", c.FocusIntervalMS)
	}
	if c.ScanIntervalMS < c.FocusIntervalMS {
		return fmt.Errorf("scan_interval_ms (%d) must not be shorter than focus_interval_ms (%d)",
			c.ScanIntervalMS, c.FocusIntervalMS)
	}
	if c.ScrollAnnounceCap < 0 {
		return fmt.Errorf("scroll_announce_cap must not be negative, got %d", c.ScrollAnnounceCap)
	}
	if c.PanelGrowthMin < 0 {
		return fmt.Errorf("panel_growth_min must not be negative, got %d", c.PanelGrowthMin)
	}
	return nil
}

// FocusInterval returns the focus poll interval as a duration.
func (c Config) FocusInterval() time.Duration {
	return time.Duration(c.FocusIntervalMS) * time.Millisecond
}

// ScanInterval returns the content scan interval as a duration.
func (c Config) ScanInterval() time.Duration {
	return time.Duration(c.ScanIntervalMS) * time.Millisecond
}
