package config

import "fmt"

// PlanLogConfig defines settings for plan log storage and rotation.
type PlanLogConfig struct {
	Enabled bool `json:"enabled"`
	// Path is the file location of the JSONL store.
	Path string `json:"path"`
	// MaxSizeMB triggers rotation when the file exceeds this size in megabytes.
	MaxSizeMB int `json:"max_size_mb"`
	// MaxBackups limits the number of rotated files to keep.
	MaxBackups int `json:"max_backups"`
	// MaxAgeDays removes rotated files older than this number of days.
	MaxAgeDays int `json:"max_age_days"`
}

// SetDefaults applies sane defaults.
func (c *PlanLogConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "plans.jsonl"
	}
	if c.MaxSizeMB == 0 {
		c.MaxSizeMB = 50
	}
	if c.MaxBackups == 0 {
		c.MaxBackups = 3
	}
}

// Validate checks mandatory fields.
func (c PlanLogConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Path == "" {
		return fmt.Errorf("planlog path is required")
	}
	if c.MaxSizeMB < 0 || c.MaxBackups < 0 || c.MaxAgeDays < 0 {
		return fmt.Errorf("planlog rotation settings must be non-negative")
	}
	return nil
}
