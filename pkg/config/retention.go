package config

import "time"

// RetentionConfig controls the cleanup sweeper for append-only event
// tables. Zero retention disables the corresponding sweep.
type RetentionConfig struct {
	// TraceEventRetention is how long campaign_trace_events rows are kept.
	TraceEventRetention time.Duration `yaml:"trace_event_retention"`

	// StatusEventRetention is how long status_events dedup rows are kept.
	// Must comfortably exceed the provider's webhook retry horizon.
	StatusEventRetention time.Duration `yaml:"status_event_retention"`

	// SweepInterval is how often the sweeper runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TraceEventRetention:  30 * 24 * time.Hour,
		StatusEventRetention: 14 * 24 * time.Hour,
		SweepInterval:        time.Hour,
	}
}
