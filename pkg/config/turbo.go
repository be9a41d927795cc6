package config

// TurboConfig is the adaptive rate controller configuration. It lives in
// the settings table under "turbo.config" and is JSON round-tripped, so
// field tags are part of the persisted contract.
type TurboConfig struct {
	// Enabled gates the adaptive policy. Disabled, the controller holds
	// StartMps flat and never reacts to send outcomes.
	Enabled bool `json:"enabled"`

	// SendConcurrency is the number of workers drawing from the token
	// bucket within one batch. Upper parallelism cap; the steady-state
	// rate is the target MPS.
	SendConcurrency int `json:"sendConcurrency"`

	// BatchSize is how many pending rows one claim moves to sending.
	BatchSize int `json:"batchSize"`

	// StartMps is the initial (and reset) target messages per second.
	StartMps float64 `json:"startMps"`

	// MaxMps / MinMps bound the target at all times, including across
	// process restarts.
	MaxMps float64 `json:"maxMps"`
	MinMps float64 `json:"minMps"`

	// CooldownSec is how long after a decrease the target is frozen.
	CooldownSec int `json:"cooldownSec"`

	// MinIncreaseGapSec is the minimum spacing between +1 raises.
	MinIncreaseGapSec int `json:"minIncreaseGapSec"`

	// SendFloorDelayMs is an unconditional floor delay applied to every
	// acquire, independent of the target rate.
	SendFloorDelayMs int `json:"sendFloorDelayMs"`
}

// DefaultTurboConfig returns the built-in Turbo defaults used when the
// settings row is absent.
func DefaultTurboConfig() TurboConfig {
	return TurboConfig{
		Enabled:           true,
		SendConcurrency:   4,
		BatchSize:         50,
		StartMps:          10,
		MaxMps:            80,
		MinMps:            2,
		CooldownSec:       60,
		MinIncreaseGapSec: 15,
		SendFloorDelayMs:  0,
	}
}

// Normalize clamps nonsensical values into a usable range.
func (c TurboConfig) Normalize() TurboConfig {
	if c.SendConcurrency < 1 {
		c.SendConcurrency = 1
	}
	if c.BatchSize < 1 {
		c.BatchSize = 1
	}
	if c.MinMps < 1 {
		c.MinMps = 1
	}
	if c.MaxMps < c.MinMps {
		c.MaxMps = c.MinMps
	}
	if c.StartMps < c.MinMps {
		c.StartMps = c.MinMps
	}
	if c.StartMps > c.MaxMps {
		c.StartMps = c.MaxMps
	}
	return c
}
