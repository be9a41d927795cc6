package config

import "time"

// DispatcherConfig controls the campaign worker pool: how campaigns are
// polled and claimed, how stale work is recovered, and the scheduler tick.
type DispatcherConfig struct {
	// WorkerCount is the number of campaign workers per replica. Each
	// worker drives one campaign's batch loop at a time.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking claimable campaigns.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval so
	// replicas do not thunder on the same rows.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often a worker stamps last_dispatch_at on
	// the campaign it is driving.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanThreshold is how long a sending campaign may go without a
	// dispatch heartbeat before another worker may take it over.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// SchedulerInterval is the tick materializing scheduled campaigns
	// whose scheduled_at has passed.
	SchedulerInterval time.Duration `yaml:"scheduler_interval"`

	// SendingTimeout is how long a contact row may sit in sending before
	// the reaper returns it to pending.
	SendingTimeout time.Duration `yaml:"sending_timeout"`

	// ReaperInterval is the periodic reaper tick. The reaper also runs
	// once at startup.
	ReaperInterval time.Duration `yaml:"reaper_interval"`

	// RateLimitedRequeueBudget bounds how many times one row may bounce
	// back to pending on rate_limited before it is failed outright.
	RateLimitedRequeueBudget int `yaml:"rate_limited_requeue_budget"`
}

// DefaultDispatcherConfig returns the built-in dispatcher defaults.
func DefaultDispatcherConfig() *DispatcherConfig {
	return &DispatcherConfig{
		WorkerCount:              2,
		PollInterval:             2 * time.Second,
		PollIntervalJitter:       500 * time.Millisecond,
		HeartbeatInterval:        15 * time.Second,
		OrphanThreshold:          2 * time.Minute,
		SchedulerInterval:        15 * time.Second,
		SendingTimeout:           5 * time.Minute,
		ReaperInterval:           time.Minute,
		RateLimitedRequeueBudget: 3,
	}
}
