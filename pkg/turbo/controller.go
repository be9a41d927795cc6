// Package turbo implements the adaptive outbound rate controller: a
// per-sender token bucket whose target rate rises additively on success
// and halves when the provider signals throttling. The settings store is
// the source of truth for the target across restarts.
package turbo

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/waflow/waflow/pkg/config"
)

// StateKey is the settings row holding per-sender runtime counters.
const StateKey = "turbo.state"

// ConfigKey is the settings row holding the TurboConfig.
const ConfigKey = "turbo.config"

// SettingsStore is the slice of the settings service the controller
// persists through.
type SettingsStore interface {
	// Load unmarshals the value at key into v; found is false when the
	// key is absent.
	Load(ctx context.Context, key string, v interface{}) (found bool, err error)
	Save(ctx context.Context, key string, v interface{}) error
}

// SenderState is the persisted runtime state for one sender.
type SenderState struct {
	TargetMps      float64   `json:"targetMps"`
	CooldownUntil  time.Time `json:"cooldownUntil,omitempty"`
	LastIncreaseAt time.Time `json:"lastIncreaseAt,omitempty"`
	LastDecreaseAt time.Time `json:"lastDecreaseAt,omitempty"`
}

// sender pairs the persisted state with its in-process token bucket.
type sender struct {
	state   SenderState
	limiter *rate.Limiter
}

// Controller is the per-process Turbo registry. All senders share one
// mutex; mutations are rare relative to sends and the bucket itself is
// the serialization point workers block on.
type Controller struct {
	cfg   config.TurboConfig
	store SettingsStore

	mu      sync.Mutex
	senders map[string]*sender

	now func() time.Time
}

// NewController creates a controller with the given config. Persisted
// sender state is lazily loaded on first acquire and clamped into the
// configured bounds.
func NewController(cfg config.TurboConfig, store SettingsStore) *Controller {
	return &Controller{
		cfg:     cfg.Normalize(),
		store:   store,
		senders: make(map[string]*sender),
		now:     time.Now,
	}
}

// Config returns the active configuration.
func (c *Controller) Config() config.TurboConfig {
	return c.cfg
}

// Acquire blocks until the sender may emit one message: the optional
// floor delay first, then a token from the bucket. Cancellation of ctx
// aborts the wait.
func (c *Controller) Acquire(ctx context.Context, senderID string) error {
	s := c.senderFor(ctx, senderID)

	if c.cfg.SendFloorDelayMs > 0 {
		t := time.NewTimer(time.Duration(c.cfg.SendFloorDelayMs) * time.Millisecond)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}

	return s.limiter.Wait(ctx)
}

// ReportOK records a successful send. The target rises by 1 when at
// least the configured gap has passed since the last raise and the
// sender is not cooling down.
func (c *Controller) ReportOK(ctx context.Context, senderID string) {
	if !c.cfg.Enabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.senderForLocked(ctx, senderID)
	now := c.now()
	if now.Before(s.state.CooldownUntil) {
		return
	}
	gap := time.Duration(c.cfg.MinIncreaseGapSec) * time.Second
	if !s.state.LastIncreaseAt.IsZero() && now.Sub(s.state.LastIncreaseAt) < gap {
		return
	}
	if s.state.TargetMps >= c.cfg.MaxMps {
		return
	}

	s.state.TargetMps = min(s.state.TargetMps+1, c.cfg.MaxMps)
	s.state.LastIncreaseAt = now
	s.limiter.SetLimit(rate.Limit(s.state.TargetMps))
	slog.Debug("Turbo target raised", "sender_id", senderID, "target_mps", s.state.TargetMps)
	c.persistLocked(ctx)
}

// ReportRateLimited records a provider throttle signal: the target
// halves (floored at MinMps) and the sender enters cooldown.
func (c *Controller) ReportRateLimited(ctx context.Context, senderID string) {
	if !c.cfg.Enabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.senderForLocked(ctx, senderID)
	now := c.now()
	s.state.TargetMps = max(s.state.TargetMps/2, c.cfg.MinMps)
	s.state.CooldownUntil = now.Add(time.Duration(c.cfg.CooldownSec) * time.Second)
	s.state.LastDecreaseAt = now
	s.limiter.SetLimit(rate.Limit(s.state.TargetMps))
	slog.Warn("Turbo target halved after provider throttle",
		"sender_id", senderID,
		"target_mps", s.state.TargetMps,
		"cooldown_until", s.state.CooldownUntil)
	c.persistLocked(ctx)
}

// ResetState restores a sender to the starting target and clears the
// cooldown window.
func (c *Controller) ResetState(ctx context.Context, senderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.senderForLocked(ctx, senderID)
	s.state = SenderState{TargetMps: c.cfg.StartMps}
	s.limiter.SetLimit(rate.Limit(s.state.TargetMps))
	c.persistLocked(ctx)
}

// Target returns the sender's current target MPS.
func (c *Controller) Target(ctx context.Context, senderID string) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.senderForLocked(ctx, senderID).state.TargetMps
}

// senderFor returns the sender entry, creating and loading it on first use.
func (c *Controller) senderFor(ctx context.Context, senderID string) *sender {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.senderForLocked(ctx, senderID)
}

func (c *Controller) senderForLocked(ctx context.Context, senderID string) *sender {
	if s, ok := c.senders[senderID]; ok {
		return s
	}

	state := SenderState{TargetMps: c.cfg.StartMps}
	var persisted map[string]SenderState
	if c.store != nil {
		if found, err := c.store.Load(ctx, StateKey, &persisted); err != nil {
			slog.Warn("Failed to load turbo state, starting fresh", "error", err)
		} else if found {
			if ps, ok := persisted[senderID]; ok {
				state = ps
			}
		}
	}
	state.TargetMps = clamp(state.TargetMps, c.cfg.MinMps, c.cfg.MaxMps)

	s := &sender{
		state:   state,
		limiter: rate.NewLimiter(rate.Limit(state.TargetMps), 1),
	}
	c.senders[senderID] = s
	return s
}

// persistLocked mirrors every sender's state to the settings store.
// Best-effort: persistence failure is logged, never propagated.
func (c *Controller) persistLocked(ctx context.Context) {
	if c.store == nil {
		return
	}
	out := make(map[string]SenderState, len(c.senders))
	for id, s := range c.senders {
		out[id] = s.state
	}
	if err := c.store.Save(ctx, StateKey, out); err != nil {
		slog.Warn("Failed to persist turbo state", "error", err)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
