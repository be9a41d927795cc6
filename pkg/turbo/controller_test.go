package turbo

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waflow/waflow/pkg/config"
)

type fakeStore struct {
	values map[string]json.RawMessage
	saves  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]json.RawMessage)}
}

func (f *fakeStore) Load(_ context.Context, key string, v interface{}) (bool, error) {
	raw, ok := f.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func (f *fakeStore) Save(_ context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.values[key] = raw
	f.saves++
	return nil
}

func testConfig() config.TurboConfig {
	return config.TurboConfig{
		Enabled:           true,
		SendConcurrency:   4,
		BatchSize:         50,
		StartMps:          10,
		MaxMps:            40,
		MinMps:            5,
		CooldownSec:       30,
		MinIncreaseGapSec: 10,
	}
}

// testController returns a controller with a controllable clock.
func testController(store SettingsStore) (*Controller, *time.Time) {
	c := NewController(testConfig(), store)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestControllerStartsAtStartMps(t *testing.T) {
	c, _ := testController(newFakeStore())
	assert.Equal(t, 10.0, c.Target(context.Background(), "sender-1"))
}

func TestControllerHalvesOnRateLimit(t *testing.T) {
	ctx := context.Background()
	c, now := testController(newFakeStore())

	c.ReportRateLimited(ctx, "sender-1")
	assert.Equal(t, 5.0, c.Target(ctx, "sender-1"))

	// Already at the floor: halving again stays clamped.
	c.ReportRateLimited(ctx, "sender-1")
	assert.Equal(t, 5.0, c.Target(ctx, "sender-1"))

	// No raise during cooldown, however many sends succeed.
	*now = now.Add(15 * time.Second)
	c.ReportOK(ctx, "sender-1")
	c.ReportOK(ctx, "sender-1")
	assert.Equal(t, 5.0, c.Target(ctx, "sender-1"))

	// Cooldown over: each ok spaced by the gap raises by one.
	*now = now.Add(30 * time.Second)
	c.ReportOK(ctx, "sender-1")
	assert.Equal(t, 6.0, c.Target(ctx, "sender-1"))

	// Too soon after the last raise.
	*now = now.Add(5 * time.Second)
	c.ReportOK(ctx, "sender-1")
	assert.Equal(t, 6.0, c.Target(ctx, "sender-1"))

	*now = now.Add(10 * time.Second)
	c.ReportOK(ctx, "sender-1")
	assert.Equal(t, 7.0, c.Target(ctx, "sender-1"))
}

func TestControllerCapsAtMaxMps(t *testing.T) {
	ctx := context.Background()
	c, now := testController(newFakeStore())

	for i := 0; i < 100; i++ {
		*now = now.Add(11 * time.Second)
		c.ReportOK(ctx, "sender-1")
	}
	assert.Equal(t, 40.0, c.Target(ctx, "sender-1"))
}

func TestControllerResetState(t *testing.T) {
	ctx := context.Background()
	c, _ := testController(newFakeStore())

	c.ReportRateLimited(ctx, "sender-1")
	require.Equal(t, 5.0, c.Target(ctx, "sender-1"))

	c.ResetState(ctx, "sender-1")
	assert.Equal(t, 10.0, c.Target(ctx, "sender-1"))
}

func TestControllerPersistsAfterMutation(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c, _ := testController(store)

	c.ReportRateLimited(ctx, "sender-1")
	assert.Equal(t, 1, store.saves)

	var persisted map[string]SenderState
	found, err := store.Load(ctx, StateKey, &persisted)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 5.0, persisted["sender-1"].TargetMps)
}

func TestControllerRestoresPersistedState(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	require.NoError(t, store.Save(ctx, StateKey, map[string]SenderState{
		"sender-1": {TargetMps: 23},
	}))

	c, _ := testController(store)
	assert.Equal(t, 23.0, c.Target(ctx, "sender-1"))
}

func TestControllerClampsPersistedState(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	require.NoError(t, store.Save(ctx, StateKey, map[string]SenderState{
		"hot": {TargetMps: 500},
		"cold": {TargetMps: 0.1},
	}))

	c, _ := testController(store)
	assert.Equal(t, 40.0, c.Target(ctx, "hot"), "restored target stays within maxMps")
	assert.Equal(t, 5.0, c.Target(ctx, "cold"), "restored target stays within minMps")
}

func TestControllerDisabledHoldsFlat(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.Enabled = false
	c := NewController(cfg, newFakeStore())

	c.ReportRateLimited(ctx, "sender-1")
	c.ReportOK(ctx, "sender-1")
	assert.Equal(t, 10.0, c.Target(ctx, "sender-1"))
}

func TestAcquireRespectsContext(t *testing.T) {
	c, _ := testController(newFakeStore())

	ctx, cancel := context.WithCancel(context.Background())
	// First acquire consumes the single token; cancel aborts the second.
	require.NoError(t, c.Acquire(ctx, "sender-1"))
	cancel()
	assert.Error(t, c.Acquire(ctx, "sender-1"))
}
