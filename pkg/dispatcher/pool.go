package dispatcher

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/waflow/waflow/pkg/config"
	"github.com/waflow/waflow/pkg/trace"
)

// Pool runs the campaign workers plus the scheduler and reaper tickers.
// Every replica runs its own pool; campaign claims and the reaper are
// idempotent across replicas.
type Pool struct {
	podID     string
	store     Store
	templates TemplateSource
	sender    TemplateSender
	turbo     RateController
	rehoster  Rehoster
	tracer    trace.Emitter
	cfg       *config.DispatcherConfig
	senderID  string

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu      sync.Mutex
	started bool
	active  map[string]context.CancelFunc // campaign_id → cancel
}

// NewPool creates a dispatcher pool.
func NewPool(podID string, store Store, templates TemplateSource, sender TemplateSender, turbo RateController, rehoster Rehoster, tracer trace.Emitter, cfg *config.DispatcherConfig, senderID string) *Pool {
	if tracer == nil {
		tracer = trace.Nop{}
	}
	return &Pool{
		podID:     podID,
		store:     store,
		templates: templates,
		sender:    sender,
		turbo:     turbo,
		rehoster:  rehoster,
		tracer:    tracer,
		cfg:       cfg,
		senderID:  senderID,
		stopCh:    make(chan struct{}),
		active:    make(map[string]context.CancelFunc),
	}
}

// Start reaps rows stranded by a previous crash, then spawns the worker,
// scheduler, and reaper goroutines. Safe to call once; duplicates are
// ignored.
func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		slog.Warn("Dispatcher pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true
	p.mu.Unlock()

	// Startup reap: sending rows older than the timeout go back to
	// pending with an attempt increment.
	if n, err := p.store.ReapStaleSending(ctx, time.Now().Add(-p.cfg.SendingTimeout)); err != nil {
		slog.Error("Startup reap failed", "error", err)
	} else if n > 0 {
		slog.Warn("Startup reap returned stale rows to pending", "count", n)
	}

	slog.Info("Starting dispatcher pool", "pod_id", p.podID, "worker_count", p.cfg.WorkerCount)

	for i := 0; i < p.cfg.WorkerCount; i++ {
		p.wg.Add(1)
		go func(workerIdx int) {
			defer p.wg.Done()
			p.runWorker(ctx, workerIdx)
		}(i)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runScheduler(ctx)
	}()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runReaper(ctx)
	}()

	return nil
}

// Stop signals all goroutines and waits for in-flight batches to finish.
func (p *Pool) Stop() {
	slog.Info("Stopping dispatcher pool")
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("Dispatcher pool stopped")
}

// ActiveCampaigns returns the ids of campaigns this pod is driving.
func (p *Pool) ActiveCampaigns() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := make([]string, 0, len(p.active))
	for id := range p.active {
		ids = append(ids, id)
	}
	return ids
}

// runWorker polls for claimable campaigns and drives them one at a time.
func (p *Pool) runWorker(ctx context.Context, idx int) {
	log := slog.With("pod_id", p.podID, "worker", idx)
	log.Info("Campaign worker started")

	for {
		select {
		case <-p.stopCh:
			log.Info("Campaign worker shutting down")
			return
		case <-ctx.Done():
			return
		default:
			if err := p.claimAndRun(ctx); err != nil {
				if errors.Is(err, ErrNoCampaigns) {
					p.sleep(p.pollInterval())
					continue
				}
				if errors.Is(err, context.Canceled) {
					continue
				}
				log.Error("Campaign dispatch error", "error", err)
				p.sleep(time.Second)
			}
		}
	}
}

// claimAndRun claims one campaign and runs it to a stop condition.
func (p *Pool) claimAndRun(ctx context.Context) error {
	staleBefore := time.Now().Add(-p.cfg.OrphanThreshold)
	c, err := p.store.ClaimCampaign(ctx, p.podID, staleBefore)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p.mu.Lock()
	p.active[c.ID] = cancel
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		delete(p.active, c.ID)
		p.mu.Unlock()
	}()

	// Stop mid-campaign on pool shutdown; claimed rows are reaped on the
	// next startup.
	go func() {
		select {
		case <-p.stopCh:
			cancel()
		case <-runCtx.Done():
		}
	}()

	runner := NewRunner(p.store, p.templates, p.sender, p.turbo, p.rehoster, p.tracer, p.cfg, p.senderID, p.podID)
	runErr := runner.Run(runCtx, c)

	if err := p.store.Release(context.Background(), c.ID, p.podID); err != nil {
		slog.Warn("Failed to release campaign", "campaign_id", c.ID, "error", err)
	}
	return runErr
}

// runScheduler materializes due scheduled campaigns.
func (p *Pool) runScheduler(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.SchedulerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			ids, err := p.store.MaterializeScheduled(ctx, time.Now())
			if err != nil {
				slog.Error("Scheduler tick failed", "error", err)
				continue
			}
			if len(ids) > 0 {
				slog.Info("Materialized scheduled campaigns", "count", len(ids), "campaign_ids", ids)
			}
		}
	}
}

// runReaper periodically returns stale sending rows to pending.
func (p *Pool) runReaper(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.ReaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			n, err := p.store.ReapStaleSending(ctx, time.Now().Add(-p.cfg.SendingTimeout))
			if err != nil {
				slog.Error("Reaper tick failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Warn("Reaper returned stale rows to pending", "count", n)
			}
		}
	}
}

// pollInterval returns the base interval plus jitter.
func (p *Pool) pollInterval() time.Duration {
	jitter := time.Duration(0)
	if p.cfg.PollIntervalJitter > 0 {
		jitter = time.Duration(rand.Int64N(int64(2*p.cfg.PollIntervalJitter))) - p.cfg.PollIntervalJitter
	}
	return p.cfg.PollInterval + jitter
}

// sleep waits for d or until the pool stops.
func (p *Pool) sleep(d time.Duration) {
	select {
	case <-p.stopCh:
	case <-time.After(d):
	}
}
