package ingest

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Reconciler retries status events that arrived before their send was
// recorded (the webhook can beat the dispatcher's own write). Bounded
// in-memory queue; events that never match are dropped after the retry
// budget — the status_events row keeps the fact either way.
type Reconciler struct {
	statuses   StatusApplier
	queue      chan pendingEvent
	maxRetries int
	delay      time.Duration

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

type pendingEvent struct {
	event   StatusEvent
	attempt int
}

// NewReconciler creates a reconciler with the given retry spacing.
func NewReconciler(statuses StatusApplier, maxRetries int, delay time.Duration) *Reconciler {
	if maxRetries <= 0 {
		maxRetries = 5
	}
	if delay <= 0 {
		delay = 2 * time.Second
	}
	return &Reconciler{
		statuses:   statuses,
		queue:      make(chan pendingEvent, 1024),
		maxRetries: maxRetries,
		delay:      delay,
		stopCh:     make(chan struct{}),
	}
}

// Start launches the retry worker.
func (r *Reconciler) Start(ctx context.Context) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
}

// Stop drains the worker.
func (r *Reconciler) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

// Enqueue schedules an unmatched event for a later projection attempt.
// Non-blocking: when the queue is full the event is dropped with a log
// line; the dedup row already recorded it.
func (r *Reconciler) Enqueue(ev StatusEvent) {
	select {
	case r.queue <- pendingEvent{event: ev}:
	default:
		slog.Warn("Reconciliation queue full, dropping status event",
			"message_id", ev.MessageID,
			"status", string(ev.Status))
	}
}

func (r *Reconciler) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return
		case item := <-r.queue:
			if err := r.sleep(ctx, r.delay); err != nil {
				return
			}
			matched, err := r.statuses.Reproject(ctx, item.event)
			if err != nil {
				slog.Error("Reconciliation attempt failed",
					"message_id", item.event.MessageID,
					"error", err)
			}
			if !matched && err == nil {
				item.attempt++
				if item.attempt >= r.maxRetries {
					slog.Warn("Status event never matched a contact row",
						"message_id", item.event.MessageID,
						"status", string(item.event.Status),
						"attempts", item.attempt)
					continue
				}
				select {
				case r.queue <- item:
				default:
					slog.Warn("Reconciliation queue full, dropping retried event",
						"message_id", item.event.MessageID)
				}
			}
		}
	}
}

func (r *Reconciler) sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-r.stopCh:
		return context.Canceled
	case <-t.C:
		return nil
	}
}
