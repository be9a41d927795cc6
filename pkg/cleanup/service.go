// Package cleanup enforces retention on the append-only event tables.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/waflow/waflow/ent"
	"github.com/waflow/waflow/ent/statusevent"
	"github.com/waflow/waflow/ent/traceevent"
	"github.com/waflow/waflow/pkg/config"
)

// Service periodically deletes trace and status events past their
// retention horizon. Idempotent and safe to run from multiple pods.
type Service struct {
	cfg    *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{cfg: cfg, client: client}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"trace_retention", s.cfg.TraceEventRetention,
		"status_retention", s.cfg.StatusEventRetention,
		"interval", s.cfg.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.sweep(ctx); err != nil && ctx.Err() == nil {
				slog.Error("Retention sweep failed", "error", err)
			}
		}
	}
}

// sweep deletes expired rows from both event tables.
func (s *Service) sweep(ctx context.Context) error {
	now := time.Now()

	if s.cfg.TraceEventRetention > 0 {
		n, err := s.client.TraceEvent.Delete().
			Where(traceevent.TsLT(now.Add(-s.cfg.TraceEventRetention))).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("sweeping trace events: %w", err)
		}
		if n > 0 {
			slog.Info("Swept trace events", "deleted", n)
		}
	}

	if s.cfg.StatusEventRetention > 0 {
		n, err := s.client.StatusEvent.Delete().
			Where(statusevent.LastReceivedAtLT(now.Add(-s.cfg.StatusEventRetention))).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("sweeping status events: %w", err)
		}
		if n > 0 {
			slog.Info("Swept status events", "deleted", n)
		}
	}

	return nil
}
