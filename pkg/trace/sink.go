package trace

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/waflow/waflow/ent"
	"github.com/waflow/waflow/pkg/database"
	"github.com/waflow/waflow/pkg/masking"
)

// Sink persists curated phase events to campaign_trace_events.
type Sink struct {
	client *ent.Client

	// persistAll widens persistence beyond the curated set (TRACE_ALL=1).
	persistAll bool

	// disabled flips once, process-wide, when the table is missing.
	disabled    atomic.Bool
	disableOnce sync.Once
}

// NewSink creates a trace sink. The TRACE_ALL environment flag widens
// persistence to all phases for investigations.
func NewSink(client *ent.Client) *Sink {
	return &Sink{
		client:     client,
		persistAll: os.Getenv("TRACE_ALL") == "1",
	}
}

// Emit records one phase event. Failures never propagate to the caller:
// they are logged, and a missing table permanently downgrades the sink
// to log-only.
func (s *Sink) Emit(ctx context.Context, ev Event) {
	masked := masking.Phone(ev.Phone)
	log := slog.With(
		"trace_id", ev.TraceID,
		"campaign_id", ev.CampaignID,
		"phase", ev.Phase,
		"ok", ev.OK,
		"ms", ev.Duration.Milliseconds(),
	)
	if ev.Phone != "" {
		log = log.With("phone", masked)
	}
	log.Debug("trace")

	if s.disabled.Load() {
		return
	}
	if !s.persistAll && !curatedPhases[ev.Phase] {
		return
	}

	traceID := ev.TraceID
	if traceID == "" {
		traceID = uuid.New().String()
	}

	create := s.client.TraceEvent.Create().
		SetTraceID(traceID).
		SetPhase(ev.Phase).
		SetOk(ev.OK).
		SetMs(ev.Duration.Milliseconds())
	if ev.CampaignID != "" {
		create.SetCampaignID(ev.CampaignID)
	}
	if ev.Step != "" {
		create.SetStep(ev.Step)
	}
	if ev.BatchIndex > 0 {
		create.SetBatchIndex(ev.BatchIndex)
	}
	if ev.ContactID != "" {
		create.SetContactID(ev.ContactID)
	}
	if ev.Phone != "" {
		create.SetPhoneMasked(masked)
	}
	if len(ev.Extra) > 0 {
		create.SetExtra(ev.Extra)
	}

	if err := create.Exec(ctx); err != nil {
		if database.IsMissingTable(err) {
			s.disableOnce.Do(func() {
				s.disabled.Store(true)
				slog.Warn("Trace table missing; trace persistence disabled for this process")
			})
			return
		}
		slog.Warn("Failed to persist trace event", "phase", ev.Phase, "error", err)
	}
}

// Disabled reports whether persistence has been turned off.
func (s *Sink) Disabled() bool {
	return s.disabled.Load()
}
