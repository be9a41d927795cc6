package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/waflow/waflow/pkg/config"
	"github.com/waflow/waflow/pkg/models"
	"github.com/waflow/waflow/pkg/provider"
	"github.com/waflow/waflow/pkg/template"
	"github.com/waflow/waflow/pkg/trace"
)

// Runner executes the dispatch loop of one claimed campaign.
type Runner struct {
	store     Store
	templates TemplateSource
	sender    TemplateSender
	turbo     RateController
	rehoster  Rehoster
	tracer    trace.Emitter
	cfg       *config.DispatcherConfig

	// senderID is the provider phone_number_id the campaign sends from;
	// the rate controller keys its state on it.
	senderID string
	podID    string

	// sleep is swapped out in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRunner creates a campaign runner.
func NewRunner(store Store, templates TemplateSource, sender TemplateSender, turbo RateController, rehoster Rehoster, tracer trace.Emitter, cfg *config.DispatcherConfig, senderID, podID string) *Runner {
	if tracer == nil {
		tracer = trace.Nop{}
	}
	return &Runner{
		store:     store,
		templates: templates,
		sender:    sender,
		turbo:     turbo,
		rehoster:  rehoster,
		tracer:    tracer,
		cfg:       cfg,
		senderID:  senderID,
		podID:     podID,
		sleep:     sleepCtx,
	}
}

// Run drives one campaign until it completes, pauses, is cancelled, or
// ctx is cancelled. The campaign must already be claimed by this pod.
func (r *Runner) Run(ctx context.Context, c *Campaign) error {
	traceID := uuid.New().String()
	log := slog.With("campaign_id", c.ID, "pod_id", r.podID)
	log.Info("Campaign dispatch started", "template", c.TemplateName)

	r.tracer.Emit(ctx, trace.Event{
		TraceID:    traceID,
		CampaignID: c.ID,
		Phase:      trace.PhaseCampaignRunStart,
		OK:         true,
		Extra:      map[string]interface{}{"template": c.TemplateName},
	})

	// Heartbeat so another replica does not steal the campaign mid-run.
	hbCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()
	go r.runHeartbeat(hbCtx, c.ID)

	batchIndex := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		status, err := r.store.CampaignStatus(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("checking campaign status: %w", err)
		}
		if status != StatusSending {
			log.Info("Campaign left sending state", "status", status)
			if status == StatusCancelled {
				r.tracer.Emit(ctx, trace.Event{
					TraceID:    traceID,
					CampaignID: c.ID,
					Phase:      trace.PhaseCampaignCancelled,
					OK:         true,
					BatchIndex: batchIndex,
				})
			}
			return nil
		}

		turboCfg := r.turbo.Config()
		rows, err := r.store.ClaimPending(ctx, c.ID, turboCfg.BatchSize)
		if err != nil {
			return fmt.Errorf("claiming batch: %w", err)
		}

		if len(rows) == 0 {
			terminal, err := r.store.FinalizeIfDone(ctx, c.ID)
			if err != nil {
				return fmt.Errorf("finalizing campaign: %w", err)
			}
			if terminal != "" {
				log.Info("Campaign finished", "status", terminal)
				r.tracer.Emit(ctx, trace.Event{
					TraceID:    traceID,
					CampaignID: c.ID,
					Phase:      trace.PhaseCampaignComplete,
					OK:         terminal == StatusCompleted,
					BatchIndex: batchIndex,
					Extra:      map[string]interface{}{"status": terminal},
				})
				return nil
			}
			// Rows are still in flight elsewhere (or awaiting the
			// reaper); check again shortly.
			if err := r.sleep(ctx, r.cfg.PollInterval); err != nil {
				return err
			}
			continue
		}

		batchIndex++
		batchStart := time.Now()
		r.tracer.Emit(ctx, trace.Event{
			TraceID:    traceID,
			CampaignID: c.ID,
			Phase:      trace.PhaseBatchStart,
			OK:         true,
			BatchIndex: batchIndex,
			Extra:      map[string]interface{}{"claimed": len(rows)},
		})

		if err := r.dispatchBatch(ctx, traceID, c, batchIndex, rows); err != nil {
			return err
		}

		r.tracer.Emit(ctx, trace.Event{
			TraceID:    traceID,
			CampaignID: c.ID,
			Phase:      trace.PhaseBatchEnd,
			OK:         true,
			BatchIndex: batchIndex,
			Duration:   time.Since(batchStart),
		})
	}
}

// dispatchBatch prechecks every claimed row and fans the eligible ones
// out to sendConcurrency workers drawing from the token bucket.
func (r *Runner) dispatchBatch(ctx context.Context, traceID string, c *Campaign, batchIndex int, rows []Contact) error {
	spec, err := r.templates.SpecByName(ctx, c.TemplateName)
	if err != nil {
		// No template, no sends: skip the whole batch with the reason on
		// every row so the campaign can still terminate.
		for _, row := range rows {
			r.markSkip(ctx, traceID, c.ID, batchIndex, row, template.SkipTemplateNotFound,
				fmt.Sprintf("template %q not registered", c.TemplateName))
		}
		return nil
	}

	type eligible struct {
		row    Contact
		phone  string
		values map[string]string
	}
	var toSend []eligible

	for _, row := range rows {
		contact := template.Contact{
			ContactID:    row.ContactID,
			Name:         row.Name,
			Phone:        row.Phone,
			Email:        row.Email,
			CustomFields: row.CustomFields,
		}
		check := template.Precheck(contact, spec, c.TemplateVariables)
		if !check.OK {
			r.markSkip(ctx, traceID, c.ID, batchIndex, row, check.SkipCode, check.Reason)
			continue
		}
		toSend = append(toSend, eligible{
			row:    row,
			phone:  check.NormalizedPhone,
			values: template.ResolveAll(contact, c.TemplateVariables),
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.turbo.Config().SendConcurrency)
	for _, item := range toSend {
		g.Go(func() error {
			return r.sendOne(gctx, traceID, c, batchIndex, item.row, spec, item.phone, item.values)
		})
	}
	return g.Wait()
}

// sendOne delivers a single row: rate gate, send, classify, record.
func (r *Runner) sendOne(ctx context.Context, traceID string, c *Campaign, batchIndex int, row Contact, spec template.Spec, phone string, values map[string]string) error {
	if err := r.turbo.Acquire(ctx, r.senderID); err != nil {
		// Cancellation mid-wait: the row stays in sending and the reaper
		// returns it to pending later.
		return err
	}

	start := time.Now()
	res, _ := r.sender.SendTemplate(ctx, phone, spec, values, "")
	class := provider.ClassTransient
	if res != nil {
		class = res.Class
	}

	switch class {
	case provider.ClassOK:
		r.turbo.ReportOK(ctx, r.senderID)
		if err := r.store.MarkResult(ctx, row.RowID, Result{
			Status:    models.ContactSent,
			MessageID: res.MessageID,
		}); err != nil {
			return fmt.Errorf("recording sent row %s: %w", row.RowID, err)
		}
		r.tracer.Emit(ctx, trace.Event{
			TraceID:    traceID,
			CampaignID: c.ID,
			Phase:      trace.PhaseSendOK,
			OK:         true,
			Duration:   time.Since(start),
			BatchIndex: batchIndex,
			ContactID:  row.ContactID,
			Phone:      phone,
		})
		return nil

	case provider.ClassRateLimited:
		r.turbo.ReportRateLimited(ctx, r.senderID)
		requeued, err := r.store.Requeue(ctx, row.RowID, r.cfg.RateLimitedRequeueBudget)
		if err != nil {
			return fmt.Errorf("requeueing row %s: %w", row.RowID, err)
		}
		r.emitSendFail(ctx, traceID, c.ID, batchIndex, row, phone, start, string(class),
			map[string]interface{}{"requeued": requeued})
		return nil

	case provider.ClassMediaExpired:
		return r.sendAfterRehost(ctx, traceID, c, batchIndex, row, spec, phone, values, start)

	default:
		r.failRow(ctx, row.RowID, class)
		r.emitSendFail(ctx, traceID, c.ID, batchIndex, row, phone, start, string(class), nil)
		return nil
	}
}

// sendAfterRehost refreshes the header media URL and retries exactly
// once. A second media_expired escalates to policy_rejected.
func (r *Runner) sendAfterRehost(ctx context.Context, traceID string, c *Campaign, batchIndex int, row Contact, spec template.Spec, phone string, values map[string]string, start time.Time) error {
	url, ok, err := r.rehoster.Refresh(ctx, c.ID, spec)
	if err != nil || !ok {
		r.failRow(ctx, row.RowID, provider.ClassMediaExpired)
		r.emitSendFail(ctx, traceID, c.ID, batchIndex, row, phone, start, string(provider.ClassMediaExpired), nil)
		return nil
	}

	res, _ := r.sender.SendTemplate(ctx, phone, spec, values, url)
	class := provider.ClassTransient
	if res != nil {
		class = res.Class
	}

	switch class {
	case provider.ClassOK:
		r.turbo.ReportOK(ctx, r.senderID)
		if err := r.store.MarkResult(ctx, row.RowID, Result{
			Status:    models.ContactSent,
			MessageID: res.MessageID,
		}); err != nil {
			return fmt.Errorf("recording sent row %s: %w", row.RowID, err)
		}
		r.tracer.Emit(ctx, trace.Event{
			TraceID:    traceID,
			CampaignID: c.ID,
			Phase:      trace.PhaseSendOK,
			OK:         true,
			Duration:   time.Since(start),
			BatchIndex: batchIndex,
			ContactID:  row.ContactID,
			Phone:      phone,
			Extra:      map[string]interface{}{"rehosted": true},
		})
		return nil
	case provider.ClassMediaExpired:
		// Still stale after a fresh URL: a template problem, not a
		// hosting hiccup.
		r.failRow(ctx, row.RowID, provider.ClassPolicyRejected)
		r.emitSendFail(ctx, traceID, c.ID, batchIndex, row, phone, start, string(provider.ClassPolicyRejected),
			map[string]interface{}{"escalated_from": string(provider.ClassMediaExpired)})
		return nil
	default:
		r.failRow(ctx, row.RowID, class)
		r.emitSendFail(ctx, traceID, c.ID, batchIndex, row, phone, start, string(class), nil)
		return nil
	}
}

func (r *Runner) failRow(ctx context.Context, rowID string, class provider.ErrorClass) {
	if err := r.store.MarkResult(ctx, rowID, Result{
		Status: models.ContactFailed,
		Error:  string(class),
	}); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Failed to record row failure", "row_id", rowID, "error", err)
	}
}

func (r *Runner) markSkip(ctx context.Context, traceID, campaignID string, batchIndex int, row Contact, code, reason string) {
	if err := r.store.MarkResult(ctx, row.RowID, Result{
		Status:     models.ContactSkipped,
		SkipCode:   code,
		SkipReason: reason,
	}); err != nil {
		slog.Error("Failed to record row skip", "row_id", row.RowID, "error", err)
		return
	}
	r.tracer.Emit(ctx, trace.Event{
		TraceID:    traceID,
		CampaignID: campaignID,
		Phase:      trace.PhasePrecheckSkip,
		OK:         false,
		BatchIndex: batchIndex,
		ContactID:  row.ContactID,
		Phone:      row.Phone,
		Extra:      map[string]interface{}{"skip_code": code, "reason": reason},
	})
}

func (r *Runner) emitSendFail(ctx context.Context, traceID, campaignID string, batchIndex int, row Contact, phone string, start time.Time, class string, extra map[string]interface{}) {
	if extra == nil {
		extra = map[string]interface{}{}
	}
	extra["class"] = class
	r.tracer.Emit(ctx, trace.Event{
		TraceID:    traceID,
		CampaignID: campaignID,
		Phase:      trace.PhaseSendFail,
		OK:         false,
		Duration:   time.Since(start),
		BatchIndex: batchIndex,
		ContactID:  row.ContactID,
		Phone:      phone,
		Extra:      extra,
	})
}

// runHeartbeat stamps the dispatch heartbeat until the campaign is done.
func (r *Runner) runHeartbeat(ctx context.Context, campaignID string) {
	ticker := time.NewTicker(r.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.store.Heartbeat(ctx, campaignID, r.podID); err != nil {
				slog.Warn("Campaign heartbeat failed", "campaign_id", campaignID, "error", err)
			}
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
