// Package trace writes structured phase events for campaign and webhook
// processing. Persistence is best-effort and must never gate correctness:
// when the backing table is missing the sink disables itself for the life
// of the process and falls back to structured logs.
package trace

import (
	"context"
	"time"
)

// Phase names persisted by default (the curated high-signal set).
const (
	PhaseCampaignRunStart  = "campaign_run_start"
	PhaseCampaignRunEnd    = "campaign_run_end"
	PhaseBatchStart        = "campaign_batch_start"
	PhaseBatchEnd          = "campaign_batch_end"
	PhaseSendOK            = "meta_send_ok"
	PhaseSendFail          = "meta_send_fail"
	PhasePrecheckSkip      = "precheck_skip"
	PhaseRehostStart       = "template_media_rehost_start"
	PhaseRehostOK          = "template_media_rehost_ok"
	PhaseRehostFail        = "template_media_rehost_fail"
	PhaseRehostSkip        = "template_media_rehost_skip"
	PhaseWebhookStatus     = "webhook_status_applied"
	PhaseWebhookFailDetail = "webhook_failed_details"
	PhaseWebhookInbound    = "webhook_inbound"
	PhaseCampaignComplete  = "campaign_complete"
	PhaseCampaignCancelled = "campaign_cancelled"
)

// curatedPhases is the persisted-by-default allow list. TRACE_ALL=1
// widens persistence to every emitted phase.
var curatedPhases = map[string]bool{
	PhaseCampaignRunStart:  true,
	PhaseCampaignRunEnd:    true,
	PhaseBatchStart:        true,
	PhaseBatchEnd:          true,
	PhaseSendOK:            true,
	PhaseSendFail:          true,
	PhaseRehostStart:       true,
	PhaseRehostOK:          true,
	PhaseRehostFail:        true,
	PhaseRehostSkip:        true,
	PhaseWebhookStatus:     true,
	PhaseWebhookFailDetail: true,
	PhaseCampaignComplete:  true,
	PhaseCampaignCancelled: true,
}

// Event is one phase record. Phone is the raw phone number; the sink
// masks it before anything is stored or logged.
type Event struct {
	TraceID    string
	CampaignID string
	Step       string
	Phase      string
	OK         bool
	Duration   time.Duration
	BatchIndex int
	ContactID  string
	Phone      string
	Extra      map[string]interface{}
}

// Emitter is the narrow interface consumers hold. The Sink implements
// it; tests substitute a recorder.
type Emitter interface {
	Emit(ctx context.Context, ev Event)
}

// Nop is an Emitter that drops everything. Useful default for wiring
// and tests.
type Nop struct{}

// Emit implements Emitter.
func (Nop) Emit(context.Context, Event) {}
