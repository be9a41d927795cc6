// Package ingest consumes provider webhooks: status notifications are
// deduplicated and projected onto campaign rows, inbound messages are
// routed into paused workflow conversations, flow submissions, or the
// hand-off record for downstream consumers.
package ingest

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/waflow/waflow/pkg/engine"
	"github.com/waflow/waflow/pkg/models"
	"github.com/waflow/waflow/pkg/provider"
	"github.com/waflow/waflow/pkg/template"
	"github.com/waflow/waflow/pkg/trace"
)

// VerifyTokenKey is the settings key holding the webhook verify token.
const VerifyTokenKey = "webhook_verify_token"

// SettingsSource reads runtime settings.
type SettingsSource interface {
	GetString(ctx context.Context, key, def string) string
}

// StatusEvent is the ingestor's view of one status signal.
type StatusEvent struct {
	MessageID string
	Status    models.WebhookStatus
	Timestamp time.Time
	Error     string
}

// Outcome reports what applying a status event did.
type Outcome string

// Apply outcomes.
const (
	// OutcomeApplied means the event was new and its projection ran.
	OutcomeApplied Outcome = "applied"
	// OutcomeDuplicate means the pair was seen before; nothing projected.
	OutcomeDuplicate Outcome = "duplicate"
	// OutcomeUnmatched means no contact row carries the message id yet.
	OutcomeUnmatched Outcome = "unmatched"
)

// StatusApplier applies status events. Implemented by the gateway.
type StatusApplier interface {
	ApplyStatusEvent(ctx context.Context, ev StatusEvent) (Outcome, error)
	Reproject(ctx context.Context, ev StatusEvent) (bool, error)
}

// WaitingConversation is the lookup view of a paused conversation.
type WaitingConversation struct {
	ID         string
	WorkflowID string
}

// ConversationLookup finds the paused conversation awaiting a phone's
// reply. A nil result with nil error means none is waiting.
type ConversationLookup interface {
	WaitingByPhone(ctx context.Context, phone string) (*WaitingConversation, error)
}

// WorkflowResumer re-enters a paused workflow. Implemented by engine.Engine.
type WorkflowResumer interface {
	Resume(ctx context.Context, req engine.ResumeRequest) (*engine.Execution, error)
}

// FlowSubmissionInput is one interactive-form reply to record.
type FlowSubmissionInput struct {
	MessageID string
	FlowID    string
	Phone     string
	Raw       []byte
}

// FlowRecorder stores flow submissions.
type FlowRecorder interface {
	RecordSubmission(ctx context.Context, in FlowSubmissionInput) error
}

// MediaRehoster reacts to media-expiry failure events by refreshing the
// originating campaign's template media. Optional.
type MediaRehoster interface {
	RehostForMessage(ctx context.Context, messageID string)
}

// Ingestor routes webhook payloads.
type Ingestor struct {
	settings   SettingsSource
	statuses   StatusApplier
	convs      ConversationLookup
	resumer    WorkflowResumer
	flows      FlowRecorder
	rehoster   MediaRehoster
	tracer     trace.Emitter
	reconciler *Reconciler
	appSecret  string
}

// NewIngestor creates an ingestor. rehoster may be nil.
func NewIngestor(settings SettingsSource, statuses StatusApplier, convs ConversationLookup, resumer WorkflowResumer, flows FlowRecorder, rehoster MediaRehoster, tracer trace.Emitter, reconciler *Reconciler, appSecret string) *Ingestor {
	if tracer == nil {
		tracer = trace.Nop{}
	}
	return &Ingestor{
		settings:   settings,
		statuses:   statuses,
		convs:      convs,
		resumer:    resumer,
		flows:      flows,
		rehoster:   rehoster,
		tracer:     tracer,
		reconciler: reconciler,
		appSecret:  appSecret,
	}
}

// VerifyChallenge checks a subscription verification request and returns
// whether the challenge should be echoed.
func (i *Ingestor) VerifyChallenge(ctx context.Context, mode, token string) bool {
	if mode != "subscribe" {
		return false
	}
	configured := i.settings.GetString(ctx, VerifyTokenKey, "")
	if configured == "" {
		slog.Warn("Webhook verification attempted with no verify token configured")
		return false
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(token)) == 1
}

// HandleWebhook classifies and routes one webhook body. It never returns
// an error to the HTTP layer — the provider must always see 200 once a
// body has been read; internal failures are logged and traced.
func (i *Ingestor) HandleWebhook(ctx context.Context, body []byte, signatureHeader string) {
	if !provider.VerifySignature(i.appSecret, body, signatureHeader) {
		slog.Warn("Webhook signature verification failed; payload dropped")
		return
	}

	statuses, inbound, err := provider.ParseWebhook(body)
	if err != nil {
		slog.Warn("Webhook body not parseable", "error", err)
		return
	}

	for _, n := range statuses {
		i.handleStatus(ctx, n)
	}
	for _, m := range inbound {
		i.handleInbound(ctx, m)
	}
}

// handleStatus applies one status notification.
func (i *Ingestor) handleStatus(ctx context.Context, n provider.StatusNotification) {
	in := StatusEvent{
		MessageID: n.MessageID,
		Status:    n.Status,
		Timestamp: n.Timestamp,
	}
	if n.Err != nil {
		in.Error = n.Err.Error()
	}

	outcome, err := i.statuses.ApplyStatusEvent(ctx, in)
	if err != nil {
		slog.Error("Failed to apply status event",
			"message_id", n.MessageID,
			"status", string(n.Status),
			"error", err)
		return
	}

	i.tracer.Emit(ctx, trace.Event{
		Phase: trace.PhaseWebhookStatus,
		OK:    true,
		Extra: map[string]interface{}{
			"message_id": n.MessageID,
			"status":     string(n.Status),
			"outcome":    string(outcome),
		},
	})

	if outcome == OutcomeUnmatched && i.reconciler != nil {
		i.reconciler.Enqueue(in)
	}

	if n.Status == models.WebhookFailed && n.Err != nil {
		i.tracer.Emit(ctx, trace.Event{
			Phase: trace.PhaseWebhookFailDetail,
			OK:    false,
			Extra: map[string]interface{}{
				"message_id": n.MessageID,
				"class":      string(n.Err.Class),
				"code":       n.Err.Code,
			},
		})
		if n.Err.Class == provider.ClassMediaExpired && i.rehoster != nil {
			i.rehoster.RehostForMessage(ctx, n.MessageID)
		}
	}
}

// handleInbound routes one inbound message: paused conversation first,
// then flow submission, then the responder hand-off record.
func (i *Ingestor) handleInbound(ctx context.Context, m provider.InboundMessage) {
	phone := template.NormalizePhone(m.From)
	if phone == "" {
		slog.Warn("Inbound message with unusable sender phone", "message_id", m.MessageID)
		return
	}

	conv, err := i.convs.WaitingByPhone(ctx, phone)
	if err != nil {
		slog.Error("Failed to look up waiting conversation", "error", err)
		return
	}
	if conv != nil {
		exec, err := i.resumer.Resume(ctx, engine.ResumeRequest{
			WorkflowID:     conv.WorkflowID,
			ConversationID: conv.ID,
			Input: engine.ResumeInput{
				From:    phone,
				To:      m.To,
				Message: m.Text,
			},
		})
		if err != nil {
			slog.Error("Failed to resume conversation",
				"conversation_id", conv.ID,
				"error", err)
			return
		}
		slog.Info("Conversation resumed",
			"conversation_id", conv.ID,
			"run_id", exec.RunID,
			"status", exec.Status)
		return
	}

	if len(m.FlowResponse) > 0 {
		flowID := i.settings.GetString(ctx, "booking_flow_id", "")
		if err := i.flows.RecordSubmission(ctx, FlowSubmissionInput{
			MessageID: m.MessageID,
			FlowID:    flowID,
			Phone:     phone,
			Raw:       m.FlowResponse,
		}); err != nil {
			slog.Error("Failed to record flow submission", "message_id", m.MessageID, "error", err)
		}
		return
	}

	// Nothing in the core consumes it; leave a trail for the responder.
	i.tracer.Emit(ctx, trace.Event{
		Phase: trace.PhaseWebhookInbound,
		OK:    true,
		Phone: phone,
		Extra: map[string]interface{}{
			"message_id": m.MessageID,
			"type":       m.Type,
		},
	})
	slog.Info("Inbound message recorded for responder",
		"message_id", m.MessageID,
		"type", m.Type)
}
