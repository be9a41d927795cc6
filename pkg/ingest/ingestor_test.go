package ingest

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waflow/waflow/pkg/engine"
	"github.com/waflow/waflow/pkg/models"
)

// --- fakes -----------------------------------------------------------------

type fakeSettings struct {
	values map[string]string
}

func (f *fakeSettings) GetString(_ context.Context, key, def string) string {
	if v, ok := f.values[key]; ok {
		return v
	}
	return def
}

type appliedEvent struct {
	in      StatusEvent
	outcome Outcome
}

type fakeStatuses struct {
	mu      sync.Mutex
	outcome Outcome
	applied []appliedEvent
}

func (f *fakeStatuses) ApplyStatusEvent(_ context.Context, in StatusEvent) (Outcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applied = append(f.applied, appliedEvent{in: in, outcome: f.outcome})
	return f.outcome, nil
}

func (f *fakeStatuses) Reproject(context.Context, StatusEvent) (bool, error) {
	return true, nil
}

type fakeConvs struct {
	conv *WaitingConversation
}

func (f *fakeConvs) WaitingByPhone(context.Context, string) (*WaitingConversation, error) {
	return f.conv, nil
}

type fakeResumer struct {
	mu       sync.Mutex
	requests []engine.ResumeRequest
}

func (f *fakeResumer) Resume(_ context.Context, req engine.ResumeRequest) (*engine.Execution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return &engine.Execution{RunID: "run-9", Status: engine.StatusSuccess}, nil
}

type fakeFlows struct {
	mu       sync.Mutex
	recorded []FlowSubmissionInput
}

func (f *fakeFlows) RecordSubmission(_ context.Context, in FlowSubmissionInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recorded = append(f.recorded, in)
	return nil
}

type fakeRehost struct {
	mu       sync.Mutex
	messages []string
}

func (f *fakeRehost) RehostForMessage(_ context.Context, messageID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, messageID)
}

type fixture struct {
	ingestor *Ingestor
	statuses *fakeStatuses
	convs    *fakeConvs
	resumer  *fakeResumer
	flows    *fakeFlows
	rehost   *fakeRehost
}

func newFixture(outcome Outcome) *fixture {
	f := &fixture{
		statuses: &fakeStatuses{outcome: outcome},
		convs:    &fakeConvs{},
		resumer:  &fakeResumer{},
		flows:    &fakeFlows{},
		rehost:   &fakeRehost{},
	}
	f.ingestor = NewIngestor(
		&fakeSettings{values: map[string]string{VerifyTokenKey: "tok-123"}},
		f.statuses, f.convs, f.resumer, f.flows, f.rehost,
		nil, nil, "",
	)
	return f
}

// --- tests -----------------------------------------------------------------

const statusBody = `{
  "object": "whatsapp_business_account",
  "entry": [{"id":"1","changes":[{"field":"messages","value":{
    "metadata": {"phone_number_id": "2020"},
    "statuses": [{"id": "wamid.S1", "status": "read", "timestamp": "1700000000", "recipient_id": "5511987654321"}]
  }}]}]
}`

const failedMediaBody = `{
  "object": "whatsapp_business_account",
  "entry": [{"id":"1","changes":[{"field":"messages","value":{
    "metadata": {"phone_number_id": "2020"},
    "statuses": [{"id": "wamid.S2", "status": "failed", "timestamp": "1700000000", "recipient_id": "5511987654321",
      "errors": [{"code": 131052, "message": "Media download error"}]}]
  }}]}]
}`

const inboundTextBody = `{
  "object": "whatsapp_business_account",
  "entry": [{"id":"1","changes":[{"field":"messages","value":{
    "metadata": {"phone_number_id": "2020"},
    "messages": [{"id": "wamid.M1", "from": "5511987654321", "timestamp": "1700000100",
      "type": "text", "text": {"body": "Ana"}}]
  }}]}]
}`

const inboundFlowBody = `{
  "object": "whatsapp_business_account",
  "entry": [{"id":"1","changes":[{"field":"messages","value":{
    "metadata": {"phone_number_id": "2020"},
    "messages": [{"id": "wamid.M2", "from": "5511987654321", "timestamp": "1700000200",
      "type": "interactive",
      "interactive": {"type": "nfm_reply", "nfm_reply": {"response_json": "{\"date\":\"2026-08-02\"}", "name": "booking"}}}]
  }}]}]
}`

func TestVerifyChallenge(t *testing.T) {
	f := newFixture(OutcomeApplied)
	ctx := context.Background()

	assert.True(t, f.ingestor.VerifyChallenge(ctx, "subscribe", "tok-123"))
	assert.False(t, f.ingestor.VerifyChallenge(ctx, "subscribe", "wrong"))
	assert.False(t, f.ingestor.VerifyChallenge(ctx, "unsubscribe", "tok-123"))

	// No token configured: verification cannot succeed.
	bare := newFixture(OutcomeApplied)
	bare.ingestor.settings = &fakeSettings{values: map[string]string{}}
	assert.False(t, bare.ingestor.VerifyChallenge(ctx, "subscribe", ""))
}

func TestHandleWebhookStatus(t *testing.T) {
	f := newFixture(OutcomeApplied)
	f.ingestor.HandleWebhook(context.Background(), []byte(statusBody), "")

	require.Len(t, f.statuses.applied, 1)
	assert.Equal(t, "wamid.S1", f.statuses.applied[0].in.MessageID)
	assert.Equal(t, models.WebhookRead, f.statuses.applied[0].in.Status)
}

func TestHandleWebhookFailedMediaTriggersRehost(t *testing.T) {
	f := newFixture(OutcomeApplied)
	f.ingestor.HandleWebhook(context.Background(), []byte(failedMediaBody), "")

	require.Len(t, f.statuses.applied, 1)
	assert.Equal(t, models.WebhookFailed, f.statuses.applied[0].in.Status)
	assert.Equal(t, []string{"wamid.S2"}, f.rehost.messages)
}

func TestHandleWebhookInboundResumesConversation(t *testing.T) {
	f := newFixture(OutcomeApplied)
	f.convs.conv = &WaitingConversation{ID: "conv-7", WorkflowID: "wf-1"}

	f.ingestor.HandleWebhook(context.Background(), []byte(inboundTextBody), "")

	require.Len(t, f.resumer.requests, 1)
	req := f.resumer.requests[0]
	assert.Equal(t, "wf-1", req.WorkflowID)
	assert.Equal(t, "conv-7", req.ConversationID)
	assert.Equal(t, "+5511987654321", req.Input.From)
	assert.Equal(t, "Ana", req.Input.Message)
	assert.Empty(t, f.flows.recorded)
}

func TestHandleWebhookInboundFlowSubmission(t *testing.T) {
	f := newFixture(OutcomeApplied)
	f.ingestor.HandleWebhook(context.Background(), []byte(inboundFlowBody), "")

	assert.Empty(t, f.resumer.requests)
	require.Len(t, f.flows.recorded, 1)
	assert.Equal(t, "wamid.M2", f.flows.recorded[0].MessageID)
	assert.Equal(t, "+5511987654321", f.flows.recorded[0].Phone)
	assert.JSONEq(t, `{"date":"2026-08-02"}`, string(f.flows.recorded[0].Raw))
}

func TestHandleWebhookInboundNoMatchIsRecorded(t *testing.T) {
	f := newFixture(OutcomeApplied)
	// No waiting conversation, plain text: nothing resumes, nothing is
	// stored as a flow; the hand-off is trace/log only.
	f.ingestor.HandleWebhook(context.Background(), []byte(inboundTextBody), "")

	assert.Empty(t, f.resumer.requests)
	assert.Empty(t, f.flows.recorded)
}

func TestHandleWebhookBadSignatureDropped(t *testing.T) {
	f := newFixture(OutcomeApplied)
	f.ingestor.appSecret = "secret"

	f.ingestor.HandleWebhook(context.Background(), []byte(statusBody), "sha256=0000")
	assert.Empty(t, f.statuses.applied, "unsigned payloads never reach projection")
}

func TestHandleWebhookGarbageBody(t *testing.T) {
	f := newFixture(OutcomeApplied)
	f.ingestor.HandleWebhook(context.Background(), []byte("not json at all"), "")
	assert.Empty(t, f.statuses.applied)
}
