package engine

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waflow/waflow/pkg/config"
	"github.com/waflow/waflow/pkg/models"
	"github.com/waflow/waflow/pkg/provider"
)

// --- fakes -----------------------------------------------------------------

type fakeRun struct {
	id      string
	status  string
	version string
	output  map[string]interface{}
	err     error
}

type fakeRunStore struct {
	mu   sync.Mutex
	seq  int
	runs map[string]*fakeRun
	logs []string // "<node_id>:<status>"
}

func newFakeRunStore() *fakeRunStore {
	return &fakeRunStore{runs: make(map[string]*fakeRun)}
}

func (f *fakeRunStore) CreateRun(_ context.Context, _, versionID string, _ models.TriggerType, _ map[string]interface{}) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	id := fmt.Sprintf("run-%d", f.seq)
	f.runs[id] = &fakeRun{id: id, status: "queued", version: versionID}
	return id, nil
}

func (f *fakeRunStore) StartRun(_ context.Context, runID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs[runID].status = "running"
	return nil
}

func (f *fakeRunStore) MarkWaiting(_ context.Context, runID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs[runID].status = StatusWaiting
	return nil
}

func (f *fakeRunStore) FinishRun(_ context.Context, runID, status string, output map[string]interface{}, runErr error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	run := f.runs[runID]
	run.status = status
	run.output = output
	run.err = runErr
	return nil
}

func (f *fakeRunStore) RunVersion(_ context.Context, runID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	run, ok := f.runs[runID]
	if !ok {
		return "", fmt.Errorf("run %s not found", runID)
	}
	return run.version, nil
}

func (f *fakeRunStore) OpenLog(_ context.Context, _ string, node models.Node, _ map[string]interface{}) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, node.ID+":running")
	return node.ID, nil
}

func (f *fakeRunStore) CloseLog(_ context.Context, logID string, _ map[string]interface{}, stepErr error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	status := "success"
	if stepErr != nil {
		status = "error"
	}
	f.logs = append(f.logs, logID+":"+status)
	return nil
}

type fakeConvStore struct {
	mu    sync.Mutex
	seq   int
	convs map[string]*Conversation
}

func newFakeConvStore() *fakeConvStore {
	return &fakeConvStore{convs: make(map[string]*Conversation)}
}

func (f *fakeConvStore) OpenPaused(_ context.Context, req PausedConversation) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.convs {
		if c.Waiting && c.WorkflowID == req.WorkflowID && c.Phone == req.Phone {
			return "", ErrConversationConflict
		}
	}
	f.seq++
	id := fmt.Sprintf("conv-%d", f.seq)
	f.convs[id] = &Conversation{
		ID:           id,
		WorkflowID:   req.WorkflowID,
		RunID:        req.RunID,
		Phone:        req.Phone,
		Waiting:      true,
		ResumeNodeID: req.ResumeNodeID,
		VariableKey:  req.VariableKey,
		Variables:    req.Variables,
	}
	return id, nil
}

func (f *fakeConvStore) Get(_ context.Context, id string) (*Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.convs[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeConvStore) Complete(_ context.Context, id string, vars map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.convs[id]
	if !ok || !c.Waiting {
		return fmt.Errorf("conversation %s not waiting", id)
	}
	c.Waiting = false
	c.Variables = vars
	return nil
}

type fakeGraphs struct {
	graph   *models.Graph
	version string
}

func (f *fakeGraphs) ActiveGraph(context.Context, string) (*models.Graph, string, error) {
	return f.graph, f.version, nil
}

func (f *fakeGraphs) GraphForVersion(context.Context, string) (*models.Graph, error) {
	return f.graph, nil
}

type sentMessage struct {
	To   string
	Body string
}

type fakeSender struct {
	mu   sync.Mutex
	seq  int
	sent []sentMessage
	err  error

	// failTimes makes the first N sends fail with failErr.
	failTimes int
	failErr   error
}

func (f *fakeSender) SendText(_ context.Context, to, body string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTimes > 0 {
		f.failTimes--
		return "", f.failErr
	}
	if f.err != nil {
		return "", f.err
	}
	f.seq++
	f.sent = append(f.sent, sentMessage{To: to, Body: body})
	return fmt.Sprintf("wamid.%d", f.seq), nil
}

func (f *fakeSender) SendList(ctx context.Context, to string, list models.ListMessage) (string, error) {
	return f.SendText(ctx, to, "list:"+list.Body)
}

// --- helpers ---------------------------------------------------------------

func newTestEngine(graph *models.Graph, runs *fakeRunStore, convs *fakeConvStore, sender *fakeSender) *Engine {
	cfg := config.WorkflowExecutionConfig{RetryCount: 0, RetryDelayMs: 0, TimeoutMs: 0}
	e := NewEngine(runs, convs, &fakeGraphs{graph: graph, version: "v1"}, sender, cfg)
	e.sleep = func(context.Context, time.Duration) error { return nil }
	return e
}

// --- tests -----------------------------------------------------------------

func keywordGraph() *models.Graph {
	return &models.Graph{
		Nodes: []models.Node{
			{ID: "trigger", Kind: models.NodeKindTrigger, Config: map[string]interface{}{
				"triggerType": "Keywords",
				"keywords":    []interface{}{"promo", "desconto"},
			}},
			{ID: "reply", Kind: models.NodeKindAction, ActionType: ActionSendMessage,
				Config: map[string]interface{}{"message": "Temos uma oferta!"}},
		},
		Edges: []models.Edge{{Source: "trigger", Target: "reply"}},
	}
}

func TestKeywordGateNoMatch(t *testing.T) {
	runs := newFakeRunStore()
	sender := &fakeSender{}
	e := newTestEngine(keywordGraph(), runs, newFakeConvStore(), sender)

	exec, err := e.Execute(context.Background(), ExecuteRequest{
		WorkflowID: "wf-1",
		Input:      map[string]interface{}{"from": "+5511987654321", "message": "oi tudo bem"},
	})
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, exec.Status)
	assert.Equal(t, SkipReasonKeyword, exec.Output["reason"])
	assert.Empty(t, sender.sent, "gated runs must not send")
}

func TestKeywordGateMatch(t *testing.T) {
	runs := newFakeRunStore()
	sender := &fakeSender{}
	e := newTestEngine(keywordGraph(), runs, newFakeConvStore(), sender)

	exec, err := e.Execute(context.Background(), ExecuteRequest{
		WorkflowID: "wf-1",
		Input:      map[string]interface{}{"from": "+5511987654321", "message": "Quero o DESCONTO agora"},
	})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, exec.Status)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Temos uma oferta!", sender.sent[0].Body)
}

func askQuestionGraph() *models.Graph {
	return &models.Graph{
		Nodes: []models.Node{
			{ID: "trigger", Kind: models.NodeKindTrigger, Config: map[string]interface{}{"triggerType": "Manual"}},
			{ID: "ask", Kind: models.NodeKindAction, ActionType: ActionAskQuestion,
				Config: map[string]interface{}{"message": "Qual seu nome?", "variableKey": "nome"}},
			{ID: "greet", Kind: models.NodeKindAction, ActionType: ActionSendMessage,
				Config: map[string]interface{}{"message": "Olá, {{nome}}."}},
		},
		Edges: []models.Edge{
			{Source: "trigger", Target: "ask"},
			{Source: "ask", Target: "greet"},
		},
	}
}

func TestAskQuestionPauseAndResume(t *testing.T) {
	runs := newFakeRunStore()
	convs := newFakeConvStore()
	sender := &fakeSender{}
	e := newTestEngine(askQuestionGraph(), runs, convs, sender)
	ctx := context.Background()

	exec, err := e.Execute(ctx, ExecuteRequest{
		WorkflowID: "wf-1",
		Input:      map[string]interface{}{"from": "+5511987654321"},
	})
	require.NoError(t, err)

	// First leg: the question went out and the run parked.
	assert.Equal(t, StatusWaiting, exec.Status)
	assert.True(t, exec.Paused)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Qual seu nome?", sender.sent[0].Body)
	require.NotEmpty(t, exec.ConversationID)

	conv, err := convs.Get(ctx, exec.ConversationID)
	require.NoError(t, err)
	assert.True(t, conv.Waiting)
	assert.Equal(t, "greet", conv.ResumeNodeID)
	assert.Equal(t, "nome", conv.VariableKey)

	// Second leg: the reply resumes from the recorded node.
	resumed, err := e.Resume(ctx, ResumeRequest{
		WorkflowID:     "wf-1",
		ConversationID: exec.ConversationID,
		Input:          ResumeInput{From: "+5511987654321", Message: " Ana "},
	})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, resumed.Status)

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "Olá, Ana.", sender.sent[1].Body, "the trimmed reply substitutes into the greeting")

	conv, err = convs.Get(ctx, exec.ConversationID)
	require.NoError(t, err)
	assert.False(t, conv.Waiting, "conversation completes after resume")
}

func TestResumeValidation(t *testing.T) {
	runs := newFakeRunStore()
	convs := newFakeConvStore()
	sender := &fakeSender{}
	e := newTestEngine(askQuestionGraph(), runs, convs, sender)
	ctx := context.Background()

	// Park a run first.
	exec, err := e.Execute(ctx, ExecuteRequest{
		WorkflowID: "wf-1",
		Input:      map[string]interface{}{"from": "+5511987654321"},
	})
	require.NoError(t, err)
	convID := exec.ConversationID

	_, err = e.Resume(ctx, ResumeRequest{WorkflowID: "wf-1", ConversationID: convID,
		Input: ResumeInput{Message: "   "}})
	assert.ErrorIs(t, err, ErrMissingInboundMessage)

	_, err = e.Resume(ctx, ResumeRequest{WorkflowID: "wf-other", ConversationID: convID,
		Input: ResumeInput{Message: "Ana"}})
	assert.ErrorIs(t, err, ErrConversationWorkflowMismatch)

	_, err = e.Resume(ctx, ResumeRequest{WorkflowID: "wf-1", ConversationID: "ghost",
		Input: ResumeInput{Message: "Ana"}})
	assert.ErrorIs(t, err, ErrConversationNotFound)

	// Complete it, then resume again: completed conversations are gone.
	_, err = e.Resume(ctx, ResumeRequest{WorkflowID: "wf-1", ConversationID: convID,
		Input: ResumeInput{Message: "Ana"}})
	require.NoError(t, err)

	_, err = e.Resume(ctx, ResumeRequest{WorkflowID: "wf-1", ConversationID: convID,
		Input: ResumeInput{Message: "Ana"}})
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestDoublePauseConflicts(t *testing.T) {
	runs := newFakeRunStore()
	convs := newFakeConvStore()
	sender := &fakeSender{}
	e := newTestEngine(askQuestionGraph(), runs, convs, sender)
	ctx := context.Background()

	_, err := e.Execute(ctx, ExecuteRequest{
		WorkflowID: "wf-1",
		Input:      map[string]interface{}{"from": "+5511987654321"},
	})
	require.NoError(t, err)

	// Same workflow, same phone, second run: the pause must conflict.
	_, err = e.Execute(ctx, ExecuteRequest{
		WorkflowID: "wf-1",
		Input:      map[string]interface{}{"from": "+5511987654321"},
	})
	assert.ErrorIs(t, err, ErrConversationConflict)
}

func TestSetVariableFlowsDownstream(t *testing.T) {
	graph := &models.Graph{
		Nodes: []models.Node{
			{ID: "trigger", Kind: models.NodeKindTrigger, Config: map[string]interface{}{"triggerType": "Manual"}},
			{ID: "set", Kind: models.NodeKindAction, ActionType: ActionSetVariable,
				Config: map[string]interface{}{"key": "saudacao", "value": "Bom dia"}},
			{ID: "send", Kind: models.NodeKindAction, ActionType: ActionSendMessage,
				Config: map[string]interface{}{"message": "{{saudacao}}!"}},
		},
		Edges: []models.Edge{
			{Source: "trigger", Target: "set"},
			{Source: "set", Target: "send"},
		},
	}

	sender := &fakeSender{}
	e := newTestEngine(graph, newFakeRunStore(), newFakeConvStore(), sender)

	exec, err := e.Execute(context.Background(), ExecuteRequest{
		WorkflowID: "wf-1",
		Input:      map[string]interface{}{"from": "+5511987654321"},
	})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, exec.Status)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Bom dia!", sender.sent[0].Body)
}

func TestStepRetriesTransientFailures(t *testing.T) {
	runs := newFakeRunStore()
	sender := &fakeSender{failTimes: 2, failErr: &provider.Error{Class: provider.ClassTransient, Message: "blip"}}
	e := newTestEngine(keywordGraph(), runs, newFakeConvStore(), sender)
	e.execCfg = config.WorkflowExecutionConfig{RetryCount: 3, RetryDelayMs: 1}
	e.sleep = func(context.Context, time.Duration) error { return nil }

	exec, err := e.Execute(context.Background(), ExecuteRequest{
		WorkflowID: "wf-1",
		Input:      map[string]interface{}{"from": "+5511987654321", "message": "promo"},
	})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, exec.Status)
	require.Len(t, sender.sent, 1, "the third attempt lands")
}

func TestStepDoesNotRetryPolicyRejection(t *testing.T) {
	runs := newFakeRunStore()
	sender := &fakeSender{failTimes: 5, failErr: &provider.Error{Class: provider.ClassPolicyRejected, Message: "blocked"}}
	e := newTestEngine(keywordGraph(), runs, newFakeConvStore(), sender)
	e.execCfg = config.WorkflowExecutionConfig{RetryCount: 3, RetryDelayMs: 1}

	_, err := e.Execute(context.Background(), ExecuteRequest{
		WorkflowID: "wf-1",
		Input:      map[string]interface{}{"from": "+5511987654321", "message": "promo"},
	})
	assert.Error(t, err)
	assert.Equal(t, 4, sender.failTimes, "terminal classes stop after the first attempt")
}

func TestStepFailureFailsRun(t *testing.T) {
	runs := newFakeRunStore()
	sender := &fakeSender{err: fmt.Errorf("wire down")}
	e := newTestEngine(keywordGraph(), runs, newFakeConvStore(), sender)

	exec, err := e.Execute(context.Background(), ExecuteRequest{
		WorkflowID: "wf-1",
		Input:      map[string]interface{}{"from": "+5511987654321", "message": "promo"},
	})
	assert.Error(t, err)
	require.NotNil(t, exec)
	assert.Equal(t, StatusFailed, exec.Status)
	assert.Contains(t, runs.logs, "reply:error")
}
