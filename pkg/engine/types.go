// Package engine executes workflow graphs: keyword-gated triggers,
// sequential node walking with per-step retry, and explicit pause/resume
// continuations that survive process restarts.
package engine

import (
	"context"
	"errors"

	"github.com/waflow/waflow/pkg/models"
)

// Run statuses, matching the workflow_runs enum.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
	StatusWaiting = "waiting"
)

// SkipReasonKeyword is the output reason of a keyword-gated run that did
// not match.
const SkipReasonKeyword = "keyword_not_matched"

// Sentinel errors surfaced to the API layer.
var (
	ErrInvalidWorkflow               = errors.New("invalid workflow")
	ErrConversationNotFound          = errors.New("conversation not found")
	ErrConversationWorkflowMismatch  = errors.New("conversation belongs to another workflow")
	ErrConversationMissingResumeNode = errors.New("conversation has no resume node")
	ErrMissingInboundMessage         = errors.New("missing inbound message")
	ErrConversationConflict          = errors.New("conversation already waiting for this phone")
)

// MessageSender is the slice of the provider client workflow actions use.
type MessageSender interface {
	SendText(ctx context.Context, to, body string) (string, error)
	SendList(ctx context.Context, to string, list models.ListMessage) (string, error)
}

// RunStore persists runs and their node logs.
type RunStore interface {
	CreateRun(ctx context.Context, workflowID, versionID string, trigger models.TriggerType, input map[string]interface{}) (string, error)
	StartRun(ctx context.Context, runID string) error
	MarkWaiting(ctx context.Context, runID string) error
	FinishRun(ctx context.Context, runID, status string, output map[string]interface{}, runErr error) error
	RunVersion(ctx context.Context, runID string) (string, error)
	OpenLog(ctx context.Context, runID string, node models.Node, input map[string]interface{}) (string, error)
	CloseLog(ctx context.Context, logID string, output map[string]interface{}, stepErr error) error
}

// Conversation is the engine's view of a paused-run record.
type Conversation struct {
	ID           string
	WorkflowID   string
	RunID        string
	Phone        string
	Waiting      bool
	ResumeNodeID string
	VariableKey  string
	Variables    map[string]interface{}
}

// PausedConversation is the record written when a run pauses.
type PausedConversation struct {
	WorkflowID   string
	RunID        string
	Phone        string
	ResumeNodeID string
	VariableKey  string
	Variables    map[string]interface{}
}

// ConversationStore persists paused conversations. OpenPaused must fail
// with ErrConversationConflict when a waiting conversation already exists
// for the same (workflow, phone).
type ConversationStore interface {
	OpenPaused(ctx context.Context, req PausedConversation) (string, error)
	Get(ctx context.Context, id string) (*Conversation, error)
	Complete(ctx context.Context, id string, vars map[string]interface{}) error
}

// GraphProvider resolves workflow graphs by workflow or version.
type GraphProvider interface {
	ActiveGraph(ctx context.Context, workflowID string) (*models.Graph, string, error)
	GraphForVersion(ctx context.Context, versionID string) (*models.Graph, error)
}

// ExecuteRequest starts (or resumes) one run of a workflow version.
type ExecuteRequest struct {
	WorkflowID string
	VersionID  string
	Graph      *models.Graph

	// Trigger overrides the graph trigger's type; used by resume.
	Trigger models.TriggerType

	// Input is the trigger payload ({from, to, message, ...}).
	Input map[string]interface{}

	// StartNodeIDs overrides the start set for resumed runs. Empty means
	// "the trigger's successors".
	StartNodeIDs []string

	// InitialVariables seeds the variable map.
	InitialVariables map[string]interface{}
}

// Execution is the outcome of one Execute or Resume call.
type Execution struct {
	RunID          string
	Status         string
	Output         map[string]interface{}
	Paused         bool
	ConversationID string
}

// ResumeInput is the inbound message resuming a paused conversation.
type ResumeInput struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Message string `json:"message"`
}

// ResumeRequest identifies the conversation to resume and the reply.
type ResumeRequest struct {
	WorkflowID     string
	ConversationID string
	Input          ResumeInput
}
