package services

import (
	"context"
	"errors"

	"github.com/waflow/waflow/ent/workflowconversation"
	"github.com/waflow/waflow/pkg/engine"
	"github.com/waflow/waflow/pkg/models"
)

// EngineRunStore adapts RunService to the engine's RunStore interface.
type EngineRunStore struct {
	runs *RunService
}

// NewEngineRunStore wraps a RunService for the engine.
func NewEngineRunStore(runs *RunService) *EngineRunStore {
	return &EngineRunStore{runs: runs}
}

// CreateRun implements engine.RunStore.
func (s *EngineRunStore) CreateRun(ctx context.Context, workflowID, versionID string, trigger models.TriggerType, input map[string]interface{}) (string, error) {
	run, err := s.runs.CreateRun(ctx, workflowID, versionID, trigger, input)
	if err != nil {
		return "", err
	}
	return run.ID, nil
}

// StartRun implements engine.RunStore.
func (s *EngineRunStore) StartRun(ctx context.Context, runID string) error {
	return s.runs.StartRun(ctx, runID)
}

// MarkWaiting implements engine.RunStore.
func (s *EngineRunStore) MarkWaiting(ctx context.Context, runID string) error {
	return s.runs.MarkWaiting(ctx, runID)
}

// FinishRun implements engine.RunStore.
func (s *EngineRunStore) FinishRun(ctx context.Context, runID, status string, output map[string]interface{}, runErr error) error {
	return s.runs.FinishRun(ctx, runID, status, output, runErr)
}

// RunVersion implements engine.RunStore.
func (s *EngineRunStore) RunVersion(ctx context.Context, runID string) (string, error) {
	run, err := s.runs.GetRun(ctx, runID)
	if err != nil {
		return "", err
	}
	return run.VersionID, nil
}

// OpenLog implements engine.RunStore.
func (s *EngineRunStore) OpenLog(ctx context.Context, runID string, node models.Node, input map[string]interface{}) (string, error) {
	return s.runs.OpenLog(ctx, runID, node, input)
}

// CloseLog implements engine.RunStore.
func (s *EngineRunStore) CloseLog(ctx context.Context, logID string, output map[string]interface{}, stepErr error) error {
	return s.runs.CloseLog(ctx, logID, output, stepErr)
}

// EngineConversationStore adapts ConversationService to the engine's
// ConversationStore interface, translating gateway sentinels into the
// engine's vocabulary.
type EngineConversationStore struct {
	convs *ConversationService
}

// NewEngineConversationStore wraps a ConversationService for the engine.
func NewEngineConversationStore(convs *ConversationService) *EngineConversationStore {
	return &EngineConversationStore{convs: convs}
}

// OpenPaused implements engine.ConversationStore.
func (s *EngineConversationStore) OpenPaused(ctx context.Context, req engine.PausedConversation) (string, error) {
	conv, err := s.convs.OpenPaused(ctx, OpenPausedRequest{
		WorkflowID:   req.WorkflowID,
		RunID:        req.RunID,
		Phone:        req.Phone,
		ResumeNodeID: req.ResumeNodeID,
		VariableKey:  req.VariableKey,
		Variables:    req.Variables,
	})
	if err != nil {
		if errors.Is(err, ErrConversationConflict) {
			return "", engine.ErrConversationConflict
		}
		return "", err
	}
	return conv.ID, nil
}

// Get implements engine.ConversationStore.
func (s *EngineConversationStore) Get(ctx context.Context, id string) (*engine.Conversation, error) {
	conv, err := s.convs.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, engine.ErrConversationNotFound
		}
		return nil, err
	}
	return &engine.Conversation{
		ID:           conv.ID,
		WorkflowID:   conv.WorkflowID,
		RunID:        conv.RunID,
		Phone:        conv.Phone,
		Waiting:      conv.Status == workflowconversation.StatusWaiting,
		ResumeNodeID: conv.ResumeNodeID,
		VariableKey:  conv.VariableKey,
		Variables:    conv.Variables,
	}, nil
}

// Complete implements engine.ConversationStore.
func (s *EngineConversationStore) Complete(ctx context.Context, id string, vars map[string]interface{}) error {
	return s.convs.Complete(ctx, id, vars)
}
