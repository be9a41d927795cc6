package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/waflow/waflow/ent"
	"github.com/waflow/waflow/ent/workflowconversation"
)

// ConversationService manages paused-run suspension records. The partial
// unique index on (workflow_id, phone) WHERE waiting backs the invariant
// that a phone has at most one outstanding question per workflow.
type ConversationService struct {
	client *ent.Client
}

// NewConversationService creates a new ConversationService.
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{client: client}
}

// OpenPausedRequest captures everything a resume needs later.
type OpenPausedRequest struct {
	WorkflowID   string
	RunID        string
	Phone        string
	ResumeNodeID string
	VariableKey  string
	Variables    map[string]interface{}
}

// OpenPaused records a paused conversation. A second waiting conversation
// for the same (workflow, phone) fails with ErrConversationConflict.
func (s *ConversationService) OpenPaused(ctx context.Context, req OpenPausedRequest) (*ent.WorkflowConversation, error) {
	if req.Phone == "" {
		return nil, NewValidationError("phone", "required")
	}
	if req.ResumeNodeID == "" {
		return nil, NewValidationError("resume_node_id", "required")
	}

	conv, err := s.client.WorkflowConversation.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(req.WorkflowID).
		SetRunID(req.RunID).
		SetPhone(req.Phone).
		SetResumeNodeID(req.ResumeNodeID).
		SetVariableKey(req.VariableKey).
		SetVariables(req.Variables).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrConversationConflict
		}
		return nil, fmt.Errorf("opening conversation: %w", err)
	}
	return conv, nil
}

// Get returns a conversation by id.
func (s *ConversationService) Get(ctx context.Context, id string) (*ent.WorkflowConversation, error) {
	conv, err := s.client.WorkflowConversation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying conversation: %w", err)
	}
	return conv, nil
}

// WaitingByPhone returns the most recent waiting conversation for a
// phone across all workflows, or ErrNotFound. The ingestor uses it to
// route inbound messages back into paused runs.
func (s *ConversationService) WaitingByPhone(ctx context.Context, phone string) (*ent.WorkflowConversation, error) {
	conv, err := s.client.WorkflowConversation.Query().
		Where(
			workflowconversation.PhoneEQ(phone),
			workflowconversation.StatusEQ(workflowconversation.StatusWaiting),
		).
		Order(ent.Desc(workflowconversation.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying waiting conversation: %w", err)
	}
	return conv, nil
}

// Complete marks a waiting conversation completed, storing the final
// merged variable map. Completing a non-waiting conversation returns
// ErrConflict so double resumes are visible to callers.
func (s *ConversationService) Complete(ctx context.Context, id string, mergedVars map[string]interface{}) error {
	n, err := s.client.WorkflowConversation.Update().
		Where(
			workflowconversation.IDEQ(id),
			workflowconversation.StatusEQ(workflowconversation.StatusWaiting),
		).
		SetStatus(workflowconversation.StatusCompleted).
		SetVariables(mergedVars).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("completing conversation: %w", err)
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}
