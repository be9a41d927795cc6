package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/waflow/waflow/pkg/models"
)

// Resume continues a paused run from its recorded resume node. The
// inbound message is injected at the conversation's variable key and a
// new run (trigger_type resume) executes the remainder of the graph on
// the version the original run started with.
func (e *Engine) Resume(ctx context.Context, req ResumeRequest) (*Execution, error) {
	message := strings.TrimSpace(req.Input.Message)
	if message == "" {
		return nil, ErrMissingInboundMessage
	}

	conv, err := e.convs.Get(ctx, req.ConversationID)
	if err != nil {
		return nil, err
	}
	if !conv.Waiting {
		return nil, ErrConversationNotFound
	}
	if conv.WorkflowID != req.WorkflowID {
		return nil, ErrConversationWorkflowMismatch
	}
	if conv.ResumeNodeID == "" {
		return nil, ErrConversationMissingResumeNode
	}

	// Resume on the version the paused run executed, so draft edits made
	// while the conversation waited never change its behavior.
	versionID, err := e.runs.RunVersion(ctx, conv.RunID)
	if err != nil {
		return nil, err
	}
	var graph *models.Graph
	if versionID != "" {
		graph, err = e.graphs.GraphForVersion(ctx, versionID)
		if err != nil {
			return nil, err
		}
	}

	vars := make(map[string]interface{}, len(conv.Variables)+1)
	for k, v := range conv.Variables {
		vars[k] = v
	}
	vars[conv.VariableKey] = message

	from := req.Input.From
	if from == "" {
		from = conv.Phone
	}

	exec, err := e.Execute(ctx, ExecuteRequest{
		WorkflowID: req.WorkflowID,
		VersionID:  versionID,
		Graph:      graph,
		Trigger:    models.TriggerResume,
		Input: map[string]interface{}{
			"from":    from,
			"to":      req.Input.To,
			"message": req.Input.Message,
		},
		StartNodeIDs:     []string{conv.ResumeNodeID},
		InitialVariables: vars,
	})
	if err != nil {
		return exec, err
	}

	// The awaited reply arrived and the continuation ran; this
	// conversation is done regardless of how the new run ended. A run
	// that paused again opened its own conversation.
	if cerr := e.convs.Complete(ctx, conv.ID, exec.Output); cerr != nil {
		slog.Warn("Failed to complete conversation",
			"conversation_id", conv.ID,
			"error", cerr)
	}

	return exec, nil
}
