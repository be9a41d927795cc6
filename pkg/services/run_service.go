package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/waflow/waflow/ent"
	"github.com/waflow/waflow/ent/workflowrun"
	"github.com/waflow/waflow/ent/workflowrunlog"
	"github.com/waflow/waflow/pkg/models"
)

// RunService manages workflow runs and their append-only node logs.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateRun opens a new run in queued state.
func (s *RunService) CreateRun(ctx context.Context, workflowID, versionID string, trigger models.TriggerType, input map[string]interface{}) (*ent.WorkflowRun, error) {
	run, err := s.client.WorkflowRun.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(workflowID).
		SetVersionID(versionID).
		SetTriggerType(workflowrun.TriggerType(trigger)).
		SetInput(input).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating run: %w", err)
	}
	return run, nil
}

// StartRun transitions a run to running and stamps started_at.
func (s *RunService) StartRun(ctx context.Context, runID string) error {
	err := s.client.WorkflowRun.UpdateOneID(runID).
		SetStatus(workflowrun.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("starting run: %w", err)
	}
	return nil
}

// MarkWaiting parks a run on a pause node.
func (s *RunService) MarkWaiting(ctx context.Context, runID string) error {
	err := s.client.WorkflowRun.UpdateOneID(runID).
		SetStatus(workflowrun.StatusWaiting).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("marking run waiting: %w", err)
	}
	return nil
}

// FinishRun records the terminal state of a run.
func (s *RunService) FinishRun(ctx context.Context, runID string, status string, output map[string]interface{}, runErr error) error {
	update := s.client.WorkflowRun.UpdateOneID(runID).
		SetStatus(workflowrun.Status(status)).
		SetFinishedAt(time.Now())
	if output != nil {
		update.SetOutput(output)
	}
	if runErr != nil {
		update.SetErrorMessage(runErr.Error())
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("finishing run: %w", err)
	}
	return nil
}

// GetRun returns a run by id.
func (s *RunService) GetRun(ctx context.Context, runID string) (*ent.WorkflowRun, error) {
	run, err := s.client.WorkflowRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying run: %w", err)
	}
	return run, nil
}

// ListRuns returns the runs of a workflow, newest first.
func (s *RunService) ListRuns(ctx context.Context, workflowID string, limit int) ([]*ent.WorkflowRun, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.client.WorkflowRun.Query().
		Where(workflowrun.WorkflowIDEQ(workflowID)).
		Order(ent.Desc(workflowrun.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return rows, nil
}

// OpenLog appends a running log row for one node attempt and returns its id.
func (s *RunService) OpenLog(ctx context.Context, runID string, node models.Node, input map[string]interface{}) (string, error) {
	logID := uuid.New().String()
	create := s.client.WorkflowRunLog.Create().
		SetID(logID).
		SetRunID(runID).
		SetNodeID(node.ID).
		SetNodeType(string(node.Kind)).
		SetInput(input)
	if node.Name != "" {
		create.SetNodeName(node.Name)
	}
	if node.ActionType != "" {
		create.SetNodeType(node.ActionType)
	}
	if _, err := create.Save(ctx); err != nil {
		return "", fmt.Errorf("opening run log: %w", err)
	}
	return logID, nil
}

// CloseLog completes a node log with success or error.
func (s *RunService) CloseLog(ctx context.Context, logID string, output map[string]interface{}, stepErr error) error {
	update := s.client.WorkflowRunLog.UpdateOneID(logID).
		SetCompletedAt(time.Now())
	if stepErr != nil {
		update.SetStatus(workflowrunlog.StatusError).
			SetErrorMessage(stepErr.Error())
	} else {
		update.SetStatus(workflowrunlog.StatusSuccess)
		if output != nil {
			update.SetOutput(output)
		}
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("closing run log: %w", err)
	}
	return nil
}

// ListLogs returns the node logs of a run in execution order.
func (s *RunService) ListLogs(ctx context.Context, runID string) ([]*ent.WorkflowRunLog, error) {
	rows, err := s.client.WorkflowRunLog.Query().
		Where(workflowrunlog.RunIDEQ(runID)).
		Order(ent.Asc(workflowrunlog.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing run logs: %w", err)
	}
	return rows, nil
}
