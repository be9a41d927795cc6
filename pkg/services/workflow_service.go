package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/waflow/waflow/ent"
	entworkflow "github.com/waflow/waflow/ent/workflow"
	"github.com/waflow/waflow/ent/workflowversion"
	"github.com/waflow/waflow/pkg/engine"
	"github.com/waflow/waflow/pkg/models"
)

// WorkflowService manages workflows and their immutable versions.
// Editing never mutates a published version: each edit lands in a new
// draft, and publishing pins active_version_id to it.
type WorkflowService struct {
	client *ent.Client
}

// NewWorkflowService creates a new WorkflowService.
func NewWorkflowService(client *ent.Client) *WorkflowService {
	return &WorkflowService{client: client}
}

// CreateWorkflowRequest carries the initial workflow definition.
type CreateWorkflowRequest struct {
	Name        string
	Description string
	Visibility  string
	Graph       models.Graph
}

// CreateWorkflow creates a workflow with version 1. A valid graph is
// required; the version starts unpublished.
func (s *WorkflowService) CreateWorkflow(ctx context.Context, req CreateWorkflowRequest) (*ent.Workflow, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if err := engine.ValidateWorkflowSchema(&req.Graph); err != nil {
		return nil, NewValidationError("graph", err.Error())
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	create := tx.Workflow.Create().
		SetID(uuid.New().String()).
		SetName(req.Name)
	if req.Description != "" {
		create.SetDescription(req.Description)
	}
	if req.Visibility != "" {
		create.SetVisibility(entworkflow.Visibility(req.Visibility))
	}
	wf, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating workflow: %w", err)
	}

	_, err = tx.WorkflowVersion.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(wf.ID).
		SetNumber(1).
		SetGraph(req.Graph).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating initial version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit workflow creation: %w", err)
	}
	return wf, nil
}

// GetWorkflow returns a workflow by id.
func (s *WorkflowService) GetWorkflow(ctx context.Context, id string) (*ent.Workflow, error) {
	wf, err := s.client.Workflow.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying workflow: %w", err)
	}
	return wf, nil
}

// ListWorkflows returns workflows ordered by creation time, newest first.
func (s *WorkflowService) ListWorkflows(ctx context.Context) ([]*ent.Workflow, error) {
	rows, err := s.client.Workflow.Query().
		Order(ent.Desc(entworkflow.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing workflows: %w", err)
	}
	return rows, nil
}

// SaveDraft records an edited graph as a new draft version and returns it.
func (s *WorkflowService) SaveDraft(ctx context.Context, workflowID string, graph models.Graph) (*ent.WorkflowVersion, error) {
	if err := engine.ValidateWorkflowSchema(&graph); err != nil {
		return nil, NewValidationError("graph", err.Error())
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Workflow.Get(ctx, workflowID); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying workflow: %w", err)
	}

	last, err := tx.WorkflowVersion.Query().
		Where(workflowversion.WorkflowIDEQ(workflowID)).
		Order(ent.Desc(workflowversion.FieldNumber)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("querying latest version: %w", err)
	}
	next := 1
	if last != nil {
		next = last.Number + 1
	}

	version, err := tx.WorkflowVersion.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(workflowID).
		SetNumber(next).
		SetGraph(graph).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating draft version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit draft: %w", err)
	}
	return version, nil
}

// Publish marks a version published and pins it as the workflow's active
// version. Runs started before a later publish keep their own version.
func (s *WorkflowService) Publish(ctx context.Context, workflowID, versionID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	version, err := tx.WorkflowVersion.Get(ctx, versionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("querying version: %w", err)
	}
	if version.WorkflowID != workflowID {
		return ErrConflict
	}

	if err := tx.WorkflowVersion.UpdateOneID(versionID).
		SetPublished(true).
		Exec(ctx); err != nil {
		return fmt.Errorf("publishing version: %w", err)
	}
	if err := tx.Workflow.UpdateOneID(workflowID).
		SetActiveVersionID(versionID).
		SetUpdatedAt(time.Now()).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("pinning active version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit publish: %w", err)
	}
	return nil
}

// ActiveGraph resolves the graph a fresh run of the workflow executes:
// the active published version, falling back to the latest draft when
// nothing has been published yet.
func (s *WorkflowService) ActiveGraph(ctx context.Context, workflowID string) (*models.Graph, string, error) {
	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, "", err
	}

	var version *ent.WorkflowVersion
	if wf.ActiveVersionID != nil && *wf.ActiveVersionID != "" {
		version, err = s.client.WorkflowVersion.Get(ctx, *wf.ActiveVersionID)
		if err != nil && !ent.IsNotFound(err) {
			return nil, "", fmt.Errorf("querying active version: %w", err)
		}
	}
	if version == nil {
		version, err = s.client.WorkflowVersion.Query().
			Where(workflowversion.WorkflowIDEQ(workflowID)).
			Order(ent.Desc(workflowversion.FieldNumber)).
			First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, "", ErrNotFound
			}
			return nil, "", fmt.Errorf("querying latest version: %w", err)
		}
	}

	graph := version.Graph
	return &graph, version.ID, nil
}

// GraphForVersion returns the graph of a specific version. Resume uses
// it so a paused run continues on the version it started with.
func (s *WorkflowService) GraphForVersion(ctx context.Context, versionID string) (*models.Graph, error) {
	version, err := s.client.WorkflowVersion.Get(ctx, versionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying version: %w", err)
	}
	graph := version.Graph
	return &graph, nil
}
