package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/waflow/waflow/pkg/engine"
	"github.com/waflow/waflow/pkg/services"
)

// createWorkflowHandler handles POST /api/v1/workflows.
func (s *Server) createWorkflowHandler(c *echo.Context) error {
	var req CreateWorkflowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	wf, err := s.workflows.CreateWorkflow(c.Request().Context(), services.CreateWorkflowRequest{
		Name:        req.Name,
		Description: req.Description,
		Visibility:  req.Visibility,
		Graph:       req.Graph,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, wf)
}

// listWorkflowsHandler handles GET /api/v1/workflows.
func (s *Server) listWorkflowsHandler(c *echo.Context) error {
	rows, err := s.workflows.ListWorkflows(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// getWorkflowHandler handles GET /api/v1/workflows/:id.
func (s *Server) getWorkflowHandler(c *echo.Context) error {
	wf, err := s.workflows.GetWorkflow(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, wf)
}

// saveDraftHandler handles PUT /api/v1/workflows/:id/graph.
func (s *Server) saveDraftHandler(c *echo.Context) error {
	var req SaveDraftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	version, err := s.workflows.SaveDraft(c.Request().Context(), c.Param("id"), req.Graph)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, version)
}

// publishWorkflowHandler handles POST /api/v1/workflows/:id/publish.
func (s *Server) publishWorkflowHandler(c *echo.Context) error {
	var req PublishRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.VersionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "versionId is required")
	}

	if err := s.workflows.Publish(c.Request().Context(), c.Param("id"), req.VersionID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// runWorkflowHandler handles POST /workflow/run.
func (s *Server) runWorkflowHandler(c *echo.Context) error {
	var req RunWorkflowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.WorkflowID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "workflowId is required")
	}

	ctx := c.Request().Context()
	exec, err := s.engine.Execute(ctx, engine.ExecuteRequest{
		WorkflowID:       req.WorkflowID,
		Input:            req.Input,
		StartNodeIDs:     req.StartNodeIDs,
		InitialVariables: req.InitialVariables,
	})
	if err != nil && exec == nil {
		return mapServiceError(err)
	}

	s.publishRunStatus(ctx, req.WorkflowID, exec)
	return c.JSON(http.StatusOK, ExecutionResponse{
		ExecutionID: exec.RunID,
		Status:      exec.Status,
		Output:      exec.Output,
	})
}

// resumeWorkflowHandler handles POST /workflow/:id/resume.
func (s *Server) resumeWorkflowHandler(c *echo.Context) error {
	var req ResumeWorkflowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	workflowID := req.WorkflowID
	if workflowID == "" {
		workflowID = c.Param("id")
	}
	if req.ConversationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "conversationId is required")
	}

	ctx := c.Request().Context()
	exec, err := s.engine.Resume(ctx, engine.ResumeRequest{
		WorkflowID:     workflowID,
		ConversationID: req.ConversationID,
		Input:          req.Input,
	})
	if err != nil && exec == nil {
		return mapServiceError(err)
	}

	s.publishRunStatus(ctx, workflowID, exec)
	return c.JSON(http.StatusOK, ExecutionResponse{
		ExecutionID: exec.RunID,
		Status:      exec.Status,
		Output:      exec.Output,
	})
}

// listRunsHandler handles GET /api/v1/workflows/:id/runs.
func (s *Server) listRunsHandler(c *echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	rows, err := s.runs.ListRuns(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// listRunLogsHandler handles GET /api/v1/runs/:id/logs.
func (s *Server) listRunLogsHandler(c *echo.Context) error {
	rows, err := s.runs.ListLogs(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}
