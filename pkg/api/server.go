// Package api provides the HTTP surface of the messaging automation
// core: workflow run/resume, campaign lifecycle, precheck, the provider
// webhook, and the live progress WebSocket.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/waflow/waflow/pkg/database"
	"github.com/waflow/waflow/pkg/engine"
	"github.com/waflow/waflow/pkg/events"
	"github.com/waflow/waflow/pkg/ingest"
	"github.com/waflow/waflow/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	dbClient *database.Client

	workflows *services.WorkflowService
	runs      *services.RunService
	campaigns *services.CampaignService
	templates *services.TemplateService
	settings  *services.SettingsService
	flows     *services.FlowSubmissionService

	engine      *engine.Engine
	ingestor    *ingest.Ingestor
	connManager *events.ConnectionManager // nil disables /ws
	publisher   *events.Publisher         // nil disables progress events
}

// NewServer creates the API server and registers all routes.
func NewServer(
	dbClient *database.Client,
	workflows *services.WorkflowService,
	runs *services.RunService,
	campaigns *services.CampaignService,
	templates *services.TemplateService,
	settings *services.SettingsService,
	flows *services.FlowSubmissionService,
	eng *engine.Engine,
	ingestor *ingest.Ingestor,
) *Server {
	e := echo.New()

	s := &Server{
		echo:      e,
		dbClient:  dbClient,
		workflows: workflows,
		runs:      runs,
		campaigns: campaigns,
		templates: templates,
		settings:  settings,
		flows:     flows,
		engine:    eng,
		ingestor:  ingestor,
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// SetConnectionManager enables the /ws endpoint.
func (s *Server) SetConnectionManager(m *events.ConnectionManager) {
	s.connManager = m
}

// SetPublisher enables progress event publishing from handlers.
func (s *Server) SetPublisher(p *events.Publisher) {
	s.publisher = p
}

func (s *Server) setupRoutes() {
	e := s.echo

	e.GET("/health", s.healthHandler)

	// Workflow execution surface.
	e.POST("/workflow/run", s.runWorkflowHandler)
	e.POST("/workflow/:id/resume", s.resumeWorkflowHandler)

	// Campaign execution surface.
	e.POST("/campaigns/:id/cancel", s.cancelCampaignHandler)
	e.POST("/campaigns/precheck", s.precheckHandler)
	e.GET("/campaigns/:id/report.csv", s.reportCSVHandler)

	// Provider webhook.
	e.GET("/webhook", s.verifyWebhookHandler)
	e.POST("/webhook", s.webhookHandler)

	// Live progress.
	e.GET("/ws", s.wsHandler)

	// CRUD surface.
	v1 := e.Group("/api/v1")
	v1.POST("/workflows", s.createWorkflowHandler)
	v1.GET("/workflows", s.listWorkflowsHandler)
	v1.GET("/workflows/:id", s.getWorkflowHandler)
	v1.PUT("/workflows/:id/graph", s.saveDraftHandler)
	v1.POST("/workflows/:id/publish", s.publishWorkflowHandler)
	v1.GET("/workflows/:id/runs", s.listRunsHandler)
	v1.GET("/runs/:id/logs", s.listRunLogsHandler)

	v1.POST("/campaigns", s.createCampaignHandler)
	v1.GET("/campaigns", s.listCampaignsHandler)
	v1.GET("/campaigns/:id", s.getCampaignHandler)
	v1.POST("/campaigns/:id/start", s.startCampaignHandler)
	v1.POST("/campaigns/:id/pause", s.pauseCampaignHandler)
	v1.POST("/campaigns/:id/resume", s.resumeCampaignHandler)
	v1.GET("/campaigns/:id/flow-submissions", s.listFlowSubmissionsHandler)

	v1.POST("/templates", s.upsertTemplateHandler)
	v1.GET("/templates", s.listTemplatesHandler)

	v1.GET("/settings/:key", s.getSettingHandler)
	v1.PUT("/settings/:key", s.putSettingHandler)
}

// Start begins serving on the given address. Blocks until shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// publishCampaignProgress broadcasts the campaign's current counters.
// Best-effort, nil-safe.
func (s *Server) publishCampaignProgress(ctx context.Context, campaignID string) {
	if s.publisher == nil {
		return
	}
	c, err := s.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return
	}
	s.publisher.PublishCampaignProgress(ctx, events.CampaignProgressPayload{
		CampaignID: c.ID,
		Status:     string(c.Status),
		Recipients: c.Recipients,
		Sent:       c.Sent,
		Delivered:  c.Delivered,
		Read:       c.Read,
		Failed:     c.Failed,
		Skipped:    c.Skipped,
	})
}

// publishRunStatus broadcasts a run transition. Best-effort, nil-safe.
func (s *Server) publishRunStatus(ctx context.Context, workflowID string, exec *engine.Execution) {
	if s.publisher == nil || exec == nil {
		return
	}
	s.publisher.PublishRunStatus(ctx, events.RunStatusPayload{
		RunID:      exec.RunID,
		WorkflowID: workflowID,
		Status:     exec.Status,
	})
}
