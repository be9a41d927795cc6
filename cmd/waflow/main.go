// waflow server - messaging automation core: workflow engine, campaign
// dispatcher, provider webhook ingestor, and the HTTP API around them.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/waflow/waflow/pkg/api"
	"github.com/waflow/waflow/pkg/cleanup"
	"github.com/waflow/waflow/pkg/config"
	"github.com/waflow/waflow/pkg/database"
	"github.com/waflow/waflow/pkg/dispatcher"
	"github.com/waflow/waflow/pkg/engine"
	"github.com/waflow/waflow/pkg/events"
	"github.com/waflow/waflow/pkg/ingest"
	"github.com/waflow/waflow/pkg/provider"
	"github.com/waflow/waflow/pkg/services"
	"github.com/waflow/waflow/pkg/template"
	"github.com/waflow/waflow/pkg/trace"
	"github.com/waflow/waflow/pkg/turbo"
	"github.com/waflow/waflow/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting waflow", "version", version.Full(), "http_port", httpPort)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Database.
	dbClient, err := database.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL, schema up to date")

	// Persistence gateway.
	settingsService := services.NewSettingsService(dbClient.Client)
	workflowService := services.NewWorkflowService(dbClient.Client)
	runService := services.NewRunService(dbClient.Client)
	conversationService := services.NewConversationService(dbClient.Client)
	campaignService := services.NewCampaignService(dbClient.Client)
	statusService := services.NewStatusService(dbClient.Client)
	templateService := services.NewTemplateService(dbClient.Client)
	flowService := services.NewFlowSubmissionService(dbClient.Client)

	// Provider client.
	providerClient := provider.NewClient(provider.Config{
		BaseURL:       os.Getenv("WA_API_BASE_URL"),
		AccessToken:   os.Getenv("WA_ACCESS_TOKEN"),
		PhoneNumberID: os.Getenv("WA_PHONE_NUMBER_ID"),
		AppSecret:     os.Getenv("WA_APP_SECRET"),
	})
	if info, err := providerClient.Probe(ctx); err != nil {
		slog.Warn("Provider probe failed; sends will classify at runtime", "error", err)
	} else {
		slog.Info("Provider sender verified", "display_phone", info.DisplayPhone)
	}

	// Trace sink and rehost path.
	traceSink := trace.NewSink(dbClient.Client)
	rehoster := template.NewRehoster(providerClient, traceSink)

	// Turbo rate controller (settings-persisted config and state).
	turboConfig := config.DefaultTurboConfig()
	if found, err := settingsService.Load(ctx, turbo.ConfigKey, &turboConfig); err != nil {
		slog.Warn("Failed to load turbo config, using defaults", "error", err)
	} else if !found {
		slog.Info("No turbo config in settings, using defaults")
	}
	turboController := turbo.NewController(turboConfig, settingsService)

	// Workflow engine.
	execConfig := config.DefaultWorkflowExecutionConfig()
	if _, err := settingsService.Load(ctx, "workflow_execution_config", &execConfig); err != nil {
		slog.Warn("Failed to load workflow execution config, using defaults", "error", err)
	}
	workflowEngine := engine.NewEngine(
		services.NewEngineRunStore(runService),
		services.NewEngineConversationStore(conversationService),
		workflowService,
		provider.NewTextSender(providerClient),
		execConfig,
	)

	// Campaign dispatcher pool.
	dispatcherPool := dispatcher.NewPool(
		cfg.PodID,
		services.NewDispatcherStore(campaignService),
		services.NewDispatcherTemplates(templateService),
		template.NewSender(providerClient),
		turboController,
		rehoster,
		traceSink,
		cfg.Dispatcher,
		providerClient.PhoneNumberID(),
	)
	if err := dispatcherPool.Start(ctx); err != nil {
		log.Fatalf("Failed to start dispatcher pool: %v", err)
	}
	defer dispatcherPool.Stop()

	// Reply ingestor with its reconciliation queue.
	statusApplier := services.NewIngestStatuses(statusService)
	reconciler := ingest.NewReconciler(statusApplier, 5, 2*time.Second)
	reconciler.Start(ctx)
	defer reconciler.Stop()

	ingestor := ingest.NewIngestor(
		settingsService,
		statusApplier,
		services.NewIngestConversations(conversationService),
		workflowEngine,
		services.NewIngestFlows(flowService),
		services.NewCampaignMediaRehost(statusService, campaignService, templateService, rehoster),
		traceSink,
		reconciler,
		os.Getenv("WA_APP_SECRET"),
	)

	// Live progress events.
	connManager := events.NewConnectionManager()
	publisher := events.NewPublisher(dbClient.DB())
	listener := events.NewNotifyListener(dbClient.DSN(), connManager)
	go listener.Run(ctx)

	// Retention cleanup.
	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// HTTP server.
	server := api.NewServer(
		dbClient,
		workflowService,
		runService,
		campaignService,
		templateService,
		settingsService,
		flowService,
		workflowEngine,
		ingestor,
	)
	server.SetConnectionManager(connManager)
	server.SetPublisher(publisher)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start(":" + httpPort)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}
	slog.Info("waflow stopped")
}
