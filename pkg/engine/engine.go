package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/waflow/waflow/pkg/config"
	"github.com/waflow/waflow/pkg/models"
	"github.com/waflow/waflow/pkg/provider"
)

// Engine walks workflow graphs. Node execution is sequential per run;
// concurrent runs of the same workflow are independent.
type Engine struct {
	registry *Registry
	runs     RunStore
	convs    ConversationStore
	graphs   GraphProvider
	sender   MessageSender
	execCfg  config.WorkflowExecutionConfig
	httpc    *http.Client

	// sleep is swapped out in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewEngine creates a workflow engine with the default action registry.
func NewEngine(runs RunStore, convs ConversationStore, graphs GraphProvider, sender MessageSender, execCfg config.WorkflowExecutionConfig) *Engine {
	return &Engine{
		registry: defaultRegistry,
		runs:     runs,
		convs:    convs,
		graphs:   graphs,
		sender:   sender,
		execCfg:  execCfg.Normalize(),
		httpc:    defaultHTTPClient,
		sleep:    sleepCtx,
	}
}

// Execute runs one workflow execution to a terminal or waiting state.
func (e *Engine) Execute(ctx context.Context, req ExecuteRequest) (*Execution, error) {
	graph := req.Graph
	versionID := req.VersionID
	if graph == nil {
		var err error
		graph, versionID, err = e.graphs.ActiveGraph(ctx, req.WorkflowID)
		if err != nil {
			return nil, err
		}
	}
	if err := ValidateWorkflowSchema(graph); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkflow, err)
	}

	trigger := graph.Trigger()
	trigCfg := triggerConfig(trigger)
	triggerType := req.Trigger
	if triggerType == "" {
		triggerType = trigCfg.TriggerType
	}

	runID, err := e.runs.CreateRun(ctx, req.WorkflowID, versionID, triggerType, req.Input)
	if err != nil {
		return nil, err
	}
	log := slog.With("run_id", runID, "workflow_id", req.WorkflowID)

	// Keyword gate applies to fresh keyword-triggered runs only.
	if len(req.StartNodeIDs) == 0 && trigCfg.TriggerType == models.TriggerKeywords {
		if !keywordMatch(trigCfg.Keywords, inputMessage(req.Input)) {
			output := map[string]interface{}{"reason": SkipReasonKeyword}
			if err := e.runs.FinishRun(ctx, runID, StatusSkipped, output, nil); err != nil {
				return nil, err
			}
			log.Info("Run skipped", "reason", SkipReasonKeyword)
			return &Execution{RunID: runID, Status: StatusSkipped, Output: output}, nil
		}
	}

	if err := e.runs.StartRun(ctx, runID); err != nil {
		return nil, err
	}

	start := req.StartNodeIDs
	if len(start) == 0 {
		start = graph.Successors(trigger.ID)
	}

	vars := make(map[string]interface{}, len(req.InitialVariables)+1)
	for k, v := range req.InitialVariables {
		vars[k] = v
	}
	if req.Input != nil {
		vars["trigger"] = req.Input
	}

	sc := &StepContext{
		Phone:  inputFrom(req.Input),
		Vars:   vars,
		Sender: e.sender,
		HTTP:   e.httpc,
	}

	exec, err := e.walk(ctx, runID, req.WorkflowID, graph, start, sc)
	if err != nil {
		// walk already closed the failing log; record the terminal run state.
		if ferr := e.runs.FinishRun(ctx, runID, StatusFailed, vars, err); ferr != nil {
			log.Error("Failed to record run failure", "error", ferr)
		}
		log.Warn("Run failed", "error", err)
		return &Execution{RunID: runID, Status: StatusFailed, Output: vars}, err
	}

	if exec.Paused {
		if err := e.runs.MarkWaiting(ctx, runID); err != nil {
			return nil, err
		}
		exec.RunID = runID
		exec.Status = StatusWaiting
		exec.Output = vars
		log.Info("Run waiting on conversation", "conversation_id", exec.ConversationID)
		return exec, nil
	}

	if err := e.runs.FinishRun(ctx, runID, StatusSuccess, vars, nil); err != nil {
		return nil, err
	}
	log.Info("Run completed")
	return &Execution{RunID: runID, Status: StatusSuccess, Output: vars}, nil
}

// walk executes nodes reachable from the start set in order. It returns
// a paused execution when a step suspends the run.
func (e *Engine) walk(ctx context.Context, runID, workflowID string, graph *models.Graph, start []string, sc *StepContext) (*Execution, error) {
	queue := append([]string(nil), start...)
	visited := make(map[string]bool)

	for i := 0; i < len(queue); i++ {
		nodeID := queue[i]
		if visited[nodeID] {
			continue
		}
		visited[nodeID] = true

		node := graph.NodeByID(nodeID)
		if node == nil {
			return nil, fmt.Errorf("start node %q not in graph", nodeID)
		}

		switch node.Kind {
		case models.NodeKindTrigger:
			// A resume start set never includes the trigger; ignore if an
			// edge loops back to it.
			continue
		case models.NodeKindAdd:
			queue = append(queue, graph.Successors(node.ID)...)
			continue
		}

		result, err := e.runStep(ctx, runID, node, sc)
		if err != nil {
			return nil, err
		}

		for k, v := range result.SetVars {
			sc.Vars[k] = v
		}
		if result.Output != nil {
			sc.Vars[node.ID] = result.Output
		}

		if result.Paused {
			resumeNodeID := ""
			if next := graph.Successors(node.ID); len(next) > 0 {
				resumeNodeID = next[0]
			}
			convID, err := e.convs.OpenPaused(ctx, PausedConversation{
				WorkflowID:   workflowID,
				RunID:        runID,
				Phone:        sc.Phone,
				ResumeNodeID: resumeNodeID,
				VariableKey:  result.VariableKey,
				Variables:    snapshot(sc.Vars),
			})
			if err != nil {
				return nil, err
			}
			return &Execution{Paused: true, ConversationID: convID}, nil
		}

		queue = append(queue, graph.Successors(node.ID)...)
	}

	return &Execution{}, nil
}

// runStep executes one node with logging and the per-step retry policy.
// Only transient and rate_limited failures retry; every other class,
// media_expired included, is terminal for the step. The engine performs
// no media rehost.
func (e *Engine) runStep(ctx context.Context, runID string, node *models.Node, sc *StepContext) (*StepResult, error) {
	handler, err := e.registry.Handler(node.ActionType)
	if err != nil {
		return nil, err
	}

	logID, err := e.runs.OpenLog(ctx, runID, *node, snapshot(sc.Vars))
	if err != nil {
		return nil, err
	}

	var result *StepResult
	var stepErr error
	attempts := e.execCfg.RetryCount + 1
	for attempt := 0; attempt < attempts; attempt++ {
		result, stepErr = e.attemptStep(ctx, handler, node, sc)
		if stepErr == nil {
			break
		}

		class := provider.ClassOf(stepErr)
		if class != provider.ClassTransient && class != provider.ClassRateLimited {
			break
		}
		if attempt == attempts-1 {
			break
		}

		slog.Warn("Step retrying",
			"run_id", runID,
			"node_id", node.ID,
			"attempt", attempt+1,
			"class", string(class),
			"error", stepErr)
		if err := e.sleep(ctx, e.execCfg.RetryDelay()); err != nil {
			stepErr = err
			break
		}
	}

	if stepErr != nil {
		if err := e.runs.CloseLog(ctx, logID, nil, stepErr); err != nil {
			slog.Error("Failed to close run log", "log_id", logID, "error", err)
		}
		return nil, fmt.Errorf("node %s: %w", node.ID, stepErr)
	}

	if err := e.runs.CloseLog(ctx, logID, result.Output, nil); err != nil {
		slog.Error("Failed to close run log", "log_id", logID, "error", err)
	}
	return result, nil
}

// attemptStep runs one handler attempt under the per-step timeout.
func (e *Engine) attemptStep(ctx context.Context, handler Handler, node *models.Node, sc *StepContext) (*StepResult, error) {
	stepCtx := ctx
	if timeout := e.execCfg.StepTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		stepCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	result, err := handler.Run(stepCtx, node, sc)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = &StepResult{}
	}
	return result, nil
}

// keywordMatch reports whether the lowercased message contains any of
// the configured keywords.
func keywordMatch(keywords []string, message string) bool {
	if len(keywords) == 0 {
		return false
	}
	msg := strings.ToLower(message)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

func inputMessage(input map[string]interface{}) string {
	if input == nil {
		return ""
	}
	if v, ok := input["message"].(string); ok {
		return v
	}
	return ""
}

func inputFrom(input map[string]interface{}) string {
	if input == nil {
		return ""
	}
	if v, ok := input["from"].(string); ok {
		return v
	}
	return ""
}

// snapshot shallow-copies a variable map so persisted state does not
// alias the live one.
func snapshot(vars map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		out[k] = v
	}
	return out
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
