package engine

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/waflow/waflow/pkg/models"
)

// Action type identifiers recognized by the engine.
const (
	ActionSendMessage = "whatsapp/send-message"
	ActionSendList    = "whatsapp/send-list"
	ActionAskQuestion = "whatsapp/ask-question"
	ActionSetVariable = "set-variable"
	ActionHTTPRequest = "http-request"
)

// StepContext is what a handler sees while running one node.
type StepContext struct {
	// Phone is the conversation peer, taken from the trigger input.
	Phone string

	// Vars is the run's live variable map. Handlers read through
	// template substitution; writes go through StepResult.
	Vars map[string]interface{}

	Sender MessageSender
	HTTP   *http.Client
}

// StepResult is a handler's outcome. A paused result is an explicit
// continuation: the engine persists it and stops the walk.
type StepResult struct {
	// Output is merged into the variable map under the node id.
	Output map[string]interface{}

	// SetVars entries are merged at the top level of the variable map.
	SetVars map[string]interface{}

	// Paused suspends the run; VariableKey names where the awaited reply
	// will be injected on resume.
	Paused      bool
	VariableKey string
}

// Handler implements one action type.
type Handler interface {
	// Validate checks a node's configuration at authoring time.
	Validate(node *models.Node) error

	// Run performs the node's effect.
	Run(ctx context.Context, node *models.Node, sc *StepContext) (*StepResult, error)
}

// Registry maps action types to handlers. Unknown actions are validation
// errors, never silent no-ops.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates a registry pre-loaded with the built-in actions.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[string]Handler)}
	r.Register(ActionSendMessage, &sendMessageHandler{})
	r.Register(ActionSendList, &sendListHandler{})
	r.Register(ActionAskQuestion, &askQuestionHandler{})
	r.Register(ActionSetVariable, &setVariableHandler{})
	r.Register(ActionHTTPRequest, &httpRequestHandler{})
	return r
}

// defaultRegistry backs schema validation and engines constructed
// without an explicit registry.
var defaultRegistry = NewRegistry()

// Register adds or replaces a handler.
func (r *Registry) Register(actionType string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[actionType] = h
}

// Knows reports whether an action type has a handler.
func (r *Registry) Knows(actionType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[actionType]
	return ok
}

// Handler returns the handler for an action type.
func (r *Registry) Handler(actionType string) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[actionType]
	if !ok {
		return nil, fmt.Errorf("unknown action type %q", actionType)
	}
	return h, nil
}

// Validate delegates to the node's handler.
func (r *Registry) Validate(node *models.Node) error {
	h, err := r.Handler(node.ActionType)
	if err != nil {
		return err
	}
	return h.Validate(node)
}

// defaultHTTPClient bounds workflow HTTP actions independently of the
// per-step timeout.
var defaultHTTPClient = &http.Client{Timeout: 15 * time.Second}
