package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/waflow/waflow/pkg/models"
	"github.com/waflow/waflow/pkg/template"
)

// sendMessageHandler sends a plain text message to the conversation peer
// (or an explicit "to" from config), with {{var}} substitution.
type sendMessageHandler struct{}

func (h *sendMessageHandler) Validate(node *models.Node) error {
	if node.StringConfig("message") == "" {
		return fmt.Errorf("send-message requires a message")
	}
	return nil
}

func (h *sendMessageHandler) Run(ctx context.Context, node *models.Node, sc *StepContext) (*StepResult, error) {
	to := resolveRecipient(node, sc)
	if to == "" {
		return nil, fmt.Errorf("send-message has no recipient")
	}
	body := template.Substitute(node.StringConfig("message"), sc.Vars)

	messageID, err := sc.Sender.SendText(ctx, to, body)
	if err != nil {
		return nil, err
	}
	return &StepResult{
		Output: map[string]interface{}{"messageId": messageID, "message": body},
	}, nil
}

// sendListHandler sends an interactive list message.
type sendListHandler struct{}

func (h *sendListHandler) Validate(node *models.Node) error {
	if node.StringConfig("body") == "" {
		return fmt.Errorf("send-list requires a body")
	}
	if node.StringConfig("buttonText") == "" {
		return fmt.Errorf("send-list requires a buttonText")
	}
	if rows := listRows(node); len(rows) == 0 {
		return fmt.Errorf("send-list requires at least one row")
	}
	return nil
}

func (h *sendListHandler) Run(ctx context.Context, node *models.Node, sc *StepContext) (*StepResult, error) {
	to := resolveRecipient(node, sc)
	if to == "" {
		return nil, fmt.Errorf("send-list has no recipient")
	}

	list := models.ListMessage{
		Header:     template.Substitute(node.StringConfig("header"), sc.Vars),
		Body:       template.Substitute(node.StringConfig("body"), sc.Vars),
		Footer:     template.Substitute(node.StringConfig("footer"), sc.Vars),
		ButtonText: node.StringConfig("buttonText"),
		Rows:       listRows(node),
	}

	messageID, err := sc.Sender.SendList(ctx, to, list)
	if err != nil {
		return nil, err
	}
	return &StepResult{
		Output: map[string]interface{}{"messageId": messageID},
	}, nil
}

// listRows decodes the rows config of a send-list node.
func listRows(node *models.Node) []models.ListRow {
	raw, ok := node.Config["rows"].([]interface{})
	if !ok {
		return nil
	}
	var rows []models.ListRow
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		row := models.ListRow{}
		if v, ok := m["id"].(string); ok {
			row.ID = v
		}
		if v, ok := m["title"].(string); ok {
			row.Title = v
		}
		if v, ok := m["description"].(string); ok {
			row.Description = v
		}
		if row.Title != "" {
			rows = append(rows, row)
		}
	}
	return rows
}

// askQuestionHandler sends a question and pauses the run until the peer
// replies. The reply lands in the variable named by variableKey.
type askQuestionHandler struct{}

func (h *askQuestionHandler) Validate(node *models.Node) error {
	if node.StringConfig("message") == "" {
		return fmt.Errorf("ask-question requires a message")
	}
	if node.StringConfig("variableKey") == "" {
		return fmt.Errorf("ask-question requires a variableKey")
	}
	return nil
}

func (h *askQuestionHandler) Run(ctx context.Context, node *models.Node, sc *StepContext) (*StepResult, error) {
	to := resolveRecipient(node, sc)
	if to == "" {
		return nil, fmt.Errorf("ask-question has no recipient")
	}
	body := template.Substitute(node.StringConfig("message"), sc.Vars)

	messageID, err := sc.Sender.SendText(ctx, to, body)
	if err != nil {
		return nil, err
	}
	return &StepResult{
		Output:      map[string]interface{}{"messageId": messageID, "question": body},
		Paused:      true,
		VariableKey: node.StringConfig("variableKey"),
	}, nil
}

// setVariableHandler writes a value into the run's variable map.
type setVariableHandler struct{}

func (h *setVariableHandler) Validate(node *models.Node) error {
	if node.StringConfig("key") == "" {
		return fmt.Errorf("set-variable requires a key")
	}
	return nil
}

func (h *setVariableHandler) Run(_ context.Context, node *models.Node, sc *StepContext) (*StepResult, error) {
	key := node.StringConfig("key")
	value := node.Config["value"]
	if s, ok := value.(string); ok {
		value = template.Substitute(s, sc.Vars)
	}
	return &StepResult{
		SetVars: map[string]interface{}{key: value},
	}, nil
}

// httpRequestHandler calls an external URL with substituted body and
// exposes the response to downstream nodes.
type httpRequestHandler struct{}

func (h *httpRequestHandler) Validate(node *models.Node) error {
	if node.StringConfig("url") == "" {
		return fmt.Errorf("http-request requires a url")
	}
	return nil
}

func (h *httpRequestHandler) Run(ctx context.Context, node *models.Node, sc *StepContext) (*StepResult, error) {
	url := template.Substitute(node.StringConfig("url"), sc.Vars)
	method := strings.ToUpper(node.StringConfig("method"))
	if method == "" {
		method = http.MethodPost
	}

	var reqBody io.Reader
	if raw := node.StringConfig("body"); raw != "" {
		reqBody = strings.NewReader(template.Substitute(raw, sc.Vars))
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := sc.HTTP
	if client == nil {
		client = defaultHTTPClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 256<<10))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	output := map[string]interface{}{
		"status": resp.StatusCode,
		"body":   string(raw),
	}
	var parsed map[string]interface{}
	if json.Unmarshal(raw, &parsed) == nil {
		output["json"] = parsed
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}
	return &StepResult{Output: output}, nil
}

// resolveRecipient picks the node's explicit "to" (substituted) or the
// conversation peer.
func resolveRecipient(node *models.Node, sc *StepContext) string {
	if to := node.StringConfig("to"); to != "" {
		return template.Substitute(to, sc.Vars)
	}
	return sc.Phone
}
