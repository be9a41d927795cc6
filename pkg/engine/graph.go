package engine

import (
	"fmt"

	"github.com/waflow/waflow/pkg/models"
)

// ValidateWorkflowSchema checks the structural invariants of a workflow
// graph: exactly one trigger node, every edge referencing existing nodes,
// no cycles among ordinary nodes, and known action types.
func ValidateWorkflowSchema(g *models.Graph) error {
	if g == nil || len(g.Nodes) == 0 {
		return fmt.Errorf("graph has no nodes")
	}

	ids := make(map[string]bool, len(g.Nodes))
	triggers := 0
	for _, n := range g.Nodes {
		if n.ID == "" {
			return fmt.Errorf("node with empty id")
		}
		if ids[n.ID] {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		ids[n.ID] = true

		switch n.Kind {
		case models.NodeKindTrigger:
			triggers++
		case models.NodeKindAction:
			if n.ActionType == "" {
				return fmt.Errorf("action node %q has no actionType", n.ID)
			}
			if !defaultRegistry.Knows(n.ActionType) {
				return fmt.Errorf("unknown action type %q on node %q", n.ActionType, n.ID)
			}
			if err := defaultRegistry.Validate(&n); err != nil {
				return fmt.Errorf("node %q: %w", n.ID, err)
			}
		case models.NodeKindAdd:
			// structural placeholder, no constraints
		default:
			return fmt.Errorf("unknown node kind %q on node %q", n.Kind, n.ID)
		}
	}
	if triggers != 1 {
		return fmt.Errorf("graph must have exactly one trigger node, found %d", triggers)
	}

	for _, e := range g.Edges {
		if !ids[e.Source] {
			return fmt.Errorf("edge references missing source node %q", e.Source)
		}
		if !ids[e.Target] {
			return fmt.Errorf("edge references missing target node %q", e.Target)
		}
	}

	if cyclic(g) {
		return fmt.Errorf("graph contains a cycle")
	}
	return nil
}

// cyclic runs a three-color DFS over the edge list.
func cyclic(g *models.Graph) bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(g.Nodes))

	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = gray
		for _, next := range g.Successors(id) {
			switch color[next] {
			case gray:
				return true
			case white:
				if visit(next) {
					return true
				}
			}
		}
		color[id] = black
		return false
	}

	for _, n := range g.Nodes {
		if color[n.ID] == white {
			if visit(n.ID) {
				return true
			}
		}
	}
	return false
}

// triggerConfig decodes a trigger node's configuration.
func triggerConfig(n *models.Node) models.TriggerConfig {
	cfg := models.TriggerConfig{TriggerType: models.TriggerManual}
	if n == nil || n.Config == nil {
		return cfg
	}
	if v := n.StringConfig("triggerType"); v != "" {
		cfg.TriggerType = normalizeTriggerType(v)
	}
	if raw, ok := n.Config["keywords"].([]interface{}); ok {
		for _, k := range raw {
			if s, ok := k.(string); ok {
				cfg.Keywords = append(cfg.Keywords, s)
			}
		}
	}
	return cfg
}

// normalizeTriggerType accepts both the authoring UI's capitalized names
// and the stored lowercase enum.
func normalizeTriggerType(v string) models.TriggerType {
	switch v {
	case "Webhook", "webhook":
		return models.TriggerWebhook
	case "Keywords", "keywords":
		return models.TriggerKeywords
	case "Resume", "resume":
		return models.TriggerResume
	default:
		return models.TriggerManual
	}
}
