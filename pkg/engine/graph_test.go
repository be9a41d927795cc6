package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waflow/waflow/pkg/models"
)

func validGraph() *models.Graph {
	return &models.Graph{
		Nodes: []models.Node{
			{ID: "t", Kind: models.NodeKindTrigger, Config: map[string]interface{}{"triggerType": "Manual"}},
			{ID: "a", Kind: models.NodeKindAction, ActionType: ActionSendMessage,
				Config: map[string]interface{}{"message": "oi"}},
		},
		Edges: []models.Edge{{Source: "t", Target: "a"}},
	}
}

func TestValidateWorkflowSchema(t *testing.T) {
	assert.NoError(t, ValidateWorkflowSchema(validGraph()))
}

func TestValidateWorkflowSchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Graph)
		wantErr string
	}{
		{
			"no trigger",
			func(g *models.Graph) { g.Nodes = g.Nodes[1:] },
			"exactly one trigger",
		},
		{
			"two triggers",
			func(g *models.Graph) {
				g.Nodes = append(g.Nodes, models.Node{ID: "t2", Kind: models.NodeKindTrigger})
			},
			"exactly one trigger",
		},
		{
			"dangling edge",
			func(g *models.Graph) {
				g.Edges = append(g.Edges, models.Edge{Source: "a", Target: "ghost"})
			},
			"missing target",
		},
		{
			"duplicate node id",
			func(g *models.Graph) { g.Nodes = append(g.Nodes, g.Nodes[1]) },
			"duplicate node id",
		},
		{
			"unknown action",
			func(g *models.Graph) { g.Nodes[1].ActionType = "whatsapp/teleport" },
			"unknown action type",
		},
		{
			"action missing config",
			func(g *models.Graph) { g.Nodes[1].Config = nil },
			"requires a message",
		},
		{
			"cycle",
			func(g *models.Graph) {
				g.Nodes = append(g.Nodes, models.Node{ID: "b", Kind: models.NodeKindAction,
					ActionType: ActionSendMessage, Config: map[string]interface{}{"message": "x"}})
				g.Edges = append(g.Edges,
					models.Edge{Source: "a", Target: "b"},
					models.Edge{Source: "b", Target: "a"})
			},
			"cycle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGraph()
			tt.mutate(g)
			err := ValidateWorkflowSchema(g)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateEmptyGraph(t *testing.T) {
	assert.Error(t, ValidateWorkflowSchema(nil))
	assert.Error(t, ValidateWorkflowSchema(&models.Graph{}))
}
