package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/waflow/waflow/pkg/models"
)

// Workflow holds the schema definition for the Workflow entity.
// A workflow is an authored node-and-edge graph; editing creates new
// draft versions while published versions stay immutable.
type Workflow struct {
	ent.Schema
}

// Fields of the Workflow.
func (Workflow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.Enum("visibility").
			Values("private", "public").
			Default("private"),
		field.String("active_version_id").
			Optional().
			Nillable().
			Comment("Published version executed by fresh runs"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Workflow.
func (Workflow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}

// WorkflowVersion holds one immutable snapshot of a workflow graph.
type WorkflowVersion struct {
	ent.Schema
}

// Fields of the WorkflowVersion.
func (WorkflowVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("version_id").
			Unique().
			Immutable(),
		field.String("workflow_id"),
		field.Int("number").
			Comment("Monotonic per workflow, starting at 1"),
		field.JSON("graph", models.Graph{}),
		field.Bool("published").
			Default(false),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the WorkflowVersion.
func (WorkflowVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "number").Unique(),
	}
}
