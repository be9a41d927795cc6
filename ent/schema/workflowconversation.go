package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowConversation is the suspension record of a paused run: where to
// resume, which variable the awaited reply fills, and the variable snapshot
// captured at pause time. At most one waiting conversation may exist per
// (workflow_id, phone) — enforced by a partial unique index.
type WorkflowConversation struct {
	ent.Schema
}

// Fields of the WorkflowConversation.
func (WorkflowConversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("workflow_id"),
		field.String("run_id"),
		field.String("phone").
			Comment("E.164 normalized"),
		field.Enum("status").
			Values("waiting", "completed").
			Default("waiting"),
		field.String("resume_node_id"),
		field.String("variable_key"),
		field.JSON("variables", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the WorkflowConversation.
func (WorkflowConversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "phone").
			Unique().
			Annotations(entsql.IndexWhere("status = 'waiting'")),
		index.Fields("phone", "status"),
	}
}
