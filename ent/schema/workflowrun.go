package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowRun holds the schema definition for one execution of a workflow
// version. Terminal on success/failed/skipped/error; a run parked on an
// ask-question node sits in waiting until the inbound reply arrives.
type WorkflowRun struct {
	ent.Schema
}

// Fields of the WorkflowRun.
func (WorkflowRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("workflow_id"),
		field.String("version_id").
			Comment("Version snapshot the run executed; draft edits never touch it"),
		field.Enum("status").
			Values("queued", "running", "waiting", "success", "failed", "skipped", "error").
			Default("queued"),
		field.Enum("trigger_type").
			Values("webhook", "keywords", "manual", "resume"),
		field.JSON("input", map[string]interface{}{}).
			Optional(),
		field.JSON("output", map[string]interface{}{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the WorkflowRun.
func (WorkflowRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "created_at"),
		index.Fields("status"),
	}
}

// WorkflowRunLog is one append-only row per node attempt within a run.
type WorkflowRunLog struct {
	ent.Schema
}

// Fields of the WorkflowRunLog.
func (WorkflowRunLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("run_id"),
		field.String("node_id"),
		field.String("node_name").
			Optional(),
		field.String("node_type"),
		field.Enum("status").
			Values("running", "success", "error").
			Default("running"),
		field.JSON("input", map[string]interface{}{}).
			Optional(),
		field.JSON("output", map[string]interface{}{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the WorkflowRunLog.
func (WorkflowRunLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "started_at"),
	}
}
