package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StatusEvent is the idempotency record of a webhook status signal, keyed
// by (message_id, status). Provider retries land on the unique index and
// are absorbed without re-projection.
type StatusEvent struct {
	ent.Schema
}

// Fields of the StatusEvent.
func (StatusEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("message_id"),
		field.Enum("status").
			Values("sent", "delivered", "read", "failed"),
		field.Time("event_ts").
			Comment("Provider-reported timestamp of the signal"),
		field.Time("first_received_at").
			Default(time.Now),
		field.Time("last_received_at").
			Default(time.Now),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the StatusEvent.
func (StatusEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("message_id", "status").Unique(),
	}
}

// TraceEvent is an append-only phase record written by the trace sink.
// Persistence is best-effort: a missing table disables the sink for the
// life of the process.
type TraceEvent struct {
	ent.Schema
}

// Annotations of the TraceEvent.
func (TraceEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "campaign_trace_events"},
	}
}

// Fields of the TraceEvent.
func (TraceEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("trace_id"),
		field.Time("ts").
			Default(time.Now),
		field.String("campaign_id").
			Optional(),
		field.String("step").
			Optional(),
		field.String("phase"),
		field.Bool("ok").
			Default(true),
		field.Int64("ms").
			Default(0),
		field.Int("batch_index").
			Optional(),
		field.String("contact_id").
			Optional(),
		field.String("phone_masked").
			Optional().
			Comment("Already masked before it reaches the sink row"),
		field.JSON("extra", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the TraceEvent.
func (TraceEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "ts"),
		index.Fields("phase"),
	}
}

// Setting is a process-wide key/value row with a JSON value. Keys are
// namespaced strings ("turbo.config", "webhook_verify_token", ...).
type Setting struct {
	ent.Schema
}

// Fields of the Setting.
func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("key").
			Unique().
			Immutable(),
		field.JSON("value", json.RawMessage{}),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
