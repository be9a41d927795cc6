package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Campaign holds the schema definition for a named outbound batch.
// Counters are maintained by the persistence gateway as aggregates and are
// reconcilable from campaign_contacts at any time.
type Campaign struct {
	ent.Schema
}

// Fields of the Campaign.
func (Campaign) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("campaign_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("template_name"),
		field.JSON("template_variables", map[string]string{}).
			Optional().
			Comment("Variable name → binding (literal or contact field reference)"),
		field.Enum("status").
			Values("draft", "scheduled", "sending", "paused", "completed", "cancelled", "failed").
			Default("draft"),
		field.Int("recipients").
			Default(0),
		field.Int("sent").
			Default(0),
		field.Int("delivered").
			Default(0),
		field.Int("read").
			Default(0),
		field.Int("failed").
			Default(0),
		field.Int("skipped").
			Default(0),
		field.Time("created_at").
			Default(time.Now),
		field.Time("scheduled_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("first_dispatch_at").
			Optional().
			Nillable().
			Comment("Set only when a scheduled campaign is materialized"),
		field.Time("last_sent_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("cancelled_at").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Dispatcher replica currently driving the campaign"),
		field.Time("last_dispatch_at").
			Optional().
			Nillable().
			Comment("Dispatch heartbeat, for orphan takeover"),
	}
}

// Indexes of the Campaign.
func (Campaign) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "scheduled_at"),
	}
}

// CampaignContact is the per-recipient row of a campaign. Status moves
// forward-only along pending → sending → (sent → delivered → read) or to
// failed/skipped; message_id correlates provider webhooks back to the row.
type CampaignContact struct {
	ent.Schema
}

// Fields of the CampaignContact.
func (CampaignContact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("contact_row_id").
			Unique().
			Immutable(),
		field.String("campaign_id"),
		field.String("contact_id").
			Optional(),
		field.String("phone"),
		field.String("name").
			Optional(),
		field.String("email").
			Optional(),
		field.Enum("status").
			Values("pending", "sending", "sent", "delivered", "read", "failed", "skipped").
			Default("pending"),
		field.String("message_id").
			Optional().
			Nillable().
			Comment("Provider-assigned id, nil until the send is accepted"),
		field.JSON("custom_fields", map[string]interface{}{}).
			Optional(),
		field.Int("attempts").
			Default(0),
		field.Time("claimed_at").
			Optional().
			Nillable().
			Comment("When the row was moved pending → sending; drives the reaper"),
		field.Time("sent_at").
			Optional().
			Nillable(),
		field.Time("delivered_at").
			Optional().
			Nillable(),
		field.Time("read_at").
			Optional().
			Nillable(),
		field.Time("skipped_at").
			Optional().
			Nillable(),
		field.String("skip_code").
			Optional(),
		field.String("skip_reason").
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Indexes of the CampaignContact.
func (CampaignContact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "status"),
		index.Fields("message_id"),
		index.Fields("status", "claimed_at"),
	}
}
