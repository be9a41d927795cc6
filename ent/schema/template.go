package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/waflow/waflow/pkg/models"
)

// Template holds the schema definition for a provider-registered message
// template. Precheck reads the components to learn which variables a send
// must bind and whether they are positional or named.
type Template struct {
	ent.Schema
}

// Fields of the Template.
func (Template) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("template_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("language"),
		field.String("category").
			Optional(),
		field.Enum("parameter_format").
			Values("positional", "named").
			Default("positional"),
		field.JSON("components", []models.TemplateComponent{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Template.
func (Template) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "language").Unique(),
	}
}

// FlowSubmission is an interactive-form response attached to a provider
// message id; raw and mapped payloads are both kept.
type FlowSubmission struct {
	ent.Schema
}

// Fields of the FlowSubmission.
func (FlowSubmission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("submission_id").
			Unique().
			Immutable(),
		field.String("message_id").
			Unique(),
		field.String("flow_id").
			Optional(),
		field.String("phone"),
		field.String("campaign_id").
			Optional(),
		field.String("contact_id").
			Optional(),
		field.JSON("raw", map[string]interface{}{}),
		field.JSON("mapped", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the FlowSubmission.
func (FlowSubmission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id"),
		index.Fields("phone"),
	}
}
