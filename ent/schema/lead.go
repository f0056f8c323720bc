package schema

import (
	"errors"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
// One row per prospect moving through the agent pipeline.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lead_id").
			Unique().
			Immutable(),

		// Company descriptor
		field.String("company_name"),
		field.String("website").
			Optional(),
		field.String("company_size").
			Optional().
			Comment("Size bucket, e.g. '50-200'"),
		field.String("industry").
			Optional(),

		// Contact descriptor
		field.String("contact_name").
			Optional(),
		field.String("email").
			Optional(),
		field.String("title").
			Optional(),
		field.String("phone").
			Optional(),
		field.String("profile_url").
			Optional(),

		// Qualification outcome
		field.Int("qualification_score").
			Optional().
			Nillable().
			Validate(func(score int) error {
				if score < 0 || score > 100 {
					return errors.New("qualification_score must be in [0,100]")
				}
				return nil
			}),
		field.Enum("tier").
			Values("hot", "warm", "cold", "unqualified").
			Optional(),
		field.Text("qualification_rationale").
			Optional(),
		field.Int("qualification_latency_ms").
			Optional().
			Nillable(),
		field.Time("qualified_at").
			Optional().
			Nillable(),

		// Free-form data discovered by later stages (ATL contacts, insights).
		field.JSON("additional_data", map[string]interface{}{}).
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tier"),
		index.Fields("email"),
		index.Fields("created_at"),
	}
}
