package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApiCallLog holds the schema definition for the ApiCallLog entity.
// One immutable record per terminal provider call (success or failure).
type ApiCallLog struct {
	ent.Schema
}

// Fields of the ApiCallLog.
func (ApiCallLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("call_id").
			Unique().
			Immutable(),
		field.String("provider").
			Immutable().
			Comment("Provider tag, e.g. 'openai', 'anthropic'"),
		field.String("model").
			Immutable(),
		field.String("endpoint").
			Immutable().
			Comment("e.g. 'generate', 'generate_stream'"),
		field.Enum("operation").
			Values("qualification", "enrichment", "growth", "marketing",
				"bdr", "conversation", "embedding", "other").
			Immutable(),

		field.Int("prompt_tokens").
			Default(0).
			Immutable(),
		field.Int("completion_tokens").
			Default(0).
			Immutable(),
		field.Int("total_tokens").
			Default(0).
			Immutable(),
		field.Int("latency_ms").
			Default(0).
			Immutable(),
		field.Float("cost_usd").
			Default(0).
			Immutable(),

		field.String("user_id").
			Optional().
			Nillable().
			Immutable(),
		field.Bool("success").
			Immutable(),
		field.String("error_message").
			Optional().
			Nillable().
			Immutable(),
		field.Bool("cache_hit").
			Default(false).
			Immutable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ApiCallLog.
func (ApiCallLog) Indexes() []ent.Index {
	return []ent.Index{
		// Time-window aggregations per provider.
		index.Fields("provider", "created_at"),
		index.Fields("created_at"),
		index.Fields("operation", "created_at"),
	}
}
