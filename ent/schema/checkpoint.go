package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for the Checkpoint entity.
// Opaque graph state persisted per (execution_id, step) before each node runs.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("execution_id").
			Immutable(),
		field.Int("step").
			Immutable(),
		field.String("node").
			Immutable().
			Comment("Node about to execute when this checkpoint was taken"),
		field.Bytes("state").
			Comment("JSON-encoded graph state"),
		field.Bool("suspended").
			Default(false).
			Comment("True when a node returned suspend()"),
		field.String("suspend_reason").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", AgentExecution.Type).
			Ref("checkpoints").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		// Latest checkpoint per execution.
		index.Fields("execution_id", "step").
			Unique(),
		index.Fields("created_at"),
	}
}
