package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CRMSyncLog holds the schema definition for the CRMSyncLog entity.
// One record per sync run.
type CRMSyncLog struct {
	ent.Schema
}

// Fields of the CRMSyncLog.
func (CRMSyncLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sync_id").
			Unique().
			Immutable(),
		field.String("platform").
			Immutable(),
		field.Enum("direction").
			Values("import", "export", "bidirectional").
			Immutable(),
		field.Enum("status").
			Values("running", "completed", "failed", "rate_limited").
			Default("running"),

		field.Int("processed").
			Default(0),
		field.Int("created").
			Default(0),
		field.Int("updated").
			Default(0),
		field.Int("failed").
			Default(0),
		field.JSON("errors", []string{}).
			Optional(),

		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the CRMSyncLog.
func (CRMSyncLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("platform", "started_at"),
		index.Fields("status"),
	}
}
