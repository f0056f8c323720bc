package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CRMContact holds the schema definition for the CRMContact entity.
// Local mirror of one external platform record, unique per (platform, external_id).
type CRMContact struct {
	ent.Schema
}

// Fields of the CRMContact.
func (CRMContact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("contact_id").
			Unique().
			Immutable(),
		field.String("platform").
			Immutable().
			Comment("Platform tag, e.g. 'hubspot', 'apollo'"),
		field.String("external_id").
			Immutable(),

		field.String("email").
			Optional(),
		field.String("first_name").
			Optional(),
		field.String("last_name").
			Optional(),
		field.String("company").
			Optional(),
		field.String("title").
			Optional(),
		field.String("phone").
			Optional(),
		field.JSON("properties", map[string]interface{}{}).
			Optional().
			Comment("Remaining platform fields, keyed by platform property name"),

		field.Bytes("enrichment_encrypted").
			Optional().
			Comment("AES-GCM ciphertext of the enrichment blob"),

		field.Bool("needs_review").
			Default(false).
			Comment("Set when a critical field conflicted during sync"),

		field.Time("last_synced_at").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the CRMContact.
func (CRMContact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("platform", "external_id").
			Unique(),
		index.Fields("email"),
		index.Fields("last_synced_at"),
	}
}
