package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CRMCredential holds the schema definition for the CRMCredential entity.
// Encrypted platform credentials per (tenant, platform); ciphertext only,
// decrypted just-in-time by the sync engine.
type CRMCredential struct {
	ent.Schema
}

// Fields of the CRMCredential.
func (CRMCredential) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("credential_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("platform").
			Immutable(),
		field.Bytes("access_token_encrypted"),
		field.Bytes("refresh_token_encrypted").
			Optional(),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the CRMCredential.
func (CRMCredential) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "platform").
			Unique(),
	}
}
