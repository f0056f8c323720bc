// Package crm syncs the local contact mirror against external sales
// platforms. Platform adapters expose a uniform record surface; the engine
// runs reconciliation with conflict resolution, per-platform rate budgets,
// and a dead-letter stream for units that fail past their retries.
package crm

import (
	"context"
	"errors"
	"time"
)

// ErrReadOnly is returned by Upsert on platforms without write capability.
var ErrReadOnly = errors.New("platform is read-only")

// Record is one external contact in platform-independent form.
type Record struct {
	ExternalID string                 `json:"external_id"`
	Email      string                 `json:"email,omitempty"`
	FirstName  string                 `json:"first_name,omitempty"`
	LastName   string                 `json:"last_name,omitempty"`
	Company    string                 `json:"company,omitempty"`
	Title      string                 `json:"title,omitempty"`
	Phone      string                 `json:"phone,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// Page is one slice of a paginated listing. An empty NextCursor means the
// listing is exhausted.
type Page struct {
	Records    []Record
	NextCursor string

	// RateRemaining is the platform's reported remaining call budget, or -1
	// when the platform does not report one.
	RateRemaining int
}

// Filters narrows a listing; keys are platform-interpreted.
type Filters map[string]string

// WebhookEvent is a platform change notification in normalized form.
type WebhookEvent struct {
	Type       string    `json:"type"` // contact.created, contact.updated, contact.deleted
	ExternalID string    `json:"external_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Platform is one external CRM adapter. List paginates with an opaque
// cursor; Upsert returns ErrReadOnly where the platform cannot be written.
type Platform interface {
	Tag() string
	List(ctx context.Context, filters Filters, cursor string) (*Page, error)
	Get(ctx context.Context, externalID string) (*Record, error)
	Upsert(ctx context.Context, rec *Record) (*Record, error)
	ParseWebhookEvent(payload []byte) (*WebhookEvent, error)
}
