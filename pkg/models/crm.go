package models

import "time"

// TriggerSyncRequest starts a CRM sync run.
type TriggerSyncRequest struct {
	Platform  string `json:"platform" binding:"required"`
	Direction string `json:"direction,omitempty"` // import, export, bidirectional
}

// UpsertContactRequest writes one mirrored platform record.
type UpsertContactRequest struct {
	Platform   string
	ExternalID string
	Email      string
	FirstName  string
	LastName   string
	Company    string
	Title      string
	Phone      string
	Properties map[string]interface{}
}

// CreateSyncLogRequest opens a sync run record.
type CreateSyncLogRequest struct {
	SyncID    string
	Platform  string
	Direction string
}

// SyncRunCounts is the tally updated as a sync run progresses.
type SyncRunCounts struct {
	Processed int      `json:"processed"`
	Created   int      `json:"created"`
	Updated   int      `json:"updated"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// SyncStatus is the externally visible state of one sync run.
type SyncStatus struct {
	SyncID      string        `json:"sync_id"`
	Platform    string        `json:"platform"`
	Direction   string        `json:"direction"`
	Status      string        `json:"status"`
	Counts      SyncRunCounts `json:"counts"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

// SaveCredentialRequest stores encrypted platform credentials for a tenant.
type SaveCredentialRequest struct {
	TenantID     string
	Platform     string
	AccessToken  string
	RefreshToken string
	ExpiresAt    *time.Time
}
