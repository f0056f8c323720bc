// Package models defines the request/response types shared between the API
// layer and the services layer.
package models

// CreateLeadRequest creates a prospect record.
type CreateLeadRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Website     string `json:"website,omitempty"`
	CompanySize string `json:"company_size,omitempty"`
	Industry    string `json:"industry,omitempty"`
	ContactName string `json:"contact_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Title       string `json:"title,omitempty"`
	Phone       string `json:"phone,omitempty"`
	ProfileURL  string `json:"profile_url,omitempty"`
}

// QualificationResult records the outcome of scoring a lead.
type QualificationResult struct {
	Score     int    `json:"score"`
	Tier      string `json:"tier"`
	Rationale string `json:"rationale"`
	LatencyMS int    `json:"latency_ms"`
}

// LeadFilter narrows lead listings.
type LeadFilter struct {
	Tier   string `form:"tier"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}
