package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ScientiaCapital/sales-agent/ent"
	"github.com/ScientiaCapital/sales-agent/ent/lead"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
)

// LeadService manages prospect records and their qualification outcomes.
type LeadService struct {
	client *ent.Client
}

// NewLeadService creates a new LeadService
func NewLeadService(client *ent.Client) *LeadService {
	return &LeadService{client: client}
}

// CreateLead creates a new prospect record.
func (s *LeadService) CreateLead(httpCtx context.Context, req models.CreateLeadRequest) (*ent.Lead, error) {
	if req.CompanyName == "" {
		return nil, NewValidationError("company_name", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	l, err := s.client.Lead.Create().
		SetID(uuid.New().String()).
		SetCompanyName(req.CompanyName).
		SetWebsite(req.Website).
		SetCompanySize(req.CompanySize).
		SetIndustry(req.Industry).
		SetContactName(req.ContactName).
		SetEmail(req.Email).
		SetTitle(req.Title).
		SetPhone(req.Phone).
		SetProfileURL(req.ProfileURL).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return l, nil
}

// GetLeadByID retrieves a lead by ID.
func (s *LeadService) GetLeadByID(ctx context.Context, leadID string) (*ent.Lead, error) {
	l, err := s.client.Lead.Get(ctx, leadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return l, nil
}

// ListLeads retrieves leads newest-first with optional tier filtering.
func (s *LeadService) ListLeads(ctx context.Context, filter models.LeadFilter) ([]*ent.Lead, error) {
	query := s.client.Lead.Query().
		Order(ent.Desc(lead.FieldCreatedAt))

	if filter.Tier != "" {
		query = query.Where(lead.TierEQ(lead.Tier(filter.Tier)))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	leads, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// RecordQualification stores a scoring outcome on the lead.
func (s *LeadService) RecordQualification(ctx context.Context, leadID string, result models.QualificationResult) error {
	if result.Score < 0 || result.Score > 100 {
		return NewValidationError("score", "must be in [0,100]")
	}
	switch result.Tier {
	case "hot", "warm", "cold", "unqualified":
	default:
		return NewValidationError("tier", "invalid: must be hot, warm, cold, or unqualified")
	}

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.Lead.UpdateOneID(leadID).
		SetQualificationScore(result.Score).
		SetTier(lead.Tier(result.Tier)).
		SetQualificationRationale(result.Rationale).
		SetQualificationLatencyMs(result.LatencyMS).
		SetQualifiedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record qualification: %w", err)
	}
	return nil
}

// MergeAdditionalData shallow-merges discovered fields (ATL contacts,
// insights) into the lead's free-form data.
func (s *LeadService) MergeAdditionalData(ctx context.Context, leadID string, data map[string]interface{}) error {
	if len(data) == 0 {
		return nil
	}

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	l, err := s.client.Lead.Get(writeCtx, leadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get lead: %w", err)
	}

	merged := make(map[string]interface{}, len(l.AdditionalData)+len(data))
	for k, v := range l.AdditionalData {
		merged[k] = v
	}
	for k, v := range data {
		merged[k] = v
	}

	if err := s.client.Lead.UpdateOneID(leadID).SetAdditionalData(merged).Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to merge additional data: %w", err)
	}
	return nil
}
