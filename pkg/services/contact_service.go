package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ScientiaCapital/sales-agent/ent"
	"github.com/ScientiaCapital/sales-agent/ent/crmcontact"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
)

// ContactService manages the local mirror of external CRM records.
type ContactService struct {
	client *ent.Client
}

// NewContactService creates a new ContactService
func NewContactService(client *ent.Client) *ContactService {
	return &ContactService{client: client}
}

// UpsertContact creates or updates the mirror row for one platform record,
// stamping last_synced_at. Returns the contact and whether it was created.
func (s *ContactService) UpsertContact(ctx context.Context, req models.UpsertContactRequest) (*ent.CRMContact, bool, error) {
	if req.Platform == "" {
		return nil, false, NewValidationError("platform", "required")
	}
	if req.ExternalID == "" {
		return nil, false, NewValidationError("external_id", "required")
	}

	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	existing, err := s.GetByExternalID(writeCtx, req.Platform, req.ExternalID)
	if err != nil && err != ErrNotFound {
		return nil, false, err
	}

	now := time.Now()
	if existing == nil {
		c, err := s.client.CRMContact.Create().
			SetID(uuid.New().String()).
			SetPlatform(req.Platform).
			SetExternalID(req.ExternalID).
			SetEmail(req.Email).
			SetFirstName(req.FirstName).
			SetLastName(req.LastName).
			SetCompany(req.Company).
			SetTitle(req.Title).
			SetPhone(req.Phone).
			SetProperties(req.Properties).
			SetLastSyncedAt(now).
			SetUpdatedAt(now).
			Save(writeCtx)
		if err != nil {
			return nil, false, fmt.Errorf("failed to create contact: %w", err)
		}
		return c, true, nil
	}

	c, err := s.client.CRMContact.UpdateOneID(existing.ID).
		SetEmail(req.Email).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetCompany(req.Company).
		SetTitle(req.Title).
		SetPhone(req.Phone).
		SetProperties(req.Properties).
		SetLastSyncedAt(now).
		SetUpdatedAt(now).
		Save(writeCtx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update contact: %w", err)
	}
	return c, false, nil
}

// UpdateContact applies an application-originated edit to the mirror row.
// last_synced_at is left untouched so the next sync run treats the row as
// locally modified.
func (s *ContactService) UpdateContact(ctx context.Context, contactID string, req models.UpsertContactRequest) (*ent.CRMContact, error) {
	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	c, err := s.client.CRMContact.UpdateOneID(contactID).
		SetEmail(req.Email).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetCompany(req.Company).
		SetTitle(req.Title).
		SetPhone(req.Phone).
		SetProperties(req.Properties).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return c, nil
}

// GetByExternalID looks up the mirror row for a platform record.
func (s *ContactService) GetByExternalID(ctx context.Context, platform, externalID string) (*ent.CRMContact, error) {
	c, err := s.client.CRMContact.Query().
		Where(
			crmcontact.PlatformEQ(platform),
			crmcontact.ExternalIDEQ(externalID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return c, nil
}

// ListModifiedSince returns contacts whose local copy changed after the
// given time. Used to compute the export set for read-write platforms.
func (s *ContactService) ListModifiedSince(ctx context.Context, platform string, since time.Time) ([]*ent.CRMContact, error) {
	contacts, err := s.client.CRMContact.Query().
		Where(
			crmcontact.PlatformEQ(platform),
			crmcontact.UpdatedAtGT(since),
		).
		Order(ent.Asc(crmcontact.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list modified contacts: %w", err)
	}
	return contacts, nil
}

// FlagForReview marks a contact whose critical fields conflicted during
// reconciliation.
func (s *ContactService) FlagForReview(ctx context.Context, contactID string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.CRMContact.UpdateOneID(contactID).
		SetNeedsReview(true).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to flag contact for review: %w", err)
	}
	return nil
}

// SetEnrichment stores the encrypted enrichment blob on a contact.
func (s *ContactService) SetEnrichment(ctx context.Context, contactID string, ciphertext []byte) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.CRMContact.UpdateOneID(contactID).
		SetEnrichmentEncrypted(ciphertext).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set enrichment: %w", err)
	}
	return nil
}
