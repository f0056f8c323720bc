package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ScientiaCapital/sales-agent/ent"
	"github.com/ScientiaCapital/sales-agent/ent/crmcredential"
	"github.com/ScientiaCapital/sales-agent/pkg/crypto"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
)

// CredentialService stores platform credentials encrypted at rest.
// Plaintext tokens exist only in memory, decrypted just-in-time.
type CredentialService struct {
	client *ent.Client
	cipher *crypto.Cipher
}

// NewCredentialService creates a new CredentialService
func NewCredentialService(client *ent.Client, cipher *crypto.Cipher) *CredentialService {
	return &CredentialService{client: client, cipher: cipher}
}

// SaveCredential encrypts and upserts tokens for (tenant, platform).
func (s *CredentialService) SaveCredential(ctx context.Context, req models.SaveCredentialRequest) error {
	if req.TenantID == "" {
		return NewValidationError("tenant_id", "required")
	}
	if req.Platform == "" {
		return NewValidationError("platform", "required")
	}
	if req.AccessToken == "" {
		return NewValidationError("access_token", "required")
	}

	accessEnc, err := s.cipher.Encrypt([]byte(req.AccessToken))
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}
	var refreshEnc []byte
	if req.RefreshToken != "" {
		refreshEnc, err = s.cipher.Encrypt([]byte(req.RefreshToken))
		if err != nil {
			return fmt.Errorf("failed to encrypt refresh token: %w", err)
		}
	}

	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	existing, err := s.client.CRMCredential.Query().
		Where(
			crmcredential.TenantIDEQ(req.TenantID),
			crmcredential.PlatformEQ(req.Platform),
		).
		Only(writeCtx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to query credential: %w", err)
	}

	if existing != nil {
		update := s.client.CRMCredential.UpdateOneID(existing.ID).
			SetAccessTokenEncrypted(accessEnc)
		if refreshEnc != nil {
			update = update.SetRefreshTokenEncrypted(refreshEnc)
		}
		if req.ExpiresAt != nil {
			update = update.SetExpiresAt(*req.ExpiresAt)
		}
		if err := update.Exec(writeCtx); err != nil {
			return fmt.Errorf("failed to update credential: %w", err)
		}
		return nil
	}

	builder := s.client.CRMCredential.Create().
		SetID(uuid.New().String()).
		SetTenantID(req.TenantID).
		SetPlatform(req.Platform).
		SetAccessTokenEncrypted(accessEnc)
	if refreshEnc != nil {
		builder.SetRefreshTokenEncrypted(refreshEnc)
	}
	if req.ExpiresAt != nil {
		builder.SetExpiresAt(*req.ExpiresAt)
	}
	if _, err := builder.Save(writeCtx); err != nil {
		return fmt.Errorf("failed to create credential: %w", err)
	}
	return nil
}

// AccessToken decrypts and returns the access token for (tenant, platform).
func (s *CredentialService) AccessToken(ctx context.Context, tenantID, platform string) (string, error) {
	cred, err := s.client.CRMCredential.Query().
		Where(
			crmcredential.TenantIDEQ(tenantID),
			crmcredential.PlatformEQ(platform),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get credential: %w", err)
	}

	plain, err := s.cipher.Decrypt(cred.AccessTokenEncrypted)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt access token: %w", err)
	}
	return string(plain), nil
}

// Expired reports whether the stored credential has passed its expiry.
func (s *CredentialService) Expired(ctx context.Context, tenantID, platform string) (bool, error) {
	cred, err := s.client.CRMCredential.Query().
		Where(
			crmcredential.TenantIDEQ(tenantID),
			crmcredential.PlatformEQ(platform),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to get credential: %w", err)
	}
	if cred.ExpiresAt == nil {
		return false, nil
	}
	return cred.ExpiresAt.Before(time.Now()), nil
}
