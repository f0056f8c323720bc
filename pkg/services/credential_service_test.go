package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/crypto"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
	testdb "github.com/ScientiaCapital/sales-agent/test/database"
)

func setupTestCredentialService(t *testing.T) *CredentialService {
	client := testdb.NewTestClient(t)
	cipher, err := crypto.NewCipher(bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)
	return NewCredentialService(client.Client, cipher)
}

func TestCredentialService_SaveAndDecrypt(t *testing.T) {
	service := setupTestCredentialService(t)
	ctx := context.Background()

	err := service.SaveCredential(ctx, models.SaveCredentialRequest{
		TenantID:    "tenant-1",
		Platform:    "hubspot",
		AccessToken: "pat-na1-original",
	})
	require.NoError(t, err)

	token, err := service.AccessToken(ctx, "tenant-1", "hubspot")
	require.NoError(t, err)
	assert.Equal(t, "pat-na1-original", token)
}

func TestCredentialService_UpsertReplacesToken(t *testing.T) {
	service := setupTestCredentialService(t)
	ctx := context.Background()

	require.NoError(t, service.SaveCredential(ctx, models.SaveCredentialRequest{
		TenantID:    "tenant-1",
		Platform:    "apollo",
		AccessToken: "old-token",
	}))
	require.NoError(t, service.SaveCredential(ctx, models.SaveCredentialRequest{
		TenantID:    "tenant-1",
		Platform:    "apollo",
		AccessToken: "new-token",
	}))

	token, err := service.AccessToken(ctx, "tenant-1", "apollo")
	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
}

func TestCredentialService_Validation(t *testing.T) {
	service := setupTestCredentialService(t)
	ctx := context.Background()

	err := service.SaveCredential(ctx, models.SaveCredentialRequest{
		Platform: "hubspot", AccessToken: "tok",
	})
	assert.True(t, IsValidationError(err))

	err = service.SaveCredential(ctx, models.SaveCredentialRequest{
		TenantID: "tenant-1", AccessToken: "tok",
	})
	assert.True(t, IsValidationError(err))

	err = service.SaveCredential(ctx, models.SaveCredentialRequest{
		TenantID: "tenant-1", Platform: "hubspot",
	})
	assert.True(t, IsValidationError(err))
}

func TestCredentialService_NotFound(t *testing.T) {
	service := setupTestCredentialService(t)

	_, err := service.AccessToken(context.Background(), "tenant-x", "hubspot")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCredentialService_Expired(t *testing.T) {
	service := setupTestCredentialService(t)
	ctx := context.Background()

	past := time.Now().Add(-time.Hour)
	require.NoError(t, service.SaveCredential(ctx, models.SaveCredentialRequest{
		TenantID:    "tenant-1",
		Platform:    "salesloft",
		AccessToken: "tok",
		ExpiresAt:   &past,
	}))

	expired, err := service.Expired(ctx, "tenant-1", "salesloft")
	require.NoError(t, err)
	assert.True(t, expired)

	t.Run("no expiry means never expired", func(t *testing.T) {
		require.NoError(t, service.SaveCredential(ctx, models.SaveCredentialRequest{
			TenantID:    "tenant-2",
			Platform:    "salesloft",
			AccessToken: "tok",
		}))
		expired, err := service.Expired(ctx, "tenant-2", "salesloft")
		require.NoError(t, err)
		assert.False(t, expired)
	})
}
