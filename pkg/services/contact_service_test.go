package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/models"
	testdb "github.com/ScientiaCapital/sales-agent/test/database"
)

func TestContactService_UpsertCreatesAndUpdates(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewContactService(client.Client)
	ctx := context.Background()

	req := models.UpsertContactRequest{
		Platform:   "hubspot",
		ExternalID: "hs-1001",
		Email:      "pat@example.com",
		FirstName:  "Pat",
		LastName:   "Jones",
		Company:    "Example Corp",
	}

	c, created, err := service.UpsertContact(ctx, req)
	require.NoError(t, err)
	assert.True(t, created)
	assert.False(t, c.LastSyncedAt.IsZero())
	// Sync writes keep updated_at and last_synced_at aligned so the row
	// does not read as locally modified.
	assert.Equal(t, c.LastSyncedAt, c.UpdatedAt)

	// Same (platform, external_id) updates in place.
	req.Title = "VP Sales"
	c2, created, err := service.UpsertContact(ctx, req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, c.ID, c2.ID)
	assert.Equal(t, "VP Sales", c2.Title)
}

func TestContactService_UpsertValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewContactService(client.Client)
	ctx := context.Background()

	_, _, err := service.UpsertContact(ctx, models.UpsertContactRequest{ExternalID: "x"})
	assert.True(t, IsValidationError(err))

	_, _, err = service.UpsertContact(ctx, models.UpsertContactRequest{Platform: "hubspot"})
	assert.True(t, IsValidationError(err))
}

func TestContactService_SamePlatformDifferentIDs(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewContactService(client.Client)
	ctx := context.Background()

	_, created, err := service.UpsertContact(ctx, models.UpsertContactRequest{
		Platform: "apollo", ExternalID: "ap-1",
	})
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = service.UpsertContact(ctx, models.UpsertContactRequest{
		Platform: "apollo", ExternalID: "ap-2",
	})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestContactService_FlagForReview(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewContactService(client.Client)
	ctx := context.Background()

	c, _, err := service.UpsertContact(ctx, models.UpsertContactRequest{
		Platform: "hubspot", ExternalID: "hs-2",
	})
	require.NoError(t, err)
	assert.False(t, c.NeedsReview)

	require.NoError(t, service.FlagForReview(ctx, c.ID))

	got, err := service.GetByExternalID(ctx, "hubspot", "hs-2")
	require.NoError(t, err)
	assert.True(t, got.NeedsReview)

	t.Run("unknown contact", func(t *testing.T) {
		err := service.FlagForReview(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestContactService_UpdateContactLeavesSyncStamp(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewContactService(client.Client)
	ctx := context.Background()

	c, _, err := service.UpsertContact(ctx, models.UpsertContactRequest{
		Platform: "hubspot", ExternalID: "hs-3", Email: "pat@example.com", Title: "VP Sales",
	})
	require.NoError(t, err)

	edited, err := service.UpdateContact(ctx, c.ID, models.UpsertContactRequest{
		Email: "pat@example.com", Title: "CRO",
	})
	require.NoError(t, err)
	assert.Equal(t, "CRO", edited.Title)
	assert.WithinDuration(t, c.LastSyncedAt, edited.LastSyncedAt, time.Millisecond)
	assert.True(t, edited.UpdatedAt.After(edited.LastSyncedAt))

	t.Run("unknown contact", func(t *testing.T) {
		_, err := service.UpdateContact(ctx, "nonexistent", models.UpsertContactRequest{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestContactService_SetEnrichment(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewContactService(client.Client)
	ctx := context.Background()

	c, _, err := service.UpsertContact(ctx, models.UpsertContactRequest{
		Platform: "salesloft", ExternalID: "sl-1",
	})
	require.NoError(t, err)

	blob := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	require.NoError(t, service.SetEnrichment(ctx, c.ID, blob))

	got, err := service.GetByExternalID(ctx, "salesloft", "sl-1")
	require.NoError(t, err)
	assert.Equal(t, blob, got.EnrichmentEncrypted)
}

func TestContactService_ListModifiedSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewContactService(client.Client)
	ctx := context.Background()

	cutoff := time.Now().Add(-time.Minute)

	_, _, err := service.UpsertContact(ctx, models.UpsertContactRequest{
		Platform: "hubspot", ExternalID: "hs-10",
	})
	require.NoError(t, err)
	_, _, err = service.UpsertContact(ctx, models.UpsertContactRequest{
		Platform: "apollo", ExternalID: "ap-10",
	})
	require.NoError(t, err)

	modified, err := service.ListModifiedSince(ctx, "hubspot", cutoff)
	require.NoError(t, err)
	require.Len(t, modified, 1)
	assert.Equal(t, "hs-10", modified[0].ExternalID)

	none, err := service.ListModifiedSince(ctx, "hubspot", time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Empty(t, none)
}
