package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/models"
	testdb "github.com/ScientiaCapital/sales-agent/test/database"
)

func TestSyncLogService_RunLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSyncLogService(client.Client)
	ctx := context.Background()

	syncID := uuid.New().String()
	log, err := service.CreateSyncLog(ctx, models.CreateSyncLogRequest{
		SyncID:    syncID,
		Platform:  "hubspot",
		Direction: "import",
	})
	require.NoError(t, err)
	assert.Equal(t, "running", string(log.Status))

	err = service.UpdateCounts(ctx, syncID, models.SyncRunCounts{
		Processed: 50, Created: 10, Updated: 38, Failed: 2,
		Errors: []string{"contact hs-77: missing email"},
	})
	require.NoError(t, err)

	err = service.Finalize(ctx, syncID, "completed", models.SyncRunCounts{
		Processed: 120, Created: 25, Updated: 90, Failed: 5,
	})
	require.NoError(t, err)

	status, err := service.GetSyncStatus(ctx, syncID)
	require.NoError(t, err)
	assert.Equal(t, "completed", status.Status)
	assert.Equal(t, 120, status.Counts.Processed)
	require.NotNil(t, status.CompletedAt)
}

func TestSyncLogService_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSyncLogService(client.Client)
	ctx := context.Background()

	_, err := service.CreateSyncLog(ctx, models.CreateSyncLogRequest{
		SyncID: uuid.New().String(), Platform: "hubspot", Direction: "sideways",
	})
	assert.True(t, IsValidationError(err))

	err = service.Finalize(ctx, uuid.New().String(), "paused", models.SyncRunCounts{})
	assert.True(t, IsValidationError(err))
}

func TestSyncLogService_HasRunningSync(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSyncLogService(client.Client)
	ctx := context.Background()

	running, err := service.HasRunningSync(ctx, "apollo")
	require.NoError(t, err)
	assert.False(t, running)

	syncID := uuid.New().String()
	_, err = service.CreateSyncLog(ctx, models.CreateSyncLogRequest{
		SyncID: syncID, Platform: "apollo", Direction: "import",
	})
	require.NoError(t, err)

	running, err = service.HasRunningSync(ctx, "apollo")
	require.NoError(t, err)
	assert.True(t, running)

	require.NoError(t, service.Finalize(ctx, syncID, "rate_limited", models.SyncRunCounts{Processed: 3}))

	running, err = service.HasRunningSync(ctx, "apollo")
	require.NoError(t, err)
	assert.False(t, running)
}

func TestSyncLogService_HistoryAndLatest(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSyncLogService(client.Client)
	ctx := context.Background()

	var last string
	for i := 0; i < 3; i++ {
		last = uuid.New().String()
		_, err := service.CreateSyncLog(ctx, models.CreateSyncLogRequest{
			SyncID: last, Platform: "hubspot", Direction: "bidirectional",
		})
		require.NoError(t, err)
		require.NoError(t, service.Finalize(ctx, last, "completed", models.SyncRunCounts{Processed: i}))
	}
	other := uuid.New().String()
	_, err := service.CreateSyncLog(ctx, models.CreateSyncLogRequest{
		SyncID: other, Platform: "apollo", Direction: "import",
	})
	require.NoError(t, err)

	history, err := service.History(ctx, "hubspot", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	for _, h := range history {
		assert.Equal(t, "hubspot", h.Platform)
	}

	all, err := service.History(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	latest, err := service.LatestRun(ctx, "apollo")
	require.NoError(t, err)
	assert.Equal(t, other, latest.SyncID)

	_, err = service.LatestRun(ctx, "salesloft")
	assert.ErrorIs(t, err, ErrNotFound)
}
