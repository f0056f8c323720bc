package crm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeadLetters_PutAndRead(t *testing.T) {
	b, _ := newTestBus(t)
	dlq := NewDeadLetters(b)
	ctx := context.Background()

	require.NoError(t, dlq.Put(ctx, "hubspot", "sync-1", "ext-1", errors.New("upstream_unavailable: 503")))
	require.NoError(t, dlq.Put(ctx, "hubspot", "sync-1", "ext-2", errors.New("timeout")))
	require.NoError(t, dlq.Put(ctx, "apollo", "sync-2", "ext-9", errors.New("protocol_error")))

	depth, err := dlq.Depth(ctx, "hubspot")
	require.NoError(t, err)
	assert.Equal(t, int64(2), depth)

	entries, err := dlq.Entries(ctx, "hubspot", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ext-1", entries[0].ExternalID)
	assert.Equal(t, "sync-1", entries[0].SyncID)
	assert.Contains(t, entries[0].Error, "503")
	assert.NotEmpty(t, entries[0].FailedAt)

	// Streams are per platform.
	depth, err = dlq.Depth(ctx, "apollo")
	require.NoError(t, err)
	assert.Equal(t, int64(1), depth)
}

func TestDeadLetters_EmptyStream(t *testing.T) {
	b, _ := newTestBus(t)
	dlq := NewDeadLetters(b)
	ctx := context.Background()

	depth, err := dlq.Depth(ctx, "salesloft")
	require.NoError(t, err)
	assert.Zero(t, depth)

	entries, err := dlq.Entries(ctx, "salesloft", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
