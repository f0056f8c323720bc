package usage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/ScientiaCapital/sales-agent/test/database"
)

// seedCalls inserts records with sane defaults for the fields a test does
// not care about.
func seedCalls(t *testing.T, store Store, recs []Record) {
	t.Helper()
	for i := range recs {
		if recs[i].ID == "" {
			recs[i].ID = uuid.New().String()
		}
		if recs[i].Provider == "" {
			recs[i].Provider = "openai"
		}
		if recs[i].Model == "" {
			recs[i].Model = "gpt-4o-mini"
		}
		if recs[i].Endpoint == "" {
			recs[i].Endpoint = "generate"
		}
		if recs[i].Operation == "" {
			recs[i].Operation = "qualification"
		}
		if recs[i].CreatedAt.IsZero() {
			recs[i].CreatedAt = time.Now().UTC()
		}
	}
	require.NoError(t, store.InsertBatch(context.Background(), recs))
}

func TestReporter_WindowIncludesCacheHitRate(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewEntStore(client.Client)
	reporter := NewReporter(client.DB(), nil)
	ctx := context.Background()

	seedCalls(t, store, []Record{
		{Success: true, CacheHit: true, TotalTokens: 100, LatencyMS: 200},
		{Success: true, TotalTokens: 100, LatencyMS: 200},
		{Success: true, TotalTokens: 100, LatencyMS: 200},
		{Success: false, TotalTokens: 0, LatencyMS: 900},
	})

	now := time.Now().UTC()
	summary, err := reporter.Window(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalCalls)
	assert.InDelta(t, 0.25, summary.CacheHit, 1e-9)
	assert.InDelta(t, 0.75, summary.SuccessRate, 1e-9)
}

func TestReporter_Aggregates(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewEntStore(client.Client)
	reporter := NewReporter(client.DB(), nil)
	ctx := context.Background()

	today := time.Now().UTC().Truncate(24 * time.Hour).Add(6 * time.Hour)
	yesterday := today.AddDate(0, 0, -1)
	seedCalls(t, store, []Record{
		{Provider: "openai", Success: true, TotalTokens: 100, CostUSD: 0.01, CreatedAt: yesterday},
		{Provider: "openai", Success: true, TotalTokens: 200, CostUSD: 0.02, CreatedAt: today},
		{Provider: "anthropic", Success: false, TotalTokens: 50, CostUSD: 0.05, CreatedAt: today},
	})

	start := yesterday.Add(-time.Hour)
	end := today.Add(time.Hour)

	buckets, err := reporter.Aggregates(ctx, start, end, IntervalDay, "")
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, 1, buckets[0].Calls)
	assert.Equal(t, 2, buckets[1].Calls)
	assert.InDelta(t, 0.07, buckets[1].CostUSD, 1e-9)
	assert.True(t, buckets[0].Bucket.Before(buckets[1].Bucket))

	// Provider filter narrows the series to one vendor's calls.
	buckets, err = reporter.Aggregates(ctx, start, end, IntervalDay, "openai")
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, 1, buckets[1].Calls)
	assert.Equal(t, 200, buckets[1].Tokens)
	assert.InDelta(t, 1.0, buckets[1].SuccessRate, 1e-9)
}

func TestReporter_Aggregates_RejectsBadInterval(t *testing.T) {
	reporter := NewReporter(nil, nil)

	_, err := reporter.Aggregates(context.Background(), time.Now().Add(-time.Hour), time.Now(), "week", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadInterval)
}

func TestReporter_LatencyPercentilesPerProvider(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewEntStore(client.Client)
	reporter := NewReporter(client.DB(), nil)
	ctx := context.Background()

	seedCalls(t, store, []Record{
		{Provider: "openai", Success: true, LatencyMS: 100},
		{Provider: "openai", Success: true, LatencyMS: 100},
		{Provider: "anthropic", Success: true, LatencyMS: 900},
		{Provider: "anthropic", Success: true, LatencyMS: 900},
	})

	now := time.Now().UTC()
	start, end := now.Add(-time.Hour), now.Add(time.Hour)

	p, err := reporter.LatencyPercentiles(ctx, start, end, "openai")
	require.NoError(t, err)
	assert.InDelta(t, 100, p.P50, 1e-9)
	assert.InDelta(t, 100, p.P95, 1e-9)

	p, err = reporter.LatencyPercentiles(ctx, start, end, "anthropic")
	require.NoError(t, err)
	assert.InDelta(t, 900, p.P95, 1e-9)
}

func TestReporter_SuccessRatePerProvider(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewEntStore(client.Client)
	reporter := NewReporter(client.DB(), nil)
	ctx := context.Background()

	seedCalls(t, store, []Record{
		{Provider: "openai", Success: true},
		{Provider: "openai", Success: true},
		{Provider: "anthropic", Success: true},
		{Provider: "anthropic", Success: false},
	})

	now := time.Now().UTC()
	start, end := now.Add(-time.Hour), now.Add(time.Hour)

	rate, err := reporter.SuccessRate(ctx, start, end, "openai")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rate, 1e-9)

	rate, err = reporter.SuccessRate(ctx, start, end, "anthropic")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rate, 1e-9)

	// An empty window reports a clean slate, not zero.
	rate, err = reporter.SuccessRate(ctx, start.Add(-48*time.Hour), start.Add(-47*time.Hour), "openai")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rate, 1e-9)
}
