package usage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/llm"
)

// fakeStore captures batches for assertions.
type fakeStore struct {
	mu      sync.Mutex
	batches [][]Record
	err     error
}

func (s *fakeStore) InsertBatch(_ context.Context, records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	batch := make([]Record, len(records))
	copy(batch, records)
	s.batches = append(s.batches, batch)
	return nil
}

func (s *fakeStore) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.batches {
		n += len(b)
	}
	return n
}

type fakeInvalidator struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeInvalidator) Invalidate(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
}

func (f *fakeInvalidator) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestTracker_FlushesOnStop(t *testing.T) {
	store := &fakeStore{}
	inv := &fakeInvalidator{}
	tracker := NewTracker(store, inv)
	tracker.Start()

	for i := 0; i < 5; i++ {
		tracker.Record(llm.CallRecord{
			Provider:  "openai",
			Model:     "gpt-4o-mini",
			Endpoint:  "generate",
			Operation: "qualification",
			Usage:     llm.TokenUsage{PromptTokens: 100, CompletionTokens: 20, TotalTokens: 120},
			LatencyMS: 250,
			CostUSD:   0.0001,
			Success:   true,
			CacheHit:  true,
		})
	}
	tracker.Stop()

	assert.Equal(t, 5, store.total())
	assert.GreaterOrEqual(t, inv.count(), 1)

	// Records get IDs, timestamps, and faithful field mapping.
	rec := store.batches[0][0]
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Equal(t, "openai", rec.Provider)
	assert.Equal(t, "qualification", rec.Operation)
	assert.Equal(t, 120, rec.TotalTokens)
	assert.True(t, rec.Success)
	assert.True(t, rec.CacheHit)
}

func TestTracker_BatchSizeTriggersFlush(t *testing.T) {
	store := &fakeStore{}
	tracker := NewTracker(store, nil)
	tracker.Start()

	for i := 0; i < flushBatchSize+10; i++ {
		tracker.Record(llm.CallRecord{Provider: "openai", Success: true})
	}

	// The full batch should flush without waiting for the ticker.
	require.Eventually(t, func() bool {
		return store.total() >= flushBatchSize
	}, 2*time.Second, 10*time.Millisecond)

	tracker.Stop()
	assert.Equal(t, flushBatchSize+10, store.total())
}

func TestTracker_RecordNeverBlocks(t *testing.T) {
	// No flush goroutine running: the buffer fills and overflow is dropped.
	store := &fakeStore{}
	tracker := NewTracker(store, nil)

	start := time.Now()
	for i := 0; i < recordQueueCap+50; i++ {
		tracker.Record(llm.CallRecord{Provider: "openai"})
	}
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 2*time.Second, "Record must not block under pressure")
	assert.Equal(t, int64(50), tracker.Dropped())
}

func TestTracker_FailedCallsRecorded(t *testing.T) {
	store := &fakeStore{}
	tracker := NewTracker(store, nil)
	tracker.Start()

	tracker.Record(llm.CallRecord{
		Provider:     "anthropic",
		Endpoint:     "generate",
		Operation:    "enrichment",
		Success:      false,
		ErrorMessage: "anthropic: upstream_unavailable: 503",
	})
	tracker.Stop()

	require.Equal(t, 1, store.total())
	rec := store.batches[0][0]
	assert.False(t, rec.Success)
	assert.Contains(t, rec.ErrorMessage, "upstream_unavailable")
}
