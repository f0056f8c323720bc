// Package usage provides asynchronous API call accounting: every terminal
// provider call is recorded off the hot path, batched into PostgreSQL, and
// aggregated for cost and latency reporting.
package usage

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ScientiaCapital/sales-agent/pkg/llm"
)

const (
	// recordQueueCap bounds the in-flight record buffer. When full, records
	// are dropped rather than blocking the caller: accounting must never
	// stall an agent.
	recordQueueCap = 4096

	// flushBatchSize is the max records written per insert.
	flushBatchSize = 100

	// flushInterval bounds how long a record sits in the buffer.
	flushInterval = 2 * time.Second
)

// Record is one API call accounting row.
type Record struct {
	ID               string
	Provider         string
	Model            string
	Endpoint         string
	Operation        string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	LatencyMS        int64
	CostUSD          float64
	UserID           string
	Success          bool
	ErrorMessage     string
	CacheHit         bool
	CreatedAt        time.Time
}

// Store persists record batches.
type Store interface {
	InsertBatch(ctx context.Context, records []Record) error
}

// Invalidator drops cached aggregates after a flush so readers see fresh
// numbers. Implemented by the report cache.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// Tracker is the asynchronous accounting pipeline. It implements
// llm.CallSink: Record never blocks and never fails the caller.
type Tracker struct {
	store       Store
	invalidator Invalidator

	ch       chan Record
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	dropped int64
	mu      sync.Mutex
}

// NewTracker creates a tracker. invalidator may be nil.
func NewTracker(store Store, invalidator Invalidator) *Tracker {
	return &Tracker{
		store:       store,
		invalidator: invalidator,
		ch:          make(chan Record, recordQueueCap),
		stopCh:      make(chan struct{}),
	}
}

// Start launches the flush goroutine.
func (t *Tracker) Start() {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.run()
	}()
}

// Stop drains remaining records and waits for the final flush.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() { close(t.stopCh) })
	t.wg.Wait()
}

// Record implements llm.CallSink. It enqueues without blocking; when the
// buffer is full the record is dropped and counted.
func (t *Tracker) Record(rec llm.CallRecord) {
	r := Record{
		ID:               uuid.New().String(),
		Provider:         rec.Provider,
		Model:            rec.Model,
		Endpoint:         rec.Endpoint,
		Operation:        rec.Operation,
		PromptTokens:     rec.Usage.PromptTokens,
		CompletionTokens: rec.Usage.CompletionTokens,
		TotalTokens:      rec.Usage.TotalTokens,
		LatencyMS:        rec.LatencyMS,
		CostUSD:          rec.CostUSD,
		UserID:           rec.UserID,
		Success:          rec.Success,
		ErrorMessage:     rec.ErrorMessage,
		CacheHit:         rec.CacheHit,
		CreatedAt:        time.Now(),
	}

	select {
	case t.ch <- r:
	default:
		t.mu.Lock()
		t.dropped++
		dropped := t.dropped
		t.mu.Unlock()
		slog.Warn("Usage record dropped: buffer full",
			"provider", rec.Provider, "total_dropped", dropped)
	}
}

// Dropped returns the number of records lost to buffer pressure.
func (t *Tracker) Dropped() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dropped
}

func (t *Tracker) run() {
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]Record, 0, flushBatchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := t.store.InsertBatch(ctx, batch); err != nil {
			slog.Error("Failed to flush usage records", "count", len(batch), "error", err)
		} else if t.invalidator != nil {
			t.invalidator.Invalidate(ctx)
		}
		batch = batch[:0]
	}

	for {
		select {
		case rec := <-t.ch:
			batch = append(batch, rec)
			if len(batch) >= flushBatchSize {
				flush()
			}

		case <-ticker.C:
			flush()

		case <-t.stopCh:
			// Drain whatever is still buffered, then do the final flush.
			for {
				select {
				case rec := <-t.ch:
					batch = append(batch, rec)
					if len(batch) >= flushBatchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}
