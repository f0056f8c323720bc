package crm

import (
	"context"
	"fmt"
	"time"

	"github.com/ScientiaCapital/sales-agent/pkg/bus"
)

// dlqMaxLen caps each platform's dead-letter stream; redis trims the oldest
// entries past it.
const dlqMaxLen = 10000

// DeadLetters parks sync units that failed past their retries on a durable
// per-platform stream for later inspection and replay.
type DeadLetters struct {
	bus *bus.Bus
}

// NewDeadLetters creates the dead-letter store on the bus.
func NewDeadLetters(b *bus.Bus) *DeadLetters {
	return &DeadLetters{bus: b}
}

func dlqKey(platform string) string { return "crm:dlq:" + platform }

// Put parks one failed unit with its originating error.
func (d *DeadLetters) Put(ctx context.Context, platform, syncID, externalID string, cause error) error {
	_, err := d.bus.XAdd(ctx, dlqKey(platform), dlqMaxLen, map[string]interface{}{
		"sync_id":     syncID,
		"external_id": externalID,
		"error":       cause.Error(),
		"failed_at":   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to dead-letter unit %s: %w", externalID, err)
	}
	return nil
}

// Depth returns the number of parked units for a platform.
func (d *DeadLetters) Depth(ctx context.Context, platform string) (int64, error) {
	return d.bus.XLen(ctx, dlqKey(platform))
}

// DeadLetter is one parked unit read back from the stream.
type DeadLetter struct {
	EntryID    string `json:"entry_id"`
	SyncID     string `json:"sync_id"`
	ExternalID string `json:"external_id"`
	Error      string `json:"error"`
	FailedAt   string `json:"failed_at"`
}

// Entries reads up to count parked units, oldest first.
func (d *DeadLetters) Entries(ctx context.Context, platform string, count int64) ([]DeadLetter, error) {
	raw, err := d.bus.XRange(ctx, dlqKey(platform), "-", "+", count)
	if err != nil {
		return nil, fmt.Errorf("failed to read dead letters: %w", err)
	}
	out := make([]DeadLetter, 0, len(raw))
	for _, entry := range raw {
		out = append(out, DeadLetter{
			EntryID:    entry.ID,
			SyncID:     asString(entry.Values["sync_id"]),
			ExternalID: asString(entry.Values["external_id"]),
			Error:      asString(entry.Values["error"]),
			FailedAt:   asString(entry.Values["failed_at"]),
		})
	}
	return out, nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
