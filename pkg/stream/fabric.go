// Package stream is the fan-out fabric between agent executions and their
// subscribers. Each execution publishes an ordered chunk sequence on a
// redis channel keyed by execution ID; any number of subscribers may attach
// while the stream is open. The terminal chunk is additionally kept under a
// short-lived key so late subscribers still learn how the run ended.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ScientiaCapital/sales-agent/pkg/bus"
	"github.com/ScientiaCapital/sales-agent/pkg/config"
)

// ChunkType discriminates stream chunks.
type ChunkType string

const (
	ChunkToken    ChunkType = "token"
	ChunkEvent    ChunkType = "event"
	ChunkComplete ChunkType = "complete"
	ChunkError    ChunkType = "error"
)

// Chunk is one element of a stream's ordered sequence.
type Chunk struct {
	Type    ChunkType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Seq     int64           `json:"seq"`
}

// Terminal reports whether the chunk closes the stream.
func (c Chunk) Terminal() bool {
	return c.Type == ChunkComplete || c.Type == ChunkError
}

// ErrorPayload is the payload of an error chunk.
type ErrorPayload struct {
	Class   string `json:"class"`
	Message string `json:"message,omitempty"`
}

func channelKey(streamID string) string  { return "stream:" + streamID }
func terminalKey(streamID string) string { return "stream:" + streamID + ":terminal" }

// Fabric publishes and subscribes execution streams over the bus.
type Fabric struct {
	bus *bus.Bus
	cfg *config.StreamConfig

	// Cancel registry: stream_id → cancel function for the running execution.
	mu      sync.RWMutex
	cancels map[string]context.CancelFunc
}

// NewFabric creates a streaming fabric on the given bus.
func NewFabric(b *bus.Bus, cfg *config.StreamConfig) *Fabric {
	return &Fabric{
		bus:     b,
		cfg:     cfg,
		cancels: make(map[string]context.CancelFunc),
	}
}

// Open registers a cancel function for a starting execution and returns its
// publisher. The stream ID is the execution ID.
func (f *Fabric) Open(streamID string, cancel context.CancelFunc) *Publisher {
	f.mu.Lock()
	f.cancels[streamID] = cancel
	f.mu.Unlock()
	return &Publisher{fabric: f, streamID: streamID}
}

// Cancel triggers context cancellation for a running execution.
// Returns true if the stream was found and cancelled.
func (f *Fabric) Cancel(streamID string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if cancel, ok := f.cancels[streamID]; ok {
		cancel()
		return true
	}
	return false
}

// unregister removes the cancel entry once a stream has closed.
func (f *Fabric) unregister(streamID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.cancels, streamID)
}

// ActiveStreams returns the IDs of streams with a registered cancel func.
func (f *Fabric) ActiveStreams() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	ids := make([]string, 0, len(f.cancels))
	for id := range f.cancels {
		ids = append(ids, id)
	}
	return ids
}

// publish encodes and fans out one chunk. Terminal chunks are also stored
// under the terminal key for the grace window, and close the registry entry.
func (f *Fabric) publish(ctx context.Context, streamID string, chunk Chunk) error {
	data, err := json.Marshal(chunk)
	if err != nil {
		return fmt.Errorf("failed to encode chunk: %w", err)
	}

	if chunk.Terminal() {
		// Write the terminal key before the pub/sub send so a subscriber
		// that misses the live chunk finds it on attach.
		if err := f.bus.Set(ctx, terminalKey(streamID), data, f.cfg.TerminalGrace); err != nil {
			slog.Warn("Failed to store terminal chunk", "stream_id", streamID, "error", err)
		}
		f.unregister(streamID)
	}

	if err := f.bus.Publish(ctx, channelKey(streamID), data); err != nil {
		return fmt.Errorf("failed to publish chunk: %w", err)
	}
	return nil
}

// Subscribe attaches to a stream and returns a bounded chunk channel.
// If the stream already terminated within the grace window, the terminal
// chunk is delivered immediately and the channel closed.
//
// A subscriber that falls more than SubscriberQueueBound chunks behind is
// dropped: its channel receives a final error chunk with class
// "slow_subscriber" and is closed. Other subscribers are unaffected.
func (f *Fabric) Subscribe(ctx context.Context, streamID string) (<-chan Chunk, error) {
	out := make(chan Chunk, f.cfg.SubscriberQueueBound)

	// Terminal short-circuit for closed streams in the grace window.
	if data, err := f.bus.Get(ctx, terminalKey(streamID)); err == nil {
		var chunk Chunk
		if err := json.Unmarshal(data, &chunk); err == nil {
			out <- chunk
			close(out)
			return out, nil
		}
	}

	sub, err := f.bus.Subscribe(ctx, channelKey(streamID))
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to stream: %w", err)
	}

	go func() {
		defer close(out)
		defer func() { _ = sub.Close() }()

		for {
			select {
			case <-ctx.Done():
				return
			case data, ok := <-sub.Messages():
				if !ok {
					return
				}
				var chunk Chunk
				if err := json.Unmarshal(data, &chunk); err != nil {
					slog.Warn("Dropping malformed stream chunk", "stream_id", streamID, "error", err)
					continue
				}

				select {
				case out <- chunk:
				default:
					// Queue full: this subscriber is too slow. Drain one
					// slot for the drop notice, then bail out.
					slog.Warn("Dropping slow subscriber", "stream_id", streamID, "bound", f.cfg.SubscriberQueueBound)
					select {
					case <-out:
					default:
					}
					payload, _ := json.Marshal(ErrorPayload{Class: "slow_subscriber"})
					out <- Chunk{Type: ChunkError, Payload: payload, Seq: chunk.Seq}
					return
				}

				if chunk.Terminal() {
					return
				}
			}
		}
	}()

	return out, nil
}
