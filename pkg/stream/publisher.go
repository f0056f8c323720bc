package stream

import (
	"context"
	"encoding/json"
	"sync/atomic"
)

// Publisher is the single writer for one stream. Sequence numbers are
// assigned here, so chunk order on the wire is the publish order.
type Publisher struct {
	fabric   *Fabric
	streamID string
	seq      atomic.Int64
	closed   atomic.Bool
}

// StreamID returns the stream's identity (the execution ID).
func (p *Publisher) StreamID() string {
	return p.streamID
}

// Token publishes one token of provider output.
func (p *Publisher) Token(ctx context.Context, text string) error {
	payload, err := json.Marshal(text)
	if err != nil {
		return err
	}
	return p.send(ctx, Chunk{Type: ChunkToken, Payload: payload})
}

// Event publishes a named runtime event (node entry, tool call, etc.).
func (p *Publisher) Event(ctx context.Context, name string, fields map[string]interface{}) error {
	body := map[string]interface{}{"name": name}
	for k, v := range fields {
		body[k] = v
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return p.send(ctx, Chunk{Type: ChunkEvent, Payload: payload})
}

// Complete closes the stream successfully with the final result.
func (p *Publisher) Complete(ctx context.Context, result interface{}) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return p.send(ctx, Chunk{Type: ChunkComplete, Payload: payload})
}

// Error closes the stream with an error class and message.
func (p *Publisher) Error(ctx context.Context, class, message string) error {
	payload, err := json.Marshal(ErrorPayload{Class: class, Message: message})
	if err != nil {
		return err
	}
	return p.send(ctx, Chunk{Type: ChunkError, Payload: payload})
}

func (p *Publisher) send(ctx context.Context, chunk Chunk) error {
	// After a terminal chunk nothing else may be observed on the stream.
	if p.closed.Load() {
		return nil
	}
	if chunk.Terminal() {
		p.closed.Store(true)
	}
	chunk.Seq = p.seq.Add(1)
	return p.fabric.publish(ctx, p.streamID, chunk)
}
