package stream

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/bus"
	"github.com/ScientiaCapital/sales-agent/pkg/config"
)

func newTestFabric(t *testing.T, cfg *config.StreamConfig) (*Fabric, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	if cfg == nil {
		cfg = config.DefaultStreamConfig()
	}
	return NewFabric(bus.NewFromClient(rdb), cfg), mr
}

func collectChunks(t *testing.T, ch <-chan Chunk, want int) []Chunk {
	t.Helper()
	var got []Chunk
	deadline := time.After(2 * time.Second)
	for len(got) < want {
		select {
		case chunk, ok := <-ch:
			if !ok {
				return got
			}
			got = append(got, chunk)
		case <-deadline:
			t.Fatalf("timed out after %d of %d chunks", len(got), want)
		}
	}
	return got
}

func TestFabric_PublishSubscribeOrdering(t *testing.T) {
	fabric, _ := newTestFabric(t, nil)
	ctx := context.Background()

	pub := fabric.Open("exec-1", func() {})

	ch, err := fabric.Subscribe(ctx, "exec-1")
	require.NoError(t, err)

	require.NoError(t, pub.Token(ctx, "Hello"))
	require.NoError(t, pub.Token(ctx, " world"))
	require.NoError(t, pub.Complete(ctx, map[string]interface{}{"score": 85}))

	chunks := collectChunks(t, ch, 3)
	require.Len(t, chunks, 3)
	assert.Equal(t, ChunkToken, chunks[0].Type)
	assert.Equal(t, ChunkToken, chunks[1].Type)
	assert.Equal(t, ChunkComplete, chunks[2].Type)

	// Strictly increasing sequence numbers.
	for i := 1; i < len(chunks); i++ {
		assert.Greater(t, chunks[i].Seq, chunks[i-1].Seq)
	}

	var text string
	require.NoError(t, json.Unmarshal(chunks[0].Payload, &text))
	assert.Equal(t, "Hello", text)
}

func TestFabric_TerminalGraceWindow(t *testing.T) {
	fabric, mr := newTestFabric(t, nil)
	ctx := context.Background()

	pub := fabric.Open("exec-2", func() {})
	require.NoError(t, pub.Complete(ctx, "done"))

	// A late subscriber still sees the terminal chunk.
	ch, err := fabric.Subscribe(ctx, "exec-2")
	require.NoError(t, err)
	chunks := collectChunks(t, ch, 1)
	require.Len(t, chunks, 1)
	assert.Equal(t, ChunkComplete, chunks[0].Type)

	// After the grace window the terminal chunk is gone.
	mr.FastForward(2 * time.Minute)
	_, err = fabric.bus.Get(ctx, terminalKey("exec-2"))
	assert.ErrorIs(t, err, bus.ErrNotFound)
}

func TestFabric_NoChunksAfterTerminal(t *testing.T) {
	fabric, _ := newTestFabric(t, nil)
	ctx := context.Background()

	pub := fabric.Open("exec-3", func() {})
	ch, err := fabric.Subscribe(ctx, "exec-3")
	require.NoError(t, err)

	require.NoError(t, pub.Token(ctx, "partial"))
	require.NoError(t, pub.Error(ctx, "cancelled", "cancelled by caller"))
	// Writes after close are silently discarded.
	require.NoError(t, pub.Token(ctx, "ignored"))

	chunks := collectChunks(t, ch, 2)
	require.Len(t, chunks, 2)
	assert.Equal(t, ChunkError, chunks[1].Type)

	var ep ErrorPayload
	require.NoError(t, json.Unmarshal(chunks[1].Payload, &ep))
	assert.Equal(t, "cancelled", ep.Class)

	// Channel closes after the terminal chunk; nothing else arrives.
	select {
	case extra, ok := <-ch:
		assert.False(t, ok, "unexpected chunk after terminal: %+v", extra)
	case <-time.After(time.Second):
		t.Fatal("subscriber channel not closed after terminal chunk")
	}
}

func TestFabric_CancelRegistry(t *testing.T) {
	fabric, _ := newTestFabric(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fabric.Open("exec-4", cancel)

	assert.Contains(t, fabric.ActiveStreams(), "exec-4")
	assert.True(t, fabric.Cancel("exec-4"))
	select {
	case <-ctx.Done():
	default:
		t.Fatal("cancel did not propagate to the execution context")
	}

	assert.False(t, fabric.Cancel("unknown-stream"))
}

func TestFabric_CancelUnregisteredAfterTerminal(t *testing.T) {
	fabric, _ := newTestFabric(t, nil)
	ctx := context.Background()

	pub := fabric.Open("exec-5", func() {})
	require.NoError(t, pub.Complete(ctx, nil))

	assert.False(t, fabric.Cancel("exec-5"))
	assert.Empty(t, fabric.ActiveStreams())
}

func TestFabric_SlowSubscriberDropped(t *testing.T) {
	fabric, _ := newTestFabric(t, &config.StreamConfig{
		SubscriberQueueBound: 2,
		TerminalGrace:        time.Minute,
	})
	ctx := context.Background()

	pub := fabric.Open("exec-6", func() {})
	ch, err := fabric.Subscribe(ctx, "exec-6")
	require.NoError(t, err)

	// Nobody reads; overflow the bound.
	for i := 0; i < 10; i++ {
		require.NoError(t, pub.Token(ctx, "x"))
	}

	// Eventually the subscriber channel closes with a slow_subscriber error
	// as its last chunk.
	var last Chunk
	deadline := time.After(2 * time.Second)
	for {
		select {
		case chunk, ok := <-ch:
			if !ok {
				var ep ErrorPayload
				require.NoError(t, json.Unmarshal(last.Payload, &ep))
				assert.Equal(t, ChunkError, last.Type)
				assert.Equal(t, "slow_subscriber", ep.Class)
				return
			}
			last = chunk
		case <-deadline:
			t.Fatal("slow subscriber was not dropped")
		}
	}
}
