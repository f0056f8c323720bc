package bus

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T) (*Bus, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	b := NewFromClient(rdb)
	t.Cleanup(func() { _ = b.Close() })
	return b, mr
}

func TestBus_GetSet(t *testing.T) {
	b, mr := newTestBus(t)
	ctx := context.Background()

	_, err := b.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Set(ctx, "k", []byte("v"), time.Minute))
	val, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	// TTL expiry
	mr.FastForward(2 * time.Minute)
	_, err = b.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBus_IncrExpire(t *testing.T) {
	b, mr := newTestBus(t)
	ctx := context.Background()

	n, err := b.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = b.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, b.Expire(ctx, "counter", time.Hour))
	mr.FastForward(2 * time.Hour)

	// Counter restarts after the window expires.
	n, err = b.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestBus_PubSub(t *testing.T) {
	b, _ := newTestBus(t)
	ctx := context.Background()

	sub, err := b.Subscribe(ctx, "chan-1")
	require.NoError(t, err)
	defer sub.Close()

	msgs := sub.Messages()

	require.NoError(t, b.Publish(ctx, "chan-1", []byte("hello")))

	select {
	case msg := <-msgs:
		assert.Equal(t, []byte("hello"), msg)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published message")
	}
}

func TestBus_Streams(t *testing.T) {
	b, _ := newTestBus(t)
	ctx := context.Background()

	id1, err := b.XAdd(ctx, "dlq:test", 0, map[string]interface{}{"op": "update", "payload": "a"})
	require.NoError(t, err)
	assert.NotEmpty(t, id1)

	_, err = b.XAdd(ctx, "dlq:test", 0, map[string]interface{}{"op": "create", "payload": "b"})
	require.NoError(t, err)

	n, err := b.XLen(ctx, "dlq:test")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	entries, err := b.XRange(ctx, "dlq:test", "-", "+", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "update", entries[0].Values["op"])
	assert.Equal(t, "create", entries[1].Values["op"])

	// Bounded read
	entries, err = b.XRange(ctx, "dlq:test", "-", "+", 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestBus_Delete(t *testing.T) {
	b, _ := newTestBus(t)
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, b.Set(ctx, "b", []byte("2"), 0))

	require.NoError(t, b.Delete(ctx, "a", "b", "never-existed"))

	_, err := b.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}
