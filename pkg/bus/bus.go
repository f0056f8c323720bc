// Package bus wraps the Redis connection used for streaming fan-out, the
// usage cache, CRM rate counters, dead-letter streams, and OAuth state.
package bus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned by Get when a key does not exist.
var ErrNotFound = errors.New("bus: key not found")

// Bus is a thin wrapper over the Redis client exposing the primitives the
// core needs: key-value with TTL, pub/sub channels, and append-only streams.
type Bus struct {
	rdb *redis.Client
}

// New connects to Redis using a DSN (redis://[:password@]host:port/db) and
// verifies the connection.
func New(ctx context.Context, dsn string) (*Bus, error) {
	opts, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid bus DSN: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping bus: %w", err)
	}
	return &Bus{rdb: rdb}, nil
}

// NewFromClient wraps an existing Redis client (useful for testing).
func NewFromClient(rdb *redis.Client) *Bus {
	return &Bus{rdb: rdb}
}

// Close releases the Redis connection.
func (b *Bus) Close() error {
	return b.rdb.Close()
}

// Ping verifies the connection for health checks.
func (b *Bus) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}

// --- Key-value with TTL ---

// Get returns the value at key, or ErrNotFound.
func (b *Bus) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := b.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("bus get %s: %w", key, err)
	}
	return val, nil
}

// Set stores value at key with a TTL (0 = no expiry).
func (b *Bus) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := b.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("bus set %s: %w", key, err)
	}
	return nil
}

// Delete removes one or more keys. Missing keys are not an error.
func (b *Bus) Delete(ctx context.Context, keys ...string) error {
	if err := b.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("bus delete: %w", err)
	}
	return nil
}

// Incr atomically increments the counter at key and returns the new value.
func (b *Bus) Incr(ctx context.Context, key string) (int64, error) {
	n, err := b.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("bus incr %s: %w", key, err)
	}
	return n, nil
}

// Expire sets a TTL on an existing key.
func (b *Bus) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if err := b.rdb.Expire(ctx, key, ttl).Err(); err != nil {
		return fmt.Errorf("bus expire %s: %w", key, err)
	}
	return nil
}

// ExpireAt sets an absolute expiry on an existing key.
func (b *Bus) ExpireAt(ctx context.Context, key string, at time.Time) error {
	if err := b.rdb.ExpireAt(ctx, key, at).Err(); err != nil {
		return fmt.Errorf("bus expireat %s: %w", key, err)
	}
	return nil
}

// --- Pub/sub ---

// Publish broadcasts a message on a channel. Subscribers attached before the
// publish receive it; there is no replay.
func (b *Bus) Publish(ctx context.Context, channel string, message []byte) error {
	if err := b.rdb.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("bus publish %s: %w", channel, err)
	}
	return nil
}

// Subscription is a live pub/sub subscription on one channel.
type Subscription struct {
	pubsub *redis.PubSub
}

// Subscribe attaches to a channel. The caller must Close the subscription.
func (b *Bus) Subscribe(ctx context.Context, channel string) (*Subscription, error) {
	pubsub := b.rdb.Subscribe(ctx, channel)
	// Force the subscription to be established before returning so that
	// publishes after Subscribe are never missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("bus subscribe %s: %w", channel, err)
	}
	return &Subscription{pubsub: pubsub}, nil
}

// Messages returns the channel of raw payloads.
func (s *Subscription) Messages() <-chan []byte {
	out := make(chan []byte)
	go func() {
		defer close(out)
		for msg := range s.pubsub.Channel() {
			out <- []byte(msg.Payload)
		}
	}()
	return out
}

// Close detaches the subscription.
func (s *Subscription) Close() error {
	return s.pubsub.Close()
}

// --- Streams ---

// StreamEntry is one durable stream record.
type StreamEntry struct {
	ID     string
	Values map[string]interface{}
}

// XAdd appends an entry to a capped stream (approximate trim at maxLen;
// 0 = uncapped).
func (b *Bus) XAdd(ctx context.Context, stream string, maxLen int64, values map[string]interface{}) (string, error) {
	args := &redis.XAddArgs{
		Stream: stream,
		Values: values,
	}
	if maxLen > 0 {
		args.MaxLen = maxLen
		args.Approx = true
	}
	id, err := b.rdb.XAdd(ctx, args).Result()
	if err != nil {
		return "", fmt.Errorf("bus xadd %s: %w", stream, err)
	}
	return id, nil
}

// XRange reads entries between two ids ("-" and "+" for the full stream).
func (b *Bus) XRange(ctx context.Context, stream, start, stop string, count int64) ([]StreamEntry, error) {
	var msgs []redis.XMessage
	var err error
	if count > 0 {
		msgs, err = b.rdb.XRangeN(ctx, stream, start, stop, count).Result()
	} else {
		msgs, err = b.rdb.XRange(ctx, stream, start, stop).Result()
	}
	if err != nil {
		return nil, fmt.Errorf("bus xrange %s: %w", stream, err)
	}
	entries := make([]StreamEntry, len(msgs))
	for i, m := range msgs {
		entries[i] = StreamEntry{ID: m.ID, Values: m.Values}
	}
	return entries, nil
}

// XLen returns the number of entries in a stream.
func (b *Bus) XLen(ctx context.Context, stream string) (int64, error) {
	n, err := b.rdb.XLen(ctx, stream).Result()
	if err != nil {
		return 0, fmt.Errorf("bus xlen %s: %w", stream, err)
	}
	return n, nil
}
