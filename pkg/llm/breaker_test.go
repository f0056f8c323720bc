package llm

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
)

// fakeProvider is a scriptable Provider for breaker/retry/router tests.
type fakeProvider struct {
	name    string
	pricing Pricing
	caps    []config.Capability

	calls      atomic.Int64
	generateFn func(call int64) (*Response, error)
	streamFn   func(call int64) (<-chan Chunk, error)
}

func (f *fakeProvider) Name() string                      { return f.name }
func (f *fakeProvider) Type() config.ProviderType         { return config.ProviderTypeOpenAI }
func (f *fakeProvider) Capabilities() []config.Capability { return f.caps }
func (f *fakeProvider) Pricing() Pricing                  { return f.pricing }

func (f *fakeProvider) Generate(_ context.Context, _ *GenerateInput) (*Response, error) {
	return f.generateFn(f.calls.Add(1))
}

func (f *fakeProvider) GenerateStream(_ context.Context, _ *GenerateInput) (<-chan Chunk, error) {
	return f.streamFn(f.calls.Add(1))
}

// chunkStream builds a pre-closed channel delivering the given chunks.
func chunkStream(chunks ...Chunk) <-chan Chunk {
	ch := make(chan Chunk, len(chunks))
	for _, c := range chunks {
		ch <- c
	}
	close(ch)
	return ch
}

func testResilience() *config.ResilienceConfig {
	return &config.ResilienceConfig{
		BreakerFailureThreshold: 3,
		BreakerRecoveryTimeout:  50 * time.Millisecond,
		RetryMaxAttempts:        1, // breaker tests exercise the breaker alone
		RetryBaseDelay:          time.Millisecond,
		RetryMaxDelay:           5 * time.Millisecond,
	}
}

func TestBreaker_TripsAfterConsecutiveFailures(t *testing.T) {
	fake := &fakeProvider{
		name: "openai",
		generateFn: func(int64) (*Response, error) {
			return nil, NewError("openai", ClassUpstreamUnavailable, assert.AnError)
		},
	}
	bp := WithBreaker(fake, testResilience())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := bp.Generate(ctx, &GenerateInput{})
		require.Error(t, err)
		assert.Equal(t, ClassUpstreamUnavailable, ClassOf(err))
	}

	// Fourth call is rejected without reaching the provider.
	assert.False(t, bp.Available())
	_, err := bp.Generate(ctx, &GenerateInput{})
	require.Error(t, err)
	assert.Equal(t, ClassCircuitOpen, ClassOf(err))
	assert.Equal(t, int64(3), fake.calls.Load())
}

func TestBreaker_ProtocolErrorTrips(t *testing.T) {
	fake := &fakeProvider{
		name: "openai",
		generateFn: func(int64) (*Response, error) {
			return nil, NewError("openai", ClassProtocol, assert.AnError)
		},
	}
	bp := WithBreaker(fake, testResilience())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := bp.Generate(ctx, &GenerateInput{})
		require.Error(t, err)
		assert.Equal(t, ClassProtocol, ClassOf(err))
	}

	assert.False(t, bp.Available())
	_, err := bp.Generate(ctx, &GenerateInput{})
	require.Error(t, err)
	assert.Equal(t, ClassCircuitOpen, ClassOf(err))
	assert.Equal(t, int64(3), fake.calls.Load())
}

func TestBreaker_BadRequestDoesNotTrip(t *testing.T) {
	fake := &fakeProvider{
		name: "openai",
		generateFn: func(int64) (*Response, error) {
			return nil, NewError("openai", ClassBadRequest, assert.AnError)
		},
	}
	bp := WithBreaker(fake, testResilience())
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := bp.Generate(ctx, &GenerateInput{})
		require.Error(t, err)
	}
	assert.True(t, bp.Available())
	assert.Equal(t, int64(10), fake.calls.Load())
}

func TestBreaker_RecoversAfterTimeout(t *testing.T) {
	healthy := atomic.Bool{}
	fake := &fakeProvider{
		name: "openai",
		generateFn: func(int64) (*Response, error) {
			if healthy.Load() {
				return &Response{Text: "ok"}, nil
			}
			return nil, NewError("openai", ClassTimeout, context.DeadlineExceeded)
		},
	}
	bp := WithBreaker(fake, testResilience())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _ = bp.Generate(ctx, &GenerateInput{})
	}
	assert.False(t, bp.Available())

	healthy.Store(true)
	time.Sleep(60 * time.Millisecond) // past recovery timeout, breaker half-open

	resp, err := bp.Generate(ctx, &GenerateInput{})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.True(t, bp.Available())
}

func TestBreaker_StreamOutcomeSettledAtTermination(t *testing.T) {
	failing := atomic.Bool{}
	failing.Store(true)
	fake := &fakeProvider{
		name: "openai",
		streamFn: func(int64) (<-chan Chunk, error) {
			if failing.Load() {
				// Stream opens, emits a token, then dies mid-flight.
				return chunkStream(
					&TextChunk{Content: "partial"},
					&ErrorChunk{Message: "connection reset", Class: ClassUpstreamUnavailable},
				), nil
			}
			return chunkStream(&TextChunk{Content: "ok"}, &UsageChunk{TotalTokens: 2}), nil
		},
	}
	bp := WithBreaker(fake, testResilience())
	ctx := context.Background()

	// Three failed streams trip the breaker even though each opened fine.
	for i := 0; i < 3; i++ {
		stream, err := bp.GenerateStream(ctx, &GenerateInput{})
		require.NoError(t, err)
		for range stream {
		}
	}
	assert.False(t, bp.Available())

	_, err := bp.GenerateStream(ctx, &GenerateInput{})
	require.Error(t, err)
	assert.Equal(t, ClassCircuitOpen, ClassOf(err))
}
