package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorClass
	}{
		{401, ClassAuth},
		{403, ClassAuth},
		{429, ClassRateLimit},
		{400, ClassBadRequest},
		{404, ClassBadRequest},
		{422, ClassBadRequest},
		{500, ClassUpstreamUnavailable},
		{502, ClassUpstreamUnavailable},
		{503, ClassUpstreamUnavailable},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.status))
		})
	}
}

func TestClassOf(t *testing.T) {
	t.Run("classified error", func(t *testing.T) {
		err := NewError("openai", ClassRateLimit, errors.New("too many requests"))
		assert.Equal(t, ClassRateLimit, ClassOf(err))
	})

	t.Run("wrapped classified error", func(t *testing.T) {
		inner := NewError("openai", ClassTimeout, errors.New("deadline"))
		wrapped := fmt.Errorf("call failed: %w", inner)
		assert.Equal(t, ClassTimeout, ClassOf(wrapped))
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		assert.Equal(t, ClassTimeout, ClassOf(context.DeadlineExceeded))
	})

	t.Run("unclassified defaults to protocol", func(t *testing.T) {
		assert.Equal(t, ClassProtocol, ClassOf(errors.New("mystery")))
	})
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(NewError("p", ClassRateLimit, nil)))
	assert.True(t, Retryable(NewError("p", ClassUpstreamUnavailable, nil)))
	assert.True(t, Retryable(NewError("p", ClassTimeout, nil)))

	assert.False(t, Retryable(NewError("p", ClassAuth, nil)))
	assert.False(t, Retryable(NewError("p", ClassBadRequest, nil)))
	assert.False(t, Retryable(NewError("p", ClassProtocol, nil)))
	assert.False(t, Retryable(NewError("p", ClassCircuitOpen, nil)))
}

func TestCountsAgainstBreaker(t *testing.T) {
	assert.True(t, CountsAgainstBreaker(NewError("p", ClassUpstreamUnavailable, nil)))
	assert.True(t, CountsAgainstBreaker(NewError("p", ClassTimeout, nil)))
	// A provider emitting unparseable payloads is unhealthy.
	assert.True(t, CountsAgainstBreaker(NewError("p", ClassProtocol, nil)))

	// Rate limits signal capacity, not death.
	assert.False(t, CountsAgainstBreaker(NewError("p", ClassRateLimit, nil)))
	assert.False(t, CountsAgainstBreaker(NewError("p", ClassBadRequest, nil)))
	assert.False(t, CountsAgainstBreaker(NewError("p", ClassAuth, nil)))
}

func TestFailover(t *testing.T) {
	// A malformed request fails everywhere identically.
	assert.False(t, Failover(NewError("p", ClassBadRequest, nil)))

	assert.True(t, Failover(NewError("p", ClassAuth, nil)))
	assert.True(t, Failover(NewError("p", ClassUpstreamUnavailable, nil)))
	assert.True(t, Failover(NewError("p", ClassCircuitOpen, nil)))
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := NewError("anthropic", ClassUpstreamUnavailable, inner)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "anthropic")
	assert.Contains(t, err.Error(), "upstream_unavailable")
}
