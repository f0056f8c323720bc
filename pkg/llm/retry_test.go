package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
)

func retryConfig(attempts int) *config.ResilienceConfig {
	return &config.ResilienceConfig{
		BreakerFailureThreshold: 100,
		BreakerRecoveryTimeout:  time.Minute,
		RetryMaxAttempts:        attempts,
		RetryBaseDelay:          time.Millisecond,
		RetryMaxDelay:           5 * time.Millisecond,
	}
}

func TestRetryGenerate_TransientThenSuccess(t *testing.T) {
	calls := 0
	resp, err := RetryGenerate(context.Background(), retryConfig(3), func() (*Response, error) {
		calls++
		if calls < 3 {
			return nil, NewError("openai", ClassUpstreamUnavailable, assert.AnError)
		}
		return &Response{Text: "ok"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 3, calls)
}

func TestRetryGenerate_PermanentFailsImmediately(t *testing.T) {
	calls := 0
	_, err := RetryGenerate(context.Background(), retryConfig(3), func() (*Response, error) {
		calls++
		return nil, NewError("openai", ClassAuth, assert.AnError)
	})
	require.Error(t, err)
	assert.Equal(t, ClassAuth, ClassOf(err))
	assert.Equal(t, 1, calls)
}

func TestRetryGenerate_BudgetExhausted(t *testing.T) {
	calls := 0
	_, err := RetryGenerate(context.Background(), retryConfig(3), func() (*Response, error) {
		calls++
		return nil, NewError("openai", ClassRateLimit, assert.AnError)
	})
	require.Error(t, err)
	assert.Equal(t, ClassRateLimit, ClassOf(err))
	assert.Equal(t, 3, calls)
}

func TestRetryGenerate_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	_, err := RetryGenerate(ctx, retryConfig(5), func() (*Response, error) {
		calls++
		return nil, NewError("openai", ClassTimeout, context.DeadlineExceeded)
	})
	require.Error(t, err)
	assert.LessOrEqual(t, calls, 1)
}

func TestRetryStream_RetriesBeforeFirstToken(t *testing.T) {
	opens := 0
	stream, err := RetryStream(context.Background(), retryConfig(3), func() (<-chan Chunk, error) {
		opens++
		if opens < 2 {
			// Stream opens but dies before delivering any text.
			return chunkStream(&ErrorChunk{Message: "cold start", Class: ClassUpstreamUnavailable}), nil
		}
		return chunkStream(&TextChunk{Content: "hello"}, &UsageChunk{TotalTokens: 1}), nil
	})
	require.NoError(t, err)

	resp, err := CollectStream(stream)
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Text)
	assert.Equal(t, 2, opens)
}

func TestRetryStream_NoRetryAfterFirstToken(t *testing.T) {
	opens := 0
	stream, err := RetryStream(context.Background(), retryConfig(3), func() (<-chan Chunk, error) {
		opens++
		// Token delivered, then the stream dies. Retrying would duplicate
		// the partial content, so the error must pass through.
		return chunkStream(
			&TextChunk{Content: "partial"},
			&ErrorChunk{Message: "connection reset", Class: ClassUpstreamUnavailable},
		), nil
	})
	require.NoError(t, err)

	var texts []string
	var gotErr *ErrorChunk
	for chunk := range stream {
		switch c := chunk.(type) {
		case *TextChunk:
			texts = append(texts, c.Content)
		case *ErrorChunk:
			gotErr = c
		}
	}
	assert.Equal(t, []string{"partial"}, texts)
	require.NotNil(t, gotErr)
	assert.Equal(t, ClassUpstreamUnavailable, gotErr.Class)
	assert.Equal(t, 1, opens)
}

func TestRetryStream_OpenFailurePermanent(t *testing.T) {
	opens := 0
	_, err := RetryStream(context.Background(), retryConfig(3), func() (<-chan Chunk, error) {
		opens++
		return nil, NewError("openai", ClassBadRequest, assert.AnError)
	})
	require.Error(t, err)
	assert.Equal(t, ClassBadRequest, ClassOf(err))
	assert.Equal(t, 1, opens)
}

func TestCollectStream(t *testing.T) {
	t.Run("concatenates text and captures usage", func(t *testing.T) {
		resp, err := CollectStream(chunkStream(
			&TextChunk{Content: "a"},
			&TextChunk{Content: "b"},
			&UsageChunk{PromptTokens: 10, CompletionTokens: 2, TotalTokens: 12},
		))
		require.NoError(t, err)
		assert.Equal(t, "ab", resp.Text)
		assert.Equal(t, 12, resp.Usage.TotalTokens)
	})

	t.Run("error chunk surfaces as error", func(t *testing.T) {
		_, err := CollectStream(chunkStream(
			&TextChunk{Content: "a"},
			&ErrorChunk{Message: "boom", Class: ClassUpstreamUnavailable},
		))
		require.Error(t, err)
		assert.Equal(t, ClassUpstreamUnavailable, ClassOf(err))
	})

	t.Run("callback receives deltas", func(t *testing.T) {
		var deltas []string
		_, err := CollectStreamWithCallback(chunkStream(
			&TextChunk{Content: "x"},
			&TextChunk{Content: "y"},
		), func(delta string) {
			deltas = append(deltas, delta)
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, deltas)
	})
}
