package llm

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
)

// retryBackoff builds the exponential backoff schedule for one call:
// base delay doubling per attempt with jitter, capped at the max delay,
// and bounded by the attempt budget.
func retryBackoff(ctx context.Context, cfg *config.ResilienceConfig) backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.RetryBaseDelay
	bo.MaxInterval = cfg.RetryMaxDelay
	bo.MaxElapsedTime = 0 // the attempt budget bounds us, not wall time

	var b backoff.BackOff = bo
	if cfg.RetryMaxAttempts > 1 {
		b = backoff.WithMaxRetries(b, uint64(cfg.RetryMaxAttempts-1))
	} else {
		b = backoff.WithMaxRetries(b, 0)
	}
	return backoff.WithContext(b, ctx)
}

// RetryGenerate runs fn with the retry policy: transient failures
// (rate_limit, upstream_unavailable, timeout) are retried with exponential
// backoff; everything else fails immediately.
func RetryGenerate(ctx context.Context, cfg *config.ResilienceConfig, fn func() (*Response, error)) (*Response, error) {
	operation := func() (*Response, error) {
		resp, err := fn()
		if err != nil && !Retryable(err) {
			return nil, backoff.Permanent(err)
		}
		return resp, err
	}
	return backoff.RetryWithData(operation, retryBackoff(ctx, cfg))
}

// RetryStream opens a stream with first-token retry semantics: if the
// stream fails before delivering any text, and the failure is transient,
// the stream is reopened. Once a token has been delivered the caller owns
// a partial response and a retry would duplicate content, so mid-stream
// failures pass through as ErrorChunks.
func RetryStream(ctx context.Context, cfg *config.ResilienceConfig, open func() (<-chan Chunk, error)) (<-chan Chunk, error) {
	var inner <-chan Chunk

	// Phase 1: retry until the stream opens.
	operation := func() (<-chan Chunk, error) {
		ch, err := open()
		if err != nil && !Retryable(err) {
			return nil, backoff.Permanent(err)
		}
		return ch, err
	}
	inner, err := backoff.RetryWithData(operation, retryBackoff(ctx, cfg))
	if err != nil {
		return nil, err
	}

	// Phase 2: forward chunks, retrying the whole stream only while no
	// text has been delivered yet.
	out := make(chan Chunk, 32)
	go func() {
		defer close(out)

		bo := retryBackoff(ctx, cfg)
		firstToken := false

		for {
			reopen := false
			for chunk := range inner {
				if ec, ok := chunk.(*ErrorChunk); ok && !firstToken && Retryable(&Error{Class: ec.Class}) {
					reopen = true
					break
				}
				if _, ok := chunk.(*TextChunk); ok {
					firstToken = true
				}
				select {
				case out <- chunk:
				case <-ctx.Done():
					return
				}
			}
			if !reopen {
				return
			}

			wait := bo.NextBackOff()
			if wait == backoff.Stop {
				select {
				case out <- &ErrorChunk{Message: "retry budget exhausted before first token", Class: ClassUpstreamUnavailable}:
				case <-ctx.Done():
				}
				return
			}
			t := time.NewTimer(wait)
			select {
			case <-t.C:
			case <-ctx.Done():
				t.Stop()
				return
			}

			ch, err := open()
			if err != nil {
				perr := NewError("", ClassOf(err), err)
				select {
				case out <- &ErrorChunk{Message: perr.Message, Class: perr.Class}:
				case <-ctx.Done():
				}
				return
			}
			inner = ch
		}
	}()

	return out, nil
}
