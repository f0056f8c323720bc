package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
)

// BreakerProvider wraps a Provider with a per-provider circuit breaker.
//
// Unary calls report their outcome when they return. Streaming calls report
// at stream termination: a stream that delivered tokens and then died still
// counts as a failure. The breaker uses the two-step API so the outcome can
// be settled long after admission.
type BreakerProvider struct {
	Provider
	cb *gobreaker.TwoStepCircuitBreaker
}

// WithBreaker wraps p with a circuit breaker configured from cfg.
func WithBreaker(p Provider, cfg *config.ResilienceConfig) *BreakerProvider {
	settings := gobreaker.Settings{
		Name: p.Name(),
		// One probe at a time in half-open: a burst of concurrent requests
		// must not all hit a provider that just came back.
		MaxRequests: 1,
		Timeout:     cfg.BreakerRecoveryTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cfg.BreakerFailureThreshold)
		},
	}
	return &BreakerProvider{
		Provider: p,
		cb:       gobreaker.NewTwoStepCircuitBreaker(settings),
	}
}

// Available reports whether the breaker would admit a call right now.
// Used by the router to skip dead providers without burning a probe.
func (b *BreakerProvider) Available() bool {
	return b.cb.State() != gobreaker.StateOpen
}

// State exposes the breaker state for health reporting.
func (b *BreakerProvider) State() gobreaker.State {
	return b.cb.State()
}

// Generate implements Provider with breaker admission and outcome reporting.
func (b *BreakerProvider) Generate(ctx context.Context, input *GenerateInput) (*Response, error) {
	done, err := b.cb.Allow()
	if err != nil {
		return nil, b.rejected(err)
	}

	resp, err := b.Provider.Generate(ctx, input)
	done(err == nil || !CountsAgainstBreaker(err))
	return resp, err
}

// GenerateStream implements Provider. The breaker outcome is settled when
// the inner stream terminates, not when it is admitted.
func (b *BreakerProvider) GenerateStream(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	done, err := b.cb.Allow()
	if err != nil {
		return nil, b.rejected(err)
	}

	inner, err := b.Provider.GenerateStream(ctx, input)
	if err != nil {
		done(!CountsAgainstBreaker(err))
		return nil, err
	}

	out := make(chan Chunk, 32)
	go func() {
		defer close(out)
		success := true
		for chunk := range inner {
			if ec, ok := chunk.(*ErrorChunk); ok {
				if CountsAgainstBreaker(&Error{Class: ec.Class}) {
					success = false
				}
			}
			select {
			case out <- chunk:
			case <-ctx.Done():
				done(success)
				return
			}
		}
		done(success)
	}()

	return out, nil
}

func (b *BreakerProvider) rejected(err error) *Error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return NewError(b.Name(), ClassCircuitOpen,
			fmt.Errorf("circuit breaker rejected call: %w", err))
	}
	return NewError(b.Name(), ClassCircuitOpen, err)
}
