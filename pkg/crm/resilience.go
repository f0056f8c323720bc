package crm

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
)

// resilientPlatform wraps an adapter with its own circuit breaker and the
// shared retry policy. Retries apply to the classes the provider stack
// retries; everything else surfaces immediately.
type resilientPlatform struct {
	inner Platform
	cb    *gobreaker.CircuitBreaker
	cfg   *config.ResilienceConfig
}

func withResilience(p Platform, cfg *config.ResilienceConfig) *resilientPlatform {
	settings := gobreaker.Settings{
		Name:        "crm-" + p.Tag(),
		MaxRequests: 1,
		Timeout:     cfg.BreakerRecoveryTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cfg.BreakerFailureThreshold)
		},
	}
	return &resilientPlatform{
		inner: p,
		cb:    gobreaker.NewCircuitBreaker(settings),
		cfg:   cfg,
	}
}

func (r *resilientPlatform) Tag() string { return r.inner.Tag() }

// State exposes the breaker state for health reporting.
func (r *resilientPlatform) State() gobreaker.State { return r.cb.State() }

// call runs one adapter operation through retry and breaker.
func (r *resilientPlatform) call(ctx context.Context, fn func() (interface{}, error)) (interface{}, error) {
	policy := backoff.WithContext(backoff.WithMaxRetries(
		newExponentialBackoff(r.cfg), uint64(r.cfg.RetryMaxAttempts-1)), ctx)

	var out interface{}
	op := func() error {
		v, err := r.cb.Execute(func() (interface{}, error) {
			v, err := fn()
			if err != nil && !llm.CountsAgainstBreaker(err) {
				// Settle the breaker as success, keep the error.
				return v, &shieldedError{err}
			}
			return v, err
		})
		var shielded *shieldedError
		if errors.As(err, &shielded) {
			err = shielded.err
		}
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return backoff.Permanent(llm.NewError(r.inner.Tag(), llm.ClassCircuitOpen, err))
			}
			if !llm.Retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = v
		return nil
	}

	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}
	return out, nil
}

// shieldedError carries a failure through gobreaker.Execute without
// counting it against the breaker.
type shieldedError struct{ err error }

func (e *shieldedError) Error() string { return e.err.Error() }
func (e *shieldedError) Unwrap() error { return e.err }

func newExponentialBackoff(cfg *config.ResilienceConfig) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.RetryBaseDelay
	b.MaxInterval = cfg.RetryMaxDelay
	b.MaxElapsedTime = 0
	return b
}

func (r *resilientPlatform) List(ctx context.Context, filters Filters, cursor string) (*Page, error) {
	v, err := r.call(ctx, func() (interface{}, error) { return r.inner.List(ctx, filters, cursor) })
	if err != nil {
		return nil, err
	}
	return v.(*Page), nil
}

func (r *resilientPlatform) Get(ctx context.Context, externalID string) (*Record, error) {
	v, err := r.call(ctx, func() (interface{}, error) { return r.inner.Get(ctx, externalID) })
	if err != nil {
		return nil, err
	}
	return v.(*Record), nil
}

func (r *resilientPlatform) Upsert(ctx context.Context, rec *Record) (*Record, error) {
	v, err := r.call(ctx, func() (interface{}, error) { return r.inner.Upsert(ctx, rec) })
	if err != nil {
		return nil, err
	}
	return v.(*Record), nil
}

func (r *resilientPlatform) ParseWebhookEvent(payload []byte) (*WebhookEvent, error) {
	return r.inner.ParseWebhookEvent(payload)
}
