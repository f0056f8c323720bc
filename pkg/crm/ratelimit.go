package crm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ScientiaCapital/sales-agent/pkg/bus"
	"github.com/ScientiaCapital/sales-agent/pkg/config"
)

// ErrBudgetExhausted signals that a platform's call budget for the current
// window is spent; the running sync finalizes as rate_limited.
var ErrBudgetExhausted = errors.New("platform call budget exhausted")

// RateBudget meters adapter calls against per-platform budgets on shared
// bus counters, so every replica draws from the same allowance. The counter
// key embeds the window bucket and expires at the reset boundary.
type RateBudget struct {
	bus *bus.Bus
}

// NewRateBudget creates a budget meter on the bus.
func NewRateBudget(b *bus.Bus) *RateBudget {
	return &RateBudget{bus: b}
}

// Take consumes one call from the platform's budget. Returns
// ErrBudgetExhausted when the window's allowance is spent. A zero budget
// means unmetered.
func (r *RateBudget) Take(ctx context.Context, platform string, cfg *config.PlatformConfig) error {
	if cfg.RateBudget <= 0 {
		return nil
	}

	now := time.Now().UTC()
	key := fmt.Sprintf("crm:ratelimit:%s:%s", platform, bucketOf(now, cfg.RateBoundary))

	n, err := r.bus.Incr(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to take rate token: %w", err)
	}
	if n == 1 {
		// First draw in this window: expire the counter at the boundary.
		if err := r.bus.ExpireAt(ctx, key, boundaryEnd(now, cfg.RateBoundary)); err != nil {
			return fmt.Errorf("failed to set counter expiry: %w", err)
		}
	}
	if n > int64(cfg.RateBudget) {
		return fmt.Errorf("%w: %s used %d of %d this %s", ErrBudgetExhausted,
			platform, n-1, cfg.RateBudget, cfg.RateBoundary)
	}
	return nil
}

// Used reports the calls consumed in the platform's current window.
func (r *RateBudget) Used(ctx context.Context, platform string, cfg *config.PlatformConfig) (int64, error) {
	now := time.Now().UTC()
	key := fmt.Sprintf("crm:ratelimit:%s:%s", platform, bucketOf(now, cfg.RateBoundary))
	data, err := r.bus.Get(ctx, key)
	if err != nil {
		if errors.Is(err, bus.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	var n int64
	if _, err := fmt.Sscanf(string(data), "%d", &n); err != nil {
		return 0, fmt.Errorf("failed to parse counter: %w", err)
	}
	return n, nil
}

func bucketOf(now time.Time, boundary config.RateBoundary) string {
	if boundary == config.RateBoundaryHour {
		return now.Format("2006010215")
	}
	return now.Format("20060102")
}

func boundaryEnd(now time.Time, boundary config.RateBoundary) time.Time {
	if boundary == config.RateBoundaryHour {
		return now.Truncate(time.Hour).Add(time.Hour)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}
