package crm

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/bus"
	"github.com/ScientiaCapital/sales-agent/pkg/config"
)

func newTestBus(t *testing.T) (*bus.Bus, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return bus.NewFromClient(rdb), mr
}

func TestRateBudget_ExhaustsAtBudget(t *testing.T) {
	b, _ := newTestBus(t)
	budget := NewRateBudget(b)
	ctx := context.Background()
	cfg := &config.PlatformConfig{RateBudget: 3, RateBoundary: config.RateBoundaryHour}

	for i := 0; i < 3; i++ {
		require.NoError(t, budget.Take(ctx, "apollo", cfg))
	}
	err := budget.Take(ctx, "apollo", cfg)
	require.ErrorIs(t, err, ErrBudgetExhausted)

	used, err := budget.Used(ctx, "apollo", cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(4), used)
}

func TestRateBudget_PerPlatformCounters(t *testing.T) {
	b, _ := newTestBus(t)
	budget := NewRateBudget(b)
	ctx := context.Background()
	cfg := &config.PlatformConfig{RateBudget: 1, RateBoundary: config.RateBoundaryDay}

	require.NoError(t, budget.Take(ctx, "apollo", cfg))
	require.ErrorIs(t, budget.Take(ctx, "apollo", cfg), ErrBudgetExhausted)

	// A different platform draws from its own counter.
	require.NoError(t, budget.Take(ctx, "salesloft", cfg))
}

func TestRateBudget_ResetsAtBoundary(t *testing.T) {
	b, mr := newTestBus(t)
	budget := NewRateBudget(b)
	ctx := context.Background()
	cfg := &config.PlatformConfig{RateBudget: 1, RateBoundary: config.RateBoundaryHour}

	require.NoError(t, budget.Take(ctx, "hubspot", cfg))
	require.ErrorIs(t, budget.Take(ctx, "hubspot", cfg), ErrBudgetExhausted)

	// The counter key expires at the boundary; a fresh window has a fresh
	// allowance. FastForward fires the TTL; the bucket suffix itself only
	// changes with wall-clock time, so expiry is what we assert here.
	mr.FastForward(2 * time.Hour)
	used, err := budget.Used(ctx, "hubspot", cfg)
	require.NoError(t, err)
	assert.Zero(t, used)
}

func TestRateBudget_ZeroBudgetUnmetered(t *testing.T) {
	b, _ := newTestBus(t)
	budget := NewRateBudget(b)
	ctx := context.Background()
	cfg := &config.PlatformConfig{RateBudget: 0}

	for i := 0; i < 100; i++ {
		require.NoError(t, budget.Take(ctx, "ollama", cfg))
	}
}
