package usage

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ScientiaCapital/sales-agent/pkg/bus"
)

// realtimeCacheKey caches the rolling 24h summary.
const realtimeCacheKey = "usage:realtime:last24h"

// realtimeCacheTTL keeps the cached summary at most this stale.
const realtimeCacheTTL = 5 * time.Minute

// ProviderSummary aggregates one provider's calls in a window.
type ProviderSummary struct {
	Calls        int     `json:"calls"`
	Tokens       int     `json:"tokens"`
	CostUSD      float64 `json:"cost_usd"`
	SuccessRate  float64 `json:"success_rate"`
	AvgLatencyMS float64 `json:"avg_latency_ms"`
}

// Summary is the aggregate usage report for a time window.
type Summary struct {
	WindowStart time.Time                  `json:"window_start"`
	WindowEnd   time.Time                  `json:"window_end"`
	TotalCalls  int                        `json:"total_calls"`
	TotalTokens int                        `json:"total_tokens"`
	TotalCost   float64                    `json:"total_cost_usd"`
	SuccessRate float64                    `json:"success_rate"`
	CacheHit    float64                    `json:"cache_hit_rate"`
	LatencyP50  float64                    `json:"latency_p50_ms"`
	LatencyP95  float64                    `json:"latency_p95_ms"`
	LatencyP99  float64                    `json:"latency_p99_ms"`
	ByProvider  map[string]ProviderSummary `json:"by_provider"`
	ByOperation map[string]ProviderSummary `json:"by_operation"`
}

// Reporter computes usage aggregates with raw SQL. Percentiles and grouped
// rollups are what PostgreSQL is good at; doing them through the ORM would
// mean dragging every row over the wire.
type Reporter struct {
	db  *stdsql.DB
	bus *bus.Bus
}

// NewReporter creates a reporter. b may be nil (no caching).
func NewReporter(db *stdsql.DB, b *bus.Bus) *Reporter {
	return &Reporter{db: db, bus: b}
}

// Invalidate implements Invalidator: the cached realtime summary is dropped
// after every flush so the next read recomputes.
func (r *Reporter) Invalidate(ctx context.Context) {
	if r.bus == nil {
		return
	}
	if err := r.bus.Delete(ctx, realtimeCacheKey); err != nil {
		slog.Warn("Failed to invalidate usage cache", "error", err)
	}
}

// Realtime returns the rolling 24-hour summary, served from cache when a
// fresh copy exists.
func (r *Reporter) Realtime(ctx context.Context) (*Summary, error) {
	if r.bus != nil {
		if data, err := r.bus.Get(ctx, realtimeCacheKey); err == nil {
			var cached Summary
			if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
				return &cached, nil
			}
		} else if !errors.Is(err, bus.ErrNotFound) {
			slog.Warn("Usage cache read failed, computing directly", "error", err)
		}
	}

	now := time.Now().UTC()
	summary, err := r.Window(ctx, now.Add(-24*time.Hour), now)
	if err != nil {
		return nil, err
	}

	if r.bus != nil {
		if data, jsonErr := json.Marshal(summary); jsonErr == nil {
			if err := r.bus.Set(ctx, realtimeCacheKey, data, realtimeCacheTTL); err != nil {
				slog.Warn("Failed to cache usage summary", "error", err)
			}
		}
	}
	return summary, nil
}

// Window computes the full summary for [start, end).
func (r *Reporter) Window(ctx context.Context, start, end time.Time) (*Summary, error) {
	summary := &Summary{
		WindowStart: start,
		WindowEnd:   end,
		ByProvider:  make(map[string]ProviderSummary),
		ByOperation: make(map[string]ProviderSummary),
	}

	// Totals and latency percentiles in one pass.
	row := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(total_tokens), 0),
			COALESCE(SUM(cost_usd), 0),
			COALESCE(AVG(CASE WHEN success THEN 1.0 ELSE 0.0 END), 1.0),
			COALESCE(AVG(CASE WHEN cache_hit THEN 1.0 ELSE 0.0 END), 0),
			COALESCE(percentile_cont(0.5) WITHIN GROUP (ORDER BY latency_ms), 0),
			COALESCE(percentile_cont(0.95) WITHIN GROUP (ORDER BY latency_ms), 0),
			COALESCE(percentile_cont(0.99) WITHIN GROUP (ORDER BY latency_ms), 0)
		FROM api_call_logs
		WHERE created_at >= $1 AND created_at < $2`, start, end)
	if err := row.Scan(
		&summary.TotalCalls, &summary.TotalTokens, &summary.TotalCost,
		&summary.SuccessRate, &summary.CacheHit,
		&summary.LatencyP50, &summary.LatencyP95, &summary.LatencyP99,
	); err != nil {
		return nil, fmt.Errorf("failed to compute usage totals: %w", err)
	}

	byProvider, err := r.grouped(ctx, "provider", start, end)
	if err != nil {
		return nil, err
	}
	summary.ByProvider = byProvider

	byOperation, err := r.grouped(ctx, "operation", start, end)
	if err != nil {
		return nil, err
	}
	summary.ByOperation = byOperation

	return summary, nil
}

// DailyCost returns per-day cost totals for the last n days, oldest first.
func (r *Reporter) DailyCost(ctx context.Context, days int) (map[string]float64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date_trunc('day', created_at)::date::text, COALESCE(SUM(cost_usd), 0)
		FROM api_call_logs
		WHERE created_at >= $1
		GROUP BY 1
		ORDER BY 1`, time.Now().UTC().AddDate(0, 0, -days))
	if err != nil {
		return nil, fmt.Errorf("failed to compute daily cost: %w", err)
	}
	defer rows.Close()

	out := make(map[string]float64)
	for rows.Next() {
		var day string
		var cost float64
		if err := rows.Scan(&day, &cost); err != nil {
			return nil, fmt.Errorf("failed to scan daily cost row: %w", err)
		}
		out[day] = cost
	}
	return out, rows.Err()
}

// Aggregate intervals accepted by Aggregates.
const (
	IntervalHour  = "hour"
	IntervalDay   = "day"
	IntervalMonth = "month"
)

// ErrBadInterval rejects aggregate intervals outside hour/day/month.
var ErrBadInterval = errors.New("interval must be hour, day, or month")

// AggregateBucket is one interval of the usage time series.
type AggregateBucket struct {
	Bucket      time.Time `json:"bucket"`
	Calls       int       `json:"calls"`
	Tokens      int       `json:"tokens"`
	CostUSD     float64   `json:"cost_usd"`
	SuccessRate float64   `json:"success_rate"`
}

// Percentiles reports latency quantiles for a window.
type Percentiles struct {
	P50 float64 `json:"p50_ms"`
	P95 float64 `json:"p95_ms"`
	P99 float64 `json:"p99_ms"`
}

// Aggregates returns the usage time series for [start, end) bucketed by
// interval, optionally filtered to one provider. Buckets with no calls are
// absent from the result.
func (r *Reporter) Aggregates(ctx context.Context, start, end time.Time, interval, provider string) ([]AggregateBucket, error) {
	switch interval {
	case IntervalHour, IntervalDay, IntervalMonth:
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadInterval, interval)
	}

	query := `
		SELECT date_trunc($1, created_at),
			COUNT(*),
			COALESCE(SUM(total_tokens), 0),
			COALESCE(SUM(cost_usd), 0),
			COALESCE(AVG(CASE WHEN success THEN 1.0 ELSE 0.0 END), 1.0)
		FROM api_call_logs
		WHERE created_at >= $2 AND created_at < $3`
	args := []interface{}{interval, start, end}
	if provider != "" {
		query += ` AND provider = $4`
		args = append(args, provider)
	}
	query += `
		GROUP BY 1
		ORDER BY 1`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to compute usage aggregates: %w", err)
	}
	defer rows.Close()

	var out []AggregateBucket
	for rows.Next() {
		var b AggregateBucket
		if err := rows.Scan(&b.Bucket, &b.Calls, &b.Tokens, &b.CostUSD, &b.SuccessRate); err != nil {
			return nil, fmt.Errorf("failed to scan aggregate row: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// LatencyPercentiles returns p50/p95/p99 latency for [start, end), optionally
// filtered to one provider.
func (r *Reporter) LatencyPercentiles(ctx context.Context, start, end time.Time, provider string) (*Percentiles, error) {
	query := `
		SELECT
			COALESCE(percentile_cont(0.5) WITHIN GROUP (ORDER BY latency_ms), 0),
			COALESCE(percentile_cont(0.95) WITHIN GROUP (ORDER BY latency_ms), 0),
			COALESCE(percentile_cont(0.99) WITHIN GROUP (ORDER BY latency_ms), 0)
		FROM api_call_logs
		WHERE created_at >= $1 AND created_at < $2`
	args := []interface{}{start, end}
	if provider != "" {
		query += ` AND provider = $3`
		args = append(args, provider)
	}

	var p Percentiles
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&p.P50, &p.P95, &p.P99); err != nil {
		return nil, fmt.Errorf("failed to compute latency percentiles: %w", err)
	}
	return &p, nil
}

// SuccessRate returns the success ratio for [start, end), optionally filtered
// to one provider. A window with no calls reports 1.0.
func (r *Reporter) SuccessRate(ctx context.Context, start, end time.Time, provider string) (float64, error) {
	query := `
		SELECT COALESCE(AVG(CASE WHEN success THEN 1.0 ELSE 0.0 END), 1.0)
		FROM api_call_logs
		WHERE created_at >= $1 AND created_at < $2`
	args := []interface{}{start, end}
	if provider != "" {
		query += ` AND provider = $3`
		args = append(args, provider)
	}

	var rate float64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&rate); err != nil {
		return 0, fmt.Errorf("failed to compute success rate: %w", err)
	}
	return rate, nil
}

// grouped computes the per-provider or per-operation rollup. groupCol is
// always one of the two fixed column names, never user input.
func (r *Reporter) grouped(ctx context.Context, groupCol string, start, end time.Time) (map[string]ProviderSummary, error) {
	query := fmt.Sprintf(`
		SELECT %s,
			COUNT(*),
			COALESCE(SUM(total_tokens), 0),
			COALESCE(SUM(cost_usd), 0),
			COALESCE(AVG(CASE WHEN success THEN 1.0 ELSE 0.0 END), 1.0),
			COALESCE(AVG(latency_ms), 0)
		FROM api_call_logs
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY %s`, groupCol, groupCol)

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to compute %s rollup: %w", groupCol, err)
	}
	defer rows.Close()

	out := make(map[string]ProviderSummary)
	for rows.Next() {
		var key string
		var s ProviderSummary
		if err := rows.Scan(&key, &s.Calls, &s.Tokens, &s.CostUSD, &s.SuccessRate, &s.AvgLatencyMS); err != nil {
			return nil, fmt.Errorf("failed to scan %s rollup row: %w", groupCol, err)
		}
		out[key] = s
	}
	return out, rows.Err()
}
