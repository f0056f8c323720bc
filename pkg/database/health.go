package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus is the repository probe result surfaced on /health.
type HealthStatus struct {
	Status        string `json:"status"`
	ResponseTime  int64  `json:"response_time_ms"`
	PoolOpen      int    `json:"pool_open"`
	PoolInUse     int    `json:"pool_in_use"`
	PoolIdle      int    `json:"pool_idle"`
	PoolWaits     int64  `json:"pool_waits"`
	PoolSaturated bool   `json:"pool_saturated"`
}

// Health pings the database and snapshots connection pool pressure.
// PoolSaturated flips when every allowed connection is checked out, which
// usually means a sync run or agent burst is holding the pool.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:        "healthy",
		ResponseTime:  time.Since(start).Milliseconds(),
		PoolOpen:      stats.OpenConnections,
		PoolInUse:     stats.InUse,
		PoolIdle:      stats.Idle,
		PoolWaits:     stats.WaitCount,
		PoolSaturated: stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections,
	}, nil
}
