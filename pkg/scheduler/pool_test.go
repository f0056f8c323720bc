package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
)

func testPoolConfig() *config.PoolConfig {
	return &config.PoolConfig{
		WorkerCount:             2,
		QueueCap:                4,
		JobTimeout:              5 * time.Second,
		GracefulShutdownTimeout: 5 * time.Second,
	}
}

func TestPool_RunsSubmittedJobs(t *testing.T) {
	pool := NewPool(testPoolConfig())
	pool.Start()
	defer func() { _ = pool.Stop() }()

	var ran atomic.Int64
	for i := 0; i < 4; i++ {
		require.NoError(t, pool.Submit(Job{
			Name: "count",
			Run: func(context.Context) error {
				ran.Add(1)
				return nil
			},
		}))
	}

	require.Eventually(t, func() bool { return ran.Load() == 4 },
		3*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return pool.Health().Processed == 4 },
		3*time.Second, 10*time.Millisecond)
}

func TestPool_RejectsWhenQueueFull(t *testing.T) {
	cfg := testPoolConfig()
	cfg.WorkerCount = 1
	cfg.QueueCap = 1
	pool := NewPool(cfg)
	pool.Start()

	release := make(chan struct{})
	started := make(chan struct{})
	blocker := Job{Name: "blocker", Run: func(ctx context.Context) error {
		close(started)
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil
	}}

	require.NoError(t, pool.Submit(blocker))
	<-started

	// One slot in the queue, then backpressure.
	require.NoError(t, pool.Submit(Job{Name: "queued", Run: func(context.Context) error { return nil }}))
	err := pool.Submit(Job{Name: "overflow", Run: func(context.Context) error { return nil }})
	require.ErrorIs(t, err, ErrQueueFull)
	assert.Equal(t, 1, pool.Health().Rejected)

	close(release)
	require.NoError(t, pool.Stop())
}

func TestPool_JobGetsTimeoutContext(t *testing.T) {
	cfg := testPoolConfig()
	cfg.JobTimeout = 20 * time.Millisecond
	pool := NewPool(cfg)
	pool.Start()
	defer func() { _ = pool.Stop() }()

	timedOut := make(chan struct{})
	require.NoError(t, pool.Submit(Job{
		Name: "slow",
		Run: func(ctx context.Context) error {
			<-ctx.Done()
			close(timedOut)
			return ctx.Err()
		},
	}))

	select {
	case <-timedOut:
	case <-time.After(3 * time.Second):
		t.Fatal("job context never timed out")
	}
}

func TestPool_StopFinishesActiveJob(t *testing.T) {
	cfg := testPoolConfig()
	cfg.WorkerCount = 1
	pool := NewPool(cfg)
	pool.Start()

	started := make(chan struct{})
	var finished atomic.Bool
	require.NoError(t, pool.Submit(Job{
		Name: "active",
		Run: func(context.Context) error {
			close(started)
			time.Sleep(50 * time.Millisecond)
			finished.Store(true)
			return nil
		},
	}))
	<-started

	require.NoError(t, pool.Stop())
	assert.True(t, finished.Load())

	// Submissions after shutdown are rejected.
	err := pool.Submit(Job{Name: "late", Run: func(context.Context) error { return nil }})
	require.ErrorIs(t, err, ErrPoolStopped)
}

func TestPool_StopTimesOutOnStuckJob(t *testing.T) {
	cfg := testPoolConfig()
	cfg.WorkerCount = 1
	cfg.JobTimeout = time.Minute
	cfg.GracefulShutdownTimeout = 30 * time.Millisecond
	pool := NewPool(cfg)
	pool.Start()

	release := make(chan struct{})
	defer close(release)
	started := make(chan struct{})
	require.NoError(t, pool.Submit(Job{
		Name: "stuck",
		Run: func(context.Context) error {
			close(started)
			<-release
			return nil
		},
	}))
	<-started

	err := pool.Stop()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}
