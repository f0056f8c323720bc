// Package scheduler drives the periodic background work: recurring
// bidirectional syncs for read-write CRM platforms, nightly imports for
// read-only ones, and the hourly cache sweep. Jobs run on a bounded worker
// pool; a full queue drops the tick instead of queueing unbounded work.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
	"github.com/ScientiaCapital/sales-agent/pkg/crm"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
)

// Dispatcher starts sync runs. Satisfied by crm.Engine.
type Dispatcher interface {
	TriggerSync(ctx context.Context, req models.TriggerSyncRequest, filters crm.Filters) (string, bool, error)
}

// RunGuard reports whether a platform already has a running sync.
// Satisfied by services.SyncLogService.
type RunGuard interface {
	HasRunningSync(ctx context.Context, platform string) (bool, error)
}

// CacheInvalidator drops cached usage reports. Satisfied by usage.Reporter.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// CheckpointPruner deletes expired agent checkpoints.
// Satisfied by services.ExecutionService.
type CheckpointPruner interface {
	PruneCheckpoints(ctx context.Context, ttl time.Duration) (int, error)
}

// Scheduler owns the periodic job loops.
type Scheduler struct {
	cfg        *config.SchedulerConfig
	runtime    *config.RuntimeConfig
	registry   *config.PlatformRegistry
	dispatcher Dispatcher
	guard      RunGuard
	reports    CacheInvalidator
	executions CheckpointPruner
	pool       *Pool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// New wires the scheduler. The pool is owned by the scheduler from here on:
// Start starts it and Stop stops it.
func New(
	cfg *config.SchedulerConfig,
	runtime *config.RuntimeConfig,
	registry *config.PlatformRegistry,
	dispatcher Dispatcher,
	guard RunGuard,
	reports CacheInvalidator,
	executions CheckpointPruner,
	pool *Pool,
) *Scheduler {
	return &Scheduler{
		cfg:        cfg,
		runtime:    runtime,
		registry:   registry,
		dispatcher: dispatcher,
		guard:      guard,
		reports:    reports,
		executions: executions,
		pool:       pool,
		stopCh:     make(chan struct{}),
	}
}

// Start launches the job loops. Safe to call more than once.
func (s *Scheduler) Start() {
	if s.started {
		slog.Warn("Scheduler already started, ignoring duplicate Start call")
		return
	}
	s.started = true
	s.pool.Start()

	s.wg.Add(1)
	go s.runRWSyncLoop()

	for tag, hour := range s.cfg.ImportTimesUTC {
		s.wg.Add(1)
		go s.runDailyImportLoop(tag, hour)
	}

	s.wg.Add(1)
	go s.runCacheSweepLoop()

	slog.Info("Scheduler started",
		"rw_sync_interval", s.cfg.RWSyncInterval,
		"daily_imports", len(s.cfg.ImportTimesUTC),
		"cache_sweep_interval", s.cfg.CacheSweepInterval)
}

// Stop halts the loops, then drains the pool.
func (s *Scheduler) Stop() error {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	return s.pool.Stop()
}

// PoolHealth exposes the pool snapshot for the health endpoint.
func (s *Scheduler) PoolHealth() PoolHealth {
	return s.pool.Health()
}

func (s *Scheduler) runRWSyncLoop() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.cfg.RWSyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.dispatchRWSyncs()
		}
	}
}

// dispatchRWSyncs submits one bidirectional sync job per writable platform.
func (s *Scheduler) dispatchRWSyncs() {
	for tag, pc := range s.registry.GetAll() {
		if !pc.CanWrite() {
			continue
		}
		s.submit(s.syncJob(tag, "bidirectional"))
	}
}

func (s *Scheduler) runDailyImportLoop(tag string, hour int) {
	defer s.wg.Done()

	for {
		wait := untilNextUTCHour(time.Now().UTC(), hour)
		timer := time.NewTimer(wait)
		select {
		case <-s.stopCh:
			timer.Stop()
			return
		case <-timer.C:
			s.submit(s.syncJob(tag, "import"))
		}
	}
}

func (s *Scheduler) runCacheSweepLoop() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.cfg.CacheSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.submit(s.sweepJob())
		}
	}
}

// syncJob builds a sync dispatch job. A platform that still has a run in
// flight is skipped; the engine's own coalescing backs this up for dispatches
// that race the status write.
func (s *Scheduler) syncJob(tag, direction string) Job {
	return Job{
		Name: "sync-" + direction + "-" + tag,
		Run: func(ctx context.Context) error {
			running, err := s.guard.HasRunningSync(ctx, tag)
			if err != nil {
				return err
			}
			if running {
				slog.Info("Skipping scheduled sync, previous run still in flight", "platform", tag, "direction", direction)
				return nil
			}

			syncID, coalesced, err := s.dispatcher.TriggerSync(ctx, models.TriggerSyncRequest{
				Platform:  tag,
				Direction: direction,
			}, nil)
			if err != nil {
				return err
			}
			if coalesced {
				slog.Info("Scheduled sync coalesced with running dispatch", "platform", tag, "sync_id", syncID)
				return nil
			}
			slog.Info("Scheduled sync dispatched", "platform", tag, "direction", direction, "sync_id", syncID)
			return nil
		},
	}
}

// sweepJob invalidates aged usage report caches and prunes expired
// checkpoints.
func (s *Scheduler) sweepJob() Job {
	return Job{
		Name: "cache-sweep",
		Run: func(ctx context.Context) error {
			s.reports.Invalidate(ctx)
			pruned, err := s.executions.PruneCheckpoints(ctx, s.runtime.CheckpointTTL)
			if err != nil {
				return err
			}
			if pruned > 0 {
				slog.Info("Pruned expired checkpoints", "count", pruned)
			}
			return nil
		},
	}
}

func (s *Scheduler) submit(job Job) {
	if err := s.pool.Submit(job); err != nil {
		if errors.Is(err, ErrQueueFull) {
			slog.Warn("Job queue full, dropping scheduled job", "job", job.Name)
			return
		}
		slog.Warn("Failed to submit scheduled job", "job", job.Name, "error", err)
	}
}

// untilNextUTCHour returns the wait until the next occurrence of hour:00 UTC,
// strictly in the future.
func untilNextUTCHour(now time.Time, hour int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next.Sub(now)
}
