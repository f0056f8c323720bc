package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
)

// ErrQueueFull rejects a submission when the pending queue is at capacity.
// Callers treat it as backpressure and drop the tick rather than block.
var ErrQueueFull = errors.New("job queue full")

// ErrPoolStopped rejects submissions after shutdown began.
var ErrPoolStopped = errors.New("pool stopped")

// Job is one unit of scheduled work.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Pool runs submitted jobs on a fixed set of workers. The pending queue is
// bounded so a stuck downstream cannot pile up work without limit.
type Pool struct {
	cfg      *config.PoolConfig
	jobs     chan Job
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu        sync.RWMutex
	started   bool
	active    int
	processed int
	rejected  int
}

// PoolHealth is a point-in-time snapshot for the health endpoint.
type PoolHealth struct {
	Workers    int `json:"workers"`
	ActiveJobs int `json:"active_jobs"`
	QueueDepth int `json:"queue_depth"`
	Processed  int `json:"processed"`
	Rejected   int `json:"rejected"`
}

// NewPool creates a worker pool. Call Start before submitting.
func NewPool(cfg *config.PoolConfig) *Pool {
	return &Pool{
		cfg:    cfg,
		jobs:   make(chan Job, cfg.QueueCap),
		stopCh: make(chan struct{}),
	}
}

// Start spawns the worker goroutines. Safe to call more than once; subsequent
// calls are no-ops.
func (p *Pool) Start() {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		slog.Warn("Worker pool already started, ignoring duplicate Start call")
		return
	}
	p.started = true
	p.mu.Unlock()

	slog.Info("Starting worker pool", "worker_count", p.cfg.WorkerCount, "queue_cap", p.cfg.QueueCap)
	for i := 0; i < p.cfg.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Submit enqueues a job. A full queue rejects with ErrQueueFull instead of
// blocking the caller.
func (p *Pool) Submit(job Job) error {
	select {
	case <-p.stopCh:
		return fmt.Errorf("submit %s: %w", job.Name, ErrPoolStopped)
	default:
	}

	select {
	case p.jobs <- job:
		return nil
	default:
		p.mu.Lock()
		p.rejected++
		p.mu.Unlock()
		return fmt.Errorf("submit %s: %w", job.Name, ErrQueueFull)
	}
}

// Stop signals workers to finish their current job and waits up to the
// configured graceful shutdown timeout. Queued jobs that never started are
// dropped.
func (p *Pool) Stop() error {
	p.stopOnce.Do(func() { close(p.stopCh) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped")
		return nil
	case <-time.After(p.cfg.GracefulShutdownTimeout):
		return fmt.Errorf("pool shutdown timed out after %v with jobs in flight", p.cfg.GracefulShutdownTimeout)
	}
}

// Health returns the current pool snapshot.
func (p *Pool) Health() PoolHealth {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return PoolHealth{
		Workers:    p.cfg.WorkerCount,
		ActiveJobs: p.active,
		QueueDepth: len(p.jobs),
		Processed:  p.processed,
		Rejected:   p.rejected,
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	log := slog.With("worker_id", id)

	for {
		select {
		case <-p.stopCh:
			return
		case job := <-p.jobs:
			p.runJob(log, job)
		}
	}
}

func (p *Pool) runJob(log *slog.Logger, job Job) {
	p.mu.Lock()
	p.active++
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.active--
		p.processed++
		p.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.JobTimeout)
	defer cancel()

	start := time.Now()
	if err := job.Run(ctx); err != nil {
		log.Error("Scheduled job failed", "job", job.Name, "duration", time.Since(start), "error", err)
		return
	}
	log.Debug("Scheduled job finished", "job", job.Name, "duration", time.Since(start))
}
