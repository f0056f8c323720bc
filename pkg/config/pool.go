package config

import "time"

// PoolConfig contains worker pool configuration for on-demand job dispatch.
type PoolConfig struct {
	// WorkerCount is the number of worker goroutines.
	WorkerCount int `yaml:"worker_count"`

	// QueueCap bounds the pending-job queue; overflow is rejected with backpressure.
	QueueCap int `yaml:"queue_cap"`

	// JobTimeout is the maximum time one job may run.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active jobs on shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultPoolConfig returns the built-in pool defaults.
func DefaultPoolConfig() *PoolConfig {
	return &PoolConfig{
		WorkerCount:             5,
		QueueCap:                64,
		JobTimeout:              15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
	}
}
