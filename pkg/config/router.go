package config

import "time"

// RouterConfig controls provider selection defaults.
type RouterConfig struct {
	// TaskDefaults maps a task class to its default provider chain, in order.
	// Missing task classes fall back to DefaultChain.
	TaskDefaults map[string][]string `yaml:"task_defaults,omitempty"`

	// DefaultChain is used when a task class has no entry in TaskDefaults.
	DefaultChain []string `yaml:"default_chain,omitempty"`

	// SuccessRateFloor filters out providers whose recent success rate
	// (over StatsWindow) falls below this fraction. 0 disables the filter.
	SuccessRateFloor float64 `yaml:"success_rate_floor,omitempty"`

	// StatsWindow is the rolling window for success-rate and latency stats.
	StatsWindow time.Duration `yaml:"stats_window,omitempty"`
}

// DefaultRouterConfig returns the built-in task-default table.
// fast/cheap = openai, high-quality = anthropic, cost-optimized = deepseek,
// local = ollama.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		TaskDefaults: map[string][]string{
			"qualification": {"openai"},
			"enrichment":    {"openai", "anthropic"},
			"growth":        {"deepseek"},
			"marketing":     {"anthropic"},
			"bdr":           {"openai", "anthropic"},
			"conversation":  {"openai", "anthropic"},
			"parsing":       {"ollama", "openai"},
			"vision":        {"anthropic"},
		},
		DefaultChain:     []string{"openai", "anthropic"},
		SuccessRateFloor: 0.5,
		StatsWindow:      60 * time.Minute,
	}
}

// ResilienceConfig controls the circuit breaker and retry layers.
type ResilienceConfig struct {
	// BreakerFailureThreshold is the consecutive-failure count that opens a breaker.
	BreakerFailureThreshold int `yaml:"breaker_failure_threshold,omitempty"`

	// BreakerRecoveryTimeout is how long an open breaker waits before half-open.
	BreakerRecoveryTimeout time.Duration `yaml:"breaker_recovery_timeout,omitempty"`

	// RetryMaxAttempts bounds total attempts per logical call (first try included).
	RetryMaxAttempts int `yaml:"retry_max_attempts,omitempty"`

	// RetryBaseDelay is the initial backoff delay.
	RetryBaseDelay time.Duration `yaml:"retry_base_delay,omitempty"`

	// RetryMaxDelay caps the backoff delay.
	RetryMaxDelay time.Duration `yaml:"retry_max_delay,omitempty"`
}

// DefaultResilienceConfig returns the built-in resilience defaults.
func DefaultResilienceConfig() *ResilienceConfig {
	return &ResilienceConfig{
		BreakerFailureThreshold: 5,
		BreakerRecoveryTimeout:  60 * time.Second,
		RetryMaxAttempts:        3,
		RetryBaseDelay:          1 * time.Second,
		RetryMaxDelay:           60 * time.Second,
	}
}

// RuntimeConfig controls the agent runtime.
type RuntimeConfig struct {
	// StepCap is the hard per-invocation step limit for graph agents.
	StepCap int `yaml:"step_cap,omitempty"`

	// CheckpointTTL is how long a checkpoint remains resumable.
	CheckpointTTL time.Duration `yaml:"checkpoint_ttl,omitempty"`

	// DefaultDeadline bounds an agent invocation when the caller sets none.
	DefaultDeadline time.Duration `yaml:"default_deadline,omitempty"`

	// StructuredOutputRetries is the number of corrective reprompts after a
	// schema validation failure before the call is reported as bad_request.
	StructuredOutputRetries int `yaml:"structured_output_retries,omitempty"`
}

// DefaultRuntimeConfig returns the built-in runtime defaults.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		StepCap:                 25,
		CheckpointTTL:           24 * time.Hour,
		DefaultDeadline:         5 * time.Minute,
		StructuredOutputRetries: 2,
	}
}

// StreamConfig controls the streaming fabric.
type StreamConfig struct {
	// SubscriberQueueBound is the per-subscriber chunk queue size; a subscriber
	// exceeding it is dropped with a slow_subscriber error chunk.
	SubscriberQueueBound int `yaml:"subscriber_queue_bound,omitempty"`

	// TerminalGrace is how long a terminal chunk stays retrievable after close.
	TerminalGrace time.Duration `yaml:"terminal_grace,omitempty"`
}

// DefaultStreamConfig returns the built-in streaming defaults.
func DefaultStreamConfig() *StreamConfig {
	return &StreamConfig{
		SubscriberQueueBound: 1024,
		TerminalGrace:        60 * time.Second,
	}
}
