package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the complete salesagent.yaml file structure.
type YAMLConfig struct {
	Providers  map[string]*ProviderConfig `yaml:"providers"`
	Platforms  map[string]*PlatformConfig `yaml:"crm_platforms"`
	Router     *RouterConfig              `yaml:"router"`
	Resilience *ResilienceConfig          `yaml:"resilience"`
	Runtime    *RuntimeConfig             `yaml:"runtime"`
	Stream     *StreamConfig              `yaml:"stream"`
	Pool       *PoolConfig                `yaml:"pool"`
	Scheduler  *SchedulerConfig           `yaml:"scheduler"`
}

// RequiredEnv lists the environment variables that must be set at startup.
// Missing entries are fatal.
var RequiredEnv = []string{
	"DATABASE_URL",
	"REDIS_URL",
	"CRM_ENCRYPTION_KEY",
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load salesagent.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Apply built-in defaults for omitted sections
//  5. Build in-memory registries
//  6. Validate configuration and required environment
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"providers", stats.Providers,
		"crm_platforms", stats.Platforms)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	path := filepath.Join(configDir, "salesagent.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewLoadError(path, ErrConfigNotFound)
		}
		return nil, NewLoadError(path, err)
	}

	expanded := ExpandEnv(data)

	var raw YAMLConfig
	if err := yaml.Unmarshal(expanded, &raw); err != nil {
		return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	cfg := &Config{
		configDir:  configDir,
		Providers:  NewProviderRegistry(raw.Providers),
		Platforms:  NewPlatformRegistry(raw.Platforms),
		Router:     mergeRouter(raw.Router),
		Resilience: mergeResilience(raw.Resilience),
		Runtime:    mergeRuntime(raw.Runtime),
		Stream:     mergeStream(raw.Stream),
		Pool:       mergePool(raw.Pool),
		Scheduler:  mergeScheduler(raw.Scheduler),
	}
	return cfg, nil
}

// mergeRouter applies built-in defaults for omitted router fields.
func mergeRouter(user *RouterConfig) *RouterConfig {
	def := DefaultRouterConfig()
	if user == nil {
		return def
	}
	if user.TaskDefaults == nil {
		user.TaskDefaults = def.TaskDefaults
	}
	if len(user.DefaultChain) == 0 {
		user.DefaultChain = def.DefaultChain
	}
	if user.SuccessRateFloor == 0 {
		user.SuccessRateFloor = def.SuccessRateFloor
	}
	if user.StatsWindow == 0 {
		user.StatsWindow = def.StatsWindow
	}
	return user
}

func mergeResilience(user *ResilienceConfig) *ResilienceConfig {
	def := DefaultResilienceConfig()
	if user == nil {
		return def
	}
	if user.BreakerFailureThreshold == 0 {
		user.BreakerFailureThreshold = def.BreakerFailureThreshold
	}
	if user.BreakerRecoveryTimeout == 0 {
		user.BreakerRecoveryTimeout = def.BreakerRecoveryTimeout
	}
	if user.RetryMaxAttempts == 0 {
		user.RetryMaxAttempts = def.RetryMaxAttempts
	}
	if user.RetryBaseDelay == 0 {
		user.RetryBaseDelay = def.RetryBaseDelay
	}
	if user.RetryMaxDelay == 0 {
		user.RetryMaxDelay = def.RetryMaxDelay
	}
	return user
}

func mergeRuntime(user *RuntimeConfig) *RuntimeConfig {
	def := DefaultRuntimeConfig()
	if user == nil {
		return def
	}
	if user.StepCap == 0 {
		user.StepCap = def.StepCap
	}
	if user.CheckpointTTL == 0 {
		user.CheckpointTTL = def.CheckpointTTL
	}
	if user.DefaultDeadline == 0 {
		user.DefaultDeadline = def.DefaultDeadline
	}
	if user.StructuredOutputRetries == 0 {
		user.StructuredOutputRetries = def.StructuredOutputRetries
	}
	return user
}

func mergeStream(user *StreamConfig) *StreamConfig {
	def := DefaultStreamConfig()
	if user == nil {
		return def
	}
	if user.SubscriberQueueBound == 0 {
		user.SubscriberQueueBound = def.SubscriberQueueBound
	}
	if user.TerminalGrace == 0 {
		user.TerminalGrace = def.TerminalGrace
	}
	return user
}

func mergePool(user *PoolConfig) *PoolConfig {
	def := DefaultPoolConfig()
	if user == nil {
		return def
	}
	if user.WorkerCount == 0 {
		user.WorkerCount = def.WorkerCount
	}
	if user.QueueCap == 0 {
		user.QueueCap = def.QueueCap
	}
	if user.JobTimeout == 0 {
		user.JobTimeout = def.JobTimeout
	}
	if user.GracefulShutdownTimeout == 0 {
		user.GracefulShutdownTimeout = def.GracefulShutdownTimeout
	}
	return user
}

func mergeScheduler(user *SchedulerConfig) *SchedulerConfig {
	def := DefaultSchedulerConfig()
	if user == nil {
		return def
	}
	if user.RWSyncInterval == 0 {
		user.RWSyncInterval = def.RWSyncInterval
	}
	if user.ImportTimesUTC == nil {
		user.ImportTimesUTC = def.ImportTimesUTC
	}
	if user.CacheSweepInterval == 0 {
		user.CacheSweepInterval = def.CacheSweepInterval
	}
	return user
}
