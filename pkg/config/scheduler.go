package config

import "time"

// SchedulerConfig controls periodic job timing.
type SchedulerConfig struct {
	// RWSyncInterval is how often read-write platforms sync bidirectionally.
	RWSyncInterval time.Duration `yaml:"rw_sync_interval,omitempty"`

	// ImportTimesUTC maps a read-only platform tag to its daily import hour (UTC).
	ImportTimesUTC map[string]int `yaml:"import_times_utc,omitempty"`

	// CacheSweepInterval is how often aged usage caches are invalidated.
	CacheSweepInterval time.Duration `yaml:"cache_sweep_interval,omitempty"`
}

// DefaultSchedulerConfig returns the built-in schedule.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		RWSyncInterval: 2 * time.Hour,
		ImportTimesUTC: map[string]int{
			"apollo":    2,
			"salesloft": 3,
		},
		CacheSweepInterval: time.Hour,
	}
}
