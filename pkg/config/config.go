package config

// Config is the umbrella configuration object that encapsulates all
// registries and defaults. This is the primary object returned by
// Initialize() and used throughout the application.
type Config struct {
	configDir string

	Providers  *ProviderRegistry
	Platforms  *PlatformRegistry
	Router     *RouterConfig
	Resilience *ResilienceConfig
	Runtime    *RuntimeConfig
	Stream     *StreamConfig
	Pool       *PoolConfig
	Scheduler  *SchedulerConfig
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	Providers int
	Platforms int
}

// Stats returns configuration statistics for logging/monitoring.
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Providers != nil {
		s.Providers = c.Providers.Len()
	}
	if c.Platforms != nil {
		s.Platforms = c.Platforms.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetProvider retrieves a provider configuration by tag.
func (c *Config) GetProvider(tag string) (*ProviderConfig, error) {
	return c.Providers.Get(tag)
}

// GetPlatform retrieves a CRM platform configuration by tag.
func (c *Config) GetPlatform(tag string) (*PlatformConfig, error) {
	return c.Platforms.Get(tag)
}
