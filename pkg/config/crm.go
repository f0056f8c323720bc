package config

import (
	"fmt"
	"sync"
)

// PlatformCapability tags what a CRM platform adapter supports.
type PlatformCapability string

// CRM platform capabilities.
const (
	PlatformRead  PlatformCapability = "read"
	PlatformWrite PlatformCapability = "write"
)

// RateBoundary names the reset boundary for a platform's call budget.
type RateBoundary string

// Supported rate-budget reset boundaries.
const (
	RateBoundaryHour RateBoundary = "hour"
	RateBoundaryDay  RateBoundary = "day"
)

// PlatformConfig defines one external CRM platform.
type PlatformConfig struct {
	// Adapter base URL (required)
	BaseURL string `yaml:"base_url"`

	// Environment variable holding the API key, used when no per-tenant
	// credential row exists.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Capabilities: read-only platforms reject export.
	Capabilities []PlatformCapability `yaml:"capabilities"`

	// RateBudget is the number of API calls allowed per boundary window.
	RateBudget int `yaml:"rate_budget"`

	// RateBoundary is when the budget resets.
	RateBoundary RateBoundary `yaml:"rate_boundary"`

	// PageSize for list pagination.
	PageSize int `yaml:"page_size,omitempty"`
}

// CanWrite reports whether the platform supports upserts.
func (c *PlatformConfig) CanWrite() bool {
	for _, cap := range c.Capabilities {
		if cap == PlatformWrite {
			return true
		}
	}
	return false
}

// PlatformRegistry stores CRM platform configurations with thread-safe access.
type PlatformRegistry struct {
	platforms map[string]*PlatformConfig
	mu        sync.RWMutex
}

// NewPlatformRegistry creates a new platform registry.
func NewPlatformRegistry(platforms map[string]*PlatformConfig) *PlatformRegistry {
	copied := make(map[string]*PlatformConfig, len(platforms))
	for k, v := range platforms {
		copied[k] = v
	}
	return &PlatformRegistry{platforms: copied}
}

// Get retrieves a platform configuration by tag (thread-safe).
func (r *PlatformRegistry) Get(tag string) (*PlatformConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	platform, exists := r.platforms[tag]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrPlatformNotFound, tag)
	}
	return platform, nil
}

// GetAll returns all platform configurations (thread-safe, returns copy).
func (r *PlatformRegistry) GetAll() map[string]*PlatformConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*PlatformConfig, len(r.platforms))
	for k, v := range r.platforms {
		result[k] = v
	}
	return result
}

// Tags returns all registered platform tags (thread-safe).
func (r *PlatformRegistry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.platforms))
	for tag := range r.platforms {
		tags = append(tags, tag)
	}
	return tags
}

// Len returns the number of platforms in the registry (thread-safe).
func (r *PlatformRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.platforms)
}
