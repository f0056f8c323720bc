package config

import (
	"fmt"
	"sync"
)

// ProviderType identifies the adapter implementation for a provider.
type ProviderType string

// Supported provider adapter types.
const (
	ProviderTypeOpenAI    ProviderType = "openai"
	ProviderTypeAnthropic ProviderType = "anthropic"
	ProviderTypeDeepSeek  ProviderType = "deepseek"
	ProviderTypeOllama    ProviderType = "ollama"
)

// Capability tags a provider feature the router may require.
type Capability string

// Provider capabilities consulted by the router.
const (
	CapabilityVision      Capability = "vision"
	CapabilityStreaming   Capability = "streaming"
	CapabilityLongContext Capability = "long_context"
	CapabilityCaching     Capability = "caching"
)

// ProviderConfig defines one LLM provider entry.
type ProviderConfig struct {
	// Adapter type (required)
	Type ProviderType `yaml:"type"`

	// Default model name (required)
	Model string `yaml:"model"`

	// Environment variable holding the API key. Empty for the local provider.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint (required for deepseek/ollama OpenAI-compatible adapters)
	BaseURL string `yaml:"base_url,omitempty"`

	// Default generation bounds
	MaxTokens   int     `yaml:"max_tokens,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`

	// Capability tags the router consults
	Capabilities []Capability `yaml:"capabilities,omitempty"`
}

// HasCapability reports whether the provider declares the given capability.
func (c *ProviderConfig) HasCapability(cap Capability) bool {
	for _, have := range c.Capabilities {
		if have == cap {
			return true
		}
	}
	return false
}

// ProviderRegistry stores provider configurations in memory with thread-safe access.
type ProviderRegistry struct {
	providers map[string]*ProviderConfig
	mu        sync.RWMutex
}

// NewProviderRegistry creates a new provider registry.
func NewProviderRegistry(providers map[string]*ProviderConfig) *ProviderRegistry {
	copied := make(map[string]*ProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &ProviderRegistry{providers: copied}
}

// Get retrieves a provider configuration by tag (thread-safe).
func (r *ProviderRegistry) Get(tag string) (*ProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[tag]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, tag)
	}
	return provider, nil
}

// GetAll returns all provider configurations (thread-safe, returns copy).
func (r *ProviderRegistry) GetAll() map[string]*ProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*ProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// Has checks if a provider exists in the registry (thread-safe).
func (r *ProviderRegistry) Has(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.providers[tag]
	return exists
}

// Tags returns all registered provider tags (thread-safe).
func (r *ProviderRegistry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.providers))
	for tag := range r.providers {
		tags = append(tags, tag)
	}
	return tags
}

// Len returns the number of providers in the registry (thread-safe).
func (r *ProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
