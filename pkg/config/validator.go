package config

import (
	"fmt"
	"os"
)

// validate checks the loaded configuration for completeness.
// Provider API keys, the repository DSN, the bus DSN, and the CRM encryption
// key are all required at startup; missing values are fatal.
func validate(cfg *Config) error {
	if cfg.Providers.Len() == 0 {
		return NewValidationError("providers", "", "", ErrMissingRequiredField)
	}

	for tag, p := range cfg.Providers.GetAll() {
		if p.Type == "" {
			return NewValidationError("provider", tag, "type", ErrMissingRequiredField)
		}
		if p.Model == "" {
			return NewValidationError("provider", tag, "model", ErrMissingRequiredField)
		}
		switch p.Type {
		case ProviderTypeOpenAI, ProviderTypeAnthropic, ProviderTypeDeepSeek, ProviderTypeOllama:
		default:
			return NewValidationError("provider", tag, "type",
				fmt.Errorf("%w: %s", ErrInvalidValue, p.Type))
		}
		// Ollama runs locally without a key; everything else needs one.
		if p.Type != ProviderTypeOllama {
			if p.APIKeyEnv == "" {
				return NewValidationError("provider", tag, "api_key_env", ErrMissingRequiredField)
			}
			if os.Getenv(p.APIKeyEnv) == "" {
				return NewValidationError("provider", tag, "api_key_env",
					fmt.Errorf("%w: %s", ErrMissingEnv, p.APIKeyEnv))
			}
		}
		if p.Temperature < 0 || p.Temperature > 2 {
			return NewValidationError("provider", tag, "temperature",
				fmt.Errorf("%w: %v not in [0,2]", ErrInvalidValue, p.Temperature))
		}
	}

	for tag, pl := range cfg.Platforms.GetAll() {
		if pl.BaseURL == "" {
			return NewValidationError("platform", tag, "base_url", ErrMissingRequiredField)
		}
		if len(pl.Capabilities) == 0 {
			return NewValidationError("platform", tag, "capabilities", ErrMissingRequiredField)
		}
		if pl.RateBudget <= 0 {
			return NewValidationError("platform", tag, "rate_budget",
				fmt.Errorf("%w: must be positive", ErrInvalidValue))
		}
		switch pl.RateBoundary {
		case RateBoundaryHour, RateBoundaryDay:
		default:
			return NewValidationError("platform", tag, "rate_boundary",
				fmt.Errorf("%w: %s", ErrInvalidValue, pl.RateBoundary))
		}
	}

	// Router chains must reference registered providers.
	for task, chain := range cfg.Router.TaskDefaults {
		for _, tag := range chain {
			if !cfg.Providers.Has(tag) {
				return NewValidationError("router", task, "task_defaults",
					fmt.Errorf("%w: %s", ErrProviderNotFound, tag))
			}
		}
	}
	for _, tag := range cfg.Router.DefaultChain {
		if !cfg.Providers.Has(tag) {
			return NewValidationError("router", "default_chain", "",
				fmt.Errorf("%w: %s", ErrProviderNotFound, tag))
		}
	}

	for _, key := range RequiredEnv {
		if os.Getenv(key) == "" {
			return NewValidationError("env", key, "", ErrMissingEnv)
		}
	}

	return nil
}
