package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
providers:
  openai:
    type: openai
    model: gpt-4o-mini
    api_key_env: OPENAI_API_KEY
    capabilities: [vision, streaming]
  local:
    type: ollama
    model: llama3
    base_url: http://localhost:11434/v1

crm_platforms:
  hubspot:
    base_url: https://api.hubapi.com
    api_key_env: HUBSPOT_API_KEY
    capabilities: [read, write]
    rate_budget: 100
    rate_boundary: hour
  apollo:
    base_url: https://api.apollo.io
    api_key_env: APOLLO_API_KEY
    capabilities: [read]
    rate_budget: 50
    rate_boundary: day

router:
  task_defaults:
    qualification: [openai]
    conversation: [openai, local]
  default_chain: [openai, local]

scheduler:
  rw_sync_interval: 30m
`

func setupTestConfigDir(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "salesagent.yaml"), []byte(yaml), 0o600))
	return dir
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("CRM_ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")
	t.Setenv("OPENAI_API_KEY", "test-key")
}

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t, testYAML)
	setRequiredEnv(t)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Providers.Has("openai"))
	assert.True(t, cfg.Providers.Has("local"))

	hubspot, err := cfg.Platforms.Get("hubspot")
	require.NoError(t, err)
	assert.True(t, hubspot.CanWrite())
	apollo, err := cfg.Platforms.Get("apollo")
	require.NoError(t, err)
	assert.False(t, apollo.CanWrite())

	// Explicit values survive, omitted sections get defaults.
	assert.Equal(t, []string{"openai", "local"}, cfg.Router.DefaultChain)
	assert.Equal(t, DefaultRouterConfig().SuccessRateFloor, cfg.Router.SuccessRateFloor)
	assert.Equal(t, 30*time.Minute, cfg.Scheduler.RWSyncInterval)
	assert.Equal(t, DefaultRuntimeConfig().StepCap, cfg.Runtime.StepCap)
	assert.Equal(t, DefaultStreamConfig().SubscriberQueueBound, cfg.Stream.SubscriberQueueBound)
	assert.Equal(t, DefaultPoolConfig().WorkerCount, cfg.Pool.WorkerCount)

	stats := cfg.Stats()
	assert.Equal(t, 2, stats.Providers)
	assert.Equal(t, 2, stats.Platforms)
}

func TestInitializeConfigNotFound(t *testing.T) {
	_, err := Initialize(context.Background(), "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(t *testing.T)
		yaml    string
		wantErr string
	}{
		{
			name:    "missing provider api key env",
			yaml:    testYAML,
			mutate:  func(t *testing.T) { t.Setenv("OPENAI_API_KEY", "") },
			wantErr: "OPENAI_API_KEY",
		},
		{
			name:    "missing required env",
			yaml:    testYAML,
			mutate:  func(t *testing.T) { t.Setenv("CRM_ENCRYPTION_KEY", "") },
			wantErr: "CRM_ENCRYPTION_KEY",
		},
		{
			name: "unknown provider type",
			yaml: `
providers:
  bad:
    type: cohere
    model: command-r
    api_key_env: OPENAI_API_KEY
`,
			mutate:  func(*testing.T) {},
			wantErr: "type",
		},
		{
			name: "router chain references unknown provider",
			yaml: `
providers:
  local:
    type: ollama
    model: llama3
router:
  task_defaults: {}
  default_chain: [missing]
`,
			mutate:  func(*testing.T) {},
			wantErr: "default_chain",
		},
		{
			name: "platform without rate budget",
			yaml: `
providers:
  local:
    type: ollama
    model: llama3
crm_platforms:
  hubspot:
    base_url: https://api.hubapi.com
    capabilities: [read, write]
    rate_boundary: hour
`,
			mutate:  func(*testing.T) {},
			wantErr: "rate_budget",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			tt.mutate(t)
			configDir := setupTestConfigDir(t, tt.yaml)

			_, err := Initialize(context.Background(), configDir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInitializeExpandsEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HUBSPOT_BASE", "https://api.hubapi.example")
	configDir := setupTestConfigDir(t, `
providers:
  local:
    type: ollama
    model: llama3
crm_platforms:
  hubspot:
    base_url: "{{.HUBSPOT_BASE}}"
    capabilities: [read, write]
    rate_budget: 10
    rate_boundary: hour
router:
  task_defaults: {}
  default_chain: [local]
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	hubspot, err := cfg.Platforms.Get("hubspot")
	require.NoError(t, err)
	assert.Equal(t, "https://api.hubapi.example", hubspot.BaseURL)
}
