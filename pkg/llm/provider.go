// Package llm provides the provider adapter layer: a uniform interface over
// OpenAI, Anthropic, DeepSeek, and Ollama, plus the circuit breaker, retry
// handler, and task router that sit on top of it.
package llm

import (
	"context"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
)

// Provider is the uniform interface every model vendor adapter implements.
type Provider interface {
	// Name returns the registry tag for this provider (e.g. "openai").
	Name() string

	// Type returns the vendor family the adapter talks to.
	Type() config.ProviderType

	// Capabilities lists what this provider supports (vision, streaming, ...).
	Capabilities() []config.Capability

	// Pricing returns the cost model used for per-call cost computation.
	Pricing() Pricing

	// Generate sends a conversation and returns the complete response.
	Generate(ctx context.Context, input *GenerateInput) (*Response, error)

	// GenerateStream sends a conversation and returns a stream of chunks.
	// The returned channel is closed when the stream completes. Errors are
	// delivered as ErrorChunk values in the channel.
	GenerateStream(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)
}

// GenerateInput is the vendor-neutral request for one LLM call.
type GenerateInput struct {
	ExecutionID string
	Messages    []Message

	// Operation tags the call for usage accounting ("qualification", ...).
	Operation string
	UserID    string

	// MaxTokens and Temperature override the provider defaults when non-zero.
	MaxTokens   int
	Temperature *float64

	// Route carries per-request routing constraints honored by the Router.
	Route RouteOptions

	// EnableCaching marks the system prompt as a reusable prefix on vendors
	// that support prompt caching. Ignored elsewhere.
	EnableCaching bool

	// Image attaches one image to the final user turn. Only vision-capable
	// providers translate it; the rest ignore it.
	Image *ImageInput
}

// RouteOptions are per-request constraints the Router applies when building
// the provider chain for a call.
type RouteOptions struct {
	// ForcedProvider pins the chain to one registry tag when that provider
	// is admissible. An unavailable forced provider falls back to the
	// normal selection rules.
	ForcedProvider string

	// MaxLatencyMS filters out providers whose rolling p95 latency exceeds
	// the bound and orders survivors fastest first.
	MaxLatencyMS int64

	// MaxCostUSD filters out providers whose estimated call cost exceeds
	// the bound and orders survivors cheapest first.
	MaxCostUSD float64

	// RequiredCapabilities filters out providers missing any listed
	// capability.
	RequiredCapabilities []config.Capability
}

// ImageInput is a binary image attachment for vision requests.
type ImageInput struct {
	Data []byte
	MIME string // "image/png", "image/jpeg", ...
}

// Message is one turn of a conversation.
type Message struct {
	Role    string // RoleSystem, RoleUser, or RoleAssistant
	Content string
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Response holds the fully-collected result of a non-streaming call.
type Response struct {
	Text    string
	Model   string
	Usage   TokenUsage
	CostUSD float64

	// CacheHit reports that the vendor served part of the prompt from its
	// prompt cache.
	CacheHit bool
}

// TokenUsage reports token consumption for one LLM call.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// systemAndTurns splits a conversation into the system prompt (concatenated
// if several) and the remaining user/assistant turns. Vendor APIs take the
// system prompt out-of-band.
func systemAndTurns(messages []Message) (string, []Message) {
	var system string
	turns := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
			continue
		}
		turns = append(turns, m)
	}
	return system, turns
}
