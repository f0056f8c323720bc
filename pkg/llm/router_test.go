package llm

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
)

// recordingSink captures call records for assertions.
type recordingSink struct {
	mu      sync.Mutex
	records []CallRecord
}

func (s *recordingSink) Record(rec CallRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

func (s *recordingSink) all() []CallRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CallRecord, len(s.records))
	copy(out, s.records)
	return out
}

func routerConfig() *config.Config {
	return &config.Config{
		Router: &config.RouterConfig{
			TaskDefaults: map[string][]string{
				"qualification": {"openai"},
				"enrichment":    {"openai", "anthropic"},
			},
			DefaultChain:     []string{"openai", "anthropic"},
			SuccessRateFloor: 0.5,
			StatsWindow:      time.Minute,
		},
		Resilience: &config.ResilienceConfig{
			BreakerFailureThreshold: 3,
			BreakerRecoveryTimeout:  time.Minute,
			RetryMaxAttempts:        1,
			RetryBaseDelay:          time.Millisecond,
			RetryMaxDelay:           5 * time.Millisecond,
		},
	}
}

func TestRouter_FallsBackToNextProvider(t *testing.T) {
	primary := &fakeProvider{
		name: "openai",
		generateFn: func(int64) (*Response, error) {
			return nil, NewError("openai", ClassUpstreamUnavailable, assert.AnError)
		},
	}
	secondary := &fakeProvider{
		name:    "anthropic",
		pricing: Pricing{Model: PricingPerTokenSplit, InputPerMTokUSD: 3, OutputPerMTokUSD: 15},
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "from anthropic", Model: "claude-sonnet-4-5",
				Usage: TokenUsage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150}}, nil
		},
	}
	sink := &recordingSink{}
	r := NewRouterWithProviders(routerConfig(), map[string]Provider{
		"openai": primary, "anthropic": secondary,
	}, sink)

	resp, err := r.Generate(context.Background(), "enrichment", &GenerateInput{})
	require.NoError(t, err)
	assert.Equal(t, "from anthropic", resp.Text)

	records := sink.all()
	require.Len(t, records, 2)
	assert.Equal(t, "openai", records[0].Provider)
	assert.False(t, records[0].Success)
	assert.Equal(t, "anthropic", records[1].Provider)
	assert.True(t, records[1].Success)
	assert.Greater(t, records[1].CostUSD, 0.0)
	assert.Equal(t, "enrichment", records[1].Operation)
}

func TestRouter_BadRequestStopsChain(t *testing.T) {
	primary := &fakeProvider{
		name: "openai",
		generateFn: func(int64) (*Response, error) {
			return nil, NewError("openai", ClassBadRequest, assert.AnError)
		},
	}
	secondary := &fakeProvider{
		name: "anthropic",
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "should not be reached"}, nil
		},
	}
	r := NewRouterWithProviders(routerConfig(), map[string]Provider{
		"openai": primary, "anthropic": secondary,
	}, nil)

	_, err := r.Generate(context.Background(), "enrichment", &GenerateInput{})
	require.Error(t, err)
	assert.Equal(t, ClassBadRequest, ClassOf(err))
	assert.Equal(t, int64(0), secondary.calls.Load())
}

func TestRouter_SkipsOpenBreaker(t *testing.T) {
	primary := &fakeProvider{
		name: "openai",
		generateFn: func(int64) (*Response, error) {
			return nil, NewError("openai", ClassUpstreamUnavailable, assert.AnError)
		},
	}
	secondary := &fakeProvider{
		name: "anthropic",
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "ok"}, nil
		},
	}
	r := NewRouterWithProviders(routerConfig(), map[string]Provider{
		"openai": primary, "anthropic": secondary,
	}, nil)
	ctx := context.Background()

	// Trip the primary's breaker.
	for i := 0; i < 3; i++ {
		_, _ = r.Generate(ctx, "qualification", &GenerateInput{})
	}
	callsBefore := primary.calls.Load()

	// Chain for enrichment now starts at anthropic without touching openai.
	resp, err := r.Generate(ctx, "enrichment", &GenerateInput{})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, callsBefore, primary.calls.Load())
}

func TestRouter_UnknownTaskUsesDefaultChain(t *testing.T) {
	p := &fakeProvider{
		name: "openai",
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "ok"}, nil
		},
	}
	r := NewRouterWithProviders(routerConfig(), map[string]Provider{"openai": p}, nil)

	resp, err := r.Generate(context.Background(), "never-configured", &GenerateInput{})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
}

func TestRouter_DegradesToCheapestWhenChainExhausted(t *testing.T) {
	// Neither chain member is available; a cheap out-of-chain provider is.
	expensive := &fakeProvider{
		name:    "anthropic",
		pricing: Pricing{Model: PricingPerTokenSplit, InputPerMTokUSD: 3, OutputPerMTokUSD: 15},
		generateFn: func(int64) (*Response, error) {
			return nil, NewError("anthropic", ClassUpstreamUnavailable, assert.AnError)
		},
	}
	cheap := &fakeProvider{
		name:    "deepseek",
		pricing: Pricing{Model: PricingPerTokenSplit, InputPerMTokUSD: 0.27, OutputPerMTokUSD: 1.1},
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "cheap answer"}, nil
		},
	}
	cfg := routerConfig()
	cfg.Router.TaskDefaults["marketing"] = []string{"anthropic"}

	r := NewRouterWithProviders(cfg, map[string]Provider{
		"anthropic": expensive, "deepseek": cheap,
	}, nil)
	ctx := context.Background()

	// Trip anthropic's breaker.
	for i := 0; i < 3; i++ {
		_, _ = r.Generate(ctx, "marketing", &GenerateInput{})
	}

	resp, err := r.Generate(ctx, "marketing", &GenerateInput{})
	require.NoError(t, err)
	assert.Equal(t, "cheap answer", resp.Text)
}

func TestRouter_ForcedProviderPinsChain(t *testing.T) {
	primary := &fakeProvider{
		name: "openai",
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "from openai"}, nil
		},
	}
	forced := &fakeProvider{
		name: "anthropic",
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "from anthropic"}, nil
		},
	}
	r := NewRouterWithProviders(routerConfig(), map[string]Provider{
		"openai": primary, "anthropic": forced,
	}, nil)

	// Qualification defaults to openai; the forced tag overrides that.
	resp, err := r.Generate(context.Background(), "qualification", &GenerateInput{
		Route: RouteOptions{ForcedProvider: "anthropic"},
	})
	require.NoError(t, err)
	assert.Equal(t, "from anthropic", resp.Text)
	assert.Equal(t, int64(0), primary.calls.Load())
}

func TestRouter_ForcedProviderUnavailableFallsBack(t *testing.T) {
	flaky := &fakeProvider{
		name: "anthropic",
		generateFn: func(int64) (*Response, error) {
			return nil, NewError("anthropic", ClassUpstreamUnavailable, assert.AnError)
		},
	}
	healthy := &fakeProvider{
		name: "openai",
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "ok"}, nil
		},
	}
	r := NewRouterWithProviders(routerConfig(), map[string]Provider{
		"openai": healthy, "anthropic": flaky,
	}, nil)
	ctx := context.Background()

	// Trip the breaker of the provider we are about to force.
	for i := 0; i < 3; i++ {
		_, _ = r.Generate(ctx, "enrichment", &GenerateInput{
			Route: RouteOptions{ForcedProvider: "anthropic"},
		})
	}

	resp, err := r.Generate(ctx, "qualification", &GenerateInput{
		Route: RouteOptions{ForcedProvider: "anthropic"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
}

func TestRouter_RequiredCapabilitiesFilter(t *testing.T) {
	blind := &fakeProvider{
		name: "openai",
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "no eyes"}, nil
		},
	}
	sighted := &fakeProvider{
		name: "anthropic",
		caps: []config.Capability{config.CapabilityVision},
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "described the image"}, nil
		},
	}
	r := NewRouterWithProviders(routerConfig(), map[string]Provider{
		"openai": blind, "anthropic": sighted,
	}, nil)

	resp, err := r.Generate(context.Background(), "enrichment", &GenerateInput{
		Route: RouteOptions{RequiredCapabilities: []config.Capability{config.CapabilityVision}},
	})
	require.NoError(t, err)
	assert.Equal(t, "described the image", resp.Text)
	assert.Equal(t, int64(0), blind.calls.Load())
}

func TestRouter_LatencyBudgetFiltersSlowProviders(t *testing.T) {
	slow := &fakeProvider{
		name: "openai",
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "slow"}, nil
		},
	}
	fast := &fakeProvider{
		name: "anthropic",
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "fast"}, nil
		},
	}
	r := NewRouterWithProviders(routerConfig(), map[string]Provider{
		"openai": slow, "anthropic": fast,
	}, nil)
	for i := 0; i < statsMinSample; i++ {
		r.stats["openai"].record(true, 800)
		r.stats["anthropic"].record(true, 40)
	}

	resp, err := r.Generate(context.Background(), "enrichment", &GenerateInput{
		Route: RouteOptions{MaxLatencyMS: 100},
	})
	require.NoError(t, err)
	assert.Equal(t, "fast", resp.Text)
	assert.Equal(t, int64(0), slow.calls.Load())
}

func TestRouter_LatencyBudgetOrdersFastestFirst(t *testing.T) {
	slower := &fakeProvider{
		name: "openai",
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "slower"}, nil
		},
	}
	faster := &fakeProvider{
		name: "anthropic",
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "faster"}, nil
		},
	}
	r := NewRouterWithProviders(routerConfig(), map[string]Provider{
		"openai": slower, "anthropic": faster,
	}, nil)
	// Both fit the budget; the chain lists openai first but anthropic is
	// quicker, so it must get the call.
	for i := 0; i < statsMinSample; i++ {
		r.stats["openai"].record(true, 90)
		r.stats["anthropic"].record(true, 40)
	}

	resp, err := r.Generate(context.Background(), "enrichment", &GenerateInput{
		Route: RouteOptions{MaxLatencyMS: 100},
	})
	require.NoError(t, err)
	assert.Equal(t, "faster", resp.Text)
	assert.Equal(t, int64(0), slower.calls.Load())
}

func TestRouter_CostBudgetFiltersExpensiveProviders(t *testing.T) {
	pricey := &fakeProvider{
		name:    "openai",
		pricing: Pricing{Model: PricingPerTokenSplit, InputPerMTokUSD: 3, OutputPerMTokUSD: 15},
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "pricey"}, nil
		},
	}
	budget := &fakeProvider{
		name:    "anthropic",
		pricing: Pricing{Model: PricingPerTokenSplit, InputPerMTokUSD: 0.27, OutputPerMTokUSD: 1.1},
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "affordable"}, nil
		},
	}
	r := NewRouterWithProviders(routerConfig(), map[string]Provider{
		"openai": pricey, "anthropic": budget,
	}, nil)

	// At 1000 expected tokens: openai estimates $0.018, anthropic $0.00137.
	resp, err := r.Generate(context.Background(), "enrichment", &GenerateInput{
		MaxTokens: 1000,
		Route:     RouteOptions{MaxCostUSD: 0.01},
	})
	require.NoError(t, err)
	assert.Equal(t, "affordable", resp.Text)
	assert.Equal(t, int64(0), pricey.calls.Load())
}

func TestRouter_CostBudgetOrdersCheapestFirst(t *testing.T) {
	pricey := &fakeProvider{
		name:    "openai",
		pricing: Pricing{Model: PricingPerTokenSplit, InputPerMTokUSD: 3, OutputPerMTokUSD: 15},
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "pricey"}, nil
		},
	}
	cheap := &fakeProvider{
		name:    "anthropic",
		pricing: Pricing{Model: PricingPerTokenSplit, InputPerMTokUSD: 0.27, OutputPerMTokUSD: 1.1},
		generateFn: func(int64) (*Response, error) {
			return &Response{Text: "cheap"}, nil
		},
	}
	r := NewRouterWithProviders(routerConfig(), map[string]Provider{
		"openai": pricey, "anthropic": cheap,
	}, nil)

	// Both fit a generous budget; chain order lists openai first but the
	// cost budget reorders cheapest first.
	resp, err := r.Generate(context.Background(), "enrichment", &GenerateInput{
		Route: RouteOptions{MaxCostUSD: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "cheap", resp.Text)
	assert.Equal(t, int64(0), pricey.calls.Load())
}

func TestRouter_DegradedFallbackReachesOpenBreaker(t *testing.T) {
	sole := &fakeProvider{
		name: "openai",
		generateFn: func(int64) (*Response, error) {
			return nil, NewError("openai", ClassUpstreamUnavailable, assert.AnError)
		},
	}
	r := NewRouterWithProviders(routerConfig(), map[string]Provider{"openai": sole}, nil)
	ctx := context.Background()

	// Trip the only provider's breaker.
	for i := 0; i < 3; i++ {
		_, _ = r.Generate(ctx, "qualification", &GenerateInput{})
	}

	// The degraded chain still routes to the tripped provider so the
	// breaker's rejection surfaces instead of a routing dead end.
	_, err := r.Generate(ctx, "qualification", &GenerateInput{})
	require.Error(t, err)
	assert.Equal(t, ClassCircuitOpen, ClassOf(err))
}

func TestRouter_GenerateStream_RecordsUsageAtEnd(t *testing.T) {
	p := &fakeProvider{
		name:    "openai",
		pricing: Pricing{Model: PricingPerTokenSplit, InputPerMTokUSD: 0.15, OutputPerMTokUSD: 0.6},
		streamFn: func(int64) (<-chan Chunk, error) {
			return chunkStream(
				&TextChunk{Content: "str"},
				&TextChunk{Content: "eam"},
				&UsageChunk{PromptTokens: 20, CompletionTokens: 2, TotalTokens: 22},
			), nil
		},
	}
	sink := &recordingSink{}
	r := NewRouterWithProviders(routerConfig(), map[string]Provider{"openai": p}, sink)

	stream, err := r.GenerateStream(context.Background(), "qualification", &GenerateInput{UserID: "u-1"})
	require.NoError(t, err)

	resp, err := CollectStream(stream)
	require.NoError(t, err)
	assert.Equal(t, "stream", resp.Text)

	records := sink.all()
	require.Len(t, records, 1)
	assert.Equal(t, "generate_stream", records[0].Endpoint)
	assert.True(t, records[0].Success)
	assert.Equal(t, 22, records[0].Usage.TotalTokens)
	assert.Equal(t, "u-1", records[0].UserID)
	assert.Greater(t, records[0].CostUSD, 0.0)
}

func TestProviderStats_RollingWindow(t *testing.T) {
	s := newProviderStats(time.Minute)

	rate, n := s.successRate()
	assert.Equal(t, 1.0, rate)
	assert.Zero(t, n)

	for i := 0; i < 8; i++ {
		s.record(true, 100)
	}
	s.record(false, 100)
	s.record(false, 100)

	rate, n = s.successRate()
	assert.Equal(t, 10, n)
	assert.InDelta(t, 0.8, rate, 1e-9)
}

func TestProviderStats_LatencyP95(t *testing.T) {
	s := newProviderStats(time.Minute)

	p95, n := s.latencyP95()
	assert.Zero(t, p95)
	assert.Zero(t, n)

	// 20 samples 10..200ms; the nearest-rank p95 is the 19th value.
	for i := 1; i <= 20; i++ {
		s.record(true, int64(i*10))
	}
	p95, n = s.latencyP95()
	assert.Equal(t, 20, n)
	assert.Equal(t, int64(190), p95)
}
