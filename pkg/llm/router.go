package llm

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
)

// CallRecord is the usage-accounting record for one terminal provider call.
type CallRecord struct {
	Provider     string
	Model        string
	Endpoint     string // "generate" or "generate_stream"
	Operation    string
	Usage        TokenUsage
	LatencyMS    int64
	CostUSD      float64
	UserID       string
	Success      bool
	CacheHit     bool
	ErrorMessage string
}

// CallSink receives call records. Implementations must not block.
type CallSink interface {
	Record(rec CallRecord)
}

// nopSink discards records; used when no tracker is wired.
type nopSink struct{}

func (nopSink) Record(CallRecord) {}

// statsMinSample is the number of outcomes required before the success-rate
// floor filter kicks in. Below it a provider is given the benefit of the
// doubt.
const statsMinSample = 10

// providerStats tracks rolling success rate and latency per provider.
type providerStats struct {
	mu       sync.Mutex
	window   time.Duration
	outcomes []outcome
}

type outcome struct {
	at        time.Time
	success   bool
	latencyMS int64
}

func newProviderStats(window time.Duration) *providerStats {
	return &providerStats{window: window}
}

func (s *providerStats) record(success bool, latencyMS int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune(time.Now())
	s.outcomes = append(s.outcomes, outcome{at: time.Now(), success: success, latencyMS: latencyMS})
}

// successRate returns the rolling success rate and the sample size.
func (s *providerStats) successRate() (float64, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune(time.Now())
	if len(s.outcomes) == 0 {
		return 1.0, 0
	}
	ok := 0
	for _, o := range s.outcomes {
		if o.success {
			ok++
		}
	}
	return float64(ok) / float64(len(s.outcomes)), len(s.outcomes)
}

// latencyP95 returns the rolling 95th percentile latency (nearest rank) and
// the sample size.
func (s *providerStats) latencyP95() (int64, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune(time.Now())
	if len(s.outcomes) == 0 {
		return 0, 0
	}
	lat := make([]int64, len(s.outcomes))
	for i, o := range s.outcomes {
		lat[i] = o.latencyMS
	}
	sort.Slice(lat, func(i, j int) bool { return lat[i] < lat[j] })
	idx := (len(lat)*95 + 99) / 100
	if idx > 0 {
		idx--
	}
	return lat[idx], len(lat)
}

func (s *providerStats) prune(now time.Time) {
	cutoff := now.Add(-s.window)
	i := 0
	for i < len(s.outcomes) && s.outcomes[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		s.outcomes = s.outcomes[i:]
	}
}

// Router selects a provider chain per task and walks it with retry and
// circuit breaking until one provider succeeds.
type Router struct {
	cfg       *config.RouterConfig
	res       *config.ResilienceConfig
	providers map[string]*BreakerProvider
	stats     map[string]*providerStats
	sink      CallSink
}

// NewProviderFromConfig builds the vendor adapter for one registry entry.
func NewProviderFromConfig(tag string, cfg *config.ProviderConfig) (Provider, error) {
	switch cfg.Type {
	case config.ProviderTypeOpenAI:
		return NewOpenAI(tag, cfg), nil
	case config.ProviderTypeAnthropic:
		return NewAnthropic(tag, cfg), nil
	case config.ProviderTypeDeepSeek:
		return NewDeepSeek(tag, cfg), nil
	case config.ProviderTypeOllama:
		return NewOllama(tag, cfg), nil
	}
	return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
}

// NewRouter builds the router from registry configuration, wrapping each
// provider with its own circuit breaker. sink may be nil.
func NewRouter(cfg *config.Config, sink CallSink) (*Router, error) {
	if sink == nil {
		sink = nopSink{}
	}
	r := &Router{
		cfg:       cfg.Router,
		res:       cfg.Resilience,
		providers: make(map[string]*BreakerProvider),
		stats:     make(map[string]*providerStats),
		sink:      sink,
	}
	for tag, pc := range cfg.Providers.GetAll() {
		p, err := NewProviderFromConfig(tag, pc)
		if err != nil {
			return nil, fmt.Errorf("failed to build provider %s: %w", tag, err)
		}
		r.providers[tag] = WithBreaker(p, cfg.Resilience)
		r.stats[tag] = newProviderStats(cfg.Router.StatsWindow)
	}
	return r, nil
}

// NewRouterWithProviders wires pre-built providers (useful for testing).
func NewRouterWithProviders(cfg *config.Config, providers map[string]Provider, sink CallSink) *Router {
	if sink == nil {
		sink = nopSink{}
	}
	r := &Router{
		cfg:       cfg.Router,
		res:       cfg.Resilience,
		providers: make(map[string]*BreakerProvider),
		stats:     make(map[string]*providerStats),
		sink:      sink,
	}
	for tag, p := range providers {
		r.providers[tag] = WithBreaker(p, cfg.Resilience)
		r.stats[tag] = newProviderStats(cfg.Router.StatsWindow)
	}
	return r
}

// Provider returns a wrapped provider by tag for health inspection.
func (r *Router) Provider(tag string) (*BreakerProvider, bool) {
	p, ok := r.providers[tag]
	return p, ok
}

// defaultTokenEstimate stands in for expected token volume when the request
// does not bound max_tokens. Cost filtering only needs a rough per-call
// figure.
const defaultTokenEstimate = 1000

// hasCapabilities reports whether the provider advertises every required
// capability.
func hasCapabilities(p Provider, required []config.Capability) bool {
	for _, want := range required {
		found := false
		for _, have := range p.Capabilities() {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// chainFor resolves the provider chain for one call. A forced provider
// short-circuits everything when it is admissible. Otherwise the task's
// default chain is filtered down to providers that are registered, carry
// the required capabilities, are breaker-admissible, sit above the
// success-rate floor, and fit the request's latency and cost budgets.
// When a cost budget governs the survivors are ordered cheapest first;
// when only a latency budget governs, fastest first; otherwise task order
// is kept. If filtering empties the chain, the cheapest capable provider
// is returned regardless of breaker state so the retry handler decides
// the outcome instead of the request being dropped silently.
func (r *Router) chainFor(task string, input *GenerateInput) []string {
	route := input.Route

	if route.ForcedProvider != "" {
		if bp, ok := r.providers[route.ForcedProvider]; ok && bp.Available() {
			return []string{route.ForcedProvider}
		}
		slog.Warn("Forced provider not admissible, using task chain",
			"provider", route.ForcedProvider, "task", task)
	}

	chain, ok := r.cfg.TaskDefaults[task]
	if !ok {
		chain = r.cfg.DefaultChain
	}

	expected := input.MaxTokens
	if expected <= 0 {
		expected = defaultTokenEstimate
	}

	type candidate struct {
		tag     string
		cost    float64
		latency int64
	}
	eligible := make([]candidate, 0, len(chain))
	for _, tag := range chain {
		bp, ok := r.providers[tag]
		if !ok {
			continue
		}
		if !hasCapabilities(bp, route.RequiredCapabilities) {
			continue
		}
		if !bp.Available() {
			slog.Debug("Skipping provider: circuit open", "provider", tag, "task", task)
			continue
		}
		if rate, n := r.stats[tag].successRate(); n >= statsMinSample && rate < r.cfg.SuccessRateFloor {
			slog.Debug("Skipping provider: below success-rate floor",
				"provider", tag, "task", task, "success_rate", rate)
			continue
		}
		p95, n := r.stats[tag].latencyP95()
		if route.MaxLatencyMS > 0 && n >= statsMinSample && p95 > route.MaxLatencyMS {
			slog.Debug("Skipping provider: p95 latency over budget",
				"provider", tag, "task", task, "p95_ms", p95)
			continue
		}
		cost := bp.Pricing().Estimate(expected, expected)
		if route.MaxCostUSD > 0 && cost > route.MaxCostUSD {
			slog.Debug("Skipping provider: estimated cost over budget",
				"provider", tag, "task", task, "estimated_cost", cost)
			continue
		}
		eligible = append(eligible, candidate{tag: tag, cost: cost, latency: p95})
	}
	if len(eligible) == 0 {
		return r.cheapestFallback(route.RequiredCapabilities, expected)
	}

	switch {
	case route.MaxCostUSD > 0:
		sort.SliceStable(eligible, func(i, j int) bool {
			if eligible[i].cost != eligible[j].cost {
				return eligible[i].cost < eligible[j].cost
			}
			return eligible[i].tag < eligible[j].tag
		})
	case route.MaxLatencyMS > 0:
		sort.SliceStable(eligible, func(i, j int) bool {
			if eligible[i].latency != eligible[j].latency {
				return eligible[i].latency < eligible[j].latency
			}
			return eligible[i].tag < eligible[j].tag
		})
	}

	tags := make([]string, len(eligible))
	for i, c := range eligible {
		tags[i] = c.tag
	}
	return tags
}

// cheapestFallback is the degraded path: every capable registered provider
// ordered by estimated cost, tripped breakers included. A call into an open
// breaker is rejected with circuit_open, which is a more honest outcome
// than refusing to route at all.
func (r *Router) cheapestFallback(required []config.Capability, expected int) []string {
	type candidate struct {
		tag  string
		cost float64
	}
	var cands []candidate
	for tag, bp := range r.providers {
		if !hasCapabilities(bp, required) {
			continue
		}
		cands = append(cands, candidate{tag: tag, cost: bp.Pricing().Estimate(expected, expected)})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].cost != cands[j].cost {
			return cands[i].cost < cands[j].cost
		}
		return cands[i].tag < cands[j].tag
	})
	tags := make([]string, len(cands))
	for i, c := range cands {
		tags[i] = c.tag
	}
	return tags
}

// Generate walks the task's provider chain until one call succeeds.
// Each terminal attempt is recorded to the sink. A bad_request failure
// stops the chain because every provider would reject the same payload.
func (r *Router) Generate(ctx context.Context, task string, input *GenerateInput) (*Response, error) {
	chain := r.chainFor(task, input)
	if len(chain) == 0 {
		return nil, &Error{Class: ClassUpstreamUnavailable, Message: "no providers available"}
	}
	if input.Operation == "" {
		input.Operation = task
	}

	var lastErr error
	for _, tag := range chain {
		bp := r.providers[tag]
		start := time.Now()

		resp, err := RetryGenerate(ctx, r.res, func() (*Response, error) {
			return bp.Generate(ctx, input)
		})
		latency := time.Since(start).Milliseconds()

		if err != nil {
			r.stats[tag].record(false, latency)
			r.sink.Record(CallRecord{
				Provider:     tag,
				Endpoint:     "generate",
				Operation:    input.Operation,
				LatencyMS:    latency,
				UserID:       input.UserID,
				Success:      false,
				ErrorMessage: err.Error(),
			})
			lastErr = err
			if !Failover(err) {
				return nil, err
			}
			slog.Warn("Provider call failed, trying next in chain",
				"provider", tag, "task", task, "error", err)
			continue
		}

		cost := bp.Pricing().Cost(resp.Usage)
		r.stats[tag].record(true, latency)
		r.sink.Record(CallRecord{
			Provider:  tag,
			Model:     resp.Model,
			Endpoint:  "generate",
			Operation: input.Operation,
			Usage:     resp.Usage,
			LatencyMS: latency,
			CostUSD:   cost,
			UserID:    input.UserID,
			Success:   true,
			CacheHit:  resp.CacheHit,
		})
		return resp, nil
	}

	return nil, fmt.Errorf("all providers in chain failed for task %s: %w", task, lastErr)
}

// GenerateStream walks the task's provider chain, failing over only until a
// stream delivers its first token. Usage is recorded when the stream ends.
func (r *Router) GenerateStream(ctx context.Context, task string, input *GenerateInput) (<-chan Chunk, error) {
	chain := r.chainFor(task, input)
	if len(chain) == 0 {
		return nil, &Error{Class: ClassUpstreamUnavailable, Message: "no providers available"}
	}
	if input.Operation == "" {
		input.Operation = task
	}

	var lastErr error
	for _, tag := range chain {
		bp := r.providers[tag]
		start := time.Now()

		inner, err := RetryStream(ctx, r.res, func() (<-chan Chunk, error) {
			return bp.GenerateStream(ctx, input)
		})
		if err != nil {
			lastErr = err
			if !Failover(err) {
				return nil, err
			}
			slog.Warn("Provider stream failed to open, trying next in chain",
				"provider", tag, "task", task, "error", err)
			continue
		}

		return r.accountedStream(ctx, tag, bp, input, inner, start), nil
	}

	return nil, fmt.Errorf("all providers in chain failed for task %s: %w", task, lastErr)
}

// accountedStream forwards chunks and records the terminal call outcome
// when the stream closes.
func (r *Router) accountedStream(ctx context.Context, tag string, bp *BreakerProvider, input *GenerateInput, inner <-chan Chunk, start time.Time) <-chan Chunk {
	out := make(chan Chunk, 32)
	go func() {
		defer close(out)

		var usage TokenUsage
		var cacheHit bool
		var failMsg string

		for chunk := range inner {
			switch c := chunk.(type) {
			case *UsageChunk:
				usage = TokenUsage{
					PromptTokens:     c.PromptTokens,
					CompletionTokens: c.CompletionTokens,
					TotalTokens:      c.TotalTokens,
				}
				cacheHit = c.CacheHit
			case *ErrorChunk:
				failMsg = c.Message
			}
			select {
			case out <- chunk:
			case <-ctx.Done():
				r.finishStream(tag, bp, input, usage, cacheHit, start, "stream cancelled")
				return
			}
		}
		r.finishStream(tag, bp, input, usage, cacheHit, start, failMsg)
	}()
	return out
}

func (r *Router) finishStream(tag string, bp *BreakerProvider, input *GenerateInput, usage TokenUsage, cacheHit bool, start time.Time, failMsg string) {
	latency := time.Since(start).Milliseconds()
	success := failMsg == ""
	r.stats[tag].record(success, latency)
	r.sink.Record(CallRecord{
		Provider:     tag,
		Endpoint:     "generate_stream",
		Operation:    input.Operation,
		Usage:        usage,
		LatencyMS:    latency,
		CostUSD:      bp.Pricing().Cost(usage),
		UserID:       input.UserID,
		Success:      success,
		CacheHit:     cacheHit,
		ErrorMessage: failMsg,
	})
}
