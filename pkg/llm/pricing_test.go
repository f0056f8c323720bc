package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricing_Cost(t *testing.T) {
	t.Run("per token split", func(t *testing.T) {
		p := Pricing{Model: PricingPerTokenSplit, InputPerMTokUSD: 3.0, OutputPerMTokUSD: 15.0}
		cost := p.Cost(TokenUsage{PromptTokens: 1_000_000, CompletionTokens: 1_000_000})
		assert.InDelta(t, 18.0, cost, 1e-9)

		cost = p.Cost(TokenUsage{PromptTokens: 500, CompletionTokens: 200})
		assert.InDelta(t, 500.0/1e6*3.0+200.0/1e6*15.0, cost, 1e-9)
	})

	t.Run("per request", func(t *testing.T) {
		p := Pricing{Model: PricingPerRequest, PerRequestUSD: 0.01}
		assert.InDelta(t, 0.01, p.Cost(TokenUsage{PromptTokens: 99999, CompletionTokens: 99999}), 1e-9)
	})

	t.Run("free", func(t *testing.T) {
		assert.Zero(t, freePricing.Cost(TokenUsage{PromptTokens: 1000, CompletionTokens: 1000}))
	})
}

func TestPricing_Estimate(t *testing.T) {
	p := Pricing{Model: PricingPerTokenSplit, InputPerMTokUSD: 1.0, OutputPerMTokUSD: 2.0}
	// Estimate assumes the full output budget is consumed.
	assert.InDelta(t, 1000.0/1e6*1.0+4096.0/1e6*2.0, p.Estimate(1000, 4096), 1e-9)
}

func TestDefaultPricing(t *testing.T) {
	known := defaultPricing("gpt-4o-mini")
	assert.Equal(t, PricingPerTokenSplit, known.Model)
	assert.InDelta(t, 0.15, known.InputPerMTokUSD, 1e-9)

	// Unknown models get a conservative fallback, never free.
	unknown := defaultPricing("some-future-model")
	assert.Equal(t, PricingPerTokenSplit, unknown.Model)
	assert.Greater(t, unknown.InputPerMTokUSD, 0.0)
}
