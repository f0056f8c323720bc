package llm

// PricingModel selects how a call's cost is computed.
type PricingModel string

const (
	// PricingPerRequest charges a flat rate per call regardless of tokens.
	PricingPerRequest PricingModel = "per_request"
	// PricingPerTokenSplit charges separate input and output token rates.
	PricingPerTokenSplit PricingModel = "per_token_split"
	// PricingFree is for local models with no marginal cost.
	PricingFree PricingModel = "free"
)

// Pricing is one provider's cost model. Token rates are USD per million
// tokens.
type Pricing struct {
	Model            PricingModel
	PerRequestUSD    float64
	InputPerMTokUSD  float64
	OutputPerMTokUSD float64
}

// Cost computes the cost of a completed call from its token usage.
func (p Pricing) Cost(u TokenUsage) float64 {
	switch p.Model {
	case PricingPerRequest:
		return p.PerRequestUSD
	case PricingPerTokenSplit:
		return float64(u.PromptTokens)/1e6*p.InputPerMTokUSD +
			float64(u.CompletionTokens)/1e6*p.OutputPerMTokUSD
	}
	return 0
}

// Estimate predicts the worst-case cost of a call before it is made,
// assuming the full output budget is consumed. Used by the router for
// cost-aware ordering.
func (p Pricing) Estimate(promptTokens, maxTokens int) float64 {
	switch p.Model {
	case PricingPerRequest:
		return p.PerRequestUSD
	case PricingPerTokenSplit:
		return float64(promptTokens)/1e6*p.InputPerMTokUSD +
			float64(maxTokens)/1e6*p.OutputPerMTokUSD
	}
	return 0
}

// defaultPricing returns the built-in price book for known models, falling
// back to a conservative per-token rate for unknown ones.
func defaultPricing(model string) Pricing {
	if p, ok := priceBook[model]; ok {
		return p
	}
	return Pricing{Model: PricingPerTokenSplit, InputPerMTokUSD: 1.0, OutputPerMTokUSD: 3.0}
}

// priceBook holds USD-per-million-token rates. Update when vendors reprice.
var priceBook = map[string]Pricing{
	"gpt-4o-mini":       {Model: PricingPerTokenSplit, InputPerMTokUSD: 0.15, OutputPerMTokUSD: 0.60},
	"gpt-4o":            {Model: PricingPerTokenSplit, InputPerMTokUSD: 2.50, OutputPerMTokUSD: 10.00},
	"claude-sonnet-4-5": {Model: PricingPerTokenSplit, InputPerMTokUSD: 3.00, OutputPerMTokUSD: 15.00},
	"claude-haiku-4-5":  {Model: PricingPerTokenSplit, InputPerMTokUSD: 1.00, OutputPerMTokUSD: 5.00},
	"deepseek-chat":     {Model: PricingPerTokenSplit, InputPerMTokUSD: 0.27, OutputPerMTokUSD: 1.10},
}

// freePricing is used for local providers (Ollama).
var freePricing = Pricing{Model: PricingFree}
