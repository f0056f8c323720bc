package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
)

// AnthropicProvider adapts the Anthropic Messages API.
type AnthropicProvider struct {
	name    string
	model   string
	caps    []config.Capability
	pricing Pricing

	maxTokens   int
	temperature float64

	client anthropic.Client
}

// NewAnthropic creates the adapter for the Anthropic API.
func NewAnthropic(name string, cfg *config.ProviderConfig) *AnthropicProvider {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(os.Getenv(cfg.APIKeyEnv)),
	}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}

	return &AnthropicProvider{
		name:        name,
		model:       cfg.Model,
		caps:        cfg.Capabilities,
		pricing:     defaultPricing(cfg.Model),
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		client:      anthropic.NewClient(reqOpts...),
	}
}

func (p *AnthropicProvider) Name() string                      { return p.name }
func (p *AnthropicProvider) Type() config.ProviderType         { return config.ProviderTypeAnthropic }
func (p *AnthropicProvider) Capabilities() []config.Capability { return p.caps }
func (p *AnthropicProvider) Pricing() Pricing                  { return p.pricing }

// Generate implements Provider.
func (p *AnthropicProvider) Generate(ctx context.Context, input *GenerateInput) (*Response, error) {
	params := p.buildParams(input)

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, p.classify(err)
	}
	if len(message.Content) == 0 {
		return nil, NewError(p.name, ClassProtocol, fmt.Errorf("empty content in response"))
	}

	text := ""
	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}

	usage := TokenUsage{
		PromptTokens:     int(message.Usage.InputTokens),
		CompletionTokens: int(message.Usage.OutputTokens),
		TotalTokens:      int(message.Usage.InputTokens + message.Usage.OutputTokens),
	}
	return &Response{
		Text:     text,
		Model:    string(message.Model),
		Usage:    usage,
		CostUSD:  p.pricing.Cost(usage),
		CacheHit: message.Usage.CacheReadInputTokens > 0,
	}, nil
}

// GenerateStream implements Provider.
func (p *AnthropicProvider) GenerateStream(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	params := p.buildParams(input)

	stream := p.client.Messages.NewStreaming(ctx, params)
	if err := stream.Err(); err != nil {
		return nil, p.classify(err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		defer stream.Close()

		var promptTokens, completionTokens int
		var cacheHit bool

		for stream.Next() {
			event := stream.Current()
			switch ev := event.AsAny().(type) {
			case anthropic.MessageStartEvent:
				promptTokens = int(ev.Message.Usage.InputTokens)
				cacheHit = ev.Message.Usage.CacheReadInputTokens > 0
			case anthropic.ContentBlockDeltaEvent:
				if delta, ok := ev.Delta.AsAny().(anthropic.TextDelta); ok && delta.Text != "" {
					select {
					case ch <- &TextChunk{Content: delta.Text}:
					case <-ctx.Done():
						return
					}
				}
			case anthropic.MessageDeltaEvent:
				completionTokens = int(ev.Usage.OutputTokens)
			}
		}

		if err := stream.Err(); err != nil {
			perr := p.classify(err)
			select {
			case ch <- &ErrorChunk{Message: perr.Message, Class: perr.Class}:
			case <-ctx.Done():
			}
			return
		}

		usage := TokenUsage{
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			TotalTokens:      promptTokens + completionTokens,
		}
		select {
		case ch <- &UsageChunk{
			PromptTokens:     usage.PromptTokens,
			CompletionTokens: usage.CompletionTokens,
			TotalTokens:      usage.TotalTokens,
			CostUSD:          p.pricing.Cost(usage),
			CacheHit:         cacheHit,
		}:
		case <-ctx.Done():
		}
	}()

	return ch, nil
}

func (p *AnthropicProvider) buildParams(input *GenerateInput) anthropic.MessageNewParams {
	system, turns := systemAndTurns(input.Messages)

	lastUser := -1
	for i, m := range turns {
		if m.Role != RoleAssistant {
			lastUser = i
		}
	}

	messages := make([]anthropic.MessageParam, 0, len(turns))
	for i, m := range turns {
		if m.Role == RoleAssistant {
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
			continue
		}
		blocks := []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(m.Content)}
		if input.Image != nil && i == lastUser {
			encoded := base64.StdEncoding.EncodeToString(input.Image.Data)
			blocks = append(blocks, anthropic.NewImageBlockBase64(input.Image.MIME, encoded))
		}
		messages = append(messages, anthropic.NewUserMessage(blocks...))
	}

	maxTokens := p.maxTokens
	if input.MaxTokens > 0 {
		maxTokens = input.MaxTokens
	}
	if maxTokens == 0 {
		maxTokens = 4096
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(maxTokens),
		Messages:  messages,
	}
	if system != "" {
		block := anthropic.TextBlockParam{Text: system}
		// Prompt caching keys on a stable system prefix.
		if input.EnableCaching && hasCapabilities(p, []config.Capability{config.CapabilityCaching}) {
			block.CacheControl = anthropic.NewCacheControlEphemeralParam()
		}
		params.System = []anthropic.TextBlockParam{block}
	}

	temp := p.temperature
	if input.Temperature != nil {
		temp = *input.Temperature
	}
	if temp != 0 {
		params.Temperature = anthropic.Float(temp)
	}

	return params
}

func (p *AnthropicProvider) classify(err error) *Error {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		return NewError(p.name, ClassifyStatus(apierr.StatusCode), err)
	}
	return NewError(p.name, ClassifyTransport(err), err)
}
