package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
)

// deepseekBaseURL and ollamaBaseURL are the defaults for the two
// OpenAI-compatible vendors when the config omits base_url.
const (
	deepseekBaseURL = "https://api.deepseek.com/v1"
	ollamaBaseURL   = "http://localhost:11434/v1"
)

// OpenAICompatProvider talks the OpenAI chat completions protocol. It backs
// the openai, deepseek, and ollama adapters, which differ only in base URL,
// credentials, and pricing.
type OpenAICompatProvider struct {
	name    string
	ptype   config.ProviderType
	model   string
	caps    []config.Capability
	pricing Pricing

	maxTokens   int
	temperature float64

	client oai.Client
}

// NewOpenAI creates the adapter for the hosted OpenAI API.
func NewOpenAI(name string, cfg *config.ProviderConfig) *OpenAICompatProvider {
	return newOpenAICompat(name, cfg, defaultPricing(cfg.Model))
}

// NewDeepSeek creates the adapter for DeepSeek's OpenAI-compatible API.
func NewDeepSeek(name string, cfg *config.ProviderConfig) *OpenAICompatProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = deepseekBaseURL
	}
	return newOpenAICompat(name, cfg, defaultPricing(cfg.Model))
}

// NewOllama creates the adapter for a local Ollama instance. No API key,
// no marginal cost.
func NewOllama(name string, cfg *config.ProviderConfig) *OpenAICompatProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = ollamaBaseURL
	}
	return newOpenAICompat(name, cfg, freePricing)
}

func newOpenAICompat(name string, cfg *config.ProviderConfig, pricing Pricing) *OpenAICompatProvider {
	reqOpts := []option.RequestOption{}
	if cfg.APIKeyEnv != "" {
		reqOpts = append(reqOpts, option.WithAPIKey(os.Getenv(cfg.APIKeyEnv)))
	}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAICompatProvider{
		name:        name,
		ptype:       cfg.Type,
		model:       cfg.Model,
		caps:        cfg.Capabilities,
		pricing:     pricing,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		client:      oai.NewClient(reqOpts...),
	}
}

func (p *OpenAICompatProvider) Name() string                      { return p.name }
func (p *OpenAICompatProvider) Type() config.ProviderType         { return p.ptype }
func (p *OpenAICompatProvider) Capabilities() []config.Capability { return p.caps }
func (p *OpenAICompatProvider) Pricing() Pricing                  { return p.pricing }

// Generate implements Provider.
func (p *OpenAICompatProvider) Generate(ctx context.Context, input *GenerateInput) (*Response, error) {
	params := p.buildParams(input)

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, p.classify(err)
	}
	if len(completion.Choices) == 0 {
		return nil, NewError(p.name, ClassProtocol, fmt.Errorf("empty choices in response"))
	}

	usage := TokenUsage{
		PromptTokens:     int(completion.Usage.PromptTokens),
		CompletionTokens: int(completion.Usage.CompletionTokens),
		TotalTokens:      int(completion.Usage.TotalTokens),
	}
	return &Response{
		Text:     completion.Choices[0].Message.Content,
		Model:    completion.Model,
		Usage:    usage,
		CostUSD:  p.pricing.Cost(usage),
		CacheHit: completion.Usage.PromptTokensDetails.CachedTokens > 0,
	}, nil
}

// GenerateStream implements Provider.
func (p *OpenAICompatProvider) GenerateStream(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	params := p.buildParams(input)
	params.StreamOptions = oai.ChatCompletionStreamOptionsParam{
		IncludeUsage: param.NewOpt(true),
	}

	stream := p.client.Chat.Completions.NewStreaming(ctx, params)
	if err := stream.Err(); err != nil {
		return nil, p.classify(err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		defer stream.Close()

		for stream.Next() {
			chunk := stream.Current()

			if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
				select {
				case ch <- &TextChunk{Content: chunk.Choices[0].Delta.Content}:
				case <-ctx.Done():
					return
				}
			}

			// The final chunk carries usage when IncludeUsage is set.
			if chunk.Usage.TotalTokens > 0 {
				usage := TokenUsage{
					PromptTokens:     int(chunk.Usage.PromptTokens),
					CompletionTokens: int(chunk.Usage.CompletionTokens),
					TotalTokens:      int(chunk.Usage.TotalTokens),
				}
				select {
				case ch <- &UsageChunk{
					PromptTokens:     usage.PromptTokens,
					CompletionTokens: usage.CompletionTokens,
					TotalTokens:      usage.TotalTokens,
					CostUSD:          p.pricing.Cost(usage),
					CacheHit:         chunk.Usage.PromptTokensDetails.CachedTokens > 0,
				}:
				case <-ctx.Done():
					return
				}
			}
		}

		if err := stream.Err(); err != nil {
			perr := p.classify(err)
			select {
			case ch <- &ErrorChunk{Message: perr.Message, Class: perr.Class}:
			case <-ctx.Done():
			}
		}
	}()

	return ch, nil
}

func (p *OpenAICompatProvider) buildParams(input *GenerateInput) oai.ChatCompletionNewParams {
	system, turns := systemAndTurns(input.Messages)

	var messages []oai.ChatCompletionMessageParamUnion
	if system != "" {
		messages = append(messages, oai.SystemMessage(system))
	}
	lastUser := -1
	for i, m := range turns {
		if m.Role != RoleAssistant {
			lastUser = i
		}
	}
	attachImage := input.Image != nil &&
		hasCapabilities(p, []config.Capability{config.CapabilityVision})

	for i, m := range turns {
		switch m.Role {
		case RoleAssistant:
			messages = append(messages, oai.AssistantMessage(m.Content))
		default:
			if attachImage && i == lastUser {
				dataURL := fmt.Sprintf("data:%s;base64,%s",
					input.Image.MIME, base64.StdEncoding.EncodeToString(input.Image.Data))
				messages = append(messages, oai.UserMessage([]oai.ChatCompletionContentPartUnionParam{
					oai.TextContentPart(m.Content),
					oai.ImageContentPart(oai.ChatCompletionContentPartImageImageURLParam{URL: dataURL}),
				}))
				continue
			}
			messages = append(messages, oai.UserMessage(m.Content))
		}
	}

	params := oai.ChatCompletionNewParams{
		Model:    shared.ChatModel(p.model),
		Messages: messages,
	}

	temp := p.temperature
	if input.Temperature != nil {
		temp = *input.Temperature
	}
	if temp != 0 {
		params.Temperature = param.NewOpt(temp)
	}

	maxTokens := p.maxTokens
	if input.MaxTokens > 0 {
		maxTokens = input.MaxTokens
	}
	if maxTokens > 0 {
		params.MaxCompletionTokens = param.NewOpt(int64(maxTokens))
	}

	return params
}

func (p *OpenAICompatProvider) classify(err error) *Error {
	var apierr *oai.Error
	if errors.As(err, &apierr) {
		return NewError(p.name, ClassifyStatus(apierr.StatusCode), err)
	}
	return NewError(p.name, ClassifyTransport(err), err)
}
