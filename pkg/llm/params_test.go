package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
)

func anthropicForTest(caps ...config.Capability) *AnthropicProvider {
	return NewAnthropic("anthropic", &config.ProviderConfig{
		Type:         config.ProviderTypeAnthropic,
		Model:        "claude-sonnet-4-5",
		Capabilities: caps,
	})
}

func TestAnthropic_BuildParams_CacheControl(t *testing.T) {
	p := anthropicForTest(config.CapabilityCaching)

	params := p.buildParams(&GenerateInput{
		EnableCaching: true,
		Messages: []Message{
			{Role: RoleSystem, Content: "You are a sales qualifier."},
			{Role: RoleUser, Content: "Qualify this lead."},
		},
	})

	require.Len(t, params.System, 1)
	data, err := json.Marshal(params.System[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cache_control"`)
}

func TestAnthropic_BuildParams_CachingOffByDefault(t *testing.T) {
	p := anthropicForTest(config.CapabilityCaching)

	params := p.buildParams(&GenerateInput{
		Messages: []Message{
			{Role: RoleSystem, Content: "You are a sales qualifier."},
			{Role: RoleUser, Content: "Qualify this lead."},
		},
	})

	require.Len(t, params.System, 1)
	data, err := json.Marshal(params.System[0])
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"cache_control"`)
}

func TestAnthropic_BuildParams_ImageOnFinalUserTurn(t *testing.T) {
	p := anthropicForTest(config.CapabilityVision)

	params := p.buildParams(&GenerateInput{
		Image: &ImageInput{Data: []byte{0x89, 0x50, 0x4e, 0x47}, MIME: "image/png"},
		Messages: []Message{
			{Role: RoleUser, Content: "First question."},
			{Role: RoleAssistant, Content: "First answer."},
			{Role: RoleUser, Content: "What does this screenshot show?"},
		},
	})

	require.Len(t, params.Messages, 3)

	// Only the final user turn carries the attachment.
	first, err := json.Marshal(params.Messages[0])
	require.NoError(t, err)
	assert.NotContains(t, string(first), `"image"`)

	last, err := json.Marshal(params.Messages[2])
	require.NoError(t, err)
	assert.Contains(t, string(last), `"type":"image"`)
	assert.Contains(t, string(last), `"image/png"`)
}

func openAIForTest(caps ...config.Capability) *OpenAICompatProvider {
	return NewOpenAI("openai", &config.ProviderConfig{
		Type:         config.ProviderTypeOpenAI,
		Model:        "gpt-4o-mini",
		Capabilities: caps,
	})
}

func TestOpenAI_BuildParams_ImageAsDataURL(t *testing.T) {
	p := openAIForTest(config.CapabilityVision)

	params := p.buildParams(&GenerateInput{
		Image: &ImageInput{Data: []byte{0xff, 0xd8, 0xff}, MIME: "image/jpeg"},
		Messages: []Message{
			{Role: RoleUser, Content: "Describe this photo."},
		},
	})

	require.Len(t, params.Messages, 1)
	data, err := json.Marshal(params.Messages[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"image_url"`)
	assert.Contains(t, string(data), "data:image/jpeg;base64,")
}

func TestOpenAI_BuildParams_ImageIgnoredWithoutVision(t *testing.T) {
	p := openAIForTest()

	params := p.buildParams(&GenerateInput{
		Image: &ImageInput{Data: []byte{0xff, 0xd8, 0xff}, MIME: "image/jpeg"},
		Messages: []Message{
			{Role: RoleUser, Content: "Describe this photo."},
		},
	})

	require.Len(t, params.Messages, 1)
	data, err := json.Marshal(params.Messages[0])
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"image_url"`)
}
