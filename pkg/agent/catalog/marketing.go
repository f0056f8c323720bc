package catalog

import (
	"fmt"

	"github.com/ScientiaCapital/sales-agent/pkg/agent"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
)

var marketingSchema = []byte(`{
	"type": "object",
	"required": ["subject", "body"],
	"properties": {
		"subject": {"type": "string", "minLength": 1, "maxLength": 120},
		"body": {"type": "string", "minLength": 1},
		"call_to_action": {"type": "string"}
	}
}`)

const marketingSystem = `You are a B2B marketing copywriter. Write a concise,
personalized piece for the requested channel. No placeholders; use only the
facts provided. Reply with only JSON.`

// newMarketingAgent generates channel copy (email, linkedin, landing page)
// from lead and campaign context.
func newMarketingAgent() *agent.Linear {
	return &agent.Linear{
		AgentName:    "marketing",
		Task:         "marketing",
		ResultSchema: marketingSchema,
		BuildPrompt: func(input map[string]interface{}) ([]llm.Message, error) {
			channel, _ := input["channel"].(string)
			if channel == "" {
				channel = "email"
			}
			audience, _ := input["audience"].(string)
			if audience == "" {
				return nil, fmt.Errorf("audience is required")
			}
			return []llm.Message{
				{Role: llm.RoleSystem, Content: marketingSystem},
				{Role: llm.RoleUser, Content: fmt.Sprintf(
					"Channel: %s\nAudience: %s\nProduct: %v\nKey points: %v",
					channel, audience, input["product"], input["key_points"])},
			}, nil
		},
	}
}
