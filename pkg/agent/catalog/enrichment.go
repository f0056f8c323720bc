package catalog

import (
	"context"
	"fmt"

	"github.com/ScientiaCapital/sales-agent/pkg/agent"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
)

var enrichmentSchema = []byte(`{
	"type": "object",
	"required": ["company_summary", "signals"],
	"properties": {
		"company_summary": {"type": "string", "minLength": 1},
		"signals": {
			"type": "array",
			"items": {"type": "string"}
		},
		"technologies": {
			"type": "array",
			"items": {"type": "string"}
		},
		"atl_contacts": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "title"],
				"properties": {
					"name": {"type": "string"},
					"title": {"type": "string"}
				}
			}
		}
	}
}`)

const enrichmentSystem = `You are a sales research assistant. From the lead details
given, produce a company summary, buying signals, the technology stack if
inferable, and likely above-the-line contacts. Reply with only JSON.`

// newEnrichmentAgent fills in company context around a lead and merges the
// findings into the lead's additional data.
func newEnrichmentAgent(deps Deps) *agent.Linear {
	return &agent.Linear{
		AgentName:    "enrichment",
		Task:         "enrichment",
		ResultSchema: enrichmentSchema,
		Preprocess: func(ctx context.Context, rc *agent.RunContext, input map[string]interface{}) (map[string]interface{}, error) {
			// Backfill company fields from the lead record when only an ID
			// was supplied.
			if rc.LeadID == "" || input["company_name"] != nil {
				return input, nil
			}
			lead, err := deps.Leads.GetLeadByID(ctx, rc.LeadID)
			if err != nil {
				return nil, err
			}
			out := make(map[string]interface{}, len(input)+3)
			for k, v := range input {
				out[k] = v
			}
			out["company_name"] = lead.CompanyName
			out["industry"] = lead.Industry
			out["website"] = lead.Website
			return out, nil
		},
		BuildPrompt: func(input map[string]interface{}) ([]llm.Message, error) {
			company, _ := input["company_name"].(string)
			if company == "" {
				return nil, fmt.Errorf("company_name is required")
			}
			return []llm.Message{
				{Role: llm.RoleSystem, Content: enrichmentSystem},
				{Role: llm.RoleUser, Content: fmt.Sprintf(
					"Company: %s\nIndustry: %v\nWebsite: %v",
					company, input["industry"], input["website"])},
			}, nil
		},
		Postprocess: func(ctx context.Context, rc *agent.RunContext, result map[string]interface{}) (map[string]interface{}, error) {
			if rc.LeadID == "" {
				return result, nil
			}
			if err := deps.Leads.MergeAdditionalData(ctx, rc.LeadID, map[string]interface{}{
				"enrichment": result,
			}); err != nil {
				return nil, fmt.Errorf("failed to store enrichment: %w", err)
			}
			return result, nil
		},
	}
}
