package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/ScientiaCapital/sales-agent/pkg/agent"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
)

var qualificationSchema = []byte(`{
	"type": "object",
	"required": ["score", "tier", "rationale"],
	"properties": {
		"score": {"type": "integer", "minimum": 0, "maximum": 100},
		"tier": {"type": "string", "enum": ["hot", "warm", "cold", "unqualified"]},
		"rationale": {"type": "string", "minLength": 1}
	}
}`)

const qualificationSystem = `You are a B2B sales qualification analyst. Score the lead
from 0 to 100 on fit and buying intent, assign a tier (hot, warm, cold,
unqualified), and give a one-paragraph rationale. Reply with only JSON.`

// newQualificationAgent scores a lead in a single structured call. When the
// invocation carries a lead ID the outcome is recorded on the lead.
func newQualificationAgent(deps Deps) *agent.Linear {
	return &agent.Linear{
		AgentName:    "qualification",
		Task:         "qualification",
		ResultSchema: qualificationSchema,
		BuildPrompt: func(input map[string]interface{}) ([]llm.Message, error) {
			company, _ := input["company_name"].(string)
			if company == "" {
				return nil, fmt.Errorf("company_name is required")
			}
			return []llm.Message{
				{Role: llm.RoleSystem, Content: qualificationSystem},
				{Role: llm.RoleUser, Content: fmt.Sprintf(
					"Company: %s\nIndustry: %v\nSize: %v\nContact title: %v",
					company, input["industry"], input["company_size"], input["contact_title"])},
			}, nil
		},
		Postprocess: func(ctx context.Context, rc *agent.RunContext, result map[string]interface{}) (map[string]interface{}, error) {
			if rc.LeadID == "" {
				return result, nil
			}
			score, _ := result["score"].(float64)
			tier, _ := result["tier"].(string)
			rationale, _ := result["rationale"].(string)
			if err := deps.Leads.RecordQualification(ctx, rc.LeadID, models.QualificationResult{
				Score:     int(score),
				Tier:      tier,
				Rationale: rationale,
				LatencyMS: int(time.Since(rc.StartedAt).Milliseconds()),
			}); err != nil {
				return nil, fmt.Errorf("failed to record qualification: %w", err)
			}
			result["lead_id"] = rc.LeadID
			return result, nil
		},
	}
}
