package catalog

import (
	"context"
	"fmt"

	"github.com/ScientiaCapital/sales-agent/pkg/agent"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
)

// growthConfidenceThreshold ends the research loop; below it the validate
// node sends execution back to research with the open questions.
const growthConfidenceThreshold = 0.75

var researchStepSchema = []byte(`{
	"type": "object",
	"required": ["findings", "confidence"],
	"properties": {
		"findings": {
			"type": "array",
			"items": {"type": "string"},
			"minItems": 1
		},
		"confidence": {"type": "number", "minimum": 0, "maximum": 1},
		"open_questions": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`)

var growthPlanSchema = []byte(`{
	"type": "object",
	"required": ["opportunities"],
	"properties": {
		"opportunities": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["segment", "play"],
				"properties": {
					"segment": {"type": "string"},
					"play": {"type": "string"},
					"expected_impact": {"type": "string"}
				}
			}
		}
	}
}`)

// newGrowthAgent is the cyclic research graph: research accumulates findings
// and a confidence estimate, validate loops back until the estimate clears
// the threshold, then plan turns the findings into growth opportunities.
func newGrowthAgent() *agent.Graph {
	g := agent.NewGraph("growth", "growth")

	g.AddNode(&agent.Node{
		Name:   "research",
		Writes: []string{"findings", "confidence", "open_questions"},
		Run: func(ctx context.Context, rc *agent.RunContext, state agent.State) (agent.Delta, error) {
			var out struct {
				Findings      []string `json:"findings"`
				Confidence    float64  `json:"confidence"`
				OpenQuestions []string `json:"open_questions"`
			}
			prompt := fmt.Sprintf(
				"Market: %v\nKnown findings so far: %v\nOpen questions: %v\n"+
					"Research the market further. Report new findings, remaining open "+
					"questions, and your overall confidence from 0 to 1. Reply with only JSON.",
				state["market"], state["findings"], state["open_questions"])
			if err := rc.GenerateStructured(ctx, "growth",
				[]llm.Message{{Role: llm.RoleUser, Content: prompt}},
				researchStepSchema, &out); err != nil {
				return nil, err
			}
			findings := make([]interface{}, len(out.Findings))
			for i, f := range out.Findings {
				findings[i] = f
			}
			return agent.Delta{
				"findings":       findings,
				"confidence":     out.Confidence,
				"open_questions": out.OpenQuestions,
			}, nil
		},
	})

	g.AddNode(&agent.Node{
		Name: "plan",
		Run: func(ctx context.Context, rc *agent.RunContext, state agent.State) (agent.Delta, error) {
			var out map[string]interface{}
			prompt := fmt.Sprintf(
				"Findings: %v\nDerive concrete growth opportunities: segment, play, "+
					"expected impact. Reply with only JSON.", state["findings"])
			if err := rc.GenerateStructured(ctx, "growth",
				[]llm.Message{{Role: llm.RoleUser, Content: prompt}},
				growthPlanSchema, &out); err != nil {
				return nil, err
			}
			return agent.Delta{"opportunities": out["opportunities"]}, nil
		},
	})

	g.AddConditional("research", func(state agent.State) string {
		if conf, ok := state.Float("confidence"); ok && conf >= growthConfidenceThreshold {
			return "plan"
		}
		return "research"
	}, "research", "plan")
	g.AddEdge("plan", agent.END)

	// Findings accumulate across research rounds; confidence keeps its peak.
	g.Merge("findings", agent.MergeAppend)
	g.Merge("confidence", agent.MergeMax)
	return g
}
