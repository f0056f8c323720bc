package catalog

import (
	"context"
	"fmt"

	"github.com/ScientiaCapital/sales-agent/pkg/agent"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
)

var outreachSchema = []byte(`{
	"type": "object",
	"required": ["subject", "body"],
	"properties": {
		"subject": {"type": "string", "minLength": 1, "maxLength": 120},
		"body": {"type": "string", "minLength": 1}
	}
}`)

const bdrSystem = `You are a business development representative. Write a short,
specific first-touch email grounded in the research provided. No placeholders.
Reply with only JSON.`

// newBDRAgent drafts outreach for a lead and pauses for human approval
// before it counts as sendable. Rejection loops back to drafting with the
// reviewer's feedback. Resume input lands in state, so each new draft
// clears the verdict to force another review round.
func newBDRAgent() *agent.Graph {
	g := agent.NewGraph("bdr", "bdr")

	g.AddNode(&agent.Node{
		Name:  "research",
		Tools: []string{"lead_lookup"},
		Run: func(ctx context.Context, rc *agent.RunContext, state agent.State) (agent.Delta, error) {
			if rc.LeadID == "" {
				return nil, fmt.Errorf("bdr requires a lead")
			}
			res := rc.CallTool(ctx, "lead_lookup", map[string]interface{}{"lead_id": rc.LeadID})
			if !res.Success {
				return nil, fmt.Errorf("lead lookup failed: %s", res.Error)
			}
			return agent.Delta{"lead": res.Payload}, nil
		},
	})

	g.AddNode(&agent.Node{
		Name: "draft",
		Run: func(ctx context.Context, rc *agent.RunContext, state agent.State) (agent.Delta, error) {
			var out map[string]interface{}
			prompt := fmt.Sprintf("Lead research: %v", state["lead"])
			if feedback, ok := state["feedback"]; ok && feedback != nil {
				prompt += fmt.Sprintf("\nReviewer feedback on the previous draft: %v", feedback)
			}
			if err := rc.GenerateStructured(ctx, "bdr",
				[]llm.Message{
					{Role: llm.RoleSystem, Content: bdrSystem},
					{Role: llm.RoleUser, Content: prompt},
				}, outreachSchema, &out); err != nil {
				return nil, err
			}
			return agent.Delta{"draft": out, "approved": nil, "feedback": nil}, nil
		},
	})

	g.AddNode(&agent.Node{
		Name: "approval",
		Run: func(ctx context.Context, rc *agent.RunContext, state agent.State) (agent.Delta, error) {
			verdict, ok := state["approved"]
			if !ok || verdict == nil {
				return nil, agent.Suspend("outreach draft awaits approval", map[string]interface{}{
					"pending_draft": state["draft"],
				})
			}
			approved, _ := verdict.(bool)
			return agent.Delta{"approved": approved}, nil
		},
	})

	g.AddNode(&agent.Node{
		Name:  "finalize",
		Tools: []string{"lead_note"},
		Run: func(ctx context.Context, rc *agent.RunContext, state agent.State) (agent.Delta, error) {
			res := rc.CallTool(ctx, "lead_note", map[string]interface{}{
				"lead_id": rc.LeadID,
				"note":    "outreach approved and queued",
			})
			if !res.Success {
				return nil, fmt.Errorf("failed to note lead: %s", res.Error)
			}
			return agent.Delta{"status": "approved"}, nil
		},
	})

	g.AddEdge("research", "draft")
	g.AddEdge("draft", "approval")
	g.AddConditional("approval", func(state agent.State) string {
		if approved, _ := state["approved"].(bool); approved {
			return "finalize"
		}
		return "draft"
	}, "finalize", "draft")
	g.AddEdge("finalize", agent.END)
	return g
}
