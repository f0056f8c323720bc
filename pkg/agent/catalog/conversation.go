package catalog

import (
	"context"
	"fmt"

	"github.com/ScientiaCapital/sales-agent/pkg/agent"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
)

const conversationSystem = `You are a helpful sales assistant talking to a prospect.
Be concise and concrete. Use the CRM context when it is present.`

// newConversationAgent answers a user turn, streaming tokens as they arrive.
// When the input references a CRM contact the recall node pulls the local
// mirror in first so the reply is grounded in it.
func newConversationAgent() *agent.Graph {
	g := agent.NewGraph("conversation", "conversation")

	g.AddNode(&agent.Node{
		Name:  "recall",
		Tools: []string{"crm_contact_lookup"},
		Run: func(ctx context.Context, rc *agent.RunContext, state agent.State) (agent.Delta, error) {
			platform, _ := state.String("platform")
			externalID, _ := state.String("external_id")
			if platform == "" || externalID == "" {
				return agent.Delta{}, nil
			}
			res := rc.CallTool(ctx, "crm_contact_lookup", map[string]interface{}{
				"platform":    platform,
				"external_id": externalID,
			})
			if !res.Success {
				// A missing mirror degrades the reply, it does not fail it.
				return agent.Delta{}, nil
			}
			return agent.Delta{"crm_context": res.Payload}, nil
		},
	})

	g.AddNode(&agent.Node{
		Name: "respond",
		Run: func(ctx context.Context, rc *agent.RunContext, state agent.State) (agent.Delta, error) {
			userInput, ok := state.String("user_input")
			if !ok || userInput == "" {
				return nil, fmt.Errorf("user_input is required")
			}
			messages := []llm.Message{{Role: llm.RoleSystem, Content: conversationSystem}}
			if crmCtx, ok := state["crm_context"]; ok {
				messages = append(messages, llm.Message{
					Role:    llm.RoleSystem,
					Content: fmt.Sprintf("CRM context: %v", crmCtx),
				})
			}
			messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userInput})

			resp, err := rc.GenerateStream(ctx, "conversation", messages)
			if err != nil {
				return nil, err
			}
			return agent.Delta{"reply": resp.Text}, nil
		},
	})

	g.AddEdge("recall", "respond")
	g.AddEdge("respond", agent.END)
	return g
}
