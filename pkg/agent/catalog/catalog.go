// Package catalog defines the sales agents shipped with the runtime:
// qualification, enrichment and marketing as linear pipelines, growth as a
// cyclic research graph, bdr and conversation as tool-using graphs.
package catalog

import (
	"fmt"

	"github.com/ScientiaCapital/sales-agent/pkg/agent"
	"github.com/ScientiaCapital/sales-agent/pkg/services"
)

// Deps are the repository services the catalog tools and postprocessors use.
type Deps struct {
	Leads    *services.LeadService
	Contacts *services.ContactService
}

// Build assembles the tool registry and the compiled agent set. Graph
// agents are compiled here so configuration mistakes surface at startup.
func Build(deps Deps) (*agent.ToolRegistry, []agent.Agent, error) {
	tools := newToolRegistry(deps)

	graphs := []*agent.Graph{
		newGrowthAgent(),
		newBDRAgent(),
		newConversationAgent(),
	}
	for _, g := range graphs {
		if err := g.Compile(tools); err != nil {
			return nil, nil, fmt.Errorf("failed to compile agent %s: %w", g.Name(), err)
		}
	}

	agents := []agent.Agent{
		newQualificationAgent(deps),
		newEnrichmentAgent(deps),
		newMarketingAgent(),
	}
	for _, g := range graphs {
		agents = append(agents, g)
	}
	return tools, agents, nil
}
