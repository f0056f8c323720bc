package agent

import (
	"context"
	"fmt"
	"sort"
)

// END is the designated sink terminating graph execution.
const END = "END"

// NodeFunc consumes state and produces a delta. It may call tools and
// providers through the RunContext, return Suspend to pause, or return an
// error to fail the execution.
type NodeFunc func(ctx context.Context, rc *RunContext, state State) (Delta, error)

// Node is one vertex of an agent graph.
type Node struct {
	Name string
	Run  NodeFunc

	// Tools names the registry tools this node may call. Unknown names are
	// compile errors.
	Tools []string

	// Writes declares the state keys this node's delta may touch. Keys
	// written by parallel branches must have a declared merge rule.
	Writes []string
}

// fanOut is a parallel split: after From runs, Branches execute
// concurrently and their deltas merge before Barrier starts.
type fanOut struct {
	Branches []string
	Barrier  string
}

// Graph is an agent shaped as a directed graph. Build it with the Add
// methods, then Compile before use.
type Graph struct {
	AgentName string
	Task      string
	Start     string

	nodes       map[string]*Node
	edges       map[string]string
	conditional map[string]func(State) string
	// conditionalTargets lists the possible targets of each conditional
	// edge so reachability can be checked statically.
	conditionalTargets map[string][]string
	fanouts            map[string]*fanOut
	merges             map[string]MergeRule

	compiled bool
}

// NewGraph creates an empty graph for the given agent.
func NewGraph(agentName, task string) *Graph {
	return &Graph{
		AgentName:          agentName,
		Task:               task,
		nodes:              make(map[string]*Node),
		edges:              make(map[string]string),
		conditional:        make(map[string]func(State) string),
		conditionalTargets: make(map[string][]string),
		fanouts:            make(map[string]*fanOut),
		merges:             make(map[string]MergeRule),
	}
}

// AddNode adds a vertex. The first node added becomes the start node
// unless SetStart overrides it.
func (g *Graph) AddNode(node *Node) *Graph {
	if g.Start == "" {
		g.Start = node.Name
	}
	g.nodes[node.Name] = node
	return g
}

// SetStart overrides the start node.
func (g *Graph) SetStart(name string) *Graph {
	g.Start = name
	return g
}

// AddEdge declares the static successor of a node.
func (g *Graph) AddEdge(from, to string) *Graph {
	g.edges[from] = to
	return g
}

// AddConditional declares a predicate-selected successor. The targets list
// enumerates every node the predicate may return.
func (g *Graph) AddConditional(from string, pick func(State) string, targets ...string) *Graph {
	g.conditional[from] = pick
	g.conditionalTargets[from] = targets
	return g
}

// AddFanOut declares a parallel split after from: branches run
// concurrently, merge at the barrier node.
func (g *Graph) AddFanOut(from string, branches []string, barrier string) *Graph {
	g.fanouts[from] = &fanOut{Branches: branches, Barrier: barrier}
	return g
}

// Merge declares the merge rule for a state key.
func (g *Graph) Merge(key string, rule MergeRule) *Graph {
	g.merges[key] = rule
	return g
}

// Name implements Agent.
func (g *Graph) Name() string { return g.AgentName }

// TaskClass implements Agent.
func (g *Graph) TaskClass() string { return g.Task }

// Compile validates the graph structure. It must be called once before
// Execute; configuration problems are errors here, not at run time.
func (g *Graph) Compile(tools *ToolRegistry) error {
	if g.Start == "" {
		return fmt.Errorf("graph %s: no start node", g.AgentName)
	}
	if _, ok := g.nodes[g.Start]; !ok {
		return fmt.Errorf("graph %s: start node %q not defined", g.AgentName, g.Start)
	}

	// Every referenced node must exist; every node's tools must resolve.
	for name, node := range g.nodes {
		for _, tool := range node.Tools {
			if tools == nil || !tools.Has(tool) {
				return fmt.Errorf("graph %s: node %q references unknown tool %q", g.AgentName, name, tool)
			}
		}
	}
	for from, to := range g.edges {
		if err := g.checkRef(from, to); err != nil {
			return err
		}
	}
	for from, targets := range g.conditionalTargets {
		if _, ok := g.nodes[from]; !ok {
			return fmt.Errorf("graph %s: conditional edge from unknown node %q", g.AgentName, from)
		}
		if len(targets) == 0 {
			return fmt.Errorf("graph %s: conditional edge from %q declares no targets", g.AgentName, from)
		}
		for _, to := range targets {
			if err := g.checkRef(from, to); err != nil {
				return err
			}
		}
	}
	for from, fo := range g.fanouts {
		if _, ok := g.nodes[from]; !ok {
			return fmt.Errorf("graph %s: fan-out from unknown node %q", g.AgentName, from)
		}
		if len(fo.Branches) < 2 {
			return fmt.Errorf("graph %s: fan-out from %q needs at least two branches", g.AgentName, from)
		}
		for _, b := range fo.Branches {
			if _, ok := g.nodes[b]; !ok {
				return fmt.Errorf("graph %s: fan-out branch %q not defined", g.AgentName, b)
			}
		}
		if err := g.checkRef(from, fo.Barrier); err != nil {
			return err
		}

		// Undeclared merges into the same key are configuration errors:
		// every key written by a fan-out branch needs a merge rule.
		for _, b := range fo.Branches {
			for _, key := range g.nodes[b].Writes {
				if _, ok := g.merges[key]; !ok {
					return fmt.Errorf("graph %s: branch %q writes key %q without a declared merge rule", g.AgentName, b, key)
				}
			}
		}
	}

	// Every node must have a way forward.
	for name := range g.nodes {
		_, hasEdge := g.edges[name]
		_, hasCond := g.conditional[name]
		_, hasFan := g.fanouts[name]
		if !hasEdge && !hasCond && !hasFan && !g.isBranch(name) {
			return fmt.Errorf("graph %s: node %q has no outgoing edge", g.AgentName, name)
		}
	}

	// END must be reachable from the start node.
	if !g.endReachable() {
		return fmt.Errorf("graph %s: END is unreachable from %q", g.AgentName, g.Start)
	}

	g.compiled = true
	return nil
}

func (g *Graph) checkRef(from, to string) error {
	if to == END {
		return nil
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("graph %s: edge %q -> %q targets undefined node", g.AgentName, from, to)
	}
	return nil
}

// isBranch reports whether a node is a fan-out branch (its successor is
// the barrier, implicitly).
func (g *Graph) isBranch(name string) bool {
	for _, fo := range g.fanouts {
		for _, b := range fo.Branches {
			if b == name {
				return true
			}
		}
	}
	return false
}

// successors returns the statically known successors of a node.
func (g *Graph) successors(name string) []string {
	var out []string
	if to, ok := g.edges[name]; ok {
		out = append(out, to)
	}
	out = append(out, g.conditionalTargets[name]...)
	if fo, ok := g.fanouts[name]; ok {
		out = append(out, fo.Branches...)
		out = append(out, fo.Barrier)
	}
	sort.Strings(out)
	return out
}

func (g *Graph) endReachable() bool {
	seen := map[string]bool{}
	queue := []string{g.Start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == END {
			return true
		}
		if seen[cur] {
			continue
		}
		seen[cur] = true
		queue = append(queue, g.successors(cur)...)
	}
	return false
}
