package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passNode(name string) *Node {
	return &Node{
		Name: name,
		Run: func(_ context.Context, _ *RunContext, _ State) (Delta, error) {
			return Delta{name: "done"}, nil
		},
	}
}

func TestGraph_CompileUnknownTool(t *testing.T) {
	g := NewGraph("test", "qualification")
	g.AddNode(&Node{Name: "a", Run: passNode("a").Run, Tools: []string{"nonexistent"}})
	g.AddEdge("a", END)

	err := g.Compile(NewToolRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")
}

func TestGraph_CompileUndefinedEdgeTarget(t *testing.T) {
	g := NewGraph("test", "qualification")
	g.AddNode(passNode("a"))
	g.AddEdge("a", "ghost")

	err := g.Compile(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined node")
}

func TestGraph_CompileUndeclaredMerge(t *testing.T) {
	g := NewGraph("test", "growth")
	g.AddNode(passNode("split"))
	g.AddNode(&Node{Name: "b1", Run: passNode("b1").Run, Writes: []string{"shared"}})
	g.AddNode(&Node{Name: "b2", Run: passNode("b2").Run, Writes: []string{"shared"}})
	g.AddNode(passNode("join"))
	g.AddFanOut("split", []string{"b1", "b2"}, "join")
	g.AddEdge("join", END)

	err := g.Compile(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without a declared merge rule")

	// Declaring the rule fixes it.
	g.Merge("shared", MergeAppend)
	require.NoError(t, g.Compile(nil))
}

func TestGraph_CompileUnreachableEnd(t *testing.T) {
	g := NewGraph("test", "growth")
	g.AddNode(passNode("a"))
	g.AddNode(passNode("b"))
	g.AddEdge("a", "b")
	g.AddEdge("b", "a") // cycle with no exit

	err := g.Compile(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "END is unreachable")
}

func TestGraph_CompileMissingOutgoingEdge(t *testing.T) {
	g := NewGraph("test", "growth")
	g.AddNode(passNode("a"))
	g.AddNode(passNode("dangling"))
	g.AddEdge("a", END)

	err := g.Compile(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no outgoing edge")
}

func TestGraph_ExecuteLinearPath(t *testing.T) {
	g := NewGraph("test", "qualification")
	g.AddNode(passNode("first"))
	g.AddNode(passNode("second"))
	g.AddEdge("first", "second")
	g.AddEdge("second", END)
	require.NoError(t, g.Compile(nil))

	store := newMemStore()
	rc := newTestRunContext(nil, store, nil)

	result, err := g.Execute(context.Background(), rc, map[string]interface{}{"seed": "x"})
	require.NoError(t, err)
	assert.Equal(t, "done", result["first"])
	assert.Equal(t, "done", result["second"])
	assert.Equal(t, "x", result["seed"])

	// One checkpoint per node, taken before the node ran.
	cps := store.checkpoints["exec-test"]
	require.Len(t, cps, 2)
	assert.Equal(t, "first", cps[0].Node)
	assert.Equal(t, "second", cps[1].Node)
}

func TestGraph_ExecuteConditionalCycle(t *testing.T) {
	g := NewGraph("test", "growth")
	g.AddNode(&Node{
		Name: "research",
		Run: func(_ context.Context, _ *RunContext, state State) (Delta, error) {
			conf, _ := state.Float("confidence")
			return Delta{"confidence": conf + 0.3}, nil
		},
	})
	g.AddConditional("research", func(state State) string {
		if conf, _ := state.Float("confidence"); conf >= 0.8 {
			return END
		}
		return "research"
	}, "research")
	require.NoError(t, g.Compile(nil))

	rc := newTestRunContext(nil, nil, nil)
	result, err := g.Execute(context.Background(), rc, nil)
	require.NoError(t, err)

	conf, ok := State(result).Float("confidence")
	require.True(t, ok)
	assert.GreaterOrEqual(t, conf, 0.8)
}

func TestGraph_ExecuteStepCap(t *testing.T) {
	g := NewGraph("test", "growth")
	g.AddNode(&Node{
		Name: "loop",
		Run: func(_ context.Context, _ *RunContext, _ State) (Delta, error) {
			return Delta{}, nil
		},
	})
	g.AddConditional("loop", func(State) string { return "loop" }, "loop", END)
	require.NoError(t, g.Compile(nil))

	rc := newTestRunContext(nil, nil, nil)
	rc.cfg.StepCap = 5

	_, err := g.Execute(context.Background(), rc, nil)
	var rec *RecursionError
	require.ErrorAs(t, err, &rec)
	assert.Equal(t, 5, rec.Cap)
}

func TestGraph_ExecuteFanOutMerge(t *testing.T) {
	g := NewGraph("test", "enrichment")
	g.AddNode(passNode("gather"))
	g.AddNode(&Node{
		Name:   "web",
		Writes: []string{"sources", "confidence"},
		Run: func(_ context.Context, _ *RunContext, _ State) (Delta, error) {
			return Delta{"sources": []interface{}{"web"}, "confidence": 0.6}, nil
		},
	})
	g.AddNode(&Node{
		Name:   "crm",
		Writes: []string{"sources", "confidence"},
		Run: func(_ context.Context, _ *RunContext, _ State) (Delta, error) {
			return Delta{"sources": []interface{}{"crm"}, "confidence": 0.8}, nil
		},
	})
	g.AddNode(passNode("summarize"))
	g.AddFanOut("gather", []string{"web", "crm"}, "summarize")
	g.AddEdge("summarize", END)
	g.Merge("sources", MergeUnion)
	g.Merge("confidence", MergeMax)
	require.NoError(t, g.Compile(nil))

	store := newMemStore()
	rc := newTestRunContext(nil, store, nil)

	result, err := g.Execute(context.Background(), rc, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []interface{}{"web", "crm"}, result["sources"])
	assert.Equal(t, 0.8, result["confidence"])
	assert.Equal(t, "done", result["summarize"])

	// gather + two branches + barrier = 4 checkpoints.
	assert.Len(t, store.checkpoints["exec-test"], 4)
}

func TestGraph_SuspendAndResume(t *testing.T) {
	buildGraph := func() *Graph {
		g := NewGraph("test", "bdr")
		g.AddNode(&Node{
			Name: "draft",
			Run: func(_ context.Context, _ *RunContext, _ State) (Delta, error) {
				return Delta{"draft": "email body"}, nil
			},
		})
		g.AddNode(&Node{
			Name: "approval",
			Run: func(_ context.Context, rc *RunContext, state State) (Delta, error) {
				if input := rc.ResumeInput(); input != nil {
					return Delta{"approved": input["approved"]}, nil
				}
				return nil, Suspend("awaiting human approval", map[string]interface{}{"pending": true})
			},
		})
		g.AddNode(&Node{
			Name: "send",
			Run: func(_ context.Context, _ *RunContext, state State) (Delta, error) {
				return Delta{"sent": state["approved"]}, nil
			},
		})
		g.AddEdge("draft", "approval")
		g.AddEdge("approval", "send")
		g.AddEdge("send", END)
		return g
	}

	g := buildGraph()
	require.NoError(t, g.Compile(nil))

	store := newMemStore()
	rc := newTestRunContext(nil, store, nil)

	_, err := g.Execute(context.Background(), rc, nil)
	var sus *SuspendError
	require.ErrorAs(t, err, &sus)
	assert.Equal(t, "awaiting human approval", sus.Reason)

	// The latest checkpoint is the suspended one at the approval node.
	cp, err := store.LatestCheckpoint(context.Background(), "exec-test")
	require.NoError(t, err)
	assert.True(t, cp.Suspended)
	assert.Equal(t, "approval", cp.Node)

	// Resume with approval input; execution runs through to END.
	rc2 := newTestRunContext(nil, store, nil)
	rc2.resume = cp
	rc2.resumeInput = map[string]interface{}{"approved": true}

	result, err := g.Execute(context.Background(), rc2, nil)
	require.NoError(t, err)
	assert.Equal(t, true, result["sent"])
	assert.Equal(t, "email body", result["draft"])
}
