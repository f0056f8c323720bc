package agent

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ScientiaCapital/sales-agent/pkg/models"
)

// RecursionError reports a graph invocation that exceeded its step cap.
// Partial results already streamed are retained.
type RecursionError struct {
	Cap int
}

func (e *RecursionError) Error() string {
	return fmt.Sprintf("recursion_exhausted: step cap %d exceeded", e.Cap)
}

// Execute implements Agent. The loop checkpoints before each node, honors
// the step cap, runs fan-out branches concurrently, and exits without
// terminating the execution when a node suspends.
func (g *Graph) Execute(ctx context.Context, rc *RunContext, input map[string]interface{}) (map[string]interface{}, error) {
	if !g.compiled {
		return nil, fmt.Errorf("graph %s: Execute called before Compile", g.AgentName)
	}

	state := State{}
	current := g.Start
	step := 0

	if rc.resume != nil {
		restored, err := DecodeState(rc.resume.State)
		if err != nil {
			return nil, err
		}
		state = restored
		current = rc.resume.Node
		step = rc.resume.Step
		if rc.resumeInput != nil {
			if err := state.Apply(Delta(rc.resumeInput), g.merges); err != nil {
				return nil, err
			}
		}
	} else if input != nil {
		if err := state.Apply(Delta(input), g.merges); err != nil {
			return nil, err
		}
	}

	for current != END {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if step >= rc.cfg.StepCap {
			return nil, &RecursionError{Cap: rc.cfg.StepCap}
		}

		if err := g.checkpoint(ctx, rc, step, current, state, false, ""); err != nil {
			return nil, err
		}

		delta, err := g.runNode(ctx, rc, step, current, state)
		if err != nil {
			if sus, ok := err.(*SuspendError); ok {
				return nil, g.suspendAt(ctx, rc, step, current, state, sus)
			}
			return nil, err
		}
		if err := state.Apply(delta, g.merges); err != nil {
			return nil, err
		}
		step++

		if fo, ok := g.fanouts[current]; ok {
			n, err := g.runFanOut(ctx, rc, step, fo, state)
			if err != nil {
				return nil, err
			}
			step += n
			current = fo.Barrier
			continue
		}

		next, err := g.nextNode(current, state)
		if err != nil {
			return nil, err
		}
		current = next
	}

	return map[string]interface{}(state), nil
}

// runNode executes one node against a snapshot of the state.
func (g *Graph) runNode(ctx context.Context, rc *RunContext, step int, name string, state State) (Delta, error) {
	node := g.nodes[name]
	rc.tracer.NodeEnter(rc.ExecutionID, step, name)
	rc.PublishEvent(ctx, "node_enter", map[string]interface{}{"node": name, "step": step})

	delta, err := node.Run(ctx, rc, state.Clone())
	rc.tracer.NodeExit(rc.ExecutionID, step, name, err)
	return delta, err
}

// runFanOut checkpoints and launches the branches concurrently, then merges
// their deltas under the declared rules in deterministic branch order.
// Returns the number of steps consumed.
func (g *Graph) runFanOut(ctx context.Context, rc *RunContext, firstStep int, fo *fanOut, state State) (int, error) {
	branches := make([]string, len(fo.Branches))
	copy(branches, fo.Branches)
	sort.Strings(branches)

	// Checkpoint each branch before any of them run, with distinct steps.
	for i, name := range branches {
		if err := g.checkpoint(ctx, rc, firstStep+i, name, state, false, ""); err != nil {
			return 0, err
		}
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		deltas = make(map[string]Delta, len(branches))
		errs   []error
	)
	for i, name := range branches {
		wg.Add(1)
		go func(step int, name string) {
			defer wg.Done()
			delta, err := g.runNode(ctx, rc, step, name, state)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if _, suspended := err.(*SuspendError); suspended {
					err = fmt.Errorf("node %q: cannot suspend inside parallel branches", name)
				}
				errs = append(errs, fmt.Errorf("branch %q: %w", name, err))
				return
			}
			deltas[name] = delta
		}(firstStep+i, name)
	}
	wg.Wait()

	if len(errs) > 0 {
		return 0, errs[0]
	}

	// Barrier: all branches emitted a delta; merge before the successor runs.
	if err := state.MergeParallel(deltas, g.merges); err != nil {
		return 0, err
	}
	return len(branches), nil
}

// nextNode picks the successor by conditional predicate or static edge.
func (g *Graph) nextNode(current string, state State) (string, error) {
	if pick, ok := g.conditional[current]; ok {
		next := pick(state)
		if next != END {
			if _, defined := g.nodes[next]; !defined {
				return "", fmt.Errorf("graph %s: conditional at %q picked undefined node %q", g.AgentName, current, next)
			}
		}
		return next, nil
	}
	if next, ok := g.edges[current]; ok {
		return next, nil
	}
	return "", fmt.Errorf("graph %s: node %q has no successor", g.AgentName, current)
}

// checkpoint persists the state about to be consumed by a node. Replays of
// an already-persisted (execution, step) pair are no-ops.
func (g *Graph) checkpoint(ctx context.Context, rc *RunContext, step int, node string, state State, suspended bool, reason string) error {
	blob, err := EncodeState(state)
	if err != nil {
		return err
	}
	return rc.store.SaveCheckpoint(ctx, models.CreateCheckpointRequest{
		ExecutionID:   rc.ExecutionID,
		Step:          step,
		Node:          node,
		State:         blob,
		Suspended:     suspended,
		SuspendReason: reason,
	})
}

// suspendAt writes the suspended checkpoint one step ahead so it becomes
// the latest, then propagates the suspension.
func (g *Graph) suspendAt(ctx context.Context, rc *RunContext, step int, node string, state State, sus *SuspendError) error {
	if sus.Payload != nil {
		if err := state.Apply(Delta(sus.Payload), g.merges); err != nil {
			return err
		}
	}
	if err := g.checkpoint(ctx, rc, step+1, node, state, true, sus.Reason); err != nil {
		return err
	}
	return sus
}
