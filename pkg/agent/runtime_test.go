package agent

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/bus"
	"github.com/ScientiaCapital/sales-agent/pkg/config"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
	"github.com/ScientiaCapital/sales-agent/pkg/services"
	"github.com/ScientiaCapital/sales-agent/pkg/stream"
)

// funcAgent is a minimal Agent for runtime tests.
type funcAgent struct {
	name string
	task string
	fn   func(ctx context.Context, rc *RunContext, input map[string]interface{}) (map[string]interface{}, error)
}

func (a *funcAgent) Name() string      { return a.name }
func (a *funcAgent) TaskClass() string { return a.task }
func (a *funcAgent) Execute(ctx context.Context, rc *RunContext, input map[string]interface{}) (map[string]interface{}, error) {
	return a.fn(ctx, rc, input)
}

func newTestRuntime(t *testing.T, store *memStore, llmAPI LLM) *Runtime {
	rt, _ := newTestRuntimeWithFabric(t, store, llmAPI)
	return rt
}

func newTestRuntimeWithFabric(t *testing.T, store *memStore, llmAPI LLM) (*Runtime, *stream.Fabric) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	fabric := stream.NewFabric(bus.NewFromClient(rdb), config.DefaultStreamConfig())
	return NewRuntime(config.DefaultRuntimeConfig(), llmAPI, store, fabric, NewToolRegistry(), nil), fabric
}

func waitForStatus(t *testing.T, store *memStore, executionID, want string) {
	t.Helper()
	require.Eventually(t, func() bool {
		return store.status(executionID) == want
	}, 3*time.Second, 10*time.Millisecond, "execution %s never reached status %s", executionID, want)
}

func TestRuntime_InvokeSuccess(t *testing.T) {
	store := newMemStore()
	rt := newTestRuntime(t, store, nil)
	require.NoError(t, rt.Register(&funcAgent{
		name: "echo",
		task: "qualification",
		fn: func(_ context.Context, _ *RunContext, input map[string]interface{}) (map[string]interface{}, error) {
			return map[string]interface{}{"echoed": input["msg"]}, nil
		},
	}))

	executionID, err := rt.Invoke(context.Background(), models.InvokeAgentRequest{
		AgentName: "echo",
		Input:     map[string]interface{}{"msg": "hi"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, executionID)

	waitForStatus(t, store, executionID, "success")

	exec, err := store.GetExecution(context.Background(), executionID)
	require.NoError(t, err)
	assert.NotNil(t, exec.StartedAt)
	assert.NotNil(t, exec.CompletedAt)
	assert.Empty(t, exec.ErrorMessage)
}

func TestRuntime_InvokeUnknownAgent(t *testing.T) {
	rt := newTestRuntime(t, newMemStore(), nil)

	_, err := rt.Invoke(context.Background(), models.InvokeAgentRequest{AgentName: "nonexistent"})
	require.ErrorIs(t, err, ErrUnknownAgent)
}

func TestRuntime_RegisterDuplicate(t *testing.T) {
	rt := newTestRuntime(t, newMemStore(), nil)
	a := &funcAgent{name: "dup", task: "qualification", fn: nil}

	require.NoError(t, rt.Register(a))
	require.Error(t, rt.Register(a))
	assert.ElementsMatch(t, []string{"dup"}, rt.AgentNames())
}

func TestRuntime_CancelRunningExecution(t *testing.T) {
	store := newMemStore()
	rt := newTestRuntime(t, store, nil)
	started := make(chan struct{})
	require.NoError(t, rt.Register(&funcAgent{
		name: "blocker",
		task: "conversation",
		fn: func(ctx context.Context, _ *RunContext, _ map[string]interface{}) (map[string]interface{}, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}))

	executionID, err := rt.Invoke(context.Background(), models.InvokeAgentRequest{AgentName: "blocker"})
	require.NoError(t, err)

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("agent never started")
	}

	require.True(t, rt.Cancel(executionID))
	waitForStatus(t, store, executionID, "failed")

	exec, err := store.GetExecution(context.Background(), executionID)
	require.NoError(t, err)
	assert.Contains(t, exec.ErrorMessage, "context canceled")
}

func TestRuntime_FailureRecordsErrorAndCost(t *testing.T) {
	store := newMemStore()
	rt := newTestRuntime(t, store, nil)
	require.NoError(t, rt.Register(&funcAgent{
		name: "faulty",
		task: "qualification",
		fn: func(_ context.Context, rc *RunContext, _ map[string]interface{}) (map[string]interface{}, error) {
			rc.addCost(0.002)
			return nil, assert.AnError
		},
	}))

	executionID, err := rt.Invoke(context.Background(), models.InvokeAgentRequest{AgentName: "faulty"})
	require.NoError(t, err)
	waitForStatus(t, store, executionID, "failed")

	exec, err := store.GetExecution(context.Background(), executionID)
	require.NoError(t, err)
	assert.Equal(t, 0.002, exec.CostUSD)
	assert.Contains(t, exec.ErrorMessage, assert.AnError.Error())
}

// suspendingAgent suspends on its first run and completes when resumed.
func suspendingAgent(name string) *funcAgent {
	return &funcAgent{
		name: name,
		task: "bdr",
		fn: func(ctx context.Context, rc *RunContext, _ map[string]interface{}) (map[string]interface{}, error) {
			if input := rc.ResumeInput(); input != nil {
				return map[string]interface{}{"approved": input["approved"]}, nil
			}
			if err := rc.store.SaveCheckpoint(ctx, models.CreateCheckpointRequest{
				ExecutionID:   rc.ExecutionID,
				Step:          1,
				Node:          "approval",
				Suspended:     true,
				SuspendReason: "awaiting approval",
			}); err != nil {
				return nil, err
			}
			return nil, Suspend("awaiting approval", nil)
		},
	}
}

func TestRuntime_SuspendThenResume(t *testing.T) {
	store := newMemStore()
	rt := newTestRuntime(t, store, nil)
	require.NoError(t, rt.Register(suspendingAgent("approver")))

	executionID, err := rt.Invoke(context.Background(), models.InvokeAgentRequest{AgentName: "approver"})
	require.NoError(t, err)

	// Suspension leaves the execution running, not completed.
	require.Eventually(t, func() bool {
		cp, err := store.LatestCheckpoint(context.Background(), executionID)
		return err == nil && cp.Suspended
	}, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, "running", store.status(executionID))

	require.NoError(t, rt.Resume(context.Background(), executionID, map[string]interface{}{"approved": true}))
	waitForStatus(t, store, executionID, "success")
}

func TestRuntime_ResumeNotSuspended(t *testing.T) {
	store := newMemStore()
	rt := newTestRuntime(t, store, nil)
	require.NoError(t, rt.Register(&funcAgent{
		name: "echo",
		task: "qualification",
		fn: func(_ context.Context, _ *RunContext, _ map[string]interface{}) (map[string]interface{}, error) {
			return map[string]interface{}{}, nil
		},
	}))

	executionID, err := rt.Invoke(context.Background(), models.InvokeAgentRequest{AgentName: "echo"})
	require.NoError(t, err)
	waitForStatus(t, store, executionID, "success")

	// No checkpoint at all.
	err = rt.Resume(context.Background(), executionID, nil)
	require.ErrorIs(t, err, services.ErrNotSuspended)

	// A non-suspended checkpoint does not qualify either.
	require.NoError(t, store.SaveCheckpoint(context.Background(), models.CreateCheckpointRequest{
		ExecutionID: executionID,
		Step:        1,
		Node:        "step",
	}))
	err = rt.Resume(context.Background(), executionID, nil)
	require.ErrorIs(t, err, services.ErrNotSuspended)
}

func TestRuntime_ResumeExpiredCheckpoint(t *testing.T) {
	store := newMemStore()
	rt := newTestRuntime(t, store, nil)
	require.NoError(t, rt.Register(suspendingAgent("approver")))

	executionID, err := rt.Invoke(context.Background(), models.InvokeAgentRequest{AgentName: "approver"})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		cp, err := store.LatestCheckpoint(context.Background(), executionID)
		return err == nil && cp.Suspended
	}, 3*time.Second, 10*time.Millisecond)

	store.backdateCheckpoints(executionID, 48*time.Hour)
	err = rt.Resume(context.Background(), executionID, nil)
	require.ErrorIs(t, err, services.ErrNotSuspended)
}

func TestRuntime_ResumeUnknownExecution(t *testing.T) {
	rt := newTestRuntime(t, newMemStore(), nil)
	err := rt.Resume(context.Background(), "no-such-execution", nil)
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestRuntime_RouteOptionsReachProviderCalls(t *testing.T) {
	store := newMemStore()
	var mu sync.Mutex
	var captured llm.RouteOptions
	fake := &fakeLLM{generateFn: func(_ int64, _ string, input *llm.GenerateInput) (*llm.Response, error) {
		mu.Lock()
		captured = input.Route
		mu.Unlock()
		return textResponse("qualified")
	}}
	rt := newTestRuntime(t, store, fake)
	require.NoError(t, rt.Register(&funcAgent{
		name: "qualifier",
		task: "qualification",
		fn: func(ctx context.Context, rc *RunContext, _ map[string]interface{}) (map[string]interface{}, error) {
			if _, err := rc.Generate(ctx, "qualification", []llm.Message{{Role: llm.RoleUser, Content: "hi"}}); err != nil {
				return nil, err
			}
			return map[string]interface{}{"ok": true}, nil
		},
	}))

	executionID, err := rt.Invoke(context.Background(), models.InvokeAgentRequest{
		AgentName:      "qualifier",
		ForcedProvider: "anthropic",
		MaxLatencyMS:   800,
		MaxCostUSD:     0.25,
		RequiresVision: true,
	})
	require.NoError(t, err)
	waitForStatus(t, store, executionID, "success")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "anthropic", captured.ForcedProvider)
	assert.Equal(t, int64(800), captured.MaxLatencyMS)
	assert.InDelta(t, 0.25, captured.MaxCostUSD, 1e-9)
	assert.Contains(t, captured.RequiredCapabilities, config.CapabilityVision)
}

func TestRuntime_StreamModeGatesTokenDelivery(t *testing.T) {
	tests := []struct {
		name             string
		mode             string
		wantTokens       bool
		wantMessageEvent bool
	}{
		{"tokens by default", "", true, false},
		{"events suppresses tokens", models.StreamModeEvents, false, false},
		{"messages delivers whole turns", models.StreamModeMessages, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			fake := &fakeLLM{generateFn: func(int64, string, *llm.GenerateInput) (*llm.Response, error) {
				return textResponse("hello")
			}}
			rt, fabric := newTestRuntimeWithFabric(t, store, fake)

			// The agent waits until the test is subscribed so no chunk
			// slips past the live pub/sub attach.
			subscribed := make(chan struct{})
			require.NoError(t, rt.Register(&funcAgent{
				name: "narrator",
				task: "conversation",
				fn: func(ctx context.Context, rc *RunContext, _ map[string]interface{}) (map[string]interface{}, error) {
					<-subscribed
					if _, err := rc.GenerateStream(ctx, "conversation", []llm.Message{{Role: llm.RoleUser, Content: "go"}}); err != nil {
						return nil, err
					}
					return map[string]interface{}{"done": true}, nil
				},
			}))

			ctx := context.Background()
			executionID, err := rt.Invoke(ctx, models.InvokeAgentRequest{
				AgentName: "narrator", Stream: true, StreamMode: tt.mode,
			})
			require.NoError(t, err)

			sub, err := fabric.Subscribe(ctx, executionID)
			require.NoError(t, err)
			close(subscribed)

			sawToken := false
			sawMessageEvent := false
			for chunk := range sub {
				switch chunk.Type {
				case stream.ChunkToken:
					sawToken = true
				case stream.ChunkEvent:
					if strings.Contains(string(chunk.Payload), `"name":"message"`) {
						sawMessageEvent = true
					}
				}
				if chunk.Terminal() {
					break
				}
			}
			assert.Equal(t, tt.wantTokens, sawToken)
			assert.Equal(t, tt.wantMessageEvent, sawMessageEvent)
		})
	}
}

func TestRuntime_Shutdown(t *testing.T) {
	store := newMemStore()
	rt := newTestRuntime(t, store, nil)
	release := make(chan struct{})
	require.NoError(t, rt.Register(&funcAgent{
		name: "slow",
		task: "qualification",
		fn: func(ctx context.Context, _ *RunContext, _ map[string]interface{}) (map[string]interface{}, error) {
			select {
			case <-release:
				return map[string]interface{}{}, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		},
	}))

	executionID, err := rt.Invoke(context.Background(), models.InvokeAgentRequest{AgentName: "slow"})
	require.NoError(t, err)

	// Shutdown times out while the execution is held.
	shortCtx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.Error(t, rt.Shutdown(shortCtx))

	close(release)
	require.NoError(t, rt.Shutdown(context.Background()))
	waitForStatus(t, store, executionID, "success")
}
