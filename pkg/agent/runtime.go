package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
	"github.com/ScientiaCapital/sales-agent/pkg/services"
	"github.com/ScientiaCapital/sales-agent/pkg/stream"
)

// ErrUnknownAgent is returned when invoking an agent that is not registered.
var ErrUnknownAgent = errors.New("unknown agent")

// Runtime executes registered agents. Invocations run on their own
// goroutines with a deadline; progress streams over the fabric under the
// execution ID.
type Runtime struct {
	cfg    *config.RuntimeConfig
	llmAPI LLM
	store  Store
	fabric *stream.Fabric
	tools  *ToolRegistry
	tracer Tracer

	mu     sync.RWMutex
	agents map[string]Agent

	wg sync.WaitGroup
}

// NewRuntime creates an empty runtime. Register agents before invoking.
func NewRuntime(cfg *config.RuntimeConfig, llmAPI LLM, store Store, fabric *stream.Fabric, tools *ToolRegistry, tracer Tracer) *Runtime {
	if tracer == nil {
		tracer = NopTracer{}
	}
	return &Runtime{
		cfg:    cfg,
		llmAPI: llmAPI,
		store:  store,
		fabric: fabric,
		tools:  tools,
		tracer: tracer,
		agents: make(map[string]Agent),
	}
}

// Register adds an agent to the catalog.
func (r *Runtime) Register(a Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.agents[a.Name()]; exists {
		return fmt.Errorf("agent %q already registered", a.Name())
	}
	r.agents[a.Name()] = a
	return nil
}

// AgentNames lists the registered agents.
func (r *Runtime) AgentNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	return names
}

func (r *Runtime) agent(name string) (Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.agents[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, name)
	}
	return a, nil
}

// Invoke dispatches an agent run and returns the execution ID, which is
// also the stream ID for subscribers.
func (r *Runtime) Invoke(ctx context.Context, req models.InvokeAgentRequest) (string, error) {
	a, err := r.agent(req.AgentName)
	if err != nil {
		return "", err
	}

	executionID := uuid.New().String()
	if err := r.store.CreateExecution(ctx, models.CreateExecutionRequest{
		ExecutionID: executionID,
		AgentName:   req.AgentName,
		LeadID:      req.LeadID,
	}); err != nil {
		return "", err
	}

	r.launch(executionID, a, req, nil, nil)
	return executionID, nil
}

// Resume reinstates a suspended execution with external input.
// The latest checkpoint must be suspended and younger than the TTL.
func (r *Runtime) Resume(ctx context.Context, executionID string, input map[string]interface{}) error {
	exec, err := r.store.GetExecution(ctx, executionID)
	if err != nil {
		return err
	}
	a, err := r.agent(exec.AgentName)
	if err != nil {
		return err
	}

	cp, err := r.store.LatestCheckpoint(ctx, executionID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return services.ErrNotSuspended
		}
		return err
	}
	if !cp.Suspended {
		return services.ErrNotSuspended
	}
	// An expired checkpoint is treated as absent.
	if time.Since(cp.CreatedAt) > r.cfg.CheckpointTTL {
		return services.ErrNotSuspended
	}

	r.launch(executionID, a, models.InvokeAgentRequest{
		AgentName: exec.AgentName,
		LeadID:    exec.LeadID,
	}, cp, input)
	return nil
}

// Cancel stops a running execution at its next safe point.
func (r *Runtime) Cancel(executionID string) bool {
	return r.fabric.Cancel(executionID)
}

// Shutdown waits for in-flight executions to finish or the context to end.
func (r *Runtime) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timed out with executions in flight: %w", ctx.Err())
	}
}

// launch starts the execution goroutine with its deadline and stream.
func (r *Runtime) launch(executionID string, a Agent, req models.InvokeAgentRequest, resume *models.CheckpointRecord, resumeInput map[string]interface{}) {
	deadline := r.cfg.DefaultDeadline
	if req.DeadlineSeconds > 0 {
		deadline = time.Duration(req.DeadlineSeconds) * time.Second
	}

	// Detached from the caller's request context: the run outlives the
	// HTTP request that dispatched it.
	runCtx, cancel := context.WithTimeout(context.Background(), deadline)
	pub := r.fabric.Open(executionID, cancel)

	route := llm.RouteOptions{
		ForcedProvider: req.ForcedProvider,
		MaxLatencyMS:   req.MaxLatencyMS,
		MaxCostUSD:     req.MaxCostUSD,
	}
	if req.RequiresVision {
		route.RequiredCapabilities = append(route.RequiredCapabilities, config.CapabilityVision)
	}

	rc := &RunContext{
		ExecutionID: executionID,
		AgentName:   a.Name(),
		StartedAt:   time.Now(),
		LeadID:      req.LeadID,
		UserID:      req.UserID,
		llmAPI:      r.llmAPI,
		store:       r.store,
		tools:       r.tools,
		pub:         pub,
		tracer:      r.tracer,
		cfg:         r.cfg,
		route:       route,
		streamMode:  req.StreamMode,
		resume:      resume,
		resumeInput: resumeInput,
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()
		r.run(runCtx, a, rc, req.Input)
	}()
}

// run drives one execution to a terminal state (or suspension) and closes
// the stream. Terminal writes use a fresh context so cancellation of the
// run itself cannot lose the terminal chunk.
func (r *Runtime) run(ctx context.Context, a Agent, rc *RunContext, input map[string]interface{}) {
	finishCtx, finishCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer finishCancel()

	if err := r.store.MarkRunning(ctx, rc.ExecutionID); err != nil {
		slog.Error("Failed to mark execution running", "execution_id", rc.ExecutionID, "error", err)
	}

	result, err := a.Execute(ctx, rc, input)
	switch {
	case err == nil:
		if cerr := r.store.Complete(finishCtx, rc.ExecutionID, rc.CostUSD(), ""); cerr != nil {
			slog.Error("Failed to complete execution", "execution_id", rc.ExecutionID, "error", cerr)
		}
		_ = rc.pub.Complete(finishCtx, result)

	case isSuspend(err):
		// The execution stays resumable; the stream closes with a
		// suspension notice rather than a failure.
		var sus *SuspendError
		errors.As(err, &sus)
		_ = rc.pub.Complete(finishCtx, map[string]interface{}{
			"suspended": true,
			"reason":    sus.Reason,
		})

	default:
		class := errorClass(ctx, err)
		if cerr := r.store.Complete(finishCtx, rc.ExecutionID, rc.CostUSD(), err.Error()); cerr != nil {
			slog.Error("Failed to complete execution", "execution_id", rc.ExecutionID, "error", cerr)
		}
		_ = rc.pub.Error(finishCtx, class, err.Error())
		slog.Warn("Execution failed", "execution_id", rc.ExecutionID, "agent", a.Name(), "class", class, "error", err)
	}
}

func isSuspend(err error) bool {
	var sus *SuspendError
	return errors.As(err, &sus)
}

// errorClass maps a terminal error to its stream error class.
func errorClass(ctx context.Context, err error) string {
	var rec *RecursionError
	switch {
	case errors.As(err, &rec):
		return "recursion_exhausted"
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return "cancelled"
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return "timeout"
	default:
		return string(llm.ClassOf(err))
	}
}
