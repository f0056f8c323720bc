// Package agent is the execution runtime for catalog agents. Two shapes are
// supported: linear pipelines (one structured LLM call) and graphs (nodes
// with conditional edges, cycles, parallel fan-out, and checkpoints).
// All provider and tool I/O flows through the RunContext so that every call
// traverses the router's resilience stack and is logged for usage.
package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
	"github.com/ScientiaCapital/sales-agent/pkg/stream"
)

// Agent is one executable catalog entry.
type Agent interface {
	Name() string
	TaskClass() string
	Execute(ctx context.Context, rc *RunContext, input map[string]interface{}) (map[string]interface{}, error)
}

// LLM is the routed provider surface the runtime calls.
// *llm.Router implements it.
type LLM interface {
	Generate(ctx context.Context, task string, input *llm.GenerateInput) (*llm.Response, error)
	GenerateStream(ctx context.Context, task string, input *llm.GenerateInput) (<-chan llm.Chunk, error)
}

// Store persists execution lifecycle and checkpoints. SaveCheckpoint must
// be idempotent per (execution, step): replaying an already-persisted pair
// is a no-op, not an error.
type Store interface {
	CreateExecution(ctx context.Context, req models.CreateExecutionRequest) error
	MarkRunning(ctx context.Context, executionID string) error
	Complete(ctx context.Context, executionID string, costUSD float64, errorMsg string) error
	GetExecution(ctx context.Context, executionID string) (*models.ExecutionState, error)
	SaveCheckpoint(ctx context.Context, req models.CreateCheckpointRequest) error
	LatestCheckpoint(ctx context.Context, executionID string) (*models.CheckpointRecord, error)
}

// SuspendError is returned by a graph node to pause the execution for
// external input. The runtime writes a suspended checkpoint and exits
// without terminating the execution.
type SuspendError struct {
	Reason  string
	Payload map[string]interface{}
}

func (e *SuspendError) Error() string {
	return fmt.Sprintf("execution suspended: %s", e.Reason)
}

// Suspend builds the error a node returns to pause at a checkpoint.
func Suspend(reason string, payload map[string]interface{}) error {
	return &SuspendError{Reason: reason, Payload: payload}
}

// RunContext carries per-execution dependencies and accounting. One
// RunContext exists per invocation; it is safe for the concurrent node
// goroutines of a fan-out.
type RunContext struct {
	ExecutionID string
	AgentName   string
	LeadID      string
	UserID      string
	StartedAt   time.Time

	llmAPI LLM
	store  Store
	tools  *ToolRegistry
	pub    *stream.Publisher
	tracer Tracer
	cfg    *config.RuntimeConfig

	// route carries the invocation's provider-selection constraints into
	// every LLM call of the run. streamMode selects what the publisher
	// forwards: token deltas, whole messages, or runtime events only.
	route      llm.RouteOptions
	streamMode string

	mu      sync.Mutex
	costUSD float64

	// Resume support, set by Runtime.Resume before Execute.
	resume      *models.CheckpointRecord
	resumeInput map[string]interface{}
}

// CostUSD returns the cost accrued by this execution so far.
func (rc *RunContext) CostUSD() float64 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.costUSD
}

func (rc *RunContext) addCost(cost float64) {
	rc.mu.Lock()
	rc.costUSD += cost
	rc.mu.Unlock()
}

// Generate performs a routed non-streaming provider call.
func (rc *RunContext) Generate(ctx context.Context, task string, messages []llm.Message) (*llm.Response, error) {
	resp, err := rc.llmAPI.Generate(ctx, task, &llm.GenerateInput{
		ExecutionID: rc.ExecutionID,
		Messages:    messages,
		Operation:   task,
		UserID:      rc.UserID,
		Route:       rc.route,
	})
	rc.tracer.ProviderCall(rc.ExecutionID, task, err)
	if err != nil {
		return nil, err
	}
	rc.addCost(resp.CostUSD)
	return resp, nil
}

// GenerateStream performs a routed streaming call, forwarding each token
// to the execution's stream, and returns the collected response.
func (rc *RunContext) GenerateStream(ctx context.Context, task string, messages []llm.Message) (*llm.Response, error) {
	chunks, err := rc.llmAPI.GenerateStream(ctx, task, &llm.GenerateInput{
		ExecutionID: rc.ExecutionID,
		Messages:    messages,
		Operation:   task,
		UserID:      rc.UserID,
		Route:       rc.route,
	})
	if err != nil {
		rc.tracer.ProviderCall(rc.ExecutionID, task, err)
		return nil, err
	}

	resp, err := llm.CollectStreamWithCallback(chunks, func(delta string) {
		rc.PublishToken(ctx, delta)
	})
	rc.tracer.ProviderCall(rc.ExecutionID, task, err)
	if err != nil {
		return nil, err
	}
	if rc.streamMode == models.StreamModeMessages {
		rc.PublishEvent(ctx, "message", map[string]interface{}{
			"role":    llm.RoleAssistant,
			"content": resp.Text,
		})
	}
	rc.addCost(resp.CostUSD)
	return resp, nil
}

// CallTool resolves and runs a tool, validating its input first. The
// result is published as a stream event so subscribers can follow tool use.
func (rc *RunContext) CallTool(ctx context.Context, name string, input map[string]interface{}) ToolResult {
	tool, err := rc.tools.Get(name)
	if err != nil {
		rc.tracer.ToolCall(rc.ExecutionID, name, false)
		return ToolError(err.Error())
	}

	if len(tool.InputSchema) > 0 {
		if err := validateSchema(tool.InputSchema, input); err != nil {
			rc.tracer.ToolCall(rc.ExecutionID, name, false)
			return ToolError(fmt.Sprintf("invalid tool input: %v", err))
		}
	}

	result := tool.Run(ctx, rc, input)
	rc.tracer.ToolCall(rc.ExecutionID, name, result.Success)
	rc.PublishEvent(ctx, "tool_result", map[string]interface{}{
		"tool":    name,
		"success": result.Success,
	})
	return result
}

// ResumeInput returns the input supplied to Resume, or nil for a fresh run.
func (rc *RunContext) ResumeInput() map[string]interface{} {
	return rc.resumeInput
}

// PublishToken forwards one output token to subscribers. Suppressed when
// the invocation asked for whole messages or events only.
func (rc *RunContext) PublishToken(ctx context.Context, text string) {
	if rc.pub == nil {
		return
	}
	if rc.streamMode != "" && rc.streamMode != models.StreamModeTokens {
		return
	}
	_ = rc.pub.Token(ctx, text)
}

// PublishEvent forwards a named runtime event to subscribers, if streaming.
func (rc *RunContext) PublishEvent(ctx context.Context, name string, fields map[string]interface{}) {
	if rc.pub != nil {
		_ = rc.pub.Event(ctx, name, fields)
	}
}
