package agent

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
	"github.com/ScientiaCapital/sales-agent/pkg/services"
)

// fakeLLM scripts provider responses per call index.
type fakeLLM struct {
	calls      atomic.Int64
	generateFn func(call int64, task string, input *llm.GenerateInput) (*llm.Response, error)
}

func (f *fakeLLM) Generate(_ context.Context, task string, input *llm.GenerateInput) (*llm.Response, error) {
	return f.generateFn(f.calls.Add(1), task, input)
}

func (f *fakeLLM) GenerateStream(_ context.Context, task string, input *llm.GenerateInput) (<-chan llm.Chunk, error) {
	resp, err := f.generateFn(f.calls.Add(1), task, input)
	if err != nil {
		return nil, err
	}
	ch := make(chan llm.Chunk, 2)
	ch <- &llm.TextChunk{Content: resp.Text}
	ch <- &llm.UsageChunk{TotalTokens: resp.Usage.TotalTokens, CostUSD: resp.CostUSD}
	close(ch)
	return ch, nil
}

func textResponse(text string) (*llm.Response, error) {
	return &llm.Response{
		Text:    text,
		Model:   "fake-model",
		Usage:   llm.TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		CostUSD: 0.0001,
	}, nil
}

// memStore is an in-memory Store for runtime tests.
type memStore struct {
	mu          sync.Mutex
	executions  map[string]*models.ExecutionState
	checkpoints map[string][]models.CheckpointRecord
}

func newMemStore() *memStore {
	return &memStore{
		executions:  make(map[string]*models.ExecutionState),
		checkpoints: make(map[string][]models.CheckpointRecord),
	}
}

func (m *memStore) CreateExecution(_ context.Context, req models.CreateExecutionRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.executions[req.ExecutionID]; exists {
		return services.ErrAlreadyExists
	}
	m.executions[req.ExecutionID] = &models.ExecutionState{
		ExecutionID: req.ExecutionID,
		AgentName:   req.AgentName,
		LeadID:      req.LeadID,
		Status:      "pending",
		CreatedAt:   time.Now(),
	}
	return nil
}

func (m *memStore) MarkRunning(_ context.Context, executionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	exec, ok := m.executions[executionID]
	if !ok {
		return services.ErrNotFound
	}
	now := time.Now()
	exec.Status = "running"
	exec.StartedAt = &now
	return nil
}

func (m *memStore) Complete(_ context.Context, executionID string, costUSD float64, errorMsg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	exec, ok := m.executions[executionID]
	if !ok {
		return services.ErrNotFound
	}
	now := time.Now()
	exec.CompletedAt = &now
	exec.CostUSD = costUSD
	if errorMsg != "" {
		exec.Status = "failed"
		exec.ErrorMessage = errorMsg
	} else {
		exec.Status = "success"
	}
	return nil
}

func (m *memStore) GetExecution(_ context.Context, executionID string) (*models.ExecutionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exec, ok := m.executions[executionID]
	if !ok {
		return nil, services.ErrNotFound
	}
	copied := *exec
	return &copied, nil
}

func (m *memStore) SaveCheckpoint(_ context.Context, req models.CreateCheckpointRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cp := range m.checkpoints[req.ExecutionID] {
		if cp.Step == req.Step {
			return nil
		}
	}
	m.checkpoints[req.ExecutionID] = append(m.checkpoints[req.ExecutionID], models.CheckpointRecord{
		ExecutionID:   req.ExecutionID,
		Step:          req.Step,
		Node:          req.Node,
		State:         req.State,
		Suspended:     req.Suspended,
		SuspendReason: req.SuspendReason,
		CreatedAt:     time.Now(),
	})
	return nil
}

func (m *memStore) LatestCheckpoint(_ context.Context, executionID string) (*models.CheckpointRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cps := m.checkpoints[executionID]
	if len(cps) == 0 {
		return nil, services.ErrNotFound
	}
	sorted := make([]models.CheckpointRecord, len(cps))
	copy(sorted, cps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Step > sorted[j].Step })
	cp := sorted[0]
	return &cp, nil
}

func (m *memStore) status(executionID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if exec, ok := m.executions[executionID]; ok {
		return exec.Status
	}
	return ""
}

// backdateCheckpoints shifts all checkpoint timestamps for TTL tests.
func (m *memStore) backdateCheckpoints(executionID string, by time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cps := m.checkpoints[executionID]
	for i := range cps {
		cps[i].CreatedAt = cps[i].CreatedAt.Add(-by)
	}
}

// newTestRunContext builds a RunContext wired to fakes, without a stream.
func newTestRunContext(llmAPI LLM, store Store, tools *ToolRegistry) *RunContext {
	if store == nil {
		store = newMemStore()
	}
	if tools == nil {
		tools = NewToolRegistry()
	}
	return &RunContext{
		ExecutionID: "exec-test",
		AgentName:   "test",
		StartedAt:   time.Now(),
		llmAPI:      llmAPI,
		store:       store,
		tools:       tools,
		tracer:      NopTracer{},
		cfg:         config.DefaultRuntimeConfig(),
	}
}
