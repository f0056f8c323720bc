package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ScientiaCapital/sales-agent/ent"
	"github.com/ScientiaCapital/sales-agent/ent/agentexecution"
	"github.com/ScientiaCapital/sales-agent/ent/checkpoint"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
)

// ExecutionService manages agent execution lifecycle and checkpoints.
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// CreateExecution creates the persistence record for an agent run.
func (s *ExecutionService) CreateExecution(httpCtx context.Context, req models.CreateExecutionRequest) (*ent.AgentExecution, error) {
	if req.ExecutionID == "" {
		return nil, NewValidationError("execution_id", "required")
	}
	if req.AgentName == "" {
		return nil, NewValidationError("agent_name", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	builder := s.client.AgentExecution.Create().
		SetID(req.ExecutionID).
		SetAgentName(req.AgentName).
		SetStatus(agentexecution.StatusPending)
	if req.LeadID != "" {
		builder.SetLeadID(req.LeadID)
	}

	exec, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}
	return exec, nil
}

// MarkRunning transitions an execution to running and stamps started_at.
func (s *ExecutionService) MarkRunning(ctx context.Context, executionID string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.AgentExecution.UpdateOneID(executionID).
		SetStatus(agentexecution.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark execution running: %w", err)
	}
	return nil
}

// Complete finalizes an execution. errorMsg empty means success.
func (s *ExecutionService) Complete(ctx context.Context, executionID string, costUSD float64, errorMsg string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exec, err := s.client.AgentExecution.Get(writeCtx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get execution: %w", err)
	}

	now := time.Now()
	status := agentexecution.StatusSuccess
	if errorMsg != "" {
		status = agentexecution.StatusFailed
	}

	update := s.client.AgentExecution.UpdateOneID(executionID).
		SetStatus(status).
		SetCompletedAt(now).
		SetCostUsd(costUSD)
	if exec.StartedAt != nil {
		update = update.SetLatencyMs(int(now.Sub(*exec.StartedAt).Milliseconds()))
	}
	if errorMsg != "" {
		update = update.SetErrorMessage(errorMsg)
	}

	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to complete execution: %w", err)
	}
	return nil
}

// GetExecutionByID retrieves an execution by ID.
func (s *ExecutionService) GetExecutionByID(ctx context.Context, executionID string) (*ent.AgentExecution, error) {
	exec, err := s.client.AgentExecution.Get(ctx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	return exec, nil
}

// GetExecutionState assembles the externally visible run state, including
// the latest checkpoint position.
func (s *ExecutionService) GetExecutionState(ctx context.Context, executionID string) (*models.ExecutionState, error) {
	exec, err := s.GetExecutionByID(ctx, executionID)
	if err != nil {
		return nil, err
	}

	state := &models.ExecutionState{
		ExecutionID: exec.ID,
		AgentName:   exec.AgentName,
		Status:      string(exec.Status),
		CostUSD:     exec.CostUsd,
		LatencyMS:   exec.LatencyMs,
		StartedAt:   exec.StartedAt,
		CompletedAt: exec.CompletedAt,
		CreatedAt:   exec.CreatedAt,
	}
	if exec.LeadID != nil {
		state.LeadID = *exec.LeadID
	}
	if exec.ErrorMessage != nil {
		state.ErrorMessage = *exec.ErrorMessage
	}

	cp, err := s.LatestCheckpoint(ctx, executionID)
	if err != nil && err != ErrNotFound {
		return nil, err
	}
	if cp != nil {
		state.Step = cp.Step
		state.Node = cp.Node
		state.Suspended = cp.Suspended
		if cp.SuspendReason != nil {
			state.SuspendReason = *cp.SuspendReason
		}
	}
	return state, nil
}

// SaveCheckpoint persists graph state before a node runs. The
// (execution_id, step) pair is unique; replays overwrite nothing.
func (s *ExecutionService) SaveCheckpoint(ctx context.Context, req models.CreateCheckpointRequest) (*ent.Checkpoint, error) {
	if req.ExecutionID == "" {
		return nil, NewValidationError("execution_id", "required")
	}
	if req.Node == "" {
		return nil, NewValidationError("node", "required")
	}

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	builder := s.client.Checkpoint.Create().
		SetID(uuid.New().String()).
		SetExecutionID(req.ExecutionID).
		SetStep(req.Step).
		SetNode(req.Node).
		SetState(req.State).
		SetSuspended(req.Suspended)
	if req.SuspendReason != "" {
		builder.SetSuspendReason(req.SuspendReason)
	}

	cp, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to save checkpoint: %w", err)
	}
	return cp, nil
}

// LatestCheckpoint returns the highest-step checkpoint for an execution.
func (s *ExecutionService) LatestCheckpoint(ctx context.Context, executionID string) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Query().
		Where(checkpoint.ExecutionIDEQ(executionID)).
		Order(ent.Desc(checkpoint.FieldStep)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest checkpoint: %w", err)
	}
	return cp, nil
}

// PruneCheckpoints deletes checkpoints older than the TTL for executions
// that have already terminated. Returns the number deleted.
func (s *ExecutionService) PruneCheckpoints(ctx context.Context, ttl time.Duration) (int, error) {
	writeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := s.client.Checkpoint.Delete().
		Where(
			checkpoint.CreatedAtLT(time.Now().Add(-ttl)),
			checkpoint.HasExecutionWith(
				agentexecution.StatusIn(agentexecution.StatusSuccess, agentexecution.StatusFailed),
			),
		).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune checkpoints: %w", err)
	}
	return n, nil
}
