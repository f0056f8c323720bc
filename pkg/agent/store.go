package agent

import (
	"context"
	"errors"

	"github.com/ScientiaCapital/sales-agent/pkg/models"
	"github.com/ScientiaCapital/sales-agent/pkg/services"
)

// ExecutionStore adapts the execution service to the runtime's Store
// surface, making checkpoint writes idempotent per (execution, step).
type ExecutionStore struct {
	svc *services.ExecutionService
}

// NewExecutionStore wraps an ExecutionService for use by the runtime.
func NewExecutionStore(svc *services.ExecutionService) *ExecutionStore {
	return &ExecutionStore{svc: svc}
}

func (s *ExecutionStore) CreateExecution(ctx context.Context, req models.CreateExecutionRequest) error {
	_, err := s.svc.CreateExecution(ctx, req)
	return err
}

func (s *ExecutionStore) MarkRunning(ctx context.Context, executionID string) error {
	return s.svc.MarkRunning(ctx, executionID)
}

func (s *ExecutionStore) Complete(ctx context.Context, executionID string, costUSD float64, errorMsg string) error {
	return s.svc.Complete(ctx, executionID, costUSD, errorMsg)
}

func (s *ExecutionStore) GetExecution(ctx context.Context, executionID string) (*models.ExecutionState, error) {
	return s.svc.GetExecutionState(ctx, executionID)
}

func (s *ExecutionStore) SaveCheckpoint(ctx context.Context, req models.CreateCheckpointRequest) error {
	_, err := s.svc.SaveCheckpoint(ctx, req)
	if errors.Is(err, services.ErrAlreadyExists) {
		// Resume replays the checkpointed step; the existing row stands.
		return nil
	}
	return err
}

func (s *ExecutionStore) LatestCheckpoint(ctx context.Context, executionID string) (*models.CheckpointRecord, error) {
	cp, err := s.svc.LatestCheckpoint(ctx, executionID)
	if err != nil {
		return nil, err
	}
	rec := &models.CheckpointRecord{
		ExecutionID: cp.ExecutionID,
		Step:        cp.Step,
		Node:        cp.Node,
		State:       cp.State,
		Suspended:   cp.Suspended,
		CreatedAt:   cp.CreatedAt,
	}
	if cp.SuspendReason != nil {
		rec.SuspendReason = *cp.SuspendReason
	}
	return rec, nil
}
