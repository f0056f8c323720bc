package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/models"
	testdb "github.com/ScientiaCapital/sales-agent/test/database"
)

func TestExecutionService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	execID := uuid.New().String()
	exec, err := service.CreateExecution(ctx, models.CreateExecutionRequest{
		ExecutionID: execID,
		AgentName:   "qualification",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", string(exec.Status))

	err = service.MarkRunning(ctx, execID)
	require.NoError(t, err)

	err = service.Complete(ctx, execID, 0.0042, "")
	require.NoError(t, err)

	state, err := service.GetExecutionState(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, "success", state.Status)
	assert.InDelta(t, 0.0042, state.CostUSD, 1e-9)
	require.NotNil(t, state.LatencyMS)
	assert.GreaterOrEqual(t, *state.LatencyMS, 0)
	require.NotNil(t, state.CompletedAt)
}

func TestExecutionService_CompleteWithError(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	execID := uuid.New().String()
	_, err := service.CreateExecution(ctx, models.CreateExecutionRequest{
		ExecutionID: execID,
		AgentName:   "enrichment",
	})
	require.NoError(t, err)
	require.NoError(t, service.MarkRunning(ctx, execID))

	err = service.Complete(ctx, execID, 0.001, "step cap exceeded")
	require.NoError(t, err)

	state, err := service.GetExecutionState(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, "failed", state.Status)
	assert.Equal(t, "step cap exceeded", state.ErrorMessage)
}

func TestExecutionService_DuplicateID(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	execID := uuid.New().String()
	_, err := service.CreateExecution(ctx, models.CreateExecutionRequest{
		ExecutionID: execID,
		AgentName:   "qualification",
	})
	require.NoError(t, err)

	_, err = service.CreateExecution(ctx, models.CreateExecutionRequest{
		ExecutionID: execID,
		AgentName:   "qualification",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestExecutionService_Checkpoints(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	execID := uuid.New().String()
	_, err := service.CreateExecution(ctx, models.CreateExecutionRequest{
		ExecutionID: execID,
		AgentName:   "growth",
	})
	require.NoError(t, err)

	for step, node := range []string{"analyze", "experiment", "evaluate"} {
		_, err := service.SaveCheckpoint(ctx, models.CreateCheckpointRequest{
			ExecutionID: execID,
			Step:        step,
			Node:        node,
			State:       []byte(`{"iteration":` + string(rune('0'+step)) + `}`),
		})
		require.NoError(t, err)
	}

	latest, err := service.LatestCheckpoint(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Step)
	assert.Equal(t, "evaluate", latest.Node)

	t.Run("duplicate step rejected", func(t *testing.T) {
		_, err := service.SaveCheckpoint(ctx, models.CreateCheckpointRequest{
			ExecutionID: execID,
			Step:        2,
			Node:        "evaluate",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("state surfaces latest position", func(t *testing.T) {
		state, err := service.GetExecutionState(ctx, execID)
		require.NoError(t, err)
		assert.Equal(t, 2, state.Step)
		assert.Equal(t, "evaluate", state.Node)
	})
}

func TestExecutionService_SuspendedCheckpoint(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	execID := uuid.New().String()
	_, err := service.CreateExecution(ctx, models.CreateExecutionRequest{
		ExecutionID: execID,
		AgentName:   "bdr",
	})
	require.NoError(t, err)

	_, err = service.SaveCheckpoint(ctx, models.CreateCheckpointRequest{
		ExecutionID:   execID,
		Step:          0,
		Node:          "await_approval",
		State:         []byte(`{}`),
		Suspended:     true,
		SuspendReason: "human approval required before send",
	})
	require.NoError(t, err)

	state, err := service.GetExecutionState(ctx, execID)
	require.NoError(t, err)
	assert.True(t, state.Suspended)
	assert.Equal(t, "human approval required before send", state.SuspendReason)
}

func TestExecutionService_PruneCheckpoints(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	// Terminated execution with an old checkpoint: prunable.
	doneID := uuid.New().String()
	_, err := service.CreateExecution(ctx, models.CreateExecutionRequest{
		ExecutionID: doneID,
		AgentName:   "qualification",
	})
	require.NoError(t, err)
	require.NoError(t, service.MarkRunning(ctx, doneID))
	require.NoError(t, service.Complete(ctx, doneID, 0, ""))

	// created_at is immutable, so backdate at creation time.
	_, err = client.Client.Checkpoint.Create().
		SetID(uuid.New().String()).
		SetExecutionID(doneID).
		SetStep(0).
		SetNode("score").
		SetState([]byte(`{}`)).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// Running execution with an equally old checkpoint: kept.
	runningID := uuid.New().String()
	_, err = service.CreateExecution(ctx, models.CreateExecutionRequest{
		ExecutionID: runningID,
		AgentName:   "growth",
	})
	require.NoError(t, err)
	require.NoError(t, service.MarkRunning(ctx, runningID))

	_, err = client.Client.Checkpoint.Create().
		SetID(uuid.New().String()).
		SetExecutionID(runningID).
		SetStep(0).
		SetNode("analyze").
		SetState([]byte(`{}`)).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	n, err := service.PruneCheckpoints(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// The running execution's checkpoint survives.
	_, err = service.LatestCheckpoint(ctx, runningID)
	require.NoError(t, err)
	_, err = service.LatestCheckpoint(ctx, doneID)
	assert.ErrorIs(t, err, ErrNotFound)
}
