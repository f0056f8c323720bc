package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/models"
)

func TestInvokeAgent(t *testing.T) {
	h := setupServer(t)

	w := h.request(t, http.MethodPost, "/api/v1/agents/invoke", models.InvokeAgentRequest{
		AgentName: "echo",
		Input:     map[string]interface{}{"greeting": "hello"},
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	body := decode(t, w)
	executionID, _ := body["execution_id"].(string)
	require.NotEmpty(t, executionID)
	assert.Equal(t, "/api/v1/executions/"+executionID+"/stream", body["stream_url"])

	state := h.waitForStatus(t, executionID, "success")
	assert.Equal(t, "echo", state.AgentName)
}

func TestInvokeAgent_Validation(t *testing.T) {
	h := setupServer(t)

	t.Run("missing agent name", func(t *testing.T) {
		w := h.request(t, http.MethodPost, "/api/v1/agents/invoke", map[string]interface{}{
			"input": map[string]interface{}{},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown agent", func(t *testing.T) {
		w := h.request(t, http.MethodPost, "/api/v1/agents/invoke", models.InvokeAgentRequest{
			AgentName: "nonexistent",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListAgents(t *testing.T) {
	h := setupServer(t)

	w := h.request(t, http.MethodGet, "/api/v1/agents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"echo"`)
}

func TestGetExecutionState(t *testing.T) {
	h := setupServer(t)

	w := h.request(t, http.MethodPost, "/api/v1/agents/invoke", models.InvokeAgentRequest{AgentName: "echo"})
	require.Equal(t, http.StatusAccepted, w.Code)
	executionID := decode(t, w)["execution_id"].(string)
	h.waitForStatus(t, executionID, "success")

	w = h.request(t, http.MethodGet, "/api/v1/executions/"+executionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "success", body["status"])

	t.Run("unknown execution", func(t *testing.T) {
		w := h.request(t, http.MethodGet, "/api/v1/executions/nonexistent", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestResumeExecution_NotSuspended(t *testing.T) {
	h := setupServer(t)

	w := h.request(t, http.MethodPost, "/api/v1/agents/invoke", models.InvokeAgentRequest{AgentName: "echo"})
	executionID := decode(t, w)["execution_id"].(string)
	h.waitForStatus(t, executionID, "success")

	w = h.request(t, http.MethodPost, "/api/v1/executions/"+executionID+"/resume",
		models.ResumeAgentRequest{Input: map[string]interface{}{"approved": true}})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelExecution_NotRunning(t *testing.T) {
	h := setupServer(t)

	w := h.request(t, http.MethodPost, "/api/v1/executions/nonexistent/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStreamExecution_ReplaysTerminalChunk(t *testing.T) {
	h := setupServer(t)

	// A stream that completed inside the grace window serves its terminal
	// chunk to late subscribers.
	pub := h.fabric.Open("finished-run", func() {})
	require.NoError(t, pub.Complete(context.Background(), map[string]interface{}{"answer": 42}))

	w := h.request(t, http.MethodGet, "/api/v1/executions/finished-run/stream", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	assert.True(t, strings.Contains(w.Body.String(), "complete"), "terminal chunk missing: %s", w.Body.String())
}
