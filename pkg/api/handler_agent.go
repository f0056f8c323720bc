package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ScientiaCapital/sales-agent/pkg/models"
)

// listAgentsHandler handles GET /api/v1/agents.
func (s *Server) listAgentsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agents": s.deps.Runtime.AgentNames()})
}

// invokeAgentHandler handles POST /api/v1/agents/invoke. The run is
// asynchronous; the returned execution ID doubles as the stream ID.
func (s *Server) invokeAgentHandler(c *gin.Context) {
	var req models.InvokeAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	executionID, err := s.deps.Runtime.Invoke(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"execution_id": executionID,
		"stream_url":   "/api/v1/executions/" + executionID + "/stream",
	})
}

// getExecutionHandler handles GET /api/v1/executions/:id.
func (s *Server) getExecutionHandler(c *gin.Context) {
	state, err := s.deps.Executions.GetExecutionState(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// streamExecutionHandler handles GET /api/v1/executions/:id/stream as SSE.
// A stream that terminated within the grace window replays its terminal
// chunk; an execution still running delivers chunks live.
func (s *Server) streamExecutionHandler(c *gin.Context) {
	chunks, err := s.deps.Fabric.Subscribe(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(io.Writer) bool {
		chunk, ok := <-chunks
		if !ok {
			return false
		}
		c.SSEvent(string(chunk.Type), chunk)
		return !chunk.Terminal()
	})
}

// resumeExecutionHandler handles POST /api/v1/executions/:id/resume.
func (s *Server) resumeExecutionHandler(c *gin.Context) {
	var req models.ResumeAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	executionID := c.Param("id")
	if err := s.deps.Runtime.Resume(c.Request.Context(), executionID, req.Input); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"execution_id": executionID,
		"stream_url":   "/api/v1/executions/" + executionID + "/stream",
	})
}

// cancelExecutionHandler handles POST /api/v1/executions/:id/cancel.
func (s *Server) cancelExecutionHandler(c *gin.Context) {
	executionID := c.Param("id")
	if !s.deps.Runtime.Cancel(executionID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no running execution with that id"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"execution_id": executionID, "cancelled": true})
}
