package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ScientiaCapital/sales-agent/pkg/crm"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
)

// triggerSyncRequest is the wire form of a sync dispatch.
type triggerSyncRequest struct {
	models.TriggerSyncRequest
	Filters map[string]string `json:"filters,omitempty"`
}

// triggerSyncHandler handles POST /api/v1/crm/sync. A dispatch that
// coalesces with a run already in flight returns that run's handle.
func (s *Server) triggerSyncHandler(c *gin.Context) {
	var req triggerSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	syncID, coalesced, err := s.deps.Engine.TriggerSync(c.Request.Context(), req.TriggerSyncRequest, crm.Filters(req.Filters))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	status := http.StatusAccepted
	if coalesced {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"sync_id": syncID, "coalesced": coalesced})
}

// syncStatusHandler handles GET /api/v1/crm/sync/:sync_id.
func (s *Server) syncStatusHandler(c *gin.Context) {
	status, err := s.deps.SyncLogs.GetSyncStatus(c.Request.Context(), c.Param("sync_id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// syncHistoryHandler handles GET /api/v1/crm/sync?platform=&limit=.
func (s *Server) syncHistoryHandler(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	history, err := s.deps.SyncLogs.History(c.Request.Context(), c.Query("platform"), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": history})
}

// crmHealthHandler handles GET /api/v1/crm/health: breaker states, dead
// letter depth per platform, and the scheduler pool snapshot.
func (s *Server) crmHealthHandler(c *gin.Context) {
	depths := make(map[string]int64)
	for _, tag := range s.deps.Platforms.Tags() {
		depth, err := s.deps.DeadLetters.Depth(c.Request.Context(), tag)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		depths[tag] = depth
	}

	c.JSON(http.StatusOK, gin.H{
		"breakers":  s.deps.Engine.BreakerStates(),
		"dlq_depth": depths,
		"pool":      s.deps.Scheduler.PoolHealth(),
	})
}

// webhookHandler handles POST /api/v1/crm/webhooks/:platform. The payload is
// normalized through the platform adapter; change events dispatch a
// coalesced import so the mirror converges promptly.
func (s *Server) webhookHandler(c *gin.Context) {
	platform := c.Param("platform")
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	event, err := s.deps.Engine.ParseWebhookEvent(platform, payload)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	resp := gin.H{"event": event}
	if event.Type == "contact.created" || event.Type == "contact.updated" {
		syncID, coalesced, err := s.deps.Engine.TriggerSync(c.Request.Context(), models.TriggerSyncRequest{
			Platform:  platform,
			Direction: "import",
		}, nil)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		resp["sync_id"] = syncID
		resp["coalesced"] = coalesced
	}
	c.JSON(http.StatusOK, resp)
}
