package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ScientiaCapital/sales-agent/pkg/database"
	"github.com/ScientiaCapital/sales-agent/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthCheck is one named probe result.
type healthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// healthHandler handles GET /health. Only this service's own components are
// probed; external providers and CRM platforms are reported through
// /api/v1/crm/health instead, so an upstream outage cannot fail liveness.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]healthCheck)
	status := healthStatusHealthy

	if s.deps.DB != nil {
		if _, err := database.Health(ctx, s.deps.DB.DB()); err != nil {
			status = healthStatusUnhealthy
			checks["database"] = healthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks["database"] = healthCheck{Status: healthStatusHealthy}
		}
	}

	if s.deps.Bus != nil {
		if err := s.deps.Bus.Ping(ctx); err != nil {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["bus"] = healthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks["bus"] = healthCheck{Status: healthStatusHealthy}
		}
	}

	if s.deps.Scheduler != nil {
		pool := s.deps.Scheduler.PoolHealth()
		poolStatus := healthStatusHealthy
		if pool.QueueDepth > 0 && pool.QueueDepth >= pool.Workers*4 {
			poolStatus = healthStatusDegraded
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
		}
		checks["scheduler_pool"] = healthCheck{Status: poolStatus}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, gin.H{"status": status, "version": version.Full(), "checks": checks})
}
