// Package api is the HTTP surface of the orchestration core. Handlers map
// 1:1 onto core operations; anything interesting happens in the packages
// behind them.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ScientiaCapital/sales-agent/pkg/agent"
	"github.com/ScientiaCapital/sales-agent/pkg/bus"
	"github.com/ScientiaCapital/sales-agent/pkg/config"
	"github.com/ScientiaCapital/sales-agent/pkg/crm"
	"github.com/ScientiaCapital/sales-agent/pkg/database"
	"github.com/ScientiaCapital/sales-agent/pkg/scheduler"
	"github.com/ScientiaCapital/sales-agent/pkg/services"
	"github.com/ScientiaCapital/sales-agent/pkg/stream"
	"github.com/ScientiaCapital/sales-agent/pkg/usage"
)

// Deps are the core components the API fronts. Fields a given deployment
// does not use may be nil; the wiring in cmd supplies all of them.
type Deps struct {
	DB          *database.Client
	Bus         *bus.Bus
	Runtime     *agent.Runtime
	Fabric      *stream.Fabric
	Engine      *crm.Engine
	Executions  *services.ExecutionService
	Leads       *services.LeadService
	SyncLogs    *services.SyncLogService
	DeadLetters *crm.DeadLetters
	OAuth       *crm.OAuthStates
	Credentials *services.CredentialService
	Reports     *usage.Reporter
	Scheduler   *scheduler.Scheduler
	Platforms   *config.PlatformRegistry
}

// Server is the gin HTTP server.
type Server struct {
	deps Deps
	http *http.Server
}

// NewServer builds the server and its routes.
func NewServer(deps Deps) *Server {
	s := &Server{deps: deps}
	return s
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/agents", s.listAgentsHandler)
		v1.POST("/agents/invoke", s.invokeAgentHandler)

		v1.GET("/executions/:id", s.getExecutionHandler)
		v1.GET("/executions/:id/stream", s.streamExecutionHandler)
		v1.POST("/executions/:id/resume", s.resumeExecutionHandler)
		v1.POST("/executions/:id/cancel", s.cancelExecutionHandler)

		v1.POST("/leads", s.createLeadHandler)
		v1.GET("/leads", s.listLeadsHandler)
		v1.GET("/leads/:id", s.getLeadHandler)

		v1.POST("/crm/sync", s.triggerSyncHandler)
		v1.GET("/crm/sync", s.syncHistoryHandler)
		v1.GET("/crm/sync/:sync_id", s.syncStatusHandler)
		v1.GET("/crm/health", s.crmHealthHandler)
		v1.POST("/crm/webhooks/:platform", s.webhookHandler)
		v1.POST("/crm/oauth/:platform/connect", s.oauthConnectHandler)
		v1.POST("/crm/oauth/:platform/callback", s.oauthCallbackHandler)

		v1.GET("/usage/realtime", s.usageRealtimeHandler)
		v1.GET("/usage/window", s.usageWindowHandler)
		v1.GET("/usage/daily", s.usageDailyHandler)
		v1.GET("/usage/aggregates", s.usageAggregatesHandler)
		v1.GET("/usage/latency", s.usageLatencyHandler)
		v1.GET("/usage/success_rate", s.usageSuccessRateHandler)
	}
	return r
}

// Run starts serving on addr and blocks until the listener fails.
func (s *Server) Run(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// requestLogger is a minimal structured access log.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logRequest(c, time.Since(start))
	}
}
