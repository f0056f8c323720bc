package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ScientiaCapital/sales-agent/pkg/usage"
)

// usageRealtimeHandler handles GET /api/v1/usage/realtime. The last-24h
// summary is served from the bus cache when fresh.
func (s *Server) usageRealtimeHandler(c *gin.Context) {
	summary, err := s.deps.Reports.Realtime(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// usageWindowHandler handles GET /api/v1/usage/window?hours=24.
func (s *Server) usageWindowHandler(c *gin.Context) {
	hours := 24
	if raw := c.Query("hours"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hours must be a positive integer"})
			return
		}
		hours = n
	}

	end := time.Now()
	summary, err := s.deps.Reports.Window(c.Request.Context(), end.Add(-time.Duration(hours)*time.Hour), end)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// usageAggregatesHandler handles
// GET /api/v1/usage/aggregates?start=...&end=...&interval=day&provider=openai.
// start and end are RFC 3339; the window defaults to the last 7 days.
func (s *Server) usageAggregatesHandler(c *gin.Context) {
	start, end, ok := parseWindow(c, 7*24*time.Hour)
	if !ok {
		return
	}
	interval := c.DefaultQuery("interval", usage.IntervalDay)

	buckets, err := s.deps.Reports.Aggregates(c.Request.Context(), start, end, interval, c.Query("provider"))
	if err != nil {
		if errors.Is(err, usage.ErrBadInterval) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"interval": interval,
		"buckets":  buckets,
	})
}

// usageLatencyHandler handles
// GET /api/v1/usage/latency?start=...&end=...&provider=openai.
func (s *Server) usageLatencyHandler(c *gin.Context) {
	start, end, ok := parseWindow(c, 24*time.Hour)
	if !ok {
		return
	}
	p, err := s.deps.Reports.LatencyPercentiles(c.Request.Context(), start, end, c.Query("provider"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// usageSuccessRateHandler handles
// GET /api/v1/usage/success_rate?start=...&end=...&provider=openai.
func (s *Server) usageSuccessRateHandler(c *gin.Context) {
	start, end, ok := parseWindow(c, 24*time.Hour)
	if !ok {
		return
	}
	rate, err := s.deps.Reports.SuccessRate(c.Request.Context(), start, end, c.Query("provider"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success_rate": rate})
}

// parseWindow reads optional RFC 3339 start/end query params, defaulting to
// the trailing span ending now. Responds 400 and returns ok=false on a
// malformed or inverted window.
func parseWindow(c *gin.Context, span time.Duration) (start, end time.Time, ok bool) {
	end = time.Now().UTC()
	start = end.Add(-span)

	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be RFC 3339"})
			return start, end, false
		}
		start = t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be RFC 3339"})
			return start, end, false
		}
		end = t
	}
	if !start.Before(end) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be before end"})
		return start, end, false
	}
	return start, end, true
}

// usageDailyHandler handles GET /api/v1/usage/daily?days=7.
func (s *Server) usageDailyHandler(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = n
	}

	costs, err := s.deps.Reports.DailyCost(c.Request.Context(), days)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily_cost_usd": costs})
}
