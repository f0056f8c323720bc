package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ScientiaCapital/sales-agent/pkg/models"
)

// createLeadHandler handles POST /api/v1/leads.
func (s *Server) createLeadHandler(c *gin.Context) {
	var req models.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := s.deps.Leads.CreateLead(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// getLeadHandler handles GET /api/v1/leads/:id.
func (s *Server) getLeadHandler(c *gin.Context) {
	lead, err := s.deps.Leads.GetLeadByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// listLeadsHandler handles GET /api/v1/leads?tier=&limit=&offset=.
func (s *Server) listLeadsHandler(c *gin.Context) {
	var filter models.LeadFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leads, err := s.deps.Leads.ListLeads(c.Request.Context(), filter)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads, "count": len(leads)})
}
