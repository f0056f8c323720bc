package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ScientiaCapital/sales-agent/pkg/crm"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
)

type oauthConnectRequest struct {
	TenantID string `json:"tenant_id" binding:"required"`
}

type oauthCallbackRequest struct {
	State        string     `json:"state" binding:"required"`
	AccessToken  string     `json:"access_token" binding:"required"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

// oauthConnectHandler issues a single-use state nonce for a tenant's
// connect flow. The caller embeds it in the platform authorize URL.
func (s *Server) oauthConnectHandler(c *gin.Context) {
	platform := c.Param("platform")
	if _, err := s.deps.Platforms.Get(platform); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown platform: " + platform})
		return
	}

	var req oauthConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := s.deps.OAuth.Issue(c.Request.Context(), platform, req.TenantID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// oauthCallbackHandler redeems the state nonce and stores the exchanged
// tokens encrypted. The nonce binds the callback to the platform and
// tenant it was issued for, so a forged callback cannot attach tokens to
// another tenant.
func (s *Server) oauthCallbackHandler(c *gin.Context) {
	platform := c.Param("platform")

	var req oauthCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issuedPlatform, tenantID, err := s.deps.OAuth.Redeem(c.Request.Context(), req.State)
	if err != nil {
		if errors.Is(err, crm.ErrStateInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		mapServiceError(c, err)
		return
	}
	if issuedPlatform != platform {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state was issued for a different platform"})
		return
	}

	if err := s.deps.Credentials.SaveCredential(c.Request.Context(), models.SaveCredentialRequest{
		TenantID:     tenantID,
		Platform:     platform,
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		ExpiresAt:    req.ExpiresAt,
	}); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tenant_id": tenantID, "platform": platform})
}
