package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/models"
)

func TestLeadEndpoints(t *testing.T) {
	h := setupServer(t)

	w := h.request(t, http.MethodPost, "/api/v1/leads", models.CreateLeadRequest{
		CompanyName: "Acme",
		Industry:    "SaaS",
		CompanySize: "50-200",
		Email:       "pat@acme.test",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	leadID, _ := decode(t, w)["id"].(string)
	require.NotEmpty(t, leadID)

	w = h.request(t, http.MethodGet, "/api/v1/leads/"+leadID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Acme", decode(t, w)["company_name"])

	w = h.request(t, http.MethodGet, "/api/v1/leads?limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["count"])

	t.Run("missing company name", func(t *testing.T) {
		w := h.request(t, http.MethodPost, "/api/v1/leads", map[string]interface{}{
			"industry": "SaaS",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown lead", func(t *testing.T) {
		w := h.request(t, http.MethodGet, "/api/v1/leads/nonexistent", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
