package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageEndpoints(t *testing.T) {
	h := setupServer(t)

	t.Run("realtime", func(t *testing.T) {
		w := h.request(t, http.MethodGet, "/api/v1/usage/realtime", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, float64(0), body["total_calls"])
	})

	t.Run("window", func(t *testing.T) {
		w := h.request(t, http.MethodGet, "/api/v1/usage/window?hours=48", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, decode(t, w), "by_provider")
	})

	t.Run("window rejects bad hours", func(t *testing.T) {
		w := h.request(t, http.MethodGet, "/api/v1/usage/window?hours=-1", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("daily", func(t *testing.T) {
		w := h.request(t, http.MethodGet, "/api/v1/usage/daily?days=3", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, decode(t, w), "daily_cost_usd")
	})
}
