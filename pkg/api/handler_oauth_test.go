package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuthConnectFlow(t *testing.T) {
	h := setupServer(t)

	w := h.request(t, http.MethodPost, "/api/v1/crm/oauth/apollo/connect", map[string]interface{}{
		"tenant_id": "tenant-1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	state, _ := decode(t, w)["state"].(string)
	require.NotEmpty(t, state)

	w = h.request(t, http.MethodPost, "/api/v1/crm/oauth/apollo/callback", map[string]interface{}{
		"state":        state,
		"access_token": "tok-abc",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tenant-1", decode(t, w)["tenant_id"])

	t.Run("state redeems only once", func(t *testing.T) {
		w := h.request(t, http.MethodPost, "/api/v1/crm/oauth/apollo/callback", map[string]interface{}{
			"state":        state,
			"access_token": "tok-again",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOAuthConnect_Validation(t *testing.T) {
	h := setupServer(t)

	t.Run("unknown platform", func(t *testing.T) {
		w := h.request(t, http.MethodPost, "/api/v1/crm/oauth/pipedrive/connect", map[string]interface{}{
			"tenant_id": "tenant-1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing tenant", func(t *testing.T) {
		w := h.request(t, http.MethodPost, "/api/v1/crm/oauth/apollo/connect", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("platform mismatch on callback", func(t *testing.T) {
		w := h.request(t, http.MethodPost, "/api/v1/crm/oauth/apollo/connect", map[string]interface{}{
			"tenant_id": "tenant-2",
		})
		require.Equal(t, http.StatusOK, w.Code)
		state := decode(t, w)["state"].(string)

		w = h.request(t, http.MethodPost, "/api/v1/crm/oauth/other/callback", map[string]interface{}{
			"state":        state,
			"access_token": "tok",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
