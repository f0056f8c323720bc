package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerSync(t *testing.T) {
	h := setupServer(t)

	w := h.request(t, http.MethodPost, "/api/v1/crm/sync", map[string]interface{}{
		"platform": "apollo",
	})
	require.Equal(t, http.StatusAccepted, w.Code)
	body := decode(t, w)
	syncID, _ := body["sync_id"].(string)
	require.NotEmpty(t, syncID)
	assert.Equal(t, false, body["coalesced"])

	require.Eventually(t, func() bool {
		w := h.request(t, http.MethodGet, "/api/v1/crm/sync/"+syncID, nil)
		if w.Code != http.StatusOK {
			return false
		}
		return decode(t, w)["status"] != "running"
	}, 10*time.Second, 25*time.Millisecond)
}

func TestTriggerSync_Validation(t *testing.T) {
	h := setupServer(t)

	t.Run("unknown platform", func(t *testing.T) {
		w := h.request(t, http.MethodPost, "/api/v1/crm/sync", map[string]interface{}{
			"platform": "pipedrive",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("export on read-only platform", func(t *testing.T) {
		w := h.request(t, http.MethodPost, "/api/v1/crm/sync", map[string]interface{}{
			"platform": "apollo", "direction": "export",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing platform", func(t *testing.T) {
		w := h.request(t, http.MethodPost, "/api/v1/crm/sync", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSyncStatus_NotFound(t *testing.T) {
	h := setupServer(t)

	w := h.request(t, http.MethodGet, "/api/v1/crm/sync/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSyncHistory(t *testing.T) {
	h := setupServer(t)

	w := h.request(t, http.MethodPost, "/api/v1/crm/sync", map[string]interface{}{"platform": "apollo"})
	require.Equal(t, http.StatusAccepted, w.Code)

	require.Eventually(t, func() bool {
		w := h.request(t, http.MethodGet, "/api/v1/crm/sync?platform=apollo", nil)
		if w.Code != http.StatusOK {
			return false
		}
		runs, _ := decode(t, w)["runs"].([]interface{})
		return len(runs) == 1
	}, 10*time.Second, 25*time.Millisecond)

	t.Run("bad limit", func(t *testing.T) {
		w := h.request(t, http.MethodGet, "/api/v1/crm/sync?limit=zero", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCRMHealth(t *testing.T) {
	h := setupServer(t)

	w := h.request(t, http.MethodGet, "/api/v1/crm/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)

	breakers, ok := body["breakers"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "closed", breakers["apollo"])
	assert.Contains(t, body, "dlq_depth")
	assert.Contains(t, body, "pool")
}

func TestWebhook(t *testing.T) {
	h := setupServer(t)

	// memoryPlatform decodes the event verbatim; a change event also kicks
	// off a coalesced import.
	w := h.request(t, http.MethodPost, "/api/v1/crm/webhooks/apollo", map[string]interface{}{
		"type":        "contact.updated",
		"external_id": "a1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Contains(t, body, "event")
	assert.Contains(t, body, "sync_id")

	t.Run("unknown platform", func(t *testing.T) {
		w := h.request(t, http.MethodPost, "/api/v1/crm/webhooks/pipedrive", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
