package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
)

func newHubSpotServer(t *testing.T, handler http.HandlerFunc) *HubSpot {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHubSpot(&config.PlatformConfig{BaseURL: srv.URL, PageSize: 2})
}

func TestHubSpot_ListPaginates(t *testing.T) {
	h := newHubSpotServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/crm/v3/objects/contacts", r.URL.Path)
		w.Header().Set("X-HubSpot-RateLimit-Remaining", "87")

		if r.URL.Query().Get("after") == "" {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"results": []map[string]interface{}{
					{"id": "1", "properties": map[string]string{"email": "a@x.com", "firstname": "Ada"}, "updatedAt": "2026-08-20T10:00:00Z"},
					{"id": "2", "properties": map[string]string{"email": "b@x.com"}, "updatedAt": "2026-08-21T10:00:00Z"},
				},
				"paging": map[string]interface{}{"next": map[string]string{"after": "2"}},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{"id": "3", "properties": map[string]string{"email": "c@x.com"}, "updatedAt": "2026-08-22T10:00:00Z"},
			},
		})
	})

	page, err := h.List(context.Background(), nil, "")
	require.NoError(t, err)
	require.Len(t, page.Records, 2)
	assert.Equal(t, "a@x.com", page.Records[0].Email)
	assert.Equal(t, "Ada", page.Records[0].FirstName)
	assert.Equal(t, "2", page.NextCursor)
	assert.Equal(t, 87, page.RateRemaining)

	page, err = h.List(context.Background(), nil, page.NextCursor)
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Empty(t, page.NextCursor)
	assert.Equal(t,
		time.Date(2026, 8, 22, 10, 0, 0, 0, time.UTC),
		page.Records[0].UpdatedAt)
}

func TestHubSpot_UpsertCreatesAndPatches(t *testing.T) {
	var gotMethod, gotPath string
	h := newHubSpotServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":         "77",
			"properties": map[string]string{"email": "new@x.com"},
			"updatedAt":  "2026-08-22T10:00:00Z",
		})
	})

	rec, err := h.Upsert(context.Background(), &Record{Email: "new@x.com"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/crm/v3/objects/contacts", gotPath)
	assert.Equal(t, "77", rec.ExternalID)

	_, err = h.Upsert(context.Background(), &Record{ExternalID: "77", Email: "new@x.com"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/crm/v3/objects/contacts/77", gotPath)
}

func TestHubSpot_ErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   llm.ErrorClass
	}{
		{"unauthorized", 401, llm.ClassAuth},
		{"rate limited", 429, llm.ClassRateLimit},
		{"not found", 404, llm.ClassBadRequest},
		{"server error", 503, llm.ClassUpstreamUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHubSpotServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := h.Get(context.Background(), "1")
			require.Error(t, err)
			assert.Equal(t, tt.want, llm.ClassOf(err))
		})
	}
}

func TestHubSpot_ParseWebhookEvent(t *testing.T) {
	h := NewHubSpot(&config.PlatformConfig{})

	event, err := h.ParseWebhookEvent([]byte(`[
		{"subscriptionType": "contact.creation", "objectId": 4411, "occurredAt": 1755856800000}
	]`))
	require.NoError(t, err)
	assert.Equal(t, "contact.created", event.Type)
	assert.Equal(t, "4411", event.ExternalID)
	assert.False(t, event.OccurredAt.IsZero())

	_, err = h.ParseWebhookEvent([]byte(`{"not": "an array"}`))
	require.Error(t, err)
	assert.Equal(t, llm.ClassProtocol, llm.ClassOf(err))
}

func TestSalesloft_ReadOnly(t *testing.T) {
	s := NewSalesloft(&config.PlatformConfig{})
	_, err := s.Upsert(context.Background(), &Record{Email: "x@y.com"})
	require.ErrorIs(t, err, ErrReadOnly)

	a := NewApollo(&config.PlatformConfig{})
	_, err = a.Upsert(context.Background(), &Record{Email: "x@y.com"})
	require.ErrorIs(t, err, ErrReadOnly)
}
