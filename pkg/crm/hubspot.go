package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
)

const hubspotBaseURL = "https://api.hubapi.com"

var hubspotProperties = []string{"email", "firstname", "lastname", "company", "jobtitle", "phone"}

// HubSpot is the read-write adapter for the HubSpot contacts API (v3).
type HubSpot struct {
	rest     *restClient
	pageSize int
}

// NewHubSpot creates the adapter from its platform config. The bearer token
// comes from the configured environment variable.
func NewHubSpot(cfg *config.PlatformConfig) *HubSpot {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = hubspotBaseURL
	}
	token := os.Getenv(cfg.APIKeyEnv)
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	return &HubSpot{
		rest: newRESTClient("hubspot", baseURL, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		}),
		pageSize: pageSize,
	}
}

// Tag implements Platform.
func (h *HubSpot) Tag() string { return "hubspot" }

type hubspotContact struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

type hubspotListResponse struct {
	Results []hubspotContact `json:"results"`
	Paging  *struct {
		Next struct {
			After string `json:"after"`
		} `json:"next"`
	} `json:"paging"`
}

// List implements Platform using the contacts listing with `after` cursors.
func (h *HubSpot) List(ctx context.Context, filters Filters, cursor string) (*Page, error) {
	query := url.Values{
		"limit":      {strconv.Itoa(h.pageSize)},
		"properties": hubspotProperties,
	}
	if cursor != "" {
		query.Set("after", cursor)
	}
	for k, v := range filters {
		query.Set(k, v)
	}

	var resp hubspotListResponse
	remaining, err := h.rest.doJSON(ctx, http.MethodGet, "/crm/v3/objects/contacts", query, nil, &resp)
	if err != nil {
		return nil, err
	}

	page := &Page{RateRemaining: remaining}
	for _, c := range resp.Results {
		page.Records = append(page.Records, hubspotRecord(c))
	}
	if resp.Paging != nil {
		page.NextCursor = resp.Paging.Next.After
	}
	return page, nil
}

// Get implements Platform.
func (h *HubSpot) Get(ctx context.Context, externalID string) (*Record, error) {
	query := url.Values{"properties": hubspotProperties}
	var c hubspotContact
	if _, err := h.rest.doJSON(ctx, http.MethodGet, "/crm/v3/objects/contacts/"+externalID, query, nil, &c); err != nil {
		return nil, err
	}
	rec := hubspotRecord(c)
	return &rec, nil
}

// Upsert implements Platform. A record without an external ID is created;
// otherwise the existing contact is patched.
func (h *HubSpot) Upsert(ctx context.Context, rec *Record) (*Record, error) {
	body := map[string]interface{}{
		"properties": map[string]string{
			"email":     rec.Email,
			"firstname": rec.FirstName,
			"lastname":  rec.LastName,
			"company":   rec.Company,
			"jobtitle":  rec.Title,
			"phone":     rec.Phone,
		},
	}

	var c hubspotContact
	var err error
	if rec.ExternalID == "" {
		_, err = h.rest.doJSON(ctx, http.MethodPost, "/crm/v3/objects/contacts", nil, body, &c)
	} else {
		_, err = h.rest.doJSON(ctx, http.MethodPatch, "/crm/v3/objects/contacts/"+rec.ExternalID, nil, body, &c)
	}
	if err != nil {
		return nil, err
	}
	out := hubspotRecord(c)
	return &out, nil
}

type hubspotWebhookEvent struct {
	SubscriptionType string `json:"subscriptionType"`
	ObjectID         int64  `json:"objectId"`
	OccurredAt       int64  `json:"occurredAt"` // epoch millis
}

// ParseWebhookEvent implements Platform. HubSpot delivers an array of
// events; only the first is returned, callers re-parse for batches.
func (h *HubSpot) ParseWebhookEvent(payload []byte) (*WebhookEvent, error) {
	var events []hubspotWebhookEvent
	if err := json.Unmarshal(payload, &events); err != nil || len(events) == 0 {
		return nil, llm.NewError("hubspot", llm.ClassProtocol, fmt.Errorf("unparseable webhook payload"))
	}
	e := events[0]

	eventType := "contact.updated"
	switch e.SubscriptionType {
	case "contact.creation":
		eventType = "contact.created"
	case "contact.deletion":
		eventType = "contact.deleted"
	}
	return &WebhookEvent{
		Type:       eventType,
		ExternalID: strconv.FormatInt(e.ObjectID, 10),
		OccurredAt: time.UnixMilli(e.OccurredAt),
	}, nil
}

func hubspotRecord(c hubspotContact) Record {
	props := make(map[string]interface{}, len(c.Properties))
	for k, v := range c.Properties {
		props[k] = v
	}
	return Record{
		ExternalID: c.ID,
		Email:      c.Properties["email"],
		FirstName:  c.Properties["firstname"],
		LastName:   c.Properties["lastname"],
		Company:    c.Properties["company"],
		Title:      c.Properties["jobtitle"],
		Phone:      c.Properties["phone"],
		Properties: props,
		UpdatedAt:  c.UpdatedAt,
	}
}
