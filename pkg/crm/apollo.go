package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
)

const apolloBaseURL = "https://api.apollo.io"

// Apollo is the read-only adapter for the Apollo.io contacts API.
type Apollo struct {
	rest     *restClient
	pageSize int
}

// NewApollo creates the adapter from its platform config.
func NewApollo(cfg *config.PlatformConfig) *Apollo {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = apolloBaseURL
	}
	key := os.Getenv(cfg.APIKeyEnv)
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	return &Apollo{
		rest: newRESTClient("apollo", baseURL, func(req *http.Request) {
			req.Header.Set("X-Api-Key", key)
		}),
		pageSize: pageSize,
	}
}

// Tag implements Platform.
func (a *Apollo) Tag() string { return "apollo" }

type apolloContact struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Title        string    `json:"title"`
	Organization *struct {
		Name string `json:"name"`
	} `json:"organization"`
	PhoneNumbers []struct {
		RawNumber string `json:"raw_number"`
	} `json:"phone_numbers"`
	UpdatedAt time.Time `json:"updated_at"`
}

type apolloSearchResponse struct {
	Contacts   []apolloContact `json:"contacts"`
	Pagination struct {
		Page       int `json:"page"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
}

// List implements Platform. Apollo paginates by page number; the cursor is
// the decimal page to fetch.
func (a *Apollo) List(ctx context.Context, filters Filters, cursor string) (*Page, error) {
	page := 1
	if cursor != "" {
		n, err := strconv.Atoi(cursor)
		if err != nil {
			return nil, llm.NewError("apollo", llm.ClassBadRequest, fmt.Errorf("invalid page cursor %q", cursor))
		}
		page = n
	}

	body := map[string]interface{}{
		"page":     page,
		"per_page": a.pageSize,
	}
	for k, v := range filters {
		body[k] = v
	}

	var resp apolloSearchResponse
	remaining, err := a.rest.doJSON(ctx, http.MethodPost, "/v1/contacts/search", nil, body, &resp)
	if err != nil {
		return nil, err
	}

	out := &Page{RateRemaining: remaining}
	for _, c := range resp.Contacts {
		out.Records = append(out.Records, apolloRecord(c))
	}
	if resp.Pagination.Page < resp.Pagination.TotalPages {
		out.NextCursor = strconv.Itoa(resp.Pagination.Page + 1)
	}
	return out, nil
}

// Get implements Platform.
func (a *Apollo) Get(ctx context.Context, externalID string) (*Record, error) {
	var resp struct {
		Contact apolloContact `json:"contact"`
	}
	if _, err := a.rest.doJSON(ctx, http.MethodGet, "/v1/contacts/"+externalID, nil, nil, &resp); err != nil {
		return nil, err
	}
	rec := apolloRecord(resp.Contact)
	return &rec, nil
}

// Upsert implements Platform; apollo is import-only.
func (a *Apollo) Upsert(_ context.Context, _ *Record) (*Record, error) {
	return nil, ErrReadOnly
}

// ParseWebhookEvent implements Platform.
func (a *Apollo) ParseWebhookEvent(payload []byte) (*WebhookEvent, error) {
	var e struct {
		Event     string    `json:"event"`
		ContactID string    `json:"contact_id"`
		Timestamp time.Time `json:"timestamp"`
	}
	if err := json.Unmarshal(payload, &e); err != nil || e.ContactID == "" {
		return nil, llm.NewError("apollo", llm.ClassProtocol, fmt.Errorf("unparseable webhook payload"))
	}
	eventType := "contact.updated"
	if e.Event == "contact_created" {
		eventType = "contact.created"
	}
	return &WebhookEvent{Type: eventType, ExternalID: e.ContactID, OccurredAt: e.Timestamp}, nil
}

func apolloRecord(c apolloContact) Record {
	rec := Record{
		ExternalID: c.ID,
		Email:      c.Email,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Title:      c.Title,
		UpdatedAt:  c.UpdatedAt,
	}
	if c.Organization != nil {
		rec.Company = c.Organization.Name
	}
	if len(c.PhoneNumbers) > 0 {
		rec.Phone = c.PhoneNumbers[0].RawNumber
	}
	return rec
}
