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

const salesloftBaseURL = "https://api.salesloft.com"

// Salesloft is the read-only adapter for the Salesloft people API (v2).
type Salesloft struct {
	rest     *restClient
	pageSize int
}

// NewSalesloft creates the adapter from its platform config.
func NewSalesloft(cfg *config.PlatformConfig) *Salesloft {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = salesloftBaseURL
	}
	token := os.Getenv(cfg.APIKeyEnv)
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	return &Salesloft{
		rest: newRESTClient("salesloft", baseURL, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		}),
		pageSize: pageSize,
	}
}

// Tag implements Platform.
func (s *Salesloft) Tag() string { return "salesloft" }

type salesloftPerson struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email_address"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	CompanyName string    `json:"company_name"`
	Title       string    `json:"title"`
	Phone       string    `json:"phone"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type salesloftListResponse struct {
	Data     []salesloftPerson `json:"data"`
	Metadata struct {
		Paging struct {
			NextPage *int `json:"next_page"`
		} `json:"paging"`
	} `json:"metadata"`
}

// List implements Platform. Salesloft paginates by page number.
func (s *Salesloft) List(ctx context.Context, filters Filters, cursor string) (*Page, error) {
	query := url.Values{"per_page": {strconv.Itoa(s.pageSize)}}
	if cursor != "" {
		if _, err := strconv.Atoi(cursor); err != nil {
			return nil, llm.NewError("salesloft", llm.ClassBadRequest, fmt.Errorf("invalid page cursor %q", cursor))
		}
		query.Set("page", cursor)
	}
	for k, v := range filters {
		query.Set(k, v)
	}

	var resp salesloftListResponse
	remaining, err := s.rest.doJSON(ctx, http.MethodGet, "/v2/people.json", query, nil, &resp)
	if err != nil {
		return nil, err
	}

	page := &Page{RateRemaining: remaining}
	for _, p := range resp.Data {
		page.Records = append(page.Records, salesloftRecord(p))
	}
	if next := resp.Metadata.Paging.NextPage; next != nil {
		page.NextCursor = strconv.Itoa(*next)
	}
	return page, nil
}

// Get implements Platform.
func (s *Salesloft) Get(ctx context.Context, externalID string) (*Record, error) {
	var resp struct {
		Data salesloftPerson `json:"data"`
	}
	if _, err := s.rest.doJSON(ctx, http.MethodGet, "/v2/people/"+externalID+".json", nil, nil, &resp); err != nil {
		return nil, err
	}
	rec := salesloftRecord(resp.Data)
	return &rec, nil
}

// Upsert implements Platform; salesloft is import-only.
func (s *Salesloft) Upsert(_ context.Context, _ *Record) (*Record, error) {
	return nil, ErrReadOnly
}

// ParseWebhookEvent implements Platform.
func (s *Salesloft) ParseWebhookEvent(payload []byte) (*WebhookEvent, error) {
	var e struct {
		EventType string `json:"event_type"`
		Payload   struct {
			ID int64 `json:"id"`
		} `json:"payload"`
		OccurredAt time.Time `json:"occurred_at"`
	}
	if err := json.Unmarshal(payload, &e); err != nil || e.Payload.ID == 0 {
		return nil, llm.NewError("salesloft", llm.ClassProtocol, fmt.Errorf("unparseable webhook payload"))
	}
	eventType := "contact.updated"
	switch e.EventType {
	case "person_created":
		eventType = "contact.created"
	case "person_destroyed":
		eventType = "contact.deleted"
	}
	return &WebhookEvent{
		Type:       eventType,
		ExternalID: strconv.FormatInt(e.Payload.ID, 10),
		OccurredAt: e.OccurredAt,
	}, nil
}

func salesloftRecord(p salesloftPerson) Record {
	return Record{
		ExternalID: strconv.FormatInt(p.ID, 10),
		Email:      p.Email,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Company:    p.CompanyName,
		Title:      p.Title,
		Phone:      p.Phone,
		UpdatedAt:  p.UpdatedAt,
	}
}
