package usage

import (
	"context"
	"fmt"

	"github.com/ScientiaCapital/sales-agent/ent"
	"github.com/ScientiaCapital/sales-agent/ent/apicalllog"
)

// validOperations mirrors the api_call_logs operation enum.
var validOperations = map[string]bool{
	"qualification": true,
	"enrichment":    true,
	"growth":        true,
	"marketing":     true,
	"bdr":           true,
	"conversation":  true,
	"embedding":     true,
	"other":         true,
}

// EntStore persists usage records through the Ent client.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates the PostgreSQL-backed store.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

// InsertBatch implements Store with a single bulk insert.
func (s *EntStore) InsertBatch(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	builders := make([]*ent.ApiCallLogCreate, len(records))
	for i, r := range records {
		op := r.Operation
		if !validOperations[op] {
			op = "other"
		}
		builder := s.client.ApiCallLog.Create().
			SetID(r.ID).
			SetProvider(r.Provider).
			SetModel(r.Model).
			SetEndpoint(r.Endpoint).
			SetOperation(apicalllog.Operation(op)).
			SetPromptTokens(r.PromptTokens).
			SetCompletionTokens(r.CompletionTokens).
			SetTotalTokens(r.TotalTokens).
			SetLatencyMs(int(r.LatencyMS)).
			SetCostUsd(r.CostUSD).
			SetSuccess(r.Success).
			SetCacheHit(r.CacheHit).
			SetCreatedAt(r.CreatedAt)
		if r.UserID != "" {
			builder.SetUserID(r.UserID)
		}
		if r.ErrorMessage != "" {
			builder.SetErrorMessage(r.ErrorMessage)
		}
		builders[i] = builder
	}

	if _, err := s.client.ApiCallLog.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to insert usage batch: %w", err)
	}
	return nil
}
