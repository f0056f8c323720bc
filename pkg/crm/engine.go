package crm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ScientiaCapital/sales-agent/ent"
	"github.com/ScientiaCapital/sales-agent/pkg/config"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
	"github.com/ScientiaCapital/sales-agent/pkg/services"
)

// syncRunTimeout bounds one full sync run.
const syncRunTimeout = 30 * time.Minute

// Engine owns CRM sync runs: reconciliation with conflict resolution,
// per-platform rate budgets, dead-lettering of failed units, and coalescing
// of concurrent dispatches per (platform, direction).
type Engine struct {
	registry  *config.PlatformRegistry
	platforms map[string]*resilientPlatform
	contacts  *services.ContactService
	synclogs  *services.SyncLogService
	budget    *RateBudget
	dlq       *DeadLetters

	mu       sync.Mutex
	inflight map[string]string // platform|direction -> sync id
	wg       sync.WaitGroup
}

// NewEngine wires the sync engine. Each adapter gets its own breaker.
func NewEngine(
	registry *config.PlatformRegistry,
	platforms map[string]Platform,
	contacts *services.ContactService,
	synclogs *services.SyncLogService,
	budget *RateBudget,
	dlq *DeadLetters,
	resilience *config.ResilienceConfig,
) *Engine {
	wrapped := make(map[string]*resilientPlatform, len(platforms))
	for tag, p := range platforms {
		wrapped[tag] = withResilience(p, resilience)
	}
	return &Engine{
		registry:  registry,
		platforms: wrapped,
		contacts:  contacts,
		synclogs:  synclogs,
		budget:    budget,
		dlq:       dlq,
		inflight:  make(map[string]string),
	}
}

// BreakerStates reports each platform breaker for health surfaces.
func (e *Engine) BreakerStates() map[string]string {
	out := make(map[string]string, len(e.platforms))
	for tag, p := range e.platforms {
		out[tag] = p.State().String()
	}
	return out
}

// ParseWebhookEvent normalizes a platform webhook payload.
func (e *Engine) ParseWebhookEvent(platform string, payload []byte) (*WebhookEvent, error) {
	p, ok := e.platforms[platform]
	if !ok {
		return nil, services.NewValidationError("platform", "unknown: "+platform)
	}
	return p.ParseWebhookEvent(payload)
}

// TriggerSync dispatches a sync run and returns its handle. A run already
// in flight for the same (platform, direction) is returned instead of
// starting a second one; coalesced reports which happened.
func (e *Engine) TriggerSync(ctx context.Context, req models.TriggerSyncRequest, filters Filters) (syncID string, coalesced bool, err error) {
	platform, ok := e.platforms[req.Platform]
	if !ok {
		return "", false, services.NewValidationError("platform", "unknown: "+req.Platform)
	}
	cfg, err := e.registry.Get(req.Platform)
	if err != nil {
		return "", false, err
	}

	direction := req.Direction
	if direction == "" {
		direction = "import"
	}
	switch direction {
	case "import", "export", "bidirectional":
	default:
		return "", false, services.NewValidationError("direction", "invalid: must be import, export, or bidirectional")
	}
	if direction != "import" && !cfg.CanWrite() {
		return "", false, services.NewValidationError("direction", req.Platform+" is read-only; only import is supported")
	}

	key := req.Platform + "|" + direction
	e.mu.Lock()
	if id, running := e.inflight[key]; running {
		e.mu.Unlock()
		return id, true, nil
	}
	syncID = uuid.New().String()
	e.inflight[key] = syncID
	e.mu.Unlock()

	if _, err := e.synclogs.CreateSyncLog(ctx, models.CreateSyncLogRequest{
		SyncID:    syncID,
		Platform:  req.Platform,
		Direction: direction,
	}); err != nil {
		e.release(key)
		return "", false, err
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer e.release(key)

		runCtx, cancel := context.WithTimeout(context.Background(), syncRunTimeout)
		defer cancel()
		e.run(runCtx, syncID, platform, cfg, direction, filters)
	}()
	return syncID, false, nil
}

func (e *Engine) release(key string) {
	e.mu.Lock()
	delete(e.inflight, key)
	e.mu.Unlock()
}

// Shutdown waits for in-flight runs to finish or the context to end.
func (e *Engine) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timed out with sync runs in flight: %w", ctx.Err())
	}
}

// run drives one sync to a terminal status. Unit failures dead-letter and
// count; only budget exhaustion or a page-level failure ends the run early.
func (e *Engine) run(ctx context.Context, syncID string, platform *resilientPlatform, cfg *config.PlatformConfig, direction string, filters Filters) {
	var counts models.SyncRunCounts
	status := "completed"

	if direction == "import" || direction == "bidirectional" {
		if err := e.importPass(ctx, syncID, platform, cfg, direction, filters, &counts); err != nil {
			status = statusForRunError(err)
			counts.Errors = append(counts.Errors, err.Error())
		}
	}
	if status == "completed" && (direction == "export" || direction == "bidirectional") {
		if err := e.exportPass(ctx, syncID, platform, cfg, &counts); err != nil {
			status = statusForRunError(err)
			counts.Errors = append(counts.Errors, err.Error())
		}
	}

	finishCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.synclogs.Finalize(finishCtx, syncID, status, counts); err != nil {
		slog.Error("Failed to finalize sync run", "sync_id", syncID, "error", err)
	}
	slog.Info("Sync run finished",
		"sync_id", syncID, "platform", platform.Tag(), "direction", direction,
		"status", status, "processed", counts.Processed, "created", counts.Created,
		"updated", counts.Updated, "failed", counts.Failed)
}

func statusForRunError(err error) string {
	if errors.Is(err, ErrBudgetExhausted) || llm.ClassOf(err) == llm.ClassRateLimit {
		return "rate_limited"
	}
	return "failed"
}

// importPass pages through the platform and reconciles each record into the
// local mirror.
func (e *Engine) importPass(ctx context.Context, syncID string, platform *resilientPlatform, cfg *config.PlatformConfig, direction string, filters Filters, counts *models.SyncRunCounts) error {
	cursor := ""
	for {
		if err := e.budget.Take(ctx, platform.Tag(), cfg); err != nil {
			e.deadLetterPage(ctx, platform.Tag(), syncID, cursor, err)
			return err
		}
		page, err := platform.List(ctx, filters, cursor)
		if err != nil {
			err = fmt.Errorf("failed to list %s page: %w", platform.Tag(), err)
			e.deadLetterPage(ctx, platform.Tag(), syncID, cursor, err)
			return err
		}

		for i := range page.Records {
			rec := &page.Records[i]
			counts.Processed++
			if err := e.reconcile(ctx, syncID, platform, cfg, direction, rec, counts); err != nil {
				counts.Failed++
				counts.Errors = append(counts.Errors, fmt.Sprintf("%s: %v", rec.ExternalID, err))
				if dlqErr := e.dlq.Put(ctx, platform.Tag(), syncID, rec.ExternalID, err); dlqErr != nil {
					slog.Error("Failed to dead-letter unit", "platform", platform.Tag(), "external_id", rec.ExternalID, "error", dlqErr)
				}
			}
		}

		if err := e.synclogs.UpdateCounts(ctx, syncID, *counts); err != nil {
			slog.Warn("Failed to update sync counts", "sync_id", syncID, "error", err)
		}
		if page.NextCursor == "" {
			return nil
		}
		cursor = page.NextCursor
	}
}

// deadLetterPage parks an unfetched import page so a drain can replay the
// run from its cursor.
func (e *Engine) deadLetterPage(ctx context.Context, platform, syncID, cursor string, cause error) {
	unit := "page:" + cursor
	if cursor == "" {
		unit = "page:first"
	}
	if err := e.dlq.Put(ctx, platform, syncID, unit, cause); err != nil {
		slog.Error("Failed to dead-letter page",
			"platform", platform, "sync_id", syncID, "unit", unit, "error", err)
	}
}

// exportPass pushes locally modified contacts to a writable platform.
// Only runs for records the import pass did not already settle.
func (e *Engine) exportPass(ctx context.Context, syncID string, platform *resilientPlatform, cfg *config.PlatformConfig, counts *models.SyncRunCounts) error {
	since := time.Now().Add(-24 * time.Hour)
	if last, err := e.synclogs.LatestRun(ctx, platform.Tag()); err == nil && last.CompletedAt != nil {
		since = *last.CompletedAt
	}

	modified, err := e.contacts.ListModifiedSince(ctx, platform.Tag(), since)
	if err != nil {
		return err
	}

	for _, local := range modified {
		// Rows the import pass just stamped are already in sync.
		if !local.LastSyncedAt.IsZero() && !local.UpdatedAt.After(local.LastSyncedAt) {
			continue
		}
		counts.Processed++

		if err := e.budget.Take(ctx, platform.Tag(), cfg); err != nil {
			return err
		}
		if _, err := platform.Upsert(ctx, recordFromContact(local)); err != nil {
			counts.Failed++
			counts.Errors = append(counts.Errors, fmt.Sprintf("%s: %v", local.ExternalID, err))
			if dlqErr := e.dlq.Put(ctx, platform.Tag(), syncID, local.ExternalID, err); dlqErr != nil {
				slog.Error("Failed to dead-letter unit", "platform", platform.Tag(), "external_id", local.ExternalID, "error", dlqErr)
			}
			continue
		}
		// Re-stamp last_synced_at so the next run skips this row.
		if _, _, err := e.contacts.UpsertContact(ctx, upsertFromContact(local)); err != nil {
			return err
		}
		counts.Updated++
	}

	return e.synclogs.UpdateCounts(ctx, syncID, *counts)
}

// reconcile resolves one external record against the local mirror.
func (e *Engine) reconcile(ctx context.Context, syncID string, platform *resilientPlatform, cfg *config.PlatformConfig, direction string, external *Record, counts *models.SyncRunCounts) error {
	local, err := e.contacts.GetByExternalID(ctx, platform.Tag(), external.ExternalID)
	if errors.Is(err, services.ErrNotFound) {
		if _, _, err := e.contacts.UpsertContact(ctx, upsertFromRecord(platform.Tag(), external)); err != nil {
			return err
		}
		counts.Created++
		return nil
	}
	if err != nil {
		return err
	}

	externalModified := external.UpdatedAt.After(local.LastSyncedAt)
	localModified := local.UpdatedAt.After(local.LastSyncedAt)
	if !externalModified && !localModified {
		return nil
	}

	// Critical-field conflicts need a human decision regardless of winner.
	if conflict := criticalConflict(local, external); conflict != "" {
		if err := e.contacts.FlagForReview(ctx, local.ID); err != nil {
			return err
		}
		counts.Errors = append(counts.Errors,
			fmt.Sprintf("sync_conflict_manual_review: %s %s (%s)", platform.Tag(), external.ExternalID, conflict))
	}

	// Winner by updated_at; external wins ties.
	if !external.UpdatedAt.Before(local.UpdatedAt) {
		if _, _, err := e.contacts.UpsertContact(ctx, mergeWinnerExternal(local, external)); err != nil {
			return err
		}
		counts.Updated++
		return nil
	}

	// Local wins: push outward when the direction includes export.
	if direction == "bidirectional" && cfg.CanWrite() {
		if err := e.budget.Take(ctx, platform.Tag(), cfg); err != nil {
			return err
		}
		if _, err := platform.Upsert(ctx, recordFromContact(local)); err != nil {
			return err
		}
		// Re-stamp last_synced_at so the export pass skips this row.
		if _, _, err := e.contacts.UpsertContact(ctx, upsertFromContact(local)); err != nil {
			return err
		}
		counts.Updated++
	}
	return nil
}

// criticalConflict names the first critical field on which both sides
// disagree, or empty.
func criticalConflict(local *ent.CRMContact, external *Record) string {
	if local.Email != "" && external.Email != "" && local.Email != external.Email {
		return "email"
	}
	if local.FirstName != "" && external.FirstName != "" && local.FirstName != external.FirstName {
		return "first_name"
	}
	if local.LastName != "" && external.LastName != "" && local.LastName != external.LastName {
		return "last_name"
	}
	return ""
}

// mergeWinnerExternal overlays the external record's non-empty fields on the
// local row; properties are the union of both sides with external winning
// per key.
func mergeWinnerExternal(local *ent.CRMContact, external *Record) models.UpsertContactRequest {
	req := upsertFromContact(local)
	if external.Email != "" {
		req.Email = external.Email
	}
	if external.FirstName != "" {
		req.FirstName = external.FirstName
	}
	if external.LastName != "" {
		req.LastName = external.LastName
	}
	if external.Company != "" {
		req.Company = external.Company
	}
	if external.Title != "" {
		req.Title = external.Title
	}
	if external.Phone != "" {
		req.Phone = external.Phone
	}

	props := make(map[string]interface{}, len(local.Properties)+len(external.Properties))
	for k, v := range local.Properties {
		props[k] = v
	}
	for k, v := range external.Properties {
		props[k] = v
	}
	req.Properties = props
	return req
}

func upsertFromRecord(platform string, rec *Record) models.UpsertContactRequest {
	return models.UpsertContactRequest{
		Platform:   platform,
		ExternalID: rec.ExternalID,
		Email:      rec.Email,
		FirstName:  rec.FirstName,
		LastName:   rec.LastName,
		Company:    rec.Company,
		Title:      rec.Title,
		Phone:      rec.Phone,
		Properties: rec.Properties,
	}
}

func upsertFromContact(c *ent.CRMContact) models.UpsertContactRequest {
	return models.UpsertContactRequest{
		Platform:   c.Platform,
		ExternalID: c.ExternalID,
		Email:      c.Email,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Company:    c.Company,
		Title:      c.Title,
		Phone:      c.Phone,
		Properties: c.Properties,
	}
}

func recordFromContact(c *ent.CRMContact) *Record {
	return &Record{
		ExternalID: c.ExternalID,
		Email:      c.Email,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Company:    c.Company,
		Title:      c.Title,
		Phone:      c.Phone,
		Properties: c.Properties,
		UpdatedAt:  c.UpdatedAt,
	}
}
