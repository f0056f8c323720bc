package crm

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
	"github.com/ScientiaCapital/sales-agent/pkg/services"
	testdb "github.com/ScientiaCapital/sales-agent/test/database"
)

// fakePlatform serves scripted records from memory and captures upserts.
type fakePlatform struct {
	tag      string
	writable bool
	pageSize int

	mu       sync.Mutex
	records  []Record
	upserts  []Record
	listErr  error
	released chan struct{} // when set, List blocks until closed
}

func (f *fakePlatform) Tag() string { return f.tag }

func (f *fakePlatform) List(ctx context.Context, _ Filters, cursor string) (*Page, error) {
	if f.released != nil {
		select {
		case <-f.released:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}

	start := 0
	if cursor != "" {
		start = int(cursor[0] - '0')
	}
	size := f.pageSize
	if size <= 0 {
		size = 100
	}
	end := start + size
	if end > len(f.records) {
		end = len(f.records)
	}
	page := &Page{Records: f.records[start:end], RateRemaining: -1}
	if end < len(f.records) {
		page.NextCursor = string(rune('0' + end))
	}
	return page, nil
}

func (f *fakePlatform) Get(_ context.Context, externalID string) (*Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		if f.records[i].ExternalID == externalID {
			return &f.records[i], nil
		}
	}
	return nil, llm.NewError(f.tag, llm.ClassBadRequest, nil)
}

func (f *fakePlatform) Upsert(_ context.Context, rec *Record) (*Record, error) {
	if !f.writable {
		return nil, ErrReadOnly
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, *rec)
	return rec, nil
}

func (f *fakePlatform) ParseWebhookEvent(_ []byte) (*WebhookEvent, error) {
	return &WebhookEvent{Type: "contact.updated"}, nil
}

func (f *fakePlatform) upsertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.upserts)
}

type engineHarness struct {
	engine   *Engine
	contacts *services.ContactService
	synclogs *services.SyncLogService
	platform *fakePlatform
	dlq      *DeadLetters
}

func fastResilience() *config.ResilienceConfig {
	return &config.ResilienceConfig{
		BreakerFailureThreshold: 5,
		BreakerRecoveryTimeout:  time.Second,
		RetryMaxAttempts:        2,
		RetryBaseDelay:          time.Millisecond,
		RetryMaxDelay:           5 * time.Millisecond,
	}
}

func setupEngine(t *testing.T, platform *fakePlatform, budget int) *engineHarness {
	t.Helper()
	client := testdb.NewTestClient(t)
	b, _ := newTestBus(t)

	contacts := services.NewContactService(client.Client)
	synclogs := services.NewSyncLogService(client.Client)

	caps := []config.PlatformCapability{config.PlatformRead}
	if platform.writable {
		caps = append(caps, config.PlatformWrite)
	}
	registry := config.NewPlatformRegistry(map[string]*config.PlatformConfig{
		platform.tag: {
			Capabilities: caps,
			RateBudget:   budget,
			RateBoundary: config.RateBoundaryHour,
		},
	})

	dlq := NewDeadLetters(b)
	engine := NewEngine(registry, map[string]Platform{platform.tag: platform},
		contacts, synclogs, NewRateBudget(b), dlq, fastResilience())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = engine.Shutdown(ctx)
	})
	return &engineHarness{engine: engine, contacts: contacts, synclogs: synclogs, platform: platform, dlq: dlq}
}

func (h *engineHarness) waitForTerminal(t *testing.T, syncID string) *models.SyncStatus {
	t.Helper()
	var status *models.SyncStatus
	require.Eventually(t, func() bool {
		s, err := h.synclogs.GetSyncStatus(context.Background(), syncID)
		if err != nil {
			return false
		}
		status = s
		return s.Status != "running"
	}, 15*time.Second, 25*time.Millisecond, "sync %s never finished", syncID)
	return status
}

func TestEngine_ImportCreatesContacts(t *testing.T) {
	platform := &fakePlatform{tag: "apollo", pageSize: 2, records: []Record{
		{ExternalID: "a1", Email: "ada@acme.test", FirstName: "Ada", UpdatedAt: time.Now()},
		{ExternalID: "a2", Email: "bo@acme.test", FirstName: "Bo", UpdatedAt: time.Now()},
		{ExternalID: "a3", Email: "cy@acme.test", FirstName: "Cy", UpdatedAt: time.Now()},
	}}
	h := setupEngine(t, platform, 0)

	syncID, coalesced, err := h.engine.TriggerSync(context.Background(),
		models.TriggerSyncRequest{Platform: "apollo", Direction: "import"}, nil)
	require.NoError(t, err)
	assert.False(t, coalesced)

	status := h.waitForTerminal(t, syncID)
	assert.Equal(t, "completed", status.Status)
	assert.Equal(t, 3, status.Counts.Processed)
	assert.Equal(t, 3, status.Counts.Created)
	assert.Zero(t, status.Counts.Failed)

	got, err := h.contacts.GetByExternalID(context.Background(), "apollo", "a2")
	require.NoError(t, err)
	assert.Equal(t, "bo@acme.test", got.Email)
	assert.False(t, got.LastSyncedAt.IsZero())
}

func TestEngine_ImportSkipsUnmodified(t *testing.T) {
	now := time.Now()
	platform := &fakePlatform{tag: "apollo", records: []Record{
		{ExternalID: "a1", Email: "ada@acme.test", UpdatedAt: now},
	}}
	h := setupEngine(t, platform, 0)
	ctx := context.Background()

	syncID, _, err := h.engine.TriggerSync(ctx, models.TriggerSyncRequest{Platform: "apollo"}, nil)
	require.NoError(t, err)
	first := h.waitForTerminal(t, syncID)
	assert.Equal(t, 1, first.Counts.Created)

	// Neither side modified since the first run: the second run skips.
	syncID, _, err = h.engine.TriggerSync(ctx, models.TriggerSyncRequest{Platform: "apollo"}, nil)
	require.NoError(t, err)
	second := h.waitForTerminal(t, syncID)
	assert.Equal(t, "completed", second.Status)
	assert.Equal(t, 1, second.Counts.Processed)
	assert.Zero(t, second.Counts.Created)
	assert.Zero(t, second.Counts.Updated)
}

func TestEngine_ExternalWinsTies(t *testing.T) {
	platform := &fakePlatform{tag: "apollo", records: []Record{
		{ExternalID: "a1", Email: "ada@acme.test", Title: "CTO", UpdatedAt: time.Now().Add(time.Hour)},
	}}
	h := setupEngine(t, platform, 0)
	ctx := context.Background()

	// Seed a local mirror with an older title and no conflicting critical fields.
	_, _, err := h.contacts.UpsertContact(ctx, models.UpsertContactRequest{
		Platform: "apollo", ExternalID: "a1", Email: "ada@acme.test", Title: "VP Eng",
	})
	require.NoError(t, err)

	syncID, _, err := h.engine.TriggerSync(ctx, models.TriggerSyncRequest{Platform: "apollo"}, nil)
	require.NoError(t, err)
	status := h.waitForTerminal(t, syncID)
	assert.Equal(t, 1, status.Counts.Updated)

	got, err := h.contacts.GetByExternalID(ctx, "apollo", "a1")
	require.NoError(t, err)
	assert.Equal(t, "CTO", got.Title)
}

func TestEngine_CriticalConflictFlagsReview(t *testing.T) {
	h := setupEngine(t, &fakePlatform{tag: "apollo"}, 0)
	ctx := context.Background()

	_, _, err := h.contacts.UpsertContact(ctx, models.UpsertContactRequest{
		Platform: "apollo", ExternalID: "a1", Email: "old@acme.test", FirstName: "Ada",
	})
	require.NoError(t, err)

	// Both sides modified after last sync, and emails disagree.
	local, err := h.contacts.GetByExternalID(ctx, "apollo", "a1")
	require.NoError(t, err)
	_, err = h.contacts.UpdateContact(ctx, local.ID, models.UpsertContactRequest{
		Email: "local-edit@acme.test", FirstName: "Ada",
	})
	require.NoError(t, err)
	h.platform.records = []Record{
		{ExternalID: "a1", Email: "remote-edit@acme.test", FirstName: "Ada",
			UpdatedAt: local.UpdatedAt.Add(time.Hour)},
	}

	syncID, _, err := h.engine.TriggerSync(ctx, models.TriggerSyncRequest{Platform: "apollo"}, nil)
	require.NoError(t, err)
	status := h.waitForTerminal(t, syncID)
	assert.Equal(t, "completed", status.Status)
	require.NotEmpty(t, status.Counts.Errors)
	assert.Contains(t, status.Counts.Errors[0], "sync_conflict_manual_review")

	got, err := h.contacts.GetByExternalID(ctx, "apollo", "a1")
	require.NoError(t, err)
	assert.True(t, got.NeedsReview)
	// External won the tie-break and overwrote.
	assert.Equal(t, "remote-edit@acme.test", got.Email)
}

func TestEngine_ExportRejectedOnReadOnlyPlatform(t *testing.T) {
	h := setupEngine(t, &fakePlatform{tag: "apollo"}, 0)

	_, _, err := h.engine.TriggerSync(context.Background(),
		models.TriggerSyncRequest{Platform: "apollo", Direction: "export"}, nil)
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))

	_, _, err = h.engine.TriggerSync(context.Background(),
		models.TriggerSyncRequest{Platform: "apollo", Direction: "bidirectional"}, nil)
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
}

func TestEngine_BidirectionalExportsLocalChanges(t *testing.T) {
	platform := &fakePlatform{tag: "hubspot", writable: true}
	h := setupEngine(t, platform, 0)
	ctx := context.Background()

	// A locally modified contact with no newer external copy gets pushed.
	seeded, _, err := h.contacts.UpsertContact(ctx, models.UpsertContactRequest{
		Platform: "hubspot", ExternalID: "h1", Email: "ada@acme.test", Title: "CTO",
	})
	require.NoError(t, err)
	_, err = h.contacts.UpdateContact(ctx, seeded.ID, models.UpsertContactRequest{
		Email: "ada@acme.test", Title: "CEO",
	})
	require.NoError(t, err)

	syncID, _, err := h.engine.TriggerSync(ctx,
		models.TriggerSyncRequest{Platform: "hubspot", Direction: "bidirectional"}, nil)
	require.NoError(t, err)
	status := h.waitForTerminal(t, syncID)

	assert.Equal(t, "completed", status.Status)
	require.Eventually(t, func() bool { return platform.upsertCount() > 0 },
		5*time.Second, 10*time.Millisecond)
	h.platform.mu.Lock()
	defer h.platform.mu.Unlock()
	assert.Equal(t, "CEO", platform.upserts[0].Title)
}

func TestEngine_CoalescesConcurrentDispatches(t *testing.T) {
	release := make(chan struct{})
	platform := &fakePlatform{tag: "apollo", released: release}
	h := setupEngine(t, platform, 0)
	ctx := context.Background()

	first, coalesced, err := h.engine.TriggerSync(ctx, models.TriggerSyncRequest{Platform: "apollo"}, nil)
	require.NoError(t, err)
	require.False(t, coalesced)

	second, coalesced, err := h.engine.TriggerSync(ctx, models.TriggerSyncRequest{Platform: "apollo"}, nil)
	require.NoError(t, err)
	assert.True(t, coalesced)
	assert.Equal(t, first, second)

	close(release)
	h.waitForTerminal(t, first)

	// After the run finishes a new dispatch starts a fresh run. The slot is
	// released just after the status flips, so retry briefly.
	var third string
	require.Eventually(t, func() bool {
		id, coalesced, err := h.engine.TriggerSync(ctx, models.TriggerSyncRequest{Platform: "apollo"}, nil)
		require.NoError(t, err)
		third = id
		return !coalesced
	}, 5*time.Second, 10*time.Millisecond)
	assert.NotEqual(t, first, third)
	h.waitForTerminal(t, third)
}

func TestEngine_RateBudgetExhaustionMarksRateLimited(t *testing.T) {
	platform := &fakePlatform{tag: "apollo", pageSize: 1, records: []Record{
		{ExternalID: "a1", Email: "a@x.test", UpdatedAt: time.Now()},
		{ExternalID: "a2", Email: "b@x.test", UpdatedAt: time.Now()},
		{ExternalID: "a3", Email: "c@x.test", UpdatedAt: time.Now()},
	}}
	h := setupEngine(t, platform, 1)

	syncID, _, err := h.engine.TriggerSync(context.Background(),
		models.TriggerSyncRequest{Platform: "apollo"}, nil)
	require.NoError(t, err)

	status := h.waitForTerminal(t, syncID)
	assert.Equal(t, "rate_limited", status.Status)
	// The first page's record landed before the budget ran out.
	assert.Equal(t, 1, status.Counts.Created)

	// The unfetched page parks on the dead-letter stream for a later drain.
	depth, err := h.dlq.Depth(context.Background(), "apollo")
	require.NoError(t, err)
	assert.Equal(t, int64(1), depth)
}

func TestEngine_RateLimitedListMarksRateLimitedAndDeadLetters(t *testing.T) {
	platform := &fakePlatform{tag: "apollo",
		listErr: llm.NewError("apollo", llm.ClassRateLimit, assert.AnError)}
	h := setupEngine(t, platform, 0)

	syncID, _, err := h.engine.TriggerSync(context.Background(),
		models.TriggerSyncRequest{Platform: "apollo"}, nil)
	require.NoError(t, err)

	// The platform keeps answering 429 until retries are spent; the run
	// finalizes rate_limited with the failed page dead-lettered.
	status := h.waitForTerminal(t, syncID)
	assert.Equal(t, "rate_limited", status.Status)
	assert.Zero(t, status.Counts.Created)

	depth, err := h.dlq.Depth(context.Background(), "apollo")
	require.NoError(t, err)
	assert.Equal(t, int64(1), depth)
}

func TestEngine_ConflictFlaggedWithoutLocalEdit(t *testing.T) {
	h := setupEngine(t, &fakePlatform{tag: "apollo"}, 0)
	ctx := context.Background()

	_, _, err := h.contacts.UpsertContact(ctx, models.UpsertContactRequest{
		Platform: "apollo", ExternalID: "a1", Email: "a@x.test", FirstName: "Ada",
	})
	require.NoError(t, err)

	// Only the external side changed, but the emails disagree: the newer
	// external copy wins the merge and the row is flagged for review.
	h.platform.records = []Record{
		{ExternalID: "a1", Email: "b@x.test", FirstName: "Ada",
			UpdatedAt: time.Now().Add(time.Hour)},
	}

	syncID, _, err := h.engine.TriggerSync(ctx, models.TriggerSyncRequest{Platform: "apollo"}, nil)
	require.NoError(t, err)
	status := h.waitForTerminal(t, syncID)

	assert.Equal(t, "completed", status.Status)
	assert.Equal(t, 1, status.Counts.Updated)
	require.NotEmpty(t, status.Counts.Errors)
	assert.Contains(t, status.Counts.Errors[0], "sync_conflict_manual_review")
	assert.Contains(t, status.Counts.Errors[0], "email")

	got, err := h.contacts.GetByExternalID(ctx, "apollo", "a1")
	require.NoError(t, err)
	assert.True(t, got.NeedsReview)
	assert.Equal(t, "b@x.test", got.Email)
}

func TestEngine_FailedUnitIsDeadLettered(t *testing.T) {
	// An external record without an ID fails repository validation; the run
	// completes and the unit parks on the dead-letter stream.
	platform := &fakePlatform{tag: "apollo", records: []Record{
		{ExternalID: "", Email: "broken@x.test", UpdatedAt: time.Now()},
		{ExternalID: "a2", Email: "fine@x.test", UpdatedAt: time.Now()},
	}}

	client := testdb.NewTestClient(t)
	b, _ := newTestBus(t)
	contacts := services.NewContactService(client.Client)
	synclogs := services.NewSyncLogService(client.Client)
	dlq := NewDeadLetters(b)
	registry := config.NewPlatformRegistry(map[string]*config.PlatformConfig{
		"apollo": {Capabilities: []config.PlatformCapability{config.PlatformRead}},
	})
	engine := NewEngine(registry, map[string]Platform{"apollo": platform},
		contacts, synclogs, NewRateBudget(b), dlq, fastResilience())

	syncID, _, err := engine.TriggerSync(context.Background(),
		models.TriggerSyncRequest{Platform: "apollo"}, nil)
	require.NoError(t, err)

	h := &engineHarness{engine: engine, contacts: contacts, synclogs: synclogs, platform: platform}
	status := h.waitForTerminal(t, syncID)

	assert.Equal(t, "completed", status.Status)
	assert.Equal(t, 2, status.Counts.Processed)
	assert.Equal(t, 1, status.Counts.Created)
	assert.Equal(t, 1, status.Counts.Failed)

	depth, err := dlq.Depth(context.Background(), "apollo")
	require.NoError(t, err)
	assert.Equal(t, int64(1), depth)
}
