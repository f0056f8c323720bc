package scheduler

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/config"
	"github.com/ScientiaCapital/sales-agent/pkg/crm"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
)

type fakeDispatcher struct {
	mu    sync.Mutex
	calls []models.TriggerSyncRequest
}

func (f *fakeDispatcher) TriggerSync(_ context.Context, req models.TriggerSyncRequest, _ crm.Filters) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	return fmt.Sprintf("sync-%d", len(f.calls)), false, nil
}

func (f *fakeDispatcher) snapshot() []models.TriggerSyncRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.TriggerSyncRequest(nil), f.calls...)
}

type fakeGuard struct {
	mu      sync.Mutex
	running map[string]bool
}

func (f *fakeGuard) HasRunningSync(_ context.Context, platform string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running[platform], nil
}

type fakeReports struct {
	mu          sync.Mutex
	invalidated int
}

func (f *fakeReports) Invalidate(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated++
}

func (f *fakeReports) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.invalidated
}

type fakePruner struct {
	mu     sync.Mutex
	ttls   []time.Duration
	pruneN int
}

func (f *fakePruner) PruneCheckpoints(_ context.Context, ttl time.Duration) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ttls = append(f.ttls, ttl)
	return f.pruneN, nil
}

type schedulerHarness struct {
	scheduler  *Scheduler
	dispatcher *fakeDispatcher
	guard      *fakeGuard
	reports    *fakeReports
	pruner     *fakePruner
}

func newTestScheduler(t *testing.T, cfg *config.SchedulerConfig, platforms map[string]*config.PlatformConfig) *schedulerHarness {
	t.Helper()
	h := &schedulerHarness{
		dispatcher: &fakeDispatcher{},
		guard:      &fakeGuard{running: make(map[string]bool)},
		reports:    &fakeReports{},
		pruner:     &fakePruner{},
	}
	h.scheduler = New(cfg, config.DefaultRuntimeConfig(), config.NewPlatformRegistry(platforms),
		h.dispatcher, h.guard, h.reports, h.pruner, NewPool(testPoolConfig()))
	return h
}

func quietSchedule() *config.SchedulerConfig {
	// Intervals long enough that loops not under test never fire.
	return &config.SchedulerConfig{
		RWSyncInterval:     time.Hour,
		ImportTimesUTC:     map[string]int{},
		CacheSweepInterval: time.Hour,
	}
}

func TestScheduler_RWSyncDispatchesWritablePlatformsOnly(t *testing.T) {
	cfg := quietSchedule()
	cfg.RWSyncInterval = 15 * time.Millisecond
	h := newTestScheduler(t, cfg, map[string]*config.PlatformConfig{
		"hubspot": {Capabilities: []config.PlatformCapability{config.PlatformRead, config.PlatformWrite}},
		"apollo":  {Capabilities: []config.PlatformCapability{config.PlatformRead}},
	})

	h.scheduler.Start()
	defer func() { require.NoError(t, h.scheduler.Stop()) }()

	require.Eventually(t, func() bool { return len(h.dispatcher.snapshot()) > 0 },
		3*time.Second, 5*time.Millisecond)

	for _, call := range h.dispatcher.snapshot() {
		assert.Equal(t, "hubspot", call.Platform)
		assert.Equal(t, "bidirectional", call.Direction)
	}
}

func TestScheduler_SkipsPlatformWithRunningSync(t *testing.T) {
	cfg := quietSchedule()
	cfg.RWSyncInterval = 10 * time.Millisecond
	h := newTestScheduler(t, cfg, map[string]*config.PlatformConfig{
		"hubspot": {Capabilities: []config.PlatformCapability{config.PlatformWrite}},
	})
	h.guard.running["hubspot"] = true

	h.scheduler.Start()
	defer func() { require.NoError(t, h.scheduler.Stop()) }()

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, h.dispatcher.snapshot())
}

func TestScheduler_CacheSweep(t *testing.T) {
	cfg := quietSchedule()
	cfg.CacheSweepInterval = 15 * time.Millisecond
	h := newTestScheduler(t, cfg, nil)
	h.pruner.pruneN = 3

	h.scheduler.Start()
	defer func() { require.NoError(t, h.scheduler.Stop()) }()

	require.Eventually(t, func() bool { return h.reports.count() > 0 },
		3*time.Second, 5*time.Millisecond)

	h.pruner.mu.Lock()
	defer h.pruner.mu.Unlock()
	require.NotEmpty(t, h.pruner.ttls)
	assert.Equal(t, 24*time.Hour, h.pruner.ttls[0])
}

func TestScheduler_ImportJobDirection(t *testing.T) {
	h := newTestScheduler(t, quietSchedule(), map[string]*config.PlatformConfig{
		"apollo": {Capabilities: []config.PlatformCapability{config.PlatformRead}},
	})

	job := h.scheduler.syncJob("apollo", "import")
	require.NoError(t, job.Run(context.Background()))

	calls := h.dispatcher.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, "apollo", calls[0].Platform)
	assert.Equal(t, "import", calls[0].Direction)
}

func TestUntilNextUTCHour(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		hour int
		want time.Duration
	}{
		{
			name: "later today",
			now:  time.Date(2026, 8, 24, 1, 30, 0, 0, time.UTC),
			hour: 2,
			want: 30 * time.Minute,
		},
		{
			name: "exactly at the hour rolls to tomorrow",
			now:  time.Date(2026, 8, 24, 2, 0, 0, 0, time.UTC),
			hour: 2,
			want: 24 * time.Hour,
		},
		{
			name: "already past",
			now:  time.Date(2026, 8, 24, 3, 5, 0, 0, time.UTC),
			hour: 2,
			want: 22*time.Hour + 55*time.Minute,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, untilNextUTCHour(tt.now, tt.hour))
		})
	}
}
