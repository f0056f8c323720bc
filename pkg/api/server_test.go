package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/agent"
	"github.com/ScientiaCapital/sales-agent/pkg/bus"
	"github.com/ScientiaCapital/sales-agent/pkg/config"
	"github.com/ScientiaCapital/sales-agent/pkg/crm"
	"github.com/ScientiaCapital/sales-agent/pkg/crypto"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
	"github.com/ScientiaCapital/sales-agent/pkg/scheduler"
	"github.com/ScientiaCapital/sales-agent/pkg/services"
	"github.com/ScientiaCapital/sales-agent/pkg/stream"
	"github.com/ScientiaCapital/sales-agent/pkg/usage"
	testdb "github.com/ScientiaCapital/sales-agent/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// echoAgent returns its input as the result.
type echoAgent struct{}

func (echoAgent) Name() string      { return "echo" }
func (echoAgent) TaskClass() string { return "conversation" }
func (echoAgent) Execute(_ context.Context, _ *agent.RunContext, input map[string]interface{}) (map[string]interface{}, error) {
	return input, nil
}

// staticLLM satisfies agent.LLM for runtimes that never call it.
type staticLLM struct{}

func (staticLLM) Generate(context.Context, string, *llm.GenerateInput) (*llm.Response, error) {
	return &llm.Response{Text: "{}"}, nil
}

func (staticLLM) GenerateStream(context.Context, string, *llm.GenerateInput) (<-chan llm.Chunk, error) {
	ch := make(chan llm.Chunk)
	close(ch)
	return ch, nil
}

// memoryPlatform is a minimal in-memory CRM adapter for handler tests.
type memoryPlatform struct {
	tag     string
	records []crm.Record
}

func (m *memoryPlatform) Tag() string { return m.tag }

func (m *memoryPlatform) List(context.Context, crm.Filters, string) (*crm.Page, error) {
	return &crm.Page{Records: m.records, RateRemaining: -1}, nil
}

func (m *memoryPlatform) Get(_ context.Context, id string) (*crm.Record, error) {
	for i := range m.records {
		if m.records[i].ExternalID == id {
			return &m.records[i], nil
		}
	}
	return nil, llm.NewError(m.tag, llm.ClassBadRequest, nil)
}

func (m *memoryPlatform) Upsert(context.Context, *crm.Record) (*crm.Record, error) {
	return nil, crm.ErrReadOnly
}

func (m *memoryPlatform) ParseWebhookEvent(payload []byte) (*crm.WebhookEvent, error) {
	var event crm.WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, llm.NewError(m.tag, llm.ClassProtocol, err)
	}
	return &event, nil
}

type apiHarness struct {
	router   *gin.Engine
	execs    *services.ExecutionService
	leads    *services.LeadService
	synclogs *services.SyncLogService
	fabric   *stream.Fabric
	runtime  *agent.Runtime
	mr       *miniredis.Miniredis
}

func setupServer(t *testing.T) *apiHarness {
	t.Helper()
	client := testdb.NewTestClient(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	b := bus.NewFromClient(rdb)

	execs := services.NewExecutionService(client.Client)
	leads := services.NewLeadService(client.Client)
	synclogs := services.NewSyncLogService(client.Client)
	contacts := services.NewContactService(client.Client)

	cipher, err := crypto.NewCipher(bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)
	credentials := services.NewCredentialService(client.Client, cipher)

	fabric := stream.NewFabric(b, config.DefaultStreamConfig())
	rt := agent.NewRuntime(config.DefaultRuntimeConfig(), staticLLM{},
		agent.NewExecutionStore(execs), fabric, agent.NewToolRegistry(), nil)
	require.NoError(t, rt.Register(echoAgent{}))

	registry := config.NewPlatformRegistry(map[string]*config.PlatformConfig{
		"apollo": {Capabilities: []config.PlatformCapability{config.PlatformRead}},
	})
	engine := crm.NewEngine(registry, map[string]crm.Platform{
		"apollo": &memoryPlatform{tag: "apollo"},
	}, contacts, synclogs, crm.NewRateBudget(b), crm.NewDeadLetters(b), config.DefaultResilienceConfig())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = engine.Shutdown(ctx)
	})

	pool := scheduler.NewPool(config.DefaultPoolConfig())
	sched := scheduler.New(config.DefaultSchedulerConfig(), config.DefaultRuntimeConfig(),
		registry, engine, synclogs, usage.NewReporter(client.DB(), b), execs, pool)

	server := NewServer(Deps{
		DB:          client,
		Bus:         b,
		Runtime:     rt,
		Fabric:      fabric,
		Engine:      engine,
		Executions:  execs,
		Leads:       leads,
		SyncLogs:    synclogs,
		DeadLetters: crm.NewDeadLetters(b),
		OAuth:       crm.NewOAuthStates(b),
		Credentials: credentials,
		Reports:     usage.NewReporter(client.DB(), b),
		Scheduler:   sched,
		Platforms:   registry,
	})

	return &apiHarness{
		router:   server.Router(),
		execs:    execs,
		leads:    leads,
		synclogs: synclogs,
		fabric:   fabric,
		runtime:  rt,
		mr:       mr,
	}
}

func (h *apiHarness) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (h *apiHarness) waitForStatus(t *testing.T, executionID, want string) *models.ExecutionState {
	t.Helper()
	var state *models.ExecutionState
	require.Eventually(t, func() bool {
		s, err := h.execs.GetExecutionState(context.Background(), executionID)
		if err != nil {
			return false
		}
		state = s
		return s.Status == want
	}, 10*time.Second, 25*time.Millisecond)
	return state
}

func TestHealthEndpoint(t *testing.T) {
	h := setupServer(t)

	w := h.request(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, "healthy", body["status"])
}
