package catalog

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/agent"
	"github.com/ScientiaCapital/sales-agent/pkg/bus"
	"github.com/ScientiaCapital/sales-agent/pkg/config"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
	"github.com/ScientiaCapital/sales-agent/pkg/models"
	"github.com/ScientiaCapital/sales-agent/pkg/services"
	"github.com/ScientiaCapital/sales-agent/pkg/stream"
	testdb "github.com/ScientiaCapital/sales-agent/test/database"
)

// scriptedLLM answers each provider call from a script keyed by call index.
type scriptedLLM struct {
	calls  atomic.Int64
	script func(call int64, task string) string
}

func (s *scriptedLLM) respond(task string) (*llm.Response, error) {
	return &llm.Response{
		Text:    s.script(s.calls.Add(1), task),
		Model:   "scripted",
		Usage:   llm.TokenUsage{PromptTokens: 20, CompletionTokens: 10, TotalTokens: 30},
		CostUSD: 0.0002,
	}, nil
}

func (s *scriptedLLM) Generate(_ context.Context, task string, _ *llm.GenerateInput) (*llm.Response, error) {
	return s.respond(task)
}

func (s *scriptedLLM) GenerateStream(_ context.Context, task string, _ *llm.GenerateInput) (<-chan llm.Chunk, error) {
	resp, err := s.respond(task)
	if err != nil {
		return nil, err
	}
	ch := make(chan llm.Chunk, 2)
	ch <- &llm.TextChunk{Content: resp.Text}
	ch <- &llm.UsageChunk{TotalTokens: resp.Usage.TotalTokens, CostUSD: resp.CostUSD}
	close(ch)
	return ch, nil
}

type catalogHarness struct {
	runtime  *agent.Runtime
	leads    *services.LeadService
	contacts *services.ContactService
	execs    *services.ExecutionService
}

func setupCatalog(t *testing.T, llmAPI agent.LLM) *catalogHarness {
	t.Helper()
	client := testdb.NewTestClient(t)

	leads := services.NewLeadService(client.Client)
	contacts := services.NewContactService(client.Client)
	execs := services.NewExecutionService(client.Client)

	tools, agents, err := Build(Deps{Leads: leads, Contacts: contacts})
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	fabric := stream.NewFabric(bus.NewFromClient(rdb), config.DefaultStreamConfig())

	rt := agent.NewRuntime(config.DefaultRuntimeConfig(), llmAPI,
		agent.NewExecutionStore(execs), fabric, tools, nil)
	for _, a := range agents {
		require.NoError(t, rt.Register(a))
	}
	return &catalogHarness{runtime: rt, leads: leads, contacts: contacts, execs: execs}
}

func (h *catalogHarness) waitForStatus(t *testing.T, executionID, want string) *models.ExecutionState {
	t.Helper()
	var state *models.ExecutionState
	require.Eventually(t, func() bool {
		s, err := h.execs.GetExecutionState(context.Background(), executionID)
		if err != nil {
			return false
		}
		state = s
		return s.Status == want
	}, 10*time.Second, 25*time.Millisecond, "execution %s never reached %s", executionID, want)
	return state
}

func TestBuild_RegistersSixAgents(t *testing.T) {
	tools, agents, err := Build(Deps{})
	require.NoError(t, err)
	require.NotNil(t, tools)

	names := make([]string, 0, len(agents))
	for _, a := range agents {
		names = append(names, a.Name())
	}
	assert.ElementsMatch(t, []string{
		"qualification", "enrichment", "marketing", "growth", "bdr", "conversation",
	}, names)

	for _, name := range []string{"lead_lookup", "lead_note", "crm_contact_lookup"} {
		assert.True(t, tools.Has(name), "missing tool %s", name)
	}
}

func TestQualificationAgent_RecordsOutcome(t *testing.T) {
	llmAPI := &scriptedLLM{script: func(_ int64, _ string) string {
		return `{"score": 85, "tier": "hot", "rationale": "strong fit for SaaS expansion"}`
	}}
	h := setupCatalog(t, llmAPI)

	lead, err := h.leads.CreateLead(context.Background(), models.CreateLeadRequest{
		CompanyName: "Acme",
		Industry:    "SaaS",
		CompanySize: "50-200",
	})
	require.NoError(t, err)

	executionID, err := h.runtime.Invoke(context.Background(), models.InvokeAgentRequest{
		AgentName: "qualification",
		LeadID:    lead.ID,
		Input: map[string]interface{}{
			"company_name": "Acme",
			"industry":     "SaaS",
			"company_size": "50-200",
		},
	})
	require.NoError(t, err)

	state := h.waitForStatus(t, executionID, "success")
	assert.Greater(t, state.CostUSD, 0.0)

	got, err := h.leads.GetLeadByID(context.Background(), lead.ID)
	require.NoError(t, err)
	require.NotNil(t, got.QualificationScore)
	assert.Equal(t, 85, *got.QualificationScore)
	assert.Equal(t, "hot", string(got.Tier))
}

func TestGrowthAgent_LoopsUntilConfident(t *testing.T) {
	llmAPI := &scriptedLLM{script: func(call int64, _ string) string {
		switch call {
		case 1:
			return `{"findings": ["fragmented market"], "confidence": 0.4, "open_questions": ["pricing pressure?"]}`
		case 2:
			return `{"findings": ["pricing stable"], "confidence": 0.9, "open_questions": []}`
		default:
			return `{"opportunities": [{"segment": "mid-market SaaS", "play": "expansion outreach"}]}`
		}
	}}
	h := setupCatalog(t, llmAPI)

	executionID, err := h.runtime.Invoke(context.Background(), models.InvokeAgentRequest{
		AgentName: "growth",
		Input:     map[string]interface{}{"market": "B2B SaaS tooling"},
	})
	require.NoError(t, err)

	h.waitForStatus(t, executionID, "success")
	// Two research rounds plus one planning call.
	assert.Equal(t, int64(3), llmAPI.calls.Load())
}

func TestBDRAgent_SuspendsForApproval(t *testing.T) {
	llmAPI := &scriptedLLM{script: func(_ int64, _ string) string {
		return `{"subject": "Quick question about Acme's onboarding", "body": "Hi there, noticed your team is growing."}`
	}}
	h := setupCatalog(t, llmAPI)
	ctx := context.Background()

	lead, err := h.leads.CreateLead(ctx, models.CreateLeadRequest{
		CompanyName: "Acme",
		ContactName: "Jordan Reyes",
		Email:       fmt.Sprintf("jordan-%d@acme.test", time.Now().UnixNano()),
	})
	require.NoError(t, err)

	executionID, err := h.runtime.Invoke(ctx, models.InvokeAgentRequest{
		AgentName: "bdr",
		LeadID:    lead.ID,
	})
	require.NoError(t, err)

	// The run suspends at approval; the execution stays running.
	require.Eventually(t, func() bool {
		cp, err := h.execs.LatestCheckpoint(ctx, executionID)
		return err == nil && cp.Suspended
	}, 10*time.Second, 25*time.Millisecond)
	state, err := h.execs.GetExecutionState(ctx, executionID)
	require.NoError(t, err)
	assert.Equal(t, "running", state.Status)

	require.NoError(t, h.runtime.Resume(ctx, executionID, map[string]interface{}{"approved": true}))
	h.waitForStatus(t, executionID, "success")

	got, err := h.leads.GetLeadByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "outreach approved and queued", got.AdditionalData["last_agent_note"])
}

func TestConversationAgent_StreamsReply(t *testing.T) {
	llmAPI := &scriptedLLM{script: func(_ int64, _ string) string {
		return "Happy to help with onboarding."
	}}
	h := setupCatalog(t, llmAPI)
	ctx := context.Background()

	executionID, err := h.runtime.Invoke(ctx, models.InvokeAgentRequest{
		AgentName: "conversation",
		Input:     map[string]interface{}{"user_input": "How does onboarding work?"},
	})
	require.NoError(t, err)

	h.waitForStatus(t, executionID, "success")
	assert.Equal(t, int64(1), llmAPI.calls.Load())
}
