package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/llm"
)

var scoreSchema = []byte(`{
	"type": "object",
	"required": ["score", "tier"],
	"properties": {
		"score": {"type": "integer", "minimum": 0, "maximum": 100},
		"tier": {"type": "string", "enum": ["hot", "warm", "cold"]}
	}
}`)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"fenced", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fenced no language", "```\n[1, 2]\n```", `[1, 2]`},
		{"leading prose", `Here is the result: {"a": 1}`, `{"a": 1}`},
		{"unterminated fence", "```json\n{\"a\": 1}", `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}

func TestGenerateStructured_ValidFirstTry(t *testing.T) {
	fake := &fakeLLM{generateFn: func(_ int64, _ string, _ *llm.GenerateInput) (*llm.Response, error) {
		return textResponse(`{"score": 85, "tier": "hot"}`)
	}}
	rc := newTestRunContext(fake, nil, nil)

	var out struct {
		Score int    `json:"score"`
		Tier  string `json:"tier"`
	}
	err := rc.GenerateStructured(context.Background(), "qualification",
		[]llm.Message{{Role: llm.RoleUser, Content: "score this lead"}}, scoreSchema, &out)
	require.NoError(t, err)
	assert.Equal(t, 85, out.Score)
	assert.Equal(t, "hot", out.Tier)
	assert.Equal(t, int64(1), fake.calls.Load())
	assert.Greater(t, rc.CostUSD(), 0.0)
}

func TestGenerateStructured_CorrectiveReprompt(t *testing.T) {
	var correctiveSeen bool
	fake := &fakeLLM{}
	fake.generateFn = func(call int64, _ string, input *llm.GenerateInput) (*llm.Response, error) {
		switch call {
		case 1:
			return textResponse(`the lead looks promising`)
		case 2:
			// Invalid against the schema: tier outside the enum.
			return textResponse(`{"score": 85, "tier": "scorching"}`)
		default:
			last := input.Messages[len(input.Messages)-1]
			correctiveSeen = last.Role == llm.RoleUser && len(input.Messages) >= 5
			return textResponse(`{"score": 85, "tier": "hot"}`)
		}
	}
	rc := newTestRunContext(fake, nil, nil)

	var out map[string]interface{}
	err := rc.GenerateStructured(context.Background(), "qualification",
		[]llm.Message{{Role: llm.RoleUser, Content: "score this lead"}}, scoreSchema, &out)
	require.NoError(t, err)
	assert.Equal(t, int64(3), fake.calls.Load())
	assert.True(t, correctiveSeen, "third call should carry both corrective exchanges")
	assert.Equal(t, "hot", out["tier"])
}

func TestGenerateStructured_Exhaustion(t *testing.T) {
	fake := &fakeLLM{generateFn: func(_ int64, _ string, _ *llm.GenerateInput) (*llm.Response, error) {
		return textResponse(`not json at all`)
	}}
	rc := newTestRunContext(fake, nil, nil)

	var out map[string]interface{}
	err := rc.GenerateStructured(context.Background(), "qualification",
		[]llm.Message{{Role: llm.RoleUser, Content: "score this lead"}}, scoreSchema, &out)
	require.Error(t, err)
	assert.Equal(t, llm.ClassBadRequest, llm.ClassOf(err))
	// One initial attempt plus the configured retries.
	assert.Equal(t, int64(rc.cfg.StructuredOutputRetries+1), fake.calls.Load())
}

func TestGenerateStructured_ProviderErrorNotRetried(t *testing.T) {
	fake := &fakeLLM{generateFn: func(_ int64, _ string, _ *llm.GenerateInput) (*llm.Response, error) {
		return nil, &llm.Error{Class: llm.ClassRateLimit, Message: "slow down"}
	}}
	rc := newTestRunContext(fake, nil, nil)

	var out map[string]interface{}
	err := rc.GenerateStructured(context.Background(), "qualification", nil, scoreSchema, &out)
	require.Error(t, err)
	assert.Equal(t, llm.ClassRateLimit, llm.ClassOf(err))
	assert.Equal(t, int64(1), fake.calls.Load())
}

func TestGenerateStructured_InvalidSchema(t *testing.T) {
	rc := newTestRunContext(&fakeLLM{}, nil, nil)

	var out map[string]interface{}
	err := rc.GenerateStructured(context.Background(), "qualification", nil, []byte(`{not json`), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid result schema")
}

func TestValidateSchema(t *testing.T) {
	require.NoError(t, validateSchema(scoreSchema, map[string]interface{}{
		"score": 50.0, "tier": "warm",
	}))
	err := validateSchema(scoreSchema, map[string]interface{}{"score": 150.0, "tier": "warm"})
	require.Error(t, err)
}
