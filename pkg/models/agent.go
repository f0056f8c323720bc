package models

import "time"

// InvokeAgentRequest starts an agent run.
type InvokeAgentRequest struct {
	AgentName string                 `json:"agent_name" binding:"required"`
	LeadID    string                 `json:"lead_id,omitempty"`
	Input     map[string]interface{} `json:"input,omitempty"`
	UserID    string                 `json:"user_id,omitempty"`

	// DeadlineSeconds caps the run; 0 means the configured default.
	DeadlineSeconds int `json:"deadline_seconds,omitempty"`

	// Stream requests chunk delivery over the streaming fabric.
	Stream bool `json:"stream,omitempty"`

	// StreamMode selects delivery granularity: "tokens" (default),
	// "messages", or "events".
	StreamMode string `json:"stream_mode,omitempty"`

	// MaxLatencyMS and MaxCostUSD bound provider selection for this run.
	MaxLatencyMS int64   `json:"max_latency_ms,omitempty"`
	MaxCostUSD   float64 `json:"max_cost_usd,omitempty"`

	// ForcedProvider pins the run to one provider tag when admissible.
	ForcedProvider string `json:"forced_provider,omitempty"`

	// RequiresVision restricts routing to vision-capable providers.
	RequiresVision bool `json:"requires_vision,omitempty"`
}

// Stream delivery modes for InvokeAgentRequest.StreamMode.
const (
	StreamModeTokens   = "tokens"
	StreamModeMessages = "messages"
	StreamModeEvents   = "events"
)

// ResumeAgentRequest resumes a suspended execution with external input.
type ResumeAgentRequest struct {
	Input map[string]interface{} `json:"input,omitempty"`
}

// CreateExecutionRequest creates the persistence record for an agent run.
type CreateExecutionRequest struct {
	ExecutionID string
	AgentName   string
	LeadID      string
}

// ExecutionState is the externally visible state of an agent run.
type ExecutionState struct {
	ExecutionID   string     `json:"execution_id"`
	AgentName     string     `json:"agent_name"`
	LeadID        string     `json:"lead_id,omitempty"`
	Status        string     `json:"status"`
	Step          int        `json:"step"`
	Node          string     `json:"node,omitempty"`
	Suspended     bool       `json:"suspended"`
	SuspendReason string     `json:"suspend_reason,omitempty"`
	CostUSD       float64    `json:"cost_usd"`
	LatencyMS     *int       `json:"latency_ms,omitempty"`
	ErrorMessage  string     `json:"error_message,omitempty"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// CheckpointRecord is a checkpoint as read back from the store.
type CheckpointRecord struct {
	ExecutionID   string
	Step          int
	Node          string
	State         []byte
	Suspended     bool
	SuspendReason string
	CreatedAt     time.Time
}

// CreateCheckpointRequest persists graph state before a node runs.
type CreateCheckpointRequest struct {
	ExecutionID   string
	Step          int
	Node          string
	State         []byte
	Suspended     bool
	SuspendReason string
}
