package agent

import (
	"context"
	"fmt"
)

// ToolResult is the well-defined outcome of a tool call: a payload on
// success or a reason on failure.
type ToolResult struct {
	Success bool                   `json:"success"`
	Payload map[string]interface{} `json:"payload,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// ToolSuccess builds a successful result.
func ToolSuccess(payload map[string]interface{}) ToolResult {
	return ToolResult{Success: true, Payload: payload}
}

// ToolError builds a failed result.
func ToolError(reason string) ToolResult {
	return ToolResult{Error: reason}
}

// ToolFunc executes one tool call. Tools that invoke providers do so
// through the RunContext so the call traverses the routed resilience stack.
type ToolFunc func(ctx context.Context, rc *RunContext, input map[string]interface{}) ToolResult

// Tool is a named, typed function an agent node may call.
type Tool struct {
	Name        string
	Description string
	// InputSchema is a JSON Schema document validating the call input.
	InputSchema []byte
	Run         ToolFunc
}

// ToolRegistry resolves tool names to implementations.
type ToolRegistry struct {
	tools map[string]*Tool
}

// NewToolRegistry creates a registry from the given tools.
func NewToolRegistry(tools ...*Tool) *ToolRegistry {
	r := &ToolRegistry{tools: make(map[string]*Tool, len(tools))}
	for _, tool := range tools {
		r.tools[tool.Name] = tool
	}
	return r
}

// Register adds a tool, replacing any previous tool of the same name.
func (r *ToolRegistry) Register(tool *Tool) {
	r.tools[tool.Name] = tool
}

// Get resolves a tool by name.
func (r *ToolRegistry) Get(name string) (*Tool, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}
	return tool, nil
}

// Has reports whether a tool is registered.
func (r *ToolRegistry) Has(name string) bool {
	_, ok := r.tools[name]
	return ok
}
