package agent

import "log/slog"

// Tracer receives runtime execution events. Implementations must be safe
// for concurrent use. The runtime works identically without one.
type Tracer interface {
	NodeEnter(executionID string, step int, node string)
	NodeExit(executionID string, step int, node string, err error)
	ToolCall(executionID, tool string, success bool)
	ProviderCall(executionID, task string, err error)
}

// NopTracer discards all events.
type NopTracer struct{}

func (NopTracer) NodeEnter(string, int, string) {}
func (NopTracer) NodeExit(string, int, string, error) {}
func (NopTracer) ToolCall(string, string, bool) {}
func (NopTracer) ProviderCall(string, string, error) {}

// SlogTracer logs events at debug level.
type SlogTracer struct{}

func (SlogTracer) NodeEnter(executionID string, step int, node string) {
	slog.Debug("Node enter", "execution_id", executionID, "step", step, "node", node)
}

func (SlogTracer) NodeExit(executionID string, step int, node string, err error) {
	if err != nil {
		slog.Debug("Node exit", "execution_id", executionID, "step", step, "node", node, "error", err)
		return
	}
	slog.Debug("Node exit", "execution_id", executionID, "step", step, "node", node)
}

func (SlogTracer) ToolCall(executionID, tool string, success bool) {
	slog.Debug("Tool call", "execution_id", executionID, "tool", tool, "success", success)
}

func (SlogTracer) ProviderCall(executionID, task string, err error) {
	if err != nil {
		slog.Debug("Provider call", "execution_id", executionID, "task", task, "error", err)
		return
	}
	slog.Debug("Provider call", "execution_id", executionID, "task", task)
}
