package agent

import (
	"context"
	"fmt"

	"github.com/ScientiaCapital/sales-agent/pkg/llm"
)

// Linear is a fixed four-phase agent: preprocess, prompt build, one routed
// provider call validated against the result schema, postprocess.
type Linear struct {
	AgentName string
	Task      string

	// ResultSchema is the JSON Schema the provider's answer must satisfy.
	ResultSchema []byte

	// Preprocess may normalize or enrich the input. Optional.
	Preprocess func(ctx context.Context, rc *RunContext, input map[string]interface{}) (map[string]interface{}, error)

	// BuildPrompt turns the (preprocessed) input into the conversation.
	BuildPrompt func(input map[string]interface{}) ([]llm.Message, error)

	// Postprocess may transform the validated result. Optional.
	Postprocess func(ctx context.Context, rc *RunContext, result map[string]interface{}) (map[string]interface{}, error)
}

// Name implements Agent.
func (a *Linear) Name() string { return a.AgentName }

// TaskClass implements Agent.
func (a *Linear) TaskClass() string { return a.Task }

// Execute implements Agent.
func (a *Linear) Execute(ctx context.Context, rc *RunContext, input map[string]interface{}) (map[string]interface{}, error) {
	if a.BuildPrompt == nil {
		return nil, fmt.Errorf("agent %s: BuildPrompt is required", a.AgentName)
	}

	if a.Preprocess != nil {
		var err error
		input, err = a.Preprocess(ctx, rc, input)
		if err != nil {
			return nil, fmt.Errorf("preprocess: %w", err)
		}
	}

	messages, err := a.BuildPrompt(input)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	var result map[string]interface{}
	if len(a.ResultSchema) > 0 {
		if err := rc.GenerateStructured(ctx, a.Task, messages, a.ResultSchema, &result); err != nil {
			return nil, err
		}
	} else {
		resp, err := rc.GenerateStream(ctx, a.Task, messages)
		if err != nil {
			return nil, err
		}
		result = map[string]interface{}{"text": resp.Text}
	}

	if a.Postprocess != nil {
		result, err = a.Postprocess(ctx, rc, result)
		if err != nil {
			return nil, fmt.Errorf("postprocess: %w", err)
		}
	}
	return result, nil
}
