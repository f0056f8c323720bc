package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/ScientiaCapital/sales-agent/pkg/llm"
)

// compileSchema compiles a JSON Schema document.
func compileSchema(schemaBytes []byte) (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal(schemaBytes, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// validateSchema validates an already-decoded value against a schema document.
func validateSchema(schemaBytes []byte, value any) error {
	schema, err := compileSchema(schemaBytes)
	if err != nil {
		return err
	}
	return schema.Validate(value)
}

// extractJSON strips markdown code fences and surrounding prose, returning
// the first top-level JSON object or array in the text. Models wrap JSON in
// fences often enough that this cannot be skipped.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx >= 0 {
		rest := text[idx+3:]
		rest = strings.TrimPrefix(rest, "json")
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	if start := strings.IndexAny(text, "{["); start >= 0 {
		return text[start:]
	}
	return text
}

// GenerateStructured performs a routed call whose answer must satisfy the
// given JSON Schema. Validation failures are retried with a corrective
// reprompt up to StructuredOutputRetries times; exhaustion is reported as
// bad_request. On success the value is unmarshalled into out.
func (rc *RunContext) GenerateStructured(ctx context.Context, task string, messages []llm.Message, schemaBytes []byte, out interface{}) error {
	schema, err := compileSchema(schemaBytes)
	if err != nil {
		return fmt.Errorf("invalid result schema: %w", err)
	}

	conv := make([]llm.Message, len(messages), len(messages)+4)
	copy(conv, messages)

	attempts := rc.cfg.StructuredOutputRetries + 1
	var lastErr error
	for i := 0; i < attempts; i++ {
		resp, err := rc.Generate(ctx, task, conv)
		if err != nil {
			return err
		}

		raw := extractJSON(resp.Text)
		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			lastErr = fmt.Errorf("response is not valid JSON: %w", err)
		} else if err := schema.Validate(value); err != nil {
			lastErr = err
		} else {
			return json.Unmarshal([]byte(raw), out)
		}

		// Corrective reprompt: show the model its answer and the failure.
		conv = append(conv,
			llm.Message{Role: llm.RoleAssistant, Content: resp.Text},
			llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf(
				"Your previous answer failed validation: %v. Reply with only a JSON value matching the required schema.", lastErr)},
		)
	}

	return &llm.Error{
		Class:   llm.ClassBadRequest,
		Message: fmt.Sprintf("structured output failed validation after %d attempts: %v", attempts, lastErr),
	}
}
