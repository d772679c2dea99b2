// Package tools publishes the assistant's operations as named tools with a
// JSON Schema for their arguments, the shape tool-calling hosts expect.
package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/dharmasatrya/travelassistant/internal/assistant"
	"github.com/dharmasatrya/travelassistant/internal/models"
)

// Tool is one callable operation. Name, Description and InputSchema make up
// the manifest entry.
type Tool struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	InputSchema map[string]any `json:"input_schema" yaml:"input_schema"`

	compiled *jsonschema.Schema
	run      func(ctx context.Context, raw []byte) (any, error)
}

// New wraps fn as a tool. Arguments are checked against schema, decoded into I
// and the result is reduced to the success or error envelope.
func New[I, O any](name, description string, schema map[string]any, fn func(ctx context.Context, input I) (*O, error)) (*Tool, error) {
	compiled, err := compileSchema(name, schema)
	if err != nil {
		return nil, err
	}

	return &Tool{
		Name:        name,
		Description: description,
		InputSchema: schema,
		compiled:    compiled,
		run: func(ctx context.Context, raw []byte) (any, error) {
			var input I
			if err := json.Unmarshal(raw, &input); err != nil {
				return nil, invalidArguments(name, err)
			}
			out, err := fn(ctx, input)
			return assistant.Envelope(out, err), err
		},
	}, nil
}

// Call validates raw and runs the tool. The returned value is always an
// envelope; a non-nil error carries the cause behind an error envelope.
func (t *Tool) Call(ctx context.Context, raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return errorEnvelope(invalidArguments(t.Name, err))
	}
	if err := t.compiled.Validate(inst); err != nil {
		return errorEnvelope(invalidArguments(t.Name, err))
	}

	result, err := t.run(ctx, raw)
	if result == nil {
		return errorEnvelope(err)
	}
	return result, err
}

func compileSchema(name string, raw map[string]any) (*jsonschema.Schema, error) {
	schemaJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema for %s: %w", name, err)
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(schemaJSON)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema for %s: %w", name, err)
	}

	url := name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource for %s: %w", name, err)
	}

	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema for %s: %w", name, err)
	}
	return compiled, nil
}

// ToolError ties a failure to the tool it happened in.
type ToolError struct {
	Tool string
	Err  error
}

func (e *ToolError) Error() string {
	return e.Tool + ": " + e.Err.Error()
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

func NewToolError(tool string, err error) *ToolError {
	return &ToolError{
		Tool: tool,
		Err:  err,
	}
}

func invalidArguments(tool string, err error) error {
	return NewToolError(tool, fmt.Errorf("%w: %v", models.ErrInvalidInput, err))
}

func errorEnvelope(err error) (any, error) {
	return models.ErrorResponse{Error: err.Error()}, err
}
