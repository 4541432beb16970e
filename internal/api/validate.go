package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionPayloadSchema constrains the question-bank response before it is
// decoded into domain types. The backend owns the bank; the client only
// refuses shapes it cannot render.
var questionPayloadSchema = map[string]any{
	"type":     "object",
	"required": []any{"success"},
	"properties": map[string]any{
		"success": map[string]any{"type": "boolean"},
		"error":   map[string]any{"type": "string"},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "type", "title"},
				"properties": map[string]any{
					"id":    map[string]any{"type": "integer", "minimum": 1},
					"type":  map[string]any{"enum": []any{"coding", "mcq", "text", "rating"}},
					"title": map[string]any{"type": "string", "minLength": 1},
					"description": map[string]any{
						"type": "string",
					},
					"options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"min":          map[string]any{"type": "integer"},
					"max":          map[string]any{"type": "integer"},
					"step":         map[string]any{"type": "integer", "minimum": 1},
					"max_length":   map[string]any{"type": "integer", "minimum": 0},
					"starter_code": map[string]any{"type": "string"},
					"language":     map[string]any{"type": "string"},
					"constraints": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"examples": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"input", "output"},
							"properties": map[string]any{
								"input":       map[string]any{"type": "string"},
								"output":      map[string]any{"type": "string"},
								"explanation": map[string]any{"type": "string"},
							},
						},
					},
				},
			},
		},
	},
}

var (
	compileQuestionSchema sync.Once
	compiledQuestions     *jsonschema.Schema
	compileErr            error
)

// validateQuestionPayload checks a raw question-bank response against the
// schema. Returns *ErrInvalidResponse on failure.
func validateQuestionPayload(raw json.RawMessage) error {
	compileQuestionSchema.Do(func() {
		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-payload.json"
		if err := c.AddResource(schemaURL, questionPayloadSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledQuestions, compileErr = c.Compile(schemaURL)
	})
	if compileErr != nil {
		return fmt.Errorf("compile question schema: %w", compileErr)
	}

	// The jsonschema library validates a parsed JSON value, not raw bytes.
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{Body: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	if err := compiledQuestions.Validate(parsed); err != nil {
		return &ErrInvalidResponse{Body: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}
