package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// stateSchema is the JSON schema a persisted session blob must satisfy
// before the engine will resume from it. A blob written by an older or
// corrupted writer that fails validation is discarded.
var stateSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"session_id":    map[string]any{"type": "string", "minLength": 1},
		"learner_id":    map[string]any{"type": "string", "minLength": 1},
		"set_id":        map[string]any{"type": "string", "minLength": 1},
		"current_index": map[string]any{"type": "integer", "minimum": 0},
		"completed": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"item_id": map[string]any{"type": "string", "minLength": 1},
					"correct": map[string]any{"type": "boolean"},
					"time_ms": map[string]any{"type": "integer", "minimum": 0},
				},
				"required":             []any{"item_id", "correct"},
				"additionalProperties": false,
			},
		},
		"started_at": map[string]any{"type": "string"},
		"updated_at": map[string]any{"type": "string"},
	},
	"required":             []any{"session_id", "learner_id", "set_id", "current_index"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		b, err := json.Marshal(stateSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal session schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse session schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://session-state.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add session schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// Validate checks a persisted session blob (already unmarshalled to a JSON
// value) against the session schema.
func Validate(blob any) error {
	sch, err := compiled()
	if err != nil {
		return err
	}
	if err := sch.Validate(blob); err != nil {
		return fmt.Errorf("session blob rejected: %w", err)
	}
	return nil
}
