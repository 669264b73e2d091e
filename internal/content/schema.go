package content

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// countriesSchema is the JSON Schema for countries.json.
var countriesSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":        map[string]any{"type": "string", "minLength": 1},
			"name":      map[string]any{"type": "string", "minLength": 1},
			"flagEmoji": map[string]any{"type": "string", "minLength": 1},
			"landmarks": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "minLength": 1},
			},
			"visitOrder": map[string]any{"type": "integer", "minimum": 1},
		},
		"required":             []any{"id", "name", "flagEmoji", "landmarks", "visitOrder"},
		"additionalProperties": false,
	},
}

// landmarksSchema is the JSON Schema for landmarks.json.
var landmarksSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":               map[string]any{"type": "string", "minLength": 1},
			"displayName":      map[string]any{"type": "string", "minLength": 1},
			"imageName":        map[string]any{"type": "string"},
			"countryId":        map[string]any{"type": "string", "minLength": 1},
			"countryName":      map[string]any{"type": "string", "minLength": 1},
			"countryFlagEmoji": map[string]any{"type": "string"},
			"funFact":          map[string]any{"type": "string"},
		},
		"required":             []any{"id", "displayName", "countryId", "countryName"},
		"additionalProperties": false,
	},
}

// validateAgainstSchema checks raw JSON against a schema definition.
// The jsonschema library expects parsed JSON values, not raw bytes.
func validateAgainstSchema(name string, definition map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	defBytes, err := json.Marshal(definition)
	if err != nil {
		return fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
