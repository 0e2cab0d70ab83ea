package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// NewReflector returns the reflector used for the capsgat.yml schema.
// Field names follow the yaml tags.
func NewReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}
}

// Schema reflects the JSON schema of Config.
func Schema(r *jsonschema.Reflector) *jsonschema.Schema {
	schema := r.Reflect(&Config{})
	schema.Title = "CapsGAT Configuration"
	schema.Description = "Schema for capsgat.yml."
	return schema
}

// SchemaJSON renders the schema with two-space indentation.
func SchemaJSON(r *jsonschema.Reflector) ([]byte, error) {
	data, err := json.MarshalIndent(Schema(r), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
