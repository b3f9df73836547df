// Package testutil provides test utilities and schema fixtures for unit tests.
package testutil

import (
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oastestgen/oas"
)

// NewPetSchema creates an object schema with common features for testing:
// required and optional properties, formats, and nested arrays.
func NewPetSchema() *oas.Schema {
	return &oas.Schema{
		Type:     "object",
		Required: []string{"id", "name"},
		Properties: map[string]*oas.Schema{
			"id":   {Type: "integer", Format: "int64", Minimum: oas.Float64(1)},
			"name": {Type: "string", MinLength: oas.Int(1), MaxLength: oas.Int(30)},
			"tag":  {Type: "string"},
			"photoUrls": {
				Type:     "array",
				MinItems: oas.Int(0),
				MaxItems: oas.Int(3),
				Items:    &oas.Schema{Type: "string", Format: "uri"},
			},
			"status": {Type: "string", Enum: []any{"available", "pending", "sold"}},
		},
	}
}

// NewBoundedNumberSchema creates a number schema with the given inclusive bounds.
func NewBoundedNumberSchema(minimum, maximum float64) *oas.Schema {
	return &oas.Schema{
		Type:    "number",
		Minimum: oas.Float64(minimum),
		Maximum: oas.Float64(maximum),
	}
}

// NewSelfReferentialSchema creates an object schema that references itself
// through a property, for recursion-guard testing.
func NewSelfReferentialSchema() *oas.Schema {
	node := &oas.Schema{
		Type:     "object",
		Required: []string{"value", "next"},
		Properties: map[string]*oas.Schema{
			"value": {Type: "integer"},
		},
	}
	node.Properties["next"] = node
	return node
}

// MustSchemaFromYAML decodes a schema from YAML, failing the test on error.
func MustSchemaFromYAML(t *testing.T, data string) *oas.Schema {
	t.Helper()
	var s oas.Schema
	if err := yaml.Unmarshal([]byte(data), &s); err != nil {
		t.Fatalf("failed to decode schema fixture: %v", err)
	}
	return &s
}
