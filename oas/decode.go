package oas

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// SchemaFromYAML decodes a schema from YAML bytes. JSON is valid YAML, so this
// accepts JSON input as well.
func SchemaFromYAML(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("oas: failed to decode schema: %w", err)
	}
	return &s, nil
}

// SchemaFromJSON decodes a schema from JSON bytes.
func SchemaFromJSON(data []byte) (*Schema, error) {
	return SchemaFromYAML(data)
}

// ParameterFromYAML decodes a parameter object from YAML or JSON bytes.
func ParameterFromYAML(data []byte) (*Parameter, error) {
	var p Parameter
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("oas: failed to decode parameter: %w", err)
	}
	return &p, nil
}

// RequestBodyFromYAML decodes a request body object from YAML or JSON bytes.
func RequestBodyFromYAML(data []byte) (*RequestBody, error) {
	var b RequestBody
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("oas: failed to decode request body: %w", err)
	}
	return &b, nil
}
