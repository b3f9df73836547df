// Package schemautil provides utilities for working with OpenAPI schema types.
//
// This package centralizes type assertion patterns for OAS version-specific
// fields, particularly handling the differences between OAS 3.0 (string types)
// and OAS 3.1+ (array types for nullable support), and structural hashing used
// for caching.
package schemautil

import "github.com/erraggy/oastestgen/oas"

// GetSchemaTypes returns the type(s) from a schema, handling both
// string (OAS 3.0) and []any (OAS 3.1+) representations.
//
// Examples:
//   - OAS 3.0: {"type": "string"} returns ["string"]
//   - OAS 3.1: {"type": ["string", "null"]} returns ["string", "null"]
func GetSchemaTypes(schema *oas.Schema) []string {
	if schema == nil {
		return nil
	}
	switch t := schema.Type.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		result := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok {
				result = append(result, s)
			}
		}
		return result
	case []string:
		return t
	}
	return nil
}

// GetPrimaryType returns the first non-null type from a schema.
// This is useful for OAS 3.1+ where type arrays may include "null".
//
// Returns an empty string if the schema is nil or has no types.
func GetPrimaryType(schema *oas.Schema) string {
	types := GetSchemaTypes(schema)
	for _, t := range types {
		if t != "null" {
			return t
		}
	}
	if len(types) > 0 {
		return types[0]
	}
	return ""
}

// IsNullable checks if the schema allows null values, via either the OAS 3.0
// nullable flag or "null" in an OAS 3.1+ type array.
func IsNullable(schema *oas.Schema) bool {
	if schema == nil {
		return false
	}
	if schema.Nullable {
		return true
	}
	for _, t := range GetSchemaTypes(schema) {
		if t == "null" {
			return true
		}
	}
	return false
}

// HasType checks if the schema includes the specified type.
func HasType(schema *oas.Schema, targetType string) bool {
	for _, t := range GetSchemaTypes(schema) {
		if t == targetType {
			return true
		}
	}
	return false
}

// ExclusiveBound interprets an exclusiveMinimum/exclusiveMaximum value against
// its paired bound. OAS 3.0 uses a boolean flag qualifying minimum/maximum;
// OAS 3.1+ uses a standalone number.
//
// Returns the effective exclusive bound and whether one is present.
func ExclusiveBound(exclusive any, paired *float64) (float64, bool) {
	switch v := exclusive.(type) {
	case bool:
		if v && paired != nil {
			return *paired, true
		}
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
