package schemautil

import (
	"fmt"
	"hash"
	"hash/fnv"
	"reflect"
	"sort"
	"strconv"

	"github.com/erraggy/oastestgen/oas"
)

// SchemaHasher computes structural hashes for schemas.
// Structural hashes ignore metadata fields (title, description, example)
// and focus on fields that affect the schema's semantic meaning. The
// generator uses them as cache keys for composition merge results.
type SchemaHasher struct {
	visited map[uintptr]bool
}

// NewSchemaHasher creates a new SchemaHasher.
func NewSchemaHasher() *SchemaHasher {
	return &SchemaHasher{
		visited: make(map[uintptr]bool),
	}
}

// Hash computes a structural hash for a schema.
// Schemas with identical structural properties will have the same hash.
// Note: Hash collisions are possible; use deep comparison to verify equivalence.
func (h *SchemaHasher) Hash(schema *oas.Schema) uint64 {
	clear(h.visited) // Reset visited map without reallocating
	hasher := fnv.New64a()
	h.hashSchema(hasher, schema)
	return hasher.Sum64()
}

// hashSchema recursively hashes a schema's structural properties.
func (h *SchemaHasher) hashSchema(hasher hash.Hash64, schema *oas.Schema) {
	if schema == nil {
		h.writeString(hasher, "nil")
		return
	}

	// Check for circular reference
	ptr := reflect.ValueOf(schema).Pointer()
	if h.visited[ptr] {
		h.writeString(hasher, "circular")
		return
	}
	h.visited[ptr] = true
	defer func() { h.visited[ptr] = false }()

	// Type (handle both string and []any for OAS 3.1+)
	h.hashType(hasher, schema.Type)

	h.writeString(hasher, "format:")
	h.writeString(hasher, schema.Format)

	h.writeString(hasher, "pattern:")
	h.writeString(hasher, schema.Pattern)

	// Enum (order matters)
	if len(schema.Enum) > 0 {
		h.writeString(hasher, "enum:")
		for _, v := range schema.Enum {
			h.writeString(hasher, fmt.Sprintf("%v", v))
		}
	}

	// Required (sort for order-independent comparison)
	if len(schema.Required) > 0 {
		h.writeString(hasher, "required:")
		sorted := make([]string, len(schema.Required))
		copy(sorted, schema.Required)
		sort.Strings(sorted)
		for _, r := range sorted {
			h.writeString(hasher, r)
		}
	}

	// Properties (sorted by key for deterministic hashing)
	if len(schema.Properties) > 0 {
		h.writeString(hasher, "properties:")
		keys := make([]string, 0, len(schema.Properties))
		for k := range schema.Properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			h.writeString(hasher, k)
			h.hashSchema(hasher, schema.Properties[k])
		}
	}

	// AdditionalProperties (can be *Schema or bool)
	if schema.AdditionalProperties != nil {
		h.writeString(hasher, "additionalProperties:")
		h.hashSchemaOrBool(hasher, schema.AdditionalProperties)
	}

	if schema.Items != nil {
		h.writeString(hasher, "items:")
		h.hashSchema(hasher, schema.Items)
	}

	h.hashNumericConstraints(hasher, schema)
	h.hashStringConstraints(hasher, schema)
	h.hashArrayConstraints(hasher, schema)
	h.hashComposition(hasher, schema)

	if schema.Nullable {
		h.writeString(hasher, "nullable:true")
	}
}

// hashType handles both string and []any type values.
func (h *SchemaHasher) hashType(hasher hash.Hash64, t any) {
	h.writeString(hasher, "type:")
	switch v := t.(type) {
	case string:
		h.writeString(hasher, v)
	case []any:
		// Sort for consistent hashing
		types := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				types = append(types, s)
			}
		}
		sort.Strings(types)
		for _, s := range types {
			h.writeString(hasher, s)
		}
	case []string:
		sorted := make([]string, len(v))
		copy(sorted, v)
		sort.Strings(sorted)
		for _, s := range sorted {
			h.writeString(hasher, s)
		}
	}
}

// hashSchemaOrBool handles fields that can be *Schema or bool.
func (h *SchemaHasher) hashSchemaOrBool(hasher hash.Hash64, v any) {
	switch val := v.(type) {
	case *oas.Schema:
		h.hashSchema(hasher, val)
	case bool:
		if val {
			h.writeString(hasher, "true")
		} else {
			h.writeString(hasher, "false")
		}
	}
}

// hashNumericConstraints hashes numeric validation fields.
func (h *SchemaHasher) hashNumericConstraints(hasher hash.Hash64, schema *oas.Schema) {
	if schema.Minimum != nil {
		h.writeString(hasher, "minimum:"+strconv.FormatFloat(*schema.Minimum, 'g', -1, 64))
	}
	if schema.Maximum != nil {
		h.writeString(hasher, "maximum:"+strconv.FormatFloat(*schema.Maximum, 'g', -1, 64))
	}
	if schema.ExclusiveMinimum != nil {
		h.writeString(hasher, fmt.Sprintf("exclusiveMinimum:%v", schema.ExclusiveMinimum))
	}
	if schema.ExclusiveMaximum != nil {
		h.writeString(hasher, fmt.Sprintf("exclusiveMaximum:%v", schema.ExclusiveMaximum))
	}
	if schema.MultipleOf != nil {
		h.writeString(hasher, "multipleOf:"+strconv.FormatFloat(*schema.MultipleOf, 'g', -1, 64))
	}
}

// hashStringConstraints hashes string validation fields.
func (h *SchemaHasher) hashStringConstraints(hasher hash.Hash64, schema *oas.Schema) {
	if schema.MinLength != nil {
		h.writeString(hasher, "minLength:"+strconv.Itoa(*schema.MinLength))
	}
	if schema.MaxLength != nil {
		h.writeString(hasher, "maxLength:"+strconv.Itoa(*schema.MaxLength))
	}
}

// hashArrayConstraints hashes array validation fields.
func (h *SchemaHasher) hashArrayConstraints(hasher hash.Hash64, schema *oas.Schema) {
	if schema.MinItems != nil {
		h.writeString(hasher, "minItems:"+strconv.Itoa(*schema.MinItems))
	}
	if schema.MaxItems != nil {
		h.writeString(hasher, "maxItems:"+strconv.Itoa(*schema.MaxItems))
	}
	if schema.UniqueItems {
		h.writeString(hasher, "uniqueItems:true")
	}
}

// hashComposition hashes schema composition fields.
func (h *SchemaHasher) hashComposition(hasher hash.Hash64, schema *oas.Schema) {
	if len(schema.AllOf) > 0 {
		h.writeString(hasher, "allOf:")
		for _, s := range schema.AllOf {
			h.hashSchema(hasher, s)
		}
	}
	if len(schema.AnyOf) > 0 {
		h.writeString(hasher, "anyOf:")
		for _, s := range schema.AnyOf {
			h.hashSchema(hasher, s)
		}
	}
	if len(schema.OneOf) > 0 {
		h.writeString(hasher, "oneOf:")
		for _, s := range schema.OneOf {
			h.hashSchema(hasher, s)
		}
	}
}

// writeString writes a string to the hash.
func (h *SchemaHasher) writeString(hasher hash.Hash64, s string) {
	_, _ = hasher.Write([]byte(s))
}
