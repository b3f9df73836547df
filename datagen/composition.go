package datagen

import "github.com/erraggy/oastestgen/oas"

// resolveComposition normalizes a schema's composition keywords before any
// mode-specific reinterpretation: oneOf/anyOf select one branch uniformly,
// allOf merges all branches into one synthetic schema. Resolution loops
// because a selected or merged branch may itself be composed; the loop is
// bounded by the depth ceiling.
func (g *Generator) resolveComposition(run *genRun, schema *oas.Schema, path string) *oas.Schema {
	resolved := schema
	for i := 0; i < g.opts.MaxObjectDepth && resolved.HasComposition(); i++ {
		switch {
		case len(resolved.OneOf) > 0:
			pick := g.rng.IntN(len(resolved.OneOf))
			g.logger.Debug("selected composition branch", "path", path, "keyword", "oneOf", "branch", pick, "branches", len(resolved.OneOf))
			resolved = resolved.OneOf[pick]
		case len(resolved.AnyOf) > 0:
			pick := g.rng.IntN(len(resolved.AnyOf))
			g.logger.Debug("selected composition branch", "path", path, "keyword", "anyOf", "branch", pick, "branches", len(resolved.AnyOf))
			resolved = resolved.AnyOf[pick]
		case len(resolved.AllOf) > 0:
			g.logger.Debug("merging composition branches", "path", path, "keyword", "allOf", "branches", len(resolved.AllOf))
			resolved = g.mergeAllOf(resolved)
		}
		if resolved == nil {
			run.addIssue(SeverityWarning, path, "", "empty composition branch, generated null schema")
			return &oas.Schema{}
		}
	}
	if resolved.HasComposition() {
		run.addIssue(SeverityWarning, path, "", "composition nesting exceeds depth ceiling, using partial resolution")
	}
	return resolved
}

// mergeAllOf structurally merges a schema's own constraints with every allOf
// branch into a single synthetic schema. Results are cached by structural
// hash, so repeated generation over the same composed schema merges once.
func (g *Generator) mergeAllOf(schema *oas.Schema) *oas.Schema {
	key := g.hasher.Hash(schema)
	if cached, ok := g.merged.Get(key); ok {
		return cached
	}

	merged := &oas.Schema{}

	// The parent's own constraints participate as the first branch.
	own := *schema
	own.AllOf, own.AnyOf, own.OneOf = nil, nil, nil
	mergeInto(merged, &own)
	for _, branch := range schema.AllOf {
		if branch != nil {
			mergeInto(merged, branch)
		}
	}

	g.merged.Add(key, merged)
	return merged
}

// mergeInto folds src into dst: unions for properties and required,
// intersection-tightened bounds, first-wins for scalar keywords.
func mergeInto(dst, src *oas.Schema) {
	if dst.Type == nil {
		dst.Type = src.Type
	}
	if dst.Format == "" {
		dst.Format = src.Format
	}
	if dst.Pattern == "" {
		dst.Pattern = src.Pattern
	}
	if dst.Enum == nil {
		dst.Enum = src.Enum
	}
	if dst.Example == nil {
		dst.Example = src.Example
	}
	if dst.Items == nil {
		dst.Items = src.Items
	}
	if dst.AdditionalProperties == nil {
		dst.AdditionalProperties = src.AdditionalProperties
	}
	if dst.MultipleOf == nil {
		dst.MultipleOf = src.MultipleOf
	}
	dst.Nullable = dst.Nullable || src.Nullable
	dst.UniqueItems = dst.UniqueItems || src.UniqueItems

	// Lower bounds tighten upward, upper bounds tighten downward.
	if src.Minimum != nil && (dst.Minimum == nil || *src.Minimum > *dst.Minimum) {
		dst.Minimum = src.Minimum
	}
	if src.Maximum != nil && (dst.Maximum == nil || *src.Maximum < *dst.Maximum) {
		dst.Maximum = src.Maximum
	}
	if dst.ExclusiveMinimum == nil {
		dst.ExclusiveMinimum = src.ExclusiveMinimum
	}
	if dst.ExclusiveMaximum == nil {
		dst.ExclusiveMaximum = src.ExclusiveMaximum
	}
	if src.MinLength != nil && (dst.MinLength == nil || *src.MinLength > *dst.MinLength) {
		dst.MinLength = src.MinLength
	}
	if src.MaxLength != nil && (dst.MaxLength == nil || *src.MaxLength < *dst.MaxLength) {
		dst.MaxLength = src.MaxLength
	}
	if src.MinItems != nil && (dst.MinItems == nil || *src.MinItems > *dst.MinItems) {
		dst.MinItems = src.MinItems
	}
	if src.MaxItems != nil && (dst.MaxItems == nil || *src.MaxItems < *dst.MaxItems) {
		dst.MaxItems = src.MaxItems
	}

	// Properties union; later branches win per-name.
	if len(src.Properties) > 0 {
		if dst.Properties == nil {
			dst.Properties = make(map[string]*oas.Schema, len(src.Properties))
		}
		for name, prop := range src.Properties {
			dst.Properties[name] = prop
		}
	}

	// Required union, deduplicated.
	if len(src.Required) > 0 {
		seen := make(map[string]bool, len(dst.Required))
		for _, name := range dst.Required {
			seen[name] = true
		}
		for _, name := range src.Required {
			if !seen[name] {
				dst.Required = append(dst.Required, name)
				seen[name] = true
			}
		}
	}
}
