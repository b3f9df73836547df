package datagen

import (
	"reflect"
	"sort"

	"github.com/erraggy/oastestgen/oas"
)

// uniqueRetryFactor bounds rejection sampling for uniqueItems:
// attempts = MaxArrayItems * uniqueRetryFactor.
const uniqueRetryFactor = 10

// arrayValue synthesizes an array. Element generation recurses through the
// full pipeline, so composition and depth guarding apply per element.
func (g *Generator) arrayValue(run *genRun, schema *oas.Schema, path string) []any {
	items := schema.Items
	if items == nil {
		run.addIssue(SeverityWarning, path, "items", "missing items schema, generated string elements")
		items = &oas.Schema{Type: "string"}
	}

	lo := 0
	if schema.MinItems != nil {
		lo = *schema.MinItems
	}
	hi := g.opts.MaxArrayItems
	if schema.MaxItems != nil && *schema.MaxItems < hi {
		hi = *schema.MaxItems
	}
	if hi < lo {
		hi = lo
	}

	var n int
	switch {
	case run.mode.atLowerBound():
		n = lo
	case run.mode.atUpperBound():
		n = hi
	default:
		n = lo + g.rng.IntN(hi-lo+1)
	}

	itemPath := joinPath(path, "items")
	result := make([]any, 0, n)

	if !schema.UniqueItems {
		for i := 0; i < n; i++ {
			result = append(result, g.generate(run, items, itemPath))
		}
		return result
	}

	// Rejection sampling: regenerate on duplicates up to a bounded attempt
	// count, then accept duplicates. Low-cardinality item schemas (booleans,
	// small enums) can exhaust the attempts; that limitation is reported, not
	// looped on.
	attempts := g.opts.MaxArrayItems * uniqueRetryFactor
	for len(result) < n && attempts > 0 {
		candidate := g.generate(run, items, itemPath)
		if containsValue(result, candidate) {
			attempts--
			continue
		}
		result = append(result, candidate)
	}
	if len(result) < n {
		run.addIssue(SeverityWarning, path, "uniqueItems", "item schema cardinality too low, accepted duplicates")
		g.logger.Debug("uniqueItems retries exhausted", "path", path, "wanted", n, "unique", len(result))
		for len(result) < n {
			result = append(result, g.generate(run, items, itemPath))
		}
	}
	return result
}

// containsValue reports whether list already holds a deep-equal value.
func containsValue(list []any, v any) bool {
	for _, existing := range list {
		if reflect.DeepEqual(existing, v) {
			return true
		}
	}
	return false
}

// objectValue synthesizes an object. Required properties are always present;
// optional ones depend on the mode and the IncludeUndefined option.
// Properties are visited in sorted name order so a given seed always draws
// from the random source in the same sequence.
func (g *Generator) objectValue(run *genRun, schema *oas.Schema, path string) map[string]any {
	result := make(map[string]any, len(schema.Properties))
	if len(schema.Properties) == 0 {
		return result
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !g.includeProperty(run, required[name]) {
			continue
		}
		propPath := joinPath(path, name)
		result[name] = g.generate(run, schema.Properties[name], propPath)
		run.fields = append(run.fields, propPath)
	}
	return result
}

// includeProperty decides whether a declared property is generated.
func (g *Generator) includeProperty(run *genRun, isRequired bool) bool {
	if isRequired || !g.opts.IncludeUndefined {
		return true
	}
	switch {
	case run.mode.atLowerBound():
		return false // smallest admissible object carries required fields only
	case run.mode.atUpperBound():
		return true
	default:
		return g.rng.Bool()
	}
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + "." + segment
}
