package datagen

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/erraggy/oastestgen/generrors"
	"github.com/erraggy/oastestgen/internal/issues"
	"github.com/erraggy/oastestgen/internal/schemautil"
	"github.com/erraggy/oastestgen/internal/severity"
	"github.com/erraggy/oastestgen/oas"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates constructs handled by a documented fallback
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates schema problems that prevented faithful generation
	SeverityError = severity.SeverityError
	// SeverityCritical indicates constructs that cannot be generated
	SeverityCritical = severity.SeverityCritical
)

// Issue represents a single generation issue or limitation
type Issue = issues.Issue

// mergeCacheSize bounds the LRU cache of allOf merge results.
const mergeCacheSize = 128

// GenerationResult wraps one generated value with its metadata.
// Results are produced fresh per call and owned by the caller.
type GenerationResult struct {
	// Value is the generated value
	Value any
	// Mode is the generation mode that produced the value
	Mode GenerationMode
	// Metadata describes how the value was produced
	Metadata GenerationMetadata
}

// GenerationMetadata carries provenance for a generated value.
type GenerationMetadata struct {
	// Schema is the schema the value was generated from
	Schema *oas.Schema
	// Constraints lists the schema constraints that were in effect
	Constraints map[string]any
	// Duration is the time taken to generate the value
	Duration time.Duration
	// GeneratedFields lists the object property paths that were populated
	GeneratedFields []string
	// Issues contains limitations and lenient fallbacks hit during generation
	Issues []Issue
}

// WarningCount returns the number of warning-severity issues.
func (r *GenerationResult) WarningCount() int {
	return issues.CountBySeverity(r.Metadata.Issues, severity.SeverityWarning)
}

// GenerationStatistics is an introspection snapshot of a generator.
type GenerationStatistics struct {
	// Options is the generator's immutable configuration
	Options Options
	// StackSize is the current recursion depth (0 between calls)
	StackSize int
	// MaxDepthReached is the deepest recursion observed since the last reseed
	MaxDepthReached int
}

// Generator produces schema-constrained test data. A generator owns its
// random state and depth counter; it must not be shared across concurrently
// executing calls without external synchronization.
type Generator struct {
	opts   Options
	logger Logger
	rng    *RandomSource
	hasher *schemautil.SchemaHasher
	merged *lru.Cache[uint64, *oas.Schema]

	depth           int
	maxDepthReached int
}

// New creates a Generator from functional options.
//
// Example:
//
//	gen, err := datagen.New(
//	    datagen.WithSeed(12345),
//	    datagen.WithMaxArrayItems(5),
//	)
func New(opts ...Option) (*Generator, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("datagen: invalid options: %w", err)
	}

	merged, err := lru.New[uint64, *oas.Schema](mergeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("datagen: failed to create merge cache: %w", err)
	}

	return &Generator{
		opts:   cfg.opts,
		logger: cfg.logger,
		rng:    NewRandomSource(cfg.opts.Seed),
		hasher: schemautil.NewSchemaHasher(),
		merged: merged,
	}, nil
}

// Options returns the generator's immutable configuration.
func (g *Generator) Options() Options {
	return g.opts
}

// ResetSeed reseeds the random source deterministically and discards the
// depth counters from any prior call. The configured options are unchanged.
func (g *Generator) ResetSeed(seed int64) {
	g.rng.Reseed(seed)
	g.depth = 0
	g.maxDepthReached = 0
}

// Statistics returns an introspection snapshot. It has no side effects.
func (g *Generator) Statistics() GenerationStatistics {
	return GenerationStatistics{
		Options:         g.opts,
		StackSize:       g.depth,
		MaxDepthReached: g.maxDepthReached,
	}
}

// genRun accumulates per-call state: the governing mode, populated field
// paths, and issues hit along the way.
type genRun struct {
	mode   GenerationMode
	fields []string
	issues []Issue
}

func (run *genRun) addIssue(sev Severity, path, field, msg string) {
	run.issues = append(run.issues, Issue{
		Path:     path,
		Field:    field,
		Message:  msg,
		Severity: sev,
	})
}

// GenerateFromSchema generates one value governed by mode. An empty mode
// defaults to ModeValid. Malformed schemas never fail: the engine produces a
// best-effort value and records issues in the result metadata. Unexpected
// producer failures are recovered and rewrapped as *generrors.GenerationError;
// partial results are never returned.
func (g *Generator) GenerateFromSchema(schema *oas.Schema, mode GenerationMode) (result *GenerationResult, err error) {
	if mode == "" {
		mode = ModeValid
	}
	if !mode.IsValid() {
		return nil, &generrors.ConfigError{Option: "mode", Value: string(mode), Message: "unknown generation mode"}
	}
	if !g.opts.GenerateEdgeCases && mode != ModeValid && mode != ModeInvalid {
		g.logger.Debug("edge case generation disabled, answering as valid", "requested", string(mode))
		mode = ModeValid
	}

	defer func() {
		if r := recover(); r != nil {
			g.depth = 0
			result = nil
			err = &generrors.GenerationError{
				Mode:    string(mode),
				Message: fmt.Sprintf("%v", r),
			}
		}
	}()

	start := time.Now()
	run := &genRun{mode: mode}
	g.depth = 0
	value := g.generate(run, schema, "")

	return &GenerationResult{
		Value: value,
		Mode:  mode,
		Metadata: GenerationMetadata{
			Schema:          schema,
			Constraints:     constraintsOf(schema),
			Duration:        time.Since(start),
			GeneratedFields: run.fields,
			Issues:          run.issues,
		},
	}, nil
}

// generate is the single pipeline every mode flows through: depth guard,
// composition resolution, example/enum precedence, then per-type synthesis.
func (g *Generator) generate(run *genRun, schema *oas.Schema, path string) any {
	if schema == nil {
		run.addIssue(SeverityWarning, path, "", "missing schema, generated null")
		return nil
	}

	g.depth++
	if g.depth > g.maxDepthReached {
		g.maxDepthReached = g.depth
	}
	defer func() { g.depth-- }()

	if g.depth > g.opts.MaxObjectDepth {
		run.addIssue(SeverityInfo, path, "", "depth ceiling reached, generated null")
		g.logger.Debug("depth ceiling reached", "path", path, "maxObjectDepth", g.opts.MaxObjectDepth)
		return nil
	}

	if schema.HasComposition() {
		schema = g.resolveComposition(run, schema, path)
	}

	if run.mode == ModeValid && g.opts.UseExamples && schema.Example != nil {
		return schema.Example
	}

	primary := schemautil.GetPrimaryType(schema)

	if run.mode == ModeInvalid {
		return g.invalidValue(run, primary, path)
	}

	if run.mode == ModeValid && g.opts.IncludeNull && schemautil.IsNullable(schema) && g.rng.Next() < 0.1 {
		return nil
	}

	if len(schema.Enum) > 0 {
		return g.enumValue(run, schema.Enum)
	}

	switch primary {
	case "string":
		return g.stringValue(run, schema, path)
	case "number":
		return g.numberValue(run, schema, false)
	case "integer":
		return g.numberValue(run, schema, true)
	case "boolean":
		return g.boolValue(run)
	case "array":
		return g.arrayValue(run, schema, path)
	case "object":
		return g.objectValue(run, schema, path)
	case "null":
		return nil
	case "":
		// Incomplete schemas are common in the wild; infer what we can.
		switch {
		case len(schema.Properties) > 0:
			run.addIssue(SeverityWarning, path, "type", "missing type, inferred object from properties")
			return g.objectValue(run, schema, path)
		case schema.Items != nil:
			run.addIssue(SeverityWarning, path, "type", "missing type, inferred array from items")
			return g.arrayValue(run, schema, path)
		default:
			run.addIssue(SeverityWarning, path, "type", "missing type, generated string")
			return g.stringValue(run, schema, path)
		}
	default:
		run.addIssue(SeverityWarning, path, "type", fmt.Sprintf("unknown type %q, generated string", primary))
		return g.stringValue(run, schema, path)
	}
}

// enumValue picks from the enum, bypassing type-specific synthesis.
// Bound-targeting modes pick the first or last member so the choice is
// deterministic for a given schema.
func (g *Generator) enumValue(run *genRun, enum []any) any {
	switch {
	case run.mode.atLowerBound():
		return enum[0]
	case run.mode.atUpperBound():
		return enum[len(enum)-1]
	default:
		return enum[g.rng.IntN(len(enum))]
	}
}

// invalidValue returns a value of the wrong shape for the declared type.
func (g *Generator) invalidValue(run *genRun, primary, path string) any {
	switch primary {
	case "string":
		return 12345
	case "number", "integer":
		return "not-a-number"
	case "boolean":
		return "not-a-boolean"
	case "array":
		return map[string]any{"unexpected": "object"}
	case "object":
		return "not-an-object"
	default:
		// An untyped schema admits anything; no wrong-shape value exists.
		run.addIssue(SeverityWarning, path, "type", "untyped schema has no invalid shape, generated null")
		return nil
	}
}

// constraintsOf extracts the constraints a schema carried, for result metadata.
func constraintsOf(schema *oas.Schema) map[string]any {
	constraints := make(map[string]any)
	if schema == nil {
		return constraints
	}
	if schema.Minimum != nil {
		constraints["minimum"] = *schema.Minimum
	}
	if schema.Maximum != nil {
		constraints["maximum"] = *schema.Maximum
	}
	if schema.ExclusiveMinimum != nil {
		constraints["exclusiveMinimum"] = schema.ExclusiveMinimum
	}
	if schema.ExclusiveMaximum != nil {
		constraints["exclusiveMaximum"] = schema.ExclusiveMaximum
	}
	if schema.MultipleOf != nil {
		constraints["multipleOf"] = *schema.MultipleOf
	}
	if schema.MinLength != nil {
		constraints["minLength"] = *schema.MinLength
	}
	if schema.MaxLength != nil {
		constraints["maxLength"] = *schema.MaxLength
	}
	if schema.Pattern != "" {
		constraints["pattern"] = schema.Pattern
	}
	if schema.Format != "" {
		constraints["format"] = schema.Format
	}
	if schema.MinItems != nil {
		constraints["minItems"] = *schema.MinItems
	}
	if schema.MaxItems != nil {
		constraints["maxItems"] = *schema.MaxItems
	}
	if schema.UniqueItems {
		constraints["uniqueItems"] = true
	}
	if len(schema.Enum) > 0 {
		constraints["enum"] = schema.Enum
	}
	if len(schema.Required) > 0 {
		constraints["required"] = schema.Required
	}
	return constraints
}
