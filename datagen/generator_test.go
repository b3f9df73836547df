package datagen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oastestgen/generrors"
	"github.com/erraggy/oastestgen/internal/testutil"
	"github.com/erraggy/oastestgen/oas"
)

func mustNew(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	gen, err := New(opts...)
	require.NoError(t, err)
	return gen
}

func mustGenerate(t *testing.T, gen *Generator, schema *oas.Schema, mode GenerationMode) *GenerationResult {
	t.Helper()
	result, err := gen.GenerateFromSchema(schema, mode)
	require.NoError(t, err)
	return result
}

func TestGenerateFromSchemaDeterminism(t *testing.T) {
	schemas := map[string]*oas.Schema{
		"pet object": testutil.NewPetSchema(),
		"number":     testutil.NewBoundedNumberSchema(10, 30),
		"uuid":       {Type: "string", Format: "uuid"},
		"array": {
			Type:     "array",
			MaxItems: oas.Int(6),
			Items:    &oas.Schema{Type: "integer", Minimum: oas.Float64(0), Maximum: oas.Float64(99)},
		},
		"composed": {
			OneOf: []*oas.Schema{
				{Type: "string", MaxLength: oas.Int(8)},
				{Type: "integer", Minimum: oas.Float64(1), Maximum: oas.Float64(5)},
			},
		},
	}

	for name, schema := range schemas {
		t.Run(name, func(t *testing.T) {
			a := mustNew(t, WithSeed(12345))
			b := mustNew(t, WithSeed(12345))

			resA := mustGenerate(t, a, schema, ModeValid)
			resB := mustGenerate(t, b, schema, ModeValid)
			assert.Equal(t, resA.Value, resB.Value)
		})
	}
}

func TestResetSeedReplays(t *testing.T) {
	gen := mustNew(t, WithSeed(777))
	schema := testutil.NewPetSchema()

	first := mustGenerate(t, gen, schema, ModeValid).Value
	mustGenerate(t, gen, schema, ModeValid) // advance state

	gen.ResetSeed(777)
	replay := mustGenerate(t, gen, schema, ModeValid).Value
	assert.Equal(t, first, replay)
}

func TestGenerateEndToEndScenario(t *testing.T) {
	// {type: number, minimum: 10, maximum: 30, multipleOf: 5} must land on a
	// multiple of 5 in range, stable under the seed.
	schema := &oas.Schema{
		Type:       "number",
		Minimum:    oas.Float64(10),
		Maximum:    oas.Float64(30),
		MultipleOf: oas.Float64(5),
	}

	gen := mustNew(t, WithSeed(12345))
	value := mustGenerate(t, gen, schema, ModeValid).Value
	assert.Contains(t, []any{float64(10), float64(15), float64(20), float64(25), float64(30)}, value)

	for i := 0; i < 5; i++ {
		again := mustNew(t, WithSeed(12345))
		assert.Equal(t, value, mustGenerate(t, again, schema, ModeValid).Value, "run %d diverged", i)
	}
}

func TestGenerateEdgeBoundary(t *testing.T) {
	schema := testutil.NewBoundedNumberSchema(10, 100)
	gen := mustNew(t, WithSeed(1))

	result := mustGenerate(t, gen, schema, ModeEdge)
	assert.Equal(t, float64(10), result.Value)
}

func TestGenerateInvalidTyping(t *testing.T) {
	tests := []struct {
		name   string
		schema *oas.Schema
		check  func(t *testing.T, v any)
	}{
		{
			name:   "string gets non-string",
			schema: &oas.Schema{Type: "string"},
			check: func(t *testing.T, v any) {
				_, isString := v.(string)
				assert.False(t, isString, "invalid mode must not produce a string, got %T", v)
			},
		},
		{
			name:   "number gets non-number",
			schema: &oas.Schema{Type: "number"},
			check: func(t *testing.T, v any) {
				assert.IsType(t, "", v)
			},
		},
		{
			name:   "boolean gets non-boolean",
			schema: &oas.Schema{Type: "boolean"},
			check: func(t *testing.T, v any) {
				assert.IsType(t, "", v)
			},
		},
		{
			name:   "array gets non-array",
			schema: &oas.Schema{Type: "array", Items: &oas.Schema{Type: "string"}},
			check: func(t *testing.T, v any) {
				assert.IsType(t, map[string]any{}, v)
			},
		},
		{
			name:   "object gets non-object",
			schema: testutil.NewPetSchema(),
			check: func(t *testing.T, v any) {
				assert.IsType(t, "", v)
			},
		},
	}

	gen := mustNew(t, WithSeed(5))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mustGenerate(t, gen, tt.schema, ModeInvalid)
			assert.Equal(t, ModeInvalid, result.Mode)
			tt.check(t, result.Value)
		})
	}
}

func TestGenerateEnumContainment(t *testing.T) {
	enum := []any{"red", "green", "blue"}
	schema := &oas.Schema{Type: "string", Enum: enum}
	gen := mustNew(t, WithSeed(9))

	for i := 0; i < 50; i++ {
		result := mustGenerate(t, gen, schema, ModeValid)
		assert.Contains(t, enum, result.Value)
	}

	assert.Equal(t, "red", mustGenerate(t, gen, schema, ModeMinimal).Value)
	assert.Equal(t, "blue", mustGenerate(t, gen, schema, ModeMaximal).Value)
	assert.Equal(t, "red", mustGenerate(t, gen, schema, ModeEdge).Value)
}

func TestGenerateExamplePrecedence(t *testing.T) {
	schema := &oas.Schema{Type: "string", Example: "fixed-example"}

	withExamples := mustNew(t, WithSeed(4), WithUseExamples(true))
	result := mustGenerate(t, withExamples, schema, ModeValid)
	assert.Equal(t, "fixed-example", result.Value)

	withoutExamples := mustNew(t, WithSeed(4))
	result = mustGenerate(t, withoutExamples, schema, ModeValid)
	assert.NotEqual(t, "fixed-example", result.Value)

	// Examples only apply to valid mode.
	result = mustGenerate(t, withExamples, schema, ModeInvalid)
	assert.NotEqual(t, "fixed-example", result.Value)
}

func TestGenerateRecursionSafety(t *testing.T) {
	gen := mustNew(t, WithSeed(2), WithMaxObjectDepth(5))

	result := mustGenerate(t, gen, testutil.NewSelfReferentialSchema(), ModeValid)
	require.NotNil(t, result)

	stats := gen.Statistics()
	assert.LessOrEqual(t, stats.MaxDepthReached, 6, "depth ceiling plus the short-circuit probe")
	assert.Equal(t, 0, stats.StackSize, "depth counter unwinds between calls")
}

func TestGenerateDeepNesting(t *testing.T) {
	// 25 levels of literal nesting must complete and respect the ceiling.
	leaf := &oas.Schema{Type: "integer"}
	schema := leaf
	for i := 0; i < 25; i++ {
		schema = &oas.Schema{
			Type:       "object",
			Required:   []string{"child"},
			Properties: map[string]*oas.Schema{"child": schema},
		}
	}

	gen := mustNew(t, WithSeed(8))
	result := mustGenerate(t, gen, schema, ModeValid)

	obj, ok := result.Value.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, obj, "child")
	assert.LessOrEqual(t, gen.Statistics().MaxDepthReached, DefaultMaxObjectDepth+1)
}

func TestGenerateLenientMalformedSchemas(t *testing.T) {
	gen := mustNew(t, WithSeed(6))

	tests := []struct {
		name   string
		schema *oas.Schema
		check  func(t *testing.T, v any)
	}{
		{
			name:   "missing type with properties",
			schema: &oas.Schema{Properties: map[string]*oas.Schema{"a": {Type: "string"}}, Required: []string{"a"}},
			check: func(t *testing.T, v any) {
				assert.IsType(t, map[string]any{}, v)
			},
		},
		{
			name:   "missing type with items",
			schema: &oas.Schema{Items: &oas.Schema{Type: "integer"}},
			check: func(t *testing.T, v any) {
				assert.IsType(t, []any{}, v)
			},
		},
		{
			name:   "missing type bare",
			schema: &oas.Schema{},
			check: func(t *testing.T, v any) {
				assert.IsType(t, "", v)
			},
		},
		{
			name:   "unknown type",
			schema: &oas.Schema{Type: "quantum"},
			check: func(t *testing.T, v any) {
				assert.IsType(t, "", v)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := gen.GenerateFromSchema(tt.schema, ModeValid)
			require.NoError(t, err, "malformed schemas are handled leniently, never failed")
			tt.check(t, result.Value)
			assert.NotEmpty(t, result.Metadata.Issues, "lenient handling is reported as an issue")
		})
	}
}

func TestGenerateNilSchema(t *testing.T) {
	gen := mustNew(t, WithSeed(6))
	result, err := gen.GenerateFromSchema(nil, ModeValid)
	require.NoError(t, err)
	assert.Nil(t, result.Value)
	assert.NotEmpty(t, result.Metadata.Issues)
}

func TestGenerateUnknownModeRejected(t *testing.T) {
	gen := mustNew(t, WithSeed(6))
	_, err := gen.GenerateFromSchema(&oas.Schema{Type: "string"}, GenerationMode("bogus"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, generrors.ErrConfig))
}

func TestGenerateEdgeCasesDisabled(t *testing.T) {
	schema := testutil.NewBoundedNumberSchema(10, 100)
	gen := mustNew(t, WithSeed(31), WithGenerateEdgeCases(false))

	result := mustGenerate(t, gen, schema, ModeMinimal)
	assert.Equal(t, ModeValid, result.Mode, "boundary modes answered as valid when disabled")
}

func TestGenerateMetadata(t *testing.T) {
	schema := testutil.NewPetSchema()
	gen := mustNew(t, WithSeed(44))

	result := mustGenerate(t, gen, schema, ModeValid)
	assert.Same(t, schema, result.Metadata.Schema)
	assert.Equal(t, schema.Required, result.Metadata.Constraints["required"])
	assert.Contains(t, result.Metadata.GeneratedFields, "id")
	assert.Contains(t, result.Metadata.GeneratedFields, "name")
	assert.GreaterOrEqual(t, result.Metadata.Duration.Nanoseconds(), int64(0))
}

func TestStatisticsIntrospectionOnly(t *testing.T) {
	gen := mustNew(t, WithSeed(3))
	mustGenerate(t, gen, testutil.NewPetSchema(), ModeValid)

	before := gen.Statistics()
	after := gen.Statistics()
	assert.Equal(t, before, after, "statistics must not mutate generator state")
	assert.Greater(t, after.MaxDepthReached, 0)

	gen.ResetSeed(3)
	assert.Equal(t, 0, gen.Statistics().MaxDepthReached, "reseed discards depth counters")
}

func TestGenerateIncludeNull(t *testing.T) {
	schema := &oas.Schema{Type: "string", Nullable: true}
	gen := mustNew(t, WithSeed(15), WithIncludeNull(true))

	sawNull := false
	for i := 0; i < 200; i++ {
		if mustGenerate(t, gen, schema, ModeValid).Value == nil {
			sawNull = true
			break
		}
	}
	assert.True(t, sawNull, "nullable schemas should occasionally produce null")

	noNull := mustNew(t, WithSeed(15))
	for i := 0; i < 200; i++ {
		assert.NotNil(t, mustGenerate(t, noNull, schema, ModeValid).Value)
	}
}
