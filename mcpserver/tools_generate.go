package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oastestgen/datagen"
	"github.com/erraggy/oastestgen/oas"
)

type generateDataInput struct {
	Schema      string `json:"schema"                jsonschema:"The OpenAPI schema to generate from, inline JSON or YAML"`
	Mode        string `json:"mode,omitempty"        jsonschema:"Generation mode: valid, minimal, maximal, edge, or invalid (default: valid)"`
	Seed        int64  `json:"seed,omitempty"        jsonschema:"Seed for deterministic output (default: time-derived)"`
	UseExamples bool   `json:"use_examples,omitempty" jsonschema:"Prefer schema example values when present"`
}

type generateDataOutput struct {
	Value  any      `json:"value"`
	Mode   string   `json:"mode"`
	Issues []string `json:"issues,omitempty"`
}

func handleGenerateData(_ context.Context, _ *mcp.CallToolRequest, input generateDataInput) (*mcp.CallToolResult, generateDataOutput, error) {
	schema, mode, gen, err := resolveGeneration(input.Schema, input.Mode, input.Seed, input.UseExamples)
	if err != nil {
		return errResult(err), generateDataOutput{}, nil
	}

	result, err := gen.GenerateFromSchema(schema, mode)
	if err != nil {
		return errResult(err), generateDataOutput{}, nil
	}

	output := generateDataOutput{
		Value: result.Value,
		Mode:  string(result.Mode),
	}
	output.Issues = makeSlice[string](len(result.Metadata.Issues))
	for _, issue := range result.Metadata.Issues {
		output.Issues = append(output.Issues, issue.String())
	}
	return nil, output, nil
}

type generateBatchInput struct {
	Schema string   `json:"schema"          jsonschema:"The OpenAPI schema to generate from, inline JSON or YAML"`
	Count  int      `json:"count"           jsonschema:"Number of values to generate"`
	Modes  []string `json:"modes,omitempty" jsonschema:"Modes to partition the batch across (default: all valid)"`
	Seed   int64    `json:"seed,omitempty"  jsonschema:"Seed for deterministic output (default: time-derived)"`
}

type generateBatchOutput struct {
	Values     []any          `json:"values"`
	ModeCounts map[string]int `json:"mode_counts"`
}

func handleGenerateBatch(_ context.Context, _ *mcp.CallToolRequest, input generateBatchInput) (*mcp.CallToolResult, generateBatchOutput, error) {
	if input.Count <= 0 {
		return errResult(fmt.Errorf("count must be positive")), generateBatchOutput{}, nil
	}

	schema, _, gen, err := resolveGeneration(input.Schema, "", input.Seed, false)
	if err != nil {
		return errResult(err), generateBatchOutput{}, nil
	}

	modes := make([]datagen.GenerationMode, 0, len(input.Modes))
	for _, m := range input.Modes {
		mode, err := datagen.ParseMode(m)
		if err != nil {
			return errResult(err), generateBatchOutput{}, nil
		}
		modes = append(modes, mode)
	}

	results, err := gen.GenerateBatch(schema, input.Count, modes...)
	if err != nil {
		return errResult(err), generateBatchOutput{}, nil
	}

	output := generateBatchOutput{
		ModeCounts: make(map[string]int, len(modes)+1),
	}
	output.Values = makeSlice[any](len(results))
	for _, result := range results {
		output.Values = append(output.Values, result.Value)
		output.ModeCounts[string(result.Mode)]++
	}
	return nil, output, nil
}

type generateRequestBodyInput struct {
	RequestBody string `json:"request_body"           jsonschema:"The OpenAPI request body object, inline JSON or YAML"`
	ContentType string `json:"content_type,omitempty" jsonschema:"Media type to generate for (default: application/json)"`
	Seed        int64  `json:"seed,omitempty"         jsonschema:"Seed for deterministic output (default: time-derived)"`
}

type generateRequestBodyOutput struct {
	Value       any    `json:"value"`
	ContentType string `json:"content_type"`
}

func handleGenerateRequestBody(_ context.Context, _ *mcp.CallToolRequest, input generateRequestBodyInput) (*mcp.CallToolResult, generateRequestBodyOutput, error) {
	if input.RequestBody == "" {
		return errResult(fmt.Errorf("request_body is required")), generateRequestBodyOutput{}, nil
	}

	body, err := oas.RequestBodyFromYAML([]byte(input.RequestBody))
	if err != nil {
		return errResult(err), generateRequestBodyOutput{}, nil
	}

	gen, err := newGenerator(input.Seed, false)
	if err != nil {
		return errResult(err), generateRequestBodyOutput{}, nil
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = datagen.ContentTypeJSON
	}
	value := gen.GenerateRequestBodyData(body, contentType)
	return nil, generateRequestBodyOutput{Value: value, ContentType: contentType}, nil
}

// resolveGeneration decodes an inline schema and builds a generator for it.
func resolveGeneration(schemaText, modeText string, seed int64, useExamples bool) (*oas.Schema, datagen.GenerationMode, *datagen.Generator, error) {
	if schemaText == "" {
		return nil, "", nil, fmt.Errorf("schema is required")
	}
	schema, err := oas.SchemaFromYAML([]byte(schemaText))
	if err != nil {
		return nil, "", nil, err
	}
	mode, err := datagen.ParseMode(modeText)
	if err != nil {
		return nil, "", nil, err
	}
	gen, err := newGenerator(seed, useExamples)
	if err != nil {
		return nil, "", nil, err
	}
	return schema, mode, gen, nil
}

func newGenerator(seed int64, useExamples bool) (*datagen.Generator, error) {
	opts := []datagen.Option{datagen.WithUseExamples(useExamples)}
	if seed != 0 {
		opts = append(opts, datagen.WithSeed(seed))
	}
	return datagen.New(opts...)
}
