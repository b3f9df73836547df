package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petSchemaYAML = `type: object
required:
  - id
  - name
properties:
  id:
    type: integer
    minimum: 1
  name:
    type: string
    minLength: 1
  status:
    type: string
    enum:
      - available
      - pending
      - sold
`

func TestGenerateDataTool_Valid(t *testing.T) {
	input := generateDataInput{
		Schema: petSchemaYAML,
		Seed:   42,
	}
	result, output, err := handleGenerateData(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "valid", output.Mode)
	obj, ok := output.Value.(map[string]any)
	require.True(t, ok, "expected an object value, got %T", output.Value)
	assert.Contains(t, obj, "id")
	assert.Contains(t, obj, "name")
	assert.Empty(t, output.Issues)
}

func TestGenerateDataTool_SeededDeterminism(t *testing.T) {
	input := generateDataInput{Schema: petSchemaYAML, Seed: 7}

	_, first, err := handleGenerateData(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	_, second, err := handleGenerateData(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, first.Value, second.Value)
}

func TestGenerateDataTool_Mode(t *testing.T) {
	input := generateDataInput{
		Schema: "{type: integer, minimum: 5, maximum: 50}",
		Mode:   "minimal",
		Seed:   1,
	}
	_, output, err := handleGenerateData(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "minimal", output.Mode)
	assert.Equal(t, int64(5), output.Value)
}

func TestGenerateDataTool_UseExamples(t *testing.T) {
	input := generateDataInput{
		Schema:      "{type: string, example: fixture-value}",
		Seed:        1,
		UseExamples: true,
	}
	_, output, err := handleGenerateData(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, "fixture-value", output.Value)
}

func TestGenerateDataTool_ReportsIssues(t *testing.T) {
	input := generateDataInput{
		Schema: `{type: string, pattern: '\bword\b'}`,
		Seed:   3,
	}
	_, output, err := handleGenerateData(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.NotEmpty(t, output.Issues, "unsupported pattern should surface an issue")
}

func TestGenerateDataTool_MissingSchema(t *testing.T) {
	result, output, err := handleGenerateData(context.Background(), &mcp.CallToolRequest{}, generateDataInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Nil(t, output.Value)
}

func TestGenerateDataTool_UnknownMode(t *testing.T) {
	input := generateDataInput{Schema: petSchemaYAML, Mode: "extreme"}
	result, _, err := handleGenerateData(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestGenerateDataTool_MalformedSchema(t *testing.T) {
	input := generateDataInput{Schema: "not valid yaml: ["}
	result, _, err := handleGenerateData(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestGenerateBatchTool(t *testing.T) {
	input := generateBatchInput{
		Schema: petSchemaYAML,
		Count:  10,
		Modes:  []string{"valid", "invalid"},
		Seed:   11,
	}
	result, output, err := handleGenerateBatch(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Len(t, output.Values, 10)
	assert.Equal(t, map[string]int{"valid": 5, "invalid": 5}, output.ModeCounts)
}

func TestGenerateBatchTool_DefaultsToValid(t *testing.T) {
	input := generateBatchInput{Schema: petSchemaYAML, Count: 3, Seed: 12}
	_, output, err := handleGenerateBatch(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"valid": 3}, output.ModeCounts)
}

func TestGenerateBatchTool_InvalidCount(t *testing.T) {
	input := generateBatchInput{Schema: petSchemaYAML, Count: 0}
	result, _, err := handleGenerateBatch(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestGenerateBatchTool_UnknownMode(t *testing.T) {
	input := generateBatchInput{Schema: petSchemaYAML, Count: 2, Modes: []string{"weird"}}
	result, _, err := handleGenerateBatch(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestGenerateRequestBodyTool(t *testing.T) {
	input := generateRequestBodyInput{
		RequestBody: `required: true
content:
  application/json:
    schema:
` + indentYAML(petSchemaYAML, "      "),
		Seed: 13,
	}
	result, output, err := handleGenerateRequestBody(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "application/json", output.ContentType)
	obj, ok := output.Value.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, obj, "id")
	assert.Contains(t, obj, "name")
}

func TestGenerateRequestBodyTool_MissingContentType(t *testing.T) {
	input := generateRequestBodyInput{
		RequestBody: `content:
  application/xml:
    schema:
      type: string
`,
		Seed: 14,
	}
	_, output, err := handleGenerateRequestBody(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, output.Value, "absent content type yields null")
	assert.Equal(t, "application/json", output.ContentType)
}

func TestGenerateRequestBodyTool_MissingBody(t *testing.T) {
	result, _, err := handleGenerateRequestBody(context.Background(), &mcp.CallToolRequest{}, generateRequestBodyInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

// indentYAML prefixes every line so a block can be nested under a parent key.
func indentYAML(block, prefix string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
