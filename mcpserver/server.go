// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes the oastestgen data generation engine as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oastestgen"
)

const serverInstructions = `oastestgen MCP server generates schema-constrained test data from OpenAPI 3.x schemas.

Tools accept an inline schema (JSON or YAML) and return generated values. Generation is deterministic when a seed is provided: the same seed, schema, and mode always yield the same value.

Modes:
- valid (default): a random value satisfying all constraints
- minimal / maximal: every lower / upper bound taken literally
- edge: a single deterministic boundary representative (the lower bound)
- invalid: a value of the wrong shape for the declared type, for negative-path tests`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oastestgen", Version: oastestgen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_data",
		Description: "Generate one value from an OpenAPI 3.x schema. Provide the schema inline as JSON or YAML. Optional mode (valid, minimal, maximal, edge, invalid) and seed for reproducible output. Returns the value plus any generation issues (lenient fallbacks, unsupported pattern constructs).",
	}, handleGenerateData)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_batch",
		Description: "Generate N values from an OpenAPI 3.x schema. Optional modes list partitions the batch evenly across modes (remainder to the first mode); omit it for all-valid output. Optional seed for reproducible output.",
	}, handleGenerateBatch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_request_body",
		Description: "Generate a valid body value for an OpenAPI request body object (inline JSON or YAML). Optional content_type selects the media type (default application/json). Returns null when the content type is absent or carries no schema.",
	}, handleGenerateRequestBody)
}

// makeSlice returns nil for n == 0 so empty results marshal as JSON null
// arrays consistently.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
