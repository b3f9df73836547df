// Package oastestgen provides schema-constrained test data generation for
// OpenAPI-described HTTP endpoints.
//
// oastestgen synthesizes request bodies, parameter values, and mock response
// payloads from OpenAPI 3.x schemas. Values can be valid, boundary-valued, or
// deliberately invalid, and generation is fully deterministic when seeded,
// which makes the output suitable for reproducible test suites.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - oas: the OpenAPI 3.x schema-subset data model consumed by the engine
//   - datagen: the data generation engine
//   - mcpserver: an MCP server exposing the engine as tools over stdio
//
// Supporting packages:
//
//   - generrors: structured error types for programmatic error handling
//
// # Quick Start
//
// Generate a value from a schema:
//
//	import (
//		"github.com/erraggy/oastestgen/datagen"
//		"github.com/erraggy/oastestgen/oas"
//	)
//
//	gen, err := datagen.New(datagen.WithSeed(12345))
//	if err != nil {
//		log.Fatal(err)
//	}
//	schema := &oas.Schema{
//		Type:    "number",
//		Minimum: oas.Float64(10),
//		Maximum: oas.Float64(30),
//	}
//	result, err := gen.GenerateFromSchema(schema, datagen.ModeValid)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("value: %v\n", result.Value)
//
// Generate a batch with a mixture of modes:
//
//	results, err := gen.GenerateBatch(schema, 10, datagen.ModeValid, datagen.ModeInvalid)
//
// # Determinism
//
// A Generator owns its random state. Two generators constructed with the same
// seed produce identical values for identical call sequences. Reseed an
// existing generator with ResetSeed to replay a sequence.
//
// Schema parsing, $ref resolution, and test-suite source emission are the
// responsibility of external tooling; this module is a pure in-process
// library.
package oastestgen
