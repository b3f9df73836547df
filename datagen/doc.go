// Package datagen generates test data from OpenAPI 3.x schemas.
//
// The engine synthesizes values that satisfy a schema's constraints: numeric
// bounds (including exclusive bounds and multipleOf), string length and
// pattern, array length and uniqueItems, object required properties, enums,
// format hints, and the oneOf/anyOf/allOf composition keywords.
//
// # Generation modes
//
// Every call is governed by exactly one GenerationMode:
//
//   - ModeValid: a random value satisfying all constraints
//   - ModeMinimal: every lower bound taken literally
//   - ModeMaximal: every upper bound taken literally, clipped by the hard caps
//   - ModeEdge: a single deterministic boundary representative (the lower bound)
//   - ModeInvalid: a value of the wrong shape for the declared type
//
// All modes flow through the same pipeline: composition resolution and depth
// guarding are shared, and the mode only changes which point of each
// constraint is targeted.
//
// # Determinism
//
// A Generator owns a seeded random source. Two generators constructed with the
// same seed produce identical values for identical call sequences; ResetSeed
// replays a sequence on an existing generator. A Generator must not be shared
// across concurrently executing calls: interleaved draws from one source break
// the determinism guarantee. Use one generator per goroutine, or
// GenerateBatchContext, which derives an independently seeded sub-generator
// per work item.
//
// # Leniency
//
// Schemas in the wild are frequently incomplete. A missing or unknown type
// never fails generation: the engine infers a type where it can (properties
// imply object, items imply array) and otherwise falls back to a string,
// recording a warning issue in the result metadata. Errors are reserved for
// genuine internal failures, which are recovered once at the top of
// GenerateFromSchema and rewrapped as *generrors.GenerationError.
package datagen
