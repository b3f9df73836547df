package datagen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/erraggy/oastestgen/generrors"
	"github.com/erraggy/oastestgen/internal/schemautil"
	"github.com/erraggy/oastestgen/oas"
)

// GenerateBatch generates count values sequentially. With no modes, every
// result uses ModeValid. With modes, results are partitioned evenly across
// the listed modes in order; when count is not divisible by the mode count,
// the remainder goes to the first mode.
func (g *Generator) GenerateBatch(schema *oas.Schema, count int, modes ...GenerationMode) ([]*GenerationResult, error) {
	plan, err := batchPlan(count, modes)
	if err != nil {
		return nil, err
	}

	results := make([]*GenerationResult, 0, count)
	for _, mode := range plan {
		result, err := g.GenerateFromSchema(schema, mode)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// GenerateBatchContext generates count values concurrently, one goroutine per
// item. Each item gets its own sub-generator seeded from the parent seed and
// the item index, so the output for a given (seed, schema, count, modes)
// tuple is deterministic regardless of scheduling. The parent generator's
// random state is not consumed.
func (g *Generator) GenerateBatchContext(ctx context.Context, schema *oas.Schema, count int, modes ...GenerationMode) ([]*GenerationResult, error) {
	plan, err := batchPlan(count, modes)
	if err != nil {
		return nil, err
	}

	results := make([]*GenerationResult, count)
	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		mode := plan[i]
		index := i
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			sub := g.subGenerator(subSeed(g.opts.Seed, index))
			result, err := sub.GenerateFromSchema(schema, mode)
			if err != nil {
				return err
			}
			results[index] = result
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// batchPlan expands (count, modes) into a per-index mode list.
func batchPlan(count int, modes []GenerationMode) ([]GenerationMode, error) {
	if count < 0 {
		return nil, &generrors.ConfigError{Option: "count", Value: count, Message: "must not be negative"}
	}
	for _, mode := range modes {
		if !mode.IsValid() {
			return nil, &generrors.ConfigError{Option: "modes", Value: string(mode), Message: "unknown generation mode"}
		}
	}
	if len(modes) == 0 {
		modes = []GenerationMode{ModeValid}
	}

	base := count / len(modes)
	remainder := count % len(modes)

	plan := make([]GenerationMode, 0, count)
	for i, mode := range modes {
		n := base
		if i == 0 {
			n += remainder
		}
		for j := 0; j < n; j++ {
			plan = append(plan, mode)
		}
	}
	return plan, nil
}

// subGenerator derives an independently seeded generator sharing the parent's
// options and merge cache (the cache is safe for concurrent use).
func (g *Generator) subGenerator(seed int64) *Generator {
	return &Generator{
		opts:   g.opts,
		logger: g.logger,
		rng:    NewRandomSource(seed),
		hasher: schemautil.NewSchemaHasher(),
		merged: g.merged,
	}
}

// subSeed mixes the parent seed with the item index through one splitmix64
// step, so adjacent indices yield unrelated sequences.
func subSeed(seed int64, index int) int64 {
	return seed ^ int64(NewRandomSource(int64(index+1)).next64())
}
