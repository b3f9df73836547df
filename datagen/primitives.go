package datagen

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oastestgen/internal/schemautil"
	"github.com/erraggy/oastestgen/oas"
)

// Default numeric span when a schema has no usable bounds.
const unboundedNumericSpan = 1000

// words feeds the plain string producer and the format producers. Generated
// text reads like mock data instead of random glyphs.
var words = []string{
	"alpha", "bravo", "cedar", "delta", "ember", "fjord", "gamma", "harbor",
	"indigo", "juniper", "kelp", "lumen", "meadow", "nectar", "onyx", "prism",
	"quartz", "ridge", "sienna", "tundra", "umber", "violet", "willow", "xenon",
	"yarrow", "zephyr", "basalt", "cobalt", "drift", "echo", "flint", "grove",
}

var titleCaser = cases.Title(language.English)

// word draws one entry from the word list.
func (g *Generator) word() string {
	return words[g.rng.IntN(len(words))]
}

// stringValue synthesizes a string under the schema's constraints.
// Precedence: pattern, then format, then plain text.
func (g *Generator) stringValue(run *genRun, schema *oas.Schema, path string) string {
	if schema.Pattern != "" {
		s, err := synthesizeFromPattern(g.rng, schema.Pattern)
		if err == nil {
			return s
		}
		run.addIssue(SeverityWarning, path, "pattern", "pattern not supported, generated plain string: "+err.Error())
		g.logger.Debug("pattern synthesis fell back to plain string", "path", path, "pattern", schema.Pattern, "reason", err)
	}

	if schema.Format != "" {
		if v, ok := g.formatValue(schema.Format); ok {
			return v
		}
		g.logger.Debug("unknown format, generating plain string", "path", path, "format", schema.Format)
	}

	lo := 1
	if schema.MinLength != nil {
		lo = *schema.MinLength
	}
	hi := g.opts.MaxStringLength
	if schema.MaxLength != nil && *schema.MaxLength < hi {
		hi = *schema.MaxLength
	}
	if hi < lo {
		hi = lo
	}

	var length int
	switch {
	case run.mode.atLowerBound():
		if schema.MinLength == nil && run.mode == ModeMinimal {
			length = 0 // smallest admissible string when unconstrained
		} else {
			length = lo
		}
	case run.mode.atUpperBound():
		length = hi
	default:
		length = lo + g.rng.IntN(hi-lo+1)
	}

	return g.plainText(length)
}

// plainText builds a word-based string of exactly n bytes. All words are
// ASCII, so byte truncation never splits a rune.
func (g *Generator) plainText(n int) string {
	if n <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(titleCaser.String(g.word()))
	for sb.Len() < n {
		sb.WriteByte(' ')
		sb.WriteString(g.word())
	}
	s := sb.String()
	if len(s) > n {
		s = s[:n]
	}
	if strings.HasSuffix(s, " ") {
		s = s[:len(s)-1] + string(rune('a'+g.rng.IntN(26)))
	}
	return s
}

// numberValue synthesizes a number or integer within the schema's effective
// range, honoring exclusive bounds and multipleOf. Integers are returned as
// int64, numbers as float64.
func (g *Generator) numberValue(run *genRun, schema *oas.Schema, integer bool) any {
	effMin, effMax := g.effectiveRange(schema, integer)

	if schema.MultipleOf != nil && *schema.MultipleOf > 0 {
		v := g.multipleIn(run, *schema.MultipleOf, effMin, effMax)
		if integer {
			return int64(v)
		}
		return v
	}

	if integer {
		lo, hi := int64(math.Ceil(effMin)), int64(math.Floor(effMax))
		if hi < lo {
			hi = lo
		}
		switch {
		case run.mode.atLowerBound():
			return lo
		case run.mode.atUpperBound():
			return hi
		default:
			return g.rng.Int64InRange(lo, hi)
		}
	}

	switch {
	case run.mode.atLowerBound():
		return effMin
	case run.mode.atUpperBound():
		return effMax
	default:
		return g.rng.Float64InRange(effMin, effMax)
	}
}

// effectiveRange resolves minimum/maximum plus exclusivity into an inclusive
// [lo, hi] range, defaulting unbounded sides to a small readable span.
func (g *Generator) effectiveRange(schema *oas.Schema, integer bool) (float64, float64) {
	var lo, hi float64
	var haveLo, haveHi bool

	if schema.Minimum != nil {
		lo, haveLo = *schema.Minimum, true
	}
	if schema.Maximum != nil {
		hi, haveHi = *schema.Maximum, true
	}

	if ex, ok := schemautil.ExclusiveBound(schema.ExclusiveMinimum, schema.Minimum); ok {
		shifted := ex + 1
		if !integer {
			shifted = math.Nextafter(ex, math.Inf(1))
		}
		if !haveLo || shifted > lo {
			lo, haveLo = shifted, true
		}
	}
	if ex, ok := schemautil.ExclusiveBound(schema.ExclusiveMaximum, schema.Maximum); ok {
		shifted := ex - 1
		if !integer {
			shifted = math.Nextafter(ex, math.Inf(-1))
		}
		if !haveHi || shifted < hi {
			hi, haveHi = shifted, true
		}
	}

	switch {
	case !haveLo && !haveHi:
		lo, hi = 0, unboundedNumericSpan
	case !haveHi:
		hi = lo + unboundedNumericSpan
	case !haveLo:
		lo = hi - unboundedNumericSpan
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// multipleIn picks a multiple of m inside [lo, hi]. When no multiple fits the
// range it fails soft to the nearest multiple at or above lo.
func (g *Generator) multipleIn(run *genRun, m, lo, hi float64) float64 {
	kLo := int64(math.Ceil(lo / m))
	kHi := int64(math.Floor(hi / m))

	if kLo > kHi {
		run.addIssue(SeverityWarning, "", "multipleOf", "no multiple inside range, generated nearest multiple above minimum")
		return float64(kLo) * m
	}

	var k int64
	switch {
	case run.mode.atLowerBound():
		k = kLo
	case run.mode.atUpperBound():
		k = kHi
	default:
		k = g.rng.Int64InRange(kLo, kHi)
	}
	return float64(k) * m
}

// boolValue flips a coin; bound-targeting modes are deterministic.
func (g *Generator) boolValue(run *genRun) bool {
	switch {
	case run.mode.atLowerBound():
		return false
	case run.mode.atUpperBound():
		return true
	default:
		return g.rng.Bool()
	}
}
