package datagen

import (
	"fmt"
	"regexp/syntax"
	"strings"
)

// Pattern synthesis turns a regular expression into a matching string by
// walking the parsed AST. Supported constructs: literals, character classes
// (including ranges and perl classes), any-char, concatenation, alternation,
// groups, and the ? * + {n,m} quantifiers. Anchors are stripped. Word
// boundaries and other zero-width assertions beyond anchors are not
// supported; callers fall back to plain string generation and record a
// warning issue instead of silently mis-generating.

// unboundedRepeatSpan caps how many extra repetitions an unbounded
// quantifier may draw beyond its minimum.
const unboundedRepeatSpan = 10

// maxPatternDepth bounds AST recursion for pathologically nested patterns.
const maxPatternDepth = 64

// synthesizeFromPattern produces a string matching pattern, or an error when
// the pattern cannot be parsed or uses an unsupported construct.
func synthesizeFromPattern(rng *RandomSource, pattern string) (string, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return "", fmt.Errorf("unparseable pattern: %w", err)
	}
	var sb strings.Builder
	if err := walkPattern(rng, re.Simplify(), &sb, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func walkPattern(rng *RandomSource, re *syntax.Regexp, sb *strings.Builder, depth int) error {
	if depth > maxPatternDepth {
		return fmt.Errorf("pattern nesting exceeds %d levels", maxPatternDepth)
	}

	switch re.Op {
	case syntax.OpEmptyMatch, syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText:
		return nil

	case syntax.OpLiteral:
		sb.WriteString(string(re.Rune))
		return nil

	case syntax.OpCharClass:
		r, ok := pickFromClass(rng, re.Rune)
		if !ok {
			return fmt.Errorf("empty character class %q", re.String())
		}
		sb.WriteRune(r)
		return nil

	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		// Printable ASCII keeps generated values readable.
		sb.WriteRune(rune(0x20 + rng.IntN(0x5f)))
		return nil

	case syntax.OpCapture:
		return walkPattern(rng, re.Sub[0], sb, depth+1)

	case syntax.OpConcat:
		for _, sub := range re.Sub {
			if err := walkPattern(rng, sub, sb, depth+1); err != nil {
				return err
			}
		}
		return nil

	case syntax.OpAlternate:
		pick := re.Sub[rng.IntN(len(re.Sub))]
		return walkPattern(rng, pick, sb, depth+1)

	case syntax.OpQuest:
		if rng.Bool() {
			return walkPattern(rng, re.Sub[0], sb, depth+1)
		}
		return nil

	case syntax.OpStar:
		return repeatPattern(rng, re.Sub[0], sb, 0, -1, depth)

	case syntax.OpPlus:
		return repeatPattern(rng, re.Sub[0], sb, 1, -1, depth)

	case syntax.OpRepeat:
		return repeatPattern(rng, re.Sub[0], sb, re.Min, re.Max, depth)

	case syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return fmt.Errorf("unsupported zero-width assertion %q", re.String())

	default:
		return fmt.Errorf("unsupported pattern construct %q", re.String())
	}
}

// repeatPattern emits sub between lo and hi times; hi < 0 means unbounded and
// draws from [lo, lo+unboundedRepeatSpan).
func repeatPattern(rng *RandomSource, sub *syntax.Regexp, sb *strings.Builder, lo, hi, depth int) error {
	if hi < 0 {
		hi = lo + unboundedRepeatSpan - 1
	}
	n := lo
	if hi > lo {
		n = lo + rng.IntN(hi-lo+1)
	}
	for i := 0; i < n; i++ {
		if err := walkPattern(rng, sub, sb, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// pickFromClass draws a rune from a character class given as [lo, hi] rune
// pairs. Ranges are intersected with printable ASCII when possible so
// negated classes do not emit exotic code points.
func pickFromClass(rng *RandomSource, pairs []rune) (rune, bool) {
	type span struct{ lo, hi rune }
	printable := make([]span, 0, len(pairs)/2)
	all := make([]span, 0, len(pairs)/2)

	for i := 0; i+1 < len(pairs); i += 2 {
		lo, hi := pairs[i], pairs[i+1]
		all = append(all, span{lo, hi})
		if hi < 0x20 || lo > 0x7e {
			continue
		}
		if lo < 0x20 {
			lo = 0x20
		}
		if hi > 0x7e {
			hi = 0x7e
		}
		printable = append(printable, span{lo, hi})
	}

	candidates := printable
	if len(candidates) == 0 {
		candidates = all
	}
	if len(candidates) == 0 {
		return 0, false
	}

	// Weight ranges by width so every rune in the class is equally likely.
	total := 0
	for _, s := range candidates {
		total += int(s.hi-s.lo) + 1
	}
	n := rng.IntN(total)
	for _, s := range candidates {
		width := int(s.hi-s.lo) + 1
		if n < width {
			return s.lo + rune(n), true
		}
		n -= width
	}
	return candidates[0].lo, true
}
