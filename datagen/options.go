package datagen

import (
	"time"

	"github.com/erraggy/oastestgen/generrors"
)

// Default limits applied when an option is not set.
const (
	// DefaultMaxStringLength is the hard cap on generated string lengths.
	DefaultMaxStringLength = 64
	// DefaultMaxArrayItems is the hard cap on generated array lengths.
	DefaultMaxArrayItems = 10
	// DefaultMaxObjectDepth is the recursion ceiling for nested objects/arrays.
	DefaultMaxObjectDepth = 8
)

// Options holds the configuration of a Generator. Options are immutable for
// the lifetime of a generator instance; only the seed can be replayed via
// ResetSeed.
type Options struct {
	// UseExamples prefers a schema's example value when present and the mode
	// is ModeValid.
	UseExamples bool

	// GenerateEdgeCases permits boundary-targeting modes. When false,
	// ModeMinimal/ModeMaximal/ModeEdge requests are answered as ModeValid.
	GenerateEdgeCases bool

	// MaxStringLength is the hard cap on generated string lengths.
	MaxStringLength int

	// MaxArrayItems is the hard cap on generated array lengths.
	MaxArrayItems int

	// IncludeNull allows nullable schemas to occasionally produce null in
	// ModeValid.
	IncludeNull bool

	// IncludeUndefined allows optional object properties to be omitted.
	// When false, every declared property is generated.
	IncludeUndefined bool

	// MaxObjectDepth is the recursion ceiling; nesting beyond it
	// short-circuits to a terminal null.
	MaxObjectDepth int

	// Seed seeds the random source. Zero means a time-derived seed.
	Seed int64
}

// Option configures a Generator.
type Option func(*genConfig) error

// genConfig holds configuration while options are being applied.
type genConfig struct {
	opts    Options
	seedSet bool
	logger  Logger
}

func defaultConfig() *genConfig {
	return &genConfig{
		opts: Options{
			GenerateEdgeCases: true,
			MaxStringLength:   DefaultMaxStringLength,
			MaxArrayItems:     DefaultMaxArrayItems,
			IncludeUndefined:  true,
			MaxObjectDepth:    DefaultMaxObjectDepth,
		},
		logger: NopLogger{},
	}
}

func applyOptions(opts ...Option) (*genConfig, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if !cfg.seedSet {
		cfg.opts.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// WithSeed seeds the generator's random source. The same seed always yields
// the same value sequence.
func WithSeed(seed int64) Option {
	return func(cfg *genConfig) error {
		cfg.opts.Seed = seed
		cfg.seedSet = true
		return nil
	}
}

// WithUseExamples prefers schema example values in ModeValid.
// Default: false
func WithUseExamples(enabled bool) Option {
	return func(cfg *genConfig) error {
		cfg.opts.UseExamples = enabled
		return nil
	}
}

// WithGenerateEdgeCases enables or disables boundary-targeting modes.
// Default: true
func WithGenerateEdgeCases(enabled bool) Option {
	return func(cfg *genConfig) error {
		cfg.opts.GenerateEdgeCases = enabled
		return nil
	}
}

// WithMaxStringLength sets the hard cap on generated string lengths.
// Default: 64
func WithMaxStringLength(n int) Option {
	return func(cfg *genConfig) error {
		if n <= 0 {
			return &generrors.ConfigError{Option: "MaxStringLength", Value: n, Message: "must be positive"}
		}
		cfg.opts.MaxStringLength = n
		return nil
	}
}

// WithMaxArrayItems sets the hard cap on generated array lengths.
// Default: 10
func WithMaxArrayItems(n int) Option {
	return func(cfg *genConfig) error {
		if n <= 0 {
			return &generrors.ConfigError{Option: "MaxArrayItems", Value: n, Message: "must be positive"}
		}
		cfg.opts.MaxArrayItems = n
		return nil
	}
}

// WithIncludeNull allows nullable schemas to occasionally produce null.
// Default: false
func WithIncludeNull(enabled bool) Option {
	return func(cfg *genConfig) error {
		cfg.opts.IncludeNull = enabled
		return nil
	}
}

// WithIncludeUndefined allows optional object properties to be omitted.
// Default: true
func WithIncludeUndefined(enabled bool) Option {
	return func(cfg *genConfig) error {
		cfg.opts.IncludeUndefined = enabled
		return nil
	}
}

// WithMaxObjectDepth sets the recursion ceiling for nested schemas.
// Default: 8
func WithMaxObjectDepth(n int) Option {
	return func(cfg *genConfig) error {
		if n <= 0 {
			return &generrors.ConfigError{Option: "MaxObjectDepth", Value: n, Message: "must be positive"}
		}
		cfg.opts.MaxObjectDepth = n
		return nil
	}
}

// WithLogger sets the logger used for diagnostic output.
// Default: NopLogger
func WithLogger(l Logger) Option {
	return func(cfg *genConfig) error {
		if l == nil {
			return &generrors.ConfigError{Option: "Logger", Message: "cannot be nil"}
		}
		cfg.logger = l
		return nil
	}
}
