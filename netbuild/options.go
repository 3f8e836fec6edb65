// Package netbuild: functional configuration for the generators.
package netbuild

// Defaults — single source of truth for generator behavior.
const (
	// DefaultSeed feeds the deterministic random source of RandomDAG.
	DefaultSeed int64 = 1

	// DefaultMinLambda is the smallest generated decay constant (s⁻¹).
	DefaultMinLambda = 1e-6

	// DefaultMaxLambda is the largest generated decay constant (s⁻¹).
	DefaultMaxLambda = 1.0
)

// Option configures a generator call.
type Option func(*Options)

// Options holds the configurable parameters shared by all generators.
type Options struct {
	seed      int64
	minLambda float64
	maxLambda float64
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		seed:      DefaultSeed,
		minLambda: DefaultMinLambda,
		maxLambda: DefaultMaxLambda,
	}
}

// gatherOptions applies opts over the defaults and normalizes the
// lambda range so min ≤ max.
func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.minLambda > o.maxLambda {
		o.minLambda, o.maxLambda = o.maxLambda, o.minLambda
	}

	return o
}

// WithSeed sets the random seed used by RandomDAG.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithLambdaRange sets the [min, max] range decay constants are drawn
// from. Both bounds must be positive; the range is normalized so
// min ≤ max.
func WithLambdaRange(min, max float64) Option {
	return func(o *Options) {
		if min > 0 {
			o.minLambda = min
		}
		if max > 0 {
			o.maxLambda = max
		}
	}
}
