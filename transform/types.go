// Package transform: options, defaults, sentinel errors and result types.
package transform

import (
	"errors"
	"math"

	"github.com/radkit/bateman/sparse"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultConditionThreshold is the relative decay-constant
	// difference below which a chain pair is flagged as numerically
	// ill-conditioned for the floating-point solve.
	DefaultConditionThreshold = 1e-3

	// DefaultWorkers is the number of concurrent column builders.
	// 1 means a fully serial build.
	DefaultWorkers = 1
)

// Sentinel errors for the transform build.
var (
	// ErrNilNetwork indicates Build was called with a nil network.
	ErrNilNetwork = errors.New("transform: decay network is nil")

	// ErrDegenerateConstants indicates two nuclides in the same chain
	// with exactly equal decay constants; the eigencoefficient is
	// undefined and the build fails for that column.
	ErrDegenerateConstants = errors.New("transform: degenerate decay constants in chain")
)

// Pair identifies a flagged (progeny, ancestor) combination:
// Row is the progeny index i, Col the ancestor (column) index j.
type Pair struct {
	Row int
	Col int
}

// Result bundles the outputs of one transform build.
type Result[T any] struct {
	// C is the eigenvector-coefficient matrix: unit diagonal, nonzero
	// rows of column j confined to chain(j).
	C *sparse.CSC[T]

	// CInv is the inverse of C with the same sparsity pattern.
	CInv *sparse.CSC[T]

	// Lambda holds the per-nuclide decay constants, indexed by nuclide
	// position; −Lambda[i] is the i-th diagonal entry of Λ.
	Lambda []T

	// IllConditioned lists chain pairs whose decay constants differ by
	// less than the conditioning threshold in relative terms.
	// Diagnostic only: a flagged pair never aborts the build.
	IllConditioned []Pair
}

// Option configures a Build call.
type Option func(*Options)

// Options holds the configurable parameters of Build.
type Options struct {
	workers        int
	threshold      float64
	generalClosure bool
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		workers:   DefaultWorkers,
		threshold: DefaultConditionThreshold,
	}
}

// gatherOptions applies opts over the defaults and normalizes values.
func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = 1
	}
	o.threshold = math.Abs(o.threshold)

	return o
}

// WithWorkers sets the number of goroutines computing matrix columns.
// Values below 1 fall back to a serial build. Results are identical
// for any worker count; only wall-clock time changes.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithConditionThreshold overrides the relative-difference threshold of
// the ill-conditioning report. The sign is ignored; 0 disables the
// report entirely.
func WithConditionThreshold(eps float64) Option {
	return func(o *Options) { o.threshold = eps }
}

// WithGeneralClosure switches chain resolution to the general
// DFS-reachability pass plus an explicit topological sort, lifting the
// ancestor < descendant index-ordering requirement at the cost of one
// extra O(V+E) traversal.
func WithGeneralClosure() Option {
	return func(o *Options) { o.generalClosure = true }
}
