// Package netbuild: the generator implementations.
package netbuild

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/radkit/bateman/decay"
	"github.com/radkit/bateman/field"
)

var (
	// ErrBadCount indicates a generator was asked for fewer than two
	// nuclides (a chain needs at least a parent and a sink).
	ErrBadCount = errors.New("netbuild: nuclide count must be >= 2")

	// ErrBadFanout indicates a non-positive branching fan-out.
	ErrBadFanout = errors.New("netbuild: fan-out must be >= 1")

	// ErrBadDensity indicates an edge density outside (0, 1].
	ErrBadDensity = errors.New("netbuild: density must be in (0,1]")
)

// lambdaScale returns n decay constants spaced logarithmically from
// max down to min: distinct by construction, so generated chains never
// trip the degenerate-constants error.
func lambdaScale(n int, o Options) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = o.maxLambda
		return out
	}
	ratio := math.Log(o.minLambda / o.maxLambda)
	for i := 0; i < n; i++ {
		out[i] = o.maxLambda * math.Exp(ratio*float64(i)/float64(n-1))
	}

	return out
}

// LinearChain builds the n-nuclide chain 0 → 1 → … → n−1 with unit
// branching fractions; the final nuclide is stable.
func LinearChain(n int, opts ...Option) (*decay.Network[float64], error) {
	if n < 2 {
		return nil, fmt.Errorf("LinearChain(%d): %w", n, ErrBadCount)
	}
	o := gatherOptions(opts)
	lams := lambdaScale(n-1, o)

	nuclides := make([]decay.Nuclide[float64], n)
	for i := 0; i < n-1; i++ {
		nuclides[i] = decay.Nuclide[float64]{
			Name:          fmt.Sprintf("N-%d", i),
			DecayConstant: lams[i],
			Branches:      []decay.Branch[float64]{{Progeny: i + 1, Fraction: 1}},
		}
	}
	nuclides[n-1] = decay.Nuclide[float64]{Name: fmt.Sprintf("N-%d", n-1)} // stable sink

	return decay.NewNetwork[float64](field.Real{}, nuclides)
}

// Branching builds a complete branching cascade of the given depth:
// every non-leaf nuclide decays into fanout fresh progeny with equal
// fractions 1/fanout; leaves are stable. Total nuclide count is
// (fanout^(depth+1) − 1)/(fanout − 1) for fanout > 1, depth+1 otherwise.
func Branching(depth, fanout int, opts ...Option) (*decay.Network[float64], error) {
	if depth < 1 {
		return nil, fmt.Errorf("Branching(depth=%d): %w", depth, ErrBadCount)
	}
	if fanout < 1 {
		return nil, fmt.Errorf("Branching(fanout=%d): %w", fanout, ErrBadFanout)
	}
	o := gatherOptions(opts)

	// Count nodes level by level; breadth-first indexing keeps every
	// branch pointed at a strictly higher index.
	total := 0
	width := 1
	for lvl := 0; lvl <= depth; lvl++ {
		total += width
		width *= fanout
	}
	lams := lambdaScale(total, o)
	fraction := 1.0 / float64(fanout)

	nuclides := make([]decay.Nuclide[float64], total)
	next := 1 // index of the first child of node 0
	for i := 0; i < total; i++ {
		if next >= total {
			nuclides[i] = decay.Nuclide[float64]{Name: fmt.Sprintf("N-%d", i)} // stable leaf
			continue
		}
		brs := make([]decay.Branch[float64], fanout)
		for c := 0; c < fanout; c++ {
			brs[c] = decay.Branch[float64]{Progeny: next, Fraction: fraction}
			next++
		}
		nuclides[i] = decay.Nuclide[float64]{
			Name:          fmt.Sprintf("N-%d", i),
			DecayConstant: lams[i],
			Branches:      brs,
		}
	}

	return decay.NewNetwork[float64](field.Real{}, nuclides)
}

// RandomDAG builds an n-nuclide random decay DAG: each candidate edge
// j → k with k > j exists with probability density, fractions split
// equally among a node's progeny. Nodes without progeny become stable
// sinks. Deterministic for a fixed seed.
func RandomDAG(n int, density float64, opts ...Option) (*decay.Network[float64], error) {
	if n < 2 {
		return nil, fmt.Errorf("RandomDAG(%d): %w", n, ErrBadCount)
	}
	if density <= 0 || density > 1 {
		return nil, fmt.Errorf("RandomDAG(density=%g): %w", density, ErrBadDensity)
	}
	o := gatherOptions(opts)
	rng := rand.New(rand.NewSource(o.seed))
	lams := lambdaScale(n, o)

	nuclides := make([]decay.Nuclide[float64], n)
	for j := 0; j < n; j++ {
		var targets []int
		for k := j + 1; k < n; k++ {
			if rng.Float64() < density {
				targets = append(targets, k)
			}
		}
		if len(targets) == 0 {
			nuclides[j] = decay.Nuclide[float64]{Name: fmt.Sprintf("N-%d", j)} // stable sink
			continue
		}
		fraction := 1.0 / float64(len(targets))
		brs := make([]decay.Branch[float64], len(targets))
		for p, k := range targets {
			brs[p] = decay.Branch[float64]{Progeny: k, Fraction: fraction}
		}
		nuclides[j] = decay.Nuclide[float64]{
			Name:          fmt.Sprintf("N-%d", j),
			DecayConstant: lams[j],
			Branches:      brs,
		}
	}

	return decay.NewNetwork[float64](field.Real{}, nuclides)
}
