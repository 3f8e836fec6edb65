// Package transform — the Build facade.
//
// Build wires the full pipeline in the canonical order:
// network → Λ → chain closure → conditioning report → C → C⁻¹.
// Each stage consumes only finished, immutable outputs of the previous
// one, which is what makes the optional per-column parallelism safe.
package transform

import (
	"fmt"

	"github.com/radkit/bateman/chain"
	"github.com/radkit/bateman/decay"
)

// Build computes the decay-transform matrices C and C⁻¹ for net,
// in whichever numeric domain the network was constructed over
// (float64 via field.Real, exact rationals via field.Rational).
//
// By default the network must honor the ancestor < descendant index
// contract (validated up front, ErrOrderingViolation otherwise); pass
// WithGeneralClosure to accept arbitrary index orderings. A cyclic
// decay graph fails with ErrCycleDetected; exactly equal decay
// constants within one chain fail with ErrDegenerateConstants.
//
// The build is deterministic: identical inputs and options produce
// identical matrices and diagnostics, for any worker count.
func Build[T any](net *decay.Network[T], options ...Option) (*Result[T], error) {
	if net == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilNetwork)
	}
	opts := gatherOptions(options)

	// Resolve chain membership from the direct-progeny pattern.
	direct := net.Progeny()
	n := net.Len()
	var (
		chains [][]int
		pos    []int
		err    error
	)
	if opts.generalClosure {
		// Arbitrary ordering: verify acyclicity first for a precise
		// error, then resolve reachability and a topological rank.
		if err = chain.DetectCycle(direct); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		if chains, err = chain.ClosureDFS(direct); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		var order []int
		if order, err = chain.TopoOrder(direct); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		pos = make([]int, n)
		for rank, v := range order {
			pos[v] = rank
		}
	} else {
		// Ordering contract path: ascending index is already a
		// topological order, and acyclicity is implied.
		if chains, err = chain.Closure(direct); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		pos = make([]int, n)
		for v := range pos {
			pos[v] = v
		}
	}

	// Derive the generator matrix and decay-constant vector.
	lam, lambda, err := BuildOperator(net)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	// Diagnostic pass; never fatal.
	flagged := Conditioning(net.Field(), lambda, chains, opts.threshold)

	// Triangular phases: C first, then C⁻¹ over the finished C.
	s := &solver[T]{f: net.Field(), lam: lam, lambda: lambda, chains: chains, pos: pos}
	c, err := s.solveMatrix(s.solveColumnC, opts.workers)
	if err != nil {
		return nil, fmt.Errorf("Build: C: %w", err)
	}
	s.c = c
	cInv, err := s.solveMatrix(s.solveColumnCInv, opts.workers)
	if err != nil {
		return nil, fmt.Errorf("Build: C⁻¹: %w", err)
	}

	return &Result[T]{C: c, CInv: cInv, Lambda: lambda, IllConditioned: flagged}, nil
}
