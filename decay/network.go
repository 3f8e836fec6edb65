// Package decay: the Network container and its validating constructor.
package decay

import (
	"fmt"

	"github.com/radkit/bateman/field"
)

// Network is a frozen, validated decay network over numeric domain T.
// It owns defensive copies of the supplied nuclides; mutating the
// caller's slices after construction has no effect on the Network.
type Network[T any] struct {
	f        field.Field[T]
	nuclides []Nuclide[T]
	dropped  int // branches discarded for out-of-range progeny
}

// NewNetwork validates and freezes a decay network.
//
// Validation (fail-fast, first violation wins):
//   - f non-nil, at least one nuclide,
//   - every decay constant nonnegative,
//   - every branching fraction in (0, 1],
//   - stable nuclides (λ = 0) carry no branches,
//   - no nuclide decays directly to itself.
//
// Branches whose progeny index lies outside [0, len(nuclides)) are
// dropped and counted (see DroppedBranches); upstream curation is
// expected to have pruned them, so the drop is a diagnostic, not an
// error.
//
// Complexity: O(V + E).
func NewNetwork[T any](f field.Field[T], nuclides []Nuclide[T]) (*Network[T], error) {
	if f == nil {
		return nil, ErrNilField
	}
	if len(nuclides) == 0 {
		return nil, ErrEmptyNetwork
	}

	n := len(nuclides)
	net := &Network[T]{f: f, nuclides: make([]Nuclide[T], n)}
	one := f.One()

	for j, nuc := range nuclides {
		if f.Sign(nuc.DecayConstant) < 0 {
			return nil, fmt.Errorf("NewNetwork: nuclide %d (%s): %w", j, nuc.Name, ErrNegativeDecayConstant)
		}
		stable := f.IsZero(nuc.DecayConstant)
		if stable && len(nuc.Branches) > 0 {
			return nil, fmt.Errorf("NewNetwork: nuclide %d (%s): %w", j, nuc.Name, ErrStableBranch)
		}

		kept := make([]Branch[T], 0, len(nuc.Branches))
		for _, br := range nuc.Branches {
			if f.Sign(br.Fraction) <= 0 || f.Cmp(br.Fraction, one) > 0 {
				return nil, fmt.Errorf("NewNetwork: nuclide %d (%s) → %d: %w", j, nuc.Name, br.Progeny, ErrBranchFraction)
			}
			if br.Progeny == j {
				return nil, fmt.Errorf("NewNetwork: nuclide %d (%s): %w", j, nuc.Name, ErrSelfDecay)
			}
			if br.Progeny < 0 || br.Progeny >= n {
				net.dropped++ // out-of-range target: drop, but keep count
				continue
			}
			kept = append(kept, br)
		}
		net.nuclides[j] = Nuclide[T]{Name: nuc.Name, DecayConstant: nuc.DecayConstant, Branches: kept}
	}

	return net, nil
}

// Field returns the arithmetic the network's values live in.
func (net *Network[T]) Field() field.Field[T] { return net.f }

// Len returns the number of nuclides.
func (net *Network[T]) Len() int { return len(net.nuclides) }

// DroppedBranches reports how many branches were discarded at
// construction because their progeny index was out of range.
func (net *Network[T]) DroppedBranches() int { return net.dropped }

// Name returns the label of nuclide i, or "" when i is out of range.
func (net *Network[T]) Name(i int) string {
	if i < 0 || i >= len(net.nuclides) {
		return ""
	}

	return net.nuclides[i].Name
}

// DecayConstant returns λ of nuclide i.
// Returns ErrIndexOutOfRange for an invalid index.
func (net *Network[T]) DecayConstant(i int) (T, error) {
	if i < 0 || i >= len(net.nuclides) {
		var zero T
		return zero, fmt.Errorf("DecayConstant(%d): %w", i, ErrIndexOutOfRange)
	}

	return net.nuclides[i].DecayConstant, nil
}

// Stable reports whether nuclide i has λ = 0. Out-of-range indices
// report false.
func (net *Network[T]) Stable(i int) bool {
	if i < 0 || i >= len(net.nuclides) {
		return false
	}

	return net.f.IsZero(net.nuclides[i].DecayConstant)
}

// Branches returns the validated branches of nuclide i. The returned
// slice is owned by the Network and must not be modified.
// Returns ErrIndexOutOfRange for an invalid index.
func (net *Network[T]) Branches(i int) ([]Branch[T], error) {
	if i < 0 || i >= len(net.nuclides) {
		return nil, fmt.Errorf("Branches(%d): %w", i, ErrIndexOutOfRange)
	}

	return net.nuclides[i].Branches, nil
}

// Progeny returns, for every nuclide, the deduplicated ascending list
// of direct progeny indices — the off-diagonal sparsity pattern of the
// generator matrix, consumed by the chain-closure resolver.
// Complexity: O(V + E·log E).
func (net *Network[T]) Progeny() [][]int {
	out := make([][]int, len(net.nuclides))
	for j := range net.nuclides {
		brs := net.nuclides[j].Branches
		if len(brs) == 0 {
			out[j] = nil
			continue
		}
		rows := make([]int, 0, len(brs))
		seen := make(map[int]struct{}, len(brs))
		for _, br := range brs {
			if _, dup := seen[br.Progeny]; dup {
				continue
			}
			seen[br.Progeny] = struct{}{}
			rows = append(rows, br.Progeny)
		}
		insertionSort(rows)
		out[j] = rows
	}

	return out
}

// insertionSort keeps tiny progeny lists ordered without pulling in
// sort for slices that rarely exceed a handful of entries.
func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
