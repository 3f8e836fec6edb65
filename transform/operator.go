// Package transform: generator-matrix construction.
package transform

import (
	"fmt"
	"sort"

	"github.com/radkit/bateman/decay"
	"github.com/radkit/bateman/sparse"
)

// BuildOperator derives the generator matrix Λ and the parallel decay-
// constant vector λ from a validated network.
//
// Column j holds Λ[j,j] = −λⱼ on the diagonal (an explicit zero for
// stable nuclides, keeping the diagonal part of the pattern uniform)
// and Λ[i,j] = λⱼ·f(j→i) for every branch j → i. Multiple branches
// between the same pair accumulate rather than overwrite.
//
// Invalid branch targets never reach this builder: the network dropped
// and counted them at construction.
//
// Complexity: O(V + E·log E).
func BuildOperator[T any](net *decay.Network[T]) (*sparse.CSC[T], []T, error) {
	if net == nil {
		return nil, nil, ErrNilNetwork
	}
	f := net.Field()
	n := net.Len()

	b, err := sparse.NewBuilder[T](n)
	if err != nil {
		return nil, nil, fmt.Errorf("BuildOperator: %w", err)
	}
	lambda := make([]T, n)

	for j := 0; j < n; j++ {
		lj, _ := net.DecayConstant(j) // j is in range by construction
		lambda[j] = lj

		brs, _ := net.Branches(j)
		acc := make(map[int]T, len(brs)+1)
		rows := make([]int, 0, len(brs)+1)
		for _, br := range brs {
			term := f.Mul(lj, br.Fraction)
			if old, dup := acc[br.Progeny]; dup {
				acc[br.Progeny] = f.Add(old, term) // duplicate edge: accumulate
				continue
			}
			acc[br.Progeny] = term
			rows = append(rows, br.Progeny)
		}
		// Diagonal entry; self-decay was rejected at network build, so
		// j is never already present.
		acc[j] = f.Neg(lj)
		rows = append(rows, j)
		sort.Ints(rows)

		vals := make([]T, len(rows))
		for p, r := range rows {
			vals[p] = acc[r]
		}
		if err = b.AppendCol(j, rows, vals); err != nil {
			return nil, nil, fmt.Errorf("BuildOperator: column %d: %w", j, err)
		}
	}

	lam, err := b.Finish()
	if err != nil {
		return nil, nil, fmt.Errorf("BuildOperator: %w", err)
	}

	return lam, lambda, nil
}
