// Package transform: the generic triangular solve kernel.
//
// The same recursive coefficient formulas run for float64 and exact
// rationals; only the field.Field implementation differs. C is built
// first (its columns depend on Λ alone), then C⁻¹ (whose columns read
// the finished, immutable C plus same-column C⁻¹ entries). Within a
// column, chain members are processed in topological order so every
// intermediate coefficient is resolved before it is consumed; under
// the ancestor < descendant index contract this order is simply
// ascending index.
package transform

import (
	"fmt"
	"sort"
	"sync"

	"github.com/radkit/bateman/field"
	"github.com/radkit/bateman/sparse"
)

// solver carries the shared read-only inputs of one triangular solve.
// All fields are immutable during the solve, so column workers share
// them without synchronization.
type solver[T any] struct {
	f      field.Field[T]
	lam    *sparse.CSC[T] // generator matrix Λ
	lambda []T            // λ per nuclide (λⱼ = −Λ[j,j])
	chains [][]int        // chain(j) per column, ascending
	pos    []int          // topological rank per nuclide index
	c      *sparse.CSC[T] // finished C; set only for the C⁻¹ phase
}

// column is one solved column ready for bulk CSC assembly.
type column[T any] struct {
	rows []int
	vals []T
}

// orderedMembers returns {j} ∪ chain(j) sorted by topological rank,
// which is the iteration (and dependency) order of the recurrences.
func (s *solver[T]) orderedMembers(j int) []int {
	ord := make([]int, 0, len(s.chains[j])+1)
	ord = append(ord, j)
	ord = append(ord, s.chains[j]...)
	sort.Slice(ord, func(a, b int) bool { return s.pos[ord[a]] < s.pos[ord[b]] })

	return ord
}

// emit converts the per-member value map into the ascending-row form
// the sparse builder requires.
func emit[T any](members []int, val map[int]T) column[T] {
	rows := make([]int, len(members))
	copy(rows, members)
	sort.Ints(rows)
	vals := make([]T, len(rows))
	for p, r := range rows {
		vals[p] = val[r]
	}

	return column[T]{rows: rows, vals: vals}
}

// solveColumnC computes column j of C.
//
// For each chain member i (topological order, after the unit diagonal):
//
//	C[i,j] = ( Σ_{k before i} Λ[i,k]·C[k,j] ) / (Λ[j,j] − Λ[i,i])
//
// The denominator is the decay-constant difference λᵢ − λⱼ; exact
// coincidence of λᵢ and λⱼ makes the coefficient undefined and fails
// the build with ErrDegenerateConstants.
func (s *solver[T]) solveColumnC(j int) (column[T], error) {
	ord := s.orderedMembers(j)
	val := make(map[int]T, len(ord))
	val[ord[0]] = s.f.One() // C[j,j] = 1

	for m := 1; m < len(ord); m++ {
		i := ord[m]
		sigma := s.f.Zero()
		for _, k := range ord {
			if k == i {
				break
			}
			lik, ok, _ := s.lam.At(i, k)
			if !ok || s.f.IsZero(lik) {
				continue // structural zero contributes nothing
			}
			sigma = s.f.Add(sigma, s.f.Mul(lik, val[k]))
		}
		// Λ[j,j] − Λ[i,i] = (−λⱼ) − (−λᵢ) = λᵢ − λⱼ.
		denom := s.f.Sub(s.lambda[i], s.lambda[j])
		if s.f.IsZero(denom) {
			return column[T]{}, fmt.Errorf("column %d: nuclides %d and %d: %w", j, i, j, ErrDegenerateConstants)
		}
		val[i] = s.f.Div(sigma, denom)
	}

	return emit(ord, val), nil
}

// solveColumnCInv computes column j of C⁻¹.
//
// For each chain member i (topological order, after the unit diagonal):
//
//	C⁻¹[i,j] = − Σ_{k before i} C[i,k]·C⁻¹[k,j]
//
// No division occurs, so this phase adds no precision hazard beyond
// the one already embedded in C.
func (s *solver[T]) solveColumnCInv(j int) (column[T], error) {
	ord := s.orderedMembers(j)
	val := make(map[int]T, len(ord))
	val[ord[0]] = s.f.One() // C⁻¹[j,j] = 1

	for m := 1; m < len(ord); m++ {
		i := ord[m]
		sigma := s.f.Zero()
		for _, k := range ord {
			if k == i {
				break
			}
			cik, ok, _ := s.c.At(i, k)
			if !ok || s.f.IsZero(cik) {
				continue
			}
			sigma = s.f.Add(sigma, s.f.Mul(cik, val[k]))
		}
		val[i] = s.f.Neg(sigma)
	}

	return emit(ord, val), nil
}

// solveMatrix runs one triangular phase over all columns with the given
// worker count and assembles the result in a single bulk pass.
// Column results are deterministic regardless of worker count; the
// first failing column (lowest index) wins error reporting.
func (s *solver[T]) solveMatrix(solveCol func(j int) (column[T], error), workers int) (*sparse.CSC[T], error) {
	n := len(s.chains)
	cols := make([]column[T], n)
	errs := make([]error, n)

	if workers <= 1 {
		for j := 0; j < n; j++ {
			c, err := solveCol(j)
			if err != nil {
				return nil, err
			}
			cols[j] = c
		}
	} else {
		var wg sync.WaitGroup
		feed := make(chan int)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := range feed {
					cols[j], errs[j] = solveCol(j)
				}
			}()
		}
		for j := 0; j < n; j++ {
			feed <- j
		}
		close(feed)
		wg.Wait()
		for j := 0; j < n; j++ {
			if errs[j] != nil {
				return nil, errs[j]
			}
		}
	}

	b, err := sparse.NewBuilder[T](n)
	if err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		if err = b.AppendCol(j, cols[j].rows, cols[j].vals); err != nil {
			return nil, err
		}
	}

	return b.Finish()
}
