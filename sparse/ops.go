// SPDX-License-Identifier: MIT

// Package sparse: matrix-level operations on CSC values.
// Only the operations the transform verification needs live here:
// identity construction, CSC×CSC product and tolerance comparison.
// Loop orders are fixed, so results are deterministic.
package sparse

import (
	"fmt"
	"math"

	"github.com/radkit/bateman/field"
)

// Identity returns I_n as a CSC with one entry per column.
// Complexity: O(n).
func Identity[T any](f field.Field[T], n int) (*CSC[T], error) {
	b, err := NewBuilder[T](n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	one := f.One()
	for j := 0; j < n; j++ {
		if err = b.AppendCol(j, []int{j}, []T{one}); err != nil {
			return nil, fmt.Errorf("Identity: %w", err)
		}
	}

	return b.Finish()
}

// Mul returns the product a×b over the supplied field.
// Exact zeros produced by cancellation are dropped from the result
// pattern, so an exact-rational C×C⁻¹ product collapses to a clean
// identity pattern.
//
// Complexity: O(Σ_j Σ_{k∈col_j(b)} nnz(col_k(a))) time, O(n) scratch.
func Mul[T any](f field.Field[T], a, b *CSC[T]) (*CSC[T], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Mul: %w", ErrNilMatrix)
	}
	if a.n != b.n {
		return nil, fmt.Errorf("Mul: %d vs %d: %w", a.n, b.n, ErrDimensionMismatch)
	}
	n := a.n
	out, err := NewBuilder[T](n)
	if err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}

	// Column-major accumulation into a dense scratch column, tracking
	// touched rows so the scratch resets in O(nnz) per column.
	acc := make([]T, n)
	present := make([]bool, n)
	touched := make([]int, 0, n)

	for j := 0; j < n; j++ {
		touched = touched[:0]
		bRows, bVals, _ := b.Col(j)
		for p, k := range bRows {
			aRows, aVals, _ := a.Col(k)
			for q, i := range aRows {
				term := f.Mul(aVals[q], bVals[p])
				if !present[i] {
					present[i] = true
					touched = append(touched, i)
					acc[i] = term
					continue
				}
				acc[i] = f.Add(acc[i], term)
			}
		}
		// Restore ascending row order disturbed by the scatter phase.
		sortInts(touched)
		rows := make([]int, 0, len(touched))
		vals := make([]T, 0, len(touched))
		for _, i := range touched {
			present[i] = false
			if f.IsZero(acc[i]) {
				continue // exact cancellation: keep the pattern tight
			}
			rows = append(rows, i)
			vals = append(vals, acc[i])
		}
		if err = out.AppendCol(j, rows, vals); err != nil {
			return nil, fmt.Errorf("Mul: %w", err)
		}
	}

	return out.Finish()
}

// AllClose reports whether a and b agree element-wise within
// |a[i,j] − b[i,j]| ≤ atol + rtol·|b[i,j]|, treating structural zeros
// as 0. Exactly equal values (including ±Inf) always pass; NaN never
// compares close to anything.
//
// Complexity: O(nnz(a) + nnz(b)). Deterministic.
func AllClose(a, b *CSC[float64], rtol, atol float64) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("AllClose: %w", ErrNilMatrix)
	}
	if a.n != b.n {
		return false, fmt.Errorf("AllClose: %d vs %d: %w", a.n, b.n, ErrDimensionMismatch)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	for j := 0; j < a.n; j++ {
		aRows, aVals, _ := a.Col(j)
		bRows, bVals, _ := b.Col(j)
		// Two-pointer merge over the sorted row patterns of column j.
		var p, q int
		for p < len(aRows) || q < len(bRows) {
			var av, bv float64
			switch {
			case q >= len(bRows) || (p < len(aRows) && aRows[p] < bRows[q]):
				av, bv = aVals[p], 0
				p++
			case p >= len(aRows) || bRows[q] < aRows[p]:
				av, bv = 0, bVals[q]
				q++
			default:
				av, bv = aVals[p], bVals[q]
				p++
				q++
			}
			if av == bv {
				continue
			}
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}

// sortInts is insertion sort: touched row lists are short and nearly
// sorted in the triangular workloads this package serves.
func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
