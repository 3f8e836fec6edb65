// SPDX-License-Identifier: MIT

// Package sparse: the CSC matrix type and its read-only accessors.
// CSC values are produced exclusively by Builder.Finish (or Identity)
// and are immutable afterwards; all accessors are safe for concurrent
// use by multiple goroutines.
package sparse

import (
	"fmt"
	"sort"
)

// Triplet is one explicit (row, col, value) entry of a sparse matrix,
// the interchange form handed back to callers that serialize or
// post-process the transform matrices.
type Triplet[T any] struct {
	Row int // 0-based row index
	Col int // 0-based column index
	Val T   // stored value
}

// CSC is a square sparse matrix in compressed-sparse-column form.
//
// Storage layout (standard CSC):
//
//	colPtr has length n+1; column j occupies rowIdx[colPtr[j]:colPtr[j+1]]
//	and val[colPtr[j]:colPtr[j+1]], with row indices strictly ascending.
//
// Entries absent from the pattern are structural zeros.
type CSC[T any] struct {
	n      int   // matrix dimension (square: n×n)
	colPtr []int // column start offsets, len n+1
	rowIdx []int // row index per stored entry, ascending within a column
	val    []T   // value per stored entry, parallel to rowIdx
}

// N returns the matrix dimension.
// Complexity: O(1).
func (m *CSC[T]) N() int { return m.n }

// NNZ returns the number of explicitly stored entries.
// Complexity: O(1).
func (m *CSC[T]) NNZ() int { return len(m.rowIdx) }

// At returns the entry at (i, j) together with ok=true when (i, j) is
// part of the stored pattern. A structural zero yields the zero value
// of T and ok=false. Out-of-range indices return ErrOutOfRange.
// Complexity: O(log nnz_col) binary search within column j.
func (m *CSC[T]) At(i, j int) (v T, ok bool, err error) {
	if m == nil {
		return v, false, ErrNilMatrix
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return v, false, fmt.Errorf("CSC.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	lo, hi := m.colPtr[j], m.colPtr[j+1]
	// Binary search the sorted row indices of column j.
	p := lo + sort.SearchInts(m.rowIdx[lo:hi], i)
	if p < hi && m.rowIdx[p] == i {
		return m.val[p], true, nil
	}

	return v, false, nil
}

// Col returns the stored row indices and values of column j.
// The returned slices alias internal storage and must not be modified.
// Complexity: O(1).
func (m *CSC[T]) Col(j int) (rows []int, vals []T, err error) {
	if m == nil {
		return nil, nil, ErrNilMatrix
	}
	if j < 0 || j >= m.n {
		return nil, nil, fmt.Errorf("CSC.Col(%d): %w", j, ErrOutOfRange)
	}
	lo, hi := m.colPtr[j], m.colPtr[j+1]

	return m.rowIdx[lo:hi], m.val[lo:hi], nil
}

// Triplets returns every stored entry as (row, col, value) triples in
// column-major order, the interchange representation for callers that
// persist or re-encode the matrices.
// Complexity: O(nnz).
func (m *CSC[T]) Triplets() []Triplet[T] {
	out := make([]Triplet[T], 0, len(m.rowIdx))
	for j := 0; j < m.n; j++ {
		for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			out = append(out, Triplet[T]{Row: m.rowIdx[p], Col: j, Val: m.val[p]})
		}
	}

	return out
}
