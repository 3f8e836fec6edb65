// SPDX-License-Identifier: MIT

// Package sparse: bulk construction of CSC matrices.
// The Builder accepts whole columns in ascending order — pattern and
// values together — and emits the finished matrix in one Finish call.
// This keeps construction a single linear pass with zero structural
// mutation of an already-built matrix.
package sparse

import "fmt"

// Builder assembles a CSC[T] column by column.
//
// Usage:
//
//	b, _ := NewBuilder[float64](n)
//	for j := 0; j < n; j++ {
//		_ = b.AppendCol(j, rows, vals) // rows strictly ascending
//	}
//	m, _ := b.Finish()
//
// AppendCol enforces the column sequence 0…n−1 and strict row ordering,
// so a finished matrix always satisfies the CSC layout invariants.
type Builder[T any] struct {
	n      int
	colPtr []int
	rowIdx []int
	val    []T
	next   int // next expected column index
}

// NewBuilder returns a Builder for an n×n matrix.
// Returns ErrBadDimension when n <= 0.
func NewBuilder[T any](n int) (*Builder[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewBuilder(%d): %w", n, ErrBadDimension)
	}

	return &Builder[T]{
		n:      n,
		colPtr: make([]int, 1, n+1), // colPtr[0] == 0
	}, nil
}

// AppendCol appends column j with the given row pattern and values.
//
// Contract:
//   - j must equal the next unappended column (ErrColumnOrder),
//   - len(rows) == len(vals) (ErrLengthMismatch),
//   - rows strictly ascending, each within [0, n) (ErrRowOrder,
//     ErrOutOfRange).
//
// rows and vals are copied; the caller may reuse its slices.
// Complexity: O(len(rows)).
func (b *Builder[T]) AppendCol(j int, rows []int, vals []T) error {
	if j != b.next {
		return fmt.Errorf("AppendCol(%d): expected column %d: %w", j, b.next, ErrColumnOrder)
	}
	if len(rows) != len(vals) {
		return fmt.Errorf("AppendCol(%d): %d rows vs %d values: %w", j, len(rows), len(vals), ErrLengthMismatch)
	}
	prev := -1
	for _, r := range rows {
		if r < 0 || r >= b.n {
			return fmt.Errorf("AppendCol(%d): row %d: %w", j, r, ErrOutOfRange)
		}
		if r <= prev {
			return fmt.Errorf("AppendCol(%d): row %d after %d: %w", j, r, prev, ErrRowOrder)
		}
		prev = r
	}
	b.rowIdx = append(b.rowIdx, rows...)
	b.val = append(b.val, vals...)
	b.colPtr = append(b.colPtr, len(b.rowIdx))
	b.next++

	return nil
}

// Finish returns the completed matrix. Every column must have been
// appended; otherwise ErrIncomplete is returned and the builder stays
// usable. After a successful Finish the builder must not be reused.
func (b *Builder[T]) Finish() (*CSC[T], error) {
	if b.next != b.n {
		return nil, fmt.Errorf("Finish: %d of %d columns appended: %w", b.next, b.n, ErrIncomplete)
	}

	return &CSC[T]{n: b.n, colPtr: b.colPtr, rowIdx: b.rowIdx, val: b.val}, nil
}
