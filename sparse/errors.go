// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All functions in this package return these sentinels (possibly
// wrapped with call-site context via fmt.Errorf("Fn: %w", err)) and
// tests match them with errors.Is. No function panics on a
// user-triggered condition.

package sparse

import "errors"

var (
	// ErrBadDimension is returned when a requested matrix dimension is
	// not positive.
	ErrBadDimension = errors.New("sparse: dimension must be > 0")

	// ErrOutOfRange indicates a row or column index outside [0, N).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrColumnOrder is returned by Builder.AppendCol when columns are
	// appended out of sequence (columns must arrive as 0, 1, …, N−1).
	ErrColumnOrder = errors.New("sparse: columns must be appended in ascending order")

	// ErrRowOrder is returned when a column's row indices are not
	// strictly ascending (duplicates included).
	ErrRowOrder = errors.New("sparse: row indices must be strictly ascending")

	// ErrLengthMismatch indicates rows and values of differing lengths
	// passed to Builder.AppendCol, or a vector of the wrong length.
	ErrLengthMismatch = errors.New("sparse: rows/values length mismatch")

	// ErrIncomplete is returned by Builder.Finish before every column
	// has been appended.
	ErrIncomplete = errors.New("sparse: not all columns appended")

	// ErrNilMatrix indicates a nil *CSC receiver or argument.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)
