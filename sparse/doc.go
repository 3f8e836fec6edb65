// Package sparse provides the column-compressed matrix representation
// used throughout the decay-transform build.
//
// The package offers:
//
//   - CSC[T], an immutable square sparse matrix in compressed-sparse-
//     column form, generic over the numeric element type,
//   - Builder[T], a column-at-a-time bulk constructor: the sparsity
//     pattern of each column is appended together with its values in a
//     single operation, so no incremental structural mutation ever
//     happens on a finished matrix,
//   - Mul for CSC×CSC products and AllClose for tolerance comparison,
//     used to verify the C·C⁻¹ = I round-trip property.
//
// CSC is best for the strictly column-oriented access pattern of the
// triangular solvers: O(colPtr) column slicing and O(log nnz_col)
// random entry lookup, with O(N + nnz) memory.
package sparse
