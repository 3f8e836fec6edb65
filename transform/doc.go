// Package transform builds the analytical decay-transform matrices of
// the Bateman equations: given a validated decay.Network it produces
// the sparse matrices C and C⁻¹ such that the time-evolved nuclide
// quantity vector is
//
//	N(t) = C · diag(exp(Λ[i,i]·t)) · C⁻¹ · N(0)
//
// The pipeline (Build) runs: generator-matrix construction (Λ) →
// chain-closure resolution → triangular solve of C → triangular solve
// of C⁻¹, with an ill-conditioning report flagging chain pairs whose
// decay constants nearly coincide.
//
// The solve kernel is written once, generic over field.Field[T], so
// the float64 build and the exact-rational build share one algorithm;
// only the arithmetic differs. Columns of C (and of C⁻¹) are mutually
// independent, so WithWorkers enables a per-column parallel build over
// the shared, immutable closure sets.
//
// The package performs no I/O: inputs are in-memory networks, outputs
// are in-memory sparse matrices plus diagnostic value lists.
package transform
