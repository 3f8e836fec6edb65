// Package bateman computes the analytical transform matrices that
// solve coupled radioactive-decay chain equations (the Bateman
// equations) for an arbitrary acyclic decay network with branching.
//
// 🚀 What does it produce?
//
//	Given per-nuclide decay constants and branching fractions, the
//	library builds two square sparse matrices C and C⁻¹ such that the
//	time-evolved quantity vector of any nuclide mixture is obtained by
//	diagonal exponential scaling sandwiched between them:
//
//	    N(t) = C · diag(e^{−λᵢt}) · C⁻¹ · N(0)
//
// ✨ Why this library?
//
//   - Dual numeric domains — one generic solver, instantiated for fast
//     float64 and for exact *big.Rat arithmetic
//   - Honest diagnostics — ill-conditioned chain pairs and dropped
//     branches are reported, never hidden
//   - Pure Go — no cgo, no I/O, deterministic output
//   - Parallel-ready — independent matrix columns can be built
//     concurrently over shared immutable chain sets
//
// Everything is organized under six subpackages:
//
//	decay/     — the decay-network data model (nuclides, branches)
//	field/     — the numeric-domain abstraction (Real, Rational)
//	sparse/    — column-compressed matrices + bulk builder
//	chain/     — transitive decay-chain closure, ordering and cycle checks
//	transform/ — Λ construction, triangular solvers, the Build facade
//	netbuild/  — synthetic network generators for tests and benchmarks
//
// Quick ASCII example:
//
//	A ──→ B ──→ C (stable)
//
//	a two-step chain whose transform matrices are unit lower-triangular
//	with closed-form Bateman coefficients below the diagonal.
//
// Parsing of nuclear-data files, half-life unit conversion and
// persistence of the produced matrices are deliberately out of scope;
// this core accepts an already-parsed network and returns matrices.
package bateman
