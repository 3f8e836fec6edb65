// Package field abstracts the numeric domain of the decay-transform
// computation so the triangular solver is written once and instantiated
// for both finite-precision and exact arithmetic.
//
// A Field[T] supplies the small capability set the solver needs:
// neutral elements, ring operations, division, sign queries and a
// float64 projection used by diagnostics. Two implementations ship with
// the package:
//
//   - Real     — plain float64 arithmetic (fast, subject to cancellation
//     when decay constants nearly coincide),
//   - Rational — exact *big.Rat arithmetic (no rounding; division is
//     mathematically exact).
//
// All operations are pure: Rational never mutates its operands and
// always returns freshly allocated values, so results may be shared
// freely across goroutines once produced.
package field
