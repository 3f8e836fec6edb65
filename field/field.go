// Package field: the Field[T] capability set consumed by the solvers.
//
// The interface is intentionally minimal — exactly the operations the
// recursive Bateman coefficient formulas require, nothing more:
// {Zero, One, Add, Sub, Mul, Div, Neg, IsZero, Sign, Cmp, Float64}.
package field

// Field defines the arithmetic capabilities required to build the
// decay-transform matrices over element type T.
//
// Contract:
//   - All operations are pure; operands are never mutated.
//   - Div(a, b) requires IsZero(b) == false; callers gate divisions with
//     IsZero before invoking Div (division by zero is a programmer error
//     at this layer and may panic).
//   - Float64 returns the nearest float64 approximation of a value and
//     is used only for diagnostics (ill-conditioning ratios), never for
//     the matrix entries themselves.
//
// Complexity: every method is O(1) for Real; O(len) in operand digit
// length for Rational.
type Field[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// One returns the multiplicative identity.
	One() T

	// Add returns a + b.
	Add(a, b T) T

	// Sub returns a − b.
	Sub(a, b T) T

	// Mul returns a × b.
	Mul(a, b T) T

	// Div returns a / b. b must be nonzero (checked by the caller via
	// IsZero); dividing by zero may panic.
	Div(a, b T) T

	// Neg returns −a.
	Neg(a T) T

	// IsZero reports whether a equals the additive identity.
	IsZero(a T) bool

	// Sign returns -1, 0 or +1 according to the sign of a.
	Sign(a T) int

	// Cmp compares a and b, returning -1 if a < b, 0 if equal, +1 if a > b.
	Cmp(a, b T) int

	// Float64 returns the nearest float64 approximation of a.
	Float64(a T) float64
}
