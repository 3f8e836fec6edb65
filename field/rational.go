package field

import "math/big"

// Rational implements Field[*big.Rat] with exact rational arithmetic.
//
// Every operation allocates a fresh *big.Rat; operands are never
// mutated, so values can be shared across concurrently built columns
// without synchronization. A nil operand is treated as zero, matching
// the zero value semantics of stable nuclides whose decay constant was
// never set.
type Rational struct{}

// ratOrZero normalizes a nil operand to the canonical zero.
func ratOrZero(a *big.Rat) *big.Rat {
	if a == nil {
		return new(big.Rat)
	}

	return a
}

// Zero returns a fresh rational 0.
func (Rational) Zero() *big.Rat { return new(big.Rat) }

// One returns a fresh rational 1.
func (Rational) One() *big.Rat { return big.NewRat(1, 1) }

// Add returns a + b as a fresh value.
func (Rational) Add(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Add(ratOrZero(a), ratOrZero(b))
}

// Sub returns a − b as a fresh value.
func (Rational) Sub(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Sub(ratOrZero(a), ratOrZero(b))
}

// Mul returns a × b as a fresh value.
func (Rational) Mul(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(ratOrZero(a), ratOrZero(b))
}

// Div returns a / b as a fresh value. b must be nonzero; callers gate
// with IsZero first (big.Rat panics on a zero divisor).
func (Rational) Div(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Quo(ratOrZero(a), ratOrZero(b))
}

// Neg returns −a as a fresh value.
func (Rational) Neg(a *big.Rat) *big.Rat {
	return new(big.Rat).Neg(ratOrZero(a))
}

// IsZero reports whether a is exactly zero (nil counts as zero).
func (Rational) IsZero(a *big.Rat) bool { return ratOrZero(a).Sign() == 0 }

// Sign returns the sign of a as -1, 0 or +1.
func (Rational) Sign(a *big.Rat) int { return ratOrZero(a).Sign() }

// Cmp compares a and b.
func (Rational) Cmp(a, b *big.Rat) int { return ratOrZero(a).Cmp(ratOrZero(b)) }

// Float64 returns the nearest float64 approximation of a.
// Used by diagnostics only; matrix entries stay exact.
func (Rational) Float64(a *big.Rat) float64 {
	f, _ := ratOrZero(a).Float64()

	return f
}
