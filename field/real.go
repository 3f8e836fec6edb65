package field

// Real implements Field[float64] with plain IEEE-754 arithmetic.
// It is the fast path; precision hazards near coincident decay
// constants are surfaced separately by the conditioning report.
type Real struct{}

// Zero returns 0.
func (Real) Zero() float64 { return 0 }

// One returns 1.
func (Real) One() float64 { return 1 }

// Add returns a + b.
func (Real) Add(a, b float64) float64 { return a + b }

// Sub returns a − b.
func (Real) Sub(a, b float64) float64 { return a - b }

// Mul returns a × b.
func (Real) Mul(a, b float64) float64 { return a * b }

// Div returns a / b. b must be nonzero (caller gates with IsZero).
func (Real) Div(a, b float64) float64 { return a / b }

// Neg returns −a.
func (Real) Neg(a float64) float64 { return -a }

// IsZero reports a == 0 exactly.
func (Real) IsZero(a float64) bool { return a == 0 }

// Sign returns the sign of a as -1, 0 or +1.
func (Real) Sign(a float64) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return +1
	}

	return 0
}

// Cmp compares a and b.
func (Real) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	}

	return 0
}

// Float64 is the identity projection.
func (Real) Float64(a float64) float64 { return a }
