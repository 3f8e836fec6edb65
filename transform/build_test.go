package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radkit/bateman/chain"
	"github.com/radkit/bateman/decay"
	"github.com/radkit/bateman/field"
	"github.com/radkit/bateman/netbuild"
	"github.com/radkit/bateman/sparse"
	"github.com/radkit/bateman/transform"
)

// at reads a possibly-structural-zero entry for assertions.
func at(t *testing.T, m *sparse.CSC[float64], i, j int) float64 {
	t.Helper()
	v, _, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// roundTrip asserts C·C⁻¹ ≈ I within atol.
func roundTrip(t *testing.T, res *transform.Result[float64], atol float64) {
	t.Helper()
	prod, err := sparse.Mul[float64](field.Real{}, res.C, res.CInv)
	require.NoError(t, err)
	eye, err := sparse.Identity[float64](field.Real{}, res.C.N())
	require.NoError(t, err)
	ok, err := sparse.AllClose(prod, eye, 0, atol)
	require.NoError(t, err)
	assert.True(t, ok, "C·C⁻¹ must reduce to the identity")
}

// TestBuild_NilNetwork rejects a nil network.
func TestBuild_NilNetwork(t *testing.T) {
	_, err := transform.Build[float64](nil)
	assert.ErrorIs(t, err, transform.ErrNilNetwork)
}

// TestBuild_SingleStableNuclide reduces to the 1×1 identity.
func TestBuild_SingleStableNuclide(t *testing.T) {
	net, err := decay.NewNetwork[float64](field.Real{}, []decay.Nuclide[float64]{{Name: "Pb-206"}})
	require.NoError(t, err)

	res, err := transform.Build(net)
	require.NoError(t, err)
	assert.Equal(t, 1, res.C.N())
	assert.Equal(t, 1, res.C.NNZ())
	assert.Equal(t, 1.0, at(t, res.C, 0, 0))
	assert.Equal(t, 1.0, at(t, res.CInv, 0, 0))
	assert.Empty(t, res.IllConditioned)
}

// TestBuild_TwoNuclideClosedForm checks the A → B (B stable) chain:
// C[B,A] = λ_A/(Λ[A,A] − Λ[B,B]) = λ_A/(−λ_A) = −1 and C⁻¹[B,A] = 1,
// which reproduces N_B(t) = 1 − e^{−λ_A·t} for a pure initial A stock.
func TestBuild_TwoNuclideClosedForm(t *testing.T) {
	net, err := decay.NewNetwork[float64](field.Real{}, []decay.Nuclide[float64]{
		{Name: "A", DecayConstant: 0.5, Branches: []decay.Branch[float64]{{Progeny: 1, Fraction: 1}}},
		{Name: "B"},
	})
	require.NoError(t, err)

	res, err := transform.Build(net)
	require.NoError(t, err)
	assert.Equal(t, 1.0, at(t, res.C, 0, 0))
	assert.Equal(t, 1.0, at(t, res.C, 1, 1))
	assert.Equal(t, -1.0, at(t, res.C, 1, 0))
	assert.Equal(t, 1.0, at(t, res.CInv, 1, 0))
	assert.Equal(t, []float64{0.5, 0}, res.Lambda)
	roundTrip(t, res, 0)
}

// TestBuild_ThreeNuclideClosedForm checks every coefficient of the
// A → B → C chain against the recursive Bateman formulas.
func TestBuild_ThreeNuclideClosedForm(t *testing.T) {
	const fAB, fBC = 0.8, 0.9
	res, err := transform.Build(threeChain(t, fAB, fBC))
	require.NoError(t, err)

	// λ_A = 2, λ_B = 1, λ_C = 0.
	cBA := 2 * fAB / (1 - 2)         // Λ[B,A]/(λ_B − λ_A)
	cCB := 1 * fBC / (0 - 1)         // Λ[C,B]/(λ_C − λ_B)
	cCA := (1 * fBC * cBA) / (0 - 2) // Λ[C,B]·C[B,A]/(λ_C − λ_A)
	assert.InDelta(t, cBA, at(t, res.C, 1, 0), 1e-15)
	assert.InDelta(t, cCB, at(t, res.C, 2, 1), 1e-15)
	assert.InDelta(t, cCA, at(t, res.C, 2, 0), 1e-15)

	// Inverse recurrences, no division involved.
	invBA := -cBA
	invCA := -(cCA + cCB*invBA)
	assert.InDelta(t, invBA, at(t, res.CInv, 1, 0), 1e-15)
	assert.InDelta(t, invCA, at(t, res.CInv, 2, 0), 1e-15)
	roundTrip(t, res, 1e-15)
}

// TestBuild_EvolutionSanity evolves a pure parent stock through
// N(t) = C·diag(e^{−λt})·C⁻¹·N(0) and compares against the closed-form
// Bateman solution; quantities stay nonnegative and conserve mass.
func TestBuild_EvolutionSanity(t *testing.T) {
	res, err := transform.Build(threeChain(t, 1, 1))
	require.NoError(t, err)

	const tau = 0.7
	// N(0) = (1, 0, 0): column A of C⁻¹ is the transformed stock.
	n := make([]float64, 3)
	for i := 0; i < 3; i++ {
		var sum float64
		for k := 0; k < 3; k++ {
			sum += at(t, res.C, i, k) * math.Exp(-res.Lambda[k]*tau) * at(t, res.CInv, k, 0)
		}
		n[i] = sum
	}

	// Closed-form Bateman solution for λ_A=2, λ_B=1.
	nA := math.Exp(-2 * tau)
	nB := 2 / (2 - 1) * (math.Exp(-tau) - math.Exp(-2*tau))
	assert.InDelta(t, nA, n[0], 1e-12)
	assert.InDelta(t, nB, n[1], 1e-12)
	assert.InDelta(t, 1-nA-nB, n[2], 1e-12)
	for i, q := range n {
		assert.GreaterOrEqual(t, q, 0.0, "quantity of nuclide %d", i)
	}
}

// TestBuild_PatternConfinedToChains verifies non-zero rows of column j
// never leave {j} ∪ chain(j).
func TestBuild_PatternConfinedToChains(t *testing.T) {
	net, err := netbuild.RandomDAG(25, 0.2, netbuild.WithSeed(11))
	require.NoError(t, err)
	res, err := transform.Build(net)
	require.NoError(t, err)

	chains, err := chain.Closure(net.Progeny())
	require.NoError(t, err)
	for _, m := range []*sparse.CSC[float64]{res.C, res.CInv} {
		for _, tr := range m.Triplets() {
			if tr.Row == tr.Col {
				assert.Equal(t, 1.0, tr.Val, "diagonal (%d,%d)", tr.Row, tr.Col)
				continue
			}
			assert.Contains(t, chains[tr.Col], tr.Row, "entry (%d,%d) outside chain", tr.Row, tr.Col)
		}
	}
}

// TestBuild_RoundTripBranching checks C·C⁻¹ = I on a branching cascade.
func TestBuild_RoundTripBranching(t *testing.T) {
	net, err := netbuild.Branching(3, 2)
	require.NoError(t, err)
	res, err := transform.Build(net)
	require.NoError(t, err)
	roundTrip(t, res, 1e-9)
}

// TestBuild_RoundTripRandomDAG checks C·C⁻¹ = I on a dense random DAG.
func TestBuild_RoundTripRandomDAG(t *testing.T) {
	net, err := netbuild.RandomDAG(40, 0.15, netbuild.WithSeed(7))
	require.NoError(t, err)
	res, err := transform.Build(net)
	require.NoError(t, err)
	roundTrip(t, res, 1e-9)
}

// TestBuild_DegenerateConstants fails the build when two chained
// nuclides share one exact decay constant.
func TestBuild_DegenerateConstants(t *testing.T) {
	net, err := decay.NewNetwork[float64](field.Real{}, []decay.Nuclide[float64]{
		{Name: "A", DecayConstant: 3, Branches: []decay.Branch[float64]{{Progeny: 1, Fraction: 1}}},
		{Name: "B", DecayConstant: 3, Branches: []decay.Branch[float64]{{Progeny: 2, Fraction: 1}}},
		{Name: "C"},
	})
	require.NoError(t, err)
	_, err = transform.Build(net)
	assert.ErrorIs(t, err, transform.ErrDegenerateConstants)
}

// TestBuild_OrderingViolation fails fast by default and succeeds with
// the general closure on an index order running against decay.
func TestBuild_OrderingViolation(t *testing.T) {
	// index 1 decays into index 0: legal physics, inverted indices.
	net, err := decay.NewNetwork[float64](field.Real{}, []decay.Nuclide[float64]{
		{Name: "B"},
		{Name: "A", DecayConstant: 1, Branches: []decay.Branch[float64]{{Progeny: 0, Fraction: 1}}},
	})
	require.NoError(t, err)

	_, err = transform.Build(net)
	assert.ErrorIs(t, err, chain.ErrOrderingViolation)

	res, err := transform.Build(net, transform.WithGeneralClosure())
	require.NoError(t, err)
	assert.Equal(t, -1.0, at(t, res.C, 0, 1))
	assert.Equal(t, 1.0, at(t, res.CInv, 0, 1))
	roundTrip(t, res, 0)
}

// TestBuild_CycleDetected rejects a looping decay graph on the general
// closure path.
func TestBuild_CycleDetected(t *testing.T) {
	net, err := decay.NewNetwork[float64](field.Real{}, []decay.Nuclide[float64]{
		{Name: "A", DecayConstant: 1, Branches: []decay.Branch[float64]{{Progeny: 1, Fraction: 1}}},
		{Name: "B", DecayConstant: 2, Branches: []decay.Branch[float64]{{Progeny: 0, Fraction: 1}}},
	})
	require.NoError(t, err)
	_, err = transform.Build(net, transform.WithGeneralClosure())
	assert.ErrorIs(t, err, chain.ErrCycleDetected)
}
