package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radkit/bateman/decay"
	"github.com/radkit/bateman/field"
	"github.com/radkit/bateman/transform"
)

// nearEqualChain builds A → B → C where λ_A and λ_B differ by 0.05%,
// inside the default 0.1% conditioning threshold.
func nearEqualChain(t *testing.T) *decay.Network[float64] {
	t.Helper()
	net, err := decay.NewNetwork[float64](field.Real{}, []decay.Nuclide[float64]{
		{Name: "A", DecayConstant: 1.0, Branches: []decay.Branch[float64]{{Progeny: 1, Fraction: 1}}},
		{Name: "B", DecayConstant: 1.0005, Branches: []decay.Branch[float64]{{Progeny: 2, Fraction: 1}}},
		{Name: "C"},
	})
	require.NoError(t, err)

	return net
}

// TestConditioning_FlagsNearEqual reports the hazardous pair without
// failing the build.
func TestConditioning_FlagsNearEqual(t *testing.T) {
	res, err := transform.Build(nearEqualChain(t))
	require.NoError(t, err)
	assert.Equal(t, []transform.Pair{{Row: 1, Col: 0}}, res.IllConditioned)
	// Construction still completed end to end.
	roundTrip(t, res, 1e-9)
}

// TestConditioning_WellSeparated stays silent for clearly distinct
// decay constants.
func TestConditioning_WellSeparated(t *testing.T) {
	res, err := transform.Build(threeChain(t, 1, 1))
	require.NoError(t, err)
	assert.Empty(t, res.IllConditioned)
}

// TestConditioning_ThresholdOption widens and disables the report.
func TestConditioning_ThresholdOption(t *testing.T) {
	// λ_B/λ_A of threeChain differ by 50%: flagged only with a huge
	// threshold.
	res, err := transform.Build(threeChain(t, 1, 1), transform.WithConditionThreshold(0.6))
	require.NoError(t, err)
	assert.Contains(t, res.IllConditioned, transform.Pair{Row: 1, Col: 0})

	// Zero disables reporting entirely, even for near-equal pairs.
	res, err = transform.Build(nearEqualChain(t), transform.WithConditionThreshold(0))
	require.NoError(t, err)
	assert.Empty(t, res.IllConditioned)
}

// TestConditioning_Direct exercises the reporter in isolation: the
// stable progeny (relative difference 1) is never flagged.
func TestConditioning_Direct(t *testing.T) {
	lambda := []float64{1.0, 1.0009, 0}
	chains := [][]int{{1, 2}, {2}, nil}
	flagged := transform.Conditioning[float64](field.Real{}, lambda, chains, transform.DefaultConditionThreshold)
	assert.Equal(t, []transform.Pair{{Row: 1, Col: 0}}, flagged)
}
