package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/radkit/bateman/decay"
	"github.com/radkit/bateman/field"
	"github.com/radkit/bateman/netbuild"
	"github.com/radkit/bateman/transform"
)

// TestBuild_ParallelMatchesSerial verifies worker count never changes
// the result: each column is computed independently, so the parallel
// build is bit-identical to the serial one. goleak proves every worker
// goroutine exited.
func TestBuild_ParallelMatchesSerial(t *testing.T) {
	defer goleak.VerifyNone(t)

	net, err := netbuild.RandomDAG(40, 0.2, netbuild.WithSeed(3))
	require.NoError(t, err)

	serial, err := transform.Build(net)
	require.NoError(t, err)
	parallel, err := transform.Build(net, transform.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, serial.C.Triplets(), parallel.C.Triplets())
	assert.Equal(t, serial.CInv.Triplets(), parallel.CInv.Triplets())
	assert.Equal(t, serial.IllConditioned, parallel.IllConditioned)
}

// TestBuild_ParallelErrorShutdown verifies a failing column tears the
// pool down cleanly with no goroutine left behind.
func TestBuild_ParallelErrorShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	net, err := decay.NewNetwork[float64](field.Real{}, []decay.Nuclide[float64]{
		{Name: "A", DecayConstant: 3, Branches: []decay.Branch[float64]{{Progeny: 1, Fraction: 1}}},
		{Name: "B", DecayConstant: 3, Branches: []decay.Branch[float64]{{Progeny: 2, Fraction: 1}}},
		{Name: "C"},
	})
	require.NoError(t, err)
	_, err = transform.Build(net, transform.WithWorkers(8))
	assert.ErrorIs(t, err, transform.ErrDegenerateConstants)
}

// TestBuild_WorkerClamp treats nonsensical worker counts as serial.
func TestBuild_WorkerClamp(t *testing.T) {
	net, err := netbuild.LinearChain(5)
	require.NoError(t, err)
	res, err := transform.Build(net, transform.WithWorkers(-3))
	require.NoError(t, err)
	assert.Equal(t, 5, res.C.N())
}
