package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxdat/luxdat/metrics"
	"github.com/luxdat/luxdat/photometry"
)

// TestBUGFullCutoffDownlight: a weak, fully shielded downlight earns the
// best rating in every category.
func TestBUGFullCutoffDownlight(t *testing.T) {
	r, z, err := metrics.BUG(downlight(100), 1, metrics.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, metrics.Rating{B: 0, U: 0, G: 0}, r)

	require.Zero(t, z.UL)
	require.Zero(t, z.UH)
	require.Zero(t, z.FVH)
	require.Zero(t, z.BVH)
	require.InDelta(t, z.BL, z.FL, 1e-6, "rotational symmetry splits front/back evenly")
}

// TestBUGUplighter: a bright isotropic source throws thousands of lumens
// above the horizon and maxes out the uplight scale.
func TestBUGUplighter(t *testing.T) {
	r, z, err := metrics.BUG(isotropic(100), 10, metrics.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 5, r.U)
	require.Greater(t, z.UH, 1000.0)
	require.Greater(t, z.UL, 0.0)
}

// TestBUGZoneClosure: the ten zones partition the sphere, so their sum
// matches the total flux at the same scale.
func TestBUGZoneClosure(t *testing.T) {
	opts := metrics.DefaultOptions()
	tab := &table{
		planes: []float64{0},
		gammas: []float64{0, 60, 120, 180},
		values: [][]float64{{200, 120, 40, 15}},
		sym:    photometry.SymmetryVerticalAxis,
	}

	_, z, err := metrics.BUG(tab, 1, opts)
	require.NoError(t, err)

	total, err := metrics.ZonalFlux(tab, 0, 180, opts)
	require.NoError(t, err)

	sum := z.BL + z.BM + z.BH + z.BVH + z.FL + z.FM + z.FH + z.FVH + z.UL + z.UH
	require.InDelta(t, total, sum, 1e-6)
}

// TestBUGScaleMonotone: scaling the lumens up never improves a rating.
func TestBUGScaleMonotone(t *testing.T) {
	opts := metrics.DefaultOptions()
	tab := isotropic(100)

	small, _, err := metrics.BUG(tab, 1, opts)
	require.NoError(t, err)
	large, _, err := metrics.BUG(tab, 50, opts)
	require.NoError(t, err)

	require.GreaterOrEqual(t, large.B, small.B)
	require.GreaterOrEqual(t, large.U, small.U)
	require.GreaterOrEqual(t, large.G, small.G)
}

func TestBUGBadScale(t *testing.T) {
	_, _, err := metrics.BUG(isotropic(1), 0, metrics.DefaultOptions())
	require.ErrorIs(t, err, metrics.ErrBadScale)
	_, _, err = metrics.BUG(isotropic(1), -3, metrics.DefaultOptions())
	require.ErrorIs(t, err, metrics.ErrBadScale)
}

func TestBUGBadStep(t *testing.T) {
	_, _, err := metrics.BUG(isotropic(1), 1, metrics.Options{GammaStep: 1, AzimuthStep: 0})
	require.ErrorIs(t, err, metrics.ErrBadStep)
}
