package sampler

import (
	"errors"
	"math"
	"sort"

	"github.com/luxdat/luxdat/photometry"
)

var (
	// ErrNilTable indicates New was called with a nil Table.
	ErrNilTable = errors.New("sampler: table is nil")

	// ErrEmptyAngles indicates a table axis with no stored angles.
	ErrEmptyAngles = errors.New("sampler: table has no stored angles")

	// ErrUnorderedAngles indicates an axis that is not strictly increasing.
	ErrUnorderedAngles = errors.New("sampler: angle list not strictly increasing")
)

// Table is the structural capability the sampler needs from a grid.
// PlaneAngles and GammaAngles must be strictly increasing; Intensity
// must be defined for every (plane, gamma) index pair.
type Table interface {
	// PlaneAngles returns the stored C angles (symmetry-reduced).
	PlaneAngles() []float64
	// GammaAngles returns the stored gamma angles within [0,180].
	GammaAngles() []float64
	// Intensity returns the value at plane index h, gamma index v.
	Intensity(h, v int) float64
	// SymmetryMode returns the folding rule the grid was reduced with.
	SymmetryMode() photometry.Symmetry
}

// Interpolator samples a snapshot of a Table. It owns its copy of the
// angles and values, so the source document may be discarded or mutated
// freely after construction. Safe for concurrent use.
type Interpolator struct {
	planes []float64
	gammas []float64
	grid   [][]float64
	sym    photometry.Symmetry

	min, max float64
}

// New snapshots t and caches its extrema. It fails when t is nil, an
// axis is empty, or an axis is not strictly increasing.
func New(t Table) (*Interpolator, error) {
	if t == nil {
		return nil, ErrNilTable
	}

	planes := append([]float64(nil), t.PlaneAngles()...)
	gammas := append([]float64(nil), t.GammaAngles()...)
	if len(planes) == 0 || len(gammas) == 0 {
		return nil, ErrEmptyAngles
	}
	if !ascending(planes) || !ascending(gammas) {
		return nil, ErrUnorderedAngles
	}

	in := &Interpolator{
		planes: planes,
		gammas: gammas,
		grid:   make([][]float64, len(planes)),
		sym:    t.SymmetryMode(),
		min:    math.Inf(1),
		max:    math.Inf(-1),
	}
	for h := range planes {
		row := make([]float64, len(gammas))
		for v := range gammas {
			val := t.Intensity(h, v)
			row[v] = val
			if val < in.min {
				in.min = val
			}
			if val > in.max {
				in.max = val
			}
		}
		in.grid[h] = row
	}

	return in, nil
}

// Sample evaluates the distribution at azimuth c and elevation g, both in
// degrees. Any real input is accepted; the result is exact at stored grid
// points and always lies within [Min,Max].
func (in *Interpolator) Sample(c, g float64) float64 {
	folded := in.sym.Fold(c)
	gamma := photometry.ClampGamma(g)

	h0, h1, fc := bracket(in.planes, folded)
	v0, v1, fg := bracket(in.gammas, gamma)

	// Interpolate along gamma at each bracketing plane, then along azimuth.
	low := lerp(in.grid[h0][v0], in.grid[h0][v1], fg)
	high := lerp(in.grid[h1][v0], in.grid[h1][v1], fg)

	return lerp(low, high, fc)
}

// SampleNormalized returns Sample(c,g) divided by the cached maximum,
// or 0 when the table has no positive maximum.
func (in *Interpolator) SampleNormalized(c, g float64) float64 {
	if in.max == 0 {
		return 0
	}

	return in.Sample(c, g) / in.max
}

// Max returns the largest stored intensity.
func (in *Interpolator) Max() float64 { return in.max }

// Min returns the smallest stored intensity.
func (in *Interpolator) Min() float64 { return in.min }

// PlaneAngles returns a copy of the snapshot's stored C angles.
func (in *Interpolator) PlaneAngles() []float64 {
	return append([]float64(nil), in.planes...)
}

// GammaAngles returns a copy of the snapshot's stored gamma angles.
func (in *Interpolator) GammaAngles() []float64 {
	return append([]float64(nil), in.gammas...)
}

// Symmetry returns the folding rule of the snapshot.
func (in *Interpolator) Symmetry() photometry.Symmetry { return in.sym }

// bracket locates target inside vals: the pair of adjacent indices whose
// angles enclose it and the fractional position between them. Targets at
// or beyond either end clamp to the boundary with fraction 0.
func bracket(vals []float64, target float64) (lo, hi int, frac float64) {
	n := len(vals)
	if target <= vals[0] {
		return 0, 0, 0
	}
	if target >= vals[n-1] {
		return n - 1, n - 1, 0
	}

	// First index with vals[i] >= target; target is strictly inside.
	i := sort.SearchFloat64s(vals, target)
	if vals[i] == target {
		return i, i, 0
	}
	lo, hi = i-1, i

	return lo, hi, (target - vals[lo]) / (vals[hi] - vals[lo])
}

// lerp linearly interpolates between a and b.
func lerp(a, b, frac float64) float64 { return a + (b-a)*frac }

// ascending reports whether vals is strictly increasing.
func ascending(vals []float64) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i] <= vals[i-1] {
			return false
		}
	}

	return true
}
