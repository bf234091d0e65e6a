package metrics

import (
	"math"

	"github.com/luxdat/luxdat/sampler"
)

// Options tunes the angular resolution of the zonal integrals.
type Options struct {
	// GammaStep is the vertical cell size in degrees.
	GammaStep float64
	// AzimuthStep is the horizontal cell size in degrees.
	AzimuthStep float64
}

// DefaultOptions returns the resolution used when callers have no
// special accuracy needs: 1 degree vertical by 5 degrees horizontal.
func DefaultOptions() Options {
	return Options{GammaStep: 1, AzimuthStep: 5}
}

func (o Options) check() error {
	if o.GammaStep <= 0 || o.AzimuthStep <= 0 {
		return ErrBadStep
	}

	return nil
}

const degToRad = math.Pi / 180

// ZonalFlux integrates the sampled intensity over azimuth 0–360 and
// gamma in [g0,g1]. For a cd/klm table the result is lumens emitted into
// the zone per kilolumen of lamp flux.
func ZonalFlux(tab sampler.Table, g0, g1 float64, opts Options) (float64, error) {
	if err := opts.check(); err != nil {
		return 0, err
	}
	if g0 < 0 || g1 > 180 || g0 >= g1 {
		return 0, ErrBadZone
	}

	in, err := sampler.New(tab)
	if err != nil {
		return 0, err
	}

	return zonal(in, g0, g1, opts), nil
}

// zonal is the full-azimuth band integral over a prepared sampler.
func zonal(in *sampler.Interpolator, g0, g1 float64, opts Options) float64 {
	return sector(in, g0, g1, 0, 360, opts)
}

// DownwardFraction returns the share of total flux emitted into the
// lower hemisphere (gamma 0–90), in [0,1]. A dark table yields 0.
func DownwardFraction(tab sampler.Table, opts Options) (float64, error) {
	if err := opts.check(); err != nil {
		return 0, err
	}
	in, err := sampler.New(tab)
	if err != nil {
		return 0, err
	}

	down := zonal(in, 0, 90, opts)
	up := zonal(in, 90, 180, opts)
	if down+up == 0 {
		return 0, nil
	}

	return down / (down + up), nil
}

// UpwardFraction is the complement of DownwardFraction for any table
// with non-zero flux.
func UpwardFraction(tab sampler.Table, opts Options) (float64, error) {
	if err := opts.check(); err != nil {
		return 0, err
	}
	in, err := sampler.New(tab)
	if err != nil {
		return 0, err
	}

	down := zonal(in, 0, 90, opts)
	up := zonal(in, 90, 180, opts)
	if down+up == 0 {
		return 0, nil
	}

	return up / (down + up), nil
}

// Zone is one cumulative entry of the zonal summary: all flux between
// nadir and Upper degrees.
type Zone struct {
	Upper float64
	Flux  float64
}

// zoneUppers are the cumulative bounds of the standard zonal summary.
var zoneUppers = []float64{30, 40, 60, 90, 120, 150, 180}

// CumulativeZones returns the standard cumulative zonal flux summary
// (0–30, 0–40, 0–60, 0–90, 0–120, 0–150, 0–180).
func CumulativeZones(tab sampler.Table, opts Options) ([]Zone, error) {
	if err := opts.check(); err != nil {
		return nil, err
	}
	in, err := sampler.New(tab)
	if err != nil {
		return nil, err
	}

	zones := make([]Zone, len(zoneUppers))
	var acc float64
	prev := 0.0
	for i, upper := range zoneUppers {
		acc += zonal(in, prev, upper, opts)
		zones[i] = Zone{Upper: upper, Flux: acc}
		prev = upper
	}

	return zones, nil
}
