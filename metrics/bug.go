package metrics

import (
	"math"

	"github.com/luxdat/luxdat/sampler"
)

// Rating is a TM-15 style outdoor classification: Backlight, Uplight and
// Glare, each 0 (tightest control) through 5.
type Rating struct {
	B int
	U int
	G int
}

// ZonalLumens is the absolute lumen breakdown behind a Rating. Back
// zones cover azimuth 90–270 (behind the luminaire), front zones the
// rest; Low/Mid/High/VeryHigh split gamma at 30, 60, 80 and 90 degrees.
// Uplight splits the upper hemisphere at gamma 100.
type ZonalLumens struct {
	BL, BM, BH, BVH float64
	FL, FM, FH, FVH float64
	UL, UH          float64
}

// Per-zone lumen ceilings for ratings 0 through 4; exceeding the last
// ceiling gives 5.
var (
	backThresholds = map[string][5]float64{
		"BL": {110, 500, 1000, 2500, 5000},
		"BM": {220, 1000, 2500, 5000, 8500},
		"BH": {110, 500, 1000, 2500, 5000},
	}
	upThresholds = map[string][5]float64{
		"UL": {0, 10, 50, 500, 1000},
		"UH": {0, 10, 50, 500, 1000},
	}
	glareThresholds = map[string][5]float64{
		"FVH": {10, 660, 660, 750, 750},
		"BVH": {10, 660, 660, 750, 750},
		"FH":  {660, 1800, 5000, 7500, 12000},
		"BH":  {110, 500, 1000, 2500, 5000},
	}
)

// BUG computes the Backlight/Uplight/Glare rating. lumenScale converts
// the table's intensity units to candela: pass total lamp lumens / 1000
// for a cd/klm grid, or 1 for an absolute candela grid.
func BUG(tab sampler.Table, lumenScale float64, opts Options) (Rating, ZonalLumens, error) {
	if err := opts.check(); err != nil {
		return Rating{}, ZonalLumens{}, err
	}
	if lumenScale <= 0 {
		return Rating{}, ZonalLumens{}, ErrBadScale
	}

	in, err := sampler.New(tab)
	if err != nil {
		return Rating{}, ZonalLumens{}, err
	}

	back := func(g0, g1 float64) float64 {
		return sector(in, g0, g1, 90, 270, opts) * lumenScale
	}
	front := func(g0, g1 float64) float64 {
		return (sector(in, g0, g1, 270, 360, opts) + sector(in, g0, g1, 0, 90, opts)) * lumenScale
	}
	full := func(g0, g1 float64) float64 {
		return sector(in, g0, g1, 0, 360, opts) * lumenScale
	}

	z := ZonalLumens{
		BL:  back(0, 30),
		BM:  back(30, 60),
		BH:  back(60, 80),
		BVH: back(80, 90),
		FL:  front(0, 30),
		FM:  front(30, 60),
		FH:  front(60, 80),
		FVH: front(80, 90),
		UL:  full(90, 100),
		UH:  full(100, 180),
	}

	r := Rating{
		B: maxRating(
			rate(z.BL, backThresholds["BL"]),
			rate(z.BM, backThresholds["BM"]),
			rate(z.BH, backThresholds["BH"]),
		),
		U: maxRating(
			rate(z.UL, upThresholds["UL"]),
			rate(z.UH, upThresholds["UH"]),
		),
		G: maxRating(
			rate(z.FVH, glareThresholds["FVH"]),
			rate(z.BVH, glareThresholds["BVH"]),
			rate(z.FH, glareThresholds["FH"]),
			rate(z.BH, glareThresholds["BH"]),
		),
	}

	return r, z, nil
}

// sector integrates over gamma [g0,g1] and azimuth [c0,c1].
func sector(in *sampler.Interpolator, g0, g1, c0, c1 float64, opts Options) float64 {
	var sum float64
	for g := g0; g < g1; g += opts.GammaStep {
		dg := math.Min(opts.GammaStep, g1-g)
		gMid := g + dg/2
		weight := math.Sin(gMid*degToRad) * dg * degToRad

		for c := c0; c < c1; c += opts.AzimuthStep {
			dc := math.Min(opts.AzimuthStep, c1-c)
			sum += in.Sample(c+dc/2, gMid) * weight * dc * degToRad
		}
	}

	return sum
}

// rate returns the smallest index whose ceiling holds the lumens, 5 when
// every ceiling is exceeded. A sub-lumen tolerance absorbs integration
// noise around the zero ceilings.
func rate(lumens float64, ceilings [5]float64) int {
	const tol = 0.5
	for i, c := range ceilings {
		if lumens <= c+tol {
			return i
		}
	}

	return 5
}

func maxRating(rs ...int) int {
	m := 0
	for _, r := range rs {
		if r > m {
			m = r
		}
	}

	return m
}
