package eulumdat

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/luxdat/luxdat/photometry"
)

// spacingEps is the tolerance used when deciding whether an angle list
// is uniformly spaced.
const spacingEps = 1e-9

// Write serializes d into the line-oriented layout. The output is
// deterministic, and Parse(Write(d)) reproduces every numeric field to
// format precision. Mc/Dc and Ng/Dg are re-derived from the angle arrays
// whenever those are uniformly spaced.
func Write(d *photometry.Document) (string, error) {
	if err := d.CheckShape(); err != nil {
		return "", fmt.Errorf("eulumdat: cannot write: %w", err)
	}

	mc, dc := d.PlaneCount, d.PlaneSpacing
	if sp, ok := uniformSpacing(d.HorizontalAngles); ok {
		dc = sp
		mc = fullPlaneCount(d.Symmetry, len(d.HorizontalAngles))
	}
	ng := len(d.VerticalAngles)
	dg := d.GammaSpacing
	if sp, ok := uniformSpacing(d.VerticalAngles); ok {
		dg = sp
	}

	var b strings.Builder
	line := func(s string) { b.WriteString(s); b.WriteByte('\n') }
	num := func(v float64) { line(fnum(v)) }

	line(d.Company)
	line(strconv.Itoa(int(d.Type)))
	line(strconv.Itoa(int(d.Symmetry)))
	line(strconv.Itoa(mc))
	num(dc)
	line(strconv.Itoa(ng))
	num(dg)
	line(d.MeasurementID)
	line(d.LuminaireName)
	line(d.LuminaireNumber)
	line(d.FileName)
	line(d.DateAndOperator)
	num(d.Size.Length)
	num(d.Size.Width)
	num(d.Size.Height)
	num(d.Area.Length)
	num(d.Area.Width)
	num(d.Area.HeightC0)
	num(d.Area.HeightC90)
	num(d.Area.HeightC180)
	num(d.Area.HeightC270)
	num(d.DownwardFluxFraction)
	num(d.LightOutputRatio)
	num(d.ConversionFactor)
	num(d.Tilt)

	line(strconv.Itoa(len(d.LampSets)))
	for _, ls := range d.LampSets {
		line(strconv.Itoa(ls.Count))
		line(ls.Type)
		num(ls.Flux)
		line(ls.ColorTemperature)
		line(ls.ColorRendering)
		num(ls.Wattage)
	}

	line(row(d.DirectRatios[:]))
	line(row(d.HorizontalAngles))
	line(row(d.VerticalAngles))
	for _, r := range d.Intensities {
		line(row(r))
	}

	return b.String(), nil
}

// fnum formats a float with the shortest decimal representation that
// parses back exactly.
func fnum(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// row joins values into one space-separated line.
func row(vals []float64) string {
	toks := make([]string, len(vals))
	for i, v := range vals {
		toks[i] = fnum(v)
	}

	return strings.Join(toks, " ")
}

// uniformSpacing reports the common delta of a uniformly spaced list.
// Single-element lists are uniform with spacing 0.
func uniformSpacing(vals []float64) (float64, bool) {
	if len(vals) < 2 {
		return 0, len(vals) == 1
	}
	step := vals[1] - vals[0]
	for i := 2; i < len(vals); i++ {
		if math.Abs((vals[i]-vals[i-1])-step) > spacingEps {
			return 0, false
		}
	}

	return step, true
}

// fullPlaneCount reverses Symmetry.StoredPlaneCount for an n-plane
// stored list.
func fullPlaneCount(sym photometry.Symmetry, n int) int {
	switch sym {
	case photometry.SymmetryVerticalAxis:
		return 1
	case photometry.SymmetryC0C180, photometry.SymmetryC90C270:
		return 2 * (n - 1)
	case photometry.SymmetryBothPlanes:
		return 4 * (n - 1)
	default:
		return n
	}
}
