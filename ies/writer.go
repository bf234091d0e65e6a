package ies

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/luxdat/luxdat/photometry"
)

// format identifiers emitted in the header block.
const (
	formatLine   = "IESNA:LM-63-2002"
	photTypeC    = 1 // C-plane photometry
	unitsMeters  = 2
	tiltNone     = "TILT=NONE"
)

// Export serializes d into the keyword-header layout. See the package
// documentation for the symmetry handling rules.
func Export(d *photometry.Document) (string, error) {
	if err := d.CheckShape(); err != nil {
		return "", fmt.Errorf("ies: cannot export: %w", err)
	}

	horizontal, grid := exportGrid(d)

	// Scale stored cd/klm to absolute candela when lamp flux is known.
	scale := 1.0
	if flux := d.TotalFlux(); flux > 0 {
		scale = flux / 1000
	}
	if d.ConversionFactor > 0 {
		scale *= d.ConversionFactor
	}

	lamps := d.TotalLampCount()
	if lamps < 1 {
		lamps = 1
	}
	lumensPerLamp := d.TotalFlux() / float64(lamps)

	var b strings.Builder
	line := func(s string) { b.WriteString(s); b.WriteByte('\n') }

	line(formatLine)
	keyword(&b, "TEST", d.MeasurementID)
	keyword(&b, "MANUFAC", d.Company)
	keyword(&b, "LUMCAT", d.LuminaireNumber)
	keyword(&b, "LUMINAIRE", d.LuminaireName)
	if len(d.LampSets) > 0 {
		keyword(&b, "LAMP", d.LampSets[0].Type)
	}
	keyword(&b, "ISSUEDATE", d.DateAndOperator)
	line(tiltNone)

	// Declaration: lamps, lumens/lamp, multiplier, #vertical, #horizontal,
	// photometric type, units, width, length, height (meters).
	line(fmt.Sprintf("%d %s 1 %d %d %d %d %s %s %s",
		lamps,
		fnum(lumensPerLamp),
		len(d.VerticalAngles),
		len(horizontal),
		photTypeC,
		unitsMeters,
		fnum(d.Size.Width/1000),
		fnum(d.Size.Length/1000),
		fnum(d.Size.Height/1000),
	))
	// Power line: ballast factor, future use, input watts.
	line("1 1 " + fnum(d.TotalWattage()))

	line(row(d.VerticalAngles))
	line(row(horizontal))
	for _, r := range grid {
		line(candelaRow(r, scale))
	}

	return b.String(), nil
}

// exportGrid selects the horizontal angle set and matrix for the target
// layout: pass-through, native reduced set, or full expansion.
func exportGrid(d *photometry.Document) ([]float64, [][]float64) {
	switch d.Symmetry {
	case photometry.SymmetryC0C180, photometry.SymmetryC90C270:
		return d.ExpandFull()
	default:
		return d.HorizontalAngles, d.Intensities
	}
}

// keyword emits one [KEY] value header line, skipping empty values.
func keyword(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString("[" + key + "] " + value + "\n")
}

// fnum formats an auxiliary numeric field compactly.
func fnum(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// row joins angle values into one space-separated line.
func row(vals []float64) string {
	toks := make([]string, len(vals))
	for i, v := range vals {
		toks[i] = fnum(v)
	}

	return strings.Join(toks, " ")
}

// candelaRow scales and formats one intensity row with one decimal place.
func candelaRow(vals []float64, scale float64) string {
	toks := make([]string, len(vals))
	for i, v := range vals {
		toks[i] = strconv.FormatFloat(v*scale, 'f', 1, 64)
	}

	return strings.Join(toks, " ")
}
