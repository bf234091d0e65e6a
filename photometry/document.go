package photometry

import (
	"fmt"
	"math"
)

// LuminaireType is the coarse geometry indicator carried by the
// line-oriented layout. The numeric values match its type codes.
type LuminaireType int

const (
	// PointSourceSymmetric — point source with symmetry about the vertical axis.
	PointSourceSymmetric LuminaireType = 1
	// Linear — linear luminaire (length dominates width).
	Linear LuminaireType = 2
	// PointSourceOther — point source with any other symmetry.
	PointSourceOther LuminaireType = 3
)

// String returns a human-readable type name.
func (t LuminaireType) String() string {
	switch t {
	case PointSourceSymmetric:
		return "point-source-symmetric"
	case Linear:
		return "linear"
	case PointSourceOther:
		return "point-source-other"
	default:
		return "unknown"
	}
}

// LampSet describes one group of identical lamps inside a luminaire.
// ColorTemperature and ColorRendering are free text as found in files
// ("3000K", "1B/86", "warm white", ...); convert normalizes them.
type LampSet struct {
	// Count is the number of lamps in the set.
	Count int
	// Type is the lamp type designation, free text.
	Type string
	// Flux is the total luminous flux of the set in lumens.
	Flux float64
	// ColorTemperature is the color-temperature field, free text.
	ColorTemperature string
	// ColorRendering is the color-rendering field, free text.
	ColorRendering string
	// Wattage is the total wattage of the set including ballast, in watts.
	Wattage float64
}

// Dimensions holds the overall luminaire box in millimeters.
// Width 0 denotes a circular luminaire of diameter Length.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

// LuminousArea holds the luminous-opening geometry in millimeters, with
// per-plane heights as stored by the line-oriented layout.
type LuminousArea struct {
	Length     float64
	Width      float64
	HeightC0   float64
	HeightC90  float64
	HeightC180 float64
	HeightC270 float64
}

// DirectRatioSlots is the fixed number of room-index utilization slots.
const DirectRatioSlots = 10

// Document is the single-distribution photometric document: one intensity
// grid, reduced by Symmetry, in candela per kilolumen of lamp flux.
//
// It is a value object: codecs, validators and metric calculators treat it
// as read-only, and every operation receives or returns an owned copy.
type Document struct {
	// Identification strings, kept verbatim from the source file.
	Company          string
	MeasurementID    string
	LuminaireName    string
	LuminaireNumber  string
	FileName         string
	DateAndOperator  string

	Type     LuminaireType
	Symmetry Symmetry

	// Grid description: PlaneCount/PlaneSpacing describe the full
	// (unreduced) C-plane grid; GammaCount/GammaSpacing the gamma grid.
	// Spacing 0 denotes non-uniform spacing.
	PlaneCount   int
	PlaneSpacing float64
	GammaCount   int
	GammaSpacing float64

	Size Dimensions
	Area LuminousArea

	// DownwardFluxFraction and LightOutputRatio are percentages.
	DownwardFluxFraction float64
	LightOutputRatio     float64
	// ConversionFactor scales intensities to cd/klm (usually 1).
	ConversionFactor float64
	// Tilt is the measurement tilt angle in degrees.
	Tilt float64

	LampSets []LampSet

	// DirectRatios are the utilization factors for the ten standard
	// room indices.
	DirectRatios [DirectRatioSlots]float64

	// HorizontalAngles holds the stored (symmetry-reduced) C angles,
	// strictly increasing. VerticalAngles holds the gamma angles,
	// strictly increasing within [0,180].
	HorizontalAngles []float64
	VerticalAngles   []float64

	// Intensities is indexed [C][gamma], in cd/klm.
	Intensities [][]float64
}

// TotalLampCount sums lamp counts across all lamp sets.
func (d *Document) TotalLampCount() int {
	var n int
	for _, ls := range d.LampSets {
		n += ls.Count
	}

	return n
}

// TotalFlux sums luminous flux across all lamp sets, in lumens.
func (d *Document) TotalFlux() float64 {
	var f float64
	for _, ls := range d.LampSets {
		f += ls.Flux
	}

	return f
}

// TotalWattage sums wattage across all lamp sets, in watts.
func (d *Document) TotalWattage() float64 {
	var w float64
	for _, ls := range d.LampSets {
		w += ls.Wattage
	}

	return w
}

// PlaneAngles, GammaAngles, Intensity and SymmetryMode expose the stored
// grid read-only; together they satisfy the sampler's table capability.

// PlaneAngles returns the stored (symmetry-reduced) C angles.
func (d *Document) PlaneAngles() []float64 { return d.HorizontalAngles }

// GammaAngles returns the stored gamma angles.
func (d *Document) GammaAngles() []float64 { return d.VerticalAngles }

// Intensity returns the stored value at plane index h, gamma index v.
func (d *Document) Intensity(h, v int) float64 { return d.Intensities[h][v] }

// SymmetryMode returns the folding rule the grid was reduced with.
func (d *Document) SymmetryMode() Symmetry { return d.Symmetry }

// CheckShape verifies the structural invariants that every consumer of a
// Document relies on. It returns nil when the document is well-formed.
//
// Checked: symmetry code in the closed set; non-empty angle lists; strict
// ordering of both lists; gamma within [0,180]; row count equal to the
// stored horizontal-angle count; every row as wide as the vertical list.
func (d *Document) CheckShape() error {
	if !d.Symmetry.Valid() {
		return fmt.Errorf("symmetry code %d: %w", int(d.Symmetry), ErrUnknownSymmetry)
	}
	if len(d.HorizontalAngles) == 0 || len(d.VerticalAngles) == 0 {
		return ErrNoAngles
	}
	if !strictlyIncreasing(d.HorizontalAngles) || !strictlyIncreasing(d.VerticalAngles) {
		return ErrUnorderedAngles
	}
	for _, g := range d.VerticalAngles {
		if g < 0 || g > 180 {
			return fmt.Errorf("gamma %.3f: %w", g, ErrGammaRange)
		}
	}
	if len(d.Intensities) != len(d.HorizontalAngles) {
		return fmt.Errorf("%d rows for %d planes: %w",
			len(d.Intensities), len(d.HorizontalAngles), ErrShapeMismatch)
	}
	for i, row := range d.Intensities {
		if len(row) != len(d.VerticalAngles) {
			return fmt.Errorf("row %d has %d values for %d gamma angles: %w",
				i, len(row), len(d.VerticalAngles), ErrShapeMismatch)
		}
	}

	return nil
}

// angleEps is the tolerance for matching a folded azimuth against a
// stored angle during expansion.
const angleEps = 1e-6

// ExpandFull reverses the symmetry reduction: it returns the full 0–360°
// azimuth list together with the matching intensity matrix, both freshly
// allocated. Mirrored planes share values with their stored counterpart.
//
// SymmetryNone and SymmetryVerticalAxis return copies of the stored grid
// unchanged — a single-plane rotationally symmetric table is already its
// own full description.
func (d *Document) ExpandFull() ([]float64, [][]float64) {
	stored := d.HorizontalAngles

	var full []float64
	switch d.Symmetry {
	case SymmetryC0C180:
		full = append(full, stored...)
		for i := len(stored) - 1; i >= 0; i-- {
			if a := stored[i]; a > angleEps && a < 180-angleEps {
				full = append(full, 360-a)
			}
		}
	case SymmetryC90C270:
		// Mirrors of (90,180] land in [0,90); the mirror of 180 is 0.
		for i := len(stored) - 1; i >= 0; i-- {
			if a := stored[i]; a > 90+angleEps && a < 180+angleEps {
				full = append(full, 180-a)
			}
		}
		full = append(full, stored...)
		for i := len(stored) - 1; i >= 0; i-- {
			if a := stored[i]; a > 180+angleEps && a < 270-angleEps {
				full = append(full, 540-a)
			}
		}
	case SymmetryBothPlanes:
		half := append([]float64(nil), stored...)
		for i := len(stored) - 1; i >= 0; i-- {
			if a := stored[i]; a < 90-angleEps {
				half = append(half, 180-a)
			}
		}
		full = append(full, half...)
		for i := len(half) - 1; i >= 0; i-- {
			if a := half[i]; a > angleEps && a < 180-angleEps {
				full = append(full, 360-a)
			}
		}
	default: // SymmetryNone, SymmetryVerticalAxis
		full = append(full, stored...)
	}

	grid := make([][]float64, len(full))
	for i, a := range full {
		src := d.storedIndex(d.Symmetry.Fold(a))
		grid[i] = append([]float64(nil), d.Intensities[src]...)
	}

	return full, grid
}

// storedIndex locates the stored plane matching the folded azimuth a.
// Expansion only constructs angles whose fold lands on a stored plane,
// so a miss indicates a corrupted document; the nearest plane is used.
func (d *Document) storedIndex(a float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, s := range d.HorizontalAngles {
		dist := math.Abs(s - a)
		if dist <= angleEps {
			return i
		}
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}

	return best
}

// strictlyIncreasing reports whether vals is strictly ascending.
func strictlyIncreasing(vals []float64) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i] <= vals[i-1] {
			return false
		}
	}

	return true
}
