package convert

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/luxdat/luxdat/ldx"
	"github.com/luxdat/luxdat/photometry"
)

var (
	// ErrNilDocument indicates FromDocument received nil.
	ErrNilDocument = errors.New("convert: document is nil")

	// ErrNilExchange indicates ToDocument received nil.
	ErrNilExchange = errors.New("convert: exchange is nil")

	// ErrNoEmitters indicates an exchange without emitters.
	ErrNoEmitters = errors.New("convert: exchange has no emitters")

	// ErrNoIntensity indicates the first emitter carries no intensity
	// distribution, so no single-distribution document can be built.
	ErrNoIntensity = errors.New("convert: emitter has no intensity distribution")
)

// IntensityUnits is the unit tag attached to converted grids.
const IntensityUnits = "cd/klm"

// FromDocument synthesizes a one-emitter exchange from d. See the
// package documentation for the mapping rules.
func FromDocument(d *photometry.Document) (*ldx.Exchange, error) {
	if d == nil {
		return nil, ErrNilDocument
	}
	if err := d.CheckShape(); err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	x := &ldx.Exchange{Version: ldx.Version}

	if h := headerFrom(d); h != (ldx.Header{}) {
		hc := h
		x.Header = &hc
	}

	if d.Size.Length != 0 || d.Size.Width != 0 || d.Size.Height != 0 {
		shape := ldx.Rectangular
		if d.Size.Width == 0 {
			shape = ldx.Circular
		}
		x.Physical = &ldx.Physical{
			Length: d.Size.Length,
			Width:  d.Size.Width,
			Height: d.Size.Height,
			Openings: []ldx.LuminousOpening{{
				Shape:  shape,
				Length: d.Area.Length,
				Width:  d.Area.Width,
				Height: d.Area.HeightC0,
			}},
		}
	}

	em := ldx.Emitter{
		Quantity:    d.TotalLampCount(),
		RatedLumens: d.TotalFlux(),
		InputWatts:  d.TotalWattage(),
		Provenance:  ldx.Measured,
		Intensity: &ldx.IntensityDistribution{
			PhotometryType: ldx.TypeC,
			Metric:         ldx.MetricLuminous,
			Units:          IntensityUnits,
			Horizontal:     append(ldx.ValueList(nil), d.HorizontalAngles...),
			Vertical:       append(ldx.ValueList(nil), d.VerticalAngles...),
			Values:         copyMatrix(d.Intensities),
		},
	}
	if len(d.LampSets) > 0 {
		first := d.LampSets[0]
		if cct, ok := ParseCCT(first.ColorTemperature); ok {
			em.CCT = cct
		}
		if ra, ok := ParseCRI(first.ColorRendering); ok {
			em.Color = &ldx.Color{Ra: ra}
		}
	}
	x.Emitters = []ldx.Emitter{em}

	return x, nil
}

// ToDocument rebuilds a single-distribution document from the first
// emitter of x. Remaining emitters are dropped — a documented
// limitation, not silent corruption of the one that is kept.
func ToDocument(x *ldx.Exchange) (*photometry.Document, error) {
	if x == nil {
		return nil, ErrNilExchange
	}
	if len(x.Emitters) == 0 {
		return nil, ErrNoEmitters
	}
	em := x.Emitters[0]
	if em.Intensity == nil {
		return nil, ErrNoIntensity
	}
	if err := em.Intensity.CheckShape(); err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	d := &photometry.Document{
		Symmetry:         inferSymmetry(em.Intensity.Horizontal),
		HorizontalAngles: append([]float64(nil), em.Intensity.Horizontal...),
		VerticalAngles:   append([]float64(nil), em.Intensity.Vertical...),
		Intensities:      copyMatrix(em.Intensity.Values),
		ConversionFactor: 1,
		LightOutputRatio: 100,
	}

	if h := x.Header; h != nil {
		d.Company = h.Manufacturer
		d.LuminaireName = h.Name
		d.LuminaireNumber = h.CatalogNumber
		d.MeasurementID = h.ReportNumber
		d.DateAndOperator = h.CreationDate
		d.FileName = h.SourceFile
	}

	if p := x.Physical; p != nil {
		d.Size = photometry.Dimensions{Length: p.Length, Width: p.Width, Height: p.Height}
		if len(p.Openings) > 0 {
			o := p.Openings[0]
			d.Area = photometry.LuminousArea{
				Length:     o.Length,
				Width:      o.Width,
				HeightC0:   o.Height,
				HeightC90:  o.Height,
				HeightC180: o.Height,
				HeightC270: o.Height,
			}
		}
	}

	d.PlaneCount, d.PlaneSpacing = gridFrom(d.Symmetry, d.HorizontalAngles)
	d.GammaCount = len(d.VerticalAngles)
	if len(d.VerticalAngles) > 1 {
		d.GammaSpacing = d.VerticalAngles[1] - d.VerticalAngles[0]
	}

	ls := photometry.LampSet{
		Count:   em.Quantity,
		Flux:    em.RatedLumens,
		Wattage: em.InputWatts,
	}
	if em.CCT != 0 {
		ls.ColorTemperature = strconv.FormatFloat(em.CCT, 'f', -1, 64) + "K"
	}
	if em.Color != nil {
		ls.ColorRendering = CRIToGroup(em.Color.Ra)
	}
	d.LampSets = []photometry.LampSet{ls}

	switch {
	case d.Size.Width == 0:
		d.Type = photometry.PointSourceSymmetric
	case d.Size.Length > 2*d.Size.Width:
		d.Type = photometry.Linear
	default:
		d.Type = photometry.PointSourceOther
	}

	d.DownwardFluxFraction = downwardShare(d.VerticalAngles, d.Intensities)

	if err := d.CheckShape(); err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	return d, nil
}

// headerFrom maps the identification strings 1:1; empty strings stay
// absent.
func headerFrom(d *photometry.Document) ldx.Header {
	return ldx.Header{
		Manufacturer:  d.Company,
		Name:          d.LuminaireName,
		CatalogNumber: d.LuminaireNumber,
		ReportNumber:  d.MeasurementID,
		CreationDate:  d.DateAndOperator,
		SourceFile:    d.FileName,
	}
}

// symInferEps is the slack allowed when matching angle spans against the
// canonical symmetric ranges.
const symInferEps = 0.5

// inferSymmetry guesses the folding rule from the shape of a full,
// unfolded horizontal angle list.
//
// The C90–C270 branch assumes the stored planes span [90,270]; a list
// like {90,135,180} is classified C90C270 even though it only covers half
// that span, so azimuths in its missing quarter resolve by boundary clamp
// rather than by mirror. Sparse inputs that need exact coverage should
// declare SymmetryNone by supplying their full angle list.
func inferSymmetry(h []float64) photometry.Symmetry {
	if len(h) == 1 {
		return photometry.SymmetryVerticalAxis
	}
	maxA := h[len(h)-1]
	switch {
	case maxA <= 90+symInferEps:
		return photometry.SymmetryBothPlanes
	case maxA <= 180+symInferEps:
		if math.Abs(h[0]) <= symInferEps {
			return photometry.SymmetryC0C180
		}

		return photometry.SymmetryC90C270
	default:
		return photometry.SymmetryNone
	}
}

// gridFrom derives the full-grid plane count and spacing from the stored
// list length and its first delta.
func gridFrom(sym photometry.Symmetry, h []float64) (int, float64) {
	var spacing float64
	if len(h) > 1 {
		spacing = h[1] - h[0]
	}
	switch sym {
	case photometry.SymmetryVerticalAxis:
		return 1, spacing
	case photometry.SymmetryC0C180, photometry.SymmetryC90C270:
		return 2 * (len(h) - 1), spacing
	case photometry.SymmetryBothPlanes:
		return 4 * (len(h) - 1), spacing
	default:
		return len(h), spacing
	}
}

// downwardShare estimates the downward flux fraction as a percentage: a
// sin(gamma)-weighted sum over the grid, split at gamma=90°. This is the
// documented estimate for formats that require the field, not a
// calibrated solid-angle integral.
func downwardShare(gammas []float64, grid [][]float64) float64 {
	var down, up float64
	for _, row := range grid {
		for j, v := range row {
			w := v * math.Sin(gammas[j]*math.Pi/180)
			if gammas[j] <= 90 {
				down += w
			} else {
				up += w
			}
		}
	}
	total := down + up
	if total <= 0 {
		return 0
	}

	return 100 * down / total
}

// copyMatrix deep-copies a grid.
func copyMatrix(src [][]float64) [][]float64 {
	dst := make([][]float64, len(src))
	for i, row := range src {
		dst[i] = append([]float64(nil), row...)
	}

	return dst
}
