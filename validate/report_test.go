package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxdat/luxdat/ldx"
	"github.com/luxdat/luxdat/photometry"
	"github.com/luxdat/luxdat/validate"
)

// goodExchange builds a minimal exchange that passes every check.
func goodExchange() *ldx.Exchange {
	return &ldx.Exchange{
		Version: ldx.Version,
		Emitters: []ldx.Emitter{
			{
				Quantity:    1,
				RatedLumens: 3200,
				InputWatts:  28,
				CCT:         4000,
				Color:       &ldx.Color{Ra: 82},
				Intensity: &ldx.IntensityDistribution{
					PhotometryType: ldx.TypeC,
					Metric:         ldx.MetricLuminous,
					Horizontal:     ldx.ValueList{0, 90, 180, 270},
					Vertical:       ldx.ValueList{0, 90, 180},
					Values: ldx.Matrix{
						{120, 60, 0},
						{118, 58, 0},
						{120, 60, 0},
						{118, 58, 0},
					},
				},
			},
		},
	}
}

// goodDocument builds a minimal single-distribution document that passes
// every check.
func goodDocument() *photometry.Document {
	return &photometry.Document{
		Symmetry:             photometry.SymmetryVerticalAxis,
		DownwardFluxFraction: 100,
		LightOutputRatio:     90,
		ConversionFactor:     1,
		LampSets: []photometry.LampSet{
			{Count: 1, Flux: 3200, Wattage: 28},
		},
		HorizontalAngles: []float64{0},
		VerticalAngles:   []float64{0, 45, 90},
		Intensities:      [][]float64{{150, 80, 5}},
	}
}

func TestExchangeValid(t *testing.T) {
	r := validate.Exchange(goodExchange())
	require.True(t, r.Valid())
	require.Empty(t, r.Errors)
	require.Empty(t, r.Warnings)
}

func TestExchangeNil(t *testing.T) {
	r := validate.Exchange(nil)
	require.False(t, r.Valid())
	require.Equal(t, "exchange.nil", r.Errors[0].Code)
}

func TestExchangeNoEmitters(t *testing.T) {
	x := goodExchange()
	x.Emitters = nil

	r := validate.Exchange(x)
	require.False(t, r.Valid())
	require.Equal(t, "emitters.empty", r.Errors[0].Code)
	require.Equal(t, "emitters", r.Errors[0].Path)
}

func TestExchangeEmitterFindings(t *testing.T) {
	x := goodExchange()
	em := &x.Emitters[0]
	em.Quantity = 0
	em.RatedLumens = -1
	em.InputWatts = -5
	em.CCT = 50000
	em.Color.Ra = 140

	r := validate.Exchange(x)
	require.False(t, r.Valid())

	codes := make([]string, 0, len(r.Errors))
	for _, is := range r.Errors {
		codes = append(codes, is.Code)
		require.Equal(t, "emitters[0]", is.Path)
	}
	require.ElementsMatch(t,
		[]string{"emitter.lumens.negative", "emitter.watts.negative", "emitter.ra.range"}, codes)

	warns := make([]string, 0, len(r.Warnings))
	for _, is := range r.Warnings {
		warns = append(warns, is.Code)
	}
	require.ElementsMatch(t, []string{"emitter.quantity", "emitter.cct.range"}, warns)
}

// TestExchangeCCTUnsetSkipped: a zero CCT means "not specified" and must
// not trigger the range warning.
func TestExchangeCCTUnsetSkipped(t *testing.T) {
	x := goodExchange()
	x.Emitters[0].CCT = 0

	r := validate.Exchange(x)
	require.Empty(t, r.Warnings)
}

func TestExchangeGridRowMismatch(t *testing.T) {
	x := goodExchange()
	x.Emitters[0].Intensity.Values = x.Emitters[0].Intensity.Values[:3]

	r := validate.Exchange(x)
	require.False(t, r.Valid())
	require.Equal(t, "grid.rows", r.Errors[0].Code)
	require.Equal(t, "emitters[0].intensity", r.Errors[0].Path)
}

func TestExchangeNegativeCellPath(t *testing.T) {
	x := goodExchange()
	x.Emitters[0].Intensity.Values[2][1] = -4

	r := validate.Exchange(x)
	require.False(t, r.Valid())
	require.Equal(t, "grid.value.negative", r.Errors[0].Code)
	require.Equal(t, "emitters[0].intensity[2][1]", r.Errors[0].Path)
}

func TestDocumentValid(t *testing.T) {
	r := validate.Document(goodDocument())
	require.True(t, r.Valid())
	require.Empty(t, r.Warnings)
}

func TestDocumentNil(t *testing.T) {
	r := validate.Document(nil)
	require.False(t, r.Valid())
	require.Equal(t, "document.nil", r.Errors[0].Code)
}

func TestDocumentFindings(t *testing.T) {
	d := goodDocument()
	d.Symmetry = photometry.Symmetry(9)
	d.LampSets[0].Flux = -10
	d.DownwardFluxFraction = 140
	d.VerticalAngles = []float64{0, 45, 190}
	d.Intensities = [][]float64{{150, 80, 5}}

	r := validate.Document(d)
	require.False(t, r.Valid())

	codes := make([]string, 0, len(r.Errors))
	for _, is := range r.Errors {
		codes = append(codes, is.Code)
	}
	require.ElementsMatch(t,
		[]string{"symmetry.unknown", "lamps.flux.negative", "gamma.range"}, codes)

	require.Len(t, r.Warnings, 1)
	require.Equal(t, "dff.range", r.Warnings[0].Code)
}

func TestDocumentUnorderedAngles(t *testing.T) {
	d := goodDocument()
	d.VerticalAngles = []float64{0, 90, 45}
	d.Intensities = [][]float64{{150, 5, 80}}

	r := validate.Document(d)
	require.False(t, r.Valid())
	require.Equal(t, "grid.angles.order", r.Errors[0].Code)
}

// TestReportWarningsNeverInvalidate: warnings alone keep Valid() true.
func TestReportWarningsNeverInvalidate(t *testing.T) {
	d := goodDocument()
	d.LampSets[0].Count = 0

	r := validate.Document(d)
	require.True(t, r.Valid())
	require.NotEmpty(t, r.Warnings)
}
