package eulumdat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxdat/luxdat/eulumdat"
	"github.com/luxdat/luxdat/photometry"
)

// officeDoc builds a representative two-lamp office luminaire with
// C0–C180 symmetry, 8 full planes and 3 gamma angles.
func officeDoc() *photometry.Document {
	return &photometry.Document{
		Company:          "Example Lighting GmbH",
		MeasurementID:    "M-2024-117",
		LuminaireName:    "Office Linear 2x36W",
		LuminaireNumber:  "OL-236",
		FileName:         "ol236.ldt",
		DateAndOperator:  "2024-03-02 / TP",
		Type:             photometry.Linear,
		Symmetry:         photometry.SymmetryC0C180,
		PlaneCount:       8,
		PlaneSpacing:     45,
		GammaCount:       3,
		GammaSpacing:     45,
		Size:             photometry.Dimensions{Length: 1200, Width: 300, Height: 85},
		Area:             photometry.LuminousArea{Length: 1150, Width: 280},
		DownwardFluxFraction: 100,
		LightOutputRatio:     87,
		ConversionFactor:     1,
		LampSets: []photometry.LampSet{
			{Count: 1, Type: "T8/36W", Flux: 3600, ColorTemperature: "3000K", ColorRendering: "1B/86", Wattage: 36},
			{Count: 1, Type: "T8/36W", Flux: 4500, ColorTemperature: "4000 K", ColorRendering: "1A", Wattage: 40},
		},
		DirectRatios:     [10]float64{0.31, 0.38, 0.44, 0.49, 0.53, 0.57, 0.6, 0.63, 0.65, 0.67},
		HorizontalAngles: []float64{0, 45, 90, 135, 180},
		VerticalAngles:   []float64{0, 45, 90},
		Intensities: [][]float64{
			{136, 90, 10},
			{130, 85, 9},
			{120, 70, 8},
			{110, 65, 7.5},
			{105, 60, 7},
		},
	}
}

// TestRoundTrip requires Parse(Write(d)) to reproduce every field.
func TestRoundTrip(t *testing.T) {
	d := officeDoc()
	text, err := eulumdat.Write(d)
	require.NoError(t, err)

	back, err := eulumdat.Parse(text)
	require.NoError(t, err)
	require.Equal(t, d, back)
}

// TestRoundTrip_VerticalAxis covers the single-plane reduction.
func TestRoundTrip_VerticalAxis(t *testing.T) {
	d := officeDoc()
	d.Type = photometry.PointSourceSymmetric
	d.Symmetry = photometry.SymmetryVerticalAxis
	d.PlaneCount = 1
	d.PlaneSpacing = 0
	d.HorizontalAngles = []float64{0}
	d.Intensities = d.Intensities[:1]

	text, err := eulumdat.Write(d)
	require.NoError(t, err)
	back, err := eulumdat.Parse(text)
	require.NoError(t, err)
	require.Equal(t, d, back)
}

// TestRoundTrip_NonUniformGamma keeps the document's own grid fields when
// the gamma list is irregular.
func TestRoundTrip_NonUniformGamma(t *testing.T) {
	d := officeDoc()
	d.GammaSpacing = 0
	d.VerticalAngles = []float64{0, 30, 90}

	text, err := eulumdat.Write(d)
	require.NoError(t, err)
	back, err := eulumdat.Parse(text)
	require.NoError(t, err)
	require.Equal(t, d.VerticalAngles, back.VerticalAngles)
	require.Equal(t, 0.0, back.GammaSpacing)
}

// TestWrite_DerivesGrid serializes a document with an empty grid
// description and expects the counts back-filled from the angle arrays.
func TestWrite_DerivesGrid(t *testing.T) {
	d := officeDoc()
	d.PlaneCount = 0
	d.PlaneSpacing = 0
	d.GammaCount = 0
	d.GammaSpacing = 0

	text, err := eulumdat.Write(d)
	require.NoError(t, err)
	back, err := eulumdat.Parse(text)
	require.NoError(t, err)
	require.Equal(t, 8, back.PlaneCount)
	require.Equal(t, 45.0, back.PlaneSpacing)
	require.Equal(t, 3, back.GammaCount)
	require.Equal(t, 45.0, back.GammaSpacing)
}

// TestWrite_RejectsBrokenShape refuses to serialize an inconsistent matrix.
func TestWrite_RejectsBrokenShape(t *testing.T) {
	d := officeDoc()
	d.Intensities = d.Intensities[:3]

	_, err := eulumdat.Write(d)
	require.ErrorIs(t, err, photometry.ErrShapeMismatch)
}

// TestParse_Truncated reports the line where input ran out.
func TestParse_Truncated(t *testing.T) {
	text, err := eulumdat.Write(officeDoc())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	_, err = eulumdat.Parse(strings.Join(lines[:10], "\n"))
	require.ErrorIs(t, err, eulumdat.ErrTruncated)

	var pe *eulumdat.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 11, pe.Line)
}

// TestParse_BadNumber reports syntax failures with position.
func TestParse_BadNumber(t *testing.T) {
	text, err := eulumdat.Write(officeDoc())
	require.NoError(t, err)
	lines := strings.Split(text, "\n")
	lines[3] = "eight" // Mc
	_, err = eulumdat.Parse(strings.Join(lines, "\n"))
	require.ErrorIs(t, err, eulumdat.ErrSyntax)

	var pe *eulumdat.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 4, pe.Line)
}

// TestParse_BadSymmetry rejects codes outside the closed set.
func TestParse_BadSymmetry(t *testing.T) {
	text, err := eulumdat.Write(officeDoc())
	require.NoError(t, err)
	lines := strings.Split(text, "\n")
	lines[2] = "7"
	_, err = eulumdat.Parse(strings.Join(lines, "\n"))
	require.ErrorIs(t, err, photometry.ErrUnknownSymmetry)
}

// TestParse_RowCountMismatch rejects a candela row that disagrees with
// the declared gamma count.
func TestParse_RowCountMismatch(t *testing.T) {
	text, err := eulumdat.Write(officeDoc())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	lines[len(lines)-1] = "105 60" // drop one value from the last row
	_, err = eulumdat.Parse(strings.Join(lines, "\n"))
	require.ErrorIs(t, err, eulumdat.ErrCount)
}

// TestParse_CRLF accepts Windows line endings.
func TestParse_CRLF(t *testing.T) {
	d := officeDoc()
	text, err := eulumdat.Write(d)
	require.NoError(t, err)

	back, err := eulumdat.Parse(strings.ReplaceAll(text, "\n", "\r\n"))
	require.NoError(t, err)
	require.Equal(t, d, back)
}
