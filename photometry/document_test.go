package photometry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxdat/luxdat/photometry"
)

// quarterDoc builds a well-formed BothPlanes document storing the 0–90°
// quadrant of a 4-plane-per-quadrant grid.
func quarterDoc() *photometry.Document {
	return &photometry.Document{
		Symmetry:         photometry.SymmetryBothPlanes,
		PlaneCount:       8,
		PlaneSpacing:     45,
		GammaCount:       3,
		GammaSpacing:     90,
		HorizontalAngles: []float64{0, 45, 90},
		VerticalAngles:   []float64{0, 90, 180},
		Intensities: [][]float64{
			{100, 50, 0},
			{90, 45, 0},
			{80, 40, 0},
		},
	}
}

// TestCheckShape_OK accepts a well-formed document.
func TestCheckShape_OK(t *testing.T) {
	require.NoError(t, quarterDoc().CheckShape())
}

// TestCheckShape_Errors maps each broken invariant to its sentinel.
func TestCheckShape_Errors(t *testing.T) {
	cases := []struct {
		name  string
		mutate func(d *photometry.Document)
		want  error
	}{
		{"BadSymmetry", func(d *photometry.Document) { d.Symmetry = 9 }, photometry.ErrUnknownSymmetry},
		{"NoHorizontal", func(d *photometry.Document) { d.HorizontalAngles = nil }, photometry.ErrNoAngles},
		{"NoVertical", func(d *photometry.Document) { d.VerticalAngles = nil }, photometry.ErrNoAngles},
		{"UnorderedC", func(d *photometry.Document) { d.HorizontalAngles = []float64{0, 90, 45} }, photometry.ErrUnorderedAngles},
		{"DuplicateGamma", func(d *photometry.Document) { d.VerticalAngles = []float64{0, 90, 90} }, photometry.ErrUnorderedAngles},
		{"GammaAbove180", func(d *photometry.Document) { d.VerticalAngles = []float64{0, 90, 185} }, photometry.ErrGammaRange},
		{"RowCount", func(d *photometry.Document) { d.Intensities = d.Intensities[:2] }, photometry.ErrShapeMismatch},
		{"RowWidth", func(d *photometry.Document) { d.Intensities[1] = d.Intensities[1][:2] }, photometry.ErrShapeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := quarterDoc()
			tc.mutate(d)
			err := d.CheckShape()
			if !errors.Is(err, tc.want) {
				t.Errorf("CheckShape() error = %v; want %v", err, tc.want)
			}
		})
	}
}

// TestExpandFull_BothPlanes expands a 0–90° quadrant to the full 8-plane grid.
func TestExpandFull_BothPlanes(t *testing.T) {
	d := quarterDoc()
	angles, grid := d.ExpandFull()

	require.Equal(t, []float64{0, 45, 90, 135, 180, 225, 270, 315}, angles)
	require.Len(t, grid, 8)

	// Quadrant rows repeat with mirror periodicity: 0,45,90,45,0,45,90,45.
	wantRows := []int{0, 1, 2, 1, 0, 1, 2, 1}
	for i, w := range wantRows {
		require.Equal(t, d.Intensities[w], grid[i], "plane %v", angles[i])
	}
}

// TestExpandFull_BothPlanesShortQuadrant expands a quadrant whose stored
// angles stop short of the 90° axis; every stored plane, the last one
// included, must contribute its mirrors.
func TestExpandFull_BothPlanesShortQuadrant(t *testing.T) {
	d := quarterDoc()
	d.PlaneCount = 12
	d.PlaneSpacing = 30
	d.HorizontalAngles = []float64{0, 30, 60}

	angles, grid := d.ExpandFull()
	require.Equal(t, []float64{0, 30, 60, 120, 150, 180, 210, 240, 300, 330}, angles)

	wantRows := []int{0, 1, 2, 2, 1, 0, 1, 2, 2, 1}
	for i, w := range wantRows {
		require.Equal(t, d.Intensities[w], grid[i], "plane %v", angles[i])
	}
}

// TestExpandFull_C0C180 expands a 0–180° half grid.
func TestExpandFull_C0C180(t *testing.T) {
	d := quarterDoc()
	d.Symmetry = photometry.SymmetryC0C180
	d.PlaneCount = 4
	d.PlaneSpacing = 90
	d.HorizontalAngles = []float64{0, 90, 180}

	angles, grid := d.ExpandFull()
	require.Equal(t, []float64{0, 90, 180, 270}, angles)
	require.Equal(t, d.Intensities[1], grid[3], "270° mirrors the 90° plane")
}

// TestExpandFull_C0C180ShortHalf expands a half grid whose last stored
// plane sits before 180°; its mirror must still appear.
func TestExpandFull_C0C180ShortHalf(t *testing.T) {
	d := quarterDoc()
	d.Symmetry = photometry.SymmetryC0C180
	d.PlaneCount = 8
	d.PlaneSpacing = 45
	d.HorizontalAngles = []float64{0, 45, 90, 135}
	d.Intensities = [][]float64{
		{100, 50, 0},
		{90, 45, 0},
		{80, 40, 0},
		{70, 35, 0},
	}

	angles, grid := d.ExpandFull()
	require.Equal(t, []float64{0, 45, 90, 135, 225, 270, 315}, angles)
	require.Equal(t, d.Intensities[3], grid[4], "225° mirrors the 135° plane")
	require.Equal(t, d.Intensities[1], grid[6], "315° mirrors the 45° plane")
}

// TestExpandFull_C90C270 expands the 90–270° half grid, including the
// 0° plane mirrored from 180°.
func TestExpandFull_C90C270(t *testing.T) {
	d := quarterDoc()
	d.Symmetry = photometry.SymmetryC90C270
	d.PlaneCount = 8
	d.PlaneSpacing = 45
	d.HorizontalAngles = []float64{90, 135, 180, 225, 270}
	d.Intensities = [][]float64{
		{10, 5, 0},
		{20, 10, 0},
		{30, 15, 0},
		{40, 20, 0},
		{50, 25, 0},
	}

	angles, grid := d.ExpandFull()
	require.Equal(t, []float64{0, 45, 90, 135, 180, 225, 270, 315}, angles)
	require.Equal(t, []float64{30, 15, 0}, grid[0], "0° mirrors 180°")
	require.Equal(t, []float64{20, 10, 0}, grid[1], "45° mirrors 135°")
	require.Equal(t, []float64{40, 20, 0}, grid[7], "315° mirrors 225°")
}

// TestExpandFull_None passes the grid through untouched.
func TestExpandFull_None(t *testing.T) {
	d := quarterDoc()
	d.Symmetry = photometry.SymmetryNone
	d.PlaneCount = 3

	angles, grid := d.ExpandFull()
	require.Equal(t, d.HorizontalAngles, angles)
	require.Equal(t, d.Intensities, grid)

	// Expansion must hand back owned copies, not aliases.
	grid[0][0] = -1
	require.Equal(t, 100.0, d.Intensities[0][0])
}

// TestTotals sums lamp-set aggregates.
func TestTotals(t *testing.T) {
	d := quarterDoc()
	d.LampSets = []photometry.LampSet{
		{Count: 1, Flux: 3600, Wattage: 36},
		{Count: 2, Flux: 4500, Wattage: 60},
	}
	require.Equal(t, 3, d.TotalLampCount())
	require.Equal(t, 8100.0, d.TotalFlux())
	require.Equal(t, 96.0, d.TotalWattage())
}
