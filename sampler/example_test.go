package sampler_test

import (
	"fmt"

	"github.com/luxdat/luxdat/photometry"
	"github.com/luxdat/luxdat/sampler"
)

// ExampleInterpolator samples a quarter-sphere grid at a direction that
// exists only by symmetry.
func ExampleInterpolator() {
	doc := &photometry.Document{
		Symmetry:         photometry.SymmetryBothPlanes,
		HorizontalAngles: []float64{0, 45, 90},
		VerticalAngles:   []float64{0, 90, 180},
		Intensities: [][]float64{
			{100, 50, 0},
			{90, 45, 0},
			{80, 40, 0},
		},
	}

	in, err := sampler.New(doc)
	if err != nil {
		fmt.Println("sampler:", err)
		return
	}

	// C=315° folds onto the stored 45° plane; gamma=45° interpolates
	// halfway between the 0° and 90° rows.
	fmt.Printf("I(315,45) = %.2f cd/klm\n", in.Sample(315, 45))
	fmt.Printf("peak      = %.2f cd/klm\n", in.Max())

	// Output:
	// I(315,45) = 67.50 cd/klm
	// peak      = 100.00 cd/klm
}
