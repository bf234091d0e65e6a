package photometry

import "errors"

var (
	// ErrShapeMismatch indicates the intensity matrix does not match the
	// symmetry-reduced plane count or the gamma-angle count.
	ErrShapeMismatch = errors.New("photometry: intensity matrix shape mismatch")

	// ErrUnorderedAngles indicates an angle list that is not strictly increasing.
	ErrUnorderedAngles = errors.New("photometry: angle list not strictly increasing")

	// ErrGammaRange indicates a gamma angle outside [0,180].
	ErrGammaRange = errors.New("photometry: gamma angle outside [0,180]")

	// ErrNoAngles indicates an empty horizontal or vertical angle list.
	ErrNoAngles = errors.New("photometry: document has no stored angles")

	// ErrUnknownSymmetry indicates a symmetry code outside the closed set.
	ErrUnknownSymmetry = errors.New("photometry: unknown symmetry code")
)
