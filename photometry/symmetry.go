package photometry

import "math"

// Symmetry declares how a full 0–360° azimuth grid was reduced to the
// stored subset. The numeric values match the codes used by the
// line-oriented file layout.
type Symmetry int

const (
	// SymmetryNone stores every C-plane; folding is identity modulo 360°.
	SymmetryNone Symmetry = 0

	// SymmetryVerticalAxis stores a single C-plane; the distribution is
	// rotationally symmetric about the vertical axis.
	SymmetryVerticalAxis Symmetry = 1

	// SymmetryC0C180 mirrors about the C0–C180 plane; stored azimuths
	// cover 0–180°.
	SymmetryC0C180 Symmetry = 2

	// SymmetryC90C270 mirrors about the C90–C270 plane; stored azimuths
	// cover 90–270°.
	SymmetryC90C270 Symmetry = 3

	// SymmetryBothPlanes mirrors about both planes; stored azimuths
	// cover 0–90°.
	SymmetryBothPlanes Symmetry = 4
)

// String returns a human-readable symmetry name.
func (s Symmetry) String() string {
	switch s {
	case SymmetryNone:
		return "none"
	case SymmetryVerticalAxis:
		return "vertical-axis"
	case SymmetryC0C180:
		return "C0-C180"
	case SymmetryC90C270:
		return "C90-C270"
	case SymmetryBothPlanes:
		return "both-planes"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the five defined codes.
func (s Symmetry) Valid() bool {
	return s >= SymmetryNone && s <= SymmetryBothPlanes
}

// NormalizeAzimuth maps any real degree value into [0,360).
func NormalizeAzimuth(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}

	return a
}

// ClampGamma maps any real degree value into [0,180].
func ClampGamma(deg float64) float64 {
	if deg < 0 {
		return 0
	}
	if deg > 180 {
		return 180
	}

	return deg
}

// Fold maps an absolute azimuth onto the azimuth stored under s.
// The mapping is total (defined for every real input) and idempotent:
// folding an already folded angle returns it unchanged.
//
//   - SymmetryNone:         identity modulo 360.
//   - SymmetryVerticalAxis: always 0 — the single stored plane.
//   - SymmetryC0C180:       angle if ≤180°, else 360°−angle.
//   - SymmetryC90C270:      shift by 90°, fold about 180°, re-anchor at
//     the 90° axis; result lies in [90,270].
//   - SymmetryBothPlanes:   fold about 180°, then about 90°; result lies
//     in [0,90].
func (s Symmetry) Fold(azimuth float64) float64 {
	a := NormalizeAzimuth(azimuth)

	switch s {
	case SymmetryVerticalAxis:
		return 0
	case SymmetryC0C180:
		if a <= 180 {
			return a
		}

		return 360 - a
	case SymmetryC90C270:
		// Distance from the C90–C270 axis, re-anchored so in-range
		// azimuths (90..270) fold onto themselves.
		shifted := NormalizeAzimuth(a - 90)
		if shifted > 180 {
			shifted = 360 - shifted
		}

		return 90 + shifted
	case SymmetryBothPlanes:
		if a > 180 {
			a = 360 - a
		}
		if a > 90 {
			a = 180 - a
		}

		return a
	default: // SymmetryNone and anything undeclared
		return a
	}
}

// StoredPlaneCount returns how many of fullPlanes C-planes are retained
// under s. fullPlanes is the plane count of the unreduced 0–360° grid.
func (s Symmetry) StoredPlaneCount(fullPlanes int) int {
	switch s {
	case SymmetryVerticalAxis:
		return 1
	case SymmetryC0C180, SymmetryC90C270:
		return fullPlanes/2 + 1
	case SymmetryBothPlanes:
		return fullPlanes/4 + 1
	default:
		return fullPlanes
	}
}
