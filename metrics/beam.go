package metrics

import (
	"github.com/luxdat/luxdat/sampler"
)

// Angles holds the two standard spread figures of a vertical cut: the
// full angle between the 50 % intensity crossings (Beam) and between the
// 10 % crossings (Field), both in degrees, up to 360.
type Angles struct {
	Beam  float64
	Field float64
}

// beamScanStep is the resolution of the vertical cut, degrees.
const beamScanStep = 0.25

// BeamAngles scans the vertical plane through cPlane and its opposite
// and returns the beam and field angles around the cut's peak. The cut
// parameter runs -180..180: negative values lie in plane cPlane+180,
// positive in cPlane, zero at nadir.
func BeamAngles(tab sampler.Table, cPlane float64) (Angles, error) {
	in, err := sampler.New(tab)
	if err != nil {
		return Angles{}, err
	}

	// One sample per step across the full cut, endpoints included.
	n := int(360/beamScanStep) + 1
	cut := make([]float64, n)
	peak, peakIdx := 0.0, n/2
	for i := range cut {
		t := -180 + float64(i)*beamScanStep
		cut[i] = in.Sample(planeOf(cPlane, t), gammaOf(t))
		if cut[i] > peak {
			peak, peakIdx = cut[i], i
		}
	}
	if peak == 0 {
		return Angles{}, nil
	}

	return Angles{
		Beam:  width(cut, peakIdx, peak*0.5),
		Field: width(cut, peakIdx, peak*0.1),
	}, nil
}

// planeOf maps a signed cut angle to its C-plane.
func planeOf(cPlane, t float64) float64 {
	if t < 0 {
		return cPlane + 180
	}

	return cPlane
}

// gammaOf maps a signed cut angle to the gamma of its sample.
func gammaOf(t float64) float64 {
	if t < 0 {
		return -t
	}

	return t
}

// width walks outward from the peak to the first crossings below
// threshold on each side, interpolating the exact crossing, and returns
// the full angle between them. A side that never drops extends to the
// cut boundary.
func width(cut []float64, peakIdx int, threshold float64) float64 {
	lo := float64(0)
	for i := peakIdx; i >= 0; i-- {
		if cut[i] < threshold {
			frac := (threshold - cut[i]) / (cut[i+1] - cut[i])
			lo = float64(i) + frac

			break
		}
	}

	hi := float64(len(cut) - 1)
	for i := peakIdx; i < len(cut); i++ {
		if cut[i] < threshold {
			frac := (threshold - cut[i]) / (cut[i-1] - cut[i])
			hi = float64(i) - frac

			break
		}
	}

	return (hi - lo) * beamScanStep
}
