package validate

import (
	"fmt"

	"github.com/luxdat/luxdat/ldx"
	"github.com/luxdat/luxdat/photometry"
)

// Issue is one validation finding. Code is stable and machine-matchable;
// Message is for humans; Path locates the offending field.
type Issue struct {
	Code    string
	Message string
	Path    string
}

// Report holds the independent error and warning lists of one run.
type Report struct {
	Errors   []Issue
	Warnings []Issue
}

// Valid reports whether the run produced no errors. Warnings never make
// a document invalid; promoting them is a caller-level policy.
func (r Report) Valid() bool { return len(r.Errors) == 0 }

func (r *Report) errorf(code, path, format string, args ...interface{}) {
	r.Errors = append(r.Errors, Issue{Code: code, Path: path, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) warnf(code, path, format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, Issue{Code: code, Path: path, Message: fmt.Sprintf(format, args...)})
}

// plausible CCT bounds in Kelvin.
const (
	minCCT = 1000
	maxCCT = 20000
)

// Exchange checks a multi-emitter exchange document.
func Exchange(x *ldx.Exchange) Report {
	var r Report
	if x == nil {
		r.errorf("exchange.nil", "", "no document")
		return r
	}

	if x.Version == "" {
		r.errorf("version.missing", "version", "format version must not be empty")
	}
	if len(x.Emitters) == 0 {
		r.errorf("emitters.empty", "emitters", "at least one emitter is required")
	}

	for i := range x.Emitters {
		em := &x.Emitters[i]
		path := fmt.Sprintf("emitters[%d]", i)

		if em.Quantity <= 0 {
			r.warnf("emitter.quantity", path, "quantity is %d", em.Quantity)
		}
		if em.RatedLumens < 0 {
			r.errorf("emitter.lumens.negative", path, "rated lumens %v is negative", em.RatedLumens)
		}
		if em.MeasuredLumens < 0 {
			r.errorf("emitter.lumens.negative", path, "measured lumens %v is negative", em.MeasuredLumens)
		}
		if em.InputWatts < 0 {
			r.errorf("emitter.watts.negative", path, "input watts %v is negative", em.InputWatts)
		}
		if em.CCT != 0 && (em.CCT < minCCT || em.CCT > maxCCT) {
			r.warnf("emitter.cct.range", path, "CCT %vK outside [%d,%d]", em.CCT, minCCT, maxCCT)
		}
		if em.Color != nil && (em.Color.Ra < 0 || em.Color.Ra > 100) {
			r.errorf("emitter.ra.range", path, "Ra %v outside [0,100]", em.Color.Ra)
		}
		if em.Intensity != nil {
			checkGrid(&r, path+".intensity",
				em.Intensity.Horizontal, em.Intensity.Vertical, em.Intensity.Values)
		}
	}

	return r
}

// Document checks a single-distribution document against its
// symmetry-reduced shape.
func Document(d *photometry.Document) Report {
	var r Report
	if d == nil {
		r.errorf("document.nil", "", "no document")
		return r
	}

	if !d.Symmetry.Valid() {
		r.errorf("symmetry.unknown", "symmetry", "symmetry code %d is not defined", int(d.Symmetry))
	}
	if len(d.LampSets) == 0 {
		r.errorf("lamps.empty", "lampSets", "at least one lamp set is required")
	}
	for i, ls := range d.LampSets {
		path := fmt.Sprintf("lampSets[%d]", i)
		if ls.Count <= 0 {
			r.warnf("lamps.count", path, "lamp count is %d", ls.Count)
		}
		if ls.Flux < 0 {
			r.errorf("lamps.flux.negative", path, "flux %v is negative", ls.Flux)
		}
		if ls.Wattage < 0 {
			r.errorf("lamps.watts.negative", path, "wattage %v is negative", ls.Wattage)
		}
	}

	if d.DownwardFluxFraction < 0 || d.DownwardFluxFraction > 100 {
		r.warnf("dff.range", "downwardFluxFraction", "%v%% outside [0,100]", d.DownwardFluxFraction)
	}
	if d.LightOutputRatio < 0 || d.LightOutputRatio > 100 {
		r.warnf("lor.range", "lightOutputRatio", "%v%% outside [0,100]", d.LightOutputRatio)
	}

	for _, g := range d.VerticalAngles {
		if g < 0 || g > 180 {
			r.errorf("gamma.range", "verticalAngles", "gamma %v outside [0,180]", g)
		}
	}

	checkGrid(&r, "intensities", d.HorizontalAngles, d.VerticalAngles, d.Intensities)

	return r
}

// checkGrid applies the shared grid checks: non-empty angle lists
// (warning), row structure (errors), no negative cells (error each).
func checkGrid(r *Report, path string, horizontal, vertical []float64, values [][]float64) {
	if len(horizontal) == 0 || len(vertical) == 0 {
		r.warnf("grid.angles.empty", path, "empty angle list")
	}
	if !ascending(horizontal) || !ascending(vertical) {
		r.errorf("grid.angles.order", path, "angle list not strictly increasing")
	}

	if len(values) != len(horizontal) {
		r.errorf("grid.rows", path, "%d rows for %d horizontal angles", len(values), len(horizontal))
	}
	for h, row := range values {
		if len(row) != len(vertical) {
			r.errorf("grid.row.width", fmt.Sprintf("%s[%d]", path, h),
				"%d values for %d vertical angles", len(row), len(vertical))
		}
		for g, v := range row {
			if v < 0 {
				r.errorf("grid.value.negative", fmt.Sprintf("%s[%d][%d]", path, h, g),
					"intensity %v is negative", v)
			}
		}
	}
}

// ascending reports whether vals is strictly increasing.
func ascending(vals []float64) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i] <= vals[i-1] {
			return false
		}
	}

	return true
}
