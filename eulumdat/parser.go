package eulumdat

import (
	"strconv"
	"strings"

	"github.com/luxdat/luxdat/photometry"
)

// reader walks the input line by line, tracking the 1-based position for
// error reporting.
type reader struct {
	lines []string
	pos   int
}

func (r *reader) next(field string) (string, error) {
	if r.pos >= len(r.lines) {
		return "", &ParseError{Line: r.pos + 1, Msg: field, Err: ErrTruncated}
	}
	s := strings.TrimRight(r.lines[r.pos], "\r")
	r.pos++

	return s, nil
}

func (r *reader) float(field string) (float64, error) {
	s, err := r.next(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &ParseError{Line: r.pos, Msg: field + " " + strconv.Quote(s), Err: ErrSyntax}
	}

	return v, nil
}

func (r *reader) int(field string) (int, error) {
	s, err := r.next(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ParseError{Line: r.pos, Msg: field + " " + strconv.Quote(s), Err: ErrSyntax}
	}

	return v, nil
}

// floats reads one space-separated row of exactly n values.
func (r *reader) floats(field string, n int) ([]float64, error) {
	s, err := r.next(field)
	if err != nil {
		return nil, err
	}
	toks := strings.Fields(s)
	if len(toks) != n {
		return nil, &ParseError{
			Line: r.pos,
			Msg:  field + ": got " + strconv.Itoa(len(toks)) + " values, want " + strconv.Itoa(n),
			Err:  ErrCount,
		}
	}
	vals := make([]float64, n)
	for i, tok := range toks {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &ParseError{Line: r.pos, Msg: field + " " + strconv.Quote(tok), Err: ErrSyntax}
		}
		vals[i] = v
	}

	return vals, nil
}

// Parse reads the line-oriented layout into a Document. The returned
// document always satisfies photometry.Document.CheckShape. Failures are
// *ParseError values; the input is never defaulted around.
func Parse(text string) (*photometry.Document, error) {
	r := &reader{lines: strings.Split(text, "\n")}
	d := &photometry.Document{}

	var err error
	if d.Company, err = r.next("company"); err != nil {
		return nil, err
	}

	ityp, err := r.int("type indicator")
	if err != nil {
		return nil, err
	}
	if ityp < int(photometry.PointSourceSymmetric) || ityp > int(photometry.PointSourceOther) {
		return nil, &ParseError{Line: r.pos, Msg: "type indicator " + strconv.Itoa(ityp), Err: ErrSyntax}
	}
	d.Type = photometry.LuminaireType(ityp)

	isym, err := r.int("symmetry code")
	if err != nil {
		return nil, err
	}
	d.Symmetry = photometry.Symmetry(isym)
	if !d.Symmetry.Valid() {
		return nil, &ParseError{Line: r.pos, Msg: "symmetry code " + strconv.Itoa(isym), Err: photometry.ErrUnknownSymmetry}
	}

	if d.PlaneCount, err = r.int("C-plane count"); err != nil {
		return nil, err
	}
	if d.PlaneSpacing, err = r.float("C-plane spacing"); err != nil {
		return nil, err
	}
	if d.GammaCount, err = r.int("gamma count"); err != nil {
		return nil, err
	}
	if d.GammaSpacing, err = r.float("gamma spacing"); err != nil {
		return nil, err
	}

	if d.MeasurementID, err = r.next("measurement report number"); err != nil {
		return nil, err
	}
	if d.LuminaireName, err = r.next("luminaire name"); err != nil {
		return nil, err
	}
	if d.LuminaireNumber, err = r.next("luminaire number"); err != nil {
		return nil, err
	}
	if d.FileName, err = r.next("file name"); err != nil {
		return nil, err
	}
	if d.DateAndOperator, err = r.next("date/operator"); err != nil {
		return nil, err
	}

	if d.Size.Length, err = r.float("length"); err != nil {
		return nil, err
	}
	if d.Size.Width, err = r.float("width"); err != nil {
		return nil, err
	}
	if d.Size.Height, err = r.float("height"); err != nil {
		return nil, err
	}
	if d.Area.Length, err = r.float("luminous length"); err != nil {
		return nil, err
	}
	if d.Area.Width, err = r.float("luminous width"); err != nil {
		return nil, err
	}
	if d.Area.HeightC0, err = r.float("luminous height C0"); err != nil {
		return nil, err
	}
	if d.Area.HeightC90, err = r.float("luminous height C90"); err != nil {
		return nil, err
	}
	if d.Area.HeightC180, err = r.float("luminous height C180"); err != nil {
		return nil, err
	}
	if d.Area.HeightC270, err = r.float("luminous height C270"); err != nil {
		return nil, err
	}

	if d.DownwardFluxFraction, err = r.float("downward flux fraction"); err != nil {
		return nil, err
	}
	if d.LightOutputRatio, err = r.float("light output ratio"); err != nil {
		return nil, err
	}
	if d.ConversionFactor, err = r.float("conversion factor"); err != nil {
		return nil, err
	}
	if d.Tilt, err = r.float("tilt"); err != nil {
		return nil, err
	}

	nsets, err := r.int("lamp set count")
	if err != nil {
		return nil, err
	}
	if nsets < 1 {
		return nil, &ParseError{Line: r.pos, Msg: "lamp set count " + strconv.Itoa(nsets), Err: ErrCount}
	}
	d.LampSets = make([]photometry.LampSet, nsets)
	for i := range d.LampSets {
		ls := &d.LampSets[i]
		if ls.Count, err = r.int("lamp count"); err != nil {
			return nil, err
		}
		if ls.Type, err = r.next("lamp type"); err != nil {
			return nil, err
		}
		if ls.Flux, err = r.float("lamp flux"); err != nil {
			return nil, err
		}
		if ls.ColorTemperature, err = r.next("color temperature"); err != nil {
			return nil, err
		}
		if ls.ColorRendering, err = r.next("color rendering"); err != nil {
			return nil, err
		}
		if ls.Wattage, err = r.float("wattage"); err != nil {
			return nil, err
		}
	}

	ratios, err := r.floats("direct ratios", photometry.DirectRatioSlots)
	if err != nil {
		return nil, err
	}
	copy(d.DirectRatios[:], ratios)

	stored := d.Symmetry.StoredPlaneCount(d.PlaneCount)
	if stored < 1 {
		return nil, &ParseError{Line: r.pos, Msg: "C-plane count " + strconv.Itoa(d.PlaneCount), Err: ErrCount}
	}
	if d.HorizontalAngles, err = r.floats("C angles", stored); err != nil {
		return nil, err
	}
	if d.VerticalAngles, err = r.floats("gamma angles", d.GammaCount); err != nil {
		return nil, err
	}

	d.Intensities = make([][]float64, stored)
	for i := range d.Intensities {
		if d.Intensities[i], err = r.floats("intensity row", d.GammaCount); err != nil {
			return nil, err
		}
	}

	if err := d.CheckShape(); err != nil {
		return nil, &ParseError{Line: r.pos, Msg: "document shape", Err: err}
	}

	return d, nil
}
