package ldx

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// ValueList is a numeric list that serializes as one space-separated
// text element in XML, and as a plain array in JSON and YAML.
type ValueList []float64

// MarshalXML writes the list as space-separated character data.
func (v ValueList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(joinFloats(v), start)
}

// UnmarshalXML reads space-separated character data.
func (v *ValueList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	vals, err := splitFloats(s)
	if err != nil {
		return fmt.Errorf("element %s: %w", start.Name.Local, err)
	}
	*v = vals

	return nil
}

// Matrix is a 2-D grid that serializes as one <Row> element per row in
// XML, and as nested arrays in JSON and YAML.
type Matrix [][]float64

// MarshalXML writes one Row element per grid row.
func (m Matrix) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	row := xml.StartElement{Name: xml.Name{Local: "Row"}}
	for _, r := range m {
		if err := e.EncodeElement(joinFloats(r), row); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// UnmarshalXML reads the Row elements back into the grid.
func (m *Matrix) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Rows []string `xml:"Row"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	out := make(Matrix, len(raw.Rows))
	for i, s := range raw.Rows {
		vals, err := splitFloats(s)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = vals
	}
	*m = out

	return nil
}

// joinFloats renders values as one space-separated token string.
func joinFloats(vals []float64) string {
	toks := make([]string, len(vals))
	for i, v := range vals {
		toks[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}

	return strings.Join(toks, " ")
}

// splitFloats parses a space-separated token string.
func splitFloats(s string) ([]float64, error) {
	toks := strings.Fields(s)
	vals := make([]float64, len(toks))
	for i, tok := range toks {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", tok, ErrMalformed)
		}
		vals[i] = v
	}

	return vals, nil
}
