package ldx

import (
	"encoding/xml"

	"github.com/luxdat/luxdat/photometry"
)

// Version is the exchange format revision this package writes.
const Version = "1.0"

// Provenance records how an emitter's photometric data was obtained.
type Provenance string

const (
	Measured  Provenance = "Measured"
	Simulated Provenance = "Simulated"
	Derived   Provenance = "Derived"
)

// PhotometryType identifies the goniophotometer coordinate system.
type PhotometryType string

const (
	TypeA PhotometryType = "A"
	TypeB PhotometryType = "B"
	TypeC PhotometryType = "C"
)

// Metric identifies the quantity stored in an intensity grid.
type Metric string

const (
	MetricLuminous Metric = "Luminous"
	MetricRadiant  Metric = "Radiant"
	MetricPhoton   Metric = "Photon"
	MetricSpectral Metric = "Spectral"
)

// OpeningShape classifies a luminous opening.
type OpeningShape string

const (
	Rectangular OpeningShape = "Rectangular"
	Circular    OpeningShape = "Circular"
)

// Exchange is the versioned root of the multi-emitter document.
type Exchange struct {
	XMLName   xml.Name      `xml:"LuminaireExchange" json:"-" yaml:"-"`
	Version   string        `xml:"version,attr" json:"version" yaml:"version"`
	Header    *Header       `xml:"Header,omitempty" json:"header,omitempty" yaml:"header,omitempty"`
	Physical  *Physical     `xml:"Physical,omitempty" json:"physical,omitempty" yaml:"physical,omitempty"`
	Equipment *Equipment    `xml:"Equipment,omitempty" json:"equipment,omitempty" yaml:"equipment,omitempty"`
	Emitters  []Emitter     `xml:"Emitters>Emitter" json:"emitters" yaml:"emitters"`
	Custom    *Custom       `xml:"Custom,omitempty" json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Header carries identification metadata. Every field is optional; an
// empty string is never serialized as an empty element.
type Header struct {
	Manufacturer  string `xml:"Manufacturer,omitempty" json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Name          string `xml:"Name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	CatalogNumber string `xml:"CatalogNumber,omitempty" json:"catalogNumber,omitempty" yaml:"catalog_number,omitempty"`
	Description   string `xml:"Description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	CreationDate  string `xml:"CreationDate,omitempty" json:"creationDate,omitempty" yaml:"creation_date,omitempty"`
	ReportNumber  string `xml:"ReportNumber,omitempty" json:"reportNumber,omitempty" yaml:"report_number,omitempty"`
	SourceFile    string `xml:"SourceFile,omitempty" json:"sourceFile,omitempty" yaml:"source_file,omitempty"`
}

// Physical describes the luminaire body and its luminous openings,
// dimensions in millimeters.
type Physical struct {
	Length   float64           `xml:"Length" json:"length" yaml:"length"`
	Width    float64           `xml:"Width" json:"width" yaml:"width"`
	Height   float64           `xml:"Height" json:"height" yaml:"height"`
	Openings []LuminousOpening `xml:"Openings>Opening,omitempty" json:"openings,omitempty" yaml:"openings,omitempty"`
}

// LuminousOpening is one light-emitting surface.
type LuminousOpening struct {
	Shape  OpeningShape `xml:"Shape" json:"shape" yaml:"shape"`
	Length float64      `xml:"Length" json:"length" yaml:"length"`
	Width  float64      `xml:"Width" json:"width" yaml:"width"`
	Height float64      `xml:"Height,omitempty" json:"height,omitempty" yaml:"height,omitempty"`
}

// Equipment carries optional gear metadata.
type Equipment struct {
	ControlGear      string  `xml:"ControlGear,omitempty" json:"controlGear,omitempty" yaml:"control_gear,omitempty"`
	ControlGearCount int     `xml:"ControlGearCount,omitempty" json:"controlGearCount,omitempty" yaml:"control_gear_count,omitempty"`
	PowerFactor      float64 `xml:"PowerFactor,omitempty" json:"powerFactor,omitempty" yaml:"power_factor,omitempty"`
}

// Color bundles the color-rendering metrics. A nil *Color on an emitter
// means "not specified".
type Color struct {
	Ra float64 `xml:"Ra" json:"ra" yaml:"ra"`
	R9 float64 `xml:"R9,omitempty" json:"r9,omitempty" yaml:"r9,omitempty"`
	Rf float64 `xml:"Rf,omitempty" json:"rf,omitempty" yaml:"rf,omitempty"`
	Rg float64 `xml:"Rg,omitempty" json:"rg,omitempty" yaml:"rg,omitempty"`
}

// Emitter is one light source group inside a luminaire.
type Emitter struct {
	Quantity       int                    `xml:"Quantity" json:"quantity" yaml:"quantity"`
	RatedLumens    float64                `xml:"RatedLumens" json:"ratedLumens" yaml:"rated_lumens"`
	MeasuredLumens float64                `xml:"MeasuredLumens,omitempty" json:"measuredLumens,omitempty" yaml:"measured_lumens,omitempty"`
	InputWatts     float64                `xml:"InputWatts" json:"inputWatts" yaml:"input_watts"`
	CCT            float64                `xml:"CCT,omitempty" json:"cct,omitempty" yaml:"cct,omitempty"`
	Color          *Color                 `xml:"Color,omitempty" json:"color,omitempty" yaml:"color,omitempty"`
	Provenance     Provenance             `xml:"Provenance,omitempty" json:"provenance,omitempty" yaml:"provenance,omitempty"`
	Intensity      *IntensityDistribution `xml:"Intensity,omitempty" json:"intensity,omitempty" yaml:"intensity,omitempty"`
	Spectrum       *SpectralDistribution  `xml:"Spectrum,omitempty" json:"spectrum,omitempty" yaml:"spectrum,omitempty"`
}

// IntensityDistribution is a full, unfolded intensity grid: one value
// row per horizontal angle, one column per vertical angle.
type IntensityDistribution struct {
	PhotometryType PhotometryType `xml:"PhotometryType" json:"photometryType" yaml:"photometry_type"`
	Metric         Metric         `xml:"Metric" json:"metric" yaml:"metric"`
	Units          string         `xml:"Units,omitempty" json:"units,omitempty" yaml:"units,omitempty"`
	Horizontal     ValueList      `xml:"HorizontalAngles" json:"horizontalAngles" yaml:"horizontal_angles"`
	Vertical       ValueList      `xml:"VerticalAngles" json:"verticalAngles" yaml:"vertical_angles"`
	Values         Matrix         `xml:"Values" json:"values" yaml:"values"`
}

// PlaneAngles returns the horizontal angle list.
func (d *IntensityDistribution) PlaneAngles() []float64 { return d.Horizontal }

// GammaAngles returns the vertical angle list.
func (d *IntensityDistribution) GammaAngles() []float64 { return d.Vertical }

// Intensity returns the value at horizontal index h, vertical index v.
func (d *IntensityDistribution) Intensity(h, v int) float64 { return d.Values[h][v] }

// SymmetryMode is always none: exchange grids are stored unfolded.
func (d *IntensityDistribution) SymmetryMode() photometry.Symmetry {
	return photometry.SymmetryNone
}

// CheckShape verifies the grid invariant: one row per horizontal angle,
// each as wide as the vertical list.
func (d *IntensityDistribution) CheckShape() error {
	if len(d.Values) != len(d.Horizontal) {
		return ErrShapeMismatch
	}
	for _, row := range d.Values {
		if len(row) != len(d.Vertical) {
			return ErrShapeMismatch
		}
	}

	return nil
}

// SpectralDistribution is a sampled spectrum. Absolute distinguishes
// absolute spectral flux from a relative (peak-normalized) curve.
type SpectralDistribution struct {
	Absolute    bool      `xml:"absolute,attr" json:"absolute" yaml:"absolute"`
	Wavelengths ValueList `xml:"Wavelengths" json:"wavelengths" yaml:"wavelengths"`
	Values      ValueList `xml:"Values" json:"values" yaml:"values"`
}

// Custom is an opaque payload preserved verbatim across conversions.
type Custom struct {
	Payload string `xml:",cdata" json:"payload" yaml:"payload"`
}
