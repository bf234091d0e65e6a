package validate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Schema is the embedded XML schema for the exchange serialization,
// fixed at load time.
const Schema = schemaXSD

// SchemaMessage is one diagnostic produced by the external validator.
type SchemaMessage struct {
	// Code classifies the diagnostic (e.g. "Schemas validity error").
	Code string
	// Text is the human-readable message.
	Text string
	// Line and Column locate the diagnostic in the input; 0 when the
	// validator did not report a position.
	Line   int
	Column int
}

// SchemaValidator runs an external XML schema validator as a subprocess.
// The zero value uses xmllint from PATH.
type SchemaValidator struct {
	// Command is the validator binary; defaults to "xmllint".
	Command string
}

// Validate feeds document to the validator on stdin against the embedded
// schema and returns its structured diagnostics. An empty slice means
// the document validated. The returned error covers process failures
// only (binary missing, context canceled), never validity findings.
func (v *SchemaValidator) Validate(ctx context.Context, document string) ([]SchemaMessage, error) {
	bin := v.Command
	if bin == "" {
		bin = "xmllint"
	}

	// The validator wants the schema as a file; the engine otherwise
	// stays I/O-free, so this temp file is scoped to the call.
	tmp, err := os.CreateTemp("", "luxdat-*.xsd")
	if err != nil {
		return nil, fmt.Errorf("validate: schema temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(Schema); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("validate: schema temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("validate: schema temp file: %w", err)
	}

	cmd := exec.CommandContext(ctx, bin, "--noout", "--schema", tmp.Name(), "-")
	cmd.Stdin = strings.NewReader(document)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	msgs := parseDiagnostics(stderr.String())
	if runErr != nil {
		var exit *exec.ExitError
		if len(msgs) == 0 || !errors.As(runErr, &exit) {
			return nil, fmt.Errorf("validate: %s: %w", bin, runErr)
		}
		// Non-zero exit with parsed diagnostics is a validity result.
	}

	return msgs, nil
}

// parseDiagnostics translates xmllint-style stderr lines
// ("-:12: Schemas validity error : Element ...") into messages.
// Unattributable lines become position-less messages; the trailing
// "validates" / "fails to validate" summary is dropped.
func parseDiagnostics(out string) []SchemaMessage {
	var msgs []SchemaMessage
	for _, ln := range strings.Split(out, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasSuffix(ln, " validates") || strings.HasSuffix(ln, "fails to validate") {
			continue
		}

		msg := SchemaMessage{Text: ln}
		parts := strings.SplitN(ln, ":", 3)
		if len(parts) == 3 {
			if line, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
				msg.Line = line
				rest := strings.TrimSpace(parts[2])
				if code, text, ok := strings.Cut(rest, ":"); ok {
					msg.Code = strings.TrimSpace(code)
					msg.Text = strings.TrimSpace(text)
				} else {
					msg.Text = rest
				}
			}
		}
		msgs = append(msgs, msg)
	}

	return msgs
}

// schemaXSD describes the exchange tree: versioned root, optional
// header/physical/equipment blocks, one or more emitters.
const schemaXSD = `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" elementFormDefault="qualified">
  <xs:element name="LuminaireExchange">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="Header" type="headerType" minOccurs="0"/>
        <xs:element name="Physical" type="physicalType" minOccurs="0"/>
        <xs:element name="Equipment" type="equipmentType" minOccurs="0"/>
        <xs:element name="Emitters">
          <xs:complexType>
            <xs:sequence>
              <xs:element name="Emitter" type="emitterType" maxOccurs="unbounded"/>
            </xs:sequence>
          </xs:complexType>
        </xs:element>
        <xs:element name="Custom" type="xs:string" minOccurs="0"/>
      </xs:sequence>
      <xs:attribute name="version" type="xs:string" use="required"/>
    </xs:complexType>
  </xs:element>

  <xs:complexType name="headerType">
    <xs:all>
      <xs:element name="Manufacturer" type="xs:string" minOccurs="0"/>
      <xs:element name="Name" type="xs:string" minOccurs="0"/>
      <xs:element name="CatalogNumber" type="xs:string" minOccurs="0"/>
      <xs:element name="Description" type="xs:string" minOccurs="0"/>
      <xs:element name="CreationDate" type="xs:string" minOccurs="0"/>
      <xs:element name="ReportNumber" type="xs:string" minOccurs="0"/>
      <xs:element name="SourceFile" type="xs:string" minOccurs="0"/>
    </xs:all>
  </xs:complexType>

  <xs:complexType name="physicalType">
    <xs:sequence>
      <xs:element name="Length" type="xs:double"/>
      <xs:element name="Width" type="xs:double"/>
      <xs:element name="Height" type="xs:double"/>
      <xs:element name="Openings" minOccurs="0">
        <xs:complexType>
          <xs:sequence>
            <xs:element name="Opening" type="openingType" maxOccurs="unbounded"/>
          </xs:sequence>
        </xs:complexType>
      </xs:element>
    </xs:sequence>
  </xs:complexType>

  <xs:complexType name="openingType">
    <xs:sequence>
      <xs:element name="Shape" type="shapeType"/>
      <xs:element name="Length" type="xs:double"/>
      <xs:element name="Width" type="xs:double"/>
      <xs:element name="Height" type="xs:double" minOccurs="0"/>
    </xs:sequence>
  </xs:complexType>

  <xs:simpleType name="shapeType">
    <xs:restriction base="xs:string">
      <xs:enumeration value="Rectangular"/>
      <xs:enumeration value="Circular"/>
    </xs:restriction>
  </xs:simpleType>

  <xs:complexType name="equipmentType">
    <xs:all>
      <xs:element name="ControlGear" type="xs:string" minOccurs="0"/>
      <xs:element name="ControlGearCount" type="xs:int" minOccurs="0"/>
      <xs:element name="PowerFactor" type="xs:double" minOccurs="0"/>
    </xs:all>
  </xs:complexType>

  <xs:complexType name="emitterType">
    <xs:sequence>
      <xs:element name="Quantity" type="xs:int"/>
      <xs:element name="RatedLumens" type="xs:double"/>
      <xs:element name="MeasuredLumens" type="xs:double" minOccurs="0"/>
      <xs:element name="InputWatts" type="xs:double"/>
      <xs:element name="CCT" type="xs:double" minOccurs="0"/>
      <xs:element name="Color" type="colorType" minOccurs="0"/>
      <xs:element name="Provenance" type="provenanceType" minOccurs="0"/>
      <xs:element name="Intensity" type="intensityType" minOccurs="0"/>
      <xs:element name="Spectrum" type="spectrumType" minOccurs="0"/>
    </xs:sequence>
  </xs:complexType>

  <xs:simpleType name="provenanceType">
    <xs:restriction base="xs:string">
      <xs:enumeration value="Measured"/>
      <xs:enumeration value="Simulated"/>
      <xs:enumeration value="Derived"/>
    </xs:restriction>
  </xs:simpleType>

  <xs:complexType name="colorType">
    <xs:sequence>
      <xs:element name="Ra" type="xs:double"/>
      <xs:element name="R9" type="xs:double" minOccurs="0"/>
      <xs:element name="Rf" type="xs:double" minOccurs="0"/>
      <xs:element name="Rg" type="xs:double" minOccurs="0"/>
    </xs:sequence>
  </xs:complexType>

  <xs:simpleType name="numberList">
    <xs:list itemType="xs:double"/>
  </xs:simpleType>

  <xs:complexType name="intensityType">
    <xs:sequence>
      <xs:element name="PhotometryType" type="xs:string"/>
      <xs:element name="Metric" type="xs:string"/>
      <xs:element name="Units" type="xs:string" minOccurs="0"/>
      <xs:element name="HorizontalAngles" type="numberList"/>
      <xs:element name="VerticalAngles" type="numberList"/>
      <xs:element name="Values">
        <xs:complexType>
          <xs:sequence>
            <xs:element name="Row" type="numberList" maxOccurs="unbounded"/>
          </xs:sequence>
        </xs:complexType>
      </xs:element>
    </xs:sequence>
  </xs:complexType>

  <xs:complexType name="spectrumType">
    <xs:sequence>
      <xs:element name="Wavelengths" type="numberList"/>
      <xs:element name="Values" type="numberList"/>
    </xs:sequence>
    <xs:attribute name="absolute" type="xs:boolean"/>
  </xs:complexType>
</xs:schema>
`
