package ldx

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseXML reads the XML serialization. Syntax failures carry the input
// line where they were detected and wrap ErrMalformed.
func ParseXML(text string) (*Exchange, error) {
	var x Exchange
	if err := xml.Unmarshal([]byte(text), &x); err != nil {
		var syn *xml.SyntaxError
		if errors.As(err, &syn) {
			return nil, fmt.Errorf("ldx: xml line %d: %s: %w", syn.Line, syn.Msg, ErrMalformed)
		}
		if errors.Is(err, ErrMalformed) {
			return nil, fmt.Errorf("ldx: xml: %w", err)
		}

		return nil, fmt.Errorf("ldx: xml: %v: %w", err, ErrMalformed)
	}

	return &x, nil
}

// WriteXML serializes x with the standard XML header, indented.
func WriteXML(x *Exchange) (string, error) {
	out, err := xml.MarshalIndent(x, "", "  ")
	if err != nil {
		return "", fmt.Errorf("ldx: write xml: %w", err)
	}

	return xml.Header + string(out) + "\n", nil
}

// ParseJSON reads the JSON serialization.
func ParseJSON(text string) (*Exchange, error) {
	var x Exchange
	if err := json.Unmarshal([]byte(text), &x); err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			return nil, fmt.Errorf("ldx: json offset %d: %v: %w", syn.Offset, err, ErrMalformed)
		}

		return nil, fmt.Errorf("ldx: json: %v: %w", err, ErrMalformed)
	}

	return &x, nil
}

// WriteJSON serializes x as indented JSON.
func WriteJSON(x *Exchange) (string, error) {
	out, err := json.MarshalIndent(x, "", "  ")
	if err != nil {
		return "", fmt.Errorf("ldx: write json: %w", err)
	}

	return string(out) + "\n", nil
}

// ParseYAML reads the YAML serialization.
func ParseYAML(text string) (*Exchange, error) {
	var x Exchange
	if err := yaml.Unmarshal([]byte(text), &x); err != nil {
		return nil, fmt.Errorf("ldx: yaml: %v: %w", err, ErrMalformed)
	}

	return &x, nil
}

// WriteYAML serializes x as YAML.
func WriteYAML(x *Exchange) (string, error) {
	out, err := yaml.Marshal(x)
	if err != nil {
		return "", fmt.Errorf("ldx: write yaml: %w", err)
	}

	return string(out), nil
}
