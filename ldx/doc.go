// Package ldx defines the multi-emitter luminaire data exchange document
// and its three structured serializations.
//
// What:
//
//   - Exchange is the versioned root: optional header metadata, optional
//     physical description, optional equipment block, one or more
//     emitters, and an opaque custom payload.
//   - Emitter carries electrical and color data (rated/measured lumens,
//     input watts, CCT, Ra/R9/Rf/Rg), a provenance tag, and optionally a
//     full-grid intensity distribution and a spectral distribution.
//   - ParseXML/WriteXML, ParseJSON/WriteJSON and ParseYAML/WriteYAML map
//     the document to its tree-text serializations. Angle lists and the
//     intensity matrix serialize as space-separated rows in XML and as
//     plain arrays in JSON/YAML.
//
// Unlike the single-distribution document, an exchange intensity grid is
// stored unfolded: the horizontal angles cover whatever span the source
// provided and no symmetry reduction applies (SymmetryMode is always
// none, so the sampler clamps instead of folding).
//
// Optionality: absent sections are nil pointers and absent numeric
// metadata is its zero value (a CCT of 0 means "not specified"). Parsing
// never substitutes defaults for structurally invalid input; it fails
// with an error wrapping ErrMalformed instead.
package ldx
