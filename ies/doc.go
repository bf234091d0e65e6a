// Package ies exports the single-distribution photometric document to the
// keyword-header IES LM-63 style layout.
//
// What:
//
//   - Export writes the header keyword block, the TILT marker, the
//     declaration and power lines, both angle lines, and one candela line
//     per horizontal angle.
//
// The target layout has no symmetry shorthand, so azimuth handling
// depends on the source symmetry:
//
//   - None: the stored planes pass through unchanged.
//   - VerticalAxis and BothPlanes: the native filtered angle set is
//     emitted directly (a single plane, or the 0–90° quadrant) — both are
//     conventional reduced layouts for this format.
//   - C0C180 and C90C270: the stored half grid is expanded to the full
//     0–360° grid via the shared symmetry expansion.
//
// Candela values are absolute: stored cd/klm scaled by total lamp flux
// (and the conversion factor), emitted with one decimal place. When the
// document carries no lamp flux the values pass through unscaled.
//
// Errors: Export fails only on a structurally broken document (shape
// errors from package photometry).
package ies
