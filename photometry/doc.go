// Package photometry defines the single-distribution luminaire document
// and the symmetry model shared by every codec, sampler and metric.
//
// What:
//
//   - Symmetry enumerates the five folding rules used to reduce a full
//     spherical intensity grid to a stored subset.
//   - Fold maps any absolute azimuth (any real degree value) onto the
//     azimuth actually stored under a given symmetry. Folding an already
//     folded angle is a no-op.
//   - Document is the value-object form of a line-oriented photometric
//     file: identification strings, grid description, physical dimensions,
//     lamp sets, direct ratios, angle lists and the [C][gamma] intensity
//     matrix in candela per kilolumen.
//   - ExpandFull reverses the symmetry reduction, producing the full
//     0–360° azimuth grid. It is the single shared expansion: codecs and
//     metrics call it rather than re-implementing the mirror rules.
//
// Why:
//
//   - Goniophotometer files store only the symmetric subset of the sphere;
//     everything downstream (sampling, export, zonal analysis) needs a
//     consistent way back to absolute directions.
//   - Keeping the folding rules in exactly one place prevents the subtle
//     per-caller divergence that plagues photometric tooling.
//
// Angle conventions:
//
//   - C (azimuth): 0–360°, rotating about the luminaire's vertical axis.
//   - Gamma (elevation): 0° = nadir (straight down), 180° = zenith.
//
// Errors:
//
//   - ErrShapeMismatch: intensity matrix disagrees with the angle lists.
//   - ErrUnorderedAngles: an angle list is not strictly increasing.
//   - ErrGammaRange: a gamma angle lies outside [0,180].
//   - ErrNoAngles: a document has no stored planes or no gamma angles.
//   - ErrUnknownSymmetry: a symmetry code outside the closed set.
package photometry
