// Package sampler provides continuous bilinear interpolation over any
// symmetry-aware intensity table.
//
// What:
//
//   - Table is the structural capability a grid must offer: plane angles,
//     gamma angles, cell lookup and the symmetry it was reduced with.
//     Both photometry.Document and ldx.IntensityDistribution satisfy it.
//   - New snapshots a Table into an Interpolator, validating shape and
//     caching the minimum and maximum intensity.
//   - Sample(c, g) evaluates the distribution at any real direction.
//
// Algorithm:
//
//  1. Normalize c into [0,360) (modulo); clamp g into [0,180].
//  2. Fold c onto the stored azimuth range via the table's symmetry.
//  3. For each axis independently, locate the bracketing stored pair and
//     the interpolation fraction. Out-of-range targets clamp to the
//     boundary with fraction 0 — there is no extrapolation.
//  4. Combine the four matrix corners bilinearly: along gamma at each
//     bracketing plane, then along azimuth.
//
// The function is total: it never indexes out of bounds, it is exact at
// stored grid points, and every result lies within [Min,Max] of the
// snapshot.
//
// Complexity: O(log n) per sample (binary search per axis), O(P·G) memory
// for the snapshot.
//
// Errors:
//
//   - ErrNilTable: New received nil.
//   - ErrEmptyAngles: a table axis has no stored angles.
//   - ErrUnorderedAngles: an axis is not strictly increasing.
package sampler
