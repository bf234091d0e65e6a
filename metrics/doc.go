// Package metrics derives photometric summary figures from any sampled
// intensity table.
//
// What:
//
//   - ZonalFlux integrates intensity over a gamma band of the full
//     sphere, yielding flux in the table's own units times steradians
//     (lumens per kilolumen for cd/klm grids).
//   - DownwardFraction / UpwardFraction split the total between the
//     lower and upper hemisphere.
//   - CumulativeZones produces the standard cumulative zonal summary
//     (0–30, 0–40, ..., 0–180).
//   - BUG computes the TM-15 style Backlight / Uplight / Glare rating
//     from ten angular zones with per-zone absolute lumen thresholds.
//   - BeamAngles finds the beam (50 %) and field (10 %) angles by a fine
//     scan of the vertical plane through a C-plane and its opposite.
//
// Algorithm:
//
// All integrals use midpoint-rule cells of configurable angular size
// (Options; DefaultOptions gives 1° gamma by 5° azimuth). Each cell
// contributes I(mid) · sin(gamma_mid) · dγ · dc with angles in radians.
// Sampling goes through the sampler package, so reduced grids are folded
// transparently.
//
// Complexity: O((360/dc) · (Δγ/dγ) · log n) per zonal integral.
//
// Errors:
//
//   - ErrBadZone: a gamma bound is outside [0,180] or the band is empty.
//   - ErrBadStep: a non-positive angular step.
//   - ErrBadScale: BUG received a non-positive lumen scale.
//   - sampler errors pass through unchanged when the table is unusable.
package metrics
