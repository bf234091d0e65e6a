// Package validate performs structural and range checks over photometric
// documents, returning findings as data rather than errors.
//
// What:
//
//   - Exchange and Document walk a multi-emitter exchange or a
//     single-distribution document and return a Report with independent
//     error and warning lists. Nothing is ever raised: whether warnings
//     are fatal is the caller's policy, not the engine's.
//   - SchemaValidator drives an external XML schema validator binary
//     (xmllint by default) as a subprocess against the embedded exchange
//     schema, translating its diagnostics into structured messages with
//     line positions.
//
// Check catalogue (exchange): non-empty version (error); at least one
// emitter (error); per emitter — quantity > 0 (warning when 0),
// non-negative lumens and watts (error), CCT within [1000,20000]
// (warning, skipped when unset), Ra within [0,100] (error); per
// intensity grid — non-empty angle lists (warning), row count matching
// the horizontal list (error), row width matching the vertical list
// (error), and no negative value (one error per cell, with its [h,g]
// index). Document applies the analogous checks against the
// symmetry-reduced shape.
//
// The embedded schema is a load-time constant owned by this package;
// callers can read it via Schema.
package validate
