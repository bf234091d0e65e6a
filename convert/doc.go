// Package convert maps between the single-distribution photometric
// document and the multi-emitter exchange document.
//
// What:
//
//   - FromDocument synthesizes a one-emitter Exchange from a Document:
//     identification strings map 1:1 when non-empty, lamp sets collapse
//     into summed quantity/flux/watts, free-text color fields normalize
//     through the CCT/CRI heuristics, and the intensity grid is copied
//     verbatim (no symmetry expansion).
//   - ToDocument rebuilds a Document from the first emitter of an
//     Exchange. Symmetry is inferred from the shape of the horizontal
//     angle list, the grid description from its length and first delta,
//     and the downward flux fraction is back-filled from a
//     sin(gamma)-weighted sum split at gamma=90°.
//   - ParseCCT, ParseCRI and CRIToGroup are the free-text normalization
//     heuristics. They never fail: unrecognized input is "no value".
//
// Known losses, by design rather than accident:
//
//   - ToDocument reads only the first emitter; multi-emitter exchanges
//     lose their remaining emitters.
//   - The back-filled downward flux fraction is a sin-weighted sum, not
//     a calibrated solid-angle integral, and the light output ratio
//     defaults to 100 % — both are estimates for formats that require
//     the fields. Package metrics holds the calibrated integration.
//
// Errors:
//
//   - ErrNilDocument / ErrNilExchange: conversion input is nil.
//   - ErrNoEmitters: the exchange has no emitter to convert.
//   - ErrNoIntensity: the first emitter has no intensity distribution.
package convert
