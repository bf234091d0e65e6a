// Package luxdat is an in-memory engine for exchanging and analyzing
// luminaire photometric data — from raw goniophotometer grids to
// structured multi-emitter exchange documents.
//
// 🚀 What is luxdat?
//
//	A pure, synchronous library that brings together:
//		• Symmetry-aware intensity tables: five folding rules, one shared expansion
//		• Continuous sampling: bilinear interpolation over any spherical grid
//		• Text codecs: the classic line-oriented EULUMDAT layout and IES LM-63 export
//		• Exchange documents: multi-emitter, spectral and color metadata, XML/JSON/YAML
//		• Conversion: structural, best-effort-lossless mapping between formats,
//		  with free-text CCT/CRI normalization and derived-value back-fill
//		• Validation: structural/range checks returned as data, plus optional
//		  external schema validation
//		• Derived metrics: zonal flux, BUG rating, beam/field angles
//
// ✨ Why choose luxdat?
//
//   - Deterministic – every operation is a function of its input, no globals
//   - Owned values – callers pass and receive documents, never shared state
//   - Safe anywhere – no I/O, no locks, trivially parallel per document
//   - Extensible – the sampler works on any table via a small interface
//
// Everything is organized under focused subpackages:
//
//	photometry/ — the single-distribution document, symmetry folding & expansion
//	sampler/    — continuous bilinear interpolation over any intensity table
//	eulumdat/   — line-oriented codec: parse & deterministic write
//	ies/        — IES LM-63 style export
//	ldx/        — multi-emitter exchange document + XML/JSON/YAML codecs
//	convert/    — document↔exchange conversion and metadata heuristics
//	validate/   — structural validation reports and schema subprocess driver
//	metrics/    — zonal flux, BUG rating, beam & field angles
//
// Quick ASCII example:
//
//	        gamma=180 (zenith)
//	            │
//	      ──────┼──────  C-planes rotate about the vertical axis
//	            │
//	        gamma=0 (nadir)
//
//	a luminaire's intensity is a function I(C, gamma) over that sphere.
//
// Dive into the package docs for formulas, invariants and errors.
//
//	go get github.com/luxdat/luxdat
package luxdat
