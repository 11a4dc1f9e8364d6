// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 storage used by the Ant System
// solver for distance models and pheromone trails.
//
// What & Why:
//
//	Dense is a row-major r×c buffer with bounds-checked accessors. Public
//	indexers never panic: At and Set return ErrOutOfRange (wrapped with the
//	method name and coordinates) so callers can match with errors.Is.
//
// Numeric policy:
//
//	Set rejects NaN and ±Inf by default. Distances and trail strengths are
//	always finite, so a non-finite write is always a bug upstream.
//
// Complexity:
//
//	NewDense / NewDenseFromRows: O(r*c). At/Set: O(1). Clone/Fill: O(r*c).
package matrix
