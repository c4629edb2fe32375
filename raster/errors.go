// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "errors"

// Sentinel errors for raster package.
var (
	// ErrTooFewPoints is returned when a polygon has fewer than 3 vertices.
	ErrTooFewPoints = errors.New("raster: polygon needs at least 3 points")

	// ErrInvalidRadius is returned for negative circle radii.
	ErrInvalidRadius = errors.New("raster: negative radius")

	// ErrNotConvex is returned by FillConvex when the vertex order does not
	// describe a polygon whose left and right boundaries are each monotonic
	// in Y. Callers typically fall back to FillGeneral. Returned errors wrap
	// this value with the specific cause; test with errors.Is.
	ErrNotConvex = errors.New("raster: polygon is not convex")
)
