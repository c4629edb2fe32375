// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image"

// Shape is a hint describing a polygon's geometry. It selects the filler.
type Shape uint8

const (
	// Convex polygons use the edge-chain filler.
	Convex Shape = iota
	// Nonconvex simple polygons use the edge-table filler.
	Nonconvex
	// Complex (self-intersecting) polygons are filled like Nonconvex,
	// even-odd.
	Complex
)

var shapeNames = [...]string{
	Convex:    "Convex",
	Nonconvex: "Nonconvex",
	Complex:   "Complex",
}

// String returns the string representation of a Shape.
func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "Unknown"
}

// Fill fills a polygon with the filler the shape hint selects.
func Fill(bm *Bitmap, points []image.Point, offset image.Point, shape Shape) error {
	if shape == Convex {
		return FillConvex(bm, points, offset)
	}
	return FillGeneral(bm, points, offset)
}

// PolygonBounds returns the rectangle that can contain filled pixels of
// the polygon: from the minimum vertex up to, but not including, the
// maximum vertex on both axes.
func PolygonBounds(points []image.Point) image.Rectangle {
	if len(points) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}
