// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster generates procedural opacity bitmaps for UI shapes.
//
// Two polygon fillers share one integer edge stepper ([Edge]):
//
//   - [FillConvex] walks the left and right edge chains down from the top
//     vertex and records one span per scanline. It is O(edges + height)
//     but requires a convex (more precisely: Y-monotone) vertex order.
//   - [FillGeneral] keeps a global edge table sorted by start scanline and
//     an active edge table sorted by X, and fills even-odd spans. It
//     handles any simple polygon.
//
// Both follow the same pixel rule: a pixel is set when its left edge lies
// on or right of a left polygon edge and strictly left of a right polygon
// edge, and the bottom scanline of a polygon is never drawn. Adjacent
// polygons sharing an edge therefore never cover the same pixel.
//
// [DrawCircleOutline] and [DrawCircleFilled] implement the midpoint circle
// algorithm with 8-way symmetry.
//
// All functions operate on [Bitmap], a 16-bit single-channel mask.
// Nothing in this package is safe for concurrent mutation of the same
// bitmap.
package raster
