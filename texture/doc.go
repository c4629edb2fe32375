// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package texture caches procedurally generated opacity bitmaps.
//
// A [Cache] keeps one [raster.Bitmap] per distinct circle (radius and
// fill mode) and per distinct polygon. Repeated requests return the same
// instance, so a UI that draws the same rounded knob every frame
// rasterizes it once. Bitmaps stay cached until [Cache.Dispose]; there is
// no eviction.
//
// # Polygon keys
//
// By default a polygon is identified by [Checksum], the alternating sum
// of x+y over its vertices. The checksum is cheap but lossy: two
// different polygons can collide and the second one then gets the first
// one's bitmap. Collisions are reported through the debug logger.
// The shape hint is not part of a lossy key, so a polygon first filled as
// [raster.Nonconvex] is returned as is for a later [raster.Convex]
// request. [WithExactPolygonKeys] pairs the checksum with the full vertex
// list and the shape hint and removes collisions at the cost of building
// a key per call.
package texture
