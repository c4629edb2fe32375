// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ui2d provides the shared types of an immediate-mode 2D shape
// rasterizer and deferred compositor for UI toolkits.
//
// # Overview
//
// Widgets issue draw calls during a frame. Calls are queued as draw
// primitives, circles and polygons are rasterized once into 16-bit opacity
// bitmaps held by a procedural texture cache, and a per-frame flush hands
// the queue to a sprite sink: transparent primitives first, in order, then
// opaque primitives, in order.
//
// # Quick Start
//
//	r, err := render.New(800, 600)
//	if err != nil {
//	    return err
//	}
//	defer r.Dispose()
//
//	r.FillRectangle(ui2d.R(10, 10, 200, 40), nil, ui2d.RGB(40, 40, 60))
//	r.DrawRectangle(ui2d.R(10, 10, 200, 40), ui2d.White, 2)
//	_ = r.FillCircle(ui2d.Pt(300, 300), 25, ui2d.Red)
//	r.WriteText(ui2d.Pt(0, 8), "Paused", ui2d.White, nil, text.Align{H: text.Center})
//
//	if err := r.Flush(true, 0); err != nil {
//	    return err
//	}
//
// # Architecture
//
// The module is organized into:
//   - ui2d: Color, Point, Rect, Pixmap and the package logger
//   - raster: bitmap generators (scanline polygon fill, midpoint circles)
//   - texture: procedural texture cache keyed by shape parameters
//   - drawlist: primitive queue, compositor and the Sink seam
//   - drawlist/sinks/software, drawlist/sinks/ebiten: concrete sinks
//   - text: font faces, measurement and viewport alignment
//   - render: the Renderer that widgets call
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
// Rotations are in radians about a sprite's top-left corner.
package ui2d

// Version is the current version of the library.
const Version = "0.1.0"
