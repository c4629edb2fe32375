// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render is the drawing interface UI widgets talk to.
//
// A [Renderer] turns shape calls into queued sprites. Circles and polygons
// are rasterized once into cached opacity bitmaps and drawn scaled and
// tinted; rectangles and lines are solid sprites. At the end of each frame
// the owning loop calls [Renderer.Flush] to composite the queue onto the
// sink:
//
//	r, err := render.New(640, 480)
//	if err != nil {
//	    return err
//	}
//	defer r.Dispose()
//
//	r.FillRectangle(ui2d.R(10, 10, 100, 40), nil, ui2d.Hex("#3366cc"))
//	if err := r.FillCircle(ui2d.Pt(200, 120), 16, ui2d.Red); err != nil {
//	    return err
//	}
//	r.WriteText(ui2d.Pt(0, 8), "Paused", ui2d.White, nil, text.Align{H: text.Center})
//	err = r.Flush(true, 0)
//
// The default sink is "software"; see [WithSink] and [WithSinkName].
// A Renderer is not safe for concurrent use.
package render
