// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package demo draws the sample frame shown by the ui2d commands.
package demo

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/ui2d"
	"github.com/gogpu/ui2d/raster"
	"github.com/gogpu/ui2d/render"
	"github.com/gogpu/ui2d/text"
)

var (
	background = ui2d.Hex("#1d2433")
	panel      = ui2d.Hex("#2e3a52")
	accent     = ui2d.Hex("#f2b134")
	highlight  = ui2d.Hex("#4fc1e9").WithAlpha(160)
)

// hexagon returns a convex hexagon of the given radius around (cx, cy).
func hexagon(cx, cy, radius int) []image.Point {
	pts := make([]image.Point, 6)
	for i := range pts {
		a := float64(i) * math.Pi / 3
		pts[i] = image.Pt(cx+int(math.Round(float64(radius)*math.Cos(a))), cy+int(math.Round(float64(radius)*math.Sin(a))))
	}
	return pts
}

// arrow returns a right-pointing, non-convex arrow with its notch corner
// at the origin. The vertex count is odd so its checksum differs from
// the hexagon's.
func arrow() []image.Point {
	return []image.Point{{0, 10}, {30, 10}, {30, 0}, {50, 20}, {30, 40}, {30, 30}, {0, 30}}
}

// DrawFrame queues one frame of the demo scene. Frame animates the clock
// hand and the row of knobs.
func DrawFrame(r *render.Renderer, frame int) error {
	vp := r.Viewport()
	w, h := vp.W, vp.H

	r.FillRectangle(vp, nil, background)
	r.FillRectangle(ui2d.R(16, 40, w-32, h-72), nil, panel)
	r.DrawRectangle(ui2d.R(16, 40, w-32, h-72), accent, 2)

	// Knobs reuse one cached bitmap per radius.
	for i := 0; i < 5; i++ {
		c := ui2d.Pt(60+float64(i)*50, 100)
		if err := r.FillCircle(c, 18, background); err != nil {
			return err
		}
		if err := r.DrawCircle(c, 18, accent); err != nil {
			return err
		}
		a := float64(frame)/30 + float64(i)
		tip := ui2d.Pt(c.X+14*math.Cos(a), c.Y+14*math.Sin(a))
		r.DrawLine(c, tip, ui2d.White, 2)
	}

	if err := r.FillPolygon(hexagon(0, 0, 30), accent, image.Pt(80, 190), raster.Convex); err != nil {
		return err
	}
	if err := r.FillPolygon(arrow(), highlight, image.Pt(150, 170), raster.Nonconvex); err != nil {
		return err
	}

	center := ui2d.Pt(w-90, h/2)
	if err := r.FillCircle(center, 40, highlight); err != nil {
		return err
	}
	a := float64(frame) * math.Pi / 90
	r.DrawLine(center, ui2d.Pt(center.X+36*math.Cos(a), center.Y+36*math.Sin(a)), accent, 3)

	r.WriteText(ui2d.Pt(0, 12), "ui2d", ui2d.White, nil, text.Align{H: text.Center})
	r.WriteText(ui2d.Pt(-12, -8), fmt.Sprintf("frame %d", frame), accent, nil, text.Align{H: text.End, V: text.End})
	return nil
}
