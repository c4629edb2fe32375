// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image"

// CircleSize returns the side length of the square bitmap that holds a
// circle of the given radius centered at (radius, radius).
func CircleSize(radius int) int {
	return 2*radius + 1
}

// DrawCircleOutline plots the midpoint circle of the given radius around
// center. Radius 0 plots the center pixel.
func DrawCircleOutline(bm *Bitmap, center image.Point, radius int) error {
	if radius < 0 {
		return ErrInvalidRadius
	}
	cx, cy := center.X, center.Y
	midpointCircle(radius, func(x, y int) {
		bm.Set(cx+x, cy+y)
		bm.Set(cx-x, cy+y)
		bm.Set(cx+x, cy-y)
		bm.Set(cx-x, cy-y)
		bm.Set(cx+y, cy+x)
		bm.Set(cx-y, cy+x)
		bm.Set(cx+y, cy-x)
		bm.Set(cx-y, cy-x)
	})
	return nil
}

// DrawCircleFilled fills the midpoint circle of the given radius around
// center. Each step fills the horizontal spans between the symmetric
// points of all eight octants, which covers the whole interior.
func DrawCircleFilled(bm *Bitmap, center image.Point, radius int) error {
	if radius < 0 {
		return ErrInvalidRadius
	}
	cx, cy := center.X, center.Y
	midpointCircle(radius, func(x, y int) {
		bm.HLine(cx-x, cx+x, cy+y)
		bm.HLine(cx-x, cx+x, cy-y)
		bm.HLine(cx-y, cx+y, cy+x)
		bm.HLine(cx-y, cx+y, cy-x)
	})
	return nil
}

// midpointCircle calls plot for every (x, y) of the first octant, from
// (0, radius) until x meets y.
func midpointCircle(radius int, plot func(x, y int)) {
	x, y := 0, radius
	d := 3 - 2*radius
	for x < y {
		plot(x, y)
		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
	if x == y {
		plot(x, y)
	}
}
