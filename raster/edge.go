// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "iter"

// Edge steps one polygon edge down the scanlines it spans, producing
// exactly one X coordinate per scanline with integer arithmetic only.
//
// An edge from (x0, y0) to (x1, y1) with y0 < y1 covers scanlines
// y0 through y1-1. At scanline y the X coordinate is the smallest integer
// not less than the true intersection, so the pixel whose left boundary
// is X is the first one at or right of the edge. Consecutive edges of a
// chain therefore join without gaps or repeated scanlines.
type Edge struct {
	// X is the edge's X coordinate at scanline Y.
	X int
	// Y is the current scanline.
	Y int
	// Count is the number of scanlines left, including Y.
	Count int

	whole   int // whole-pixel X move per scanline
	dir     int // +1 or -1
	errTerm int
	errUp   int
	errDown int
}

// NewEdge creates an edge between two points, normalized to run top to
// bottom. It returns false for horizontal edges, which never cross a
// scanline.
func NewEdge(x0, y0, x1, y1 int) (Edge, bool) {
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	height := y1 - y0
	if height == 0 {
		return Edge{}, false
	}

	dx := x1 - x0
	e := Edge{
		X:       x0,
		Y:       y0,
		Count:   height,
		dir:     1,
		errDown: height,
	}
	if dx < 0 {
		e.dir = -1
		// Going right to left, start one short of a full step so that X
		// rounds toward the right as well.
		e.errTerm = -height + 1
	}

	width := dx
	if width < 0 {
		width = -width
	}
	if width < height {
		// At most one pixel of X movement per scanline.
		e.errUp = width
	} else {
		// A whole-pixel move plus an occasional extra pixel.
		e.whole = (width / height) * e.dir
		e.errUp = width % height
	}
	return e, true
}

// Done reports whether the edge has no scanlines left.
func (e *Edge) Done() bool {
	return e.Count <= 0
}

// Step advances the edge to the next scanline.
func (e *Edge) Step() {
	e.Count--
	e.Y++
	e.X += e.whole
	e.errTerm += e.errUp
	if e.errTerm > 0 {
		e.X += e.dir
		e.errTerm -= e.errDown
	}
}

// Scanlines returns an iterator over the (y, x) pairs of the edge.
// The receiver is not modified.
func (e Edge) Scanlines() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for ; !e.Done(); e.Step() {
			if !yield(e.Y, e.X) {
				return
			}
		}
	}
}
