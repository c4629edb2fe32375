// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"fmt"
	"image"

	"github.com/gogpu/ui2d"
)

// hLine is the inclusive pixel span of one scanline.
type hLine struct {
	xStart, xEnd int
}

// hLineList holds one span per scanline, starting at yStart.
type hLineList struct {
	yStart int
	lines  []hLine
}

// FillConvex fills a convex polygon into bm. Every vertex is translated
// by offset first.
//
// The polygon's top scanline is skipped unless the top is a flat edge,
// and its bottom scanline is never drawn. Spans run from the left edge up
// to, but not including, the right edge.
//
// A zero-height polygon draws nothing. If the vertex order turns out not
// to be convex the returned error wraps ErrNotConvex and bm is left
// unchanged.
func FillConvex(bm *Bitmap, points []image.Point, offset image.Point) error {
	if len(points) < 3 {
		return ErrTooFewPoints
	}
	list, err := convexSpans(points, offset)
	if err != nil {
		ui2d.Logger().Debug("raster: convex fill rejected", "points", len(points), "err", err)
		return err
	}
	for i, l := range list.lines {
		bm.HLine(l.xStart, l.xEnd, list.yStart+i)
	}
	return nil
}

// convexSpans computes the span list of a convex polygon without touching
// any bitmap.
func convexSpans(points []image.Point, off image.Point) (*hLineList, error) {
	n := len(points)
	minIdx, maxIdx := 0, 0
	minY, maxY := points[0].Y, points[0].Y
	for i := 1; i < n; i++ {
		if points[i].Y < minY {
			minIdx, minY = i, points[i].Y
		}
		if points[i].Y > maxY {
			maxIdx, maxY = i, points[i].Y
		}
	}
	if minY == maxY {
		return &hLineList{}, nil
	}

	next := func(i int) int { return (i + 1) % n }
	prev := func(i int) int { return (i - 1 + n) % n }

	// Find both ends of the run of vertices on the top scanline.
	minL, minR := minIdx, minIdx
	for points[next(minR)].Y == minY {
		minR = next(minR)
	}
	for points[prev(minL)].Y == minY {
		minL = prev(minL)
	}

	// leftDir is the direction through the vertex list that walks down
	// the left boundary.
	leftDir := -1
	flat := points[minL].X != points[minR].X
	if flat {
		if points[minL].X > points[minR].X {
			leftDir = 1
			minL, minR = minR, minL
		}
	} else {
		top := points[minL]
		pn, pp := points[next(minR)], points[prev(minL)]
		dxn, dyn := pn.X-top.X, pn.Y-top.Y
		dxp, dyp := pp.X-top.X, pp.Y-top.Y
		if dxn*dyp-dyn*dxp < 0 {
			leftDir = 1
			minL, minR = minR, minL
		}
	}

	topSkip := 1
	if flat {
		topSkip = 0
	}
	list := &hLineList{
		yStart: minY + off.Y + topSkip,
		lines:  make([]hLine, maxY-minY-topSkip),
	}

	if err := list.scanChain(points, off, minL, maxIdx, leftDir, 0, !flat, true); err != nil {
		return nil, err
	}
	// The right boundary is moved one pixel left so the span stops short
	// of it.
	if err := list.scanChain(points, off, minR, maxIdx, -leftDir, -1, !flat, false); err != nil {
		return nil, err
	}

	for i, l := range list.lines {
		if l.xEnd < l.xStart-1 {
			return nil, fmt.Errorf("%w: boundaries cross on scanline %d", ErrNotConvex, list.yStart+i)
		}
	}
	return list, nil
}

// scanChain walks the vertex list from start to end in direction dir,
// recording one X per scanline for every edge on the way.
func (l *hLineList) scanChain(points []image.Point, off image.Point, start, end, dir, shift int, skipFirst, left bool) error {
	n := len(points)
	written := 0
	for cur := start; cur != end; {
		nxt := (cur + dir + n) % n
		p0, p1 := points[cur], points[nxt]
		if p1.Y < p0.Y {
			return fmt.Errorf("%w: edge %d-%d runs upward", ErrNotConvex, cur, nxt)
		}
		e, ok := NewEdge(p0.X+off.X+shift, p0.Y+off.Y, p1.X+off.X+shift, p1.Y+off.Y)
		if ok {
			if skipFirst {
				e.Step()
			}
			for y, x := range e.Scanlines() {
				i := y - l.yStart
				if i < 0 || i >= len(l.lines) {
					return fmt.Errorf("%w: scanline %d outside polygon", ErrNotConvex, y)
				}
				if left {
					l.lines[i].xStart = x
				} else {
					l.lines[i].xEnd = x
				}
				written++
			}
		}
		skipFirst = false
		cur = nxt
	}
	if written != len(l.lines) {
		return fmt.Errorf("%w: boundary covers %d of %d scanlines", ErrNotConvex, written, len(l.lines))
	}
	return nil
}
