// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"cmp"
	"image"
	"slices"
)

// FillGeneral fills any simple polygon into bm using a global edge table
// and an active edge table. Every vertex is translated by offset first.
//
// Each scanline is filled even-odd: between the 1st and 2nd active edge,
// the 3rd and 4th, and so on. The pixel rule matches FillConvex, so both
// produce the same pixels for a convex polygon. Self-intersecting
// polygons are filled even-odd without further treatment.
func FillGeneral(bm *Bitmap, points []image.Point, offset image.Point) error {
	if len(points) < 3 {
		return ErrTooFewPoints
	}
	get := buildGET(points, offset)
	if len(get) == 0 {
		return nil
	}

	aet := make([]Edge, 0, len(get))
	for y := get[0].Y; len(get) > 0 || len(aet) > 0; y++ {
		for len(get) > 0 && get[0].Y == y {
			aet = insertByX(aet, get[0])
			get = get[1:]
		}
		for i := 0; i+1 < len(aet); i += 2 {
			bm.HLine(aet[i].X, aet[i+1].X-1, y)
		}
		aet = advanceAET(aet)
		slices.SortStableFunc(aet, compareX)
	}
	return nil
}

// buildGET creates one edge per non-horizontal polygon side, sorted by
// start scanline and then by X.
func buildGET(points []image.Point, off image.Point) []Edge {
	get := make([]Edge, 0, len(points))
	for i, p := range points {
		q := points[(i+len(points)-1)%len(points)]
		if e, ok := NewEdge(p.X+off.X, p.Y+off.Y, q.X+off.X, q.Y+off.Y); ok {
			get = append(get, e)
		}
	}
	slices.SortStableFunc(get, func(a, b Edge) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return compareX(a, b)
	})
	return get
}

// insertByX inserts e after every active edge whose X is not greater.
func insertByX(aet []Edge, e Edge) []Edge {
	i := 0
	for i < len(aet) && aet[i].X <= e.X {
		i++
	}
	return slices.Insert(aet, i, e)
}

// advanceAET steps every active edge one scanline and drops the edges
// that are used up.
func advanceAET(aet []Edge) []Edge {
	kept := aet[:0]
	for _, e := range aet {
		e.Step()
		if !e.Done() {
			kept = append(kept, e)
		}
	}
	return kept
}

func compareX(a, b Edge) int {
	return cmp.Compare(a.X, b.X)
}
