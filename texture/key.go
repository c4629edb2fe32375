// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texture

import (
	"image"
	"strconv"
	"strings"

	"github.com/gogpu/ui2d/raster"
)

// CircleKey identifies a cached circle bitmap. The center is not part of
// the key: circle bitmaps are always centered in their own square.
type CircleKey struct {
	Radius int
	Filled bool
}

// PolygonKey is the lossy checksum of a polygon's vertex list.
type PolygonKey int64

// Checksum returns the alternating sum of x+y over the ordered vertices:
// even-indexed vertices add, odd-indexed vertices subtract.
func Checksum(points []image.Point) PolygonKey {
	var sum int64
	for i, p := range points {
		v := int64(p.X) + int64(p.Y)
		if i%2 == 0 {
			sum += v
		} else {
			sum -= v
		}
	}
	return PolygonKey(sum)
}

// polygonKey is the map key of the polygon table. exact and shape are
// zero unless exact keys are enabled.
type polygonKey struct {
	sum   PolygonKey
	exact string
	shape raster.Shape
}

// exactKey encodes the vertex list as "x,y;x,y;...".
func exactKey(points []image.Point) string {
	var b strings.Builder
	b.Grow(len(points) * 8)
	for i, p := range points {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(p.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Y))
	}
	return b.String()
}
