// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texture

import (
	"image"
	"slices"

	"github.com/gogpu/ui2d"
	"github.com/gogpu/ui2d/internal/cache"
	"github.com/gogpu/ui2d/raster"
)

// polygonEntry is a cached polygon bitmap together with the vertices it
// was built from, for collision reporting.
type polygonEntry struct {
	bitmap *raster.Bitmap
	points []image.Point
}

// Cache stores procedural bitmaps keyed by shape.
//
// Cache is safe for concurrent use. Returned bitmaps are shared and must
// not be modified.
type Cache struct {
	circles  *cache.Cache[CircleKey, *raster.Bitmap]
	polygons *cache.Cache[polygonKey, polygonEntry]
	opts     options
}

// Stats reports the contents and lookup counters of a Cache.
type Stats struct {
	Circles  cache.Stats
	Polygons cache.Stats
}

// NewCache creates an empty cache.
func NewCache(opts ...Option) *Cache {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache{
		circles:  cache.New[CircleKey, *raster.Bitmap](),
		polygons: cache.New[polygonKey, polygonEntry](),
		opts:     o,
	}
}

// ExactPolygonKeys reports whether the cache compares full vertex lists.
func (c *Cache) ExactPolygonKeys() bool {
	return c.opts.exactPolygonKeys
}

// Circle returns the bitmap of a circle with the given radius. The bitmap
// is 2r+1 pixels square with the circle centered at (r, r). Filled
// selects a solid disc instead of a one-pixel outline.
func (c *Cache) Circle(radius int, filled bool) (*raster.Bitmap, error) {
	if radius < 0 {
		return nil, raster.ErrInvalidRadius
	}
	key := CircleKey{Radius: radius, Filled: filled}
	return c.circles.GetOrCreateErr(key, func() (*raster.Bitmap, error) {
		ui2d.Logger().Debug("texture: circle miss", "radius", radius, "filled", filled)
		n := raster.CircleSize(radius)
		bm := raster.NewBitmap(n, n)
		center := image.Pt(radius, radius)
		var err error
		if filled {
			err = raster.DrawCircleFilled(bm, center, radius)
		} else {
			err = raster.DrawCircleOutline(bm, center, radius)
		}
		if err != nil {
			return nil, err
		}
		return bm, nil
	})
}

// Polygon returns the bitmap of a filled polygon. The bitmap covers the
// polygon's bounding box (at least 1x1) and the polygon is translated so
// its minimum vertex lands on (0, 0). Shape selects the filler.
//
// Errors from the filler are returned and nothing is cached. With lossy
// keys the shape is not part of the key: a hit returns the stored bitmap
// whatever shape the first request used. Exact keys include the shape.
func (c *Cache) Polygon(points []image.Point, shape raster.Shape) (*raster.Bitmap, error) {
	if len(points) < 3 {
		return nil, raster.ErrTooFewPoints
	}
	key := polygonKey{sum: Checksum(points)}
	if c.opts.exactPolygonKeys {
		key.exact = exactKey(points)
		key.shape = shape
	}

	created := false
	entry, err := c.polygons.GetOrCreateErr(key, func() (polygonEntry, error) {
		created = true
		ui2d.Logger().Debug("texture: polygon miss", "checksum", int64(key.sum), "points", len(points), "shape", shape)
		b := raster.PolygonBounds(points)
		bm := raster.NewBitmap(max(b.Dx(), 1), max(b.Dy(), 1))
		if err := raster.Fill(bm, points, image.Pt(-b.Min.X, -b.Min.Y), shape); err != nil {
			return polygonEntry{}, err
		}
		return polygonEntry{bitmap: bm, points: slices.Clone(points)}, nil
	})
	if err != nil {
		return nil, err
	}
	if !created && !slices.Equal(entry.points, points) {
		ui2d.Logger().Debug("texture: polygon checksum collision", "checksum", int64(key.sum), "cached", entry.points, "requested", points)
	}
	return entry.bitmap, nil
}

// Len returns the total number of cached bitmaps.
func (c *Cache) Len() int {
	return c.circles.Len() + c.polygons.Len()
}

// Stats returns per-table statistics.
func (c *Cache) Stats() Stats {
	return Stats{
		Circles:  c.circles.Stats(),
		Polygons: c.polygons.Stats(),
	}
}

// Dispose drops every cached bitmap. The cache remains usable.
func (c *Cache) Dispose() {
	n := c.Len()
	c.circles.Clear()
	c.polygons.Clear()
	ui2d.Logger().Debug("texture: cache disposed", "bitmaps", n)
}
