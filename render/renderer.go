// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/ui2d"
	"github.com/gogpu/ui2d/drawlist"
	_ "github.com/gogpu/ui2d/drawlist/sinks/software" // default sink
	"github.com/gogpu/ui2d/raster"
	"github.com/gogpu/ui2d/text"
	"github.com/gogpu/ui2d/texture"
)

// Renderer queues UI primitives for a fixed-size viewport and flushes them
// to a sink once per frame.
type Renderer struct {
	width, height int
	queue         *drawlist.Queue
	textures      *texture.Cache
	sink          drawlist.Sink
	face          *text.Face
}

// New creates a renderer for a width x height viewport.
func New(width, height int, opts ...Option) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sink := o.sink
	if sink == nil {
		var err error
		sink, err = drawlist.NewSink(o.sinkName)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
	}
	textures := o.textures
	if textures == nil {
		textures = texture.NewCache(o.textureOpts...)
	}
	face := o.face
	if face == nil {
		face = text.Default()
	}

	ui2d.Logger().Info("render: renderer created",
		"width", width,
		"height", height,
		"sink", fmt.Sprintf("%T", sink),
		"exactPolygonKeys", textures.ExactPolygonKeys())

	return &Renderer{
		width:    width,
		height:   height,
		queue:    drawlist.NewQueue(width, height),
		textures: textures,
		sink:     sink,
		face:     face,
	}, nil
}

// Viewport returns the viewport rectangle, anchored at the origin.
func (r *Renderer) Viewport() ui2d.Rect {
	return ui2d.R(0, 0, float64(r.width), float64(r.height))
}

// Queue returns the primitive queue of the current frame.
func (r *Renderer) Queue() *drawlist.Queue { return r.queue }

// Textures returns the texture cache.
func (r *Renderer) Textures() *texture.Cache { return r.textures }

// Sink returns the sink frames are flushed to.
func (r *Renderer) Sink() drawlist.Sink { return r.sink }

// Face returns the default text face.
func (r *Renderer) Face() *text.Face { return r.face }

// FillRectangle fills rect with c. A non-nil bm is used as an opacity mask
// stretched over the rectangle.
func (r *Renderer) FillRectangle(rect ui2d.Rect, bm *raster.Bitmap, c ui2d.Color) {
	r.queue.Enqueue(drawlist.NewSprite(drawlist.KindFillRect, bm, rect, c, 0))
}

// DrawRectangle outlines rect with a border stroke pixels wide, drawn
// inside the rectangle as four filled bands. The corners are covered by
// two bands, which shows when c is translucent.
func (r *Renderer) DrawRectangle(rect ui2d.Rect, c ui2d.Color, stroke float64) {
	bands := [4]ui2d.Rect{
		ui2d.R(rect.X, rect.Y, rect.W, stroke),               // top
		ui2d.R(rect.X, rect.Y+rect.H-stroke, rect.W, stroke), // bottom
		ui2d.R(rect.X, rect.Y, stroke, rect.H),               // left
		ui2d.R(rect.X+rect.W-stroke, rect.Y, stroke, rect.H), // right
	}
	for _, b := range bands {
		r.queue.Enqueue(drawlist.NewSprite(drawlist.KindStrokeRect, nil, b, c, 0))
	}
}

// DrawLine draws a stroke pixels wide band from p1 to p2. The band is a
// rectangle as long as the segment, rotated about p1; it extends to the
// right of the direction of travel.
func (r *Renderer) DrawLine(p1, p2 ui2d.Point, c ui2d.Color, stroke float64) {
	d := p2.Sub(p1)
	dst := ui2d.R(p1.X, p1.Y, math.Hypot(d.X, d.Y), stroke)
	r.queue.Enqueue(drawlist.NewSprite(drawlist.KindLine, nil, dst, c, lineAngle(d.X, d.Y)))
}

// lineAngle returns the direction of (dx, dy) in radians, in (-π, π].
func lineAngle(dx, dy float64) float64 {
	switch {
	case dx == 0 && dy == 0:
		return 0
	case dx == 0 && dy > 0:
		return math.Pi / 2
	case dx == 0:
		return -math.Pi / 2
	}
	a := math.Atan(dy / dx)
	if dx < 0 {
		if dy < 0 {
			a -= math.Pi
		} else {
			a += math.Pi
		}
	}
	return a
}

// DrawCircle draws a one-pixel circle outline around center.
func (r *Renderer) DrawCircle(center ui2d.Point, radius int, c ui2d.Color) error {
	return r.circle(center, radius, c, false)
}

// FillCircle draws a solid disc around center.
func (r *Renderer) FillCircle(center ui2d.Point, radius int, c ui2d.Color) error {
	return r.circle(center, radius, c, true)
}

func (r *Renderer) circle(center ui2d.Point, radius int, c ui2d.Color, filled bool) error {
	bm, err := r.textures.Circle(radius, filled)
	if err != nil {
		return err
	}
	rf := float64(radius)
	size := float64(raster.CircleSize(radius))
	dst := ui2d.R(center.X-rf, center.Y-rf, size, size)
	r.queue.Enqueue(drawlist.NewSprite(drawlist.KindCircle, bm, dst, c, 0))
	return nil
}

// FillPolygon fills the polygon with c, moved by offset. Shape selects the
// filler; a Convex hint on a non-convex polygon returns an error wrapping
// raster.ErrNotConvex and queues nothing.
func (r *Renderer) FillPolygon(points []image.Point, c ui2d.Color, offset image.Point, shape raster.Shape) error {
	bm, err := r.textures.Polygon(points, shape)
	if err != nil {
		return err
	}
	b := raster.PolygonBounds(points).Add(offset)
	dst := ui2d.R(float64(b.Min.X), float64(b.Min.Y), float64(bm.Width()), float64(bm.Height()))
	r.queue.Enqueue(drawlist.NewSprite(drawlist.KindPolygon, bm, dst, c, 0))
	return nil
}

// WriteText queues s aligned inside the whole viewport and then moved by
// pos. With text.TopLeft, pos is the text's top-left corner. A nil face
// selects the renderer's default face.
func (r *Renderer) WriteText(pos ui2d.Point, s string, c ui2d.Color, face *text.Face, align text.Align) {
	if face == nil {
		face = r.face
	}
	w, h := face.Measure(s)
	r.queue.Enqueue(drawlist.Text{
		Text:  s,
		Pos:   align.Resolve(pos, w, h, r.Viewport()),
		Color: c,
		Face:  face,
	})
}

// Flush composites the frame onto the sink, moving everything right by
// xShift pixels. With clearAfter the queue starts empty for the next
// frame; otherwise the same primitives are drawn again by the next Flush.
func (r *Renderer) Flush(clearAfter bool, xShift int) error {
	return r.queue.Flush(r.sink, clearAfter, xShift)
}

// Dispose clears the texture cache and the queue and releases sink
// resources. The renderer can be used again afterwards; bitmaps are
// regenerated on demand.
func (r *Renderer) Dispose() {
	r.textures.Dispose()
	r.queue.Clear()
	if d, ok := r.sink.(drawlist.Disposer); ok {
		if err := d.Dispose(); err != nil {
			ui2d.Logger().Warn("render: sink dispose failed", "err", err)
		}
	}
	ui2d.Logger().Info("render: renderer disposed")
}
