// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawlist

import (
	"fmt"

	"github.com/gogpu/ui2d"
)

// Queue collects the primitives of one frame.
type Queue struct {
	width, height int
	prims         []Primitive
	opaque        []Primitive // scratch for Flush
}

// NewQueue creates an empty queue for a viewport of the given size.
func NewQueue(width, height int) *Queue {
	return &Queue{width: width, height: height}
}

// Width returns the viewport width passed to Sink.Begin.
func (q *Queue) Width() int { return q.width }

// Height returns the viewport height passed to Sink.Begin.
func (q *Queue) Height() int { return q.height }

// Enqueue appends p. The queue grows without limit.
func (q *Queue) Enqueue(p Primitive) {
	q.prims = append(q.prims, p)
}

// Len returns the number of queued primitives.
func (q *Queue) Len() int {
	return len(q.prims)
}

// Primitives returns the queued primitives in submission order.
// The slice is owned by the queue and valid until the next Enqueue or
// Clear.
func (q *Queue) Primitives() []Primitive {
	return q.prims
}

// Clear removes all primitives, keeping the allocated capacity.
func (q *Queue) Clear() {
	clear(q.prims)
	q.prims = q.prims[:0]
	clear(q.opaque)
	q.opaque = q.opaque[:0]
}

// Flush draws the queue onto sink: translucent primitives first, then
// opaque ones, each group in submission order. Every primitive is moved
// right by xShift pixels; the queued values are not modified.
//
// If clearAfter is true the queue is emptied, even when the sink reports
// an error. Otherwise the same primitives are drawn again by the next
// Flush.
func (q *Queue) Flush(sink Sink, clearAfter bool, xShift int) error {
	if clearAfter {
		defer q.Clear()
	}
	if err := sink.Begin(q.width, q.height); err != nil {
		return fmt.Errorf("drawlist: begin frame: %w", err)
	}

	dx := float64(xShift)
	q.opaque = q.opaque[:0]
	for _, p := range q.prims {
		if p.Opaque() {
			q.opaque = append(q.opaque, p)
			continue
		}
		draw(sink, p, dx)
	}
	for _, p := range q.opaque {
		draw(sink, p, dx)
	}

	ui2d.Logger().Debug("drawlist: flush",
		"primitives", len(q.prims),
		"opaque", len(q.opaque),
		"xShift", xShift)

	if err := sink.End(); err != nil {
		return fmt.Errorf("drawlist: end frame: %w", err)
	}
	return nil
}

// draw sends one primitive to sink, shifted horizontally by dx.
func draw(sink Sink, p Primitive, dx float64) {
	switch p := p.(type) {
	case Sprite:
		p.Dst.X += dx
		sink.DrawSprite(p)
	case Text:
		p.Pos.X += dx
		sink.DrawText(p)
	default:
		ui2d.Logger().Warn("drawlist: unsupported primitive", "kind", p.Kind())
	}
}
