// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawlist

import (
	"github.com/gogpu/ui2d"
	"github.com/gogpu/ui2d/raster"
	"github.com/gogpu/ui2d/text"
)

// Kind identifies the drawing call that produced a primitive.
type Kind uint8

const (
	KindFillRect   Kind = iota // Filled rectangle
	KindStrokeRect             // One side of an outlined rectangle
	KindLine                   // Rotated line rectangle
	KindCircle                 // Circle bitmap
	KindPolygon                // Polygon bitmap
	KindText                   // Text string
)

var kindNames = [...]string{
	KindFillRect:   "FillRect",
	KindStrokeRect: "StrokeRect",
	KindLine:       "Line",
	KindCircle:     "Circle",
	KindPolygon:    "Polygon",
	KindText:       "Text",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Primitive is a queued draw operation. It is implemented by Sprite and
// Text.
type Primitive interface {
	// Kind returns the drawing call that produced the primitive.
	Kind() Kind
	// Opaque reports whether the primitive's color alpha is 255.
	Opaque() bool
}

// Sprite draws an opacity bitmap tinted with a color into a destination
// rectangle. A nil Bitmap fills the whole rectangle.
//
// The bitmap is scaled to Dst.W x Dst.H, rotated by Rotation radians
// (clockwise on screen) about the rectangle's top-left corner, and placed
// at (Dst.X, Dst.Y).
type Sprite struct {
	Bitmap   *raster.Bitmap
	Dst      ui2d.Rect
	Color    ui2d.Color
	Rotation float64

	kind Kind
}

// NewSprite creates a sprite primitive.
func NewSprite(kind Kind, bm *raster.Bitmap, dst ui2d.Rect, c ui2d.Color, rotation float64) Sprite {
	return Sprite{Bitmap: bm, Dst: dst, Color: c, Rotation: rotation, kind: kind}
}

// Kind implements Primitive.
func (s Sprite) Kind() Kind { return s.kind }

// Opaque implements Primitive.
func (s Sprite) Opaque() bool { return s.Color.Opaque() }

// Text draws a string with its top-left corner at Pos.
type Text struct {
	Text  string
	Pos   ui2d.Point
	Color ui2d.Color
	Face  *text.Face
}

// Kind implements Primitive.
func (Text) Kind() Kind { return KindText }

// Opaque implements Primitive.
func (t Text) Opaque() bool { return t.Color.Opaque() }
