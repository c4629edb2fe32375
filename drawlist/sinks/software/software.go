// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package software provides a CPU drawlist sink that composites onto a
// ui2d.Pixmap.
//
// Importing the package registers the sink as "software":
//
//	import _ "github.com/gogpu/ui2d/drawlist/sinks/software"
package software

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ui2d"
	"github.com/gogpu/ui2d/drawlist"
	"github.com/gogpu/ui2d/text"
)

func init() {
	drawlist.Register("software", func() drawlist.Sink {
		return New()
	})
}

// solidRect is the source rectangle of sprites without a bitmap.
var solidRect = image.Rect(0, 0, 1, 1)

// Sink draws sprites and text onto a pixmap using nearest-neighbor
// sampling, so bitmap edges stay hard at any scale.
type Sink struct {
	pm *ui2d.Pixmap
}

// New creates a sink. The pixmap is allocated by the first Begin.
func New() *Sink {
	return &Sink{}
}

// NewWithPixmap creates a sink drawing onto pm. A Begin with a different
// size replaces pm with a new pixmap.
func NewWithPixmap(pm *ui2d.Pixmap) *Sink {
	return &Sink{pm: pm}
}

// Begin implements drawlist.Sink. The pixmap is reallocated when the size
// changes and kept otherwise; it is never cleared.
func (s *Sink) Begin(width, height int) error {
	if s.pm == nil || s.pm.Width() != width || s.pm.Height() != height {
		s.pm = ui2d.NewPixmap(width, height)
	}
	return nil
}

// End implements drawlist.Sink.
func (s *Sink) End() error {
	return nil
}

// Clear fills the pixmap with c.
func (s *Sink) Clear(c ui2d.Color) {
	if s.pm != nil {
		s.pm.Clear(c)
	}
}

// Pixmap returns the target pixmap, nil before the first Begin.
func (s *Sink) Pixmap() *ui2d.Pixmap {
	return s.pm
}

// SavePNG writes the pixmap to a PNG file.
func (s *Sink) SavePNG(path string) error {
	if s.pm == nil {
		return errNoFrame
	}
	return s.pm.SavePNG(path)
}

// DrawSprite implements drawlist.Sink.
func (s *Sink) DrawSprite(sp drawlist.Sprite) {
	if s.pm == nil || sp.Dst.W <= 0 || sp.Dst.H <= 0 {
		return
	}

	sr := solidRect
	opts := &draw.Options{}
	if sp.Bitmap != nil {
		sr = sp.Bitmap.Bounds()
		if sr.Empty() {
			return
		}
		opts.SrcMask = sp.Bitmap
	}

	draw.NearestNeighbor.Transform(s.pm.RGBAImage(), spriteTransform(sp, sr), image.NewUniform(sp.Color), sr, draw.Over, opts)
}

// spriteTransform maps source pixels to the pixmap: scale to the
// destination size, rotate about the top-left corner, then translate.
func spriteTransform(sp drawlist.Sprite, sr image.Rectangle) f64.Aff3 {
	sx := sp.Dst.W / float64(sr.Dx())
	sy := sp.Dst.H / float64(sr.Dy())
	sin, cos := math.Sincos(sp.Rotation)
	return f64.Aff3{
		sx * cos, -sy * sin, sp.Dst.X,
		sx * sin, sy * cos, sp.Dst.Y,
	}
}

// DrawText implements drawlist.Sink. The text's top-left corner is at
// t.Pos; the baseline is one ascent below it.
func (s *Sink) DrawText(t drawlist.Text) {
	if s.pm == nil || t.Text == "" {
		return
	}
	face := t.Face
	if face == nil {
		face = text.Default()
	}
	d := font.Drawer{
		Dst:  s.pm.RGBAImage(),
		Src:  image.NewUniform(t.Color),
		Face: face.Face(),
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(t.Pos.X * 64)),
			Y: fixed.Int26_6(math.Round(t.Pos.Y*64)) + fixed.I(face.Ascent()),
		},
	}
	d.DrawString(t.Text)
}
