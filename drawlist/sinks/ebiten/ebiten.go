// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ebitensink provides a drawlist sink that draws onto an
// Ebitengine image, typically the screen passed to Game.Draw.
//
// Importing the package registers the sink as "ebiten":
//
//	import _ "github.com/gogpu/ui2d/drawlist/sinks/ebiten"
//
// The sink must be given a target with SetTarget before each flush. Like
// every Ebitengine drawing call, flushing must happen inside the game
// loop.
package ebitensink

import (
	"errors"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	ebitentext "github.com/hajimehoshi/ebiten/v2/text"

	"github.com/gogpu/ui2d"
	"github.com/gogpu/ui2d/drawlist"
	"github.com/gogpu/ui2d/raster"
	"github.com/gogpu/ui2d/text"
)

// ErrNoTarget is returned by Begin when no target image is set.
var ErrNoTarget = errors.New("ebitensink: no target image")

func init() {
	drawlist.Register("ebiten", func() drawlist.Sink {
		return New()
	})
}

// Sink draws sprites as tinted white images. Each bitmap is uploaded to
// the GPU once and reused for as long as the sink lives.
type Sink struct {
	target  *ebiten.Image
	white   *ebiten.Image
	uploads map[*raster.Bitmap]*ebiten.Image
}

// New creates a sink without a target.
func New() *Sink {
	return &Sink{uploads: make(map[*raster.Bitmap]*ebiten.Image)}
}

// SetTarget sets the image that the next frames are drawn on.
func (s *Sink) SetTarget(img *ebiten.Image) {
	s.target = img
}

// Target returns the current target image.
func (s *Sink) Target() *ebiten.Image {
	return s.target
}

// Begin implements drawlist.Sink. The target is not cleared.
func (s *Sink) Begin(width, height int) error {
	if s.target == nil {
		return ErrNoTarget
	}
	if b := s.target.Bounds(); b.Dx() != width || b.Dy() != height {
		ui2d.Logger().Debug("ebitensink: target size differs from viewport",
			"target", b.Size(), "width", width, "height", height)
	}
	return nil
}

// End implements drawlist.Sink.
func (s *Sink) End() error {
	return nil
}

// DrawSprite implements drawlist.Sink.
func (s *Sink) DrawSprite(sp drawlist.Sprite) {
	if s.target == nil || sp.Dst.W <= 0 || sp.Dst.H <= 0 {
		return
	}
	img := s.image(sp.Bitmap)
	if img == nil {
		return
	}
	b := img.Bounds()

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(sp.Dst.W/float64(b.Dx()), sp.Dst.H/float64(b.Dy()))
	opts.GeoM.Rotate(sp.Rotation)
	opts.GeoM.Translate(sp.Dst.X, sp.Dst.Y)
	opts.ColorScale.ScaleWithColor(sp.Color)
	s.target.DrawImage(img, opts)
}

// DrawText implements drawlist.Sink.
func (s *Sink) DrawText(t drawlist.Text) {
	if s.target == nil || t.Text == "" {
		return
	}
	face := t.Face
	if face == nil {
		face = text.Default()
	}
	x := int(math.Round(t.Pos.X))
	y := int(math.Round(t.Pos.Y)) + face.Ascent()
	ebitentext.Draw(s.target, t.Text, face.Face(), x, y, t.Color)
}

// image returns the uploaded image of bm, or the 1x1 white image for nil.
func (s *Sink) image(bm *raster.Bitmap) *ebiten.Image {
	if bm == nil {
		if s.white == nil {
			s.white = ebiten.NewImage(1, 1)
			s.white.Fill(ui2d.White)
		}
		return s.white
	}
	if img, ok := s.uploads[bm]; ok {
		return img
	}
	if bm.Width() == 0 || bm.Height() == 0 {
		return nil
	}

	// White, premultiplied: on pixels are 0xFF in every channel.
	pix := make([]byte, 4*bm.Width()*bm.Height())
	for y := 0; y < bm.Height(); y++ {
		for x := 0; x < bm.Width(); x++ {
			if bm.IsSet(x, y) {
				i := 4 * (y*bm.Width() + x)
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 0xFF, 0xFF, 0xFF, 0xFF
			}
		}
	}
	img := ebiten.NewImage(bm.Width(), bm.Height())
	img.WritePixels(pix)
	s.uploads[bm] = img
	return img
}

// Uploaded returns the number of bitmaps currently held as images.
func (s *Sink) Uploaded() int {
	return len(s.uploads)
}

// Dispose deallocates every uploaded image. The sink can still be used
// and re-uploads bitmaps on demand.
func (s *Sink) Dispose() error {
	for bm, img := range s.uploads {
		img.Deallocate()
		delete(s.uploads, bm)
	}
	if s.white != nil {
		s.white.Deallocate()
		s.white = nil
	}
	return nil
}
