// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
)

// On is the value of a fully covered bitmap pixel.
const On uint16 = 0xFFFF

// Bitmap is a single-channel 16-bit opacity mask.
// A pixel is either On or 0. Bitmap implements image.Image with the
// color.Alpha16 model so it can be used directly as a draw mask.
//
// Bitmaps returned by a cache are shared; callers must not modify them.
type Bitmap struct {
	// Pix holds the pixels in row-major order, Stride values per row.
	Pix    []uint16
	Stride int

	width, height int
}

// NewBitmap creates a cleared bitmap. Negative sizes are treated as zero.
func NewBitmap(width, height int) *Bitmap {
	width = max(width, 0)
	height = max(height, 0)
	return &Bitmap{
		Pix:    make([]uint16, width*height),
		Stride: width,
		width:  width,
		height: height,
	}
}

// Width returns the width of the bitmap.
func (b *Bitmap) Width() int { return b.width }

// Height returns the height of the bitmap.
func (b *Bitmap) Height() int { return b.height }

// Set turns the pixel at (x, y) on. Out-of-bounds coordinates are ignored.
func (b *Bitmap) Set(x, y int) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.Pix[y*b.Stride+x] = On
}

// IsSet reports whether the pixel at (x, y) is on.
func (b *Bitmap) IsSet(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.Pix[y*b.Stride+x] != 0
}

// HLine turns on pixels x0 through x1 inclusive on row y, clipped to the
// bitmap. Nothing is drawn when x1 < x0.
func (b *Bitmap) HLine(x0, x1, y int) {
	if y < 0 || y >= b.height || x1 < x0 {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, b.width-1)
	row := b.Pix[y*b.Stride : y*b.Stride+b.width]
	for x := x0; x <= x1; x++ {
		row[x] = On
	}
}

// Count returns the number of pixels that are on.
func (b *Bitmap) Count() int {
	n := 0
	for _, v := range b.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clear turns every pixel off.
func (b *Bitmap) Clear() {
	clear(b.Pix)
}

// Equal reports whether two bitmaps have the same size and pixels.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Pix[y*b.Stride+x] != o.Pix[y*o.Stride+x] {
				return false
			}
		}
	}
	return true
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.Alpha16{}
	}
	return color.Alpha16{A: b.Pix[y*b.Stride+x]}
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.Alpha16Model
}

// String renders the bitmap as rows of '#' and '.', for test failures.
func (b *Bitmap) String() string {
	buf := make([]byte, 0, (b.width+1)*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Pix[y*b.Stride+x] != 0 {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
