// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"bytes"
	"fmt"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face is a font face at a fixed size.
//
// The drawing face is a golang.org/x/image font.Face, which is not safe
// for concurrent use; Measure on a shaped face is.
type Face struct {
	face   font.Face
	shaped *gtfont.Font // nil for bitmap faces
	size   float64
}

var defaultFace = &Face{face: basicfont.Face7x13, size: 13}

// shaperPool pools HarfbuzzShaper instances, which are not safe for
// concurrent use.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Default returns the built-in 7x13 bitmap face.
func Default() *Face {
	return defaultFace
}

// NewFace parses TrueType or OpenType data and returns a face of the given
// size in pixels.
func NewFace(data []byte, size float64) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	xf, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face: %w", err)
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	gt, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	return &Face{face: xf, shaped: gt.Font, size: size}, nil
}

// GoRegular returns the Go Regular font at the given size.
func GoRegular(size float64) (*Face, error) {
	return NewFace(goregular.TTF, size)
}

// Face returns the face used for drawing.
func (f *Face) Face() font.Face {
	return f.face
}

// Size returns the font size in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Shaped reports whether Measure uses HarfBuzz shaping.
func (f *Face) Shaped() bool {
	return f.shaped != nil
}

// Ascent returns the distance from the top of a line to its baseline.
func (f *Face) Ascent() int {
	return f.face.Metrics().Ascent.Ceil()
}

// LineHeight returns the recommended distance between two baselines.
func (f *Face) LineHeight() int {
	return f.face.Metrics().Height.Ceil()
}

// Measure returns the width and height of s drawn on one line.
// The height is always the line height.
func (f *Face) Measure(s string) (w, h float64) {
	h = float64(f.LineHeight())
	if s == "" {
		return 0, h
	}
	if f.shaped == nil {
		return fixedToFloat(font.MeasureString(f.face, s)), h
	}
	return fixedToFloat(f.shapedAdvance(s)), h
}

// shapedAdvance sums the HarfBuzz glyph advances of s.
func (f *Face) shapedAdvance(s string) fixed.Int26_6 {
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: BaseDirection(s),
		Face:      gtfont.NewFace(f.shaped),
		Size:      fixed.Int26_6(f.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	return adv
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
