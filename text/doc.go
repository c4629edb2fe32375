// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package text provides the font faces, measurement and alignment used to
// place UI labels.
//
// Two kinds of [Face] exist:
//
//   - [Default] returns the built-in 7x13 bitmap face from
//     golang.org/x/image/font/basicfont. It needs no font data.
//   - [NewFace] and [GoRegular] parse TrueType/OpenType data with
//     golang.org/x/image/font/opentype for drawing, and keep a
//     go-text/typesetting font alongside it so that [Face.Measure] can
//     use HarfBuzz shaping (kerning, ligatures, right-to-left runs).
//
// [Align] anchors a measured string to a viewport:
//
//	w, h := face.Measure("Score: 10")
//	pos := text.Align{H: text.Center, V: text.Start}.Resolve(ui2d.Pt(0, 8), w, h, viewport)
package text
