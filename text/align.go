// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import "github.com/gogpu/ui2d"

// Anchor is a placement along one axis.
type Anchor uint8

const (
	// Start places text at the left or top edge.
	Start Anchor = iota
	// Center centers text.
	Center
	// End places text at the right or bottom edge.
	End
)

// String returns the string representation of an Anchor.
func (a Anchor) String() string {
	switch a {
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	default:
		return "Unknown"
	}
}

// offset returns where a run of length size starts inside extent.
func (a Anchor) offset(size, extent float64) float64 {
	switch a {
	case Center:
		return (extent - size) / 2
	case End:
		return extent - size
	default:
		return 0
	}
}

// Align is a horizontal and vertical anchor pair.
type Align struct {
	H, V Anchor
}

// TopLeft is the zero Align: text is placed at pos.
var TopLeft = Align{}

// Resolve returns the top-left corner of a w x h text box anchored inside
// viewport, moved by pos. With TopLeft the result is viewport's corner
// plus pos.
func (a Align) Resolve(pos ui2d.Point, w, h float64, viewport ui2d.Rect) ui2d.Point {
	return ui2d.Point{
		X: viewport.X + a.H.offset(w, viewport.W) + pos.X,
		Y: viewport.Y + a.V.offset(h, viewport.H) + pos.Y,
	}
}
