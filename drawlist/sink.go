// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawlist

// Sink is the surface a Queue is flushed to.
//
// Flush calls Begin once, then DrawSprite and DrawText in compositing
// order, then End. Positions passed to the draw methods already include
// the flush's horizontal shift.
type Sink interface {
	// Begin prepares the sink for a frame of the given size.
	Begin(width, height int) error

	// DrawSprite composites one sprite.
	DrawSprite(s Sprite)

	// DrawText draws one string.
	DrawText(t Text)

	// End finishes the frame.
	End() error
}

// Disposer is implemented by sinks that hold resources beyond a frame.
type Disposer interface {
	Dispose() error
}
