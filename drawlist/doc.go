// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package drawlist queues UI draw primitives for one frame and composites
// them onto a Sink.
//
// Drawing calls append a [Primitive] to a [Queue]. [Queue.Flush] replays
// the queue onto a [Sink] in two groups: primitives with a color alpha
// below 255 are drawn first, in submission order, then fully opaque ones,
// again in submission order. An opaque sprite therefore always ends up on
// top of every translucent one queued in the same frame, whatever the
// submission order.
//
// # Sinks
//
// A Sink is the output surface: a CPU pixmap, a game engine image, or a
// recorder for tests. Sinks register by name in init(), following the
// database/sql driver pattern:
//
//	import _ "github.com/gogpu/ui2d/drawlist/sinks/software"
//
//	sink, err := drawlist.NewSink("software")
//
// The [Recorder] sink ships with this package and is always registered
// as "recorder".
//
// A Queue is not safe for concurrent use.
package drawlist
