// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/ui2d/drawlist"
	"github.com/gogpu/ui2d/text"
	"github.com/gogpu/ui2d/texture"
)

// DefaultSink is the name of the sink used when no sink option is given.
const DefaultSink = "software"

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := render.New(800, 600, render.WithSinkName("ebiten"))
type Option func(*options)

type options struct {
	sink        drawlist.Sink
	sinkName    string
	textures    *texture.Cache
	textureOpts []texture.Option
	face        *text.Face
}

func defaultOptions() options {
	return options{sinkName: DefaultSink}
}

// WithSink sets the sink frames are flushed to. It takes precedence over
// WithSinkName.
func WithSink(s drawlist.Sink) Option {
	return func(o *options) {
		o.sink = s
	}
}

// WithSinkName selects a registered sink by name.
func WithSinkName(name string) Option {
	return func(o *options) {
		o.sinkName = name
	}
}

// WithTextureCache shares an existing texture cache between renderers.
// Dispose on either renderer clears it for both.
func WithTextureCache(c *texture.Cache) Option {
	return func(o *options) {
		o.textures = c
	}
}

// WithExactPolygonKeys makes the renderer's own texture cache compare
// full polygon vertex lists. It has no effect with WithTextureCache.
func WithExactPolygonKeys() Option {
	return func(o *options) {
		o.textureOpts = append(o.textureOpts, texture.WithExactPolygonKeys())
	}
}

// WithDefaultFace sets the face used by WriteText calls without a face.
func WithDefaultFace(f *text.Face) Option {
	return func(o *options) {
		o.face = f
	}
}
