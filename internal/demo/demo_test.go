// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package demo

import (
	"image"
	"testing"

	"github.com/gogpu/ui2d/drawlist"
	"github.com/gogpu/ui2d/raster"
	"github.com/gogpu/ui2d/render"
	"github.com/gogpu/ui2d/texture"
)

func TestDrawFrame(t *testing.T) {
	r, err := render.New(400, 300, render.WithSink(drawlist.NewRecorder()))
	if err != nil {
		t.Fatal(err)
	}
	for frame := 0; frame < 3; frame++ {
		if err := DrawFrame(r, frame); err != nil {
			t.Fatalf("DrawFrame(%d) = %v", frame, err)
		}
		if err := r.Flush(true, 0); err != nil {
			t.Fatalf("Flush() = %v", err)
		}
	}
	// Two knob circles, two polygons and the dial.
	if got := r.Textures().Len(); got != 5 {
		t.Errorf("Textures().Len() = %d, want 5", got)
	}
	s := r.Textures().Stats()
	if s.Circles.Hits == 0 {
		t.Error("circle bitmaps were never reused")
	}
}

func TestShapes(t *testing.T) {
	if b := raster.PolygonBounds(hexagon(0, 0, 30)); b.Dx() != 60 {
		t.Errorf("hexagon width = %d, want 60", b.Dx())
	}
	if texture.Checksum(hexagon(0, 0, 30)) == texture.Checksum(arrow()) {
		t.Error("hexagon and arrow share a checksum")
	}
	convex := raster.NewBitmap(80, 80)
	if err := raster.FillConvex(convex, arrow(), image.Point{}); err != nil {
		t.Fatalf("FillConvex(arrow) = %v", err)
	}
	general := raster.NewBitmap(80, 80)
	if err := raster.FillGeneral(general, arrow(), image.Point{}); err != nil {
		t.Fatalf("FillGeneral(arrow) = %v", err)
	}
	if !convex.Equal(general) {
		t.Errorf("arrow fills differ:\n%s\nvs\n%s", convex, general)
	}
}
