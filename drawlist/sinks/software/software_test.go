// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"image"
	"math"
	"path/filepath"
	"testing"

	"github.com/gogpu/ui2d"
	"github.com/gogpu/ui2d/drawlist"
	"github.com/gogpu/ui2d/raster"
)

var _ drawlist.Sink = (*Sink)(nil)

func newFrame(t *testing.T, w, h int) *Sink {
	t.Helper()
	s := New()
	if err := s.Begin(w, h); err != nil {
		t.Fatalf("Begin() = %v", err)
	}
	return s
}

// pixel returns the straight-alpha color at (x, y).
func pixel(pm *ui2d.Pixmap, x, y int) ui2d.Color {
	return ui2d.FromColor(pm.At(x, y))
}

func TestSink_Registered(t *testing.T) {
	s, err := drawlist.NewSink("software")
	if err != nil {
		t.Fatalf(`NewSink("software") = %v`, err)
	}
	if _, ok := s.(*Sink); !ok {
		t.Errorf(`NewSink("software") = %T, want *software.Sink`, s)
	}
}

func TestSink_SolidRect(t *testing.T) {
	s := newFrame(t, 20, 20)
	s.DrawSprite(drawlist.NewSprite(drawlist.KindFillRect, nil, ui2d.R(2, 3, 10, 5), ui2d.Red, 0))
	pm := s.Pixmap()
	tests := []struct {
		x, y int
		want ui2d.Color
	}{
		{2, 3, ui2d.Red},
		{11, 7, ui2d.Red},
		{6, 5, ui2d.Red},
		{12, 5, ui2d.Transparent},
		{6, 8, ui2d.Transparent},
		{1, 3, ui2d.Transparent},
	}
	for _, tt := range tests {
		if got := pixel(pm, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSink_BitmapMask(t *testing.T) {
	bm := raster.NewBitmap(5, 5)
	if err := raster.DrawCircleOutline(bm, image.Pt(2, 2), 2); err != nil {
		t.Fatal(err)
	}
	s := newFrame(t, 10, 10)
	s.DrawSprite(drawlist.NewSprite(drawlist.KindCircle, bm, ui2d.R(3, 3, 5, 5), ui2d.Blue, 0))
	pm := s.Pixmap()
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := ui2d.Transparent
			if bm.IsSet(x, y) {
				want = ui2d.Blue
			}
			if got := pixel(pm, x+3, y+3); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x+3, y+3, got, want)
			}
		}
	}
}

func TestSink_BitmapScaled(t *testing.T) {
	bm := raster.NewBitmap(2, 1)
	bm.Set(0, 0)
	s := newFrame(t, 10, 10)
	s.DrawSprite(drawlist.NewSprite(drawlist.KindPolygon, bm, ui2d.R(0, 0, 8, 4), ui2d.Green, 0))
	pm := s.Pixmap()
	if pixel(pm, 1, 1) != ui2d.Green || pixel(pm, 3, 2) != ui2d.Green {
		t.Error("scaled set half not drawn")
	}
	if pixel(pm, 5, 1) != ui2d.Transparent || pixel(pm, 1, 5) != ui2d.Transparent {
		t.Error("scaled clear half drawn")
	}
}

func TestSink_Rotation(t *testing.T) {
	// A horizontal bar rotated a quarter turn hangs down from its origin.
	s := newFrame(t, 20, 20)
	s.DrawSprite(drawlist.NewSprite(drawlist.KindLine, nil, ui2d.R(10, 2, 12, 2), ui2d.White, math.Pi/2))
	pm := s.Pixmap()
	if got := pixel(pm, 9, 8); got != ui2d.White {
		t.Errorf("pixel below origin = %v, want white", got)
	}
	if got := pixel(pm, 15, 3); got != ui2d.Transparent {
		t.Errorf("pixel right of origin = %v, want transparent", got)
	}
}

func TestSink_Translucent(t *testing.T) {
	s := newFrame(t, 4, 4)
	s.Clear(ui2d.White)
	s.DrawSprite(drawlist.NewSprite(drawlist.KindFillRect, nil, ui2d.R(0, 0, 4, 4), ui2d.RGBA(255, 0, 0, 128), 0))
	got := pixel(s.Pixmap(), 1, 1)
	if got.R != 255 || got.A != 255 || got.G < 120 || got.G > 135 {
		t.Errorf("blended pixel = %v, want about (255, 127, 127, 255)", got)
	}
}

func TestSink_Text(t *testing.T) {
	s := newFrame(t, 40, 20)
	s.DrawText(drawlist.Text{Text: "HI", Pos: ui2d.Pt(2, 2), Color: ui2d.Black})
	pm := s.Pixmap()
	n := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if pixel(pm, x, y).A != 0 {
				if x < 2 || y < 2 || x >= 16 || y >= 15 {
					t.Fatalf("text pixel (%d, %d) outside its 14x13 box", x, y)
				}
				n++
			}
		}
	}
	if n == 0 {
		t.Error("DrawText() drew nothing")
	}
}

func TestSink_BeginKeepsContent(t *testing.T) {
	s := newFrame(t, 4, 4)
	s.Clear(ui2d.Green)
	first := s.Pixmap()
	if err := s.Begin(4, 4); err != nil {
		t.Fatal(err)
	}
	if s.Pixmap() != first || pixel(first, 0, 0) != ui2d.Green {
		t.Error("Begin() with the same size replaced or cleared the pixmap")
	}
	if err := s.Begin(8, 2); err != nil {
		t.Fatal(err)
	}
	if s.Pixmap().Width() != 8 || s.Pixmap().Height() != 2 {
		t.Error("Begin() with a new size kept the old pixmap")
	}
}

func TestSink_FlushWithShift(t *testing.T) {
	q := drawlist.NewQueue(16, 8)
	q.Enqueue(drawlist.NewSprite(drawlist.KindFillRect, nil, ui2d.R(0, 0, 2, 2), ui2d.Red, 0))
	pm := ui2d.NewPixmap(16, 8)
	s := NewWithPixmap(pm)
	if err := q.Flush(s, true, 5); err != nil {
		t.Fatalf("Flush() = %v", err)
	}
	if pixel(pm, 5, 0) != ui2d.Red || pixel(pm, 0, 0) != ui2d.Transparent {
		t.Error("xShift not applied to the sprite")
	}
	if err := s.SavePNG(filepath.Join(t.TempDir(), "frame.png")); err != nil {
		t.Errorf("SavePNG() = %v", err)
	}
	if err := New().SavePNG(filepath.Join(t.TempDir(), "none.png")); err == nil {
		t.Error("SavePNG() before Begin = nil error")
	}
}
