// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/ui2d"
	"github.com/gogpu/ui2d/drawlist"
	"github.com/gogpu/ui2d/drawlist/sinks/software"
	"github.com/gogpu/ui2d/raster"
	"github.com/gogpu/ui2d/text"
	"github.com/gogpu/ui2d/texture"
)

// pixel returns the straight-alpha color at (x, y).
func pixel(pm *ui2d.Pixmap, x, y int) ui2d.Color {
	return ui2d.FromColor(pm.At(x, y))
}

// disposingSink records Dispose calls.
type disposingSink struct {
	drawlist.Recorder
	disposed int
	err      error
}

func (s *disposingSink) Dispose() error {
	s.disposed++
	return s.err
}

func newRecording(t *testing.T, w, h int, opts ...Option) (*Renderer, *drawlist.Recorder) {
	t.Helper()
	rec := drawlist.NewRecorder()
	r, err := New(w, h, append([]Option{WithSink(rec)}, opts...)...)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return r, rec
}

func sprites(t *testing.T, r *Renderer) []drawlist.Sprite {
	t.Helper()
	var out []drawlist.Sprite
	for _, p := range r.Queue().Primitives() {
		s, ok := p.(drawlist.Sprite)
		if !ok {
			t.Fatalf("queued %T, want drawlist.Sprite", p)
		}
		out = append(out, s)
	}
	return out
}

func TestNew_InvalidViewport(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := New(size[0], size[1]); !errors.Is(err, ErrInvalidViewport) {
			t.Errorf("New(%d, %d) = %v, want ErrInvalidViewport", size[0], size[1], err)
		}
	}
}

func TestNew_Sinks(t *testing.T) {
	r, err := New(10, 10)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if _, ok := r.Sink().(*software.Sink); !ok {
		t.Errorf("default Sink() = %T, want *software.Sink", r.Sink())
	}

	if _, err := New(10, 10, WithSinkName("missing")); err == nil || !strings.Contains(err.Error(), "forgotten import") {
		t.Errorf("New(missing sink) = %v, want registry error", err)
	}

	r, err = New(10, 10, WithSinkName("recorder"))
	if err != nil {
		t.Fatalf("New(recorder) = %v", err)
	}
	if _, ok := r.Sink().(*drawlist.Recorder); !ok {
		t.Errorf("Sink() = %T, want *drawlist.Recorder", r.Sink())
	}
	if r.Viewport() != ui2d.R(0, 0, 10, 10) {
		t.Errorf("Viewport() = %v", r.Viewport())
	}
}

func TestNew_LogsCreation(t *testing.T) {
	var buf bytes.Buffer
	ui2d.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { ui2d.SetLogger(nil) })

	r, _ := newRecording(t, 32, 16)
	r.Dispose()
	out := buf.String()
	if !strings.Contains(out, "renderer created") || !strings.Contains(out, "width=32") {
		t.Errorf("creation not logged:\n%s", out)
	}
	if !strings.Contains(out, "renderer disposed") {
		t.Errorf("disposal not logged:\n%s", out)
	}
}

func TestRenderer_FillRectangle(t *testing.T) {
	r, _ := newRecording(t, 100, 100)
	bm := raster.NewBitmap(3, 3)
	r.FillRectangle(ui2d.R(1, 2, 30, 40), bm, ui2d.Red)
	got := sprites(t, r)
	if len(got) != 1 {
		t.Fatalf("queued %d primitives, want 1", len(got))
	}
	s := got[0]
	if s.Kind() != drawlist.KindFillRect || s.Bitmap != bm || s.Dst != ui2d.R(1, 2, 30, 40) || s.Color != ui2d.Red {
		t.Errorf("FillRectangle queued %+v", s)
	}
}

func TestRenderer_DrawRectangle(t *testing.T) {
	r, _ := newRecording(t, 100, 100)
	r.DrawRectangle(ui2d.R(10, 20, 50, 30), ui2d.Blue, 2)
	want := []ui2d.Rect{
		ui2d.R(10, 20, 50, 2),
		ui2d.R(10, 48, 50, 2),
		ui2d.R(10, 20, 2, 30),
		ui2d.R(58, 20, 2, 30),
	}
	got := sprites(t, r)
	if len(got) != len(want) {
		t.Fatalf("queued %d bands, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s.Kind() != drawlist.KindStrokeRect || s.Dst != want[i] || s.Bitmap != nil {
			t.Errorf("band %d = %v (%v), want %v", i, s.Dst, s.Kind(), want[i])
		}
	}
}

func TestRenderer_DrawRectanglePixels(t *testing.T) {
	r, err := New(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	r.DrawRectangle(ui2d.R(2, 2, 10, 8), ui2d.White, 2)
	if err := r.Flush(true, 0); err != nil {
		t.Fatalf("Flush() = %v", err)
	}
	pm := r.Sink().(*software.Sink).Pixmap()
	tests := []struct {
		x, y int
		want ui2d.Color
	}{
		{2, 2, ui2d.White},
		{11, 9, ui2d.White},
		{3, 6, ui2d.White},
		{6, 5, ui2d.Transparent},
		{12, 5, ui2d.Transparent},
	}
	for _, tt := range tests {
		if got := pixel(pm, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestLineAngle(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   float64
	}{
		{1, 0, 0},
		{0, 1, math.Pi / 2},
		{-1, 0, math.Pi},
		{0, -1, -math.Pi / 2},
		{1, 1, math.Pi / 4},
		{-1, 1, 3 * math.Pi / 4},
		{-1, -1, -3 * math.Pi / 4},
		{1, -1, -math.Pi / 4},
		{0, 0, 0},
	}
	for _, tt := range tests {
		got := lineAngle(tt.dx, tt.dy)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("lineAngle(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
		if tt.dx != 0 || tt.dy != 0 {
			if want := math.Atan2(tt.dy, tt.dx); math.Abs(got-want) > 1e-12 {
				t.Errorf("lineAngle(%v, %v) = %v, disagrees with Atan2 %v", tt.dx, tt.dy, got, want)
			}
		}
	}
}

func TestRenderer_DrawLine(t *testing.T) {
	r, _ := newRecording(t, 100, 100)
	r.DrawLine(ui2d.Pt(10, 10), ui2d.Pt(13, 14), ui2d.Green, 3)
	s := sprites(t, r)[0]
	if s.Kind() != drawlist.KindLine || s.Dst != ui2d.R(10, 10, 5, 3) {
		t.Errorf("DrawLine queued %v %v, want Line at (10, 10, 5, 3)", s.Kind(), s.Dst)
	}
	if want := math.Atan2(4, 3); math.Abs(s.Rotation-want) > 1e-12 {
		t.Errorf("Rotation = %v, want %v", s.Rotation, want)
	}
}

func TestRenderer_Circles(t *testing.T) {
	r, _ := newRecording(t, 100, 100)
	if err := r.FillCircle(ui2d.Pt(50, 40), 5, ui2d.Red); err != nil {
		t.Fatalf("FillCircle() = %v", err)
	}
	if err := r.FillCircle(ui2d.Pt(10, 10), 5, ui2d.Blue); err != nil {
		t.Fatalf("FillCircle() = %v", err)
	}
	if err := r.DrawCircle(ui2d.Pt(10, 10), 5, ui2d.Blue); err != nil {
		t.Fatalf("DrawCircle() = %v", err)
	}
	got := sprites(t, r)
	if got[0].Dst != ui2d.R(45, 35, 11, 11) {
		t.Errorf("circle Dst = %v, want (45, 35, 11, 11)", got[0].Dst)
	}
	if got[0].Bitmap != got[1].Bitmap {
		t.Error("equal filled circles use different bitmaps")
	}
	if got[2].Bitmap == got[1].Bitmap {
		t.Error("outline circle reused the filled bitmap")
	}
	if r.Textures().Len() != 2 {
		t.Errorf("Textures().Len() = %d, want 2", r.Textures().Len())
	}
	if err := r.DrawCircle(ui2d.Pt(0, 0), -1, ui2d.Red); !errors.Is(err, raster.ErrInvalidRadius) {
		t.Errorf("DrawCircle(-1) = %v, want ErrInvalidRadius", err)
	}
}

func TestRenderer_FillPolygon(t *testing.T) {
	r, _ := newRecording(t, 100, 100)
	tri := []image.Point{{20, 10}, {30, 30}, {10, 30}}
	if err := r.FillPolygon(tri, ui2d.White, image.Pt(5, -5), raster.Convex); err != nil {
		t.Fatalf("FillPolygon() = %v", err)
	}
	s := sprites(t, r)[0]
	if s.Kind() != drawlist.KindPolygon || s.Dst != ui2d.R(15, 5, 20, 20) {
		t.Errorf("FillPolygon queued %v at %v, want Polygon at (15, 5, 20, 20)", s.Kind(), s.Dst)
	}

	u := []image.Point{{0, 0}, {3, 0}, {3, 6}, {6, 6}, {6, 0}, {9, 0}, {9, 9}, {0, 9}}
	if err := r.FillPolygon(u, ui2d.White, image.Point{}, raster.Convex); !errors.Is(err, raster.ErrNotConvex) {
		t.Errorf("FillPolygon(U, Convex) = %v, want ErrNotConvex", err)
	}
	if r.Queue().Len() != 1 {
		t.Errorf("failed FillPolygon queued a primitive")
	}
	if err := r.FillPolygon(u, ui2d.White, image.Point{}, raster.Nonconvex); err != nil {
		t.Errorf("FillPolygon(U, Nonconvex) = %v", err)
	}
}

func TestRenderer_WriteText(t *testing.T) {
	r, _ := newRecording(t, 100, 50)
	r.WriteText(ui2d.Pt(0, 0), "abc", ui2d.Black, nil, text.Align{H: text.Center, V: text.Center})
	r.WriteText(ui2d.Pt(3, 4), "abc", ui2d.Black, text.Default(), text.TopLeft)
	prims := r.Queue().Primitives()
	centered := prims[0].(drawlist.Text)
	if centered.Pos != ui2d.Pt(39.5, 18.5) {
		t.Errorf("centered Pos = %v, want (39.5, 18.5)", centered.Pos)
	}
	if centered.Face != r.Face() {
		t.Error("nil face not replaced by the default face")
	}
	if got := prims[1].(drawlist.Text).Pos; got != ui2d.Pt(3, 4) {
		t.Errorf("top-left Pos = %v, want (3, 4)", got)
	}
}

func TestRenderer_FlushOrderAndRetain(t *testing.T) {
	r, rec := newRecording(t, 20, 20)
	r.FillRectangle(ui2d.R(0, 0, 1, 1), nil, ui2d.Red)
	r.FillRectangle(ui2d.R(0, 0, 1, 1), nil, ui2d.Red.WithAlpha(10))
	if err := r.Flush(false, 2); err != nil {
		t.Fatalf("Flush() = %v", err)
	}
	if len(rec.Prims) != 2 || !rec.Prims[1].Opaque() || rec.Prims[0].Opaque() {
		t.Errorf("flush order wrong: %+v", rec.Prims)
	}
	if x := rec.Prims[0].(drawlist.Sprite).Dst.X; x != 2 {
		t.Errorf("xShift not applied: X = %v", x)
	}
	if r.Queue().Len() != 2 {
		t.Error("Flush(false) dropped the queue")
	}
	if err := r.Flush(true, 0); err != nil {
		t.Fatalf("Flush() = %v", err)
	}
	if r.Queue().Len() != 0 {
		t.Error("Flush(true) kept the queue")
	}
}

func TestRenderer_Dispose(t *testing.T) {
	sink := &disposingSink{err: errors.New("device lost")}
	shared := texture.NewCache()
	r, err := New(10, 10, WithSink(sink), WithTextureCache(shared))
	if err != nil {
		t.Fatal(err)
	}
	if r.Textures() != shared {
		t.Fatal("WithTextureCache ignored")
	}
	if err := r.FillCircle(ui2d.Pt(5, 5), 2, ui2d.Red); err != nil {
		t.Fatal(err)
	}
	r.Dispose()
	if shared.Len() != 0 || r.Queue().Len() != 0 {
		t.Errorf("Dispose() left %d bitmaps and %d primitives", shared.Len(), r.Queue().Len())
	}
	if sink.disposed != 1 {
		t.Errorf("sink disposed %d times, want 1", sink.disposed)
	}
}

func TestRenderer_ExactPolygonKeys(t *testing.T) {
	r, _ := newRecording(t, 10, 10, WithExactPolygonKeys())
	if !r.Textures().ExactPolygonKeys() {
		t.Error("WithExactPolygonKeys not applied to the texture cache")
	}
}
