// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"image"
	"testing"
)

func TestDrawCircleOutline_RadiusZero(t *testing.T) {
	bm := NewBitmap(CircleSize(0), CircleSize(0))
	if err := DrawCircleOutline(bm, image.Pt(0, 0), 0); err != nil {
		t.Fatalf("DrawCircleOutline() = %v", err)
	}
	if !bm.IsSet(0, 0) {
		t.Error("radius 0 did not plot the center")
	}
}

func TestDrawCircleOutline_Radius10(t *testing.T) {
	bm := NewBitmap(101, 101)
	if err := DrawCircleOutline(bm, image.Pt(50, 50), 10); err != nil {
		t.Fatalf("DrawCircleOutline() = %v", err)
	}
	for _, p := range []image.Point{{60, 50}, {50, 60}, {40, 50}, {50, 40}} {
		if !bm.IsSet(p.X, p.Y) {
			t.Errorf("pixel %v not set", p)
		}
	}
	for _, p := range []image.Point{{50, 50}, {55, 50}} {
		if bm.IsSet(p.X, p.Y) {
			t.Errorf("pixel %v set", p)
		}
	}
}

func TestDrawCircle_Symmetry(t *testing.T) {
	for r := 0; r <= 20; r++ {
		n := CircleSize(r)
		outline, filled := NewBitmap(n, n), NewBitmap(n, n)
		c := image.Pt(r, r)
		if err := DrawCircleOutline(outline, c, r); err != nil {
			t.Fatalf("DrawCircleOutline(r=%d) = %v", r, err)
		}
		if err := DrawCircleFilled(filled, c, r); err != nil {
			t.Fatalf("DrawCircleFilled(r=%d) = %v", r, err)
		}
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				dx, dy := x-r, y-r
				for _, bm := range []*Bitmap{outline, filled} {
					v := bm.IsSet(x, y)
					if bm.IsSet(r+dy, r+dx) != v || bm.IsSet(r-dx, r+dy) != v || bm.IsSet(r+dx, r-dy) != v {
						t.Fatalf("r=%d: pixel (%d, %d) breaks symmetry\n%s", r, dx, dy, bm)
					}
				}
				if outline.IsSet(x, y) {
					if !filled.IsSet(x, y) {
						t.Errorf("r=%d: outline pixel (%d, %d) not filled", r, dx, dy)
					}
					if e := dx*dx + dy*dy - r*r; e > 2*r || e < -2*r {
						t.Errorf("r=%d: outline pixel (%d, %d) off the circle", r, dx, dy)
					}
				}
			}
		}
	}
}

func TestDrawCircleFilled_Interior(t *testing.T) {
	for _, r := range []int{1, 3, 7, 10, 25} {
		n := CircleSize(r)
		bm := NewBitmap(n, n)
		if err := DrawCircleFilled(bm, image.Pt(r, r), r); err != nil {
			t.Fatalf("DrawCircleFilled(r=%d) = %v", r, err)
		}
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				dx, dy := x-r, y-r
				if dx*dx+dy*dy <= (r-1)*(r-1) && !bm.IsSet(x, y) {
					t.Fatalf("r=%d: interior pixel (%d, %d) not set\n%s", r, dx, dy, bm)
				}
			}
		}
	}
}

func TestDrawCircle_InvalidRadius(t *testing.T) {
	bm := NewBitmap(4, 4)
	if err := DrawCircleOutline(bm, image.Pt(2, 2), -1); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("DrawCircleOutline(-1) = %v, want ErrInvalidRadius", err)
	}
	if err := DrawCircleFilled(bm, image.Pt(2, 2), -1); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("DrawCircleFilled(-1) = %v, want ErrInvalidRadius", err)
	}
}
