package graph

import (
	"image"
	"testing"
)

var rect100 = image.Rect(0, 0, 100, 100)

func TestClassify(t *testing.T) {
	tests := []struct {
		p    image.Point
		want Region
	}{
		{image.Pt(0, 0), RegionInside},
		{image.Pt(99, 99), RegionInside},
		{image.Pt(50, 50), RegionInside},
		{image.Pt(-1, 50), RegionLeft},
		{image.Pt(100, 50), RegionRight},
		{image.Pt(50, -1), RegionAbove},
		{image.Pt(50, 100), RegionBelow},
		{image.Pt(-1, -1), RegionLeft | RegionAbove},
		{image.Pt(100, -1), RegionRight | RegionAbove},
		{image.Pt(-1, 100), RegionLeft | RegionBelow},
		{image.Pt(100, 100), RegionRight | RegionBelow},
	}
	for _, tt := range tests {
		if got := Classify(rect100, tt.p); got != tt.want {
			t.Errorf("Classify(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestClassifyCodeSpace(t *testing.T) {
	valid := map[Region]bool{0: true, 1: true, 2: true, 4: true, 5: true, 6: true, 8: true, 9: true, 10: true}
	r := image.Rect(10, 20, 30, 50)
	for x := 0; x < 40; x++ {
		for y := 10; y < 60; y++ {
			if c := Classify(r, image.Pt(x, y)); !valid[c] {
				t.Fatalf("Classify(%d, %d) = %d, outside the nine region codes", x, y, c)
			}
		}
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 image.Point
		want   image.Point
		ok     bool
	}{
		{"left edge", image.Pt(-10, 50), image.Pt(50, 50), image.Pt(0, 50), true},
		{"right edge", image.Pt(150, 20), image.Pt(50, 20), image.Pt(99, 20), true},
		{"top edge", image.Pt(40, -30), image.Pt(40, 60), image.Pt(40, 0), true},
		{"bottom edge", image.Pt(10, 130), image.Pt(10, 60), image.Pt(10, 99), true},
		{"corner takes left first", image.Pt(-10, -10), image.Pt(50, 50), image.Pt(0, 0), true},
		{"left misses, top wins", image.Pt(-2, -30), image.Pt(40, 60), image.Pt(12, 0), true},
		{"parallel to left edge", image.Pt(-10, 50), image.Pt(-10, 60), image.Pt(-10, 50), false},
		{"passes outside the corner", image.Pt(-20, -5), image.Pt(5, -30), image.Pt(-20, -5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p0
			ok := Clip(rect100, &p, Classify(rect100, tt.p0), tt.p1)
			if ok != tt.ok || p != tt.want {
				t.Errorf("Clip(%v -> %v) = %v %v, want %v %v", tt.p0, tt.p1, p, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDisjoint(t *testing.T) {
	if !Disjoint(RegionLeft, RegionLeft|RegionBelow) {
		t.Error("both left: want disjoint")
	}
	if Disjoint(RegionLeft, RegionRight) {
		t.Error("left and right: segment may cross")
	}
	if Disjoint(RegionInside, RegionAbove) {
		t.Error("inside point: never disjoint")
	}
}

func TestClipSegment(t *testing.T) {
	a, b, ok := ClipSegment(rect100, image.Pt(-10, 50), image.Pt(150, 50))
	if !ok || a != image.Pt(0, 50) || b != image.Pt(99, 50) {
		t.Errorf("ClipSegment = %v %v %v", a, b, ok)
	}
	if _, _, ok := ClipSegment(rect100, image.Pt(-10, 5), image.Pt(-3, 80)); ok {
		t.Error("segment left of the rectangle reported visible")
	}
	a, b, ok = ClipSegment(rect100, image.Pt(10, 10), image.Pt(20, 30))
	if !ok || a != image.Pt(10, 10) || b != image.Pt(20, 30) {
		t.Errorf("inside segment changed: %v %v %v", a, b, ok)
	}
}
