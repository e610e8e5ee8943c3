package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestExport(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "track.csv")
	if err := os.WriteFile(src, []byte("x,y\n0,0\n10,5\n20,10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name    string
		asPanel bool
	}{
		{"raster", false},
		{"panel", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := filepath.Join(dir, tt.name+".png")
			if err := export(src, dst, "160x120", false, tt.asPanel); err != nil {
				t.Fatal(err)
			}
			f, err := os.Open(dst)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatal(err)
			}
			if img.Bounds() != image.Rect(0, 0, 160, 120) {
				t.Errorf("bounds %v", img.Bounds())
			}
			seen := map[color.RGBA]bool{}
			for x := 40; x < 140; x++ {
				for y := 0; y < 120; y++ {
					seen[color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)] = true
				}
			}
			if len(seen) < 2 {
				t.Error("nothing drawn")
			}
		})
	}
}

func TestExportErrors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "track.csv")
	if err := os.WriteFile(src, []byte("x,y\n0,0\n1,1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "out.png")
	tests := []struct {
		name, src, size string
		asPanel         bool
	}{
		{"bad size", src, "big", false},
		{"tiny size", src, "4x4", false},
		{"panel too large", src, "40000x10", true},
		{"missing input", filepath.Join(dir, "none.csv"), "100x100", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := export(tt.src, dst, tt.size, false, tt.asPanel); err == nil {
				t.Error("expected error")
			}
		})
	}
}
