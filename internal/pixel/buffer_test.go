package pixel

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestBufferOrigin(t *testing.T) {
	b := NewBuffer(3, 2)
	b.TopDown().Set(0, 0, RGB(1, 2, 3))

	if got := b.At(0, 1); got != RGB(1, 2, 3) {
		t.Errorf("top-left pixel should live on the last row, got %v", got)
	}
	if got := b.At(0, 0); got != Transparent {
		t.Errorf("bottom row should be untouched, got %v", got)
	}
}

func TestBufferOutOfRange(t *testing.T) {
	b := NewBuffer(2, 2)
	b.Set(-1, 0, RGB(9, 9, 9))
	b.Set(2, 0, RGB(9, 9, 9))

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", 2, 0},
		{"below", 0, -1},
		{"above", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.At(tt.x, tt.y); got != Transparent {
				t.Errorf("At(%d, %d) = %v, want transparent", tt.x, tt.y, got)
			}
		})
	}
	for _, c := range b.Pix() {
		if c != Transparent {
			t.Fatalf("out-of-range write leaked into buffer: %v", c)
		}
	}
}

func TestRegionTransparency(t *testing.T) {
	b := NewBuffer(4, 4)
	v := b.TopDown()
	if !v.IsRegionTransparent(0, 0, 4, 4) {
		t.Fatal("fresh buffer should be transparent")
	}
	v.Set(3, 3, RGB(1, 1, 1))
	if v.IsRegionTransparent(2, 2, 2, 2) {
		t.Error("region containing an opaque pixel reported transparent")
	}
	if !v.IsRegionTransparent(0, 0, 2, 2) {
		t.Error("untouched region reported opaque")
	}
}

func TestImageRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.Set(1, 1, color.NRGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 255})

	key := Magenta
	buf := FromImage(src, LoadOptions{ColorKey: &key})

	if got := buf.TopDown().At(0, 0); got != RGB(10, 20, 30) {
		t.Errorf("top-left = %v, want {10 20 30 255}", got)
	}
	if got := buf.At(0, 1); got != RGB(10, 20, 30) {
		t.Errorf("bottom-origin (0,1) = %v, want top-left pixel", got)
	}
	if got := buf.TopDown().At(1, 1); got != Transparent {
		t.Errorf("color-keyed pixel = %v, want transparent", got)
	}

	path := filepath.Join(t.TempDir(), "round.png")
	if err := buf.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	loaded, err := LoadPNG(path, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadPNG: %v", err)
	}
	if !loaded.Equal(buf) {
		t.Error("PNG round trip changed pixels")
	}
}

func TestAlphaThreshold(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.NRGBA{R: 200, A: 0x40})

	buf := FromImage(src, LoadOptions{AlphaThreshold: 0x80})
	if got := buf.At(0, 0); got != Transparent {
		t.Errorf("faint pixel = %v, want transparent", got)
	}
}
