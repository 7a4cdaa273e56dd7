package render

import (
	"context"
	"strings"
	"testing"

	"tilesystem/internal/autotile"
	"tilesystem/internal/maps"
	"tilesystem/internal/orient"
	"tilesystem/internal/pixel"
)

var (
	red  = pixel.RGB(255, 0, 0)
	blue = pixel.RGB(0, 0, 255)
)

func TestEngineDiff(t *testing.T) {
	e := NewEngine(4, 2)
	e.Clear(Cell{Ch: ' '})
	first := e.Flush()
	if strings.Count(first, " ") != 8 {
		t.Errorf("first frame should paint every cell, got %q", first)
	}

	e.Clear(Cell{Ch: ' '})
	if out := e.Flush(); out != "" {
		t.Errorf("unchanged frame emitted %q", out)
	}

	e.Clear(Cell{Ch: ' '})
	e.Set(2, 1, Cell{Ch: 'x'})
	out := e.Flush()
	if !strings.Contains(out, MoveTo(2, 3)) || !strings.HasSuffix(out, "x"+Reset) {
		t.Errorf("single change emitted %q", out)
	}

	e.Resize(3, 3)
	e.Clear(Cell{Ch: ' '})
	if out := e.Flush(); strings.Count(out, " ") != 9 {
		t.Errorf("resize should force a full repaint, got %q", out)
	}
}

func TestStampImageHalfBlocks(t *testing.T) {
	img := pixel.NewBuffer(1, 3)
	td := img.TopDown()
	td.Set(0, 0, red)
	td.Set(0, 1, blue)
	// (0,2) transparent

	e := NewEngine(2, 2)
	e.StampImage(0, 0, img, pixel.RGB(1, 2, 3))
	if got, want := e.next[0][0], HalfBlock(red, blue); got != want {
		t.Errorf("cell 0 = %+v, want %+v", got, want)
	}
	if got, want := e.next[1][0], HalfBlock(pixel.RGB(1, 2, 3), pixel.RGB(1, 2, 3)); got != want {
		t.Errorf("cell 1 = %+v, want %+v", got, want)
	}
}

func TestOver(t *testing.T) {
	half := pixel.Color{R: 255, A: 128}
	got := over(half, pixel.RGB(0, 0, 0))
	if got.R != 128 || got.A != 255 {
		t.Errorf("over = %+v, want R 128 opaque", got)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name             string
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{"downscale wide", 128, 64, 32, 32, 32, 16},
		{"upscale", 8, 8, 40, 20, 20, 20},
		{"exact", 16, 16, 16, 16, 16, 16},
		{"no room", 16, 16, 0, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(pixel.NewBuffer(tt.w, tt.h), tt.maxW, tt.maxH)
			if got.Width() != tt.wantW || got.Height() != tt.wantH {
				t.Errorf("Fit = %dx%d, want %dx%d", got.Width(), got.Height(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRotateClockwise(t *testing.T) {
	img := pixel.NewBuffer(2, 1)
	img.TopDown().Set(0, 0, red)
	img.TopDown().Set(1, 0, blue)

	got := RotateClockwise(img, 1)
	if got.Width() != 1 || got.Height() != 2 {
		t.Fatalf("size %dx%d, want 1x2", got.Width(), got.Height())
	}
	if got.TopDown().At(0, 0) != red || got.TopDown().At(0, 1) != blue {
		t.Error("left column did not become the top row")
	}
	if !RotateClockwise(img, 4).Equal(img) {
		t.Error("four quarter turns changed the image")
	}
	back := RotateClockwise(RotateClockwise(img, 1), -1)
	if !back.Equal(img) {
		t.Error("clockwise then anti-clockwise changed the image")
	}
}

func TestRotatedVariants(t *testing.T) {
	tests := []struct {
		name string
		mask orient.Mask
		want int
	}{
		{"isolated", orient.None, 1},
		{"corridor", orient.Top | orient.Bottom, 2},
		{"dead end", orient.Bottom, 4},
	}
	tile := pixel.NewBuffer(4, 4)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotatedVariants(tile, tt.mask)
			if len(got) != tt.want {
				t.Fatalf("%d variants, want %d", len(got), tt.want)
			}
			for _, v := range got {
				if v.Mask != orient.RotateClockwise(tt.mask, v.Steps) {
					t.Errorf("variant %d has mask %s", v.Steps, v.Mask)
				}
				if !orient.HasRotationalSymmetry(v.Mask, tt.mask) {
					t.Errorf("variant %s is not a rotation of %s", v.Mask, tt.mask)
				}
			}
		})
	}
}

func buildTestAtlas(t *testing.T) *autotile.Atlas {
	t.Helper()
	w, h, err := autotile.Basic.SourceSize(4, 4, false)
	if err != nil {
		t.Fatal(err)
	}
	src := pixel.NewBuffer(w, h)
	td := src.TopDown()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			td.Set(x, y, pixel.RGB(uint8(x*16), uint8(y*16), 200))
		}
	}
	e, err := autotile.New(autotile.Basic, src, autotile.Options{TileWidth: 4, TileHeight: 4})
	if err != nil {
		t.Fatal(err)
	}
	atlas, err := e.Build(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return atlas
}

func TestComposeMap(t *testing.T) {
	m := maps.NewMap("test", 3, 2)
	m.Brushes = []maps.Brush{
		{Name: "grass", Atlas: "grass", Rules: orient.Rules{Coalesce: orient.CoalesceOwn}},
		{Name: "rock", Fg: 90},
	}
	m.Paint(0, 0, 0, 0)
	m.Paint(0, 1, 0, 0)
	m.Paint(1, 2, 1, 0)

	atlas := buildTestAtlas(t)
	out := ComposeMap(m, map[string]*autotile.Atlas{"grass": atlas}, 4, 4)
	if out.Width() != 12 || out.Height() != 8 {
		t.Fatalf("composed %dx%d, want 12x8", out.Width(), out.Height())
	}
	td := out.TopDown()

	mask, _, _ := m.Orientation(0, 0)
	if mask != orient.Right {
		t.Fatalf("mask (0,0) = %s", mask)
	}
	want := atlas.Tile(atlas.TileIndex(mask)).TopDown()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if td.At(x, y) != want.At(x, y) {
				t.Fatalf("cell (0,0) pixel (%d,%d) = %v, want %v", x, y, td.At(x, y), want.At(x, y))
			}
		}
	}

	if got := td.At(9, 5); got != AnsiColor(90) {
		t.Errorf("rock cell = %v, want %v", got, AnsiColor(90))
	}
	if got := td.At(5, 5); !got.IsTransparent() {
		t.Errorf("empty cell = %v, want transparent", got)
	}
}

func TestViewport(t *testing.T) {
	tests := []struct {
		name                 string
		fx, fy, vw, vh, w, h int
		want                 Viewport
	}{
		{"centred", 50, 50, 20, 10, 100, 100, Viewport{40, 45, 20, 10}},
		{"clamped low", 0, 0, 20, 10, 100, 100, Viewport{0, 0, 20, 10}},
		{"clamped high", 99, 99, 20, 10, 100, 100, Viewport{80, 90, 20, 10}},
		{"image smaller", 5, 5, 20, 10, 8, 4, Viewport{0, 0, 8, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewViewport(tt.fx, tt.fy, tt.vw, tt.vh, tt.w, tt.h)
			if got != tt.want {
				t.Errorf("NewViewport = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseInput(t *testing.T) {
	got := ParseInput([]byte("\x1b[A\x1b[Dnpfxq"))
	want := []Action{ActionUp, ActionLeft, ActionNextPage, ActionPrevPage, ActionToggleFit, ActionQuit}
	if len(got) != len(want) {
		t.Fatalf("ParseInput = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPreviewPaging(t *testing.T) {
	pages := []Page{
		{Title: "one", Image: pixel.NewBuffer(8, 8)},
		{Title: "two", Image: pixel.NewBuffer(64, 64)},
	}
	p := NewPreview(pages, 40, 12)
	out := p.Render()
	if !strings.Contains(out, "o") || !strings.Contains(out, "n") {
		t.Errorf("status line missing from first frame")
	}

	p.Apply(ActionPrevPage)
	if p.Page() != 1 {
		t.Errorf("prev from first page = %d, want 1", p.Page())
	}
	p.Apply(ActionNextPage)
	if p.Page() != 0 {
		t.Errorf("next wraps to %d, want 0", p.Page())
	}
	p.Apply(ActionToggleFit)
	p.Apply(ActionRight)
	p.Render()
	if !p.Apply(ActionDown) {
		t.Error("pan reported quit")
	}
	if p.Apply(ActionQuit) {
		t.Error("quit did not report false")
	}

	empty := NewPreview(nil, 20, 4)
	if out := empty.Render(); out == "" {
		t.Error("empty preview rendered nothing")
	}
}
