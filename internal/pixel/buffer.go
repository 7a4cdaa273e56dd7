package pixel

// Color is a single straight-alpha RGBA pixel.
type Color struct {
	R, G, B, A uint8
}

// Transparent is the zero color.
var Transparent = Color{}

// RGB is a shorthand to create an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// IsTransparent reports whether the pixel has zero alpha.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// Buffer is a rectangular RGBA pixel buffer.
//
// Rows are addressed with y = 0 at the bottom edge, matching texture
// coordinate conventions. Use TopDown when working in image space.
type Buffer struct {
	width  int
	height int
	pix    []Color
}

// NewBuffer creates a transparent buffer with the given dimensions.
// Negative dimensions are treated as zero.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Stride returns the number of pixels between vertically adjacent rows.
func (b *Buffer) Stride() int {
	return b.width
}

// Pix returns the backing pixel slice, bottom row first.
func (b *Buffer) Pix() []Color {
	return b.pix
}

// At returns the pixel at (x, y). Out-of-range reads are transparent.
func (b *Buffer) At(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Transparent
	}
	return b.pix[y*b.width+x]
}

// Set writes the pixel at (x, y). Out-of-range writes are dropped.
func (b *Buffer) Set(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = c
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{width: b.width, height: b.height, pix: make([]Color, len(b.pix))}
	copy(out.pix, b.pix)
	return out
}

// Equal reports whether both buffers have the same size and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.pix {
		if b.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// TopDown returns a view of the buffer with y = 0 at the top edge.
func (b *Buffer) TopDown() TopDown {
	return TopDown{b: b}
}

// TopDown addresses a Buffer in image space (y grows downward).
type TopDown struct {
	b *Buffer
}

// Width returns the width of the underlying buffer.
func (v TopDown) Width() int { return v.b.width }

// Height returns the height of the underlying buffer.
func (v TopDown) Height() int { return v.b.height }

// At returns the pixel at image-space (x, y).
func (v TopDown) At(x, y int) Color {
	return v.b.At(x, v.b.height-1-y)
}

// Set writes the pixel at image-space (x, y).
func (v TopDown) Set(x, y int, c Color) {
	v.b.Set(x, v.b.height-1-y, c)
}

// CopyRect copies a w×h region from src at (sx, sy) to (dx, dy).
// Coordinates are image space on both sides; pixels outside either
// view are skipped.
func (v TopDown) CopyRect(dx, dy int, src TopDown, sx, sy, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v.Set(dx+x, dy+y, src.At(sx+x, sy+y))
		}
	}
}

// FillRect sets a w×h region at image-space (x, y) to c.
func (v TopDown) FillRect(x, y, w, h int, c Color) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			v.Set(xx, yy, c)
		}
	}
}

// IsRegionTransparent reports whether every pixel in the w×h region at
// image-space (x, y) has zero alpha.
func (v TopDown) IsRegionTransparent(x, y, w, h int) bool {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if !v.At(xx, yy).IsTransparent() {
				return false
			}
		}
	}
	return true
}
