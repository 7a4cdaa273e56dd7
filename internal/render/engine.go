package render

import (
	"strings"

	"tilesystem/internal/pixel"
)

// StatusRows is the number of terminal rows reserved below the image.
const StatusRows = 2

// Cell represents a single terminal cell with full RGB color.
type Cell struct {
	Ch            rune
	FgR, FgG, FgB uint8
	BgR, BgG, BgB uint8
	Bold          bool
}

// sentinel never matches a drawn cell, forcing a full repaint.
var sentinel = Cell{Ch: '\x00', FgR: 255, BgB: 255, Bold: true}

// HalfBlock returns a cell showing top over bottom.
func HalfBlock(top, bottom pixel.Color) Cell {
	return Cell{
		Ch:  UpperHalf,
		FgR: top.R, FgG: top.G, FgB: top.B,
		BgR: bottom.R, BgG: bottom.G, BgB: bottom.B,
	}
}

// Engine is a per-session double-buffer diff renderer.
type Engine struct {
	width, height int
	current       [][]Cell
	next          [][]Cell
	firstFrame    bool
}

// NewEngine creates a renderer for the given terminal dimensions.
func NewEngine(width, height int) *Engine {
	e := &Engine{}
	e.Resize(width, height)
	return e
}

// Resize adjusts the renderer for a new terminal size.
func (e *Engine) Resize(width, height int) {
	e.width = max(width, 0)
	e.height = max(height, 0)
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	e.firstFrame = true
}

// Size returns the terminal dimensions.
func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) makeBuffer(fill Cell) [][]Cell {
	buf := make([][]Cell, e.height)
	for y := 0; y < e.height; y++ {
		buf[y] = make([]Cell, e.width)
		for x := 0; x < e.width; x++ {
			buf[y][x] = fill
		}
	}
	return buf
}

// Clear fills the next frame with c.
func (e *Engine) Clear(c Cell) {
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			e.next[y][x] = c
		}
	}
}

// Set writes one cell of the next frame. Off-screen cells are ignored.
func (e *Engine) Set(col, row int, c Cell) {
	if col >= 0 && col < e.width && row >= 0 && row < e.height {
		e.next[row][col] = c
	}
}

// StampImage draws img with its top-left pixel at terminal cell (col, row).
// Each cell shows two stacked pixels; transparent pixels show bg.
func (e *Engine) StampImage(col, row int, img *pixel.Buffer, bg pixel.Color) {
	if img == nil {
		return
	}
	td := img.TopDown()
	for y := 0; y < img.Height(); y += 2 {
		for x := 0; x < img.Width(); x++ {
			top := over(td.At(x, y), bg)
			bottom := bg
			if y+1 < img.Height() {
				bottom = over(td.At(x, y+1), bg)
			}
			e.Set(col+x, row+y/2, HalfBlock(top, bottom))
		}
	}
}

// over composites c onto an opaque background.
func over(c, bg pixel.Color) pixel.Color {
	switch c.A {
	case 255:
		return c
	case 0:
		return bg
	}
	a := uint32(c.A)
	mix := func(f, b uint8) uint8 {
		return uint8((uint32(f)*a + uint32(b)*(255-a)) / 255)
	}
	return pixel.RGB(mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B))
}

// WriteText writes colored text into a bounded region [col, maxCol). Returns the next column position.
func (e *Engine) WriteText(row, col, maxCol int, text string, fg, bg pixel.Color, bold bool) int {
	for _, r := range text {
		if col >= maxCol || col >= e.width {
			break
		}
		e.Set(col, row, Cell{
			Ch:  r,
			FgR: fg.R, FgG: fg.G, FgB: fg.B,
			BgR: bg.R, BgG: bg.G, BgB: bg.B,
			Bold: bold,
		})
		col++
	}
	return col
}

// Flush diffs the next frame against the last one and returns the ANSI
// output for the changed cells.
func (e *Engine) Flush() string {
	var sb strings.Builder
	sb.Grow(16384)

	lastRow, lastCol := -1, -1
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			nc := e.next[y][x]
			if e.firstFrame || nc != e.current[y][x] {
				// Only emit cursor position if not consecutive
				if y != lastRow || x != lastCol {
					sb.WriteString(MoveTo(y+1, x+1))
				}
				WriteCellSGR(&sb, nc)
				lastRow = y
				lastCol = x + 1
			}
		}
	}

	if sb.Len() > 0 {
		sb.WriteString(Reset)
	}

	// Swap buffers
	e.current, e.next = e.next, e.current
	e.firstFrame = false

	return sb.String()
}
